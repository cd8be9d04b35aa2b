package domain

import "time"

type Restaurant struct {
	ID          int        `json:"id"`
	Name        string     `json:"name"`
	Address     string     `json:"address"`
	CuisineType string     `json:"cuisine_type"`
	IsOpen      bool       `json:"is_open"`
	ImageURL    string     `json:"image_url"`
	CreatedAt   time.Time  `json:"created_at"`
	Menus       []MenuItem `json:"menus,omitempty"`
}

type MenuItem struct {
	ID           int       `json:"id"`
	RestaurantID int       `json:"restaurant_id"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	Price        float64   `json:"price"`
	Stock        int       `json:"stock"`
	IsAvailable  bool      `json:"is_available"`
	Category     string    `json:"category"`
	ImageURL     string    `json:"image_url"`
	CreatedAt    time.Time `json:"created_at"`
}

// StockLine is one entry of a batch stock reservation.
type StockLine struct {
	MenuItemID int `json:"menu_item_id"`
	Quantity   int `json:"quantity"`
}

// ReserveStockRequest is the atomic batch decrement sent by the order
// service. ReservationID makes a retried batch safe to replay.
type ReserveStockRequest struct {
	ReservationID string      `json:"reservation_id"`
	Items         []StockLine `json:"items"`
}
