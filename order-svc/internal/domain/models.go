package domain

import "time"

type Order struct {
	ID                    int         `json:"id"`
	UserID                int         `json:"user_id"`
	RestaurantID          int         `json:"restaurant_id"`
	AddressID             int         `json:"address_id"`
	Status                string      `json:"status"`
	TotalPrice            float64     `json:"total_price"`
	PaymentID             *int        `json:"payment_id,omitempty"`
	DriverID              *int        `json:"driver_id,omitempty"`
	EstimatedDeliveryTime time.Time   `json:"estimated_delivery_time"`
	Items                 []OrderItem `json:"items,omitempty"`
	Driver                *DriverContact `json:"driver,omitempty"`
	CreatedAt             time.Time   `json:"created_at"`
	UpdatedAt             time.Time   `json:"updated_at"`
}

// OrderItem is an immutable snapshot of the menu item at order time; later
// catalog edits never change what the customer agreed to pay.
type OrderItem struct {
	ID           int     `json:"id"`
	OrderID      int     `json:"order_id"`
	MenuItemID   int     `json:"menu_item_id"`
	MenuItemName string  `json:"menu_item_name"`
	Price        float64 `json:"price"`
	Quantity     int     `json:"quantity"`
}

type CreateOrderRequest struct {
	UserID       int               `json:"user_id"`
	RestaurantID int               `json:"restaurant_id"`
	AddressID    int               `json:"address_id"`
	Items        []CreateOrderItem `json:"items"`
}

type CreateOrderItem struct {
	MenuItemID int `json:"menu_item_id"`
	Quantity   int `json:"quantity"`
}

// CatalogItem is the slice of the catalog record order validation needs.
type CatalogItem struct {
	ID           int     `json:"id"`
	RestaurantID int     `json:"restaurant_id"`
	Name         string  `json:"name"`
	Price        float64 `json:"price"`
	Stock        int     `json:"stock"`
	IsAvailable  bool    `json:"is_available"`
}

type ReserveLine struct {
	MenuItemID int `json:"menu_item_id"`
	Quantity   int `json:"quantity"`
}

// DriverContact is the non-authoritative driver info attached to an order
// detail read.
type DriverContact struct {
	UserID        int    `json:"user_id"`
	VehicleType   string `json:"vehicle_type"`
	VehicleNumber string `json:"vehicle_number"`
}

// OrderEvent is the message published to the order-events topic on every
// status transition.
type OrderEvent struct {
	OrderID   int       `json:"order_id"`
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}
