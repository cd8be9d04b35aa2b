package domain

import "time"

const (
	PaymentStatusPending = "PENDING"
	PaymentStatusSuccess = "SUCCESS"
)

type Payment struct {
	ID            int       `json:"id"`
	OrderID       int       `json:"order_id"`
	UserID        int       `json:"user_id"`
	Amount        float64   `json:"amount"`
	Status        string    `json:"status"`
	PaymentMethod string    `json:"payment_method"`
	CreatedAt     time.Time `json:"created_at"`
}

type AuthorizeRequest struct {
	OrderID       int     `json:"order_id"`
	UserID        int     `json:"user_id"`
	Amount        float64 `json:"amount"`
	PaymentMethod string  `json:"payment_method"`
}

// OrderSummary is the slice of the order record payment authorization needs:
// who owns the order and what it costs.
type OrderSummary struct {
	ID         int     `json:"id"`
	UserID     int     `json:"user_id"`
	Status     string  `json:"status"`
	TotalPrice float64 `json:"total_price"`
}
