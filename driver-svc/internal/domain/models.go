package domain

import "time"

const (
	TaskStatusAssigned  = "ASSIGNED"
	TaskStatusCompleted = "COMPLETED"

	SalaryStatusUnpaid = "UNPAID"
	SalaryStatusPaid   = "PAID"
)

type Driver struct {
	ID            int       `json:"id"`
	UserID        int       `json:"user_id"`
	VehicleType   string    `json:"vehicle_type"`
	VehicleNumber string    `json:"vehicle_number"`
	IsAvailable   bool      `json:"is_available"`
	IsOnJob       bool      `json:"is_on_job"`
	WalletBalance float64   `json:"wallet_balance"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type DeliveryTask struct {
	OrderID   int       `json:"order_id"`
	DriverID  int       `json:"driver_id"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

type DriverSalary struct {
	ID         int       `json:"id"`
	DriverID   int       `json:"driver_id"`
	Period     string    `json:"period"`
	BaseAmount float64   `json:"base_amount"`
	Commission float64   `json:"commission"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
}

type ClaimRequest struct {
	UserID  int `json:"user_id"`
	OrderID int `json:"order_id"`
}

type EarningsRequest struct {
	UserID  int     `json:"user_id"`
	OrderID int     `json:"order_id"`
	Amount  float64 `json:"amount"`
}

type StatusRequest struct {
	IsAvailable bool `json:"is_available"`
	IsOnJob     bool `json:"is_on_job"`
}

// DriverOverview is the admin listing row: the driver record joined with
// the user directory's name and the order service's active-order count.
type DriverOverview struct {
	Driver
	Name         string `json:"name"`
	ActiveOrders int    `json:"active_orders"`
}

// DirectoryUser is the slice of the user record the admin listing needs.
type DirectoryUser struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}
