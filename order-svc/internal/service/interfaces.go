package service

import (
	"context"

	"quickbite/order-svc/internal/domain"
)

type OrderServiceInterface interface {
	CreateOrder(ctx context.Context, req domain.CreateOrderRequest) (*domain.Order, error)
	ConfirmPayment(ctx context.Context, orderID, userID int, paymentMethod string) (*domain.Order, error)
	ClaimOrder(ctx context.Context, orderID, driverUserID int) error
	CompleteOrder(ctx context.Context, orderID, driverUserID int) error
	ConfirmReceived(ctx context.Context, orderID, userID int) error
	CancelOrder(ctx context.Context, orderID, userID int) error
	ListUserOrders(userID int) ([]domain.Order, error)
	GetOrderDetail(ctx context.Context, orderID, userID int) (*domain.Order, error)
	GetOrderRecord(orderID int) (*domain.Order, error)
	ListDriverOrders(driverUserID int) ([]domain.Order, error)
	GetOrderQR(orderID int) ([]byte, error)
}

type OrderRepository interface {
	// InsertOrder persists the order and its item snapshots in one
	// transaction.
	InsertOrder(ctx context.Context, order *domain.Order) error
	GetOrder(orderID int) (*domain.Order, error)
	ListByUser(userID int) ([]domain.Order, error)
	ListActiveByDriver(driverUserID int) ([]domain.Order, error)

	// UpdateStatusIf moves the order from one of the given statuses to the
	// target; returns false when the order is in any other state.
	UpdateStatusIf(orderID int, from []string, to string) (bool, error)

	// SetPaid records the payment id and moves PENDING_PAYMENT to PAID.
	SetPaid(orderID, paymentID int) (bool, error)

	// AssignDriver fills the order's empty driver slot and moves it to
	// ON_THE_WAY; returns the status the order held before, for the
	// compensation path.
	AssignDriver(ctx context.Context, orderID, driverUserID int) (string, error)

	// ClearDriver undoes AssignDriver after a failed registry call.
	ClearDriver(orderID, driverUserID int, restoreStatus string) error

	// MarkDelivered moves ON_THE_WAY to DELIVERED, only for the assigned
	// driver.
	MarkDelivered(orderID, driverUserID int) (bool, error)

	SetQRCode(orderID int, png []byte) error
	GetQRCode(orderID int) ([]byte, error)
}

type CatalogGateway interface {
	GetMenuItem(ctx context.Context, id int) (*domain.CatalogItem, error)
	ReserveStock(ctx context.Context, reservationID string, items []domain.ReserveLine) error
}

type PaymentGateway interface {
	// Authorize returns the payment id recorded by payment-svc.
	Authorize(ctx context.Context, orderID, userID int, amount float64, paymentMethod string) (int, error)
}

type DriverGateway interface {
	Claim(ctx context.Context, driverUserID, orderID int) error
	CreditEarnings(ctx context.Context, driverUserID, orderID int, amount float64) error
	Details(ctx context.Context, driverUserID int) (*domain.DriverContact, error)
}

type EventPublisher interface {
	PublishStatus(ctx context.Context, orderID int, status string) error
}

var _ OrderServiceInterface = (*OrderService)(nil)
