package service

import (
	"context"

	"quickbite/payment-svc/internal/domain"
)

type PaymentServiceInterface interface {
	Authorize(ctx context.Context, req domain.AuthorizeRequest) (*domain.Payment, error)
	GetByOrder(orderID int) (*domain.Payment, error)
	ListByUser(userID int) ([]domain.Payment, error)
}

type PaymentRepository interface {
	// InsertPayment records the payment; returns false when a payment for
	// the same order already exists.
	InsertPayment(payment *domain.Payment) (bool, error)
	GetByOrder(orderID int) (*domain.Payment, error)
	ListByUser(userID int) ([]domain.Payment, error)
}

type PaymentMarker interface {
	PaidMarkerKey(orderID int) string
	Exists(ctx context.Context, key string) (bool, error)
	SetMarker(ctx context.Context, key string) error
}

type OrderFetcher interface {
	GetOrder(ctx context.Context, orderID int) (*domain.OrderSummary, error)
}

var _ PaymentServiceInterface = (*PaymentService)(nil)
