package service

import (
	"context"
	"errors"

	"quickbite/tracking-svc/internal/domain"
)

var ErrNotTracked = errors.New("no status recorded for this order")

type StoreInterface interface {
	SaveStatus(ctx context.Context, event domain.OrderEvent) error
	GetStatus(ctx context.Context, orderID int) (*domain.OrderStatus, error)
}
