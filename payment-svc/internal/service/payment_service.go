package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math"

	"quickbite/payment-svc/internal/domain"
)

var (
	ErrInvalidPayment  = errors.New("payment request is missing required fields")
	ErrOrderNotFound   = errors.New("order not found")
	ErrPaymentNotFound = errors.New("payment not found")
	ErrNotOrderOwner   = errors.New("payment user does not own the order")
	ErrAmountMismatch  = errors.New("payment amount does not match the order total")
	ErrAlreadyPaid     = errors.New("order is already paid")
	ErrUpstream        = errors.New("order service unavailable")
)

type PaymentService struct {
	repository PaymentRepository
	cache      PaymentMarker
	orders     OrderFetcher
}

func NewPaymentService(repository PaymentRepository, cache PaymentMarker, orders OrderFetcher) *PaymentService {
	return &PaymentService{
		repository: repository,
		cache:      cache,
		orders:     orders,
	}
}

// Authorize is the confirmation gate. There is no real processor behind it:
// a well-formed request from the order's owner for the order's exact total
// succeeds, everything else is rejected. The unique payments.order_id row is
// what guarantees at most one success per order; the redis marker only
// short-circuits obvious replays.
func (s *PaymentService) Authorize(ctx context.Context, req domain.AuthorizeRequest) (*domain.Payment, error) {
	if req.OrderID <= 0 || req.UserID <= 0 || req.Amount <= 0 || req.PaymentMethod == "" {
		return nil, ErrInvalidPayment
	}

	order, err := s.orders.GetOrder(ctx, req.OrderID)
	if err != nil {
		return nil, err
	}
	if order.UserID != req.UserID {
		return nil, ErrNotOrderOwner
	}
	if math.Abs(order.TotalPrice-req.Amount) > 0.009 {
		return nil, fmt.Errorf("%w: order total is %.2f", ErrAmountMismatch, order.TotalPrice)
	}

	markerKey := s.cache.PaidMarkerKey(req.OrderID)
	if exists, _ := s.cache.Exists(ctx, markerKey); exists {
		return nil, ErrAlreadyPaid
	}

	payment := &domain.Payment{
		OrderID:       req.OrderID,
		UserID:        req.UserID,
		Amount:        req.Amount,
		Status:        domain.PaymentStatusSuccess,
		PaymentMethod: req.PaymentMethod,
	}
	inserted, err := s.repository.InsertPayment(payment)
	if err != nil {
		return nil, fmt.Errorf("failed to record payment: %w", err)
	}
	if !inserted {
		return nil, ErrAlreadyPaid
	}

	if err := s.cache.SetMarker(ctx, markerKey); err != nil {
		log.Printf("[payment-svc] warning: failed to set paid marker for order %d: %v", req.OrderID, err)
	}

	log.Printf("[payment-svc] authorized payment %d for order %d (%.2f via %s)",
		payment.ID, payment.OrderID, payment.Amount, payment.PaymentMethod)
	return payment, nil
}

func (s *PaymentService) GetByOrder(orderID int) (*domain.Payment, error) {
	return s.repository.GetByOrder(orderID)
}

func (s *PaymentService) ListByUser(userID int) ([]domain.Payment, error) {
	return s.repository.ListByUser(userID)
}
