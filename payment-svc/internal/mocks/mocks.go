// Package mocks provides testify mocks for the payment service interfaces.
package mocks

import (
	"context"

	"quickbite/payment-svc/internal/domain"

	"github.com/stretchr/testify/mock"
)

type testingT interface {
	mock.TestingT
	Cleanup(func())
}

type PaymentRepository struct {
	mock.Mock
}

func NewPaymentRepository(t testingT) *PaymentRepository {
	m := &PaymentRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *PaymentRepository) InsertPayment(payment *domain.Payment) (bool, error) {
	args := m.Called(payment)
	return args.Bool(0), args.Error(1)
}

func (m *PaymentRepository) GetByOrder(orderID int) (*domain.Payment, error) {
	args := m.Called(orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Payment), args.Error(1)
}

func (m *PaymentRepository) ListByUser(userID int) ([]domain.Payment, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Payment), args.Error(1)
}

type PaymentMarker struct {
	mock.Mock
}

func NewPaymentMarker(t testingT) *PaymentMarker {
	m := &PaymentMarker{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *PaymentMarker) PaidMarkerKey(orderID int) string {
	return m.Called(orderID).String(0)
}

func (m *PaymentMarker) Exists(ctx context.Context, key string) (bool, error) {
	args := m.Called(ctx, key)
	return args.Bool(0), args.Error(1)
}

func (m *PaymentMarker) SetMarker(ctx context.Context, key string) error {
	return m.Called(ctx, key).Error(0)
}

type OrderFetcher struct {
	mock.Mock
}

func NewOrderFetcher(t testingT) *OrderFetcher {
	m := &OrderFetcher{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *OrderFetcher) GetOrder(ctx context.Context, orderID int) (*domain.OrderSummary, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.OrderSummary), args.Error(1)
}

type PaymentServiceInterface struct {
	mock.Mock
}

func NewPaymentServiceInterface(t testingT) *PaymentServiceInterface {
	m := &PaymentServiceInterface{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *PaymentServiceInterface) Authorize(ctx context.Context, req domain.AuthorizeRequest) (*domain.Payment, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Payment), args.Error(1)
}

func (m *PaymentServiceInterface) GetByOrder(orderID int) (*domain.Payment, error) {
	args := m.Called(orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Payment), args.Error(1)
}

func (m *PaymentServiceInterface) ListByUser(userID int) ([]domain.Payment, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Payment), args.Error(1)
}
