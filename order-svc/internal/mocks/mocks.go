// Package mocks provides testify mocks for the order service interfaces.
package mocks

import (
	"context"

	"quickbite/order-svc/internal/domain"

	"github.com/stretchr/testify/mock"
)

type testingT interface {
	mock.TestingT
	Cleanup(func())
}

type OrderRepository struct {
	mock.Mock
}

func NewOrderRepository(t testingT) *OrderRepository {
	m := &OrderRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *OrderRepository) InsertOrder(ctx context.Context, order *domain.Order) error {
	return m.Called(ctx, order).Error(0)
}

func (m *OrderRepository) GetOrder(orderID int) (*domain.Order, error) {
	args := m.Called(orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Order), args.Error(1)
}

func (m *OrderRepository) ListByUser(userID int) ([]domain.Order, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Order), args.Error(1)
}

func (m *OrderRepository) ListActiveByDriver(driverUserID int) ([]domain.Order, error) {
	args := m.Called(driverUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Order), args.Error(1)
}

func (m *OrderRepository) UpdateStatusIf(orderID int, from []string, to string) (bool, error) {
	args := m.Called(orderID, from, to)
	return args.Bool(0), args.Error(1)
}

func (m *OrderRepository) SetPaid(orderID, paymentID int) (bool, error) {
	args := m.Called(orderID, paymentID)
	return args.Bool(0), args.Error(1)
}

func (m *OrderRepository) AssignDriver(ctx context.Context, orderID, driverUserID int) (string, error) {
	args := m.Called(ctx, orderID, driverUserID)
	return args.String(0), args.Error(1)
}

func (m *OrderRepository) ClearDriver(orderID, driverUserID int, restoreStatus string) error {
	return m.Called(orderID, driverUserID, restoreStatus).Error(0)
}

func (m *OrderRepository) MarkDelivered(orderID, driverUserID int) (bool, error) {
	args := m.Called(orderID, driverUserID)
	return args.Bool(0), args.Error(1)
}

func (m *OrderRepository) SetQRCode(orderID int, png []byte) error {
	return m.Called(orderID, png).Error(0)
}

func (m *OrderRepository) GetQRCode(orderID int) ([]byte, error) {
	args := m.Called(orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

type CatalogGateway struct {
	mock.Mock
}

func NewCatalogGateway(t testingT) *CatalogGateway {
	m := &CatalogGateway{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *CatalogGateway) GetMenuItem(ctx context.Context, id int) (*domain.CatalogItem, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CatalogItem), args.Error(1)
}

func (m *CatalogGateway) ReserveStock(ctx context.Context, reservationID string, items []domain.ReserveLine) error {
	return m.Called(ctx, reservationID, items).Error(0)
}

type PaymentGateway struct {
	mock.Mock
}

func NewPaymentGateway(t testingT) *PaymentGateway {
	m := &PaymentGateway{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *PaymentGateway) Authorize(ctx context.Context, orderID, userID int, amount float64, paymentMethod string) (int, error) {
	args := m.Called(ctx, orderID, userID, amount, paymentMethod)
	return args.Int(0), args.Error(1)
}

type DriverGateway struct {
	mock.Mock
}

func NewDriverGateway(t testingT) *DriverGateway {
	m := &DriverGateway{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *DriverGateway) Claim(ctx context.Context, driverUserID, orderID int) error {
	return m.Called(ctx, driverUserID, orderID).Error(0)
}

func (m *DriverGateway) CreditEarnings(ctx context.Context, driverUserID, orderID int, amount float64) error {
	return m.Called(ctx, driverUserID, orderID, amount).Error(0)
}

func (m *DriverGateway) Details(ctx context.Context, driverUserID int) (*domain.DriverContact, error) {
	args := m.Called(ctx, driverUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DriverContact), args.Error(1)
}

type EventPublisher struct {
	mock.Mock
}

func NewEventPublisher(t testingT) *EventPublisher {
	m := &EventPublisher{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *EventPublisher) PublishStatus(ctx context.Context, orderID int, status string) error {
	return m.Called(ctx, orderID, status).Error(0)
}

type OrderServiceInterface struct {
	mock.Mock
}

func NewOrderServiceInterface(t testingT) *OrderServiceInterface {
	m := &OrderServiceInterface{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *OrderServiceInterface) CreateOrder(ctx context.Context, req domain.CreateOrderRequest) (*domain.Order, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Order), args.Error(1)
}

func (m *OrderServiceInterface) ConfirmPayment(ctx context.Context, orderID, userID int, paymentMethod string) (*domain.Order, error) {
	args := m.Called(ctx, orderID, userID, paymentMethod)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Order), args.Error(1)
}

func (m *OrderServiceInterface) ClaimOrder(ctx context.Context, orderID, driverUserID int) error {
	return m.Called(ctx, orderID, driverUserID).Error(0)
}

func (m *OrderServiceInterface) CompleteOrder(ctx context.Context, orderID, driverUserID int) error {
	return m.Called(ctx, orderID, driverUserID).Error(0)
}

func (m *OrderServiceInterface) ConfirmReceived(ctx context.Context, orderID, userID int) error {
	return m.Called(ctx, orderID, userID).Error(0)
}

func (m *OrderServiceInterface) CancelOrder(ctx context.Context, orderID, userID int) error {
	return m.Called(ctx, orderID, userID).Error(0)
}

func (m *OrderServiceInterface) ListUserOrders(userID int) ([]domain.Order, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Order), args.Error(1)
}

func (m *OrderServiceInterface) GetOrderDetail(ctx context.Context, orderID, userID int) (*domain.Order, error) {
	args := m.Called(ctx, orderID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Order), args.Error(1)
}

func (m *OrderServiceInterface) GetOrderRecord(orderID int) (*domain.Order, error) {
	args := m.Called(orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Order), args.Error(1)
}

func (m *OrderServiceInterface) ListDriverOrders(driverUserID int) ([]domain.Order, error) {
	args := m.Called(driverUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Order), args.Error(1)
}

func (m *OrderServiceInterface) GetOrderQR(orderID int) ([]byte, error) {
	args := m.Called(orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}
