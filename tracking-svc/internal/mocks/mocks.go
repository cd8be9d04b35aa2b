// Package mocks provides testify mocks for the tracking service interfaces.
package mocks

import (
	"context"

	"quickbite/tracking-svc/internal/domain"

	"github.com/stretchr/testify/mock"
)

type testingT interface {
	mock.TestingT
	Cleanup(func())
}

type StoreInterface struct {
	mock.Mock
}

func NewStoreInterface(t testingT) *StoreInterface {
	m := &StoreInterface{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *StoreInterface) SaveStatus(ctx context.Context, event domain.OrderEvent) error {
	return m.Called(ctx, event).Error(0)
}

func (m *StoreInterface) GetStatus(ctx context.Context, orderID int) (*domain.OrderStatus, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.OrderStatus), args.Error(1)
}
