// Package mocks provides testify mocks for the catalog service interfaces.
package mocks

import (
	"context"

	"quickbite/catalog-svc/internal/domain"

	"github.com/stretchr/testify/mock"
)

type testingT interface {
	mock.TestingT
	Cleanup(func())
}

type CatalogRepository struct {
	mock.Mock
}

func NewCatalogRepository(t testingT) *CatalogRepository {
	m := &CatalogRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *CatalogRepository) ListRestaurants() ([]domain.Restaurant, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Restaurant), args.Error(1)
}

func (m *CatalogRepository) GetRestaurant(id int) (*domain.Restaurant, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Restaurant), args.Error(1)
}

func (m *CatalogRepository) ListMenuItems(restaurantID int) ([]domain.MenuItem, error) {
	args := m.Called(restaurantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MenuItem), args.Error(1)
}

func (m *CatalogRepository) GetMenuItem(id int) (*domain.MenuItem, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MenuItem), args.Error(1)
}

func (m *CatalogRepository) InsertMenuItem(item *domain.MenuItem) error {
	return m.Called(item).Error(0)
}

func (m *CatalogRepository) SetMenuStock(menuID, stock int) error {
	return m.Called(menuID, stock).Error(0)
}

func (m *CatalogRepository) SetMenuAvailability(menuID int, available bool) error {
	return m.Called(menuID, available).Error(0)
}

func (m *CatalogRepository) ReserveBatch(ctx context.Context, reservationID string, items []domain.StockLine) error {
	return m.Called(ctx, reservationID, items).Error(0)
}

type MenuCache struct {
	mock.Mock
}

func NewMenuCache(t testingT) *MenuCache {
	m := &MenuCache{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MenuCache) MenuItemKey(id int) string {
	return m.Called(id).String(0)
}

func (m *MenuCache) GetMenuItem(ctx context.Context, key string) (*domain.MenuItem, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MenuItem), args.Error(1)
}

func (m *MenuCache) SetMenuItem(ctx context.Context, key string, item *domain.MenuItem) error {
	return m.Called(ctx, key, item).Error(0)
}

func (m *MenuCache) Invalidate(ctx context.Context, keys ...string) error {
	callArgs := make([]interface{}, 0, len(keys)+1)
	callArgs = append(callArgs, ctx)
	for _, key := range keys {
		callArgs = append(callArgs, key)
	}
	return m.Called(callArgs...).Error(0)
}

type CatalogServiceInterface struct {
	mock.Mock
}

func NewCatalogServiceInterface(t testingT) *CatalogServiceInterface {
	m := &CatalogServiceInterface{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *CatalogServiceInterface) ListRestaurants() ([]domain.Restaurant, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Restaurant), args.Error(1)
}

func (m *CatalogServiceInterface) GetRestaurant(id int) (*domain.Restaurant, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Restaurant), args.Error(1)
}

func (m *CatalogServiceInterface) GetMenuItem(ctx context.Context, id int) (*domain.MenuItem, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MenuItem), args.Error(1)
}

func (m *CatalogServiceInterface) CreateMenuItem(item *domain.MenuItem) error {
	return m.Called(item).Error(0)
}

func (m *CatalogServiceInterface) UpdateMenuStock(menuID, stock int) error {
	return m.Called(menuID, stock).Error(0)
}

func (m *CatalogServiceInterface) UpdateMenuAvailability(menuID int, available bool) error {
	return m.Called(menuID, available).Error(0)
}

func (m *CatalogServiceInterface) ReserveStock(ctx context.Context, req domain.ReserveStockRequest) error {
	return m.Called(ctx, req).Error(0)
}
