package service

import (
	"context"

	"quickbite/catalog-svc/internal/domain"
)

type CatalogServiceInterface interface {
	ListRestaurants() ([]domain.Restaurant, error)
	GetRestaurant(id int) (*domain.Restaurant, error)
	GetMenuItem(ctx context.Context, id int) (*domain.MenuItem, error)
	CreateMenuItem(item *domain.MenuItem) error
	UpdateMenuStock(menuID, stock int) error
	UpdateMenuAvailability(menuID int, available bool) error
	ReserveStock(ctx context.Context, req domain.ReserveStockRequest) error
}

type CatalogRepository interface {
	ListRestaurants() ([]domain.Restaurant, error)
	GetRestaurant(id int) (*domain.Restaurant, error)
	ListMenuItems(restaurantID int) ([]domain.MenuItem, error)
	GetMenuItem(id int) (*domain.MenuItem, error)
	InsertMenuItem(item *domain.MenuItem) error
	SetMenuStock(menuID, stock int) error
	SetMenuAvailability(menuID int, available bool) error
	// ReserveBatch decrements every line inside one transaction, or none of
	// them. A reservation id seen before is a no-op replay.
	ReserveBatch(ctx context.Context, reservationID string, items []domain.StockLine) error
}

type MenuCache interface {
	MenuItemKey(id int) string
	GetMenuItem(ctx context.Context, key string) (*domain.MenuItem, error)
	SetMenuItem(ctx context.Context, key string, item *domain.MenuItem) error
	Invalidate(ctx context.Context, keys ...string) error
}

var _ CatalogServiceInterface = (*CatalogService)(nil)
