package tests

import (
	"context"
	"testing"

	"quickbite/catalog-svc/internal/domain"
	"quickbite/catalog-svc/internal/mocks"
	"quickbite/catalog-svc/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestCatalogService_GetMenuItem(t *testing.T) {
	ctx := context.Background()

	t.Run("cache_hit_skips_repository", func(t *testing.T) {
		repository := mocks.NewCatalogRepository(t)
		cache := mocks.NewMenuCache(t)
		svc := service.NewCatalogService(repository, cache)

		cached := &domain.MenuItem{ID: 5, RestaurantID: 1, Name: "Nasi Goreng", Price: 25000, Stock: 7}
		cache.On("MenuItemKey", 5).Return("menu-item:5").Once()
		cache.On("GetMenuItem", ctx, "menu-item:5").Return(cached, nil).Once()

		item, err := svc.GetMenuItem(ctx, 5)
		assert.NoError(t, err)
		assert.Equal(t, cached, item)
	})

	t.Run("cache_miss_reads_repository_and_fills_cache", func(t *testing.T) {
		repository := mocks.NewCatalogRepository(t)
		cache := mocks.NewMenuCache(t)
		svc := service.NewCatalogService(repository, cache)

		stored := &domain.MenuItem{ID: 5, RestaurantID: 1, Name: "Nasi Goreng", Price: 25000, Stock: 7}
		cache.On("MenuItemKey", 5).Return("menu-item:5").Once()
		cache.On("GetMenuItem", ctx, "menu-item:5").Return(nil, nil).Once()
		repository.On("GetMenuItem", 5).Return(stored, nil).Once()
		cache.On("SetMenuItem", ctx, "menu-item:5", stored).Return(nil).Once()

		item, err := svc.GetMenuItem(ctx, 5)
		assert.NoError(t, err)
		assert.Equal(t, stored, item)
	})

	t.Run("not_found_propagates", func(t *testing.T) {
		repository := mocks.NewCatalogRepository(t)
		cache := mocks.NewMenuCache(t)
		svc := service.NewCatalogService(repository, cache)

		cache.On("MenuItemKey", 99).Return("menu-item:99").Once()
		cache.On("GetMenuItem", ctx, "menu-item:99").Return(nil, nil).Once()
		repository.On("GetMenuItem", 99).Return(nil, service.ErrMenuItemNotFound).Once()

		_, err := svc.GetMenuItem(ctx, 99)
		assert.ErrorIs(t, err, service.ErrMenuItemNotFound)
	})
}

func TestCatalogService_ReserveStock(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name          string
		request       domain.ReserveStockRequest
		prepareMocks  func(repository *mocks.CatalogRepository, cache *mocks.MenuCache)
		expectedError error
	}{
		{
			name: "success_invalidates_cached_lines",
			request: domain.ReserveStockRequest{
				ReservationID: "res-1",
				Items: []domain.StockLine{
					{MenuItemID: 1, Quantity: 2},
					{MenuItemID: 2, Quantity: 1},
				},
			},
			prepareMocks: func(repository *mocks.CatalogRepository, cache *mocks.MenuCache) {
				repository.On("ReserveBatch", ctx, "res-1", mock.Anything).Return(nil).Once()
				cache.On("MenuItemKey", 1).Return("menu-item:1").Once()
				cache.On("MenuItemKey", 2).Return("menu-item:2").Once()
				cache.On("Invalidate", ctx, "menu-item:1", "menu-item:2").Return(nil).Once()
			},
			expectedError: nil,
		},
		{
			name: "missing_reservation_id_rejected_before_any_write",
			request: domain.ReserveStockRequest{
				Items: []domain.StockLine{{MenuItemID: 1, Quantity: 2}},
			},
			prepareMocks:  func(*mocks.CatalogRepository, *mocks.MenuCache) {},
			expectedError: service.ErrInvalidReservation,
		},
		{
			name: "zero_quantity_rejected_before_any_write",
			request: domain.ReserveStockRequest{
				ReservationID: "res-2",
				Items:         []domain.StockLine{{MenuItemID: 1, Quantity: 0}},
			},
			prepareMocks:  func(*mocks.CatalogRepository, *mocks.MenuCache) {},
			expectedError: service.ErrInvalidReservation,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			repository := mocks.NewCatalogRepository(t)
			cache := mocks.NewMenuCache(t)
			svc := service.NewCatalogService(repository, cache)

			testCase.prepareMocks(repository, cache)
			err := svc.ReserveStock(ctx, testCase.request)
			assert.ErrorIs(t, err, testCase.expectedError)
		})
	}
}

func TestCatalogService_ReserveStock_InsufficientPropagates(t *testing.T) {
	ctx := context.Background()
	repository := mocks.NewCatalogRepository(t)
	cache := mocks.NewMenuCache(t)
	svc := service.NewCatalogService(repository, cache)

	failure := &service.InsufficientStockError{MenuItemID: 2, Requested: 5, Remaining: 1}
	repository.On("ReserveBatch", ctx, "res-3", mock.Anything).Return(failure).Once()

	err := svc.ReserveStock(ctx, domain.ReserveStockRequest{
		ReservationID: "res-3",
		Items:         []domain.StockLine{{MenuItemID: 2, Quantity: 5}},
	})

	var insufficient *service.InsufficientStockError
	assert.ErrorAs(t, err, &insufficient)
	assert.Equal(t, 2, insufficient.MenuItemID)
	assert.Equal(t, 1, insufficient.Remaining)
}

func TestCatalogService_ListRestaurants(t *testing.T) {
	repository := mocks.NewCatalogRepository(t)
	cache := mocks.NewMenuCache(t)
	svc := service.NewCatalogService(repository, cache)

	repository.On("ListRestaurants").Return([]domain.Restaurant{{ID: 1, Name: "Warung Sederhana"}}, nil).Once()
	repository.On("ListMenuItems", 1).Return([]domain.MenuItem{{ID: 10, RestaurantID: 1, Name: "Sate Ayam"}}, nil).Once()

	restaurants, err := svc.ListRestaurants()
	assert.NoError(t, err)
	assert.Len(t, restaurants, 1)
	assert.Len(t, restaurants[0].Menus, 1)
}
