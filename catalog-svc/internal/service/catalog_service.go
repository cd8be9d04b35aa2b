package service

import (
	"context"
	"errors"
	"fmt"
	"log"

	"quickbite/catalog-svc/internal/domain"
)

var (
	ErrRestaurantNotFound = errors.New("restaurant not found")
	ErrMenuItemNotFound   = errors.New("menu item not found")
	ErrInvalidReservation = errors.New("reservation must carry an id and at least one item")
)

// InsufficientStockError identifies the first line of a batch that could not
// be covered. The whole batch is rolled back when this is returned.
type InsufficientStockError struct {
	MenuItemID int
	Requested  int
	Remaining  int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for menu item %d: requested %d, remaining %d",
		e.MenuItemID, e.Requested, e.Remaining)
}

type CatalogService struct {
	repository CatalogRepository
	cache      MenuCache
}

func NewCatalogService(repository CatalogRepository, cache MenuCache) *CatalogService {
	return &CatalogService{
		repository: repository,
		cache:      cache,
	}
}

func (s *CatalogService) ListRestaurants() ([]domain.Restaurant, error) {
	restaurants, err := s.repository.ListRestaurants()
	if err != nil {
		return nil, err
	}
	for i := range restaurants {
		menus, err := s.repository.ListMenuItems(restaurants[i].ID)
		if err != nil {
			return nil, err
		}
		restaurants[i].Menus = menus
	}
	return restaurants, nil
}

func (s *CatalogService) GetRestaurant(id int) (*domain.Restaurant, error) {
	restaurant, err := s.repository.GetRestaurant(id)
	if err != nil {
		return nil, err
	}
	menus, err := s.repository.ListMenuItems(restaurant.ID)
	if err != nil {
		return nil, err
	}
	restaurant.Menus = menus
	return restaurant, nil
}

// GetMenuItem serves the order service's validation reads. Cached because
// every order creation fetches each line item once.
func (s *CatalogService) GetMenuItem(ctx context.Context, id int) (*domain.MenuItem, error) {
	key := s.cache.MenuItemKey(id)
	if cached, err := s.cache.GetMenuItem(ctx, key); err == nil && cached != nil {
		return cached, nil
	}

	item, err := s.repository.GetMenuItem(id)
	if err != nil {
		return nil, err
	}

	if err := s.cache.SetMenuItem(ctx, key, item); err != nil {
		log.Printf("[catalog-svc] warning: failed to cache menu item %d: %v", id, err)
	}
	return item, nil
}

func (s *CatalogService) CreateMenuItem(item *domain.MenuItem) error {
	if item.RestaurantID <= 0 || item.Name == "" || item.Price <= 0 || item.Stock < 0 {
		return fmt.Errorf("invalid menu item payload")
	}
	item.IsAvailable = true
	return s.repository.InsertMenuItem(item)
}

func (s *CatalogService) UpdateMenuStock(menuID, stock int) error {
	if stock < 0 {
		return fmt.Errorf("stock must not be negative")
	}
	if err := s.repository.SetMenuStock(menuID, stock); err != nil {
		return err
	}
	return s.invalidate(menuID)
}

func (s *CatalogService) UpdateMenuAvailability(menuID int, available bool) error {
	if err := s.repository.SetMenuAvailability(menuID, available); err != nil {
		return err
	}
	return s.invalidate(menuID)
}

// ReserveStock applies the batch decrement. All lines commit together or the
// batch fails with the first uncoverable line; retried reservation ids are
// accepted as no-op replays so order-svc can retry after a timeout without
// double-decrementing.
func (s *CatalogService) ReserveStock(ctx context.Context, req domain.ReserveStockRequest) error {
	if req.ReservationID == "" || len(req.Items) == 0 {
		return ErrInvalidReservation
	}
	for _, line := range req.Items {
		if line.MenuItemID <= 0 || line.Quantity <= 0 {
			return ErrInvalidReservation
		}
	}

	if err := s.repository.ReserveBatch(ctx, req.ReservationID, req.Items); err != nil {
		return err
	}

	keys := make([]string, 0, len(req.Items))
	for _, line := range req.Items {
		keys = append(keys, s.cache.MenuItemKey(line.MenuItemID))
	}
	if err := s.cache.Invalidate(ctx, keys...); err != nil {
		log.Printf("[catalog-svc] warning: failed to invalidate menu cache: %v", err)
	}
	return nil
}

func (s *CatalogService) invalidate(menuID int) error {
	if err := s.cache.Invalidate(context.Background(), s.cache.MenuItemKey(menuID)); err != nil {
		log.Printf("[catalog-svc] warning: failed to invalidate menu cache: %v", err)
	}
	return nil
}
