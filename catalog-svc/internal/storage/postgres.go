package storage

import (
	"context"
	"database/sql"
	"fmt"

	"quickbite/catalog-svc/internal/domain"
	"quickbite/catalog-svc/internal/service"
)

type PostgresRepository struct {
	DB *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{DB: db}
}

func (r *PostgresRepository) ListRestaurants() ([]domain.Restaurant, error) {
	rows, err := r.DB.Query(`
		SELECT id, name, COALESCE(address, ''), COALESCE(cuisine_type, ''), is_open, COALESCE(image_url, ''), created_at
		FROM restaurants
		ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	restaurants := []domain.Restaurant{}
	for rows.Next() {
		var rest domain.Restaurant
		if err := rows.Scan(&rest.ID, &rest.Name, &rest.Address, &rest.CuisineType, &rest.IsOpen, &rest.ImageURL, &rest.CreatedAt); err != nil {
			continue
		}
		restaurants = append(restaurants, rest)
	}
	return restaurants, rows.Err()
}

func (r *PostgresRepository) GetRestaurant(id int) (*domain.Restaurant, error) {
	var rest domain.Restaurant
	err := r.DB.QueryRow(`
		SELECT id, name, COALESCE(address, ''), COALESCE(cuisine_type, ''), is_open, COALESCE(image_url, ''), created_at
		FROM restaurants
		WHERE id = $1`, id).
		Scan(&rest.ID, &rest.Name, &rest.Address, &rest.CuisineType, &rest.IsOpen, &rest.ImageURL, &rest.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, service.ErrRestaurantNotFound
	}
	if err != nil {
		return nil, err
	}
	return &rest, nil
}

func (r *PostgresRepository) ListMenuItems(restaurantID int) ([]domain.MenuItem, error) {
	rows, err := r.DB.Query(`
		SELECT id, restaurant_id, name, COALESCE(description, ''), price, stock, is_available, COALESCE(category, ''), COALESCE(image_url, ''), created_at
		FROM menu_items
		WHERE restaurant_id = $1
		ORDER BY created_at DESC`, restaurantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []domain.MenuItem{}
	for rows.Next() {
		var item domain.MenuItem
		if err := rows.Scan(&item.ID, &item.RestaurantID, &item.Name, &item.Description, &item.Price,
			&item.Stock, &item.IsAvailable, &item.Category, &item.ImageURL, &item.CreatedAt); err != nil {
			continue
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (r *PostgresRepository) GetMenuItem(id int) (*domain.MenuItem, error) {
	var item domain.MenuItem
	err := r.DB.QueryRow(`
		SELECT id, restaurant_id, name, COALESCE(description, ''), price, stock, is_available, COALESCE(category, ''), COALESCE(image_url, ''), created_at
		FROM menu_items
		WHERE id = $1`, id).
		Scan(&item.ID, &item.RestaurantID, &item.Name, &item.Description, &item.Price,
			&item.Stock, &item.IsAvailable, &item.Category, &item.ImageURL, &item.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, service.ErrMenuItemNotFound
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *PostgresRepository) InsertMenuItem(item *domain.MenuItem) error {
	return r.DB.QueryRow(`
		INSERT INTO menu_items (restaurant_id, name, description, price, stock, is_available, category, image_url)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at`,
		item.RestaurantID, item.Name, item.Description, item.Price, item.Stock,
		item.IsAvailable, item.Category, item.ImageURL).
		Scan(&item.ID, &item.CreatedAt)
}

func (r *PostgresRepository) SetMenuStock(menuID, stock int) error {
	result, err := r.DB.Exec(`UPDATE menu_items SET stock = $1 WHERE id = $2`, stock, menuID)
	if err != nil {
		return err
	}
	if affected, _ := result.RowsAffected(); affected == 0 {
		return service.ErrMenuItemNotFound
	}
	return nil
}

func (r *PostgresRepository) SetMenuAvailability(menuID int, available bool) error {
	result, err := r.DB.Exec(`UPDATE menu_items SET is_available = $1 WHERE id = $2`, available, menuID)
	if err != nil {
		return err
	}
	if affected, _ := result.RowsAffected(); affected == 0 {
		return service.ErrMenuItemNotFound
	}
	return nil
}

// ReserveBatch is the isolation boundary for the whole batch: every line's
// check-and-decrement runs in one transaction, so either all items are
// decremented or none are. The reservation id is recorded in the same
// transaction, which makes a replayed batch a no-op.
func (r *PostgresRepository) ReserveBatch(ctx context.Context, reservationID string, items []domain.StockLine) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin reservation transaction: %w", err)
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx, `
		INSERT INTO stock_reservations (reservation_id)
		VALUES ($1)
		ON CONFLICT (reservation_id) DO NOTHING`, reservationID)
	if err != nil {
		return fmt.Errorf("failed to record reservation: %w", err)
	}
	if inserted, _ := result.RowsAffected(); inserted == 0 {
		// Already applied by an earlier attempt; succeed without touching stock.
		return tx.Commit()
	}

	for _, line := range items {
		result, err := tx.ExecContext(ctx, `
			UPDATE menu_items
			SET stock = stock - $2
			WHERE id = $1 AND is_available AND stock >= $2`,
			line.MenuItemID, line.Quantity)
		if err != nil {
			return fmt.Errorf("failed to decrement stock for item %d: %w", line.MenuItemID, err)
		}
		affected, _ := result.RowsAffected()
		if affected == 1 {
			continue
		}

		var remaining int
		err = tx.QueryRowContext(ctx, `SELECT stock FROM menu_items WHERE id = $1`, line.MenuItemID).Scan(&remaining)
		if err == sql.ErrNoRows {
			return service.ErrMenuItemNotFound
		}
		if err != nil {
			return fmt.Errorf("failed to read stock for item %d: %w", line.MenuItemID, err)
		}
		return &service.InsufficientStockError{
			MenuItemID: line.MenuItemID,
			Requested:  line.Quantity,
			Remaining:  remaining,
		}
	}

	return tx.Commit()
}
