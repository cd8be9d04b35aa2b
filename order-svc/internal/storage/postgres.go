package storage

import (
	"context"
	"database/sql"
	"fmt"

	"quickbite/order-svc/internal/domain"
	"quickbite/order-svc/internal/service"

	"github.com/lib/pq"
)

type PostgresRepository struct {
	DB *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{DB: db}
}

const orderColumns = `id, user_id, restaurant_id, address_id, status, total_price,
	payment_id, driver_id, estimated_delivery_time, created_at, updated_at`

func scanOrder(row interface{ Scan(...interface{}) error }) (*domain.Order, error) {
	var order domain.Order
	var paymentID, driverID sql.NullInt64
	err := row.Scan(&order.ID, &order.UserID, &order.RestaurantID, &order.AddressID, &order.Status,
		&order.TotalPrice, &paymentID, &driverID, &order.EstimatedDeliveryTime,
		&order.CreatedAt, &order.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if paymentID.Valid {
		id := int(paymentID.Int64)
		order.PaymentID = &id
	}
	if driverID.Valid {
		id := int(driverID.Int64)
		order.DriverID = &id
	}
	order.Status = domain.NormalizeStatus(order.Status)
	return &order, nil
}

func (r *PostgresRepository) InsertOrder(ctx context.Context, order *domain.Order) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin order transaction: %w", err)
	}
	defer tx.Rollback()

	err = tx.QueryRowContext(ctx, `
		INSERT INTO orders (user_id, restaurant_id, address_id, status, total_price, estimated_delivery_time)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at`,
		order.UserID, order.RestaurantID, order.AddressID, order.Status,
		order.TotalPrice, order.EstimatedDeliveryTime).
		Scan(&order.ID, &order.CreatedAt, &order.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert order: %w", err)
	}

	for i := range order.Items {
		item := &order.Items[i]
		item.OrderID = order.ID
		err = tx.QueryRowContext(ctx, `
			INSERT INTO order_items (order_id, menu_item_id, menu_item_name, price, quantity)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING id`,
			item.OrderID, item.MenuItemID, item.MenuItemName, item.Price, item.Quantity).
			Scan(&item.ID)
		if err != nil {
			return fmt.Errorf("failed to insert order item: %w", err)
		}
	}

	return tx.Commit()
}

func (r *PostgresRepository) GetOrder(orderID int) (*domain.Order, error) {
	order, err := scanOrder(r.DB.QueryRow(`SELECT `+orderColumns+` FROM orders WHERE id = $1`, orderID))
	if err == sql.ErrNoRows {
		return nil, service.ErrOrderNotFound
	}
	if err != nil {
		return nil, err
	}

	items, err := r.listItems(order.ID)
	if err != nil {
		return nil, err
	}
	order.Items = items
	return order, nil
}

func (r *PostgresRepository) listItems(orderID int) ([]domain.OrderItem, error) {
	rows, err := r.DB.Query(`
		SELECT id, order_id, menu_item_id, menu_item_name, price, quantity
		FROM order_items
		WHERE order_id = $1
		ORDER BY id`, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []domain.OrderItem{}
	for rows.Next() {
		var item domain.OrderItem
		if err := rows.Scan(&item.ID, &item.OrderID, &item.MenuItemID, &item.MenuItemName,
			&item.Price, &item.Quantity); err != nil {
			continue
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (r *PostgresRepository) listOrders(query string, args ...interface{}) ([]domain.Order, error) {
	rows, err := r.DB.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := []domain.Order{}
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			continue
		}
		orders = append(orders, *order)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range orders {
		items, err := r.listItems(orders[i].ID)
		if err != nil {
			return nil, err
		}
		orders[i].Items = items
	}
	return orders, nil
}

func (r *PostgresRepository) ListByUser(userID int) ([]domain.Order, error) {
	return r.listOrders(`
		SELECT `+orderColumns+` FROM orders
		WHERE user_id = $1
		ORDER BY created_at DESC`, userID)
}

func (r *PostgresRepository) ListActiveByDriver(driverUserID int) ([]domain.Order, error) {
	return r.listOrders(`
		SELECT `+orderColumns+` FROM orders
		WHERE driver_id = $1 AND status = ANY($2)
		ORDER BY created_at`, driverUserID, pq.Array(append(domain.ActiveStatuses, domain.StatusLegacyOnDelivery)))
}

func (r *PostgresRepository) UpdateStatusIf(orderID int, from []string, to string) (bool, error) {
	result, err := r.DB.Exec(`
		UPDATE orders
		SET status = $1, updated_at = CURRENT_TIMESTAMP
		WHERE id = $2 AND status = ANY($3)`, to, orderID, pq.Array(from))
	if err != nil {
		return false, err
	}
	affected, _ := result.RowsAffected()
	return affected == 1, nil
}

func (r *PostgresRepository) SetPaid(orderID, paymentID int) (bool, error) {
	result, err := r.DB.Exec(`
		UPDATE orders
		SET status = $1, payment_id = $2, updated_at = CURRENT_TIMESTAMP
		WHERE id = $3 AND status = $4`,
		domain.StatusPaid, paymentID, orderID, domain.StatusPendingPayment)
	if err != nil {
		return false, err
	}
	affected, _ := result.RowsAffected()
	return affected == 1, nil
}

// AssignDriver picks the claim winner: the row lock serializes concurrent
// claims, and only an order with an empty driver slot in a claimable state
// gets the driver written in.
func (r *PostgresRepository) AssignDriver(ctx context.Context, orderID, driverUserID int) (string, error) {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("failed to begin claim transaction: %w", err)
	}
	defer tx.Rollback()

	var status string
	var driverID sql.NullInt64
	err = tx.QueryRowContext(ctx, `
		SELECT status, driver_id FROM orders WHERE id = $1 FOR UPDATE`, orderID).
		Scan(&status, &driverID)
	if err == sql.ErrNoRows {
		return "", service.ErrOrderNotFound
	}
	if err != nil {
		return "", err
	}
	if driverID.Valid {
		return "", service.ErrAlreadyClaimed
	}

	status = domain.NormalizeStatus(status)
	if status != domain.StatusPaid && status != domain.StatusPreparing {
		return "", fmt.Errorf("%w: order is %s", service.ErrInvalidTransition, status)
	}

	if _, err := tx.ExecContext(ctx, `
		UPDATE orders
		SET driver_id = $1, status = $2, updated_at = CURRENT_TIMESTAMP
		WHERE id = $3`, driverUserID, domain.StatusOnTheWay, orderID); err != nil {
		return "", err
	}

	if err := tx.Commit(); err != nil {
		return "", err
	}
	return status, nil
}

func (r *PostgresRepository) ClearDriver(orderID, driverUserID int, restoreStatus string) error {
	_, err := r.DB.Exec(`
		UPDATE orders
		SET driver_id = NULL, status = $1, updated_at = CURRENT_TIMESTAMP
		WHERE id = $2 AND driver_id = $3`, restoreStatus, orderID, driverUserID)
	return err
}

func (r *PostgresRepository) MarkDelivered(orderID, driverUserID int) (bool, error) {
	result, err := r.DB.Exec(`
		UPDATE orders
		SET status = $1, updated_at = CURRENT_TIMESTAMP
		WHERE id = $2 AND driver_id = $3 AND status = ANY($4)`,
		domain.StatusDelivered, orderID, driverUserID,
		pq.Array(domain.OnTheWaySpellings))
	if err != nil {
		return false, err
	}
	affected, _ := result.RowsAffected()
	return affected == 1, nil
}

func (r *PostgresRepository) SetQRCode(orderID int, png []byte) error {
	_, err := r.DB.Exec(`UPDATE orders SET qr_code = $1 WHERE id = $2`, png, orderID)
	return err
}

func (r *PostgresRepository) GetQRCode(orderID int) ([]byte, error) {
	var png []byte
	err := r.DB.QueryRow(`SELECT qr_code FROM orders WHERE id = $1`, orderID).Scan(&png)
	if err == sql.ErrNoRows {
		return nil, service.ErrOrderNotFound
	}
	if err != nil {
		return nil, err
	}
	return png, nil
}
