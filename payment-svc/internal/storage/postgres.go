package storage

import (
	"database/sql"

	"quickbite/payment-svc/internal/domain"
	"quickbite/payment-svc/internal/service"
)

type PostgresRepository struct {
	DB *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{DB: db}
}

// InsertPayment relies on the unique order_id constraint: the conflicting
// insert returns no row, which reports the duplicate without a prior read.
func (r *PostgresRepository) InsertPayment(payment *domain.Payment) (bool, error) {
	err := r.DB.QueryRow(`
		INSERT INTO payments (order_id, user_id, amount, status, payment_method)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (order_id) DO NOTHING
		RETURNING id, created_at`,
		payment.OrderID, payment.UserID, payment.Amount, payment.Status, payment.PaymentMethod).
		Scan(&payment.ID, &payment.CreatedAt)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (r *PostgresRepository) GetByOrder(orderID int) (*domain.Payment, error) {
	var payment domain.Payment
	err := r.DB.QueryRow(`
		SELECT id, order_id, user_id, amount, status, COALESCE(payment_method, ''), created_at
		FROM payments
		WHERE order_id = $1`, orderID).
		Scan(&payment.ID, &payment.OrderID, &payment.UserID, &payment.Amount,
			&payment.Status, &payment.PaymentMethod, &payment.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, service.ErrPaymentNotFound
	}
	if err != nil {
		return nil, err
	}
	return &payment, nil
}

func (r *PostgresRepository) ListByUser(userID int) ([]domain.Payment, error) {
	rows, err := r.DB.Query(`
		SELECT id, order_id, user_id, amount, status, COALESCE(payment_method, ''), created_at
		FROM payments
		WHERE user_id = $1
		ORDER BY created_at DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	payments := []domain.Payment{}
	for rows.Next() {
		var payment domain.Payment
		if err := rows.Scan(&payment.ID, &payment.OrderID, &payment.UserID, &payment.Amount,
			&payment.Status, &payment.PaymentMethod, &payment.CreatedAt); err != nil {
			continue
		}
		payments = append(payments, payment)
	}
	return payments, rows.Err()
}
