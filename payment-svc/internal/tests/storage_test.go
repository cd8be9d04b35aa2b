package tests

import (
	"testing"
	"time"

	"quickbite/payment-svc/internal/domain"
	"quickbite/payment-svc/internal/service"
	"quickbite/payment-svc/internal/storage"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostgresRepository_InsertPayment(t *testing.T) {
	t.Run("first_payment_for_order_inserts", func(t *testing.T) {
		db, dbmock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		repository := storage.NewPostgresRepository(db)

		dbmock.ExpectQuery("INSERT INTO payments").
			WithArgs(7, 3, 65000.0, domain.PaymentStatusSuccess, "card").
			WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(1, time.Now()))

		payment := &domain.Payment{OrderID: 7, UserID: 3, Amount: 65000, Status: domain.PaymentStatusSuccess, PaymentMethod: "card"}
		inserted, err := repository.InsertPayment(payment)
		assert.NoError(t, err)
		assert.True(t, inserted)
		assert.Equal(t, 1, payment.ID)
		assert.NoError(t, dbmock.ExpectationsWereMet())
	})

	t.Run("conflicting_order_id_reports_duplicate", func(t *testing.T) {
		db, dbmock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		repository := storage.NewPostgresRepository(db)

		dbmock.ExpectQuery("INSERT INTO payments").
			WithArgs(7, 3, 65000.0, domain.PaymentStatusSuccess, "card").
			WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}))

		payment := &domain.Payment{OrderID: 7, UserID: 3, Amount: 65000, Status: domain.PaymentStatusSuccess, PaymentMethod: "card"}
		inserted, err := repository.InsertPayment(payment)
		assert.NoError(t, err)
		assert.False(t, inserted)
		assert.NoError(t, dbmock.ExpectationsWereMet())
	})
}

func TestPostgresRepository_GetByOrder_NotFound(t *testing.T) {
	db, dbmock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repository := storage.NewPostgresRepository(db)

	dbmock.ExpectQuery("SELECT (.+) FROM payments").
		WithArgs(42).
		WillReturnRows(sqlmock.NewRows([]string{"id", "order_id", "user_id", "amount", "status", "payment_method", "created_at"}))

	_, err = repository.GetByOrder(42)
	assert.ErrorIs(t, err, service.ErrPaymentNotFound)
	assert.NoError(t, dbmock.ExpectationsWereMet())
}
