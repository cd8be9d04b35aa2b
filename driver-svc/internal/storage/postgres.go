package storage

import (
	"context"
	"database/sql"
	"fmt"

	"quickbite/driver-svc/internal/domain"
	"quickbite/driver-svc/internal/service"
)

type PostgresRepository struct {
	DB *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{DB: db}
}

func (r *PostgresRepository) InsertDriver(driver *domain.Driver) error {
	return r.DB.QueryRow(`
		INSERT INTO drivers (user_id, vehicle_type, vehicle_number, is_available, is_on_job, wallet_balance)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at`,
		driver.UserID, driver.VehicleType, driver.VehicleNumber,
		driver.IsAvailable, driver.IsOnJob, driver.WalletBalance).
		Scan(&driver.ID, &driver.CreatedAt, &driver.UpdatedAt)
}

func (r *PostgresRepository) GetByUserID(userID int) (*domain.Driver, error) {
	var driver domain.Driver
	err := r.DB.QueryRow(`
		SELECT id, user_id, vehicle_type, COALESCE(vehicle_number, ''), is_available, is_on_job, wallet_balance, created_at, updated_at
		FROM drivers
		WHERE user_id = $1`, userID).
		Scan(&driver.ID, &driver.UserID, &driver.VehicleType, &driver.VehicleNumber,
			&driver.IsAvailable, &driver.IsOnJob, &driver.WalletBalance, &driver.CreatedAt, &driver.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, service.ErrDriverNotFound
	}
	if err != nil {
		return nil, err
	}
	return &driver, nil
}

func (r *PostgresRepository) ListDrivers() ([]domain.Driver, error) {
	rows, err := r.DB.Query(`
		SELECT id, user_id, vehicle_type, COALESCE(vehicle_number, ''), is_available, is_on_job, wallet_balance, created_at, updated_at
		FROM drivers
		ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	drivers := []domain.Driver{}
	for rows.Next() {
		var driver domain.Driver
		if err := rows.Scan(&driver.ID, &driver.UserID, &driver.VehicleType, &driver.VehicleNumber,
			&driver.IsAvailable, &driver.IsOnJob, &driver.WalletBalance, &driver.CreatedAt, &driver.UpdatedAt); err != nil {
			continue
		}
		drivers = append(drivers, driver)
	}
	return drivers, rows.Err()
}

func (r *PostgresRepository) SetAvailability(driverID int, available, onJob bool) error {
	result, err := r.DB.Exec(`
		UPDATE drivers
		SET is_available = $1, is_on_job = $2, updated_at = CURRENT_TIMESTAMP
		WHERE id = $3`, available, onJob, driverID)
	if err != nil {
		return err
	}
	if affected, _ := result.RowsAffected(); affected == 0 {
		return service.ErrDriverNotFound
	}
	return nil
}

// ClaimTask inserts the task record and flips the driver onto the job in one
// transaction. The unique order_id makes the insert the arbiter: a rival's
// claim sees zero rows and backs off without touching the driver, while a
// retry by the task's own driver is a successful no-op.
func (r *PostgresRepository) ClaimTask(ctx context.Context, driverID, orderID int) (bool, error) {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("failed to begin claim transaction: %w", err)
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx, `
		INSERT INTO delivery_tasks (order_id, driver_id, status)
		VALUES ($1, $2, $3)
		ON CONFLICT (order_id) DO NOTHING`, orderID, driverID, domain.TaskStatusAssigned)
	if err != nil {
		return false, err
	}
	if inserted, _ := result.RowsAffected(); inserted == 0 {
		var holderID int
		err := tx.QueryRowContext(ctx, `
			SELECT driver_id FROM delivery_tasks WHERE order_id = $1`, orderID).Scan(&holderID)
		if err != nil {
			return false, err
		}
		return holderID == driverID, tx.Commit()
	}

	if _, err := tx.ExecContext(ctx, `
		UPDATE drivers
		SET is_on_job = TRUE, updated_at = CURRENT_TIMESTAMP
		WHERE id = $1`, driverID); err != nil {
		return false, err
	}

	return true, tx.Commit()
}

// CreditEarning records the earning and increments the wallet together. The
// earnings ledger's unique order_id absorbs replays.
func (r *PostgresRepository) CreditEarning(ctx context.Context, driverID, orderID int, amount float64) (bool, error) {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("failed to begin earnings transaction: %w", err)
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx, `
		INSERT INTO driver_earnings (order_id, driver_id, amount)
		VALUES ($1, $2, $3)
		ON CONFLICT (order_id) DO NOTHING`, orderID, driverID, amount)
	if err != nil {
		return false, err
	}
	if inserted, _ := result.RowsAffected(); inserted == 0 {
		return false, tx.Commit()
	}

	if _, err := tx.ExecContext(ctx, `
		UPDATE drivers
		SET wallet_balance = wallet_balance + $1, updated_at = CURRENT_TIMESTAMP
		WHERE id = $2`, amount, driverID); err != nil {
		return false, err
	}

	return true, tx.Commit()
}

// PayoutAll zeroes the wallet and writes the salary record under a row lock,
// so two concurrent payouts cannot both capture the balance.
func (r *PostgresRepository) PayoutAll(ctx context.Context, driverID int, period string) (*domain.DriverSalary, error) {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin payout transaction: %w", err)
	}
	defer tx.Rollback()

	var balance float64
	err = tx.QueryRowContext(ctx, `
		SELECT wallet_balance FROM drivers WHERE id = $1 FOR UPDATE`, driverID).Scan(&balance)
	if err == sql.ErrNoRows {
		return nil, service.ErrDriverNotFound
	}
	if err != nil {
		return nil, err
	}
	if balance <= 0 {
		return nil, service.ErrNothingToPay
	}

	if _, err := tx.ExecContext(ctx, `
		UPDATE drivers
		SET wallet_balance = 0, updated_at = CURRENT_TIMESTAMP
		WHERE id = $1`, driverID); err != nil {
		return nil, err
	}

	salary := &domain.DriverSalary{
		DriverID:   driverID,
		Period:     period,
		Commission: balance,
		Status:     domain.SalaryStatusPaid,
	}
	err = tx.QueryRowContext(ctx, `
		INSERT INTO driver_salaries (driver_id, period, base_amount, commission, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at`,
		salary.DriverID, salary.Period, salary.BaseAmount, salary.Commission, salary.Status).
		Scan(&salary.ID, &salary.CreatedAt)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return salary, nil
}

func (r *PostgresRepository) ListSalaries() ([]domain.DriverSalary, error) {
	rows, err := r.DB.Query(`
		SELECT id, driver_id, period, base_amount, commission, status, created_at
		FROM driver_salaries
		ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	salaries := []domain.DriverSalary{}
	for rows.Next() {
		var salary domain.DriverSalary
		if err := rows.Scan(&salary.ID, &salary.DriverID, &salary.Period, &salary.BaseAmount,
			&salary.Commission, &salary.Status, &salary.CreatedAt); err != nil {
			continue
		}
		salaries = append(salaries, salary)
	}
	return salaries, rows.Err()
}

func (r *PostgresRepository) MarkSalaryPaid(salaryID int) error {
	result, err := r.DB.Exec(`
		UPDATE driver_salaries SET status = $1 WHERE id = $2`, domain.SalaryStatusPaid, salaryID)
	if err != nil {
		return err
	}
	if affected, _ := result.RowsAffected(); affected == 0 {
		return service.ErrSalaryNotFound
	}
	return nil
}
