package service

import (
	"context"

	"quickbite/driver-svc/internal/domain"
)

type DriverServiceInterface interface {
	Register(driver *domain.Driver) error
	Claim(ctx context.Context, req domain.ClaimRequest) error
	Credit(ctx context.Context, req domain.EarningsRequest) error
	PayoutAll(ctx context.Context, driverID int) (*domain.DriverSalary, error)
	SetAvailability(driverID int, status domain.StatusRequest) error
	GetByUserID(userID int) (*domain.Driver, error)
	ListDrivers() ([]domain.Driver, error)
	AdminOverview(ctx context.Context) ([]domain.DriverOverview, error)
	ListSalaries() ([]domain.DriverSalary, error)
	MarkSalaryPaid(salaryID int) error
}

type DriverRepository interface {
	InsertDriver(driver *domain.Driver) error
	GetByUserID(userID int) (*domain.Driver, error)
	ListDrivers() ([]domain.Driver, error)
	SetAvailability(driverID int, available, onJob bool) error

	// ClaimTask records the delivery task; returns false when the order is
	// already assigned to another driver.
	ClaimTask(ctx context.Context, driverID, orderID int) (bool, error)

	// CreditEarning adds amount to the driver's wallet; returns false when
	// the order was already credited.
	CreditEarning(ctx context.Context, driverID, orderID int, amount float64) (bool, error)

	PayoutAll(ctx context.Context, driverID int, period string) (*domain.DriverSalary, error)
	ListSalaries() ([]domain.DriverSalary, error)
	MarkSalaryPaid(salaryID int) error
}

// UserDirectory and OrderCounts are the read-only upstream views the admin
// listing decorates drivers with. Neither is authoritative here.
type UserDirectory interface {
	ListUsers(ctx context.Context) ([]domain.DirectoryUser, error)
}

type OrderCounts interface {
	ActiveOrderCount(ctx context.Context, driverUserID int) (int, error)
}

var _ DriverServiceInterface = (*DriverService)(nil)
