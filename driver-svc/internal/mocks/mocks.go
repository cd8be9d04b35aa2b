// Package mocks provides testify mocks for the driver service interfaces.
package mocks

import (
	"context"

	"quickbite/driver-svc/internal/domain"

	"github.com/stretchr/testify/mock"
)

type testingT interface {
	mock.TestingT
	Cleanup(func())
}

type DriverRepository struct {
	mock.Mock
}

func NewDriverRepository(t testingT) *DriverRepository {
	m := &DriverRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *DriverRepository) InsertDriver(driver *domain.Driver) error {
	return m.Called(driver).Error(0)
}

func (m *DriverRepository) GetByUserID(userID int) (*domain.Driver, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Driver), args.Error(1)
}

func (m *DriverRepository) ListDrivers() ([]domain.Driver, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Driver), args.Error(1)
}

func (m *DriverRepository) SetAvailability(driverID int, available, onJob bool) error {
	return m.Called(driverID, available, onJob).Error(0)
}

func (m *DriverRepository) ClaimTask(ctx context.Context, driverID, orderID int) (bool, error) {
	args := m.Called(ctx, driverID, orderID)
	return args.Bool(0), args.Error(1)
}

func (m *DriverRepository) CreditEarning(ctx context.Context, driverID, orderID int, amount float64) (bool, error) {
	args := m.Called(ctx, driverID, orderID, amount)
	return args.Bool(0), args.Error(1)
}

func (m *DriverRepository) PayoutAll(ctx context.Context, driverID int, period string) (*domain.DriverSalary, error) {
	args := m.Called(ctx, driverID, period)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DriverSalary), args.Error(1)
}

func (m *DriverRepository) ListSalaries() ([]domain.DriverSalary, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DriverSalary), args.Error(1)
}

func (m *DriverRepository) MarkSalaryPaid(salaryID int) error {
	return m.Called(salaryID).Error(0)
}

type UserDirectory struct {
	mock.Mock
}

func NewUserDirectory(t testingT) *UserDirectory {
	m := &UserDirectory{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *UserDirectory) ListUsers(ctx context.Context) ([]domain.DirectoryUser, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DirectoryUser), args.Error(1)
}

type OrderCounts struct {
	mock.Mock
}

func NewOrderCounts(t testingT) *OrderCounts {
	m := &OrderCounts{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *OrderCounts) ActiveOrderCount(ctx context.Context, driverUserID int) (int, error) {
	args := m.Called(ctx, driverUserID)
	return args.Int(0), args.Error(1)
}

type DriverServiceInterface struct {
	mock.Mock
}

func NewDriverServiceInterface(t testingT) *DriverServiceInterface {
	m := &DriverServiceInterface{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *DriverServiceInterface) Register(driver *domain.Driver) error {
	return m.Called(driver).Error(0)
}

func (m *DriverServiceInterface) Claim(ctx context.Context, req domain.ClaimRequest) error {
	return m.Called(ctx, req).Error(0)
}

func (m *DriverServiceInterface) Credit(ctx context.Context, req domain.EarningsRequest) error {
	return m.Called(ctx, req).Error(0)
}

func (m *DriverServiceInterface) PayoutAll(ctx context.Context, driverID int) (*domain.DriverSalary, error) {
	args := m.Called(ctx, driverID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DriverSalary), args.Error(1)
}

func (m *DriverServiceInterface) SetAvailability(driverID int, status domain.StatusRequest) error {
	return m.Called(driverID, status).Error(0)
}

func (m *DriverServiceInterface) GetByUserID(userID int) (*domain.Driver, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Driver), args.Error(1)
}

func (m *DriverServiceInterface) ListDrivers() ([]domain.Driver, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Driver), args.Error(1)
}

func (m *DriverServiceInterface) AdminOverview(ctx context.Context) ([]domain.DriverOverview, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DriverOverview), args.Error(1)
}

func (m *DriverServiceInterface) ListSalaries() ([]domain.DriverSalary, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DriverSalary), args.Error(1)
}

func (m *DriverServiceInterface) MarkSalaryPaid(salaryID int) error {
	return m.Called(salaryID).Error(0)
}
