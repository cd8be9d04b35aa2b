package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"quickbite/driver-svc/internal/domain"
)

var (
	ErrDriverNotFound = errors.New("driver not found")
	ErrSalaryNotFound = errors.New("salary record not found")
	ErrOrderTaken     = errors.New("order is already assigned to another driver")
	ErrNothingToPay   = errors.New("driver wallet is empty")
	ErrInvalidDriver  = errors.New("driver registration is missing required fields")
	ErrInvalidRequest = errors.New("request is missing required fields")
)

type DriverService struct {
	repository DriverRepository
	users      UserDirectory
	orders     OrderCounts
}

func NewDriverService(repository DriverRepository, users UserDirectory, orders OrderCounts) *DriverService {
	return &DriverService{
		repository: repository,
		users:      users,
		orders:     orders,
	}
}

func (s *DriverService) Register(driver *domain.Driver) error {
	if driver.UserID <= 0 || driver.VehicleType == "" {
		return ErrInvalidDriver
	}
	driver.IsAvailable = true
	driver.IsOnJob = false
	driver.WalletBalance = 0
	return s.repository.InsertDriver(driver)
}

// Claim records the delivery task for the order. The unique order_id row in
// delivery_tasks is what makes exactly one claim win when several drivers
// race for the same order.
func (s *DriverService) Claim(ctx context.Context, req domain.ClaimRequest) error {
	if req.UserID <= 0 || req.OrderID <= 0 {
		return ErrInvalidRequest
	}

	driver, err := s.repository.GetByUserID(req.UserID)
	if err != nil {
		return err
	}

	claimed, err := s.repository.ClaimTask(ctx, driver.ID, req.OrderID)
	if err != nil {
		return fmt.Errorf("failed to record delivery task: %w", err)
	}
	if !claimed {
		return ErrOrderTaken
	}

	log.Printf("[driver-svc] driver %d (user %d) claimed order %d", driver.ID, req.UserID, req.OrderID)
	return nil
}

// Credit adds a completed delivery's commission to the driver's wallet.
// Replays on the same order are accepted as no-ops, and drivers the registry
// has not seen yet are registered on the fly so a credit is never lost.
func (s *DriverService) Credit(ctx context.Context, req domain.EarningsRequest) error {
	if req.UserID <= 0 || req.OrderID <= 0 || req.Amount <= 0 {
		return ErrInvalidRequest
	}

	driver, err := s.repository.GetByUserID(req.UserID)
	if errors.Is(err, ErrDriverNotFound) {
		driver = &domain.Driver{UserID: req.UserID, VehicleType: "unknown", IsAvailable: true}
		if err := s.repository.InsertDriver(driver); err != nil {
			return fmt.Errorf("failed to register driver for earnings: %w", err)
		}
		log.Printf("[driver-svc] auto-registered driver for user %d", req.UserID)
	} else if err != nil {
		return err
	}

	credited, err := s.repository.CreditEarning(ctx, driver.ID, req.OrderID, req.Amount)
	if err != nil {
		return fmt.Errorf("failed to credit earnings: %w", err)
	}
	if !credited {
		log.Printf("[driver-svc] order %d already credited, skipping", req.OrderID)
		return nil
	}

	log.Printf("[driver-svc] credited %.2f to driver %d for order %d", req.Amount, driver.ID, req.OrderID)
	return nil
}

func (s *DriverService) PayoutAll(ctx context.Context, driverID int) (*domain.DriverSalary, error) {
	period := time.Now().Format("2006-01")
	salary, err := s.repository.PayoutAll(ctx, driverID, period)
	if err != nil {
		return nil, err
	}
	log.Printf("[driver-svc] paid out %.2f to driver %d for %s", salary.Commission, driverID, period)
	return salary, nil
}

func (s *DriverService) SetAvailability(driverID int, status domain.StatusRequest) error {
	return s.repository.SetAvailability(driverID, status.IsAvailable, status.IsOnJob)
}

func (s *DriverService) GetByUserID(userID int) (*domain.Driver, error) {
	return s.repository.GetByUserID(userID)
}

func (s *DriverService) ListDrivers() ([]domain.Driver, error) {
	return s.repository.ListDrivers()
}

// AdminOverview joins drivers with user names and active order counts. The
// upstream reads are best effort: a failed lookup leaves the field empty
// rather than failing the listing.
func (s *DriverService) AdminOverview(ctx context.Context) ([]domain.DriverOverview, error) {
	drivers, err := s.repository.ListDrivers()
	if err != nil {
		return nil, err
	}

	names := map[int]string{}
	if users, err := s.users.ListUsers(ctx); err != nil {
		log.Printf("[driver-svc] warning: failed to fetch user directory: %v", err)
	} else {
		for _, user := range users {
			names[user.ID] = user.Name
		}
	}

	overview := make([]domain.DriverOverview, 0, len(drivers))
	for _, driver := range drivers {
		row := domain.DriverOverview{Driver: driver, Name: names[driver.UserID]}
		if count, err := s.orders.ActiveOrderCount(ctx, driver.UserID); err != nil {
			log.Printf("[driver-svc] warning: failed to count active orders for user %d: %v", driver.UserID, err)
		} else {
			row.ActiveOrders = count
		}
		overview = append(overview, row)
	}
	return overview, nil
}

func (s *DriverService) ListSalaries() ([]domain.DriverSalary, error) {
	return s.repository.ListSalaries()
}

func (s *DriverService) MarkSalaryPaid(salaryID int) error {
	return s.repository.MarkSalaryPaid(salaryID)
}
