package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"quickbite/order-svc/internal/domain"

	"github.com/google/uuid"
	qrcode "github.com/skip2/go-qrcode"
)

var (
	ErrOrderNotFound     = errors.New("order not found")
	ErrNotOwner          = errors.New("order belongs to another user")
	ErrValidation        = errors.New("order request is invalid")
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrInvalidTransition = errors.New("order is not in a state that allows this operation")
	ErrAlreadyClaimed    = errors.New("order is already assigned to a driver")
	ErrAlreadyPaid       = errors.New("order is already paid")
	ErrUpstream          = errors.New("upstream service unavailable")
	ErrNoQRCode          = errors.New("order has no tracking code")
)

// Config carries the tunables the order flow depends on. Injected from
// main.go; the service never reads the environment itself.
type Config struct {
	CommissionRate   float64
	DeliveryEstimate time.Duration
	TrackingBaseURL  string
}

func DefaultConfig() Config {
	return Config{
		CommissionRate:   0.10,
		DeliveryEstimate: 45 * time.Minute,
		TrackingBaseURL:  "http://localhost:8080",
	}
}

type OrderService struct {
	repository OrderRepository
	catalog    CatalogGateway
	payments   PaymentGateway
	drivers    DriverGateway
	events     EventPublisher
	cfg        Config
}

func NewOrderService(repository OrderRepository, catalog CatalogGateway, payments PaymentGateway,
	drivers DriverGateway, events EventPublisher, cfg Config) *OrderService {
	return &OrderService{
		repository: repository,
		catalog:    catalog,
		payments:   payments,
		drivers:    drivers,
		events:     events,
		cfg:        cfg,
	}
}

// CreateOrder validates every line against the catalog, prices the order
// from the catalog's prices only, reserves stock in one atomic batch and
// persists the order with its item snapshots. Any downstream failure aborts
// the whole creation.
func (s *OrderService) CreateOrder(ctx context.Context, req domain.CreateOrderRequest) (*domain.Order, error) {
	if req.UserID <= 0 || req.RestaurantID <= 0 || req.AddressID <= 0 || len(req.Items) == 0 {
		return nil, fmt.Errorf("%w: user, restaurant, address and items are required", ErrValidation)
	}

	var total float64
	snapshots := make([]domain.OrderItem, 0, len(req.Items))
	reserveLines := make([]domain.ReserveLine, 0, len(req.Items))
	for _, line := range req.Items {
		if line.Quantity <= 0 {
			return nil, fmt.Errorf("%w: quantity must be positive for item %d", ErrValidation, line.MenuItemID)
		}

		item, err := s.catalog.GetMenuItem(ctx, line.MenuItemID)
		if err != nil {
			return nil, err
		}
		if item.RestaurantID != req.RestaurantID {
			return nil, fmt.Errorf("%w: menu item %d does not belong to restaurant %d",
				ErrValidation, line.MenuItemID, req.RestaurantID)
		}
		if !item.IsAvailable || item.Stock < line.Quantity {
			return nil, fmt.Errorf("%w: menu item %d", ErrInsufficientStock, line.MenuItemID)
		}

		total += item.Price * float64(line.Quantity)
		snapshots = append(snapshots, domain.OrderItem{
			MenuItemID:   item.ID,
			MenuItemName: item.Name,
			Price:        item.Price,
			Quantity:     line.Quantity,
		})
		reserveLines = append(reserveLines, domain.ReserveLine{MenuItemID: line.MenuItemID, Quantity: line.Quantity})
	}

	// A fresh token per attempt; the catalog treats a replayed token as a
	// no-op, so a timed-out reservation can be retried safely.
	reservationID := uuid.NewString()
	if err := s.catalog.ReserveStock(ctx, reservationID, reserveLines); err != nil {
		return nil, err
	}

	order := &domain.Order{
		UserID:                req.UserID,
		RestaurantID:          req.RestaurantID,
		AddressID:             req.AddressID,
		Status:                domain.StatusPendingPayment,
		TotalPrice:            total,
		EstimatedDeliveryTime: time.Now().Add(s.cfg.DeliveryEstimate),
		Items:                 snapshots,
	}
	if err := s.repository.InsertOrder(ctx, order); err != nil {
		return nil, fmt.Errorf("failed to persist order: %w", err)
	}

	s.attachTrackingQR(order.ID)
	s.publish(ctx, order.ID, order.Status)

	log.Printf("[order-svc] created order %d for user %d, total %.2f", order.ID, order.UserID, order.TotalPrice)
	return order, nil
}

// ConfirmPayment runs the payment gate and conditionally moves the order to
// PAID. The conditional update means a race with another pay attempt leaves
// exactly one winner.
func (s *OrderService) ConfirmPayment(ctx context.Context, orderID, userID int, paymentMethod string) (*domain.Order, error) {
	order, err := s.repository.GetOrder(orderID)
	if err != nil {
		return nil, err
	}
	if order.UserID != userID {
		return nil, ErrNotOwner
	}
	if order.Status != domain.StatusPendingPayment {
		return nil, fmt.Errorf("%w: order is %s", ErrInvalidTransition, order.Status)
	}

	paymentID, err := s.payments.Authorize(ctx, orderID, userID, order.TotalPrice, paymentMethod)
	if err != nil {
		return nil, err
	}

	updated, err := s.repository.SetPaid(orderID, paymentID)
	if err != nil {
		return nil, err
	}
	if !updated {
		return nil, fmt.Errorf("%w: order left PENDING_PAYMENT concurrently", ErrInvalidTransition)
	}

	order.Status = domain.StatusPaid
	order.PaymentID = &paymentID
	s.publish(ctx, orderID, domain.StatusPaid)

	log.Printf("[order-svc] order %d paid (payment %d)", orderID, paymentID)
	return order, nil
}

// ClaimOrder fills the order's driver slot and registers the task with the
// driver registry. The local conditional update picks the single winner; a
// failed registry call gives the slot back so the order stays claimable.
func (s *OrderService) ClaimOrder(ctx context.Context, orderID, driverUserID int) error {
	if driverUserID <= 0 {
		return fmt.Errorf("%w: driver user id is required", ErrValidation)
	}

	previousStatus, err := s.repository.AssignDriver(ctx, orderID, driverUserID)
	if err != nil {
		return err
	}

	if err := s.drivers.Claim(ctx, driverUserID, orderID); err != nil {
		if restoreErr := s.repository.ClearDriver(orderID, driverUserID, previousStatus); restoreErr != nil {
			log.Printf("[order-svc] warning: failed to release driver slot on order %d: %v", orderID, restoreErr)
		}
		return err
	}

	s.publish(ctx, orderID, domain.StatusOnTheWay)
	log.Printf("[order-svc] order %d claimed by driver user %d", orderID, driverUserID)
	return nil
}

// CompleteOrder marks the delivery done and credits the driver's commission.
// The credit is best effort: the delivery stands even when the earnings call
// fails, and the registry's ledger absorbs a later replay.
func (s *OrderService) CompleteOrder(ctx context.Context, orderID, driverUserID int) error {
	delivered, err := s.repository.MarkDelivered(orderID, driverUserID)
	if err != nil {
		return err
	}
	if !delivered {
		return fmt.Errorf("%w: order is not on the way with this driver", ErrInvalidTransition)
	}

	order, err := s.repository.GetOrder(orderID)
	if err != nil {
		return err
	}
	commission := order.TotalPrice * s.cfg.CommissionRate
	if err := s.drivers.CreditEarnings(ctx, driverUserID, orderID, commission); err != nil {
		log.Printf("[order-svc] warning: failed to credit %.2f to driver user %d for order %d: %v",
			commission, driverUserID, orderID, err)
	}

	s.publish(ctx, orderID, domain.StatusDelivered)
	log.Printf("[order-svc] order %d delivered by driver user %d", orderID, driverUserID)
	return nil
}

func (s *OrderService) ConfirmReceived(ctx context.Context, orderID, userID int) error {
	if err := s.checkOwner(orderID, userID); err != nil {
		return err
	}

	updated, err := s.repository.UpdateStatusIf(orderID, []string{domain.StatusDelivered}, domain.StatusCompleted)
	if err != nil {
		return err
	}
	if !updated {
		return fmt.Errorf("%w: order is not delivered yet", ErrInvalidTransition)
	}

	s.publish(ctx, orderID, domain.StatusCompleted)
	return nil
}

func (s *OrderService) CancelOrder(ctx context.Context, orderID, userID int) error {
	if err := s.checkOwner(orderID, userID); err != nil {
		return err
	}

	updated, err := s.repository.UpdateStatusIf(orderID, []string{domain.StatusPendingPayment}, domain.StatusCancelled)
	if err != nil {
		return err
	}
	if !updated {
		return fmt.Errorf("%w: only unpaid orders can be cancelled", ErrInvalidTransition)
	}

	s.publish(ctx, orderID, domain.StatusCancelled)
	log.Printf("[order-svc] order %d cancelled by user %d", orderID, userID)
	return nil
}

func (s *OrderService) ListUserOrders(userID int) ([]domain.Order, error) {
	return s.repository.ListByUser(userID)
}

// GetOrderDetail is the customer-facing read: owner-checked, with the
// assigned driver's contact attached when one exists. The contact lookup is
// never allowed to fail the read.
func (s *OrderService) GetOrderDetail(ctx context.Context, orderID, userID int) (*domain.Order, error) {
	order, err := s.repository.GetOrder(orderID)
	if err != nil {
		return nil, err
	}
	if order.UserID != userID {
		return nil, ErrNotOwner
	}

	if order.DriverID != nil {
		if contact, err := s.drivers.Details(ctx, *order.DriverID); err != nil {
			log.Printf("[order-svc] warning: failed to fetch driver details for order %d: %v", orderID, err)
		} else {
			order.Driver = contact
		}
	}
	return order, nil
}

func (s *OrderService) GetOrderRecord(orderID int) (*domain.Order, error) {
	return s.repository.GetOrder(orderID)
}

func (s *OrderService) ListDriverOrders(driverUserID int) ([]domain.Order, error) {
	return s.repository.ListActiveByDriver(driverUserID)
}

func (s *OrderService) GetOrderQR(orderID int) ([]byte, error) {
	png, err := s.repository.GetQRCode(orderID)
	if err != nil {
		return nil, err
	}
	if len(png) == 0 {
		return nil, ErrNoQRCode
	}
	return png, nil
}

func (s *OrderService) checkOwner(orderID, userID int) error {
	order, err := s.repository.GetOrder(orderID)
	if err != nil {
		return err
	}
	if order.UserID != userID {
		return ErrNotOwner
	}
	return nil
}

func (s *OrderService) attachTrackingQR(orderID int) {
	url := fmt.Sprintf("%s/api/tracking/orders/%d", s.cfg.TrackingBaseURL, orderID)
	png, err := qrcode.Encode(url, qrcode.Medium, 256)
	if err != nil {
		log.Printf("[order-svc] warning: failed to generate QR for order %d: %v", orderID, err)
		return
	}
	if err := s.repository.SetQRCode(orderID, png); err != nil {
		log.Printf("[order-svc] warning: failed to store QR for order %d: %v", orderID, err)
	}
}

func (s *OrderService) publish(ctx context.Context, orderID int, status string) {
	if s.events == nil {
		return
	}
	if err := s.events.PublishStatus(ctx, orderID, status); err != nil {
		log.Printf("[order-svc] warning: failed to publish status %s for order %d: %v", status, orderID, err)
	}
}
