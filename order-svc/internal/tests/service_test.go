package tests

import (
	"context"
	"errors"
	"testing"

	"quickbite/order-svc/internal/domain"
	"quickbite/order-svc/internal/mocks"
	"quickbite/order-svc/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type orderMocks struct {
	repository *mocks.OrderRepository
	catalog    *mocks.CatalogGateway
	payments   *mocks.PaymentGateway
	drivers    *mocks.DriverGateway
	events     *mocks.EventPublisher
}

func newOrderService(t *testing.T) (*service.OrderService, orderMocks) {
	m := orderMocks{
		repository: mocks.NewOrderRepository(t),
		catalog:    mocks.NewCatalogGateway(t),
		payments:   mocks.NewPaymentGateway(t),
		drivers:    mocks.NewDriverGateway(t),
		events:     mocks.NewEventPublisher(t),
	}
	svc := service.NewOrderService(m.repository, m.catalog, m.payments, m.drivers, m.events, service.DefaultConfig())
	return svc, m
}

func TestOrderService_CreateOrder(t *testing.T) {
	ctx := context.Background()

	t.Run("prices_from_catalog_not_from_request", func(t *testing.T) {
		svc, m := newOrderService(t)

		m.catalog.On("GetMenuItem", ctx, 1).
			Return(&domain.CatalogItem{ID: 1, RestaurantID: 5, Name: "Nasi Goreng", Price: 25000, Stock: 10, IsAvailable: true}, nil).Once()
		m.catalog.On("GetMenuItem", ctx, 2).
			Return(&domain.CatalogItem{ID: 2, RestaurantID: 5, Name: "Es Teh", Price: 15000, Stock: 10, IsAvailable: true}, nil).Once()
		m.catalog.On("ReserveStock", ctx, mock.AnythingOfType("string"),
			[]domain.ReserveLine{{MenuItemID: 1, Quantity: 2}, {MenuItemID: 2, Quantity: 1}}).Return(nil).Once()
		m.repository.On("InsertOrder", ctx, mock.Anything).Run(func(args mock.Arguments) {
			args.Get(1).(*domain.Order).ID = 7
		}).Return(nil).Once()
		m.repository.On("SetQRCode", 7, mock.Anything).Return(nil).Once()
		m.events.On("PublishStatus", ctx, 7, domain.StatusPendingPayment).Return(nil).Once()

		order, err := svc.CreateOrder(ctx, domain.CreateOrderRequest{
			UserID:       3,
			RestaurantID: 5,
			AddressID:    1,
			Items: []domain.CreateOrderItem{
				{MenuItemID: 1, Quantity: 2},
				{MenuItemID: 2, Quantity: 1},
			},
		})
		require.NoError(t, err)
		assert.Equal(t, 65000.0, order.TotalPrice)
		assert.Equal(t, domain.StatusPendingPayment, order.Status)
		require.Len(t, order.Items, 2)
		assert.Equal(t, "Nasi Goreng", order.Items[0].MenuItemName)
		assert.Equal(t, 25000.0, order.Items[0].Price)
	})

	t.Run("rejects_item_from_another_restaurant", func(t *testing.T) {
		svc, m := newOrderService(t)

		m.catalog.On("GetMenuItem", ctx, 1).
			Return(&domain.CatalogItem{ID: 1, RestaurantID: 9, Name: "Sate", Price: 20000, Stock: 10, IsAvailable: true}, nil).Once()

		_, err := svc.CreateOrder(ctx, domain.CreateOrderRequest{
			UserID: 3, RestaurantID: 5, AddressID: 1,
			Items: []domain.CreateOrderItem{{MenuItemID: 1, Quantity: 1}},
		})
		assert.ErrorIs(t, err, service.ErrValidation)
	})

	t.Run("rejects_when_stock_is_short", func(t *testing.T) {
		svc, m := newOrderService(t)

		m.catalog.On("GetMenuItem", ctx, 1).
			Return(&domain.CatalogItem{ID: 1, RestaurantID: 5, Name: "Sate", Price: 20000, Stock: 1, IsAvailable: true}, nil).Once()

		_, err := svc.CreateOrder(ctx, domain.CreateOrderRequest{
			UserID: 3, RestaurantID: 5, AddressID: 1,
			Items: []domain.CreateOrderItem{{MenuItemID: 1, Quantity: 3}},
		})
		assert.ErrorIs(t, err, service.ErrInsufficientStock)
	})

	t.Run("failed_reservation_aborts_before_persisting", func(t *testing.T) {
		svc, m := newOrderService(t)

		m.catalog.On("GetMenuItem", ctx, 1).
			Return(&domain.CatalogItem{ID: 1, RestaurantID: 5, Name: "Sate", Price: 20000, Stock: 5, IsAvailable: true}, nil).Once()
		m.catalog.On("ReserveStock", ctx, mock.AnythingOfType("string"), mock.Anything).
			Return(service.ErrInsufficientStock).Once()

		_, err := svc.CreateOrder(ctx, domain.CreateOrderRequest{
			UserID: 3, RestaurantID: 5, AddressID: 1,
			Items: []domain.CreateOrderItem{{MenuItemID: 1, Quantity: 2}},
		})
		assert.ErrorIs(t, err, service.ErrInsufficientStock)
	})

	t.Run("rejects_empty_order", func(t *testing.T) {
		svc, _ := newOrderService(t)
		_, err := svc.CreateOrder(ctx, domain.CreateOrderRequest{UserID: 3, RestaurantID: 5, AddressID: 1})
		assert.ErrorIs(t, err, service.ErrValidation)
	})
}

func TestOrderService_ConfirmPayment(t *testing.T) {
	ctx := context.Background()
	pending := func() *domain.Order {
		return &domain.Order{ID: 7, UserID: 3, Status: domain.StatusPendingPayment, TotalPrice: 65000}
	}

	t.Run("authorizes_and_moves_to_paid", func(t *testing.T) {
		svc, m := newOrderService(t)
		m.repository.On("GetOrder", 7).Return(pending(), nil).Once()
		m.payments.On("Authorize", ctx, 7, 3, 65000.0, "card").Return(42, nil).Once()
		m.repository.On("SetPaid", 7, 42).Return(true, nil).Once()
		m.events.On("PublishStatus", ctx, 7, domain.StatusPaid).Return(nil).Once()

		order, err := svc.ConfirmPayment(ctx, 7, 3, "card")
		require.NoError(t, err)
		assert.Equal(t, domain.StatusPaid, order.Status)
		require.NotNil(t, order.PaymentID)
		assert.Equal(t, 42, *order.PaymentID)
	})

	t.Run("rejects_non_owner", func(t *testing.T) {
		svc, m := newOrderService(t)
		m.repository.On("GetOrder", 7).Return(pending(), nil).Once()

		_, err := svc.ConfirmPayment(ctx, 7, 99, "card")
		assert.ErrorIs(t, err, service.ErrNotOwner)
	})

	t.Run("rejects_already_paid_order", func(t *testing.T) {
		svc, m := newOrderService(t)
		paid := pending()
		paid.Status = domain.StatusPaid
		m.repository.On("GetOrder", 7).Return(paid, nil).Once()

		_, err := svc.ConfirmPayment(ctx, 7, 3, "card")
		assert.ErrorIs(t, err, service.ErrInvalidTransition)
	})

	t.Run("lost_race_leaves_previous_status", func(t *testing.T) {
		svc, m := newOrderService(t)
		m.repository.On("GetOrder", 7).Return(pending(), nil).Once()
		m.payments.On("Authorize", ctx, 7, 3, 65000.0, "card").Return(42, nil).Once()
		m.repository.On("SetPaid", 7, 42).Return(false, nil).Once()

		_, err := svc.ConfirmPayment(ctx, 7, 3, "card")
		assert.ErrorIs(t, err, service.ErrInvalidTransition)
	})
}

func TestOrderService_ClaimOrder(t *testing.T) {
	ctx := context.Background()

	t.Run("claims_and_registers_task", func(t *testing.T) {
		svc, m := newOrderService(t)
		m.repository.On("AssignDriver", ctx, 7, 12).Return(domain.StatusPaid, nil).Once()
		m.drivers.On("Claim", ctx, 12, 7).Return(nil).Once()
		m.events.On("PublishStatus", ctx, 7, domain.StatusOnTheWay).Return(nil).Once()

		assert.NoError(t, svc.ClaimOrder(ctx, 7, 12))
	})

	t.Run("registry_failure_releases_the_slot", func(t *testing.T) {
		svc, m := newOrderService(t)
		m.repository.On("AssignDriver", ctx, 7, 12).Return(domain.StatusPaid, nil).Once()
		m.drivers.On("Claim", ctx, 12, 7).Return(service.ErrUpstream).Once()
		m.repository.On("ClearDriver", 7, 12, domain.StatusPaid).Return(nil).Once()

		err := svc.ClaimOrder(ctx, 7, 12)
		assert.ErrorIs(t, err, service.ErrUpstream)
	})

	t.Run("occupied_slot_reports_already_claimed", func(t *testing.T) {
		svc, m := newOrderService(t)
		m.repository.On("AssignDriver", ctx, 7, 12).Return("", service.ErrAlreadyClaimed).Once()

		err := svc.ClaimOrder(ctx, 7, 12)
		assert.ErrorIs(t, err, service.ErrAlreadyClaimed)
	})
}

func TestOrderService_CompleteOrder(t *testing.T) {
	ctx := context.Background()

	t.Run("credits_ten_percent_commission", func(t *testing.T) {
		svc, m := newOrderService(t)
		driverID := 12
		m.repository.On("MarkDelivered", 7, 12).Return(true, nil).Once()
		m.repository.On("GetOrder", 7).
			Return(&domain.Order{ID: 7, UserID: 3, Status: domain.StatusDelivered, TotalPrice: 65000, DriverID: &driverID}, nil).Once()
		m.drivers.On("CreditEarnings", ctx, 12, 7, 6500.0).Return(nil).Once()
		m.events.On("PublishStatus", ctx, 7, domain.StatusDelivered).Return(nil).Once()

		assert.NoError(t, svc.CompleteOrder(ctx, 7, 12))
	})

	t.Run("failed_credit_does_not_undo_the_delivery", func(t *testing.T) {
		svc, m := newOrderService(t)
		m.repository.On("MarkDelivered", 7, 12).Return(true, nil).Once()
		m.repository.On("GetOrder", 7).
			Return(&domain.Order{ID: 7, UserID: 3, Status: domain.StatusDelivered, TotalPrice: 65000}, nil).Once()
		m.drivers.On("CreditEarnings", ctx, 12, 7, 6500.0).Return(errors.New("driver-svc down")).Once()
		m.events.On("PublishStatus", ctx, 7, domain.StatusDelivered).Return(nil).Once()

		assert.NoError(t, svc.CompleteOrder(ctx, 7, 12))
	})

	t.Run("conflicts_outside_on_the_way", func(t *testing.T) {
		svc, m := newOrderService(t)
		m.repository.On("MarkDelivered", 7, 12).Return(false, nil).Once()

		err := svc.CompleteOrder(ctx, 7, 12)
		assert.ErrorIs(t, err, service.ErrInvalidTransition)
	})
}

func TestOrderService_ConfirmReceivedAndCancel(t *testing.T) {
	ctx := context.Background()
	owned := &domain.Order{ID: 7, UserID: 3, Status: domain.StatusDelivered}

	t.Run("delivered_order_completes", func(t *testing.T) {
		svc, m := newOrderService(t)
		m.repository.On("GetOrder", 7).Return(owned, nil).Once()
		m.repository.On("UpdateStatusIf", 7, []string{domain.StatusDelivered}, domain.StatusCompleted).Return(true, nil).Once()
		m.events.On("PublishStatus", ctx, 7, domain.StatusCompleted).Return(nil).Once()

		assert.NoError(t, svc.ConfirmReceived(ctx, 7, 3))
	})

	t.Run("only_unpaid_orders_cancel", func(t *testing.T) {
		svc, m := newOrderService(t)
		m.repository.On("GetOrder", 7).Return(owned, nil).Once()
		m.repository.On("UpdateStatusIf", 7, []string{domain.StatusPendingPayment}, domain.StatusCancelled).Return(false, nil).Once()

		err := svc.CancelOrder(ctx, 7, 3)
		assert.ErrorIs(t, err, service.ErrInvalidTransition)
	})
}

func TestOrderService_GetOrderDetail(t *testing.T) {
	ctx := context.Background()
	driverID := 12

	t.Run("attaches_driver_contact", func(t *testing.T) {
		svc, m := newOrderService(t)
		m.repository.On("GetOrder", 7).
			Return(&domain.Order{ID: 7, UserID: 3, Status: domain.StatusOnTheWay, DriverID: &driverID}, nil).Once()
		m.drivers.On("Details", ctx, 12).
			Return(&domain.DriverContact{UserID: 12, VehicleType: "motorcycle", VehicleNumber: "B 1234 XY"}, nil).Once()

		order, err := svc.GetOrderDetail(ctx, 7, 3)
		require.NoError(t, err)
		require.NotNil(t, order.Driver)
		assert.Equal(t, "motorcycle", order.Driver.VehicleType)
	})

	t.Run("failed_contact_lookup_does_not_fail_the_read", func(t *testing.T) {
		svc, m := newOrderService(t)
		m.repository.On("GetOrder", 7).
			Return(&domain.Order{ID: 7, UserID: 3, Status: domain.StatusOnTheWay, DriverID: &driverID}, nil).Once()
		m.drivers.On("Details", ctx, 12).Return(nil, service.ErrUpstream).Once()

		order, err := svc.GetOrderDetail(ctx, 7, 3)
		require.NoError(t, err)
		assert.Nil(t, order.Driver)
	})

	t.Run("rejects_non_owner", func(t *testing.T) {
		svc, m := newOrderService(t)
		m.repository.On("GetOrder", 7).
			Return(&domain.Order{ID: 7, UserID: 3, Status: domain.StatusOnTheWay}, nil).Once()

		_, err := svc.GetOrderDetail(ctx, 7, 99)
		assert.ErrorIs(t, err, service.ErrNotOwner)
	})
}
