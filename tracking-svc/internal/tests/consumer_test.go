package tests

import (
	"context"
	"errors"
	"testing"
	"time"

	"quickbite/tracking-svc/internal/domain"
	"quickbite/tracking-svc/internal/mocks"
	"quickbite/tracking-svc/internal/service"
)

func TestConsumer_ProcessEvent(t *testing.T) {
	ctx := context.Background()
	now := time.Now()

	tests := []struct {
		name           string
		inputEvent     domain.OrderEvent
		setupMockStore func(*mocks.StoreInterface)
	}{
		{
			name:       "success",
			inputEvent: domain.OrderEvent{OrderID: 7, Status: "PAID", Timestamp: now},
			setupMockStore: func(mockStore *mocks.StoreInterface) {
				mockStore.On("SaveStatus", ctx, domain.OrderEvent{OrderID: 7, Status: "PAID", Timestamp: now}).Return(nil)
			},
		},
		{
			name:       "legacy_status_normalized_before_saving",
			inputEvent: domain.OrderEvent{OrderID: 7, Status: "ON_DELIVERY", Timestamp: now},
			setupMockStore: func(mockStore *mocks.StoreInterface) {
				mockStore.On("SaveStatus", ctx, domain.OrderEvent{OrderID: 7, Status: "ON_THE_WAY", Timestamp: now}).Return(nil)
			},
		},
		{
			name:       "save_error_is_swallowed",
			inputEvent: domain.OrderEvent{OrderID: 7, Status: "PAID", Timestamp: now},
			setupMockStore: func(mockStore *mocks.StoreInterface) {
				mockStore.On("SaveStatus", ctx, domain.OrderEvent{OrderID: 7, Status: "PAID", Timestamp: now}).
					Return(errors.New("redis down"))
			},
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			mockStore := mocks.NewStoreInterface(t)
			testCase.setupMockStore(mockStore)

			consumer := &service.Consumer{Store: mockStore}
			consumer.ProcessEvent(ctx, testCase.inputEvent)
		})
	}
}

func TestConsumer_MalformedEventIsSkipped(t *testing.T) {
	mockStore := mocks.NewStoreInterface(t)
	consumer := &service.Consumer{Store: mockStore}

	consumer.ProcessEvent(context.Background(), domain.OrderEvent{OrderID: 0, Status: "PAID"})
	consumer.ProcessEvent(context.Background(), domain.OrderEvent{OrderID: 7, Status: ""})

	mockStore.AssertNotCalled(t, "SaveStatus")
}
