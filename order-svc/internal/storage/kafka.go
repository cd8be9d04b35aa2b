package storage

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"quickbite/order-svc/internal/domain"

	"github.com/segmentio/kafka-go"
)

// EventPublisher writes status transitions to the order-events topic. The
// tracking read model is fed from here; the write is always best effort from
// the caller's point of view.
type EventPublisher struct {
	Writer *kafka.Writer
}

func NewEventPublisher(writer *kafka.Writer) *EventPublisher {
	return &EventPublisher{Writer: writer}
}

func (p *EventPublisher) PublishStatus(ctx context.Context, orderID int, status string) error {
	event := domain.OrderEvent{
		OrderID:   orderID,
		Status:    status,
		Timestamp: time.Now(),
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return p.Writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(strconv.Itoa(orderID)),
		Value: payload,
	})
}
