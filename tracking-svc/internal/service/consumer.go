package service

import (
	"context"
	"encoding/json"
	"log"

	"quickbite/tracking-svc/internal/domain"

	"github.com/segmentio/kafka-go"
)

type Consumer struct {
	Reader *kafka.Reader
	Store  StoreInterface
}

func NewConsumer(reader *kafka.Reader, store StoreInterface) *Consumer {
	return &Consumer{
		Reader: reader,
		Store:  store,
	}
}

func (c *Consumer) Start(ctx context.Context) {
	log.Println("Starting Tracking Service consumer...")
	for {
		message, err := c.Reader.ReadMessage(ctx)
		if err != nil {
			log.Printf("Error reading message: %v", err)
			continue
		}

		var event domain.OrderEvent
		if err := json.Unmarshal(message.Value, &event); err != nil {
			log.Printf("Error unmarshaling message: %v", err)
			continue
		}

		c.ProcessEvent(ctx, event)
	}
}

func (c *Consumer) ProcessEvent(ctx context.Context, event domain.OrderEvent) {
	if event.OrderID <= 0 || event.Status == "" {
		log.Printf("Skipping malformed event: %+v", event)
		return
	}

	event.Status = domain.NormalizeStatus(event.Status)
	if err := c.Store.SaveStatus(ctx, event); err != nil {
		log.Printf("Error saving status for order %d: %v", event.OrderID, err)
		return
	}

	log.Printf("Recorded order %d as %s", event.OrderID, event.Status)
}
