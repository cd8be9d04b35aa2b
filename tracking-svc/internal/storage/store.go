package storage

import (
	"context"
	"strconv"
	"time"

	"quickbite/tracking-svc/internal/domain"
	"quickbite/tracking-svc/internal/service"

	"github.com/redis/go-redis/v9"
)

// Store keeps the latest status per order in redis. Old entries fall out on
// their own; completed orders stop being interesting quickly.
type Store struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewStore(client *redis.Client, ttl time.Duration) *Store {
	return &Store{Client: client, TTL: ttl}
}

func key(orderID int) string {
	return "tracking:order:" + strconv.Itoa(orderID)
}

func (s *Store) SaveStatus(ctx context.Context, event domain.OrderEvent) error {
	k := key(event.OrderID)
	if err := s.Client.HSet(ctx, k, map[string]interface{}{
		"status":     event.Status,
		"updated_at": event.Timestamp.Format(time.RFC3339),
	}).Err(); err != nil {
		return err
	}
	return s.Client.Expire(ctx, k, s.TTL).Err()
}

func (s *Store) GetStatus(ctx context.Context, orderID int) (*domain.OrderStatus, error) {
	fields, err := s.Client.HGetAll(ctx, key(orderID)).Result()
	if err != nil {
		return nil, err
	}
	if len(fields) == 0 {
		return nil, service.ErrNotTracked
	}

	status := domain.OrderStatus{
		OrderID: orderID,
		Status:  domain.NormalizeStatus(fields["status"]),
	}
	if at, err := time.Parse(time.RFC3339, fields["updated_at"]); err == nil {
		status.UpdatedAt = at
	}
	return &status, nil
}
