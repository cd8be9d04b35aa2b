package storage

import (
	"context"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// PaidMarkerCache keeps a fast-path marker per paid order. The database's
// unique constraint is the actual guarantee; the marker just spares the
// obvious replays a round trip.
type PaidMarkerCache struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewPaidMarkerCache(client *redis.Client, ttl time.Duration) *PaidMarkerCache {
	return &PaidMarkerCache{Client: client, TTL: ttl}
}

func (c *PaidMarkerCache) PaidMarkerKey(orderID int) string {
	return "payment-paid:" + strconv.Itoa(orderID)
}

func (c *PaidMarkerCache) Exists(ctx context.Context, key string) (bool, error) {
	res, err := c.Client.Exists(ctx, key).Result()
	if err != nil {
		return false, err
	}
	return res > 0, nil
}

func (c *PaidMarkerCache) SetMarker(ctx context.Context, key string) error {
	return c.Client.Set(ctx, key, "1", c.TTL).Err()
}
