package storage

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"quickbite/catalog-svc/internal/domain"

	"github.com/redis/go-redis/v9"
)

type MenuCache struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewMenuCache(client *redis.Client, ttl time.Duration) *MenuCache {
	return &MenuCache{Client: client, TTL: ttl}
}

func (c *MenuCache) MenuItemKey(id int) string {
	return "menu-item:" + strconv.Itoa(id)
}

func (c *MenuCache) GetMenuItem(ctx context.Context, key string) (*domain.MenuItem, error) {
	raw, err := c.Client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var item domain.MenuItem
	if err := json.Unmarshal(raw, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

func (c *MenuCache) SetMenuItem(ctx context.Context, key string, item *domain.MenuItem) error {
	raw, err := json.Marshal(item)
	if err != nil {
		return err
	}
	return c.Client.Set(ctx, key, raw, c.TTL).Err()
}

func (c *MenuCache) Invalidate(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	return c.Client.Del(ctx, keys...).Err()
}
