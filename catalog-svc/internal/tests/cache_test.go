package tests

import (
	"context"
	"testing"
	"time"

	"quickbite/catalog-svc/internal/domain"
	"quickbite/catalog-svc/internal/storage"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCache(t *testing.T) (*storage.MenuCache, *miniredis.Miniredis) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return storage.NewMenuCache(client, time.Minute), mr
}

func TestMenuCache_RoundTrip(t *testing.T) {
	cache, _ := newTestCache(t)
	ctx := context.Background()

	item := &domain.MenuItem{ID: 3, RestaurantID: 1, Name: "Gado-Gado", Price: 18000, Stock: 4, IsAvailable: true}
	key := cache.MenuItemKey(item.ID)
	assert.Equal(t, "menu-item:3", key)

	require.NoError(t, cache.SetMenuItem(ctx, key, item))

	got, err := cache.GetMenuItem(ctx, key)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, item.Name, got.Name)
	assert.Equal(t, item.Stock, got.Stock)
}

func TestMenuCache_MissReturnsNil(t *testing.T) {
	cache, _ := newTestCache(t)

	got, err := cache.GetMenuItem(context.Background(), cache.MenuItemKey(404))
	assert.NoError(t, err)
	assert.Nil(t, got)
}

func TestMenuCache_InvalidateRemovesKeys(t *testing.T) {
	cache, _ := newTestCache(t)
	ctx := context.Background()

	first := &domain.MenuItem{ID: 1, Name: "Soto Ayam"}
	second := &domain.MenuItem{ID: 2, Name: "Bakso"}
	require.NoError(t, cache.SetMenuItem(ctx, cache.MenuItemKey(1), first))
	require.NoError(t, cache.SetMenuItem(ctx, cache.MenuItemKey(2), second))

	require.NoError(t, cache.Invalidate(ctx, cache.MenuItemKey(1), cache.MenuItemKey(2)))

	got, err := cache.GetMenuItem(ctx, cache.MenuItemKey(1))
	assert.NoError(t, err)
	assert.Nil(t, got)
}

func TestMenuCache_EntriesExpire(t *testing.T) {
	cache, mr := newTestCache(t)
	ctx := context.Background()

	item := &domain.MenuItem{ID: 9, Name: "Es Teh"}
	require.NoError(t, cache.SetMenuItem(ctx, cache.MenuItemKey(9), item))

	mr.FastForward(2 * time.Minute)

	got, err := cache.GetMenuItem(ctx, cache.MenuItemKey(9))
	assert.NoError(t, err)
	assert.Nil(t, got)
}
