package tests

import (
	"context"
	"testing"
	"time"

	"quickbite/tracking-svc/internal/domain"
	"quickbite/tracking-svc/internal/service"
	"quickbite/tracking-svc/internal/storage"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

func newTestStore(t *testing.T) (*storage.Store, *miniredis.Miniredis) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return storage.NewStore(client, 24*time.Hour), mr
}

func TestStore_SaveAndGetStatus(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	at := time.Date(2025, 3, 14, 12, 30, 0, 0, time.UTC)
	err := store.SaveStatus(ctx, domain.OrderEvent{OrderID: 7, Status: "ON_THE_WAY", Timestamp: at})
	assert.NoError(t, err)

	status, err := store.GetStatus(ctx, 7)
	assert.NoError(t, err)
	assert.Equal(t, 7, status.OrderID)
	assert.Equal(t, "ON_THE_WAY", status.Status)
	assert.True(t, status.UpdatedAt.Equal(at))
}

func TestStore_GetStatus_NotTracked(t *testing.T) {
	store, _ := newTestStore(t)

	status, err := store.GetStatus(context.Background(), 999)
	assert.Nil(t, status)
	assert.ErrorIs(t, err, service.ErrNotTracked)
}

func TestStore_GetStatus_NormalizesLegacyStatus(t *testing.T) {
	store, mr := newTestStore(t)
	ctx := context.Background()

	mr.HSet("tracking:order:7", "status", "ON_DELIVERY")
	mr.HSet("tracking:order:7", "updated_at", time.Now().Format(time.RFC3339))

	status, err := store.GetStatus(ctx, 7)
	assert.NoError(t, err)
	assert.Equal(t, "ON_THE_WAY", status.Status)
}

func TestStore_EntriesExpire(t *testing.T) {
	store, mr := newTestStore(t)
	ctx := context.Background()

	err := store.SaveStatus(ctx, domain.OrderEvent{OrderID: 7, Status: "DELIVERED", Timestamp: time.Now()})
	assert.NoError(t, err)

	mr.FastForward(25 * time.Hour)

	_, err = store.GetStatus(ctx, 7)
	assert.ErrorIs(t, err, service.ErrNotTracked)
}
