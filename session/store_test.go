package session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"LifeCarePortal/config"
)

func TestMemoryStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	s := New(time.Hour)
	s.SetView("payments", View{ListVisible: true})
	require.NoError(t, store.Save(ctx, s))

	got, err := store.Get(ctx, s.ID)
	require.NoError(t, err)
	assert.True(t, got.View("payments").ListVisible)

	got.SetView("payments", View{})
	again, err := store.Get(ctx, s.ID)
	require.NoError(t, err)
	assert.True(t, again.View("payments").ListVisible, "stored copy must not alias the caller's")

	require.NoError(t, store.Delete(ctx, s.ID))
	_, err = store.Get(ctx, s.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStoreSweep(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	short := New(time.Minute)
	long := New(time.Hour)
	require.NoError(t, store.Save(ctx, short))
	require.NoError(t, store.Save(ctx, long))

	removed, err := store.Sweep(ctx, time.Now().Add(10*time.Minute))
	require.NoError(t, err)
	assert.Equal(t, 1, removed)
	assert.Equal(t, 1, store.Len())

	_, err = store.Get(ctx, long.ID)
	assert.NoError(t, err)
}

func TestMemoryStoreHidesExpired(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	s := New(time.Hour)
	s.ExpiresAt = time.Now().Add(-time.Second)
	require.NoError(t, store.Save(ctx, s))

	_, err := store.Get(ctx, s.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestOpenMemory(t *testing.T) {
	store, err := Open(context.Background(), &config.Config{SessionStore: config.StoreMemory})
	require.NoError(t, err)
	assert.IsType(t, &MemoryStore{}, store)

	_, err = Open(context.Background(), &config.Config{SessionStore: "etcd"})
	assert.Error(t, err)
}
