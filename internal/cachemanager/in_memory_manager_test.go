package cachemanager

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type recordID string

type cachedRecord struct {
	ID   string
	Name string
}

func newTestCache() *InMemoryCacheManager[recordID, cachedRecord] {
	return NewInMemoryCacheManager[recordID, cachedRecord]("monkeys", DefaultExpiration, DefaultCleanupInterval)
}

func TestInMemoryCacheManager_SetThenGet(t *testing.T) {
	cache := newTestCache()
	rec := cachedRecord{ID: "m-1", Name: "Coco"}

	cache.Set(context.Background(), "m-1", rec, DefaultExpiration)

	got, ok := cache.Get(context.Background(), "m-1")
	require.True(t, ok)
	require.Equal(t, rec, got)
	require.Equal(t, 1, cache.Len())
}

func TestInMemoryCacheManager_Miss(t *testing.T) {
	cache := newTestCache()

	got, ok := cache.Get(context.Background(), "absent")
	require.False(t, ok)
	require.Empty(t, got)
}

func TestInMemoryCacheManager_WrongStoredType(t *testing.T) {
	cache := newTestCache()
	cache.cache.Set("m-1", 123, DefaultExpiration)

	got, ok := cache.Get(context.Background(), "m-1")
	require.False(t, ok)
	require.Empty(t, got)
}

func TestInMemoryCacheManager_Expiry(t *testing.T) {
	cache := newTestCache()
	cache.Set(context.Background(), "m-1", cachedRecord{ID: "m-1"}, time.Millisecond)

	require.Eventually(t, func() bool {
		_, ok := cache.Get(context.Background(), "m-1")
		return !ok
	}, time.Second, 5*time.Millisecond)
}

func TestInMemoryCacheManager_Delete(t *testing.T) {
	cache := newTestCache()
	ctx := context.Background()
	cache.Set(ctx, "a", cachedRecord{ID: "a"}, DefaultExpiration)
	cache.Set(ctx, "b", cachedRecord{ID: "b"}, DefaultExpiration)

	require.NoError(t, cache.Delete(ctx))
	require.Equal(t, 2, cache.Len())

	require.NoError(t, cache.Delete(ctx, "a", "missing"))
	_, ok := cache.Get(ctx, "a")
	require.False(t, ok)
	_, ok = cache.Get(ctx, "b")
	require.True(t, ok)
}

func TestInMemoryCacheManager_Flush(t *testing.T) {
	cache := newTestCache()
	ctx := context.Background()
	cache.Set(ctx, "a", cachedRecord{ID: "a"}, DefaultExpiration)

	require.NoError(t, cache.Flush(ctx))
	require.Zero(t, cache.Len())
}
