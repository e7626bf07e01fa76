package cachemanager

import (
	"context"
	"time"
)

// ReadThroughCache serves values from a CacheManager and falls back to fn on
// a miss, storing successful results.
type ReadThroughCache[K comparable, V any, I any] struct {
	cache           CacheManager[K, V]
	fn              func(ctx context.Context, input I) (V, error)
	shouldSkipCache bool
}

func NewReadThroughCache[K comparable, V any, I any](
	cache CacheManager[K, V],
	fn func(ctx context.Context, input I) (V, error),
	shouldSkipCache bool,
) *ReadThroughCache[K, V, I] {
	return &ReadThroughCache[K, V, I]{
		cache:           cache,
		fn:              fn,
		shouldSkipCache: shouldSkipCache,
	}
}

// Get returns the cached value for key, or calls fn with input. Errors are
// never cached.
func (r *ReadThroughCache[K, V, I]) Get(ctx context.Context, key K, input I, ttl time.Duration) (V, error) {
	if r.shouldSkipCache {
		return r.fn(ctx, input)
	}

	if value, ok := r.cache.Get(ctx, key); ok {
		return value, nil
	}

	value, err := r.fn(ctx, input)
	if err != nil {
		return value, err
	}

	r.cache.Set(ctx, key, value, ttl)
	return value, nil
}

// Put stores value directly, for callers that already hold a fresh copy.
func (r *ReadThroughCache[K, V, I]) Put(ctx context.Context, key K, value V, ttl time.Duration) {
	if r.shouldSkipCache {
		return
	}
	r.cache.Set(ctx, key, value, ttl)
}

// Invalidate drops keys so the next Get reaches fn.
func (r *ReadThroughCache[K, V, I]) Invalidate(ctx context.Context, keys ...K) error {
	if r.shouldSkipCache || len(keys) == 0 {
		return nil
	}
	return r.cache.Delete(ctx, keys...)
}
