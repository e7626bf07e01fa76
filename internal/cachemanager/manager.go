// Package cachemanager provides a small TTL cache abstraction and a
// read-through wrapper used to memoize single-record registry lookups.
package cachemanager

import (
	"context"
	"time"
)

// CacheManager stores values under comparable keys with a per-entry TTL.
type CacheManager[K comparable, V any] interface {
	Get(ctx context.Context, key K) (V, bool)
	Set(ctx context.Context, key K, value V, ttl time.Duration)
	Delete(ctx context.Context, keys ...K) error
	Flush(ctx context.Context) error
}
