package cachemanager

import (
	"context"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/zjrosen/monkeyreg/internal/log"
)

const DefaultExpiration = 30 * time.Second
const DefaultCleanupInterval = 5 * time.Minute

// InMemoryCacheManager is a CacheManager backed by go-cache.
type InMemoryCacheManager[K ~string, V any] struct {
	useCase string
	cache   *gocache.Cache
}

// NewInMemoryCacheManager creates a cache; useCase labels its log lines.
func NewInMemoryCacheManager[K ~string, V any](useCase string, defaultExpiration, cleanupInterval time.Duration) *InMemoryCacheManager[K, V] {
	return &InMemoryCacheManager[K, V]{
		useCase: useCase,
		cache:   gocache.New(defaultExpiration, cleanupInterval),
	}
}

// Get retrieves an item from the cache by its key
func (c *InMemoryCacheManager[K, V]) Get(_ context.Context, key K) (V, bool) {
	var zero V

	value, found := c.cache.Get(string(key))
	if !found {
		log.Debug(log.CatCache, "cache miss", "cache", c.useCase, "key", key)
		return zero, false
	}

	v, ok := value.(V)
	if !ok {
		log.Error(log.CatCache, "wrong type assertion when getting value", "cache", c.useCase, "key", key)
		return zero, false
	}

	log.Debug(log.CatCache, "cache hit", "cache", c.useCase, "key", key)
	return v, true
}

// Set stores value under key. A zero ttl (gocache.DefaultExpiration) uses the
// cache default.
func (c *InMemoryCacheManager[K, V]) Set(_ context.Context, key K, value V, ttl time.Duration) {
	c.cache.Set(string(key), value, ttl)
}

// Delete removes keys; missing keys are ignored.
func (c *InMemoryCacheManager[K, V]) Delete(_ context.Context, keys ...K) error {
	for _, key := range keys {
		c.cache.Delete(string(key))
	}
	return nil
}

// Flush drops every entry.
func (c *InMemoryCacheManager[K, V]) Flush(_ context.Context) error {
	c.cache.Flush()
	log.Debug(log.CatCache, "cache flushed", "cache", c.useCase)
	return nil
}

// Len is the number of unexpired entries.
func (c *InMemoryCacheManager[K, V]) Len() int {
	return c.cache.ItemCount()
}
