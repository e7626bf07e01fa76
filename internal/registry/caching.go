package registry

import (
	"context"
	"net/url"
	"time"

	"github.com/zjrosen/monkeyreg/internal/cachemanager"
	"github.com/zjrosen/monkeyreg/internal/log"
	"github.com/zjrosen/monkeyreg/internal/monkey"
)

// CachingClient memoizes Get through a read-through cache. List is never
// cached, so every filter change still reaches the server. Mutations refresh
// or drop the affected entry.
type CachingClient struct {
	next Client
	byID *cachemanager.ReadThroughCache[string, monkey.Monkey, string]
	ttl  time.Duration
}

// NewCachingClient wraps next. When enabled is false every call passes
// straight through.
func NewCachingClient(next Client, cache cachemanager.CacheManager[string, monkey.Monkey], ttl time.Duration, enabled bool) *CachingClient {
	return &CachingClient{
		next: next,
		byID: cachemanager.NewReadThroughCache[string, monkey.Monkey, string](cache, next.Get, !enabled),
		ttl:  ttl,
	}
}

// List implements Client.
func (c *CachingClient) List(ctx context.Context, query url.Values) ([]monkey.Monkey, error) {
	return c.next.List(ctx, query)
}

// Get implements Client.
func (c *CachingClient) Get(ctx context.Context, id string) (monkey.Monkey, error) {
	return c.byID.Get(ctx, id, id, c.ttl)
}

// Create implements Client.
func (c *CachingClient) Create(ctx context.Context, in monkey.Input) (monkey.Monkey, error) {
	m, err := c.next.Create(ctx, in)
	if err != nil {
		return m, err
	}
	c.byID.Put(ctx, m.ID, m, c.ttl)
	return m, nil
}

// Update implements Client.
func (c *CachingClient) Update(ctx context.Context, id string, in monkey.Input) (monkey.Monkey, error) {
	m, err := c.next.Update(ctx, id, in)
	if err != nil {
		c.invalidate(ctx, id)
		return m, err
	}
	c.byID.Put(ctx, id, m, c.ttl)
	return m, nil
}

// Delete implements Client. The entry is dropped even when the call fails,
// since a 404 means the cached copy is stale.
func (c *CachingClient) Delete(ctx context.Context, id string) error {
	err := c.next.Delete(ctx, id)
	c.invalidate(ctx, id)
	return err
}

func (c *CachingClient) invalidate(ctx context.Context, id string) {
	if err := c.byID.Invalidate(ctx, id); err != nil {
		log.ErrorErr(log.CatCache, "invalidate failed", err, "id", id)
	}
}
