package sheets

import (
	"context"
	"sync"
	"time"
)

// Cache memoizes one loaded value for a fixed lifetime. The clock is
// injectable so expiry is testable. The mutex is held across the load, so
// concurrent callers inside the window observe the same value and never
// trigger duplicate fetches.
type Cache[T any] struct {
	mu       sync.Mutex
	ttl      time.Duration
	now      func() time.Time
	value    T
	loadedAt time.Time
	loaded   bool
}

// NewCache builds a cache with the given lifetime. A nil clock means
// time.Now.
func NewCache[T any](ttl time.Duration, now func() time.Time) *Cache[T] {
	if now == nil {
		now = time.Now
	}
	return &Cache[T]{ttl: ttl, now: now}
}

// Get returns the cached value, invoking load when the entry is missing or
// older than the TTL. load must not fail; fallback handling lives inside it.
func (c *Cache[T]) Get(ctx context.Context, load func(context.Context) T) T {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.loaded && c.now().Sub(c.loadedAt) < c.ttl {
		return c.value
	}

	c.value = load(ctx)
	c.loadedAt = c.now()
	c.loaded = true
	return c.value
}

// Invalidate drops the cached entry. Expiry is normally time-based only;
// this exists for tests and operational resets.
func (c *Cache[T]) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.loaded = false
}
