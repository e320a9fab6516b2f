// Package cache holds the process-wide time-bounded store that shields
// upstream market-data providers from repeated calls. One slot per product
// key, last successful write wins, staleness judged lazily at read time.
package cache

import (
	"sync"
	"time"
)

// Clock returns the current time. Injected so tests can freeze it.
type Clock func() time.Time

type slot struct {
	payload   any
	fetchedAt time.Time
}

// Cache is a keyed store of (payload, fetch-timestamp) pairs with a fixed
// validity window uniform across all keys. There is no eviction: an expired
// payload stays in its slot until the next successful Set overwrites it.
type Cache struct {
	window time.Duration
	now    Clock

	mu    sync.RWMutex
	slots map[string]slot
}

// New builds a cache with the given validity window. A nil clock defaults
// to time.Now.
func New(window time.Duration, now Clock) *Cache {
	if now == nil {
		now = time.Now
	}
	return &Cache{
		window: window,
		now:    now,
		slots:  make(map[string]slot),
	}
}

// Set stores payload under key stamped with the current clock time,
// replacing whatever the slot held before.
func (c *Cache) Set(key string, payload any) {
	now := c.now()
	c.mu.Lock()
	c.slots[key] = slot{payload: payload, fetchedAt: now}
	c.mu.Unlock()
}

// lookup returns the slot payload when it is still within the validity
// window, absent otherwise.
func (c *Cache) lookup(key string) (any, bool) {
	now := c.now()
	c.mu.RLock()
	s, ok := c.slots[key]
	c.mu.RUnlock()
	if !ok {
		return nil, false
	}
	if now.Sub(s.fetchedAt) >= c.window {
		return nil, false
	}
	return s.payload, true
}

// Get returns the payload stored under key if present, of the expected
// type, and still within the validity window.
func Get[T any](c *Cache, key string) (T, bool) {
	var zero T
	v, ok := c.lookup(key)
	if !ok {
		return zero, false
	}
	t, ok := v.(T)
	if !ok {
		return zero, false
	}
	return t, true
}
