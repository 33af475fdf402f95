// Package cache provides a small in-memory TTL cache used to decorate the
// dashboard query services. It exists to spare redundant re-aggregation of
// identical queries; it is not a consistency mechanism and is invalidated
// by time only, never by write notification.
package cache

import (
	"sync"
	"time"
)

type entry struct {
	value     any
	expiresAt time.Time
}

// TTL is a concurrency-safe pass-through cache with a fixed expiry.
type TTL struct {
	mu      sync.RWMutex
	ttl     time.Duration
	now     func() time.Time
	entries map[string]entry
}

// NewTTL builds a cache whose entries expire ttl after being set.
// A non-positive ttl disables caching entirely.
func NewTTL(ttl time.Duration) *TTL {
	return &TTL{
		ttl:     ttl,
		now:     time.Now,
		entries: make(map[string]entry),
	}
}

// Get returns the cached value for key when present and not yet expired.
func (c *TTL) Get(key string) (any, bool) {
	if c == nil || c.ttl <= 0 {
		return nil, false
	}
	c.mu.RLock()
	e, ok := c.entries[key]
	c.mu.RUnlock()
	if !ok || c.now().After(e.expiresAt) {
		return nil, false
	}
	return e.value, true
}

// Set stores value under key with the cache's fixed expiry. Expired entries
// are swept opportunistically on write to bound memory.
func (c *TTL) Set(key string, value any) {
	if c == nil || c.ttl <= 0 {
		return
	}
	now := c.now()
	c.mu.Lock()
	defer c.mu.Unlock()
	for k, e := range c.entries {
		if now.After(e.expiresAt) {
			delete(c.entries, k)
		}
	}
	c.entries[key] = entry{value: value, expiresAt: now.Add(c.ttl)}
}

// Len reports the number of stored entries, expired ones included.
func (c *TTL) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
