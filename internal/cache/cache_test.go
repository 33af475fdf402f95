package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetMissAndHit(t *testing.T) {
	c := NewTTL(time.Minute)

	_, ok := c.Get("overview")
	assert.False(t, ok)

	c.Set("overview", 42)
	v, ok := c.Get("overview")
	require.True(t, ok)
	assert.Equal(t, 42, v)
}

func TestExpiryByTimeOnly(t *testing.T) {
	c := NewTTL(time.Minute)
	current := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return current }

	c.Set("k", "v")

	current = current.Add(59 * time.Second)
	_, ok := c.Get("k")
	assert.True(t, ok, "still inside ttl")

	current = current.Add(2 * time.Second)
	_, ok = c.Get("k")
	assert.False(t, ok, "expired")
}

func TestSetSweepsExpiredEntries(t *testing.T) {
	c := NewTTL(time.Minute)
	current := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return current }

	c.Set("old", 1)
	current = current.Add(2 * time.Minute)
	c.Set("new", 2)

	assert.Equal(t, 1, c.Len())
}

func TestDisabledCache(t *testing.T) {
	c := NewTTL(0)
	c.Set("k", "v")
	_, ok := c.Get("k")
	assert.False(t, ok)
}
