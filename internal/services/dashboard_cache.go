// internal/services/dashboard_cache.go
package services

import (
	"sync"
	"time"
)

// DashboardTTL is how long a cached snapshot stays servable.
const DashboardTTL = 5 * time.Minute

// SnapshotLoader produces a fresh dashboard snapshot for the given instant.
type SnapshotLoader func(now time.Time) (*DashboardSnapshot, error)

// DashboardCache holds a single snapshot slot in front of the aggregator.
// The mutex only guards the slot itself: two callers hitting a stale slot may
// both run the loader, and the later write wins. Fine for one admin dashboard.
type DashboardCache struct {
	mu     sync.Mutex
	loader SnapshotLoader
	ttl    time.Duration
	entry  *DashboardSnapshot
}

func NewDashboardCache(loader SnapshotLoader, ttl time.Duration) *DashboardCache {
	if ttl <= 0 {
		ttl = DashboardTTL
	}
	return &DashboardCache{
		loader: loader,
		ttl:    ttl,
	}
}

// Get serves the cached snapshot while it is fresh, otherwise loads a new one
// and stores it with CreatedAt = now. Expired entries are treated as absent.
func (c *DashboardCache) Get(now time.Time) (*DashboardSnapshot, error) {
	c.mu.Lock()
	if c.entry != nil && now.Sub(c.entry.CreatedAt) < c.ttl {
		entry := c.entry
		c.mu.Unlock()
		return entry, nil
	}
	c.mu.Unlock()

	return c.Refresh(now)
}

// Refresh recomputes unconditionally and overwrites the slot.
func (c *DashboardCache) Refresh(now time.Time) (*DashboardSnapshot, error) {
	snapshot, err := c.loader(now)
	if err != nil {
		return nil, err
	}
	snapshot.CreatedAt = now

	c.mu.Lock()
	c.entry = snapshot
	c.mu.Unlock()

	return snapshot, nil
}

// Invalidate clears the slot. Callers signal this after admin mutations or on
// logout; the cache never invalidates itself on writes.
func (c *DashboardCache) Invalidate() {
	c.mu.Lock()
	c.entry = nil
	c.mu.Unlock()
}
