// Package cache provides a single-slot, time-boxed memoization of the last
// successfully loaded event set. Expiry is lazy: an entry past its TTL simply
// stops being returned, there is no background eviction.
package cache

import (
	"sync"
	"time"

	"github.com/openevents/eventboard/internal/models"
)

// DefaultTTL is the staleness bound for the event listing.
const DefaultTTL = 5 * time.Minute

// Cache holds at most one (EventSet, loadedAt) pair. An entry is valid iff
// now - loadedAt < ttl and the set is non-empty.
type Cache struct {
	mu       sync.RWMutex
	events   models.EventSet
	loadedAt time.Time

	ttl time.Duration
	now func() time.Time // injectable clock for tests
}

// New creates an empty cache with the given TTL. A non-positive TTL falls
// back to DefaultTTL.
func New(ttl time.Duration) *Cache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Cache{
		ttl: ttl,
		now: time.Now,
	}
}

// Get returns the cached set if it is still valid. The boolean reports
// presence; callers must not use the set when it is false.
func (c *Cache) Get() (models.EventSet, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if len(c.events) == 0 {
		return nil, false
	}
	if c.now().Sub(c.loadedAt) >= c.ttl {
		return nil, false
	}
	return c.events, true
}

// Put stores the set with the current timestamp, replacing any prior entry.
// Empty or nil sets are stored but never reported as valid by Get.
func (c *Cache) Put(events models.EventSet) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.events = events
	c.loadedAt = c.now()
}

// Invalidate discards the current entry regardless of its age.
func (c *Cache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.events = nil
	c.loadedAt = time.Time{}
}

// TTL returns the configured time-to-live.
func (c *Cache) TTL() time.Duration {
	return c.ttl
}
