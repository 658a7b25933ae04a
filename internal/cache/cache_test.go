package cache

import (
	"testing"
	"time"

	"github.com/openevents/eventboard/internal/models"
)

func testSet() models.EventSet {
	start := time.Date(2026, time.March, 14, 0, 0, 0, 0, time.UTC)
	return models.EventSet{
		{ID: 1, Title: "Edit-a-thon", StartDate: start, EndDate: start},
	}
}

// fixedClock lets tests move the cache's notion of now.
type fixedClock struct {
	t time.Time
}

func (c *fixedClock) now() time.Time          { return c.t }
func (c *fixedClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestCache(ttl time.Duration) (*Cache, *fixedClock) {
	clock := &fixedClock{t: time.Date(2026, time.January, 1, 12, 0, 0, 0, time.UTC)}
	c := New(ttl)
	c.now = clock.now
	return c, clock
}

func TestEmptyCacheIsAbsent(t *testing.T) {
	c, _ := newTestCache(DefaultTTL)
	if _, ok := c.Get(); ok {
		t.Error("empty cache should report absent")
	}
}

func TestPutThenGet(t *testing.T) {
	c, _ := newTestCache(DefaultTTL)
	c.Put(testSet())

	got, ok := c.Get()
	if !ok {
		t.Fatal("expected cache hit after Put")
	}
	if len(got) != 1 || got[0].ID != 1 {
		t.Errorf("unexpected cached set: %+v", got)
	}
}

func TestTTLBoundary(t *testing.T) {
	c, clock := newTestCache(DefaultTTL)
	c.Put(testSet())

	clock.advance(DefaultTTL - time.Millisecond)
	if _, ok := c.Get(); !ok {
		t.Error("entry at ttl-1ms should still be valid")
	}

	clock.advance(2 * time.Millisecond)
	if _, ok := c.Get(); ok {
		t.Error("entry at ttl+1ms should be absent")
	}
}

func TestExpiryIsLazy(t *testing.T) {
	c, clock := newTestCache(time.Minute)
	c.Put(testSet())
	clock.advance(2 * time.Minute)

	if _, ok := c.Get(); ok {
		t.Fatal("expired entry should be absent")
	}

	// A fresh Put revalidates without any explicit eviction step.
	c.Put(testSet())
	if _, ok := c.Get(); !ok {
		t.Error("fresh entry after expiry should be valid")
	}
}

func TestInvalidate(t *testing.T) {
	c, _ := newTestCache(DefaultTTL)
	c.Put(testSet())
	c.Invalidate()

	if _, ok := c.Get(); ok {
		t.Error("invalidated cache should report absent")
	}
}

func TestEmptySetNeverValid(t *testing.T) {
	c, _ := newTestCache(DefaultTTL)

	c.Put(nil)
	if _, ok := c.Get(); ok {
		t.Error("nil set should never be reported as valid")
	}

	c.Put(models.EventSet{})
	if _, ok := c.Get(); ok {
		t.Error("empty set should never be reported as valid")
	}
}

func TestNonPositiveTTLFallsBack(t *testing.T) {
	c := New(0)
	if c.TTL() != DefaultTTL {
		t.Errorf("TTL() = %v, want %v", c.TTL(), DefaultTTL)
	}
}
