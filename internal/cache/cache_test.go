// CreatorMatch - Creator Recommendation API for FixUrFeed
// Copyright 2026 FixUrFeed
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/fixurfeed/creatormatch

package cache

import (
	"fmt"
	"sync"
	"testing"
	"time"
)

// fakeClock is a manually advanced time source.
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func (f *fakeClock) Now() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.now
}

func (f *fakeClock) Advance(d time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.now = f.now.Add(d)
}

func TestCacheBasicOperations(t *testing.T) {
	c := New(1 * time.Minute)
	defer c.Close()

	c.Set("key1", "value1")
	value, exists := c.Get("key1")
	if !exists {
		t.Error("Expected key1 to exist")
	}
	if value != "value1" {
		t.Errorf("Expected value1, got %v", value)
	}

	_, exists = c.Get("key2")
	if exists {
		t.Error("Expected key2 to not exist")
	}
}

func TestCacheExpiration(t *testing.T) {
	clock := newFakeClock()
	c := New(5*time.Minute, WithClock(clock.Now))
	defer c.Close()

	c.Set("key1", "value1")

	_, exists := c.Get("key1")
	if !exists {
		t.Error("Expected key1 to exist immediately after set")
	}

	clock.Advance(5*time.Minute + time.Second)

	_, exists = c.Get("key1")
	if exists {
		t.Error("Expected key1 to be expired")
	}
}

func TestCacheDelete(t *testing.T) {
	c := New(1 * time.Minute)
	defer c.Close()

	c.Set("key1", "value1")
	c.Delete("key1")

	_, exists := c.Get("key1")
	if exists {
		t.Error("Expected key1 to be deleted")
	}
}

func TestCacheClear(t *testing.T) {
	c := New(1 * time.Minute)
	defer c.Close()

	c.Set("key1", "value1")
	c.Set("key2", "value2")
	c.Set("key3", "value3")

	c.Clear()

	for _, key := range []string{"key1", "key2", "key3"} {
		_, exists := c.Get(key)
		if exists {
			t.Errorf("Expected %s to be cleared", key)
		}
	}
}

func TestCacheStats(t *testing.T) {
	c := New(1 * time.Minute)
	defer c.Close()

	c.Set("key1", "value1")
	c.Get("key1") // hit
	c.Get("key2") // miss
	c.Get("key1") // hit

	stats := c.GetStats()

	if stats.Hits != 2 {
		t.Errorf("Expected 2 hits, got %d", stats.Hits)
	}
	if stats.Misses != 1 {
		t.Errorf("Expected 1 miss, got %d", stats.Misses)
	}
}

func TestCacheSetWithTTL(t *testing.T) {
	clock := newFakeClock()
	c := New(1*time.Minute, WithClock(clock.Now))
	defer c.Close()

	c.SetWithTTL("key1", "value1", 10*time.Second)

	_, exists := c.Get("key1")
	if !exists {
		t.Error("Expected key1 to exist")
	}

	clock.Advance(11 * time.Second)

	_, exists = c.Get("key1")
	if exists {
		t.Error("Expected key1 to be expired after custom TTL")
	}
}

func TestCacheCleanup(t *testing.T) {
	clock := newFakeClock()
	c := New(time.Minute, WithClock(clock.Now))
	defer c.Close()

	c.Set("key1", "value1")
	c.Set("key2", "value2")

	clock.Advance(2 * time.Minute)
	c.cleanup()

	stats := c.GetStats()
	if stats.TotalKeys != 0 {
		t.Errorf("Expected 0 keys after cleanup, got %d", stats.TotalKeys)
	}
	if stats.Evictions != 2 {
		t.Errorf("Expected 2 evictions, got %d", stats.Evictions)
	}
}

func TestCacheCloseIdempotent(t *testing.T) {
	c := New(time.Minute)
	c.Close()
	c.Close() // must not panic
}

func TestCacheConcurrentAccess(t *testing.T) {
	c := New(1 * time.Minute)
	defer c.Close()

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			key := fmt.Sprintf("key%d", n)
			c.Set(key, n)
			if v, ok := c.Get(key); !ok || v != n {
				t.Errorf("Expected %d for %s, got %v (ok=%v)", n, key, v, ok)
			}
		}(i)
	}
	wg.Wait()
}
