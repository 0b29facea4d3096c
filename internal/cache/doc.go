// CreatorMatch - Creator Recommendation API for FixUrFeed
// Copyright 2026 FixUrFeed
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/fixurfeed/creatormatch

/*
Package cache provides thread-safe in-memory caching with TTL support.

The catalog store uses it to memoize the parsed catalog file so reads
hit disk at most once per TTL window.

# Overview

The cache provides:
  - Thread-safe concurrent access (sync.RWMutex)
  - Time-to-live (TTL) expiration with a background cleanup loop
  - Simple key-value storage with any value type (interface{})
  - Hit/miss/eviction counters exported via the Stats snapshot

# Usage Example

	import "github.com/fixurfeed/creatormatch/internal/cache"

	// Create cache with 5-minute default TTL
	c := cache.New(5 * time.Minute)

	c.Set("catalog:all", creators)
	if v, ok := c.Get("catalog:all"); ok {
	    return v.([]models.Creator), nil
	}

	// Counters for the Prometheus cache metrics
	stats := c.GetStats()

Call Close when done to stop the cleanup goroutine.
*/
package cache
