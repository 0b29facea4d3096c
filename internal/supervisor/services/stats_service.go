// CreatorMatch - Creator Recommendation API for FixUrFeed
// Copyright 2026 FixUrFeed
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/fixurfeed/creatormatch

package services

import (
	"context"
	"time"

	"github.com/fixurfeed/creatormatch/internal/cache"
	"github.com/fixurfeed/creatormatch/internal/metrics"
)

// CacheStatsSource exposes cache counters for metrics collection.
// Satisfied by *catalog.Store.
type CacheStatsSource interface {
	CacheStats() cache.Stats
}

// CacheStatsService periodically syncs cache counters into the
// Prometheus cache metrics.
//
// The cache keeps cumulative totals internally; the metrics package
// converts those into monotonic counters, so this service only needs to
// push the current snapshot on an interval.
type CacheStatsService struct {
	source    CacheStatsSource
	cacheType string
	interval  time.Duration
}

// NewCacheStatsService creates a stats syncer for the given source.
// An interval of zero or less defaults to 30 seconds.
func NewCacheStatsService(source CacheStatsSource, cacheType string, interval time.Duration) *CacheStatsService {
	if interval <= 0 {
		interval = 30 * time.Second
	}
	return &CacheStatsService{
		source:    source,
		cacheType: cacheType,
		interval:  interval,
	}
}

// Serve implements suture.Service. It syncs once immediately, then on
// every tick until the context is canceled.
func (s *CacheStatsService) Serve(ctx context.Context) error {
	s.sync()

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			s.sync()
		}
	}
}

func (s *CacheStatsService) sync() {
	stats := s.source.CacheStats()
	metrics.UpdateCacheStats(s.cacheType, stats.Hits, stats.Misses, stats.Evictions, stats.TotalKeys)
	metrics.UpdateUptime()
}

// String implements fmt.Stringer for logging.
func (s *CacheStatsService) String() string {
	return "cache-stats-" + s.cacheType
}
