// CreatorMatch - Creator Recommendation API for FixUrFeed
// Copyright 2026 FixUrFeed
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/fixurfeed/creatormatch

package metrics

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestRecordAPIRequest(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		endpoint   string
		statusCode string
		duration   time.Duration
	}{
		{"successful get", "GET", "/api/v1/creators", "200", 15 * time.Millisecond},
		{"match post", "POST", "/api/v1/match", "200", 2 * time.Millisecond},
		{"not found", "GET", "/api/v1/creators/{id}", "404", 1 * time.Millisecond},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			counter := APIRequestsTotal.WithLabelValues(tt.method, tt.endpoint, tt.statusCode)
			before := testutil.ToFloat64(counter)

			RecordAPIRequest(tt.method, tt.endpoint, tt.statusCode, tt.duration)

			after := testutil.ToFloat64(counter)
			if after != before+1 {
				t.Errorf("APIRequestsTotal = %v, want %v", after, before+1)
			}
		})
	}
}

func TestTrackActiveRequest(t *testing.T) {
	before := testutil.ToFloat64(APIActiveRequests)

	TrackActiveRequest(true)
	if got := testutil.ToFloat64(APIActiveRequests); got != before+1 {
		t.Errorf("APIActiveRequests after inc = %v, want %v", got, before+1)
	}

	TrackActiveRequest(false)
	if got := testutil.ToFloat64(APIActiveRequests); got != before {
		t.Errorf("APIActiveRequests after dec = %v, want %v", got, before)
	}
}

func TestRecordMatch(t *testing.T) {
	requestsBefore := testutil.ToFloat64(MatchRequestsTotal)
	emptyBefore := testutil.ToFloat64(MatchEmptyResults)

	RecordMatch(500*time.Microsecond, 5)
	if got := testutil.ToFloat64(MatchRequestsTotal); got != requestsBefore+1 {
		t.Errorf("MatchRequestsTotal = %v, want %v", got, requestsBefore+1)
	}
	if got := testutil.ToFloat64(MatchEmptyResults); got != emptyBefore {
		t.Errorf("MatchEmptyResults = %v, want %v (non-empty result)", got, emptyBefore)
	}

	RecordMatch(200*time.Microsecond, 0)
	if got := testutil.ToFloat64(MatchEmptyResults); got != emptyBefore+1 {
		t.Errorf("MatchEmptyResults = %v, want %v (empty result)", got, emptyBefore+1)
	}
}

func TestRecordCatalogLoad(t *testing.T) {
	errorsBefore := testutil.ToFloat64(CatalogLoadErrors)

	RecordCatalogLoad(10*time.Millisecond, 42, nil)
	if got := testutil.ToFloat64(CatalogSize); got != 42 {
		t.Errorf("CatalogSize = %v, want 42", got)
	}
	if got := testutil.ToFloat64(CatalogLoadErrors); got != errorsBefore {
		t.Errorf("CatalogLoadErrors = %v, want %v", got, errorsBefore)
	}

	// A failed load must not clobber the last known catalog size.
	RecordCatalogLoad(5*time.Millisecond, 0, errors.New("read failed"))
	if got := testutil.ToFloat64(CatalogSize); got != 42 {
		t.Errorf("CatalogSize after failed load = %v, want 42", got)
	}
	if got := testutil.ToFloat64(CatalogLoadErrors); got != errorsBefore+1 {
		t.Errorf("CatalogLoadErrors = %v, want %v", got, errorsBefore+1)
	}
}

func TestUpdateCacheStats(t *testing.T) {
	const cacheType = "test_cache"

	hits := CacheHits.WithLabelValues(cacheType)
	misses := CacheMisses.WithLabelValues(cacheType)
	evictions := CacheEvictions.WithLabelValues(cacheType)
	size := CacheSize.WithLabelValues(cacheType)

	UpdateCacheStats(cacheType, 10, 4, 2, 7)

	if got := testutil.ToFloat64(hits); got != 10 {
		t.Errorf("CacheHits = %v, want 10", got)
	}
	if got := testutil.ToFloat64(misses); got != 4 {
		t.Errorf("CacheMisses = %v, want 4", got)
	}
	if got := testutil.ToFloat64(evictions); got != 2 {
		t.Errorf("CacheEvictions = %v, want 2", got)
	}
	if got := testutil.ToFloat64(size); got != 7 {
		t.Errorf("CacheSize = %v, want 7", got)
	}

	// Re-syncing the same cumulative totals must not double-count.
	UpdateCacheStats(cacheType, 10, 4, 2, 7)
	if got := testutil.ToFloat64(hits); got != 10 {
		t.Errorf("CacheHits after idempotent sync = %v, want 10", got)
	}

	// Growth in the cumulative totals is applied as a delta.
	UpdateCacheStats(cacheType, 15, 5, 2, 3)
	if got := testutil.ToFloat64(hits); got != 15 {
		t.Errorf("CacheHits after growth = %v, want 15", got)
	}
	if got := testutil.ToFloat64(misses); got != 5 {
		t.Errorf("CacheMisses after growth = %v, want 5", got)
	}
	if got := testutil.ToFloat64(size); got != 3 {
		t.Errorf("CacheSize after shrink = %v, want 3", got)
	}
}

func TestRecordFeedback(t *testing.T) {
	counter := FeedbackSubmissions.WithLabelValues("5")
	before := testutil.ToFloat64(counter)

	RecordFeedback("5")

	if got := testutil.ToFloat64(counter); got != before+1 {
		t.Errorf("FeedbackSubmissions = %v, want %v", got, before+1)
	}
}

func TestRecordImageRequest(t *testing.T) {
	tests := []struct {
		name   string
		result string
	}{
		{"served", "served"},
		{"not found", "not_found"},
		{"rejected filename", "rejected"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			counter := ImageRequests.WithLabelValues(tt.result)
			before := testutil.ToFloat64(counter)

			RecordImageRequest(tt.result)

			if got := testutil.ToFloat64(counter); got != before+1 {
				t.Errorf("ImageRequests[%s] = %v, want %v", tt.result, got, before+1)
			}
		})
	}
}

func TestConcurrentMetricRecording(t *testing.T) {
	const goroutines = 10
	const iterations = 100

	counter := APIRequestsTotal.WithLabelValues("GET", "/concurrent", "200")
	before := testutil.ToFloat64(counter)

	var wg sync.WaitGroup
	wg.Add(goroutines)
	for i := 0; i < goroutines; i++ {
		go func() {
			defer wg.Done()
			for j := 0; j < iterations; j++ {
				RecordAPIRequest("GET", "/concurrent", "200", time.Millisecond)
				UpdateCacheStats("concurrent_cache", int64(j), int64(j), 0, 1)
			}
		}()
	}
	wg.Wait()

	want := before + goroutines*iterations
	if got := testutil.ToFloat64(counter); got != want {
		t.Errorf("APIRequestsTotal after concurrent recording = %v, want %v", got, want)
	}
}

// TestMetricsRegistration verifies every metric is registered and describable.
func TestMetricsRegistration(t *testing.T) {
	metrics := []prometheus.Collector{
		APIRequestsTotal,
		APIRequestDuration,
		APIActiveRequests,
		APIRateLimitHits,
		MatchRequestsTotal,
		MatchDuration,
		MatchResultCount,
		MatchEmptyResults,
		CatalogLoadDuration,
		CatalogSize,
		CatalogLoadErrors,
		CacheHits,
		CacheMisses,
		CacheSize,
		CacheEvictions,
		FeedbackSubmissions,
		FeedbackExports,
		FeedbackStoreErrors,
		ImageRequests,
		AppInfo,
		AppUptime,
	}

	for _, m := range metrics {
		ch := make(chan *prometheus.Desc, 10)
		m.Describe(ch)
		close(ch)

		count := 0
		for range ch {
			count++
		}
		if count == 0 {
			t.Errorf("Metric has no descriptors")
		}
	}
}

func BenchmarkRecordAPIRequest(b *testing.B) {
	for i := 0; i < b.N; i++ {
		RecordAPIRequest("GET", "/api/v1/creators", "200", 25*time.Millisecond)
	}
}

func BenchmarkRecordMatch(b *testing.B) {
	for i := 0; i < b.N; i++ {
		RecordMatch(500*time.Microsecond, 5)
	}
}
