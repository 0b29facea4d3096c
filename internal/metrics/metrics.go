// CreatorMatch - Creator Recommendation API for FixUrFeed
// Copyright 2026 FixUrFeed
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/fixurfeed/creatormatch

package metrics

import (
	"runtime"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Prometheus Metrics Integration for Production Observability
// This package provides instrumentation for:
// - API endpoint latency and throughput
// - Match computation performance and outcomes
// - Catalog loading and cache efficiency
// - Feedback capture volume

var (
	// API Endpoint Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10}, // Optimized for API latency
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Current number of active API requests",
		},
	)

	APIRateLimitHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_rate_limit_hits_total",
			Help: "Total number of rate limit rejections",
		},
		[]string{"endpoint"},
	)

	// Match Engine Metrics
	MatchRequestsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "match_requests_total",
			Help: "Total number of match computations",
		},
	)

	MatchDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "match_duration_seconds",
			Help:    "Duration of match computations in seconds",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5}, // Pure in-memory scoring
		},
	)

	MatchResultCount = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "match_result_count",
			Help:    "Number of creators returned per match computation",
			Buckets: []float64{0, 1, 2, 3, 4, 5},
		},
	)

	MatchEmptyResults = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "match_empty_results_total",
			Help: "Total number of match computations that returned no creators",
		},
	)

	// Catalog Metrics
	CatalogLoadDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "catalog_load_duration_seconds",
			Help:    "Duration of catalog file loads in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)

	CatalogSize = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "catalog_creators",
			Help: "Number of creators in the loaded catalog",
		},
	)

	CatalogLoadErrors = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "catalog_load_errors_total",
			Help: "Total number of failed catalog loads",
		},
	)

	// Cache Metrics (General)
	CacheHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_hits_total",
			Help: "Total number of cache hits",
		},
		[]string{"cache_type"}, // "catalog"
	)

	CacheMisses = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_misses_total",
			Help: "Total number of cache misses",
		},
		[]string{"cache_type"},
	)

	CacheSize = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "cache_entries",
			Help: "Current number of cached entries",
		},
		[]string{"cache_type"},
	)

	CacheEvictions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_evictions_total",
			Help: "Total number of cache evictions (TTL expiry)",
		},
		[]string{"cache_type"},
	)

	// Feedback Metrics
	FeedbackSubmissions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "feedback_submissions_total",
			Help: "Total number of feedback submissions",
		},
		[]string{"rating"},
	)

	FeedbackExports = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "feedback_exports_total",
			Help: "Total number of feedback CSV exports",
		},
	)

	FeedbackStoreErrors = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "feedback_store_errors_total",
			Help: "Total number of feedback store failures",
		},
	)

	// Image Serving Metrics
	ImageRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "image_requests_total",
			Help: "Total number of profile image requests",
		},
		[]string{"result"}, // "served", "not_found", "rejected"
	)

	// System Metrics
	AppInfo = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "app_info",
			Help: "Application version and build information",
		},
		[]string{"version", "go_version"},
	)

	AppUptime = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "app_uptime_seconds",
			Help: "Application uptime in seconds",
		},
	)
)

// RecordAPIRequest records an API request metric
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest tracks active API requests
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordMatch records one match computation and its outcome
func RecordMatch(duration time.Duration, resultCount int) {
	MatchRequestsTotal.Inc()
	MatchDuration.Observe(duration.Seconds())
	MatchResultCount.Observe(float64(resultCount))
	if resultCount == 0 {
		MatchEmptyResults.Inc()
	}
}

// RecordCatalogLoad records a catalog file load
func RecordCatalogLoad(duration time.Duration, creators int, err error) {
	CatalogLoadDuration.Observe(duration.Seconds())
	if err != nil {
		CatalogLoadErrors.Inc()
		return
	}
	CatalogSize.Set(float64(creators))
}

// UpdateCacheStats syncs cache counters into the Prometheus gauges.
// Counters are set to cumulative values rather than incremented because
// the cache keeps its own totals.
func UpdateCacheStats(cacheType string, hits, misses, evictions, entries int64) {
	CacheSize.WithLabelValues(cacheType).Set(float64(entries))
	setCounterTotal(CacheHits.WithLabelValues(cacheType), hits)
	setCounterTotal(CacheMisses.WithLabelValues(cacheType), misses)
	setCounterTotal(CacheEvictions.WithLabelValues(cacheType), evictions)
}

// counterTotals remembers the last synced value per counter so cumulative
// cache stats can be translated into monotonic increments.
var (
	counterTotalsMu sync.Mutex
	counterTotals   = map[prometheus.Counter]int64{}
)

func setCounterTotal(c prometheus.Counter, total int64) {
	counterTotalsMu.Lock()
	defer counterTotalsMu.Unlock()
	if prev := counterTotals[c]; total > prev {
		c.Add(float64(total - prev))
		counterTotals[c] = total
	}
}

// appStart anchors the uptime gauge.
var appStart = time.Now()

// SetAppInfo publishes the application version and Go runtime version.
func SetAppInfo(version string) {
	AppInfo.WithLabelValues(version, runtime.Version()).Set(1)
}

// UpdateUptime refreshes the uptime gauge. Called from the periodic
// metrics sync service.
func UpdateUptime() {
	AppUptime.Set(time.Since(appStart).Seconds())
}

// RecordFeedback records a feedback submission by star rating
func RecordFeedback(rating string) {
	FeedbackSubmissions.WithLabelValues(rating).Inc()
}

// RecordFeedbackExport records a CSV export of the feedback store
func RecordFeedbackExport() {
	FeedbackExports.Inc()
}

// RecordImageRequest records a profile image request outcome
func RecordImageRequest(result string) {
	ImageRequests.WithLabelValues(result).Inc()
}
