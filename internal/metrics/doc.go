// CreatorMatch - Creator Recommendation API for FixUrFeed
// Copyright 2026 FixUrFeed
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/fixurfeed/creatormatch

/*
Package metrics provides Prometheus metrics collection and export for observability.

This package instruments the application using the Prometheus client library,
exposing metrics for API traffic, match computations, catalog loading, cache
efficiency, feedback capture, and image serving.

# Metrics Endpoint

Metrics are exposed at the /metrics endpoint in Prometheus text format:

	curl http://localhost:3001/metrics

# Available Metrics

API Metrics:
  - api_requests_total: Total API requests (counter)
    Labels: method, endpoint, status_code
  - api_request_duration_seconds: Request latency (histogram)
    Labels: method, endpoint
  - api_active_requests: In-flight requests (gauge)
  - api_rate_limit_hits_total: Rate limit rejections (counter)
    Labels: endpoint

Match Engine Metrics:
  - match_requests_total: Match computations performed (counter)
  - match_duration_seconds: Computation latency (histogram)
    Buckets tuned for pure in-memory scoring (100µs-500ms)
  - match_result_count: Creators returned per computation (histogram, 0-5)
  - match_empty_results_total: Computations returning no creators (counter)

Catalog Metrics:
  - catalog_load_duration_seconds: Catalog file load time (histogram)
  - catalog_creators: Creators in the loaded catalog (gauge)
  - catalog_load_errors_total: Failed catalog loads (counter)

Cache Metrics:
  - cache_hits_total, cache_misses_total, cache_evictions_total (counters)
    Labels: cache_type
  - cache_entries: Current cached entries (gauge)
    Labels: cache_type

Feedback Metrics:
  - feedback_submissions_total: Submissions by star rating (counter)
    Labels: rating
  - feedback_exports_total: CSV exports (counter)
  - feedback_store_errors_total: Store failures (counter)

Image Serving Metrics:
  - image_requests_total: Profile image requests (counter)
    Labels: result (served, not_found, rejected)

# Usage Example

	import (
	    "github.com/fixurfeed/creatormatch/internal/metrics"
	    "github.com/prometheus/client_golang/prometheus/promhttp"
	)

	func main() {
	    http.Handle("/metrics", promhttp.Handler())

	    start := time.Now()
	    result := matcher.Match(answers, creators)
	    metrics.RecordMatch(time.Since(start), len(result))
	}

Cache stats are cumulative on the cache side, so UpdateCacheStats translates
them into monotonic counter increments:

	stats := store.CacheStats()
	metrics.UpdateCacheStats("catalog", stats.Hits, stats.Misses, stats.Evictions, stats.Keys)

# Prometheus Configuration

Example prometheus.yml scrape config:

	scrape_configs:
	  - job_name: 'creatormatch'
	    static_configs:
	      - targets: ['localhost:3001']
	    metrics_path: '/metrics'
	    scrape_interval: 15s

Example PromQL queries:

	# API request rate
	rate(api_requests_total[5m])

	# Match p95 latency
	histogram_quantile(0.95, rate(match_duration_seconds_bucket[5m]))

	# Cache hit rate
	sum(rate(cache_hits_total[5m])) / (sum(rate(cache_hits_total[5m])) + sum(rate(cache_misses_total[5m])))

	# Share of empty match results
	rate(match_empty_results_total[15m]) / rate(match_requests_total[15m])

# Thread Safety

All metric recording functions are thread-safe and designed for concurrent use
from multiple goroutines. The Prometheus client library handles synchronization
internally; the cache stat sync additionally serializes its delta bookkeeping.

# Cardinality Management

To prevent high cardinality issues:

  - Endpoint labels use chi route patterns, not raw URLs
  - Ratings are bounded (1-5), image results are fixed constants
  - User-specific labels are avoided
*/
package metrics
