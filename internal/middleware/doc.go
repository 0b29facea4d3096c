// CreatorMatch - Creator Recommendation API for FixUrFeed
// Copyright 2026 FixUrFeed
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/fixurfeed/creatormatch

/*
Package middleware provides HTTP middleware shared across the API routes.

Key Components:

  - Compression: gzip compression for JSON responses
  - PerformanceMetrics: sliding-window latency stats for development
  - PrometheusMetrics: request count, latency and in-flight instrumentation

All middleware use the standard func(http.Handler) http.Handler shape and
compose with Chi's Use/With:

	r.Use(middleware.Compression)
	r.Use(middleware.PrometheusMetrics)

Compression applies to the JSON API routes only; profile images are
served on a separate route with their own cache headers and never pass
through the gzip writer.

The performance monitor duplicates what the Prometheus histograms
already expose, but keeps the last N observations in process so
per-endpoint percentiles are inspectable in development without a
metrics stack:

	pm := middleware.NewPerformanceMonitor(1000)
	r.Use(pm.Middleware)
	// later: pm.GetStats()

PrometheusMetrics labels requests with the Chi route pattern rather
than the raw URL so creator IDs and image filenames never become label
values.

See Also:

  - internal/api: handlers and the router that assembles the stack
  - internal/metrics: Prometheus metric definitions
*/
package middleware
