// CreatorMatch - Creator Recommendation API for FixUrFeed
// Copyright 2026 FixUrFeed
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/fixurfeed/creatormatch

/*
Package services provides suture.Service wrappers for CreatorMatch components.

Each wrapper implements the suture.Service interface:

	type Service interface {
	    Serve(ctx context.Context) error
	}

The wrappers handle lifecycle translation into suture's context-aware
Serve pattern, graceful shutdown via context cancellation, error
propagation for supervisor restart decisions, and service identification
via fmt.Stringer.

# Available Services

HTTP Server (HTTPServerService):
  - Wraps *http.Server with graceful shutdown
  - Converts the blocking ListenAndServe pattern to Serve
  - Configurable shutdown timeout for draining connections

Catalog Refresh (CatalogRefreshService):
  - Reads the catalog on an interval to keep the TTL cache warm
  - Picks up a fixed catalog file without waiting for request traffic
  - Logs and retries failed reads instead of terminating

Cache Stats (CacheStatsService):
  - Periodically pushes catalog cache counters into the Prometheus
    cache metrics
  - Syncs once at startup, then on a fixed interval
*/
package services
