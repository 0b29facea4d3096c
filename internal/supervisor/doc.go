// CreatorMatch - Creator Recommendation API for FixUrFeed
// Copyright 2026 FixUrFeed
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/fixurfeed/creatormatch

/*
Package supervisor provides process supervision for CreatorMatch using suture v4.

This package implements a hierarchical supervisor tree that manages the lifecycle
of all long-running services in the application. It provides Erlang/OTP-style
supervision with automatic restart, failure isolation, and graceful shutdown.

# Overview

The supervisor tree organizes services into two layers for failure isolation:

	RootSupervisor ("creatormatch")
	├── StorageSupervisor ("storage-layer")
	│   ├── CatalogRefreshService
	│   └── CacheStatsService
	└── APISupervisor ("api-layer")
	    └── HTTPServerService

This hierarchy ensures that a crash in the stats syncer doesn't take the
HTTP server down with it, and each layer can restart independently with
its own failure counting.

# Key Features

Automatic Restart:
  - Crashed services are automatically restarted
  - Exponential backoff prevents restart storms
  - Configurable failure thresholds and decay rates

Graceful Shutdown:
  - Context cancellation triggers orderly shutdown
  - Configurable shutdown timeout per service
  - UnstoppedServiceReport for debugging hangs

Structured Logging:
  - Integration with slog for structured events
  - Logs service starts, stops, failures, and restarts
  - Event hooks via the sutureslog adapter

# Usage Example

Basic setup in main.go:

	logger := logging.NewSlogLogger()
	tree, err := supervisor.NewSupervisorTree(logger, supervisor.DefaultTreeConfig())
	if err != nil {
	    return err
	}

	tree.AddStorageService(services.NewCatalogRefreshService(catalogStore, cfg.Catalog.CacheTTL))
	tree.AddStorageService(services.NewCacheStatsService(catalogStore, "catalog", 30*time.Second))
	tree.AddAPIService(services.NewHTTPServerService(httpServer, 10*time.Second))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return tree.Serve(ctx)

See Also:

  - internal/supervisor/services: the suture.Service wrappers
*/
package supervisor
