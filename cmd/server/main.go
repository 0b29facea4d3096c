// CreatorMatch - Creator Recommendation API for FixUrFeed
// Copyright 2026 FixUrFeed
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/fixurfeed/creatormatch

// Package main is the entry point for the CreatorMatch server application.
//
// CreatorMatch recommends tech-career content creators based on a short
// onboarding quiz. It serves the creator catalog, computes deterministic
// rule-based matches, captures user feedback, and serves creator profile
// photos over a small JSON API.
//
// # Application Architecture
//
// The server initializes components in the following order:
//
//  1. Configuration: load settings from environment variables and config files (Koanf v2)
//  2. Catalog store: JSON catalog with a TTL query cache
//  3. Feedback store: BadgerDB-backed persistent feedback storage
//  4. HTTP server: REST API with rate limiting, CORS and Prometheus metrics
//  5. Supervisor tree: suture v4 supervision of all long-running services
//
// # Configuration
//
// Configuration is loaded via Koanf v2 with layered sources (highest priority wins):
//   - Environment variables
//   - Config file (config.yaml, or CONFIG_PATH)
//   - Built-in defaults
//
// Common settings:
//   - HTTP_PORT: listen port (default 3001)
//   - CREATORS_PATH: creator catalog JSON file
//   - IMAGES_DIR: directory holding creator profile photos
//   - FEEDBACK_STORE_PATH: BadgerDB directory for feedback persistence
//   - CORS_ORIGINS: comma-separated allowed origins
//
// # Signal Handling
//
// The server handles graceful shutdown on SIGINT and SIGTERM:
//   - Stops accepting new connections
//   - Waits for in-flight requests to complete (10s timeout)
//   - Closes the feedback store and catalog cache
//
// # Example Usage
//
// Development with an in-memory feedback store:
//
//	export CREATORS_PATH=./data/creators.json
//	export IMAGES_DIR=./data/photos
//	export FEEDBACK_IN_MEMORY=true
//	export ENVIRONMENT=development
//	./creatormatch
//
// Production:
//
//	export CREATORS_PATH=/data/creators.json
//	export IMAGES_DIR=/data/photos
//	export FEEDBACK_STORE_PATH=/data/feedback
//	export CORS_ORIGINS=https://fixurfeed.com
//	./creatormatch
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fixurfeed/creatormatch/internal/api"
	"github.com/fixurfeed/creatormatch/internal/catalog"
	"github.com/fixurfeed/creatormatch/internal/config"
	"github.com/fixurfeed/creatormatch/internal/feedback"
	"github.com/fixurfeed/creatormatch/internal/logging"
	"github.com/fixurfeed/creatormatch/internal/metrics"
	"github.com/fixurfeed/creatormatch/internal/supervisor"
	"github.com/fixurfeed/creatormatch/internal/supervisor/services"
)

// cacheStatsSyncInterval is how often the catalog cache counters are
// pushed into the Prometheus cache metrics.
const cacheStatsSyncInterval = 30 * time.Second

func main() {
	// Load configuration first to get logging settings
	cfg, err := config.Load()
	if err != nil {
		// Use default logger for config errors (config not yet available)
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	// Initialize zerolog with configuration
	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})

	logging.Info().Msg("Starting CreatorMatch with supervisor tree")
	logging.Info().
		Str("catalog_path", cfg.Catalog.Path).
		Str("images_dir", cfg.Catalog.ImagesDir).
		Str("environment", cfg.Server.Environment).
		Msg("Configuration loaded")

	metrics.SetAppInfo(api.Version)

	// Catalog store with TTL query cache
	catalogStore := catalog.NewStore(cfg.CatalogPaths(), cfg.Catalog.CacheTTL)
	defer catalogStore.Close()

	if creators, err := catalogStore.All(); err != nil {
		// Non-fatal: the readiness probe reports the catalog state and a
		// fixed file path problem is recoverable by reload.
		logging.Warn().Err(err).Msg("Creator catalog is not readable at startup")
	} else {
		logging.Info().Int("creators", len(creators)).Msg("Creator catalog loaded")
	}

	// Feedback store (BadgerDB, optionally in-memory for development)
	feedbackStore, err := feedback.Open(cfg.Feedback.StorePath, cfg.Feedback.InMemory)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to open feedback store")
	}
	defer func() {
		if err := feedbackStore.Close(); err != nil {
			logging.Error().Err(err).Msg("Error closing feedback store")
		}
	}()
	if cfg.Feedback.InMemory {
		logging.Warn().Msg("Feedback store is in-memory; submissions are lost on restart")
	} else {
		logging.Info().Str("path", cfg.Feedback.StorePath).Msg("Feedback store opened")
	}

	if cfg.Security.RateLimitDisabled {
		logging.Warn().Msg("Rate limiting is DISABLED (DISABLE_RATE_LIMIT=true)")
		logging.Warn().Msg("This should only be used for local development and tests!")
	}
	if len(cfg.Security.CORSOrigins) == 0 {
		logging.Warn().Msg("No CORS origins configured; browser clients will be refused (set CORS_ORIGINS)")
	}

	// Create context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Create structured logger for supervisor using our slog adapter.
	// This bridges zerolog to slog for sutureslog compatibility.
	slogLogger := logging.NewSlogLogger()

	tree, err := supervisor.NewSupervisorTree(slogLogger, supervisor.DefaultTreeConfig())
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create supervisor tree")
	}

	handler := api.NewHandler(cfg, catalogStore, feedbackStore)
	router := api.NewRouter(handler, cfg)

	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      router.Setup(),
		ReadTimeout:  cfg.Server.Timeout,
		WriteTimeout: cfg.Server.Timeout,
		IdleTimeout:  60 * time.Second,
	}

	// === ADD SERVICES TO SUPERVISOR TREE ===

	// Refresh on the cache TTL so a fixed catalog file is picked up
	// without waiting for request traffic.
	tree.AddStorageService(services.NewCatalogRefreshService(catalogStore, cfg.Catalog.CacheTTL))
	tree.AddStorageService(services.NewCacheStatsService(catalogStore, "catalog", cacheStatsSyncInterval))
	tree.AddAPIService(services.NewHTTPServerService(server, 10*time.Second))
	logging.Info().Str("addr", server.Addr).Msg("HTTP server service added")

	// === START SUPERVISOR TREE ===

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logging.Info().Str("signal", sig.String()).Msg("Received shutdown signal")
		cancel()
	}()

	logging.Info().Msg("Starting supervisor tree...")
	errCh := tree.ServeBackground(ctx)

	// Wait for supervisor to finish (either from signal or error)
	select {
	case <-ctx.Done():
		logging.Info().Msg("Context canceled, waiting for supervisor to finish...")
	case err := <-errCh:
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor tree error")
		}
	}

	// Wait for the error channel to close (supervisor finished)
	for err := range errCh {
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor shutdown error")
		}
	}

	// Report any services that failed to stop within timeout
	unstopped, _ := tree.UnstoppedServiceReport()
	if len(unstopped) > 0 {
		logging.Warn().Int("count", len(unstopped)).Msg("Services failed to stop within timeout")
		for _, svc := range unstopped {
			logging.Warn().Str("service", svc.Name).Msg("Service failed to stop")
		}
	}

	logging.Info().Msg("Application stopped gracefully")
}
