// CreatorMatch - Creator Recommendation API for FixUrFeed
// Copyright 2026 FixUrFeed
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/fixurfeed/creatormatch

// Package api provides HTTP routing using the Chi router.
package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/fixurfeed/creatormatch/internal/config"
	"github.com/fixurfeed/creatormatch/internal/middleware"
)

// perfWindowSize is how many request observations the development
// performance monitor retains.
const perfWindowSize = 1000

// Router wires handlers and middleware into the HTTP routing tree.
type Router struct {
	handler       *Handler
	chiMiddleware *ChiMiddleware
	perf          *middleware.PerformanceMonitor
	devMode       bool
}

// NewRouter creates a Router from the handler and security settings.
func NewRouter(handler *Handler, cfg *config.Config) *Router {
	mwConfig := DefaultChiMiddlewareConfig()
	mwConfig.CORSAllowedOrigins = cfg.Security.CORSOrigins
	mwConfig.RateLimitRequests = cfg.Security.RateLimitReqs
	mwConfig.RateLimitWindow = cfg.Security.RateLimitWindow
	mwConfig.RateLimitDisabled = cfg.Security.RateLimitDisabled

	return &Router{
		handler:       handler,
		chiMiddleware: NewChiMiddleware(mwConfig),
		perf:          middleware.NewPerformanceMonitor(perfWindowSize),
		devMode:       cfg.Server.Environment == "development",
	}
}

// Setup configures all HTTP routes using the Chi router.
func (router *Router) Setup() http.Handler {
	r := chi.NewRouter()

	// ========================
	// Global Middleware Stack
	// ========================
	// Applied to ALL routes in order
	r.Use(RequestIDWithLogging())             // Add X-Request-ID header with logging context
	r.Use(chimiddleware.RealIP)               // Extract real IP from X-Forwarded-For
	r.Use(chimiddleware.Recoverer)            // Recover from panics
	r.Use(router.chiMiddleware.CORS())        // CORS must be global to handle OPTIONS preflight

	// ========================
	// Health Endpoints
	// ========================
	// Permissive rate limiting so monitoring can poll frequently
	r.Route("/api/v1/health", func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimitHealth())
		r.Use(APISecurityHeaders())
		r.Get("/", router.handler.Health)
		r.Get("/live", router.handler.HealthLive)
		r.Get("/ready", router.handler.HealthReady)
	})

	// ========================
	// Core API Endpoints
	// ========================
	r.Route("/api/v1", func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimit())
		r.Use(APISecurityHeaders())
		r.Use(middleware.PrometheusMetrics)
		r.Use(router.perf.Middleware)
		r.Use(middleware.Compression)

		// Catalog
		r.Get("/creators", router.handler.Creators)
		r.Get("/creators/{id}", router.handler.CreatorByID)

		// Match computation
		r.Post("/match", router.handler.Match)

		// Feedback capture and review
		r.With(router.chiMiddleware.RateLimitWrite()).Post("/feedback", router.handler.FeedbackSubmit)
		r.Get("/feedback", router.handler.FeedbackList)
		r.With(router.chiMiddleware.RateLimitExport()).Get("/feedback/export", router.handler.FeedbackExport)
	})

	// ========================
	// Profile Images
	// ========================
	// Separate limit: one results page fetches several photos at once.
	// Cache headers are set by the handler, so no Prometheus wrapper is
	// needed - the image counter tracks outcomes already.
	r.Route("/api/v1/images", func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimitImages())
		r.Use(APISecurityHeaders())
		r.Get("/{filename}", router.handler.Image)
	})

	// ========================
	// Observability
	// ========================
	r.Handle("/metrics", promhttp.Handler())

	// In-process latency percentiles, development only. Production uses
	// the Prometheus histograms.
	if router.devMode {
		r.Get("/debug/performance", router.performanceStats)
	}

	return r
}

// recentRequestSample bounds the raw request tail in the debug payload.
const recentRequestSample = 20

// performanceStats serves the sliding-window latency stats collected by
// the performance monitor: per-endpoint percentiles plus the most recent
// requests for eyeballing individual slow calls.
func (router *Router) performanceStats(w http.ResponseWriter, r *http.Request) {
	NewResponseWriter(w, r).Success(map[string]interface{}{
		"endpoints": router.perf.GetStats(),
		"recent":    router.perf.GetRecentMetrics(recentRequestSample),
	})
}
