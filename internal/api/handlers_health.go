// CreatorMatch - Creator Recommendation API for FixUrFeed
// Copyright 2026 FixUrFeed
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/fixurfeed/creatormatch

package api

import (
	"net/http"
	"time"
)

// HealthStatus is the payload returned by the full health endpoint.
type HealthStatus struct {
	// Status is "healthy" or "degraded".
	Status string `json:"status"`

	// Version is the application version.
	Version string `json:"version"`

	// CatalogLoaded reports whether the creator catalog is readable.
	CatalogLoaded bool `json:"catalog_loaded"`

	// CatalogSize is the number of creators currently served.
	CatalogSize int `json:"catalog_size"`

	// FeedbackEntries is the number of stored feedback submissions.
	FeedbackEntries int `json:"feedback_entries"`

	// Uptime is seconds since process start.
	Uptime float64 `json:"uptime"`
}

// Version is the application version reported by health endpoints.
// Overridden at build time via -ldflags.
var Version = "dev"

// Health handles GET /api/v1/health.
//
// Returns the full health picture: catalog readability and size,
// feedback store reachability, and uptime. The endpoint itself always
// answers 200; a degraded status is carried in the payload so
// monitoring can alert without the probe flapping.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	status := "healthy"

	creators, err := h.catalog.All()
	catalogLoaded := err == nil
	if !catalogLoaded {
		status = "degraded"
	}

	feedbackCount, err := h.feedback.Count(r.Context())
	if err != nil {
		status = "degraded"
	}

	rw.Success(HealthStatus{
		Status:          status,
		Version:         Version,
		CatalogLoaded:   catalogLoaded,
		CatalogSize:     len(creators),
		FeedbackEntries: feedbackCount,
		Uptime:          time.Since(h.startTime).Seconds(),
	})
}

// HealthLive handles GET /api/v1/health/live (Kubernetes liveness probe).
// Returns 200 OK if the process is alive, regardless of dependencies.
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	NewResponseWriter(w, r).Success(map[string]interface{}{
		"alive":  true,
		"uptime": time.Since(h.startTime).Seconds(),
	})
}

// HealthReady handles GET /api/v1/health/ready (Kubernetes readiness probe).
// Returns 200 only when the catalog is loadable; 503 otherwise, so traffic
// is withheld until the service can answer match requests.
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	creators, err := h.catalog.All()
	if err != nil {
		rw.ServiceUnavailable("Creator catalog is not readable")
		return
	}

	rw.Success(map[string]interface{}{
		"ready":        true,
		"catalog_size": len(creators),
	})
}
