// CreatorMatch - Creator Recommendation API for FixUrFeed
// Copyright 2026 FixUrFeed
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/fixurfeed/creatormatch

package api

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/fixurfeed/creatormatch/internal/catalog"
	"github.com/fixurfeed/creatormatch/internal/config"
	"github.com/fixurfeed/creatormatch/internal/feedback"
	"github.com/fixurfeed/creatormatch/internal/logging"
	"github.com/fixurfeed/creatormatch/internal/match"
)

// Handler contains dependencies for API handlers.
//
// Handler methods are split across multiple files:
//   - handlers.go: Handler struct and constructor (this file)
//   - handlers_catalog.go: Catalog listing and lookup endpoints
//   - handlers_match.go: Quiz match computation endpoint
//   - handlers_feedback.go: Feedback capture and CSV export endpoints
//   - handlers_images.go: Profile photo serving
//   - handlers_health.go: Health/monitoring endpoints
type Handler struct {
	cfg      *config.Config
	catalog  *catalog.Store
	feedback *feedback.Store
	log      zerolog.Logger

	// matcherOpts are applied to every per-request Matcher. Tests inject a
	// fixed rand source here for deterministic output.
	matcherOpts []match.Option

	startTime time.Time
}

// HandlerOption configures a Handler.
type HandlerOption func(*Handler)

// WithMatcherOptions sets options applied to every per-request Matcher.
func WithMatcherOptions(opts ...match.Option) HandlerOption {
	return func(h *Handler) {
		h.matcherOpts = opts
	}
}

// NewHandler creates a new API handler with all required dependencies.
//
// Dependencies:
//   - cfg: Application configuration (pagination caps, image directory)
//   - cat: Creator catalog store
//   - fb: Feedback store
//
// Example:
//
//	handler := api.NewHandler(cfg, catalogStore, feedbackStore)
//	router := api.NewRouter(handler, cfg)
//	http.ListenAndServe(":3001", router.Setup())
func NewHandler(cfg *config.Config, cat *catalog.Store, fb *feedback.Store, opts ...HandlerOption) *Handler {
	h := &Handler{
		cfg:       cfg,
		catalog:   cat,
		feedback:  fb,
		log:       logging.WithComponent("api"),
		startTime: time.Now(),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// newMatcher builds the per-request matcher. Each request gets its own
// instance so the skipped-gender draw stays independent per invocation.
func (h *Handler) newMatcher() *match.Matcher {
	return match.New(h.matcherOpts...)
}
