// CreatorMatch - Creator Recommendation API for FixUrFeed
// Copyright 2026 FixUrFeed
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/fixurfeed/creatormatch

/*
Package api provides the HTTP REST API layer for CreatorMatch.

It exposes the creator catalog, the match computation, feedback capture
and profile image serving as a small JSON API consumed by the quiz
frontend.

Key Components:

  - Router: Chi route configuration and middleware stack assembly
  - Handler: request handlers for every endpoint
  - ResponseWriter: standardized JSON envelope with request metadata
  - Rate limiting: per-IP limits, tighter on writes and exports
  - CORS: configurable allowed origins for the frontend

Endpoints (/api/v1/):

  - GET  /creators            catalog list with role/platform filters and pagination
  - GET  /creators/{id}       single creator lookup
  - POST /match               compute recommendations for one quiz completion
  - POST /feedback            store a feedback submission
  - GET  /feedback            list stored feedback
  - GET  /feedback/export     download all feedback as CSV
  - GET  /images/{filename}   serve a profile photo (validated filename only)
  - GET  /health, /health/live, /health/ready

Plus GET /metrics (Prometheus) and, in development, GET
/debug/performance.

Usage Example:

	import (
	    "github.com/fixurfeed/creatormatch/internal/api"
	    "github.com/fixurfeed/creatormatch/internal/catalog"
	    "github.com/fixurfeed/creatormatch/internal/feedback"
	)

	cat := catalog.NewStore(cfg.CatalogPaths(), cfg.Catalog.CacheTTL)
	fb, _ := feedback.Open(cfg.Feedback.StorePath, cfg.Feedback.InMemory)

	handler := api.NewHandler(cfg, cat, fb)
	router := api.NewRouter(handler, cfg)
	http.ListenAndServe(":3001", router.Setup())

Response Envelope:

Every JSON endpoint answers with the same shape:

	{
	  "success": true,
	  "data": ...,
	  "meta": {"request_id": "...", "timestamp": "...", "duration_ms": 1}
	}

Errors carry an error object with a stable machine-readable code
(VALIDATION_ERROR, CREATOR_NOT_FOUND, ...) instead of data. The CSV
export is the one exception: it streams text/csv with an attachment
disposition.

Thread Safety:

Handlers hold no per-request state apart from the matcher, which is
constructed per request. The catalog store and feedback store are safe
for concurrent use.

See Also:

  - internal/match: the scoring and selection engine
  - internal/catalog: catalog loading and the query cache
  - internal/feedback: the Badger-backed feedback store
  - internal/middleware: compression, performance and Prometheus middleware
*/
package api
