// CreatorMatch - Creator Recommendation API for FixUrFeed
// Copyright 2026 FixUrFeed
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/fixurfeed/creatormatch

package api

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/fixurfeed/creatormatch/internal/catalog"
)

// Creators handles GET /api/v1/creators.
//
// Query parameters:
//   - role: case-insensitive substring filter on the role title
//   - platform: exact (case-insensitive) platform filter
//   - limit: page size, capped at api.max_page_size
//   - offset: entries to skip after filtering
func (h *Handler) Creators(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	limit, ok := h.parsePositiveIntParam(rw, r, "limit", h.cfg.API.DefaultPageSize)
	if !ok {
		return
	}
	offset, ok := h.parsePositiveIntParam(rw, r, "offset", 0)
	if !ok {
		return
	}
	if limit > h.cfg.API.MaxPageSize {
		limit = h.cfg.API.MaxPageSize
	}

	result, err := h.catalog.Query(catalog.QueryOptions{
		Role:     r.URL.Query().Get("role"),
		Platform: r.URL.Query().Get("platform"),
		Offset:   offset,
		Limit:    limit,
	})
	if err != nil {
		rw.CatalogError(err)
		return
	}

	rw.SuccessWithPagination(result.Creators, &PaginationMeta{
		Total:   int64(result.Total),
		Count:   len(result.Creators),
		Offset:  offset,
		Limit:   limit,
		HasMore: offset+len(result.Creators) < result.Total,
	})
}

// CreatorByID handles GET /api/v1/creators/{id}.
func (h *Handler) CreatorByID(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	id := chi.URLParam(r, "id")
	if id == "" {
		rw.BadRequest("Creator ID is required")
		return
	}

	creator, err := h.catalog.GetByID(id)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			rw.Error(http.StatusNotFound, ErrCodeCreatorNotFound, fmt.Sprintf("Creator %q not found", id))
			return
		}
		rw.CatalogError(err)
		return
	}

	rw.Success(creator)
}

// parsePositiveIntParam reads a non-negative integer query parameter,
// writing a 400 envelope and returning ok=false on invalid input.
func (h *Handler) parsePositiveIntParam(rw *ResponseWriter, r *http.Request, name string, def int) (int, bool) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, true
	}

	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		rw.BadRequest(fmt.Sprintf("Parameter %q must be a non-negative integer", name))
		return 0, false
	}
	return v, true
}
