// CreatorMatch - Creator Recommendation API for FixUrFeed
// Copyright 2026 FixUrFeed
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/fixurfeed/creatormatch

package api

import (
	"net/http"
	"time"

	"github.com/goccy/go-json"

	"github.com/fixurfeed/creatormatch/internal/metrics"
	"github.com/fixurfeed/creatormatch/internal/models"
	"github.com/fixurfeed/creatormatch/internal/validation"
)

// Match handles POST /api/v1/match.
//
// The body is one finalized quiz completion; the response is the ordered
// recommendation list (at most five creators, never padded).
func (h *Handler) Match(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	var answers models.QuizAnswers
	if err := json.NewDecoder(r.Body).Decode(&answers); err != nil {
		rw.BadRequest("Request body must be valid JSON quiz answers")
		return
	}

	if verr := validation.ValidateStruct(&answers); verr != nil {
		apiErr := verr.ToAPIError()
		rw.ValidationError(apiErr.Message, apiErr.Details)
		return
	}

	creators, err := h.catalog.All()
	if err != nil {
		rw.CatalogError(err)
		return
	}

	start := time.Now()
	matches := h.newMatcher().Match(answers, creators)
	metrics.RecordMatch(time.Since(start), len(matches))

	h.log.Debug().
		Int("candidates", len(creators)).
		Int("matches", len(matches)).
		Msg("Match computed")

	rw.Success(matches)
}
