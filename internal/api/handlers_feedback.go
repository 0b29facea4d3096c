// CreatorMatch - Creator Recommendation API for FixUrFeed
// Copyright 2026 FixUrFeed
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/fixurfeed/creatormatch

package api

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/goccy/go-json"

	"github.com/fixurfeed/creatormatch/internal/feedback"
	"github.com/fixurfeed/creatormatch/internal/metrics"
	"github.com/fixurfeed/creatormatch/internal/models"
	"github.com/fixurfeed/creatormatch/internal/validation"
)

// FeedbackSubmit handles POST /api/v1/feedback.
func (h *Handler) FeedbackSubmit(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	var fb models.Feedback
	if err := json.NewDecoder(r.Body).Decode(&fb); err != nil {
		rw.BadRequest("Request body must be valid JSON feedback")
		return
	}

	if verr := validation.ValidateStruct(&fb); verr != nil {
		apiErr := verr.ToAPIError()
		rw.ValidationError(apiErr.Message, apiErr.Details)
		return
	}

	if err := h.feedback.Save(r.Context(), &fb); err != nil {
		metrics.FeedbackStoreErrors.Inc()
		rw.StoreError(err)
		return
	}

	metrics.RecordFeedback(strconv.Itoa(fb.Rating))
	rw.Created(fb)
}

// FeedbackList handles GET /api/v1/feedback.
func (h *Handler) FeedbackList(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	entries, err := h.feedback.List(r.Context())
	if err != nil {
		metrics.FeedbackStoreErrors.Inc()
		rw.StoreError(err)
		return
	}

	rw.SuccessWithPagination(entries, &PaginationMeta{
		Total: int64(len(entries)),
		Count: len(entries),
	})
}

// FeedbackExport handles GET /api/v1/feedback/export, streaming the full
// store as a CSV download.
func (h *Handler) FeedbackExport(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	data, err := h.feedback.ExportCSV(r.Context())
	if err != nil {
		metrics.FeedbackStoreErrors.Inc()
		rw.StoreError(err)
		return
	}

	metrics.RecordFeedbackExport()

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=%q", feedback.ExportFilename(time.Now())))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil {
		h.log.Error().Err(err).Msg("Failed to write CSV export")
	}
}
