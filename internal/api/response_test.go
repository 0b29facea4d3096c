// CreatorMatch - Creator Recommendation API for FixUrFeed
// Copyright 2026 FixUrFeed
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/fixurfeed/creatormatch

package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/goccy/go-json"

	"github.com/fixurfeed/creatormatch/internal/logging"
)

func TestResponseWriterSuccess(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/creators", nil)
	rec := httptest.NewRecorder()

	NewResponseWriter(rec, req).Success(map[string]string{"hello": "world"})

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json; charset=utf-8" {
		t.Errorf("Content-Type = %q, want application/json; charset=utf-8", ct)
	}

	var resp APIResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !resp.Success {
		t.Error("success = false, want true")
	}
	if resp.Error != nil {
		t.Errorf("error = %+v, want nil", resp.Error)
	}
	if resp.Meta == nil || resp.Meta.Timestamp.IsZero() {
		t.Error("meta.timestamp missing")
	}
}

func TestResponseWriterCreated(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/feedback", nil)
	rec := httptest.NewRecorder()

	NewResponseWriter(rec, req).Created(map[string]string{"id": "abc"})

	if rec.Code != http.StatusCreated {
		t.Errorf("status = %d, want 201", rec.Code)
	}
}

func TestResponseWriterErrorHelpers(t *testing.T) {
	tests := []struct {
		name       string
		write      func(rw *ResponseWriter)
		wantStatus int
		wantCode   string
	}{
		{
			"bad request",
			func(rw *ResponseWriter) { rw.BadRequest("bad input") },
			http.StatusBadRequest, ErrCodeBadRequest,
		},
		{
			"not found",
			func(rw *ResponseWriter) { rw.NotFound("missing") },
			http.StatusNotFound, ErrCodeNotFound,
		},
		{
			"too many requests",
			func(rw *ResponseWriter) { rw.TooManyRequests("slow down") },
			http.StatusTooManyRequests, ErrCodeTooManyRequests,
		},
		{
			"internal error",
			func(rw *ResponseWriter) { rw.InternalError("boom") },
			http.StatusInternalServerError, ErrCodeInternalError,
		},
		{
			"service unavailable",
			func(rw *ResponseWriter) { rw.ServiceUnavailable("down") },
			http.StatusServiceUnavailable, ErrCodeServiceUnavailable,
		},
		{
			"validation error",
			func(rw *ResponseWriter) { rw.ValidationError("invalid", nil) },
			http.StatusBadRequest, ErrCodeValidationFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/v1/test", nil)
			rec := httptest.NewRecorder()
			tt.write(NewResponseWriter(rec, req))

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}

			var resp APIResponse
			if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if resp.Success {
				t.Error("success = true, want false")
			}
			if resp.Error == nil || resp.Error.Code != tt.wantCode {
				t.Errorf("error = %+v, want code %s", resp.Error, tt.wantCode)
			}
		})
	}
}

func TestResponseWriterPagination(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/creators", nil)
	rec := httptest.NewRecorder()

	NewResponseWriter(rec, req).SuccessWithPagination([]string{"a", "b"}, &PaginationMeta{
		Total:   10,
		Count:   2,
		Offset:  4,
		Limit:   2,
		HasMore: true,
	})

	var resp APIResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	p := resp.Meta.Pagination
	if p == nil {
		t.Fatal("pagination meta missing")
	}
	if p.Total != 10 || p.Count != 2 || p.Offset != 4 || !p.HasMore {
		t.Errorf("pagination = %+v", p)
	}
}

func TestResponseWriterPropagatesRequestID(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/creators", nil)
	ctx := logging.ContextWithRequestID(req.Context(), "req-123")
	req = req.WithContext(ctx)
	rec := httptest.NewRecorder()

	NewResponseWriter(rec, req).NotFound("missing")

	var resp APIResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Error.RequestID != "req-123" {
		t.Errorf("error.request_id = %q, want req-123", resp.Error.RequestID)
	}
	if resp.Meta.RequestID != "req-123" {
		t.Errorf("meta.request_id = %q, want req-123", resp.Meta.RequestID)
	}
}
