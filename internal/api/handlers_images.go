// CreatorMatch - Creator Recommendation API for FixUrFeed
// Copyright 2026 FixUrFeed
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/fixurfeed/creatormatch

package api

import (
	"net/http"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/fixurfeed/creatormatch/internal/metrics"
)

// imageFilenameRE whitelists servable profile photo names: a simple
// filename with an image extension, nothing else.
var imageFilenameRE = regexp.MustCompile(`^[A-Za-z0-9._-]+\.(jpg|jpeg|png|gif)$`)

// imageContentTypes maps allowed extensions to their MIME types.
var imageContentTypes = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".gif":  "image/gif",
}

// Image handles GET /api/v1/images/{filename}, serving profile photos
// from the configured images directory.
//
// The filename is validated before any filesystem access: path
// separators and parent references are rejected outright, and only the
// whitelisted image extensions are servable. Photos are immutable, so
// responses carry a one-day public cache header.
func (h *Handler) Image(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	filename := chi.URLParam(r, "filename")
	if filename == "" ||
		strings.Contains(filename, "..") ||
		strings.ContainsAny(filename, `/\`) ||
		!imageFilenameRE.MatchString(filename) {
		metrics.RecordImageRequest("rejected")
		rw.BadRequest("Invalid image filename")
		return
	}

	path := filepath.Join(h.cfg.Catalog.ImagesDir, filename)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			metrics.RecordImageRequest("not_found")
			rw.NotFound("Image not found")
			return
		}
		h.log.Error().Err(err).Str("path", path).Msg("Failed to read image")
		metrics.RecordImageRequest("not_found")
		rw.InternalError("Failed to read image")
		return
	}

	metrics.RecordImageRequest("served")

	w.Header().Set("Content-Type", imageContentTypes[strings.ToLower(filepath.Ext(filename))])
	w.Header().Set("Cache-Control", "public, max-age=86400")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil {
		h.log.Error().Err(err).Msg("Failed to write image response")
	}
}
