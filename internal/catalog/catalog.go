// CreatorMatch - Creator Recommendation API for FixUrFeed
// Copyright 2026 FixUrFeed
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/fixurfeed/creatormatch

package catalog

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/fixurfeed/creatormatch/internal/cache"
	"github.com/fixurfeed/creatormatch/internal/logging"
	"github.com/fixurfeed/creatormatch/internal/metrics"
	"github.com/fixurfeed/creatormatch/internal/models"
)

// ErrNotFound is returned when a creator ID does not exist in the catalog.
var ErrNotFound = errors.New("creator not found")

// rawPhotoPrefix is the asset path creator records carry on disk; it is
// rewritten to the image endpoint so clients never see filesystem layout.
const (
	rawPhotoPrefix  = "/src/data/profile_photos/"
	imageURLPrefix  = "/api/v1/images/"
	catalogCacheKey = "catalog:all"
)

// Store loads, sanitizes and serves the creator catalog.
//
// The catalog is a JSON file on disk. Reads go through a TTL cache so the
// file is parsed at most once per TTL window; Reload clears the cache for
// an immediate refresh. All methods are safe for concurrent use.
type Store struct {
	paths []string
	cache *cache.Cache
	log   zerolog.Logger
}

// QueryOptions filters and paginates a catalog listing. Zero values mean
// no filtering and no pagination.
type QueryOptions struct {
	// Role keeps creators whose role title contains this substring
	// (case-insensitive).
	Role string
	// Platform keeps creators whose platform equals this value
	// (case-insensitive).
	Platform string
	// Offset is the number of filtered entries to skip.
	Offset int
	// Limit caps the number of entries returned; 0 means no cap.
	Limit int
}

// QueryResult is one page of the filtered catalog.
type QueryResult struct {
	// Creators is the requested page.
	Creators []models.Creator
	// Total is the filtered count before pagination.
	Total int
}

// NewStore creates a catalog store that tries each path in order until one
// loads. The TTL bounds how long a stale file is served after it changes.
func NewStore(paths []string, ttl time.Duration) *Store {
	return &Store{
		paths: paths,
		cache: cache.New(ttl),
		log:   logging.WithComponent("catalog"),
	}
}

// All returns the sanitized catalog, from cache when fresh.
//
// A missing or unreadable file is an error; clients decide whether to
// degrade. The returned slice is shared: callers must not mutate it.
func (s *Store) All() ([]models.Creator, error) {
	if cached, ok := s.cache.Get(catalogCacheKey); ok {
		return cached.([]models.Creator), nil
	}

	creators, err := s.load()
	if err != nil {
		return nil, err
	}

	s.cache.Set(catalogCacheKey, creators)
	return creators, nil
}

// Query returns one filtered, paginated page of the catalog.
func (s *Store) Query(opts QueryOptions) (QueryResult, error) {
	creators, err := s.All()
	if err != nil {
		return QueryResult{}, err
	}

	filtered := creators
	if opts.Role != "" || opts.Platform != "" {
		filtered = make([]models.Creator, 0, len(creators))
		role := strings.ToLower(opts.Role)
		platform := strings.ToLower(opts.Platform)
		for _, c := range creators {
			if role != "" && !strings.Contains(strings.ToLower(c.Role), role) {
				continue
			}
			if platform != "" && !strings.EqualFold(c.Platform, platform) {
				continue
			}
			filtered = append(filtered, c)
		}
	}

	total := len(filtered)

	start := opts.Offset
	if start < 0 {
		start = 0
	}
	if start > total {
		start = total
	}
	end := total
	if opts.Limit > 0 && start+opts.Limit < end {
		end = start + opts.Limit
	}

	return QueryResult{Creators: filtered[start:end], Total: total}, nil
}

// GetByID returns a single creator or ErrNotFound.
func (s *Store) GetByID(id string) (models.Creator, error) {
	creators, err := s.All()
	if err != nil {
		return models.Creator{}, err
	}
	for _, c := range creators {
		if c.ID == id {
			return c, nil
		}
	}
	return models.Creator{}, fmt.Errorf("%w: %s", ErrNotFound, id)
}

// Reload invalidates the cache so the next read re-parses the file.
func (s *Store) Reload() {
	s.cache.Clear()
	s.log.Debug().Msg("Catalog cache cleared")
}

// CacheStats exposes cache counters for metrics collection.
func (s *Store) CacheStats() cache.Stats {
	return s.cache.GetStats()
}

// Close releases the cache's background resources.
func (s *Store) Close() {
	s.cache.Close()
}

// load reads the first parseable catalog file and sanitizes it.
func (s *Store) load() ([]models.Creator, error) {
	start := time.Now()

	var lastErr error
	for _, path := range s.paths {
		data, err := os.ReadFile(filepath.Clean(path))
		if err != nil {
			lastErr = err
			s.log.Debug().Str("path", path).Err(err).Msg("Catalog path not readable")
			continue
		}

		var raw []models.Creator
		if err := json.Unmarshal(data, &raw); err != nil {
			lastErr = fmt.Errorf("parse %s: %w", path, err)
			s.log.Warn().Str("path", path).Err(err).Msg("Catalog file not parseable")
			continue
		}

		creators := sanitize(raw)
		metrics.RecordCatalogLoad(time.Since(start), len(creators), nil)
		s.log.Info().
			Str("path", path).
			Int("total", len(raw)).
			Int("kept", len(creators)).
			Msg("Catalog loaded")
		return creators, nil
	}

	if lastErr == nil {
		lastErr = errors.New("no catalog paths configured")
	}
	metrics.RecordCatalogLoad(time.Since(start), 0, lastErr)
	return nil, fmt.Errorf("load catalog: %w", lastErr)
}

// sanitize drops records missing required identity fields and rewrites
// photo asset paths to the public image endpoint.
func sanitize(raw []models.Creator) []models.Creator {
	creators := make([]models.Creator, 0, len(raw))
	for _, c := range raw {
		if c.ID == "" || c.Name == "" {
			continue
		}
		c.Avatar = rewritePhotoPath(c.Avatar)
		c.ProfilePhoto = rewritePhotoPath(c.ProfilePhoto)
		creators = append(creators, c)
	}
	return creators
}

func rewritePhotoPath(p string) string {
	if p == "" {
		return ""
	}
	return strings.Replace(p, rawPhotoPrefix, imageURLPrefix, 1)
}
