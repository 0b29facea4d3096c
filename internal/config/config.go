// CreatorMatch - Creator Recommendation API for FixUrFeed
// Copyright 2026 FixUrFeed
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/fixurfeed/creatormatch

package config

import (
	"fmt"
	"time"
)

// Config holds all application configuration loaded from environment
// variables and config files.
//
// Configuration Loading Order (Koanf v2):
//  1. Defaults: Built-in sensible defaults for all settings
//  2. Config File: Optional YAML config file (config.yaml)
//  3. Environment Variables: Override any setting
//
// Thread Safety:
// Config is immutable after Load() and safe for concurrent read access
// from multiple goroutines.
type Config struct {
	Server   ServerConfig   `koanf:"server"`
	Catalog  CatalogConfig  `koanf:"catalog"`
	Feedback FeedbackConfig `koanf:"feedback"`
	API      APIConfig      `koanf:"api"`
	Security SecurityConfig `koanf:"security"`
	Logging  LoggingConfig  `koanf:"logging"`
}

// ServerConfig holds HTTP server settings.
//
// Environment Variables:
//   - HTTP_PORT: Listen port (default: 3001)
//   - HTTP_HOST: Bind address (default: 0.0.0.0)
//   - HTTP_TIMEOUT: Read/write timeout (default: 30s)
type ServerConfig struct {
	// Port is the TCP port the HTTP server listens on.
	Port int `koanf:"port"`
	// Host is the bind address.
	Host string `koanf:"host"`
	// Timeout bounds request reads and response writes.
	Timeout time.Duration `koanf:"timeout"`
	// Environment is "development" or "production".
	Environment string `koanf:"environment"`
}

// CatalogConfig holds creator catalog settings.
//
// Environment Variables:
//   - CREATORS_PATH: Explicit catalog file path (takes precedence)
//   - CATALOG_CACHE_TTL: How long parsed catalog data is cached (default: 5m)
//   - IMAGES_DIR: Directory profile photos are served from
type CatalogConfig struct {
	// Path is an explicit catalog file location. When set it is tried
	// before the built-in fallback paths.
	Path string `koanf:"path"`
	// CacheTTL bounds how long the parsed catalog is served before the
	// file is re-read.
	CacheTTL time.Duration `koanf:"cache_ttl"`
	// ImagesDir is the directory profile photos are streamed from.
	ImagesDir string `koanf:"images_dir"`
}

// FeedbackConfig holds feedback store settings.
//
// Environment Variables:
//   - FEEDBACK_STORE_PATH: Badger database directory (default: /data/feedback)
//   - FEEDBACK_IN_MEMORY: Use an in-memory store, nothing persisted
type FeedbackConfig struct {
	// StorePath is the Badger database directory.
	StorePath string `koanf:"store_path"`
	// InMemory switches to a non-persistent store. Intended for tests
	// and local development.
	InMemory bool `koanf:"in_memory"`
}

// APIConfig holds pagination limits for catalog listings.
type APIConfig struct {
	// DefaultPageSize applies when a request has no limit parameter.
	// 0 means unpaginated listings.
	DefaultPageSize int `koanf:"default_page_size"`
	// MaxPageSize caps the limit parameter.
	MaxPageSize int `koanf:"max_page_size"`
}

// SecurityConfig holds CORS and rate-limit settings.
//
// Environment Variables:
//   - CORS_ORIGINS: Comma-separated allowed origins
//   - RATE_LIMIT_REQUESTS / RATE_LIMIT_WINDOW: Per-IP rate limit
//   - DISABLE_RATE_LIMIT: Turn rate limiting off
type SecurityConfig struct {
	// CORSOrigins lists allowed cross-origin callers.
	CORSOrigins []string `koanf:"cors_origins"`
	// RateLimitReqs is the number of requests allowed per window per IP.
	RateLimitReqs int `koanf:"rate_limit_reqs"`
	// RateLimitWindow is the rate-limit window duration.
	RateLimitWindow time.Duration `koanf:"rate_limit_window"`
	// RateLimitDisabled turns rate limiting off entirely.
	RateLimitDisabled bool `koanf:"rate_limit_disabled"`
}

// LoggingConfig holds log output settings.
//
// Environment Variables:
//   - LOG_LEVEL: trace, debug, info, warn, error (default: info)
//   - LOG_FORMAT: json or console (default: json)
//   - LOG_CALLER: include caller file:line (default: false)
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}

// Validate checks the configuration for invalid values. It is called by
// Load; call it directly only when constructing a Config by hand.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be 1-65535, got %d", c.Server.Port)
	}
	if c.Server.Timeout <= 0 {
		return fmt.Errorf("server.timeout must be positive, got %s", c.Server.Timeout)
	}
	if c.Catalog.CacheTTL <= 0 {
		return fmt.Errorf("catalog.cache_ttl must be positive, got %s", c.Catalog.CacheTTL)
	}
	if c.API.DefaultPageSize < 0 {
		return fmt.Errorf("api.default_page_size must not be negative, got %d", c.API.DefaultPageSize)
	}
	if c.API.MaxPageSize < 1 {
		return fmt.Errorf("api.max_page_size must be at least 1, got %d", c.API.MaxPageSize)
	}
	if c.API.DefaultPageSize > c.API.MaxPageSize {
		return fmt.Errorf("api.default_page_size (%d) exceeds api.max_page_size (%d)",
			c.API.DefaultPageSize, c.API.MaxPageSize)
	}
	if !c.Security.RateLimitDisabled {
		if c.Security.RateLimitReqs < 1 {
			return fmt.Errorf("security.rate_limit_reqs must be at least 1, got %d", c.Security.RateLimitReqs)
		}
		if c.Security.RateLimitWindow <= 0 {
			return fmt.Errorf("security.rate_limit_window must be positive, got %s", c.Security.RateLimitWindow)
		}
	}
	if !c.Feedback.InMemory && c.Feedback.StorePath == "" {
		return fmt.Errorf("feedback.store_path is required when the store is persistent")
	}
	switch c.Server.Environment {
	case "development", "production":
	default:
		return fmt.Errorf("server.environment must be development or production, got %q", c.Server.Environment)
	}
	return nil
}

// CatalogPaths returns the ordered list of catalog file locations to try:
// the configured path first, then the conventional fallbacks.
func (c *Config) CatalogPaths() []string {
	paths := make([]string, 0, 4)
	if c.Catalog.Path != "" {
		paths = append(paths, c.Catalog.Path)
	}
	paths = append(paths,
		"creators.json",
		"data/creators.json",
		"/data/creators.json",
	)
	return paths
}
