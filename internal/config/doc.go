// CreatorMatch - Creator Recommendation API for FixUrFeed
// Copyright 2026 FixUrFeed
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/fixurfeed/creatormatch

/*
Package config provides centralized configuration management for
CreatorMatch.

Configuration is loaded with Koanf v2 from three layered sources, last
one wins:

  1. Built-in defaults (defaultConfig)
  2. Optional YAML config file (CONFIG_PATH or the default search paths)
  3. Environment variables

Configuration is organized into logical groups:

  - ServerConfig: HTTP server settings (host, port, timeouts)
  - CatalogConfig: creator catalog file, cache TTL, image directory
  - FeedbackConfig: feedback store location and mode
  - APIConfig: pagination limits
  - SecurityConfig: CORS origins and per-IP rate limiting
  - LoggingConfig: log level, format and caller reporting

Load validates the merged configuration and fails fast on invalid
values, so a process that starts has a coherent configuration.
*/
package config
