// CreatorMatch - Creator Recommendation API for FixUrFeed
// Copyright 2026 FixUrFeed
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/fixurfeed/creatormatch

/*
Package logging provides centralized zerolog-based structured logging for
CreatorMatch.

The package implements a unified logging layer using zerolog, providing
zero-allocation structured JSON logging for production and human-readable
console output for development.

# Overview

The package provides:
  - Zero-allocation structured logging via zerolog
  - JSON output format for production (machine-parseable)
  - Console output format for development (human-readable)
  - Global logger configuration via LOG_LEVEL, LOG_FORMAT, LOG_CALLER
  - Context-aware logging with request ID propagation
  - slog adapter for Suture v4 supervisor integration

# Quick Start

	import "github.com/fixurfeed/creatormatch/internal/logging"

	// Initialize at application startup
	logging.Init(logging.Config{
	    Level:  "info",
	    Format: "json",
	})

	// Log messages with structured fields
	logging.Info().Str("component", "catalog").Msg("Catalog loaded")
	logging.Error().Err(err).Int("code", 500).Msg("Request failed")

	// Context-aware logging inside request handlers
	logging.Ctx(ctx).Info().Msg("Processing request")

# Component Loggers

Long-lived components derive a child logger once and reuse it:

	log := logging.WithComponent("feedback")
	log.Info().Str("path", cfg.StorePath).Msg("Store opened")

# Supervisor Integration

Suture v4 logs through slog. NewSlogLogger bridges those logs into the
same zerolog output stream:

	handler := &sutureslog.Handler{Logger: logging.NewSlogLogger()}
*/
package logging
