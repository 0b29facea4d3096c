// CreatorMatch - Creator Recommendation API for FixUrFeed
// Copyright 2026 FixUrFeed
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/fixurfeed/creatormatch

package services

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/fixurfeed/creatormatch/internal/logging"
	"github.com/fixurfeed/creatormatch/internal/models"
)

// CatalogSource provides the creator catalog. Satisfied by *catalog.Store.
type CatalogSource interface {
	All() ([]models.Creator, error)
}

// CatalogRefreshService keeps the catalog cache warm by reading it on an
// interval. Reads inside the TTL window are served from cache; once the
// window lapses the next background read re-parses the file, so a catalog
// fixed on disk is picked up without waiting for request traffic.
type CatalogRefreshService struct {
	source   CatalogSource
	interval time.Duration
	log      zerolog.Logger
}

// NewCatalogRefreshService creates a refresher for the given source.
// An interval of zero or less defaults to 5 minutes.
func NewCatalogRefreshService(source CatalogSource, interval time.Duration) *CatalogRefreshService {
	if interval <= 0 {
		interval = 5 * time.Minute
	}
	return &CatalogRefreshService{
		source:   source,
		interval: interval,
		log:      logging.WithComponent("catalog-refresh"),
	}
}

// Serve implements suture.Service. It refreshes once immediately, then on
// every tick until the context is canceled. A failed read is logged and
// retried on the next tick; it never terminates the service.
func (s *CatalogRefreshService) Serve(ctx context.Context) error {
	s.refresh()

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			s.refresh()
		}
	}
}

func (s *CatalogRefreshService) refresh() {
	creators, err := s.source.All()
	if err != nil {
		s.log.Warn().Err(err).Msg("Catalog refresh failed")
		return
	}
	s.log.Debug().Int("creators", len(creators)).Msg("Catalog refreshed")
}

// String implements fmt.Stringer for logging.
func (s *CatalogRefreshService) String() string {
	return "catalog-refresh"
}
