// CreatorMatch - Creator Recommendation API for FixUrFeed
// Copyright 2026 FixUrFeed
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/fixurfeed/creatormatch

// Package feedback persists user feedback submissions in BadgerDB and
// exports them as CSV for review.
package feedback

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/fixurfeed/creatormatch/internal/logging"
	"github.com/fixurfeed/creatormatch/internal/models"
)

// keyPrefix namespaces feedback entries in BadgerDB. The zero-padded
// UnixNano timestamp after the prefix keeps keys in chronological order
// under Badger's lexicographic iteration.
const keyPrefix = "feedback:"

// csvHeader matches the column layout expected by the review spreadsheet.
var csvHeader = []string{"Timestamp", "Rating", "Feedback", "Improvements", "Quick Feedback"}

// Store is a BadgerDB-backed feedback store.
type Store struct {
	db  *badger.DB
	log zerolog.Logger

	// now is swappable for deterministic timestamps in tests.
	now func() time.Time
}

// Option configures a Store.
type Option func(*Store)

// WithClock overrides the timestamp source.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

// Open opens (or creates) the feedback store at path. When inMemory is
// true the path is ignored and entries are lost on shutdown; this is
// intended for tests and ephemeral deployments.
func Open(path string, inMemory bool, opts ...Option) (*Store, error) {
	var badgerOpts badger.Options
	if inMemory {
		badgerOpts = badger.DefaultOptions("").WithInMemory(true)
	} else {
		badgerOpts = badger.DefaultOptions(path)
		// Feedback entries are tiny; the default 1GB value log is oversized.
		badgerOpts.ValueLogFileSize = 16 << 20
		badgerOpts.SyncWrites = true
	}
	badgerOpts.Logger = nil // Suppress BadgerDB internal logs

	db, err := badger.Open(badgerOpts)
	if err != nil {
		return nil, fmt.Errorf("open badger db for feedback: %w", err)
	}

	s := &Store{
		db:  db,
		log: logging.WithComponent("feedback"),
		now: time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}

	s.log.Info().Str("path", path).Bool("in_memory", inMemory).Msg("Feedback store opened")
	return s, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Save assigns an ID and timestamp to the submission and persists it.
// The caller is expected to have validated the entry already.
func (s *Store) Save(ctx context.Context, fb *models.Feedback) error {
	fb.ID = uuid.NewString()
	fb.Timestamp = s.now().UTC()

	data, err := json.Marshal(fb)
	if err != nil {
		return fmt.Errorf("marshal feedback: %w", err)
	}

	key := makeKey(fb.Timestamp, fb.ID)
	err = s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(key, data)
	})
	if err != nil {
		return fmt.Errorf("store feedback: %w", err)
	}

	s.log.Debug().Str("id", fb.ID).Int("rating", fb.Rating).Msg("Feedback stored")
	return nil
}

// List returns all stored feedback in submission order.
func (s *Store) List(ctx context.Context) ([]models.Feedback, error) {
	entries := make([]models.Feedback, 0)

	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(keyPrefix)
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Seek([]byte(keyPrefix)); it.Valid(); it.Next() {
			var fb models.Feedback
			err := it.Item().Value(func(val []byte) error {
				return json.Unmarshal(val, &fb)
			})
			if err != nil {
				return fmt.Errorf("decode feedback entry: %w", err)
			}
			entries = append(entries, fb)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("list feedback: %w", err)
	}

	return entries, nil
}

// Count returns the number of stored feedback entries without decoding them.
func (s *Store) Count(ctx context.Context) (int, error) {
	count := 0
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(keyPrefix)
		opts.PrefetchValues = false
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Seek([]byte(keyPrefix)); it.Valid(); it.Next() {
			count++
		}
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("count feedback: %w", err)
	}
	return count, nil
}

// ExportCSV renders all stored feedback as CSV. Timestamp and rating are
// written raw; the free-text columns are always quoted with embedded
// quotes doubled, and quick-feedback toggles are joined with ", " inside
// a single quoted cell. This keeps the output byte-compatible with the
// spreadsheet the team already reviews.
func (s *Store) ExportCSV(ctx context.Context) ([]byte, error) {
	entries, err := s.List(ctx)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	buf.WriteString(strings.Join(csvHeader, ","))
	for _, fb := range entries {
		buf.WriteByte('\n')
		fmt.Fprintf(&buf, "%s,%d,%s,%s,%s",
			fb.Timestamp.UTC().Format(time.RFC3339),
			fb.Rating,
			quoteCSV(fb.Feedback),
			quoteCSV(fb.Improvements),
			quoteCSV(strings.Join(fb.SelectedToggles, ", ")),
		)
	}

	return buf.Bytes(), nil
}

// ExportFilename returns the download name for a CSV export on the given day.
func ExportFilename(now time.Time) string {
	return fmt.Sprintf("feedback-%s.csv", now.UTC().Format("2006-01-02"))
}

func quoteCSV(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

func makeKey(ts time.Time, id string) []byte {
	return []byte(fmt.Sprintf("%s%020d:%s", keyPrefix, ts.UnixNano(), id))
}
