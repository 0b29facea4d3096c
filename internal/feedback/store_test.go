// CreatorMatch - Creator Recommendation API for FixUrFeed
// Copyright 2026 FixUrFeed
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/fixurfeed/creatormatch

package feedback

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/fixurfeed/creatormatch/internal/models"
)

// tickingClock hands out strictly increasing timestamps so key ordering
// is deterministic in tests.
type tickingClock struct {
	now time.Time
}

func (c *tickingClock) Now() time.Time {
	c.now = c.now.Add(time.Second)
	return c.now
}

func newTestStore(t *testing.T) (*Store, *tickingClock) {
	t.Helper()

	clock := &tickingClock{now: time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)}
	store, err := Open("", true, WithClock(clock.Now))
	if err != nil {
		t.Fatalf("Open() error: %v", err)
	}
	t.Cleanup(func() {
		if err := store.Close(); err != nil {
			t.Errorf("Close() error: %v", err)
		}
	})

	return store, clock
}

func TestStoreSaveAssignsIDAndTimestamp(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	fb := models.Feedback{Rating: 4, Feedback: "great matches"}
	if err := store.Save(ctx, &fb); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	if fb.ID == "" {
		t.Error("Save() did not assign an ID")
	}
	if fb.Timestamp.IsZero() {
		t.Error("Save() did not assign a timestamp")
	}
	if fb.Timestamp.Location() != time.UTC {
		t.Errorf("timestamp location = %v, want UTC", fb.Timestamp.Location())
	}
}

func TestStoreListOrder(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	ratings := []int{5, 1, 3, 4}
	for _, r := range ratings {
		fb := models.Feedback{Rating: r}
		if err := store.Save(ctx, &fb); err != nil {
			t.Fatalf("Save() error: %v", err)
		}
	}

	entries, err := store.List(ctx)
	if err != nil {
		t.Fatalf("List() error: %v", err)
	}
	if len(entries) != len(ratings) {
		t.Fatalf("List() returned %d entries, want %d", len(entries), len(ratings))
	}

	// Submission order survives the round trip.
	for i, want := range ratings {
		if entries[i].Rating != want {
			t.Errorf("entries[%d].Rating = %d, want %d", i, entries[i].Rating, want)
		}
	}

	seen := make(map[string]bool)
	for _, e := range entries {
		if seen[e.ID] {
			t.Errorf("duplicate ID %q", e.ID)
		}
		seen[e.ID] = true
	}
}

func TestStoreListEmpty(t *testing.T) {
	store, _ := newTestStore(t)

	entries, err := store.List(context.Background())
	if err != nil {
		t.Fatalf("List() error: %v", err)
	}
	if entries == nil {
		t.Error("List() returned nil, want empty slice")
	}
	if len(entries) != 0 {
		t.Errorf("List() returned %d entries, want 0", len(entries))
	}
}

func TestStoreCount(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	if n, err := store.Count(ctx); err != nil || n != 0 {
		t.Errorf("Count() = %d, %v; want 0, nil", n, err)
	}

	for i := 0; i < 3; i++ {
		fb := models.Feedback{Rating: 5}
		if err := store.Save(ctx, &fb); err != nil {
			t.Fatalf("Save() error: %v", err)
		}
	}

	if n, err := store.Count(ctx); err != nil || n != 3 {
		t.Errorf("Count() = %d, %v; want 3, nil", n, err)
	}
}

func TestStoreRoundTrip(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	fb := models.Feedback{
		Rating:          2,
		Feedback:        "too many fitness creators",
		Improvements:    "more variety",
		SelectedToggles: []string{"Too repetitive", "Not my interests"},
	}
	if err := store.Save(ctx, &fb); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	entries, err := store.List(ctx)
	if err != nil {
		t.Fatalf("List() error: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("List() returned %d entries, want 1", len(entries))
	}

	got := entries[0]
	if got.Rating != fb.Rating || got.Feedback != fb.Feedback || got.Improvements != fb.Improvements {
		t.Errorf("round trip mismatch: got %+v, want %+v", got, fb)
	}
	if len(got.SelectedToggles) != 2 || got.SelectedToggles[0] != "Too repetitive" {
		t.Errorf("SelectedToggles = %v, want %v", got.SelectedToggles, fb.SelectedToggles)
	}
}

func TestExportCSV(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	first := models.Feedback{
		Rating:          5,
		Feedback:        `loved the "hidden gem" picks`,
		Improvements:    "none",
		SelectedToggles: []string{"Great variety", "Felt personal"},
	}
	second := models.Feedback{Rating: 3}
	for _, fb := range []*models.Feedback{&first, &second} {
		if err := store.Save(ctx, fb); err != nil {
			t.Fatalf("Save() error: %v", err)
		}
	}

	data, err := store.ExportCSV(ctx)
	if err != nil {
		t.Fatalf("ExportCSV() error: %v", err)
	}

	lines := strings.Split(string(data), "\n")
	if len(lines) != 3 {
		t.Fatalf("ExportCSV() produced %d lines, want 3:\n%s", len(lines), data)
	}

	if lines[0] != "Timestamp,Rating,Feedback,Improvements,Quick Feedback" {
		t.Errorf("header = %q", lines[0])
	}

	want := `2026-08-01T12:00:01Z,5,"loved the ""hidden gem"" picks","none","Great variety, Felt personal"`
	if lines[1] != want {
		t.Errorf("row 1 = %q, want %q", lines[1], want)
	}

	wantEmpty := `2026-08-01T12:00:02Z,3,"","",""`
	if lines[2] != wantEmpty {
		t.Errorf("row 2 = %q, want %q", lines[2], wantEmpty)
	}
}

func TestExportCSVEmpty(t *testing.T) {
	store, _ := newTestStore(t)

	data, err := store.ExportCSV(context.Background())
	if err != nil {
		t.Fatalf("ExportCSV() error: %v", err)
	}
	if string(data) != "Timestamp,Rating,Feedback,Improvements,Quick Feedback" {
		t.Errorf("ExportCSV() on empty store = %q, want header only", data)
	}
}

func TestExportFilename(t *testing.T) {
	now := time.Date(2026, 8, 29, 23, 59, 0, 0, time.UTC)
	if got := ExportFilename(now); got != "feedback-2026-08-29.csv" {
		t.Errorf("ExportFilename() = %q, want feedback-2026-08-29.csv", got)
	}
}
