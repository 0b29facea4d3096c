// CreatorMatch - Creator Recommendation API for FixUrFeed
// Copyright 2026 FixUrFeed
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/fixurfeed/creatormatch

package catalog

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/fixurfeed/creatormatch/internal/metrics"
)

const testCatalogJSON = `[
	{
		"id": "c1",
		"name": "Ada",
		"role": "Software Engineer",
		"platform": "TikTok",
		"avatar": "/src/data/profile_photos/ada.jpg",
		"profilePhoto": "/src/data/profile_photos/ada_full.jpg",
		"followers": 42000
	},
	{
		"id": "c2",
		"name": "Grace",
		"role": "Senior Product Manager",
		"platform": "LinkedIn",
		"followers": 150000
	},
	{
		"id": "",
		"name": "Nameless",
		"role": "Ghost"
	},
	{
		"id": "c4",
		"name": "",
		"role": "Ghost"
	},
	{
		"id": "c5",
		"name": "Lin",
		"role": "Product Designer",
		"platform": "Instagram",
		"followers": 9000
	}
]`

func writeTestCatalog(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "creators.json")
	if err := os.WriteFile(path, []byte(testCatalogJSON), 0o600); err != nil {
		t.Fatalf("writing test catalog: %v", err)
	}
	return path
}

func TestStoreAll(t *testing.T) {
	s := NewStore([]string{writeTestCatalog(t)}, time.Minute)
	defer s.Close()

	creators, err := s.All()
	if err != nil {
		t.Fatalf("All() error: %v", err)
	}

	// Two records missing id or name must be dropped.
	if len(creators) != 3 {
		t.Fatalf("All() returned %d creators, want 3", len(creators))
	}

	if creators[0].Avatar != "/api/v1/images/ada.jpg" {
		t.Errorf("avatar = %q, want rewritten image URL", creators[0].Avatar)
	}
	if creators[0].ProfilePhoto != "/api/v1/images/ada_full.jpg" {
		t.Errorf("profilePhoto = %q, want rewritten image URL", creators[0].ProfilePhoto)
	}
	if creators[1].Avatar != "" {
		t.Errorf("empty avatar rewritten to %q, want empty", creators[1].Avatar)
	}
}

func TestStorePathFallback(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope", "creators.json")
	s := NewStore([]string{missing, writeTestCatalog(t)}, time.Minute)
	defer s.Close()

	creators, err := s.All()
	if err != nil {
		t.Fatalf("All() error: %v", err)
	}
	if len(creators) != 3 {
		t.Errorf("All() returned %d creators, want 3", len(creators))
	}
}

func TestStoreNoReadablePath(t *testing.T) {
	s := NewStore([]string{filepath.Join(t.TempDir(), "absent.json")}, time.Minute)
	defer s.Close()

	if _, err := s.All(); err == nil {
		t.Error("All() succeeded with no readable catalog, want error")
	}
}

func TestStoreMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "creators.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o600); err != nil {
		t.Fatalf("writing file: %v", err)
	}

	s := NewStore([]string{path}, time.Minute)
	defer s.Close()

	if _, err := s.All(); err == nil {
		t.Error("All() succeeded on malformed JSON, want error")
	}
}

func TestStoreCachesAcrossReads(t *testing.T) {
	path := writeTestCatalog(t)
	s := NewStore([]string{path}, time.Minute)
	defer s.Close()

	if _, err := s.All(); err != nil {
		t.Fatalf("first All() error: %v", err)
	}

	// Remove the file; the cached copy must still be served.
	if err := os.Remove(path); err != nil {
		t.Fatalf("removing catalog: %v", err)
	}

	creators, err := s.All()
	if err != nil {
		t.Fatalf("second All() error: %v", err)
	}
	if len(creators) != 3 {
		t.Errorf("cached All() returned %d creators, want 3", len(creators))
	}

	// After an explicit reload the missing file must surface.
	s.Reload()
	if _, err := s.All(); err == nil {
		t.Error("All() after Reload() succeeded with deleted file, want error")
	}
}

func TestStoreQuery(t *testing.T) {
	s := NewStore([]string{writeTestCatalog(t)}, time.Minute)
	defer s.Close()

	tests := []struct {
		name      string
		opts      QueryOptions
		wantIDs   []string
		wantTotal int
	}{
		{
			name:      "no filters returns everything",
			opts:      QueryOptions{},
			wantIDs:   []string{"c1", "c2", "c5"},
			wantTotal: 3,
		},
		{
			name:      "role substring case-insensitive",
			opts:      QueryOptions{Role: "product"},
			wantIDs:   []string{"c2", "c5"},
			wantTotal: 2,
		},
		{
			name:      "platform exact case-insensitive",
			opts:      QueryOptions{Platform: "tiktok"},
			wantIDs:   []string{"c1"},
			wantTotal: 1,
		},
		{
			name:      "role and platform combine",
			opts:      QueryOptions{Role: "product", Platform: "LinkedIn"},
			wantIDs:   []string{"c2"},
			wantTotal: 1,
		},
		{
			name:      "limit paginates",
			opts:      QueryOptions{Limit: 2},
			wantIDs:   []string{"c1", "c2"},
			wantTotal: 3,
		},
		{
			name:      "offset skips",
			opts:      QueryOptions{Offset: 1, Limit: 1},
			wantIDs:   []string{"c2"},
			wantTotal: 3,
		},
		{
			name:      "offset past end returns empty page",
			opts:      QueryOptions{Offset: 10},
			wantIDs:   []string{},
			wantTotal: 3,
		},
		{
			name:      "no role match returns empty",
			opts:      QueryOptions{Role: "astronaut"},
			wantIDs:   []string{},
			wantTotal: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := s.Query(tt.opts)
			if err != nil {
				t.Fatalf("Query() error: %v", err)
			}
			if result.Total != tt.wantTotal {
				t.Errorf("Total = %d, want %d", result.Total, tt.wantTotal)
			}
			if len(result.Creators) != len(tt.wantIDs) {
				t.Fatalf("page size = %d, want %d", len(result.Creators), len(tt.wantIDs))
			}
			for i, id := range tt.wantIDs {
				if result.Creators[i].ID != id {
					t.Errorf("page[%d].ID = %q, want %q", i, result.Creators[i].ID, id)
				}
			}
		})
	}
}

func TestStoreLoadRecordsMetrics(t *testing.T) {
	s := NewStore([]string{writeTestCatalog(t)}, time.Minute)
	defer s.Close()

	if _, err := s.All(); err != nil {
		t.Fatalf("All() error: %v", err)
	}
	if got := testutil.ToFloat64(metrics.CatalogSize); got != 3 {
		t.Errorf("catalog size gauge = %v, want 3", got)
	}

	errsBefore := testutil.ToFloat64(metrics.CatalogLoadErrors)
	bad := NewStore([]string{filepath.Join(t.TempDir(), "absent.json")}, time.Minute)
	defer bad.Close()

	if _, err := bad.All(); err == nil {
		t.Fatal("All() succeeded with no readable catalog, want error")
	}
	if got := testutil.ToFloat64(metrics.CatalogLoadErrors); got != errsBefore+1 {
		t.Errorf("load error counter = %v, want %v", got, errsBefore+1)
	}
}

func TestStoreGetByID(t *testing.T) {
	s := NewStore([]string{writeTestCatalog(t)}, time.Minute)
	defer s.Close()

	creator, err := s.GetByID("c2")
	if err != nil {
		t.Fatalf("GetByID() error: %v", err)
	}
	if creator.Name != "Grace" {
		t.Errorf("GetByID() name = %q, want Grace", creator.Name)
	}

	_, err = s.GetByID("missing")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("GetByID() error = %v, want ErrNotFound", err)
	}
}
