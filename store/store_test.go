package store_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"sovscan/analyzer"
	"sovscan/store"
)

func openStore(t *testing.T) *store.Store {
	t.Helper()
	st, err := store.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() { st.Close() })
	return st
}

func TestSaveAndCacheRoundtrip(t *testing.T) {
	st := openStore(t)
	ctx := context.Background()

	result := analyzer.DummyResult(time.Now().UTC())
	result.URL = "https://acme.example"

	id, err := st.SaveAnalysis(ctx, result)
	if err != nil {
		t.Fatalf("SaveAnalysis failed: %v", err)
	}
	if id == "" {
		t.Fatal("SaveAnalysis returned empty id")
	}

	cached, hit, err := st.GetCached(ctx, "https://acme.example", time.Hour)
	if err != nil {
		t.Fatalf("GetCached failed: %v", err)
	}
	if !hit {
		t.Fatal("expected cache hit for a fresh analysis")
	}
	if cached.URL != result.URL || cached.Score != result.Score {
		t.Errorf("cached = %+v, want the saved analysis", cached)
	}
	if len(cached.Vendors) != len(result.Vendors) {
		t.Errorf("cached vendors = %d, want %d", len(cached.Vendors), len(result.Vendors))
	}
}

func TestGetCachedMisses(t *testing.T) {
	st := openStore(t)
	ctx := context.Background()

	if _, hit, err := st.GetCached(ctx, "https://never-seen.example", time.Hour); err != nil || hit {
		t.Fatalf("GetCached = hit=%v err=%v, want clean miss", hit, err)
	}

	// Zero maxAge disables the cache even for archived URLs.
	result := analyzer.DummyResult(time.Now().UTC())
	result.URL = "https://acme.example"
	if _, err := st.SaveAnalysis(ctx, result); err != nil {
		t.Fatalf("SaveAnalysis failed: %v", err)
	}
	if _, hit, err := st.GetCached(ctx, "https://acme.example", 0); err != nil || hit {
		t.Fatalf("GetCached with zero maxAge = hit=%v err=%v, want miss", hit, err)
	}

	// Stale entries miss too.
	stale := analyzer.DummyResult(time.Now().UTC().Add(-48 * time.Hour))
	stale.URL = "https://stale.example"
	if _, err := st.SaveAnalysis(ctx, stale); err != nil {
		t.Fatalf("SaveAnalysis failed: %v", err)
	}
	if _, hit, err := st.GetCached(ctx, "https://stale.example", time.Hour); err != nil || hit {
		t.Fatalf("GetCached for stale entry = hit=%v err=%v, want miss", hit, err)
	}
}

func TestHistory(t *testing.T) {
	st := openStore(t)
	ctx := context.Background()

	for i, url := range []string{"https://a.example", "https://b.example"} {
		result := analyzer.DummyResult(time.Now().UTC().Add(time.Duration(i) * time.Minute))
		result.URL = url
		if _, err := st.SaveAnalysis(ctx, result); err != nil {
			t.Fatalf("SaveAnalysis failed: %v", err)
		}
	}

	entries, err := st.History(ctx, 10)
	if err != nil {
		t.Fatalf("History failed: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("History returned %d entries, want 2", len(entries))
	}
	if entries[0].URL != "https://b.example" {
		t.Errorf("entries[0].URL = %q, want newest first", entries[0].URL)
	}
}
