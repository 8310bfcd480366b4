package fetch_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"sovscan/fetch"
)

func TestSiteFetchesConventionalPages(t *testing.T) {
	var mu sync.Mutex
	seenPaths := make(map[string]int)

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		seenPaths[r.URL.Path]++
		mu.Unlock()

		switch r.URL.Path {
		case "/", "/about":
			w.Header().Set("Content-Type", "text/html")
			w.Write([]byte("<html><body>content for " + r.URL.Path + "</body></html>"))
		default:
			http.NotFound(w, r)
		}
	}))
	defer ts.Close()

	f := fetch.New()
	pages, err := f.Site(context.Background(), ts.URL)
	if err != nil {
		t.Fatalf("Site failed: %v", err)
	}

	if len(pages) != 2 {
		t.Fatalf("got %d pages, want 2 (homepage and /about)", len(pages))
	}
	if pages[0].Path != "" {
		t.Errorf("pages[0].Path = %q, homepage must come first", pages[0].Path)
	}
	if pages[1].Path != "/about" {
		t.Errorf("pages[1].Path = %q, want /about", pages[1].Path)
	}
	if !strings.Contains(string(pages[1].Body), "/about") {
		t.Errorf("pages[1].Body = %q, wrong body", pages[1].Body)
	}
	if pages[0].Headers["Content-Type"] == nil {
		t.Error("response headers must be captured")
	}

	mu.Lock()
	defer mu.Unlock()
	for _, path := range fetch.ConventionalPaths {
		probe := path
		if probe == "" {
			probe = "/"
		}
		if seenPaths[probe] == 0 {
			t.Errorf("conventional path %q was never requested", probe)
		}
	}
}

func TestSiteAllPagesFailing(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "go away", http.StatusForbidden)
	}))
	defer ts.Close()

	f := fetch.New()
	_, err := f.Site(context.Background(), ts.URL)
	if err == nil {
		t.Fatal("Site succeeded, want typed error when every page fails")
	}

	var ferr *fetch.Error
	if !errors.As(err, &ferr) {
		t.Fatalf("err = %T, want *fetch.Error", err)
	}
	if ferr.Kind != fetch.KindStatus {
		t.Errorf("Kind = %q, want %q", ferr.Kind, fetch.KindStatus)
	}
	if ferr.Status != http.StatusForbidden {
		t.Errorf("Status = %d, want 403", ferr.Status)
	}
}

func TestSiteUnreachableHost(t *testing.T) {
	f := fetch.New()
	f.PageTimeout = 2 * time.Second

	_, err := f.Site(context.Background(), "http://127.0.0.1:1")
	if err == nil {
		t.Fatal("Site succeeded against a closed port")
	}

	var ferr *fetch.Error
	if !errors.As(err, &ferr) {
		t.Fatalf("err = %T, want *fetch.Error", err)
	}
	if ferr.Kind != fetch.KindConnection && ferr.Kind != fetch.KindTimeout {
		t.Errorf("Kind = %q, want connection or timeout", ferr.Kind)
	}
}

func TestSitePartialFailureTolerated(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/" {
			w.Write([]byte("<html><body>homepage only</body></html>"))
			return
		}
		http.Error(w, "gone", http.StatusGone)
	}))
	defer ts.Close()

	pages, err := fetch.New().Site(context.Background(), ts.URL)
	if err != nil {
		t.Fatalf("Site failed: %v", err)
	}
	if len(pages) != 1 || pages[0].Path != "" {
		t.Fatalf("pages = %+v, want only the homepage", pages)
	}
}

func TestSiteBodyCapped(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(strings.Repeat("x", 4096)))
	}))
	defer ts.Close()

	f := fetch.New()
	f.MaxBody = 1024

	pages, err := f.Site(context.Background(), ts.URL)
	if err != nil {
		t.Fatalf("Site failed: %v", err)
	}
	for _, p := range pages {
		if len(p.Body) > 1024 {
			t.Errorf("page %q body is %d bytes, want capped at 1024", p.URL, len(p.Body))
		}
	}
}
