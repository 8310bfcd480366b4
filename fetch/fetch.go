// Package fetch retrieves the conventional page set of an analyzed site.
// Page fetches are mutually independent and run concurrently; each page
// yields its own markup, and per-page failures are tolerated as long as
// at least one page succeeds.
package fetch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/sync/errgroup"

	"sovscan/model"
	"sovscan/util"
)

// ConventionalPaths is the page set probed for every site, homepage
// first. The list mirrors where companies conventionally disclose
// sovereignty-relevant facts.
var ConventionalPaths = []string{
	"",
	"/about",
	"/company",
	"/legal/subprocessors",
	"/legal/sub-processors",
	"/privacy",
	"/privacy-policy",
	"/security",
	"/compliance",
	"/careers",
	"/jobs",
}

// Error kinds distinguish the ways a page fetch can fail.
type ErrorKind string

const (
	KindTimeout    ErrorKind = "timeout"
	KindConnection ErrorKind = "connection"
	KindStatus     ErrorKind = "http-status"
)

// Error is a typed fetch failure, surfaced to the caller when a whole
// site is unreachable.
type Error struct {
	Kind   ErrorKind
	URL    string
	Status int
	Err    error
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindStatus:
		return fmt.Sprintf("fetch %s: HTTP %d", e.URL, e.Status)
	case KindTimeout:
		return fmt.Sprintf("fetch %s: timed out", e.URL)
	default:
		return fmt.Sprintf("fetch %s: %v", e.URL, e.Err)
	}
}

func (e *Error) Unwrap() error { return e.Err }

// Fetcher retrieves pages with a bounded per-page timeout.
type Fetcher struct {
	Client      *http.Client
	UserAgent   string
	PageTimeout time.Duration
	MaxBody     int64
}

// New creates a fetcher with production defaults.
func New() *Fetcher {
	return &Fetcher{
		Client:      &http.Client{},
		UserAgent:   "sovscan/1.0",
		PageTimeout: 10 * time.Second,
		MaxBody:     2 << 20,
	}
}

// Site fetches the conventional page set for a base URL concurrently.
// The returned pages keep conventional order regardless of completion
// order. If every page fails, the homepage's typed error is returned.
func (f *Fetcher) Site(ctx context.Context, baseURL string) ([]model.Page, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base URL %s: %w", baseURL, err)
	}

	results := make([]*model.Page, len(ConventionalPaths))
	errs := make([]error, len(ConventionalPaths))

	g, gctx := errgroup.WithContext(ctx)
	for i, path := range ConventionalPaths {
		i, path := i, path
		pageURL := base.ResolveReference(&url.URL{Path: path}).String()
		if path == "" {
			pageURL = base.String()
		}
		g.Go(func() error {
			page, err := f.page(gctx, path, pageURL)
			if err != nil {
				util.Debug("Page fetch failed for %s: %v", pageURL, err)
				errs[i] = err
				return nil // per-page failures never abort the group
			}
			results[i] = page
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var pages []model.Page
	for _, p := range results {
		if p != nil {
			pages = append(pages, *p)
		}
	}
	if len(pages) == 0 {
		if errs[0] != nil {
			return nil, errs[0]
		}
		return nil, &Error{Kind: KindConnection, URL: baseURL, Err: errors.New("no page could be fetched")}
	}
	return pages, nil
}

func (f *Fetcher) page(ctx context.Context, path, pageURL string) (*model.Page, error) {
	ctx, cancel := context.WithTimeout(ctx, f.PageTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, &Error{Kind: KindConnection, URL: pageURL, Err: err}
	}
	req.Header.Set("User-Agent", f.UserAgent)

	resp, err := f.Client.Do(req)
	if err != nil {
		return nil, classify(pageURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return nil, &Error{Kind: KindStatus, URL: pageURL, Status: resp.StatusCode}
	}

	headers := make(map[string][]string, len(resp.Header))
	for k, v := range resp.Header {
		headers[k] = v
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, f.MaxBody))
	if err != nil {
		// Headers alone still carry fingerprint signal.
		util.Warn("Failed to read body for %s: %v", pageURL, err)
		body = nil
	}

	return &model.Page{Path: path, URL: pageURL, Headers: headers, Body: body}, nil
}

func classify(pageURL string, err error) *Error {
	var uerr *url.Error
	if errors.As(err, &uerr) && uerr.Timeout() {
		return &Error{Kind: KindTimeout, URL: pageURL, Err: err}
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return &Error{Kind: KindTimeout, URL: pageURL, Err: err}
	}
	return &Error{Kind: KindConnection, URL: pageURL, Err: err}
}
