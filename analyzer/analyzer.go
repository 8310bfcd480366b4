// Package analyzer orchestrates a full analysis run: fetch the
// conventional page set, extract resources and text, match fingerprints,
// consult the extraction oracle, merge both vendor views, and score the
// result.
package analyzer

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"sovscan/detect"
	"sovscan/extract"
	"sovscan/fetch"
	"sovscan/input"
	"sovscan/merge"
	"sovscan/model"
	"sovscan/registry"
	"sovscan/score"
	"sovscan/util"
)

// Per-page and combined caps on the text handed to the extraction
// oracle. Marketing pages repeat themselves; more text past these caps
// adds cost, not signal.
const (
	maxPageTextLen     = 5000
	maxCombinedTextLen = 20000
	minCombinedTextLen = 100
)

// ErrInsufficientContent marks a site that was reachable but served too
// little text to analyze meaningfully.
var ErrInsufficientContent = errors.New("site content too thin to analyze")

// Fetcher retrieves the conventional page set of a site.
type Fetcher interface {
	Site(ctx context.Context, baseURL string) ([]model.Page, error)
}

// Oracle extracts structured sovereignty facts from page text. It must
// be total: failures degrade to an empty extraction, never an error.
type Oracle interface {
	Extract(ctx context.Context, text string) model.Extraction
}

// InfraHinter fingerprints one page into infrastructure hints.
type InfraHinter interface {
	Hints(headers map[string][]string, body []byte) detect.InfraHints
}

// Analyzer wires the collaborators of one analysis pipeline. All fields
// except Fetcher and Registry may be nil; missing collaborators degrade
// the analysis rather than fail it.
type Analyzer struct {
	Fetcher  Fetcher
	Oracle   Oracle
	Infra    InfraHinter
	Registry *registry.Registry
	Engine   *score.Engine

	// now is swappable for deterministic tests.
	now func() time.Time
}

// New builds an analyzer with a default scoring engine when none is
// given.
func New(fetcher Fetcher, oracle Oracle, infra InfraHinter, reg *registry.Registry, engine *score.Engine) *Analyzer {
	if engine == nil {
		engine = score.NewEngine(score.EU(), score.DefaultThresholds())
	}
	return &Analyzer{
		Fetcher:  fetcher,
		Oracle:   oracle,
		Infra:    infra,
		Registry: reg,
		Engine:   engine,
		now:      time.Now,
	}
}

// Analyze runs the full pipeline for one raw input address.
func (a *Analyzer) Analyze(ctx context.Context, rawURL string) (*model.AnalysisResult, error) {
	if input.IsDummy(rawURL) {
		util.Info("Dummy input requested, returning fixture result")
		return DummyResult(a.clock()), nil
	}

	normalized, err := input.Normalize(rawURL)
	if err != nil {
		return nil, err
	}

	util.Info("Analyzing %s", normalized)
	pages, err := a.Fetcher.Site(ctx, normalized)
	if err != nil {
		return nil, err
	}
	util.Debug("Fetched %d page(s)", len(pages))

	var (
		resources []model.DetectedResource
		texts     []string
		hints     []detect.InfraHints
	)
	for _, page := range pages {
		resources = append(resources, extract.Resources(page.Body, page.URL)...)

		text := extract.Truncate(extract.Text(page.Body), maxPageTextLen)
		if text != "" {
			texts = append(texts, text)
		}

		if a.Infra != nil {
			hints = append(hints, a.Infra.Hints(page.Headers, page.Body))
		}
	}

	combined := extract.Truncate(strings.Join(texts, "\n\n"), maxCombinedTextLen)
	if len(combined) < minCombinedTextLen {
		return nil, fmt.Errorf("%w: %d characters of text across %d page(s)", ErrInsufficientContent, len(combined), len(pages))
	}

	services := detect.MatchServices(resources, a.Registry)
	util.Debug("Matched %d known service(s) from %d resource(s)", len(services), len(resources))

	ext := model.EmptyExtraction()
	if a.Oracle != nil {
		ext = a.Oracle.Extract(ctx, combined)
	}
	if ext.Diagnostic != "" {
		util.Debug("Oracle degraded: %s", ext.Diagnostic)
	}

	detect.Combine(hints).Backfill(&ext.Infrastructure)

	vendors := merge.Vendors(ext.Vendors, services)
	result := a.Engine.Calculate(score.Facts{
		Vendors:        vendors,
		Company:        ext.Company,
		Infrastructure: ext.Infrastructure,
		DataFlows:      ext.DataFlows,
		Compliance:     ext.Compliance,
	})

	summary := ext.Summary
	if summary == "" {
		summary = fmt.Sprintf("Automated analysis of %s based on %d detected third-party service(s).",
			input.Hostname(normalized), len(services))
	}

	return &model.AnalysisResult{
		URL:              normalized,
		Score:            result.Score,
		RiskLevel:        result.RiskLevel,
		Summary:          summary,
		Vendors:          vendors,
		DetectedServices: services,
		Company:          ext.Company,
		Infrastructure:   ext.Infrastructure,
		DataFlows:        ext.DataFlows,
		Compliance:       ext.Compliance,
		RiskFactors:      orList(result.RiskFactors),
		PositiveFactors:  orList(result.PositiveFactors),
		GeneratedAt:      a.clock(),
	}, nil
}

func (a *Analyzer) clock() time.Time {
	if a.now != nil {
		return a.now()
	}
	return time.Now()
}

func orList(list []string) []string {
	if list == nil {
		return []string{}
	}
	return list
}

// IsUserError reports whether an analysis error was caused by the input
// or the target site rather than by this tool.
func IsUserError(err error) bool {
	if errors.Is(err, input.ErrMalformedInput) || errors.Is(err, ErrInsufficientContent) {
		return true
	}
	var ferr *fetch.Error
	return errors.As(err, &ferr)
}
