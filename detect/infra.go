package detect

import (
	"fmt"
	"strings"

	wappalyzer "github.com/projectdiscovery/wappalyzergo"

	"sovscan/model"
)

// fingerprinter defines the interface for the underlying technology
// fingerprint client. This decouples the engine from the concrete
// wappalyzer implementation so tests can substitute a fake.
type fingerprinter interface {
	Fingerprint(headers map[string][]string, data []byte) map[string]struct{}
}

// InfraEngine derives infrastructure hints (cloud provider, hosting
// platform, CDN) from response headers and body fingerprints. Hints only
// backfill facts the extraction oracle left Unknown.
type InfraEngine struct {
	client fingerprinter
}

// NewInfraEngine creates an engine backed by the wappalyzer fingerprint
// database.
func NewInfraEngine() (*InfraEngine, error) {
	client, err := wappalyzer.New()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize wappalyzer: %w", err)
	}
	return &InfraEngine{client: client}, nil
}

// NewInfraEngineWith creates an engine around an explicit fingerprint
// client. Used by tests.
func NewInfraEngineWith(client fingerprinter) *InfraEngine {
	return &InfraEngine{client: client}
}

// InfraHints is the partial infrastructure picture visible from response
// fingerprints. Empty strings mean "nothing detected".
type InfraHints struct {
	CloudProvider   string
	HostingPlatform string
	CDNProviders    []string
}

// techClass maps a fingerprinted technology name fragment to the
// infrastructure field it informs.
var techClasses = []struct {
	fragment string
	cloud    string
	hosting  string
	cdn      string
}{
	{fragment: "amazon", cloud: "Amazon Web Services (AWS)"},
	{fragment: "aws", cloud: "Amazon Web Services (AWS)"},
	{fragment: "google cloud", cloud: "Google Cloud Platform (GCP)"},
	{fragment: "azure", cloud: "Microsoft Azure"},
	{fragment: "fly.io", hosting: "Fly.io"},
	{fragment: "heroku", hosting: "Heroku"},
	{fragment: "vercel", hosting: "Vercel"},
	{fragment: "netlify", hosting: "Netlify"},
	{fragment: "cloudflare", cdn: "Cloudflare"},
	{fragment: "fastly", cdn: "Fastly"},
	{fragment: "akamai", cdn: "Akamai"},
	{fragment: "cloudfront", cdn: "Amazon CloudFront"},
	{fragment: "bunny", cdn: "Bunny CDN"},
}

// Hints fingerprints one page's headers and body and classifies the
// detected technologies.
func (e *InfraEngine) Hints(headers map[string][]string, body []byte) InfraHints {
	var hints InfraHints
	seenCDN := make(map[string]struct{})

	for tech := range e.client.Fingerprint(headers, body) {
		lower := strings.ToLower(tech)
		for _, c := range techClasses {
			if !strings.Contains(lower, c.fragment) {
				continue
			}
			if c.cloud != "" && hints.CloudProvider == "" {
				hints.CloudProvider = c.cloud
			}
			if c.hosting != "" && hints.HostingPlatform == "" {
				hints.HostingPlatform = c.hosting
			}
			if c.cdn != "" {
				if _, dup := seenCDN[c.cdn]; !dup {
					seenCDN[c.cdn] = struct{}{}
					hints.CDNProviders = append(hints.CDNProviders, c.cdn)
				}
			}
		}
	}
	return hints
}

// Backfill fills InfrastructureInfo fields that are still Unknown. Known
// oracle facts are never overwritten.
func (h InfraHints) Backfill(info *model.InfrastructureInfo) {
	if h.CloudProvider != "" && (info.CloudProvider == "" || info.CloudProvider == model.Unknown) {
		info.CloudProvider = h.CloudProvider
	}
	if h.HostingPlatform != "" && (info.HostingPlatform == "" || info.HostingPlatform == model.Unknown) {
		info.HostingPlatform = h.HostingPlatform
	}
	for _, cdn := range h.CDNProviders {
		dup := false
		for _, existing := range info.CDNProviders {
			if strings.EqualFold(existing, cdn) {
				dup = true
				break
			}
		}
		if !dup {
			info.CDNProviders = append(info.CDNProviders, cdn)
		}
	}
}

// Combine merges per-page hints; earlier pages take precedence for scalar
// fields, CDN lists union.
func Combine(all []InfraHints) InfraHints {
	var out InfraHints
	seen := make(map[string]struct{})
	for _, h := range all {
		if out.CloudProvider == "" {
			out.CloudProvider = h.CloudProvider
		}
		if out.HostingPlatform == "" {
			out.HostingPlatform = h.HostingPlatform
		}
		for _, cdn := range h.CDNProviders {
			if _, dup := seen[cdn]; !dup {
				seen[cdn] = struct{}{}
				out.CDNProviders = append(out.CDNProviders, cdn)
			}
		}
	}
	return out
}
