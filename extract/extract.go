// Package extract scans raw page markup for references to external
// resources. Extraction is pure: given the same markup and base URL it
// always yields the same deduplicated resource list, and malformed markup
// never aborts a scan (the tolerant HTML parser simply yields no hit for
// patterns it cannot complete).
package extract

import (
	"bytes"
	"net/url"
	"regexp"
	"strings"

	"golang.org/x/net/html"

	"sovscan/model"
)

// tagRule maps one structural markup pattern to a reference kind. Each
// rule is independently testable; adding a resource kind means adding a
// rule here, never touching merge or scoring logic.
type tagRule struct {
	name string
	elem string
	attr string
	kind model.ReferenceKind
}

var tagRules = []tagRule{
	{name: "script-source", elem: "script", attr: "src", kind: model.RefScript},
	{name: "stylesheet-link", elem: "link", attr: "href", kind: model.RefStyle},
	{name: "frame-source", elem: "iframe", attr: "src", kind: model.RefFrame},
	{name: "image-source", elem: "img", attr: "src", kind: model.RefImage},
}

// inlineRule recognizes network-call idioms inside inline script text.
// Only absolute http(s) references count; relative inline calls target the
// page's own origin by definition.
type inlineRule struct {
	name    string
	pattern *regexp.Regexp
}

var inlineRules = []inlineRule{
	{name: "fetch", pattern: regexp.MustCompile(`(?i)fetch\(["']([^"']+)["']`)},
	{name: "axios", pattern: regexp.MustCompile(`(?i)axios\.(?:get|post|put|delete)\(["']([^"']+)["']`)},
	{name: "jquery-ajax", pattern: regexp.MustCompile(`(?i)\$\.ajax\([^)]*url:\s*["']([^"']+)["']`)},
}

// Resources extracts the deduplicated external resource references from
// one page's markup. A resource is external only if its hostname differs
// from the base URL's hostname; duplicates collapse on (hostname, kind).
func Resources(markup []byte, baseURL string) []model.DetectedResource {
	base, err := url.Parse(baseURL)
	if err != nil || base.Hostname() == "" {
		return nil
	}

	var resources []model.DetectedResource
	seen := make(map[string]struct{})

	record := func(ref string, kind model.ReferenceKind) {
		host, ok := resolveHost(base, ref)
		if !ok || strings.EqualFold(host, base.Hostname()) {
			return
		}
		key := strings.ToLower(host) + "|" + string(kind)
		if _, dup := seen[key]; dup {
			return
		}
		seen[key] = struct{}{}
		resources = append(resources, model.DetectedResource{
			Domain:        host,
			ReferenceKind: kind,
			SourcePageURL: baseURL,
		})
	}

	doc, err := html.Parse(bytes.NewReader(markup))
	if err == nil {
		walk(doc, func(n *html.Node) {
			if n.Type != html.ElementNode {
				return
			}
			for _, rule := range tagRules {
				if n.Data != rule.elem {
					continue
				}
				if ref, ok := attrValue(n, rule.attr); ok {
					record(ref, rule.kind)
				}
			}
		})
	}

	for _, rule := range inlineRules {
		for _, m := range rule.pattern.FindAllSubmatch(markup, -1) {
			ref := string(m[1])
			if strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://") {
				record(ref, model.RefInlineCall)
			}
		}
	}

	return resources
}

// resolveHost resolves a possibly-relative reference against the base URL
// and returns the referenced hostname. Protocol-relative references pick
// up the base scheme via standard reference resolution.
func resolveHost(base *url.URL, ref string) (string, bool) {
	ref = strings.TrimSpace(ref)
	if ref == "" || strings.HasPrefix(ref, "data:") || strings.HasPrefix(ref, "javascript:") {
		return "", false
	}
	u, err := base.Parse(ref)
	if err != nil || u.Hostname() == "" {
		return "", false
	}
	return u.Hostname(), true
}

func attrValue(n *html.Node, name string) (string, bool) {
	for _, a := range n.Attr {
		if strings.EqualFold(a.Key, name) {
			return a.Val, a.Val != ""
		}
	}
	return "", false
}

func walk(n *html.Node, visit func(*html.Node)) {
	visit(n)
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walk(c, visit)
	}
}
