// Package input validates and normalizes the address an analysis is
// requested for.
package input

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// ErrMalformedInput marks an address that cannot be normalized to any
// valid form. Check with errors.Is.
var ErrMalformedInput = errors.New("address cannot be normalized")

// Dummy is the sentinel input that bypasses all external collaborators
// and returns the fixed fixture result.
const Dummy = "dummy"

// IsDummy reports whether a raw input requests the fixture analysis.
func IsDummy(raw string) bool {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case Dummy, "https://dummy", "http://dummy":
		return true
	}
	return false
}

// Normalize upgrades a raw address to a secure absolute URL. Bare-domain
// ("example.com") and protocol-relative ("//example.com") forms gain an
// https scheme; anything that still lacks a usable host is malformed.
func Normalize(raw string) (string, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return "", fmt.Errorf("%w: empty input", ErrMalformedInput)
	}

	if strings.HasPrefix(s, "//") {
		s = "https:" + s
	} else if !strings.Contains(s, "://") {
		s = "https://" + s
	}

	u, err := url.Parse(s)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrMalformedInput, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", fmt.Errorf("%w: unsupported scheme %q", ErrMalformedInput, u.Scheme)
	}
	if u.Hostname() == "" || !strings.Contains(u.Hostname(), ".") {
		return "", fmt.Errorf("%w: no valid host in %q", ErrMalformedInput, raw)
	}

	return u.String(), nil
}

// Hostname returns the display host of a normalized URL with a leading
// www. stripped.
func Hostname(normalized string) string {
	u, err := url.Parse(normalized)
	if err != nil {
		return ""
	}
	return strings.TrimPrefix(u.Hostname(), "www.")
}
