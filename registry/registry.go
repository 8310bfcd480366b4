// Package registry holds the static database of known third-party
// services, keyed by domain fragment. The registry is loaded once at
// process start and is read-only afterwards, so concurrent analyses can
// share one instance without locking.
package registry

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"

	"sovscan/model"
)

//go:embed data/known_services.json
var knownServicesJSON []byte

// Registry is an immutable lookup table from domain fragment to service
// metadata. Construct it with Load or New; do not mutate entries after.
type Registry struct {
	entries []model.ServiceRegistryEntry
}

// Load parses the embedded known-services database.
func Load() (*Registry, error) {
	var entries []model.ServiceRegistryEntry
	if err := json.Unmarshal(knownServicesJSON, &entries); err != nil {
		return nil, fmt.Errorf("failed to parse embedded known services database: %w", err)
	}
	return New(entries)
}

// New builds a registry from explicit entries. Tests inject custom
// registries through this constructor.
func New(entries []model.ServiceRegistryEntry) (*Registry, error) {
	for i, e := range entries {
		if err := e.Validate(); err != nil {
			return nil, fmt.Errorf("registry entry %d: %w", i, err)
		}
	}
	return &Registry{entries: entries}, nil
}

// Len reports the number of registry entries.
func (r *Registry) Len() int { return len(r.entries) }

// Lookup returns the registry entry matching a hostname, if any. An entry
// matches when its domain fragment is a suffix or substring of the
// hostname. When several entries match, the longest fragment wins so that
// specific subdomain entries override parent-domain entries.
func (r *Registry) Lookup(hostname string) (model.ServiceRegistryEntry, bool) {
	host := strings.ToLower(strings.TrimSpace(hostname))
	if host == "" {
		return model.ServiceRegistryEntry{}, false
	}

	var best model.ServiceRegistryEntry
	found := false
	for _, e := range r.entries {
		frag := strings.ToLower(e.DomainFragment)
		if !strings.Contains(host, frag) {
			continue
		}
		if !found || len(frag) > len(best.DomainFragment) {
			best = e
			found = true
		}
	}
	return best, found
}
