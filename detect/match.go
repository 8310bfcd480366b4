// Package detect turns extracted resource references into identified
// third-party services, and derives infrastructure hints from technology
// fingerprints.
package detect

import (
	"sovscan/model"
	"sovscan/registry"
)

// MatchServices resolves resource hostnames against the service registry
// and returns one DetectedService per matched display name. Unmatched
// hostnames contribute no signal: the extraction oracle covers recall for
// services the registry does not know.
func MatchServices(resources []model.DetectedResource, reg *registry.Registry) []model.DetectedService {
	var services []model.DetectedService
	seen := make(map[string]struct{})

	for _, res := range resources {
		entry, ok := reg.Lookup(res.Domain)
		if !ok {
			continue
		}
		if _, dup := seen[entry.DisplayName]; dup {
			continue
		}
		seen[entry.DisplayName] = struct{}{}

		alts := entry.RegionalAlternatives
		if alts == nil {
			alts = []string{}
		}
		services = append(services, model.DetectedService{
			Name:                 entry.DisplayName,
			Domain:               res.Domain,
			Jurisdiction:         entry.Jurisdiction,
			Category:             entry.Category,
			RiskTier:             entry.RiskTier,
			Notes:                entry.Notes,
			RegionalAlternatives: alts,
			DetectionMethod:      model.MethodFingerprint,
		})
	}
	return services
}
