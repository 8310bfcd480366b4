// Package aggregate groups the findings of a completed analysis for
// report rendering.
package aggregate

import (
	"sort"

	"sovscan/model"
	"sovscan/score"
)

// Breakdown summarizes the vendor population of one analysis.
type Breakdown struct {
	ByJurisdiction map[string]int // bucket label -> vendor count
	ByRisk         map[string]int // risk label -> vendor count
	ByMethod       map[string]int // detection method -> vendor count
}

// VendorBreakdown tallies vendors by jurisdiction bucket, stated risk,
// and detection method.
func VendorBreakdown(vendors []model.Vendor, jur score.Jurisdiction) Breakdown {
	b := Breakdown{
		ByJurisdiction: make(map[string]int),
		ByRisk:         make(map[string]int),
		ByMethod:       make(map[string]int),
	}
	for _, v := range vendors {
		b.ByJurisdiction[jur.Bucket(v.Location)]++
		b.ByRisk[v.Risk]++
		b.ByMethod[v.DetectionMethod]++
	}
	return b
}

// JurisdictionGroup collects the detected services of one jurisdiction.
type JurisdictionGroup struct {
	Jurisdiction string
	Services     []model.DetectedService
}

// ServicesByJurisdiction groups detected services by their registry
// jurisdiction, sorted by jurisdiction name and then by service name for
// consistent output.
func ServicesByJurisdiction(services []model.DetectedService) []JurisdictionGroup {
	groupMap := make(map[string][]model.DetectedService)
	for _, s := range services {
		groupMap[s.Jurisdiction] = append(groupMap[s.Jurisdiction], s)
	}

	var groups []JurisdictionGroup
	for jur, svcs := range groupMap {
		sort.Slice(svcs, func(i, j int) bool {
			return svcs[i].Name < svcs[j].Name
		})
		groups = append(groups, JurisdictionGroup{Jurisdiction: jur, Services: svcs})
	}

	sort.Slice(groups, func(i, j int) bool {
		return groups[i].Jurisdiction < groups[j].Jurisdiction
	})

	return groups
}
