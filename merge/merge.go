// Package merge reconciles vendor mentions arriving from the extraction
// oracle and the fingerprint matcher into one canonical vendor set. The
// decisive contract: no two vendors in the output share a normalized name.
// Violating it double-counts risk penalties downstream, which is the bug
// class this package exists to prevent.
package merge

import (
	"strings"

	"sovscan/model"
)

// NormalizeName produces the comparison key for vendor names: trimmed,
// inner whitespace collapsed, case-folded. Display names keep their
// original casing; only comparison uses this form.
func NormalizeName(name string) string {
	return strings.ToLower(strings.Join(strings.Fields(name), " "))
}

// Vendors merges the oracle's vendor list with the fingerprint-matched
// services into one canonical sequence. Oracle vendors seed the set and
// keep their original order; services either upgrade an existing entry to
// detection method "both" or append as fingerprint-only vendors.
//
// On a name collision the oracle's contextual fields win: purpose,
// location and risk are only backfilled from the registry where the
// oracle said Unknown (field-level fallback, never record-level
// overwrite).
func Vendors(oracleVendors []model.Vendor, services []model.DetectedService) []model.Vendor {
	canonical := make([]model.Vendor, 0, len(oracleVendors)+len(services))
	index := make(map[string]int)

	for _, v := range oracleVendors {
		key := NormalizeName(v.Name)
		if key == "" {
			continue
		}
		if _, dup := index[key]; dup {
			// The oracle occasionally lists the same vendor twice;
			// first mention wins.
			continue
		}
		v.DetectionMethod = model.MethodAIExtraction
		index[key] = len(canonical)
		canonical = append(canonical, v)
	}

	for _, s := range services {
		key := NormalizeName(s.Name)
		if key == "" {
			continue
		}
		if i, ok := index[key]; ok {
			canonical[i].DetectionMethod = model.MethodBoth
			if isUnknown(canonical[i].Purpose) {
				canonical[i].Purpose = s.Category
			}
			if isUnknown(canonical[i].Location) {
				canonical[i].Location = s.Jurisdiction
			}
			if isUnknown(canonical[i].Risk) {
				canonical[i].Risk = s.RiskTier
			}
			continue
		}
		index[key] = len(canonical)
		canonical = append(canonical, model.Vendor{
			Name:            s.Name,
			Purpose:         s.Category,
			Location:        s.Jurisdiction,
			Risk:            s.RiskTier,
			DetectionMethod: model.MethodFingerprint,
		})
	}

	return canonical
}

func isUnknown(s string) bool {
	t := strings.TrimSpace(s)
	return t == "" || strings.EqualFold(t, model.Unknown)
}
