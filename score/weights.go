package score

import "strings"

// categoryWeights maps vendor purpose to a data-sensitivity multiplier on
// the vendor base penalty. AI/ML and payment processing weigh highest,
// CDN and fonts lowest. Ordered longest-key-first so that overlapping
// labels ("CDN/Fonts" vs "CDN") resolve deterministically.
var categoryWeights = []struct {
	category string
	weight   float64
}{
	{"CLOUD INFRASTRUCTURE", 1.4},
	{"SMS/COMMUNICATIONS", 1.2},
	{"SOCIAL/ADVERTISING", 0.9},
	{"PAYMENT PROCESSING", 1.4},
	{"DATABASE/STORAGE", 1.4},
	{"CUSTOMER SUPPORT", 1.2},
	{"EMAIL MARKETING", 1.2},
	{"TAG MANAGEMENT", 1.1},
	{"AUTHENTICATION", 1.3},
	{"ERROR TRACKING", 1.0},
	{"SESSION REPLAY", 1.1},
	{"CLOUD STORAGE", 1.4},
	{"EMAIL SERVICE", 1.2},
	{"A/B TESTING", 0.8},
	{"CDN/FONTS", 0.7},
	{"MONITORING", 1.0},
	{"ANALYTICS", 1.0},
	{"MARKETING", 0.9},
	{"AI/ML", 1.5},
	{"CDN", 0.8},
}

// CategoryWeight returns the multiplier for a vendor purpose string,
// defaulting to 1.0 for unrecognized categories.
func CategoryWeight(purpose string) float64 {
	p := strings.ToUpper(strings.TrimSpace(purpose))
	if p == "" {
		return 1.0
	}
	for _, cw := range categoryWeights {
		if strings.Contains(p, cw.category) {
			return cw.weight
		}
	}
	return 1.0
}
