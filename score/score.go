// Package score computes the sovereignty score and risk level from a
// completed analysis fact set. The engine is a deterministic, pure
// function of its inputs: same facts, same thresholds, same score. Every
// deduction and bonus appends a human-readable reason in application
// order, so a score is always explainable by replaying its reason lists.
package score

import (
	"fmt"
	"strings"

	"sovscan/model"
)

// Thresholds classify a score into a risk level. They are parameters, not
// structural constants, so callers and tests can run threshold sets of
// their own.
type Thresholds struct {
	HighBelow   int // score below this is High risk
	MediumBelow int // score below this (and >= HighBelow) is Medium risk
}

// DefaultThresholds returns the production classification boundaries.
func DefaultThresholds() Thresholds {
	return Thresholds{HighBelow: 50, MediumBelow: 75}
}

// Vendor deduction constants: base penalty by location class, scaled by
// the category weight, with an aggregate cap so vendor count alone cannot
// zero the score.
const (
	basePenaltyOutside = 8
	basePenaltyGlobal  = 5
	basePenaltyUnknown = 3
	maxVendorPenalty   = 45
)

// Facts is the scored input: the complete analysis record minus the
// fields this engine produces.
type Facts struct {
	Vendors        []model.Vendor
	Company        model.CompanyInfo
	Infrastructure model.InfrastructureInfo
	DataFlows      model.DataFlowInfo
	Compliance     model.ComplianceInfo
}

// Result carries the computed score, its classification, and the ordered
// reason lists.
type Result struct {
	Score           int
	RiskLevel       string
	RiskFactors     []string
	PositiveFactors []string
}

// Engine scores fact sets against a protected jurisdiction.
type Engine struct {
	Jurisdiction Jurisdiction
	Thresholds   Thresholds
}

// NewEngine builds an engine for the given jurisdiction and thresholds.
func NewEngine(j Jurisdiction, t Thresholds) *Engine {
	return &Engine{Jurisdiction: j, Thresholds: t}
}

// Calculate scores one fact set. The running total starts at 100, every
// deduction and bonus is applied unclamped in a fixed order, and the
// total is clamped to [0, 100] once at the end. Clamping mid-sequence
// would make the result order-dependent.
func (e *Engine) Calculate(f Facts) Result {
	s := &sheet{jur: e.Jurisdiction, total: 100}

	e.scoreCompany(s, f.Company)
	e.scoreInfrastructure(s, f.Infrastructure)
	e.scoreDataFlows(s, f.DataFlows)
	e.scoreWorkforce(s, f.Company)
	e.scoreVendors(s, f.Vendors)
	e.scoreCompliance(s, f.Compliance)

	score := s.total
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}

	level := model.LevelLow
	if score < e.Thresholds.HighBelow {
		level = model.LevelHigh
	} else if score < e.Thresholds.MediumBelow {
		level = model.LevelMedium
	}

	return Result{
		Score:           score,
		RiskLevel:       level,
		RiskFactors:     s.riskFactors,
		PositiveFactors: s.positiveFactors,
	}
}

// sheet accumulates the running total and the ordered reason lists.
type sheet struct {
	jur             Jurisdiction
	total           int
	riskFactors     []string
	positiveFactors []string
}

func (s *sheet) deduct(points int, reason string) {
	s.total -= points
	s.riskFactors = append(s.riskFactors, reason)
}

func (s *sheet) award(points int, reason string) {
	s.total += points
	s.positiveFactors = append(s.positiveFactors, reason)
}

func (e *Engine) scoreCompany(s *sheet, c model.CompanyInfo) {
	switch e.Jurisdiction.classify(c.RegistrationCountry) {
	case locUnknown:
		s.deduct(5, "Company registration country not disclosed")
	case locInside:
		s.award(8, fmt.Sprintf("Company registered in %s (%s)", e.Jurisdiction.Name, c.RegistrationCountry))
	default:
		s.deduct(25, fmt.Sprintf("Company registered outside %s (%s) - subject to foreign jurisdiction", e.Jurisdiction.Name, c.RegistrationCountry))
	}
}

// Hosting and cloud provider names the original recognizes by keyword.
var (
	outsideHostingPlatforms = []string{"FLY.IO", "FLYIO", "HEROKU", "VERCEL", "NETLIFY", "RAILWAY"}
	insideCloudProviders    = []string{"HETZNER", "OVH", "SCALEWAY", "IONOS", "LEASEWEB", "EXOSCALE", "UPCLOUD", "OPEN TELEKOM"}
	outsideCloudProviders   = []string{"AWS", "AMAZON", "GOOGLE CLOUD", "GCP", "AZURE", "MICROSOFT"}
)

func (e *Engine) scoreInfrastructure(s *sheet, inf model.InfrastructureInfo) {
	cloud := strings.ToUpper(inf.CloudProvider)
	if cloud == "" || cloud == "UNKNOWN" {
		s.deduct(3, "Cloud provider not disclosed")
	} else if matchesAny(cloud, insideCloudProviders) {
		s.award(8, fmt.Sprintf("%s-based cloud provider: %s", e.Jurisdiction.Name, inf.CloudProvider))
	} else if matchesAny(cloud, outsideCloudProviders) {
		if e.anyInside(inf.DataCenters) || e.anyInside(inf.ServerLocations) {
			s.deduct(8, fmt.Sprintf("Infrastructure uses foreign cloud provider %s (subject to foreign jurisdiction even with %s regions)", inf.CloudProvider, e.Jurisdiction.Name))
		} else {
			s.deduct(20, fmt.Sprintf("Infrastructure uses foreign cloud provider %s, no %s regions mentioned", inf.CloudProvider, e.Jurisdiction.Name))
		}
	}

	hosting := strings.ToUpper(inf.HostingPlatform)
	if hosting != "" && hosting != "UNKNOWN" && matchesAny(hosting, outsideHostingPlatforms) {
		s.deduct(8, fmt.Sprintf("Foreign hosting platform: %s", inf.HostingPlatform))
	}

	insideDCs := 0
	for _, dc := range append(append([]string{}, inf.DataCenters...), inf.ServerLocations...) {
		switch e.Jurisdiction.classify(dc) {
		case locOutside:
			s.deduct(10, fmt.Sprintf("Data center located outside %s: %s", e.Jurisdiction.Name, dc))
		case locInside:
			insideDCs++
		}
	}
	if insideDCs > 0 {
		s.award(minInt(9, insideDCs*3), fmt.Sprintf("Data centers in %s (%d)", e.Jurisdiction.Name, insideDCs))
	}

	for _, cdn := range inf.CDNProviders {
		upper := strings.ToUpper(cdn)
		if strings.Contains(upper, "CLOUDFLARE") {
			s.deduct(3, fmt.Sprintf("CDN provider: %s (foreign company with %s presence)", cdn, e.Jurisdiction.Name))
		} else if matchesAny(upper, []string{"FASTLY", "AKAMAI", "CLOUDFRONT", "AZURE"}) {
			s.deduct(5, fmt.Sprintf("Foreign CDN provider: %s", cdn))
		}
	}
}

func (e *Engine) scoreDataFlows(s *sheet, d model.DataFlowInfo) {
	insideStorage := 0
	for _, loc := range d.StorageLocations {
		switch e.Jurisdiction.classify(loc) {
		case locOutside:
			s.deduct(12, fmt.Sprintf("Customer data stored outside %s: %s", e.Jurisdiction.Name, loc))
		case locInside:
			insideStorage++
		}
	}
	if insideStorage > 0 {
		s.award(minInt(10, insideStorage*5), fmt.Sprintf("Data stored in %s (%d location(s))", e.Jurisdiction.Name, insideStorage))
	}

	insideProcessing := 0
	for _, loc := range d.ProcessingLocations {
		switch e.Jurisdiction.classify(loc) {
		case locOutside:
			s.deduct(8, fmt.Sprintf("Data processing occurs outside %s: %s", e.Jurisdiction.Name, loc))
		case locInside:
			insideProcessing++
		}
	}
	if insideProcessing > 0 {
		s.award(minInt(6, insideProcessing*3), fmt.Sprintf("Data processed in %s (%d location(s))", e.Jurisdiction.Name, insideProcessing))
	}

	switch e.Jurisdiction.classify(d.DataResidency) {
	case locUnknown:
		s.deduct(5, "Data residency not disclosed")
	case locGlobal:
		s.deduct(10, fmt.Sprintf("Data residency is global, no %s-only guarantee", e.Jurisdiction.Name))
	case locOutside:
		s.deduct(25, fmt.Sprintf("Data residency explicitly outside %s", e.Jurisdiction.Name))
	case locInside:
		s.award(10, fmt.Sprintf("%s-only data residency guarantee", e.Jurisdiction.Name))
	}
}

func (e *Engine) scoreWorkforce(s *sheet, c model.CompanyInfo) {
	all := append(append([]string{}, c.OfficeLocations...), c.EmployeeLocations...)
	inside, outside := 0, 0
	for _, loc := range all {
		switch e.Jurisdiction.classify(loc) {
		case locInside:
			inside++
		case locOutside:
			outside++
		}
	}
	if inside > 0 {
		s.award(minInt(6, inside*2), fmt.Sprintf("%s office/employee presence (%d location(s))", e.Jurisdiction.Name, inside))
	}
	if outside > 0 {
		s.deduct(minInt(12, 6+outside*2), fmt.Sprintf("Company has %d office/employee location(s) outside %s - foreign staff can access protected data", outside, e.Jurisdiction.Name))
	}
	if len(all) == 0 {
		s.deduct(2, "Employee and office locations not disclosed")
	}
}

func (e *Engine) scoreVendors(s *sheet, vendors []model.Vendor) {
	insideVendors := 0
	spent := 0

	capped := func(want int) int {
		if spent+want > maxVendorPenalty {
			want = maxVendorPenalty - spent
		}
		if want < 0 {
			want = 0
		}
		spent += want
		return want
	}

	for _, v := range vendors {
		switch e.Jurisdiction.classify(v.Location) {
		case locInside:
			insideVendors++
		case locOutside:
			p := capped(int(basePenaltyOutside * CategoryWeight(v.Purpose)))
			if p > 0 {
				s.deduct(p, fmt.Sprintf("Sub-processor outside %s: %s (%s, %s)", e.Jurisdiction.Name, v.Name, v.Purpose, v.Location))
			} else {
				s.riskFactors = append(s.riskFactors, fmt.Sprintf("Sub-processor outside %s: %s (%s, %s)", e.Jurisdiction.Name, v.Name, v.Purpose, v.Location))
			}
		case locGlobal:
			if p := capped(basePenaltyGlobal); p > 0 {
				s.deduct(p, fmt.Sprintf("Global sub-processor (uncertain jurisdiction): %s", v.Name))
			} else {
				s.riskFactors = append(s.riskFactors, fmt.Sprintf("Global sub-processor (uncertain jurisdiction): %s", v.Name))
			}
		case locUnknown:
			if p := capped(basePenaltyUnknown); p > 0 {
				s.deduct(p, fmt.Sprintf("Sub-processor location unknown: %s", v.Name))
			} else {
				s.riskFactors = append(s.riskFactors, fmt.Sprintf("Sub-processor location unknown: %s", v.Name))
			}
		}
	}

	if insideVendors > 0 {
		s.award(minInt(10, insideVendors*2), fmt.Sprintf("%d %s-based sub-processor(s)", insideVendors, e.Jurisdiction.Name))
	}
}

func (e *Engine) scoreCompliance(s *sheet, c model.ComplianceInfo) {
	gdpr := strings.ToUpper(c.GDPRStatus)
	switch {
	case gdpr == "" || gdpr == "UNKNOWN":
		s.deduct(5, "GDPR compliance status not disclosed")
	case strings.Contains(gdpr, "NON-COMPLIANT") || strings.Contains(gdpr, "NOT COMPLIANT"):
		s.deduct(20, "GDPR non-compliance - critical risk")
	case strings.Contains(gdpr, "COMPLIAN"):
		s.award(5, "GDPR compliance stated")
	}

	if n := len(c.Certifications); n > 0 {
		preview := c.Certifications
		if len(preview) > 3 {
			preview = preview[:3]
		}
		s.award(minInt(5, n*2), fmt.Sprintf("%d compliance certification(s) (%s)", n, strings.Join(preview, ", ")))
	} else {
		s.deduct(3, "No compliance certifications (SOC 2, ISO 27001, etc.) disclosed")
	}

	if n := len(c.RecentIncidents); n > 0 {
		s.deduct(minInt(15, n*6), fmt.Sprintf("Recent security incidents: %d reported", n))
	}

	guarantee := strings.ToUpper(c.DataResidencyGuarantees)
	if guarantee == "" || guarantee == "UNKNOWN" {
		s.deduct(3, "Data residency guarantees not disclosed")
	} else if !strings.Contains(guarantee, "NONE") {
		s.award(3, "Data residency guarantees disclosed")
	}
}

func (e *Engine) anyInside(locations []string) bool {
	for _, loc := range locations {
		if e.Jurisdiction.classify(loc) == locInside {
			return true
		}
	}
	return false
}

func matchesAny(upper string, fragments []string) bool {
	for _, f := range fragments {
		if strings.Contains(upper, f) {
			return true
		}
	}
	return false
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
