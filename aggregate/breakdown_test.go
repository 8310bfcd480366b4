package aggregate_test

import (
	"testing"

	"sovscan/aggregate"
	"sovscan/model"
	"sovscan/score"
)

func TestVendorBreakdown(t *testing.T) {
	vendors := []model.Vendor{
		{Name: "Stripe", Location: "United States", Risk: "Critical", DetectionMethod: model.MethodBoth},
		{Name: "Hetzner", Location: "Germany", Risk: "Low", DetectionMethod: model.MethodAIExtraction},
		{Name: "Segment", Location: "Global", Risk: "High", DetectionMethod: model.MethodAIExtraction},
		{Name: "Mystery", Location: "Unknown", Risk: "Unknown", DetectionMethod: model.MethodFingerprint},
	}

	b := aggregate.VendorBreakdown(vendors, score.EU())

	if b.ByJurisdiction[score.BucketOutside] != 1 ||
		b.ByJurisdiction[score.BucketInside] != 1 ||
		b.ByJurisdiction[score.BucketGlobal] != 1 ||
		b.ByJurisdiction[score.BucketUnknown] != 1 {
		t.Errorf("ByJurisdiction = %v, want one of each bucket", b.ByJurisdiction)
	}
	if b.ByRisk["Critical"] != 1 || b.ByRisk["Low"] != 1 {
		t.Errorf("ByRisk = %v", b.ByRisk)
	}
	if b.ByMethod[model.MethodAIExtraction] != 2 {
		t.Errorf("ByMethod = %v, want 2 ai-extraction vendors", b.ByMethod)
	}
}

func TestServicesByJurisdiction(t *testing.T) {
	services := []model.DetectedService{
		{Name: "Stripe", Jurisdiction: "United States"},
		{Name: "Plausible Analytics", Jurisdiction: "Estonia"},
		{Name: "Google Fonts", Jurisdiction: "United States"},
	}

	groups := aggregate.ServicesByJurisdiction(services)
	if len(groups) != 2 {
		t.Fatalf("got %d groups, want 2", len(groups))
	}
	if groups[0].Jurisdiction != "Estonia" {
		t.Errorf("groups[0] = %q, groups must be sorted by jurisdiction", groups[0].Jurisdiction)
	}
	us := groups[1]
	if len(us.Services) != 2 || us.Services[0].Name != "Google Fonts" {
		t.Errorf("US group = %+v, services must be sorted by name", us.Services)
	}
}
