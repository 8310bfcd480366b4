package detect_test

import (
	"testing"

	"sovscan/detect"
	"sovscan/model"
	"sovscan/registry"
)

func testRegistry(t *testing.T) *registry.Registry {
	t.Helper()
	reg, err := registry.New([]model.ServiceRegistryEntry{
		{
			DomainFragment: "stripe.com",
			DisplayName:    "Stripe",
			Jurisdiction:   "United States",
			Category:       "Payment Processing",
			RiskTier:       model.RiskCritical,
		},
		{
			DomainFragment:       "intercom.io",
			DisplayName:          "Intercom",
			Jurisdiction:         "United States",
			Category:             "Customer Support",
			RiskTier:             model.RiskHigh,
			RegionalAlternatives: []string{"Crisp (France)"},
		},
		{
			DomainFragment: "plausible.io",
			DisplayName:    "Plausible Analytics",
			Jurisdiction:   "Estonia",
			Category:       "Analytics",
			RiskTier:       model.RiskLow,
		},
	})
	if err != nil {
		t.Fatalf("registry.New failed: %v", err)
	}
	return reg
}

func TestMatchServices(t *testing.T) {
	reg := testRegistry(t)

	resources := []model.DetectedResource{
		{Domain: "js.stripe.com", ReferenceKind: model.RefScript, SourcePageURL: "https://example.com"},
		{Domain: "widget.intercom.io", ReferenceKind: model.RefFrame, SourcePageURL: "https://example.com"},
		{Domain: "intercomcdn.example.net", ReferenceKind: model.RefScript, SourcePageURL: "https://example.com"},
		{Domain: "cdn.unknown-vendor.net", ReferenceKind: model.RefScript, SourcePageURL: "https://example.com"},
	}

	services := detect.MatchServices(resources, reg)
	if len(services) != 2 {
		t.Fatalf("MatchServices returned %d services, want 2: %+v", len(services), services)
	}

	if services[0].Name != "Stripe" || services[0].RiskTier != model.RiskCritical {
		t.Errorf("first service = %+v, want Stripe/Critical", services[0])
	}
	if services[0].DetectionMethod != model.MethodFingerprint {
		t.Errorf("DetectionMethod = %q, want %q", services[0].DetectionMethod, model.MethodFingerprint)
	}
	if services[1].Name != "Intercom" || services[1].Domain != "widget.intercom.io" {
		t.Errorf("second service = %+v, want Intercom via widget.intercom.io", services[1])
	}
	if services[1].RegionalAlternatives == nil {
		t.Error("RegionalAlternatives must never be nil")
	}
}

func TestMatchServicesDeduplicatesByDisplayName(t *testing.T) {
	reg := testRegistry(t)

	resources := []model.DetectedResource{
		{Domain: "js.stripe.com", ReferenceKind: model.RefScript, SourcePageURL: "https://example.com"},
		{Domain: "api.stripe.com", ReferenceKind: model.RefInlineCall, SourcePageURL: "https://example.com"},
		{Domain: "checkout.stripe.com", ReferenceKind: model.RefFrame, SourcePageURL: "https://example.com/pricing"},
	}

	services := detect.MatchServices(resources, reg)
	if len(services) != 1 {
		t.Fatalf("MatchServices returned %d services, want 1: %+v", len(services), services)
	}
	if services[0].Name != "Stripe" {
		t.Errorf("service name = %q, want Stripe", services[0].Name)
	}
}

func TestMatchServicesEmptyAlternatives(t *testing.T) {
	reg := testRegistry(t)

	services := detect.MatchServices([]model.DetectedResource{
		{Domain: "plausible.io", ReferenceKind: model.RefScript, SourcePageURL: "https://example.com"},
	}, reg)

	if len(services) != 1 {
		t.Fatalf("MatchServices returned %d services, want 1", len(services))
	}
	if services[0].RegionalAlternatives == nil || len(services[0].RegionalAlternatives) != 0 {
		t.Errorf("RegionalAlternatives = %v, want empty non-nil slice", services[0].RegionalAlternatives)
	}
}
