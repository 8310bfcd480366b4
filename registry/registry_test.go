package registry_test

import (
	"testing"

	"sovscan/model"
	"sovscan/registry"
)

func TestLoadEmbeddedDatabase(t *testing.T) {
	reg, err := registry.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if reg.Len() == 0 {
		t.Fatal("embedded database is empty")
	}

	entry, ok := reg.Lookup("js.stripe.com")
	if !ok {
		t.Fatal("js.stripe.com not found in embedded database")
	}
	if entry.DisplayName != "Stripe" {
		t.Errorf("DisplayName = %q, want Stripe", entry.DisplayName)
	}
	if entry.RiskTier != model.RiskCritical {
		t.Errorf("RiskTier = %q, want Critical", entry.RiskTier)
	}
}

func TestLookupLongestFragmentWins(t *testing.T) {
	reg, err := registry.New([]model.ServiceRegistryEntry{
		{DomainFragment: "googleapis.com", DisplayName: "Google APIs", Jurisdiction: "United States", Category: "Cloud Infrastructure", RiskTier: model.RiskHigh},
		{DomainFragment: "fonts.googleapis.com", DisplayName: "Google Fonts", Jurisdiction: "United States", Category: "CDN/Fonts", RiskTier: model.RiskMedium},
	})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	entry, ok := reg.Lookup("fonts.googleapis.com")
	if !ok {
		t.Fatal("no match for fonts.googleapis.com")
	}
	if entry.DisplayName != "Google Fonts" {
		t.Errorf("DisplayName = %q, the more specific fragment must win", entry.DisplayName)
	}

	entry, ok = reg.Lookup("maps.googleapis.com")
	if !ok {
		t.Fatal("no match for maps.googleapis.com")
	}
	if entry.DisplayName != "Google APIs" {
		t.Errorf("DisplayName = %q, want parent-domain entry", entry.DisplayName)
	}
}

func TestLookupNoMatch(t *testing.T) {
	reg, err := registry.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if _, ok := reg.Lookup("assets.internal-cdn.example"); ok {
		t.Error("unexpected match for unregistered hostname")
	}
	if _, ok := reg.Lookup(""); ok {
		t.Error("empty hostname must not match")
	}
}

func TestNewRejectsInvalidEntries(t *testing.T) {
	_, err := registry.New([]model.ServiceRegistryEntry{
		{DomainFragment: "example.com", DisplayName: "Example", RiskTier: "Severe"},
	})
	if err == nil {
		t.Fatal("New accepted an invalid risk tier")
	}
}
