package model

import "fmt"

// Risk tiers assigned to known services and merged vendors.
const (
	RiskCritical = "Critical"
	RiskHigh     = "High"
	RiskMedium   = "Medium"
	RiskLow      = "Low"
)

// ServiceRegistryEntry is an immutable reference record from the known
// services database. Loaded once at process start, read-only thereafter.
type ServiceRegistryEntry struct {
	DomainFragment       string   `json:"domain_fragment"`
	DisplayName          string   `json:"display_name"`
	Jurisdiction         string   `json:"jurisdiction"`
	Category             string   `json:"category"`
	RiskTier             string   `json:"risk_tier"`
	Notes                string   `json:"notes,omitempty"`
	RegionalAlternatives []string `json:"regional_alternatives"`
}

// Validate performs schema validation on a ServiceRegistryEntry.
func (e ServiceRegistryEntry) Validate() error {
	if e.DomainFragment == "" {
		return fmt.Errorf("ServiceRegistryEntry: DomainFragment cannot be empty")
	}
	if e.DisplayName == "" {
		return fmt.Errorf("ServiceRegistryEntry: DisplayName cannot be empty")
	}
	switch e.RiskTier {
	case RiskCritical, RiskHigh, RiskMedium, RiskLow:
	default:
		return fmt.Errorf("ServiceRegistryEntry: invalid RiskTier %q", e.RiskTier)
	}
	return nil
}

// DetectedService is a resource whose hostname matched a registry entry.
// Kept in the result separately from merged vendors for transparency.
type DetectedService struct {
	Name                 string   `json:"name"`
	Domain               string   `json:"domain"`
	Jurisdiction         string   `json:"jurisdiction"`
	Category             string   `json:"category"`
	RiskTier             string   `json:"risk_level"`
	Notes                string   `json:"notes,omitempty"`
	RegionalAlternatives []string `json:"regional_alternatives"`
	DetectionMethod      string   `json:"detection_method"` // always resource-fingerprint
}
