package model

import (
	"fmt"
	"time"
)

// Detection method provenance tags on a merged vendor record.
const (
	MethodAIExtraction = "ai-extraction"
	MethodFingerprint  = "resource-fingerprint"
	MethodBoth         = "both"
)

// Unknown is the sentinel for absent scalar facts. Fact-bag fields are
// always present; consumers never branch on nil.
const Unknown = "Unknown"

// Risk levels classifying a completed analysis.
const (
	LevelHigh   = "High"
	LevelMedium = "Medium"
	LevelLow    = "Low"
)

// Vendor is one canonical third-party entity in a completed analysis.
// Names are unique under case-insensitive, whitespace-normalized
// comparison; the merge engine is the sole writer enforcing that.
type Vendor struct {
	Name            string `json:"name"`
	Purpose         string `json:"purpose"`
	Location        string `json:"location"`
	Risk            string `json:"risk"`
	DetectionMethod string `json:"detection_method"`
}

// Validate performs schema validation on a Vendor.
func (v Vendor) Validate() error {
	if v.Name == "" {
		return fmt.Errorf("Vendor: Name cannot be empty")
	}
	switch v.DetectionMethod {
	case MethodAIExtraction, MethodFingerprint, MethodBoth:
	default:
		return fmt.Errorf("Vendor: invalid DetectionMethod %q", v.DetectionMethod)
	}
	return nil
}

// CompanyInfo holds registration and workforce facts about the analyzed
// company.
type CompanyInfo struct {
	RegistrationCountry string   `json:"registration_country"`
	LegalEntity         string   `json:"legal_entity"`
	OfficeLocations     []string `json:"office_locations"`
	EmployeeLocations   []string `json:"employee_locations"`
}

// InfrastructureInfo holds hosting and network facts.
type InfrastructureInfo struct {
	CloudProvider   string   `json:"cloud_provider"`
	HostingPlatform string   `json:"hosting_platform"`
	DataCenters     []string `json:"data_centers"`
	ServerLocations []string `json:"server_locations"`
	CDNProviders    []string `json:"cdn_providers"`
}

// DataFlowInfo holds where customer data is stored and processed.
type DataFlowInfo struct {
	StorageLocations    []string `json:"storage_locations"`
	ProcessingLocations []string `json:"processing_locations"`
	DataResidency       string   `json:"data_residency"`
}

// ComplianceInfo holds compliance posture facts.
type ComplianceInfo struct {
	GDPRStatus              string   `json:"gdpr_status"`
	Certifications          []string `json:"certifications"`
	DataResidencyGuarantees string   `json:"data_residency_guarantees"`
	RecentIncidents         []string `json:"recent_incidents"`
}

// AnalysisResult is the terminal aggregate of one analysis request.
// Immutable after construction.
type AnalysisResult struct {
	URL              string             `json:"url"`
	Score            int                `json:"score"`
	RiskLevel        string             `json:"risk_level"`
	Summary          string             `json:"summary"`
	Vendors          []Vendor           `json:"vendors"`
	DetectedServices []DetectedService  `json:"detected_services"`
	Company          CompanyInfo        `json:"company_info"`
	Infrastructure   InfrastructureInfo `json:"infrastructure"`
	DataFlows        DataFlowInfo       `json:"data_flows"`
	Compliance       ComplianceInfo     `json:"compliance"`
	RiskFactors      []string           `json:"risk_factors"`
	PositiveFactors  []string           `json:"positive_factors"`
	GeneratedAt      time.Time          `json:"generated_at"`
}

// Meta describes the tool run that produced a report file.
type Meta struct {
	Tool        string    `json:"tool"`
	Version     string    `json:"version"`
	GeneratedAt time.Time `json:"generated_at"`
	Format      string    `json:"format"`
}
