package model

// Extraction is the fully-typed result of the AI extraction oracle after
// normalization. List fields are never nil and scalar fields never empty:
// the adapter substitutes Unknown for anything the oracle did not supply.
type Extraction struct {
	Vendors        []Vendor           `json:"vendors"`
	Company        CompanyInfo        `json:"company_info"`
	Infrastructure InfrastructureInfo `json:"infrastructure"`
	DataFlows      DataFlowInfo       `json:"data_flows"`
	Compliance     ComplianceInfo     `json:"compliance"`
	Summary        string             `json:"summary"`

	// Diagnostic records why normalization fell back to defaults, if it
	// did. Empty on a clean parse.
	Diagnostic string `json:"-"`
}

// EmptyExtraction returns a valid extraction with every scalar set to
// Unknown and every list empty. This is what downstream components see
// when the oracle fails entirely.
func EmptyExtraction() Extraction {
	return Extraction{
		Vendors: []Vendor{},
		Company: CompanyInfo{
			RegistrationCountry: Unknown,
			LegalEntity:         Unknown,
			OfficeLocations:     []string{},
			EmployeeLocations:   []string{},
		},
		Infrastructure: InfrastructureInfo{
			CloudProvider:   Unknown,
			HostingPlatform: Unknown,
			DataCenters:     []string{},
			ServerLocations: []string{},
			CDNProviders:    []string{},
		},
		DataFlows: DataFlowInfo{
			StorageLocations:    []string{},
			ProcessingLocations: []string{},
			DataResidency:       Unknown,
		},
		Compliance: ComplianceInfo{
			GDPRStatus:              Unknown,
			Certifications:          []string{},
			DataResidencyGuarantees: Unknown,
			RecentIncidents:         []string{},
		},
		Summary: "",
	}
}
