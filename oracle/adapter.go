package oracle

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"sovscan/extract"
	"sovscan/model"
	"sovscan/util"
)

// Input to the oracle is capped so one oversized site cannot blow the
// prompt budget. Matches the page-text caps applied by the fetcher.
const maxPromptTextLen = 20000

// Adapter turns the oracle's untyped best-effort output into a strictly
// typed model.Extraction. Extract never returns an error: every upstream
// failure mode degrades to the empty-but-valid extraction so the analysis
// can proceed in fingerprint-only mode.
type Adapter struct {
	client  Client
	timeout time.Duration
}

// NewAdapter wraps a client with a hard per-call timeout.
func NewAdapter(client Client, timeout time.Duration) *Adapter {
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &Adapter{client: client, timeout: timeout}
}

// Extract sends the accumulated page text to the oracle and normalizes
// whatever comes back.
func (a *Adapter) Extract(ctx context.Context, text string) model.Extraction {
	if a.client == nil {
		ext := model.EmptyExtraction()
		ext.Diagnostic = "no oracle client configured"
		return ext
	}

	text = extract.Truncate(text, maxPromptTextLen)

	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	raw, err := a.client.Generate(ctx, auditPrompt+"\n\nText to analyze:\n"+text)
	if err != nil {
		util.Warn("Extraction oracle call failed, continuing fingerprint-only: %v", err)
		ext := model.EmptyExtraction()
		ext.Diagnostic = "oracle call failed: " + err.Error()
		return ext
	}

	return normalize(raw)
}

// rawExtraction mirrors the JSON schema requested from the oracle. Every
// field is optional here; normalize supplies the defaults.
type rawExtraction struct {
	Vendors []struct {
		Name     string `json:"name"`
		Purpose  string `json:"purpose"`
		Location string `json:"location"`
		Risk     string `json:"risk"`
	} `json:"vendors"`
	Company struct {
		RegistrationCountry string   `json:"registration_country"`
		LegalEntity         string   `json:"legal_entity"`
		OfficeLocations     []string `json:"office_locations"`
		EmployeeLocations   []string `json:"employee_locations"`
	} `json:"company_info"`
	Infrastructure struct {
		CloudProvider   string   `json:"cloud_provider"`
		HostingPlatform string   `json:"hosting_platform"`
		DataCenters     []string `json:"data_centers"`
		ServerLocations []string `json:"server_locations"`
		CDNProviders    []string `json:"cdn_providers"`
	} `json:"infrastructure"`
	DataFlows struct {
		StorageLocations    []string `json:"storage_locations"`
		ProcessingLocations []string `json:"processing_locations"`
		DataResidency       string   `json:"data_residency"`
	} `json:"data_flows"`
	Compliance struct {
		GDPRStatus              string   `json:"gdpr_status"`
		Certifications          []string `json:"certifications"`
		DataResidencyGuarantees string   `json:"data_residency_guarantees"`
		RecentIncidents         []string `json:"recent_incidents"`
	} `json:"compliance"`
	Summary string `json:"summary"`
}

// normalize is total: any input string maps to a valid Extraction. The
// oracle tends to wrap its JSON in markdown fences or prose, so the first
// recovery step is carving out the outermost brace pair.
func normalize(raw string) model.Extraction {
	ext := model.EmptyExtraction()

	payload := carveJSON(raw)
	if payload == "" {
		ext.Diagnostic = "no JSON object found in oracle response"
		return ext
	}

	var re rawExtraction
	if err := json.Unmarshal([]byte(payload), &re); err != nil {
		ext.Diagnostic = "oracle response is not valid JSON: " + err.Error()
		return ext
	}

	for _, v := range re.Vendors {
		name := strings.TrimSpace(v.Name)
		if name == "" {
			continue
		}
		ext.Vendors = append(ext.Vendors, model.Vendor{
			Name:            name,
			Purpose:         orUnknown(v.Purpose),
			Location:        orUnknown(v.Location),
			Risk:            orUnknown(v.Risk),
			DetectionMethod: model.MethodAIExtraction,
		})
	}

	ext.Company = model.CompanyInfo{
		RegistrationCountry: orUnknown(re.Company.RegistrationCountry),
		LegalEntity:         orUnknown(re.Company.LegalEntity),
		OfficeLocations:     orEmpty(re.Company.OfficeLocations),
		EmployeeLocations:   orEmpty(re.Company.EmployeeLocations),
	}
	ext.Infrastructure = model.InfrastructureInfo{
		CloudProvider:   orUnknown(re.Infrastructure.CloudProvider),
		HostingPlatform: orUnknown(re.Infrastructure.HostingPlatform),
		DataCenters:     orEmpty(re.Infrastructure.DataCenters),
		ServerLocations: orEmpty(re.Infrastructure.ServerLocations),
		CDNProviders:    orEmpty(re.Infrastructure.CDNProviders),
	}
	ext.DataFlows = model.DataFlowInfo{
		StorageLocations:    orEmpty(re.DataFlows.StorageLocations),
		ProcessingLocations: orEmpty(re.DataFlows.ProcessingLocations),
		DataResidency:       orUnknown(re.DataFlows.DataResidency),
	}
	ext.Compliance = model.ComplianceInfo{
		GDPRStatus:              orUnknown(re.Compliance.GDPRStatus),
		Certifications:          orEmpty(re.Compliance.Certifications),
		DataResidencyGuarantees: orUnknown(re.Compliance.DataResidencyGuarantees),
		RecentIncidents:         orEmpty(re.Compliance.RecentIncidents),
	}
	ext.Summary = strings.TrimSpace(re.Summary)

	return ext
}

// carveJSON extracts the outermost {...} span from free-form text.
func carveJSON(s string) string {
	start := strings.IndexByte(s, '{')
	end := strings.LastIndexByte(s, '}')
	if start < 0 || end <= start {
		return ""
	}
	return s[start : end+1]
}

func orUnknown(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return model.Unknown
	}
	return s
}

func orEmpty(list []string) []string {
	out := make([]string, 0, len(list))
	for _, s := range list {
		if t := strings.TrimSpace(s); t != "" {
			out = append(out, t)
		}
	}
	return out
}
