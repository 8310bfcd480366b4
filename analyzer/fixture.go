package analyzer

import (
	"time"

	"sovscan/model"
)

// DummyResult returns a fixed, fully-populated analysis for the "dummy"
// sentinel input. It exercises every report field without touching the
// network or the oracle, which makes it the demo and smoke-test target.
func DummyResult(generatedAt time.Time) *model.AnalysisResult {
	return &model.AnalysisResult{
		URL:       "https://dummy.example.com",
		Score:     34,
		RiskLevel: model.LevelHigh,
		Summary: "DummyCorp is a US-registered SaaS company hosting on AWS in " +
			"us-east-1 with a largely US-based workforce. Customer data is " +
			"stored and processed in the United States and flows through " +
			"several US sub-processors, leaving it subject to foreign " +
			"jurisdiction despite a stated GDPR compliance effort.",
		Vendors: []model.Vendor{
			{Name: "Google Analytics", Purpose: "Analytics", Location: "United States", Risk: "High", DetectionMethod: model.MethodBoth},
			{Name: "Stripe", Purpose: "Payments", Location: "United States", Risk: "Critical", DetectionMethod: model.MethodBoth},
			{Name: "Intercom", Purpose: "Customer Support", Location: "United States", Risk: "High", DetectionMethod: model.MethodAIExtraction},
			{Name: "Sentry", Purpose: "Error Tracking", Location: "United States", Risk: "Medium", DetectionMethod: model.MethodFingerprint},
			{Name: "Mailchimp", Purpose: "Email Marketing", Location: "United States", Risk: "High", DetectionMethod: model.MethodAIExtraction},
		},
		DetectedServices: []model.DetectedService{
			{
				Name:                 "Google Analytics",
				Domain:               "www.googletagmanager.com",
				Jurisdiction:         "United States",
				Category:             "Analytics",
				RiskTier:             model.RiskHigh,
				Notes:                "Pervasive behavioral tracking, data processed in the US",
				RegionalAlternatives: []string{"Plausible", "Matomo"},
				DetectionMethod:      model.MethodFingerprint,
			},
			{
				Name:                 "Stripe",
				Domain:               "js.stripe.com",
				Jurisdiction:         "United States",
				Category:             "Payments",
				RiskTier:             model.RiskCritical,
				Notes:                "Handles payment card data under US jurisdiction",
				RegionalAlternatives: []string{"Mollie", "Adyen"},
				DetectionMethod:      model.MethodFingerprint,
			},
			{
				Name:                 "Sentry",
				Domain:               "browser.sentry-cdn.com",
				Jurisdiction:         "United States",
				Category:             "Error Tracking",
				RiskTier:             model.RiskMedium,
				Notes:                "Error payloads can include user context",
				RegionalAlternatives: []string{"GlitchTip"},
				DetectionMethod:      model.MethodFingerprint,
			},
		},
		Company: model.CompanyInfo{
			RegistrationCountry: "United States",
			LegalEntity:         "DummyCorp Inc.",
			OfficeLocations:     []string{"San Francisco, USA", "Berlin, Germany"},
			EmployeeLocations:   []string{"United States", "Germany", "India"},
		},
		Infrastructure: model.InfrastructureInfo{
			CloudProvider:   "Amazon Web Services (AWS)",
			HostingPlatform: "Vercel",
			DataCenters:     []string{"us-east-1 (Virginia, USA)", "eu-central-1 (Frankfurt, Germany)"},
			ServerLocations: []string{"United States", "Germany"},
			CDNProviders:    []string{"Cloudflare"},
		},
		DataFlows: model.DataFlowInfo{
			StorageLocations:    []string{"United States"},
			ProcessingLocations: []string{"United States", "Germany"},
			DataResidency:       "Global",
		},
		Compliance: model.ComplianceInfo{
			GDPRStatus:              "Claims compliance",
			Certifications:          []string{"SOC 2 Type II"},
			DataResidencyGuarantees: "None stated",
			RecentIncidents:         []string{},
		},
		RiskFactors: []string{
			"Company registered outside EU (United States) - subject to foreign jurisdiction",
			"Infrastructure uses foreign cloud provider Amazon Web Services (AWS) (subject to foreign jurisdiction even with EU regions)",
			"Foreign hosting platform: Vercel",
			"Data center located outside EU: us-east-1 (Virginia, USA)",
			"CDN provider: Cloudflare (foreign company with EU presence)",
			"Customer data stored outside EU: United States",
			"Data processing occurs outside EU: United States",
			"Data residency is global, no EU-only guarantee",
			"Company has 2 office/employee location(s) outside EU - foreign staff can access protected data",
			"Sub-processor outside EU: Google Analytics (Analytics, United States)",
			"Sub-processor outside EU: Stripe (Payments, United States)",
			"Sub-processor outside EU: Intercom (Customer Support, United States)",
			"Sub-processor outside EU: Sentry (Error Tracking, United States)",
			"Sub-processor outside EU: Mailchimp (Email Marketing, United States)",
		},
		PositiveFactors: []string{
			"Data centers in EU (1)",
			"Data processed in EU (1 location(s))",
			"EU office/employee presence (2 location(s))",
			"GDPR compliance stated",
			"1 compliance certification(s) (SOC 2 Type II)",
		},
		GeneratedAt: generatedAt,
	}
}
