package model_test

import (
	"testing"

	"sovscan/model"
)

func TestDetectedResourceSchema(t *testing.T) {
	tests := []struct {
		name     string
		input    model.DetectedResource
		wantErr  bool
		errCheck func(error) bool
	}{
		{
			name: "Valid resource",
			input: model.DetectedResource{
				Domain:        "js.stripe.com",
				ReferenceKind: model.RefScript,
				SourcePageURL: "https://example.com",
			},
			wantErr: false,
		},
		{
			name: "Missing Domain",
			input: model.DetectedResource{
				ReferenceKind: model.RefScript,
				SourcePageURL: "https://example.com",
			},
			wantErr: true,
			errCheck: func(err error) bool {
				return err.Error() == "DetectedResource: Domain cannot be empty"
			},
		},
		{
			name: "Invalid ReferenceKind",
			input: model.DetectedResource{
				Domain:        "js.stripe.com",
				ReferenceKind: "stylesheet",
				SourcePageURL: "https://example.com",
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.input.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.errCheck != nil && !tt.errCheck(err) {
				t.Errorf("Validate() error = %v, failed error check", err)
			}
		})
	}
}

func TestVendorSchema(t *testing.T) {
	tests := []struct {
		name    string
		input   model.Vendor
		wantErr bool
	}{
		{
			name: "Valid vendor",
			input: model.Vendor{
				Name:            "Stripe",
				Purpose:         "Payments",
				Location:        "United States",
				Risk:            "Critical",
				DetectionMethod: model.MethodBoth,
			},
			wantErr: false,
		},
		{
			name: "Missing Name",
			input: model.Vendor{
				DetectionMethod: model.MethodAIExtraction,
			},
			wantErr: true,
		},
		{
			name: "Invalid DetectionMethod",
			input: model.Vendor{
				Name:            "Stripe",
				DetectionMethod: "manual",
			},
			wantErr: true,
		},
		{
			name: "Empty DetectionMethod",
			input: model.Vendor{
				Name: "Stripe",
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.input.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestServiceRegistryEntrySchema(t *testing.T) {
	valid := model.ServiceRegistryEntry{
		DomainFragment: "js.stripe.com",
		DisplayName:    "Stripe",
		Jurisdiction:   "United States",
		Category:       "Payment Processing",
		RiskTier:       model.RiskCritical,
	}
	if err := valid.Validate(); err != nil {
		t.Errorf("Validate() on valid entry = %v", err)
	}

	missingFragment := valid
	missingFragment.DomainFragment = ""
	if err := missingFragment.Validate(); err == nil {
		t.Error("Validate() accepted empty DomainFragment")
	}

	badTier := valid
	badTier.RiskTier = "Severe"
	if err := badTier.Validate(); err == nil {
		t.Error("Validate() accepted unknown RiskTier")
	}
}

func TestEmptyExtractionIsValid(t *testing.T) {
	ext := model.EmptyExtraction()

	if ext.Vendors == nil {
		t.Error("Vendors must be an empty list, not nil")
	}
	if ext.Company.RegistrationCountry != model.Unknown {
		t.Errorf("RegistrationCountry = %q, want Unknown", ext.Company.RegistrationCountry)
	}
	if ext.Infrastructure.CDNProviders == nil || ext.Compliance.Certifications == nil {
		t.Error("list fields must never be nil")
	}
	if ext.DataFlows.DataResidency != model.Unknown {
		t.Errorf("DataResidency = %q, want Unknown", ext.DataFlows.DataResidency)
	}
}
