package output

import (
	"fmt"
	"io"
	"os"
	"strings"

	"sovscan/aggregate"
	"sovscan/model"
)

// TXTWriter renders a plain text report, suitable for piping or
// archiving. An empty file path writes to stdout.
type TXTWriter struct {
	filePath string
	file     *os.File
}

// NewTXTWriter creates a new TXTWriter.
func NewTXTWriter(filePath string) (*TXTWriter, error) {
	w := &TXTWriter{filePath: filePath}
	if filePath != "" {
		file, err := os.Create(filePath)
		if err != nil {
			return nil, fmt.Errorf("failed to create TXT output file %s: %w", filePath, err)
		}
		w.file = file
	}
	return w, nil
}

// Write renders the report as indented plain text.
func (w *TXTWriter) Write(r *model.AnalysisResult) error {
	var out io.Writer = os.Stdout
	if w.file != nil {
		out = w.file
	}

	fmt.Fprintf(out, "Data Sovereignty Analysis: %s\n", r.URL)
	fmt.Fprintf(out, "Generated: %s\n", r.GeneratedAt.UTC().Format("2006-01-02 15:04:05 UTC"))
	fmt.Fprintf(out, "Score: %d/100 (%s risk)\n\n", r.Score, r.RiskLevel)

	if r.Summary != "" {
		fmt.Fprintf(out, "Summary:\n  %s\n\n", r.Summary)
	}

	fmt.Fprintf(out, "Sub-processors (%d):\n", len(r.Vendors))
	for _, v := range r.Vendors {
		fmt.Fprintf(out, "  - %s | %s | %s | %s | %s\n", v.Name, v.Purpose, v.Location, v.Risk, v.DetectionMethod)
	}
	fmt.Fprintln(out)

	for _, g := range aggregate.ServicesByJurisdiction(r.DetectedServices) {
		fmt.Fprintf(out, "Services in %s:\n", g.Jurisdiction)
		for _, s := range g.Services {
			fmt.Fprintf(out, "  - %s (%s) risk=%s", s.Name, s.Domain, s.RiskTier)
			if len(s.RegionalAlternatives) > 0 {
				fmt.Fprintf(out, " alternatives=%s", strings.Join(s.RegionalAlternatives, ","))
			}
			fmt.Fprintln(out)
		}
	}

	writeFactSection(out, "Risk factors", r.RiskFactors)
	writeFactSection(out, "Positive factors", r.PositiveFactors)

	fmt.Fprintf(out, "\nCompany: registered in %s (%s)\n", r.Company.RegistrationCountry, r.Company.LegalEntity)
	fmt.Fprintf(out, "Cloud: %s | Hosting: %s | CDN: %s\n",
		r.Infrastructure.CloudProvider, r.Infrastructure.HostingPlatform,
		strings.Join(r.Infrastructure.CDNProviders, ", "))
	fmt.Fprintf(out, "Data residency: %s | GDPR: %s\n", r.DataFlows.DataResidency, r.Compliance.GDPRStatus)

	return nil
}

func writeFactSection(out io.Writer, title string, facts []string) {
	if len(facts) == 0 {
		return
	}
	fmt.Fprintf(out, "\n%s:\n", title)
	for _, f := range facts {
		fmt.Fprintf(out, "  - %s\n", f)
	}
}

// Close closes the underlying file when one is open.
func (w *TXTWriter) Close() error {
	if w.file != nil {
		return w.file.Close()
	}
	return nil
}
