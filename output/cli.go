package output

import (
	"fmt"
	"os"
	"strings"

	"sovscan/aggregate"
	"sovscan/model"
	"sovscan/score"
	"sovscan/util"
)

// CLIWriter renders a colored report to stdout.
type CLIWriter struct {
	color *util.Colorizer
}

// NewCLIWriter creates a new CLIWriter.
func NewCLIWriter(colorize bool) *CLIWriter {
	return &CLIWriter{color: util.NewColorizer(colorize)}
}

// Write renders the full analysis report.
func (w *CLIWriter) Write(r *model.AnalysisResult) error {
	out := os.Stdout

	fmt.Fprintf(out, "\n%s\n", w.color.Cyan(r.URL))
	fmt.Fprintf(out, "Sovereignty score: %s  Risk: %s\n", w.scoreLabel(r.Score, r.RiskLevel), w.color.Risk(r.RiskLevel))
	if r.Summary != "" {
		fmt.Fprintf(out, "\n%s\n", r.Summary)
	}

	if len(r.Vendors) > 0 {
		fmt.Fprintf(out, "\nSub-processors (%d):\n", len(r.Vendors))
		for _, v := range r.Vendors {
			fmt.Fprintf(out, "  %s  %s, %s  [%s]  (%s)\n",
				w.color.Green(v.Name), v.Purpose, v.Location, w.color.Risk(v.Risk), w.color.Dim(v.DetectionMethod))
		}
	}

	if groups := aggregate.ServicesByJurisdiction(r.DetectedServices); len(groups) > 0 {
		fmt.Fprintf(out, "\nDetected services by jurisdiction:\n")
		for _, g := range groups {
			fmt.Fprintf(out, "  %s:\n", w.color.Cyan(g.Jurisdiction))
			for _, s := range g.Services {
				line := fmt.Sprintf("    %s (%s) [%s]", s.Name, s.Domain, w.color.Risk(s.RiskTier))
				if len(s.RegionalAlternatives) > 0 {
					line += w.color.Dim(" alternatives: " + strings.Join(s.RegionalAlternatives, ", "))
				}
				fmt.Fprintln(out, line)
			}
		}
	}

	w.factList(out, "Risk factors", r.RiskFactors, w.color.Red)
	w.factList(out, "Positive factors", r.PositiveFactors, w.color.Green)

	if len(r.Vendors) > 0 {
		b := aggregate.VendorBreakdown(r.Vendors, score.EU())
		fmt.Fprintf(out, "\nVendor jurisdictions: %d inside EU, %d outside, %d global, %d unknown\n",
			b.ByJurisdiction[score.BucketInside], b.ByJurisdiction[score.BucketOutside],
			b.ByJurisdiction[score.BucketGlobal], b.ByJurisdiction[score.BucketUnknown])
	}

	fmt.Fprintf(out, "\nInfrastructure: cloud=%s hosting=%s cdn=[%s]\n",
		r.Infrastructure.CloudProvider, r.Infrastructure.HostingPlatform,
		strings.Join(r.Infrastructure.CDNProviders, ", "))
	fmt.Fprintf(out, "Data residency: %s  GDPR: %s\n\n", r.DataFlows.DataResidency, r.Compliance.GDPRStatus)

	return nil
}

func (w *CLIWriter) factList(out *os.File, title string, facts []string, paint func(string) string) {
	if len(facts) == 0 {
		return
	}
	fmt.Fprintf(out, "\n%s:\n", title)
	for _, f := range facts {
		fmt.Fprintf(out, "  %s %s\n", paint("-"), f)
	}
}

func (w *CLIWriter) scoreLabel(score int, level string) string {
	label := fmt.Sprintf("%d/100", score)
	switch level {
	case model.LevelHigh:
		return w.color.Red(label)
	case model.LevelMedium:
		return w.color.Yellow(label)
	default:
		return w.color.Green(label)
	}
}

// Close is a no-op for console output.
func (w *CLIWriter) Close() error { return nil }
