package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"sovscan/analyzer"
	"sovscan/config"
	"sovscan/detect"
	"sovscan/fetch"
	"sovscan/oracle"
	"sovscan/output"
	"sovscan/registry"
	"sovscan/score"
	"sovscan/util"
)

var (
	outputFile   string
	outputFormat string
	timeout      int
	forceColor   bool
	disableColor bool
	verbose      bool
	silent       bool
	showVersion  bool
)

var rootCmd = &cobra.Command{
	Use:   "sovscan [url] [flags]",
	Short: "sovscan analyzes the data-sovereignty posture of a website",
	Long: `sovscan fetches a company website, fingerprints the third-party
services it loads, extracts sovereignty facts from its legal and company
pages, and scores the result against the protected jurisdiction.

Key Features:
- Resource fingerprinting against a curated known-services database.
- Wappalyzer-based infrastructure detection from response headers.
- Optional AI extraction of registration, data-flow, and compliance facts.
- Deterministic, explainable scoring with per-deduction reasons.
- Multiple formats: CLI, JSON, TXT.

Use the literal input "dummy" to render a fixture report without any
network access.
`,
	Args: cobra.MaximumNArgs(1),
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if forceColor {
			util.SetColorEnabled(true)
		} else if disableColor {
			util.SetColorEnabled(false)
		} else {
			util.SetColorEnabled(util.NewColorizer(false).Enabled)
		}

		if verbose {
			util.SetLogLevel(util.LevelDebug)
		} else if silent {
			util.SetLogLevel(util.LevelError)
		}

		if showVersion {
			fmt.Printf("sovscan version: %s\n", config.Version)
			os.Exit(0)
		}

		return nil
	},
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			util.Fatal("No input provided. Use 'sovscan [URL]' or 'sovscan dummy'.")
		}

		cfg := config.Load()
		a := buildAnalyzer(cfg)

		ctx, cancel := context.WithTimeout(context.Background(), time.Duration(timeout)*time.Second)
		defer cancel()

		result, err := a.Analyze(ctx, args[0])
		if err != nil {
			util.Fatal("Analysis failed: %v", err)
		}

		// Terminal report, unless another format is going to stdout.
		if outputFormat == "cli" || outputFile != "" {
			cliWriter := output.NewCLIWriter(!disableColor)
			if err := cliWriter.Write(result); err != nil {
				util.Warn("Error writing to CLI: %v", err)
			}
		}

		if outputFormat != "cli" {
			fileWriter, err := output.New(outputFormat, outputFile, config.Version, false)
			if err != nil {
				util.Fatal("Failed to set up output writer: %v", err)
			}
			if err := fileWriter.Write(result); err != nil {
				util.Warn("Error writing output: %v", err)
			}
			fileWriter.Close()
		}
	},
}

// buildAnalyzer wires the full pipeline from configuration. Missing
// collaborators (no API key, fingerprint init failure) degrade the
// analysis instead of aborting it.
func buildAnalyzer(cfg config.Config) *analyzer.Analyzer {
	reg, err := registry.Load()
	if err != nil {
		util.Fatal("Failed to load known services database: %v", err)
	}

	var orc analyzer.Oracle
	if cfg.GeminiAPIKey != "" {
		orc = oracle.NewAdapter(oracle.NewGeminiClient(cfg.GeminiAPIKey, cfg.GeminiModel), 60*time.Second)
	} else {
		util.Warn("GEMINI_API_KEY not set, running in fingerprint-only mode")
	}

	var infra analyzer.InfraHinter
	if engine, err := detect.NewInfraEngine(); err != nil {
		util.Warn("Infrastructure fingerprinting unavailable: %v", err)
	} else {
		infra = engine
	}

	engine := score.NewEngine(score.EU(), score.Thresholds{
		HighBelow:   cfg.ScoreHighBelow,
		MediumBelow: cfg.ScoreMediumBelow,
	})

	return analyzer.New(fetch.New(), orc, infra, reg, engine)
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	// --mono is an alias for --no-color.
	rootCmd.PersistentFlags().SetNormalizeFunc(func(f *pflag.FlagSet, name string) pflag.NormalizedName {
		if name == "mono" {
			name = "no-color"
		}
		return pflag.NormalizedName(name)
	})

	rootCmd.PersistentFlags().StringVarP(&outputFile, "output", "o", "", "Write output to specified file")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "format", "f", "cli", "Output format: cli, json, txt")

	rootCmd.PersistentFlags().IntVar(&timeout, "timeout", 180, "Overall analysis timeout in seconds")

	rootCmd.PersistentFlags().BoolVar(&forceColor, "color", false, "Force colored CLI output")
	rootCmd.PersistentFlags().BoolVar(&disableColor, "no-color", false, "Disable colored CLI output")
	rootCmd.PersistentFlags().BoolVar(&silent, "silent", false, "Display results only (suppress info logs)")
	rootCmd.PersistentFlags().BoolVar(&showVersion, "version", false, "Show tool version")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose debug logging")
}
