package output

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"sovscan/model"
)

// JSONWriter writes the analysis as a JSON document with a meta
// envelope. An empty file path writes to stdout.
type JSONWriter struct {
	filePath string
	version  string
}

// NewJSONWriter creates a new JSONWriter.
func NewJSONWriter(filePath, version string) (*JSONWriter, error) {
	return &JSONWriter{filePath: filePath, version: version}, nil
}

type jsonReport struct {
	Meta   model.Meta            `json:"meta"`
	Result *model.AnalysisResult `json:"result"`
}

// Write encodes the report envelope.
func (w *JSONWriter) Write(r *model.AnalysisResult) error {
	report := jsonReport{
		Meta: model.Meta{
			Tool:        "sovscan",
			Version:     w.version,
			GeneratedAt: time.Now().UTC(),
			Format:      "json",
		},
		Result: r,
	}

	out := os.Stdout
	if w.filePath != "" {
		file, err := os.Create(w.filePath)
		if err != nil {
			return fmt.Errorf("failed to create JSON output file %s: %w", w.filePath, err)
		}
		defer file.Close()
		out = file
	}

	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(report); err != nil {
		return fmt.Errorf("failed to encode JSON report: %w", err)
	}
	return nil
}

// Close is a no-op; Write flushes everything.
func (w *JSONWriter) Close() error { return nil }
