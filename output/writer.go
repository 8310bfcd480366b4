package output

import (
	"fmt"

	"sovscan/model"
)

// Writer defines the interface for rendering a completed analysis.
type Writer interface {
	Write(result *model.AnalysisResult) error
	Close() error
}

// New creates a writer for the requested format. filePath is ignored by
// the cli format, which always renders to stdout.
func New(format, filePath, version string, colorize bool) (Writer, error) {
	switch format {
	case "cli", "":
		return NewCLIWriter(colorize), nil
	case "json":
		return NewJSONWriter(filePath, version)
	case "txt":
		return NewTXTWriter(filePath)
	default:
		return nil, fmt.Errorf("unsupported output format: %s (use cli, json, or txt)", format)
	}
}
