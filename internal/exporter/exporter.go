// Package exporter serializes pipeline results to JSON, CSV and XLSX.
// The core pipeline produces pure values; everything file-shaped lives here.
package exporter

import (
	"log/slog"
	"os"
	"path/filepath"
)

// Exporter writes pipeline results to disk.
type Exporter struct {
	logger *slog.Logger
}

// NewExporter creates an exporter. A nil logger falls back to slog.Default().
func NewExporter(logger *slog.Logger) *Exporter {
	if logger == nil {
		logger = slog.Default()
	}
	return &Exporter{logger: logger}
}

// ensureDir creates the parent directory of path.
func ensureDir(path string) error {
	return os.MkdirAll(filepath.Dir(path), 0755)
}
