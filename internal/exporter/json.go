package exporter

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"time"

	apperrors "graybook/internal/errors"
	"graybook/internal/services"
)

// WriteJSON writes the full pipeline result to a JSON file with metadata.
func (e *Exporter) WriteJSON(ctx context.Context, path string, result *services.Result) error {
	e.logger.InfoContext(ctx, "writing result to JSON",
		slog.String("path", path),
		slog.Int("faculty_count", len(result.Snapshot.Faculty)))

	if err := ensureDir(path); err != nil {
		return apperrors.NewStorageError("failed to create directory for JSON output", err)
	}

	payload := map[string]interface{}{
		"department":   result.Snapshot.Department,
		"summary":      result.Snapshot.Summary,
		"faculty":      result.Snapshot.Faculty,
		"analysis":     result.Analysis,
		"generated_at": time.Now().Format(time.RFC3339),
		"format":       "graybook_parity_v1",
	}

	file, err := os.Create(path)
	if err != nil {
		return apperrors.NewStorageError("failed to create JSON output file", err)
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(payload); err != nil {
		return apperrors.NewStorageError("failed to encode result to JSON", err)
	}

	return nil
}
