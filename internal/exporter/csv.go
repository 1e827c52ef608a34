package exporter

import (
	"context"
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"

	apperrors "graybook/internal/errors"
	"graybook/pkg/contracts/domain"
)

// facultyCSVHeader is the fixed column layout of the per-person CSV export.
var facultyCSVHeader = []string{
	"Name", "Faculty Type", "Rank", "Full Time", "Joint Appt",
	"Present Salary", "Proposed Salary", "FTE", "Primary Title",
}

// WriteFacultyCSV writes one row per classified faculty member.
func (e *Exporter) WriteFacultyCSV(ctx context.Context, path string, faculty []domain.ClassifiedFaculty) error {
	e.logger.InfoContext(ctx, "writing faculty CSV",
		slog.String("path", path),
		slog.Int("row_count", len(faculty)))

	if err := ensureDir(path); err != nil {
		return apperrors.NewStorageError("failed to create directory for CSV output", err)
	}

	file, err := os.Create(path)
	if err != nil {
		return apperrors.NewStorageError("failed to create CSV output file", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	if err := writer.Write(facultyCSVHeader); err != nil {
		return apperrors.NewStorageError("failed to write CSV header row", err)
	}

	for _, f := range faculty {
		primaryTitle := ""
		if primary := domain.PrimaryPosition(f.Positions); primary != nil {
			primaryTitle = primary.Title
		}
		row := []string{
			f.Name,
			string(f.Track),
			string(f.Rank),
			fmt.Sprintf("%t", f.IsFullTimeHere),
			fmt.Sprintf("%t", f.IsJointAppointment),
			fmt.Sprintf("%.2f", f.TotalPresentSalary),
			fmt.Sprintf("%.2f", f.TotalProposedSalary),
			fmt.Sprintf("%.2f", f.TotalPresentFTE),
			primaryTitle,
		}
		if err := writer.Write(row); err != nil {
			return apperrors.NewStorageError("failed to write CSV data row", err)
		}
	}

	return nil
}
