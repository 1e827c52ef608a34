package exporter

import (
	"context"
	"log/slog"

	"github.com/xuri/excelize/v2"

	apperrors "graybook/internal/errors"
	"graybook/internal/parity"
)

const (
	groupsSheet = "Groups"
	paritySheet = "Parity"
)

// WriteParityWorkbook writes the grouped statistics and parity comparisons
// to an Excel workbook, one sheet per table.
func (e *Exporter) WriteParityWorkbook(ctx context.Context, path string, analysis *parity.Analysis) error {
	e.logger.InfoContext(ctx, "writing parity workbook",
		slog.String("path", path),
		slog.Int("groups", len(analysis.Groups)),
		slog.Int("comparisons", len(analysis.Parity)))

	if err := ensureDir(path); err != nil {
		return apperrors.NewStorageError("failed to create directory for workbook output", err)
	}

	f := excelize.NewFile()
	defer f.Close()

	f.SetSheetName(f.GetSheetName(0), groupsSheet)
	if _, err := f.NewSheet(paritySheet); err != nil {
		return apperrors.NewStorageError("failed to create parity sheet", err)
	}

	if err := writeGroupsSheet(f, analysis); err != nil {
		return err
	}
	if err := writeParitySheet(f, analysis); err != nil {
		return err
	}

	if err := f.SaveAs(path); err != nil {
		return apperrors.NewStorageError("failed to save parity workbook", err)
	}
	return nil
}

func writeGroupsSheet(f *excelize.File, analysis *parity.Analysis) error {
	header := []interface{}{"Track", "Rank", "Count", "Mean", "Median", "Min", "Max", "Stdev"}
	if err := f.SetSheetRow(groupsSheet, "A1", &header); err != nil {
		return apperrors.NewStorageError("failed to write groups header", err)
	}

	for i, g := range analysis.Groups {
		row := []interface{}{
			string(g.Track), string(g.Rank), g.Stats.Count,
			g.Stats.Mean, g.Stats.Median, g.Stats.Min, g.Stats.Max,
		}
		if g.Stats.Stdev != nil {
			row = append(row, *g.Stats.Stdev)
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return apperrors.NewStorageError("failed to compute groups cell", err)
		}
		if err := f.SetSheetRow(groupsSheet, cell, &row); err != nil {
			return apperrors.NewStorageError("failed to write groups row", err)
		}
	}
	return nil
}

func writeParitySheet(f *excelize.File, analysis *parity.Analysis) error {
	header := []interface{}{
		"Rank", "Teaching N", "Tenure N",
		"Mean Diff", "Mean Diff %", "Median Diff", "Median Diff %",
		"Mean Ratio %", "Median Ratio %",
	}
	if err := f.SetSheetRow(paritySheet, "A1", &header); err != nil {
		return apperrors.NewStorageError("failed to write parity header", err)
	}

	for i, c := range analysis.Parity {
		row := []interface{}{
			string(c.Rank), c.TeachingCount, c.TenureCount,
			c.MeanDiff, c.MeanDiffPct, c.MedianDiff, c.MedianDiffPct,
			c.MeanRatioPct, c.MedianRatioPct,
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return apperrors.NewStorageError("failed to compute parity cell", err)
		}
		if err := f.SetSheetRow(paritySheet, cell, &row); err != nil {
			return apperrors.NewStorageError("failed to write parity row", err)
		}
	}
	return nil
}
