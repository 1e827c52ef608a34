package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"graybook/internal/config"
	apperrors "graybook/internal/errors"
	"graybook/internal/exporter"
	"graybook/internal/infrastructure"
	"graybook/internal/services"
)

func main() {
	configFile := flag.String("config", "config.yaml", "path to YAML configuration file")
	reportPath := flag.String("report", "", "path to the Gray Book HTML report (overrides config)")
	deptCode := flag.String("dept", "", "department code to analyze (overrides config)")
	listDepartments := flag.Bool("list-departments", false, "list the departments in the report and exit")
	skipExports := flag.Bool("no-export", false, "print the console report only")
	flag.Parse()

	if *listDepartments && *reportPath != "" {
		// Discovery mode works from the report alone; no department
		// selector or config file is needed to browse what is in it.
		if err := runListDepartments(os.Stdout, *reportPath, infrastructure.GetLogger()); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	cfg, err := config.Load(*configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to load config: %v\n", err)
		os.Exit(1)
	}
	if *reportPath != "" {
		cfg.Report.Path = *reportPath
	}
	if *deptCode != "" {
		cfg.Department.Code = *deptCode
	}

	if *listDepartments {
		if err := runListDepartments(os.Stdout, cfg.Report.Path, infrastructure.GetLogger()); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to initialize logger, using default: %v\n", err)
		logger = slog.Default()
	}
	defer infrastructure.CloseLogFile()

	ctx := context.Background()

	result, err := services.NewPipeline(cfg, logger).Run(ctx)
	if err != nil {
		logger.Error("pipeline failed", slog.String("error", err.Error()))
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		if apperrors.IsType(err, apperrors.ErrTypeNotFound) {
			fmt.Fprintln(os.Stderr, "Run with -list-departments to see the departments in the report.")
		}
		os.Exit(1)
	}

	printReport(os.Stdout, result)

	if *skipExports {
		return
	}

	exp := exporter.NewExporter(logger)
	jsonPath := filepath.Join(cfg.Export.Dir, cfg.Export.JSONFile)
	csvPath := filepath.Join(cfg.Export.Dir, cfg.Export.CSVFile)
	workbookPath := filepath.Join(cfg.Export.Dir, cfg.Export.WorkbookFile)

	if err := exp.WriteJSON(ctx, jsonPath, result); err != nil {
		logger.Error("JSON export failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
	if err := exp.WriteFacultyCSV(ctx, csvPath, result.Snapshot.Faculty); err != nil {
		logger.Error("CSV export failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
	if err := exp.WriteParityWorkbook(ctx, workbookPath, result.Analysis); err != nil {
		logger.Error("workbook export failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	fmt.Printf("\nSaved %s, %s and %s\n", jsonPath, csvPath, workbookPath)
}
