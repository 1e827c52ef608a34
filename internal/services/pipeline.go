// Package services wires the extraction, classification, reconciliation and
// parity stages into the single batch pipeline the commands run. Data flows
// strictly forward; each stage consumes the complete output of its
// predecessor and no stage mutates another's output.
package services

import (
	"context"
	"log/slog"

	"graybook/internal/classification"
	"graybook/internal/config"
	"graybook/internal/graybook"
	"graybook/internal/parity"
	"graybook/internal/roster"
	"graybook/pkg/contracts/domain"
)

// Result is the terminal artifact of one pipeline run.
type Result struct {
	DeptID   string                    `json:"dept_id"`
	Snapshot domain.DepartmentSnapshot `json:"snapshot"`
	Analysis *parity.Analysis          `json:"analysis"`
}

// Pipeline runs the full stateless batch pass over one Gray Book document.
type Pipeline struct {
	cfg    *config.Config
	logger *slog.Logger
}

// NewPipeline creates a pipeline. A nil logger falls back to slog.Default().
func NewPipeline(cfg *config.Config, logger *slog.Logger) *Pipeline {
	if logger == nil {
		logger = slog.Default()
	}
	return &Pipeline{cfg: cfg, logger: logger}
}

// Run extracts the configured report, resolves the target department,
// classifies and reconciles its faculty, and computes the parity analysis.
// Only members whose primary position carries a faculty employee class
// enter the snapshot; staff rows are extracted but never counted.
// A department that cannot be resolved is fatal; everything else recovers.
func (p *Pipeline) Run(ctx context.Context) (*Result, error) {
	parser := graybook.NewParser(p.logger)
	doc, err := parser.ParseFile(p.cfg.Report.Path)
	if err != nil {
		return nil, err
	}

	deptID, members, err := doc.FindDepartment(p.cfg.Department)
	if err != nil {
		return nil, err
	}
	p.logger.InfoContext(ctx, "resolved department",
		slog.String("dept_id", deptID),
		slog.String("name", doc.DepartmentName(deptID)),
		slog.Int("entries", len(members)))

	reconciler, err := p.buildReconciler()
	if err != nil {
		return nil, err
	}

	faculty := make([]domain.ClassifiedFaculty, 0, len(members))
	for _, m := range members {
		primary := domain.PrimaryPosition(m.Positions)
		if primary == nil || !parity.IsFacultyClass(primary.EmplClass) {
			p.logger.DebugContext(ctx, "excluding staff-class entry",
				slog.String("name", m.Name))
			continue
		}
		if reconciler != nil && !reconciler.IsIncluded(m.Name) {
			p.logger.InfoContext(ctx, "excluding name not on roster",
				slog.String("name", m.Name))
			continue
		}
		faculty = append(faculty, classification.Classify(m))
	}

	snapshot := domain.DepartmentSnapshot{
		Department: doc.DepartmentName(deptID),
		Summary:    domain.NewSummaryCounts(faculty),
		Faculty:    faculty,
	}

	analysis := parity.NewAnalyzer(p.logger).Analyze(ctx, faculty)

	return &Result{
		DeptID:   deptID,
		Snapshot: snapshot,
		Analysis: analysis,
	}, nil
}

// buildReconciler constructs the roster reconciler from configuration.
// With no roster file and no overrides configured, reconciliation is
// disabled and every extracted name is kept.
func (p *Pipeline) buildReconciler() (*roster.Reconciler, error) {
	if p.cfg.Roster.Path == "" && len(p.cfg.Roster.Overrides) == 0 {
		p.logger.Warn("no roster configured, reconciliation disabled")
		return nil, nil
	}

	var names []string
	if p.cfg.Roster.Path != "" {
		var err error
		names, err = roster.LoadRoster(p.cfg.Roster.Path)
		if err != nil {
			return nil, err
		}
	}
	return roster.NewReconciler(names, p.cfg.Roster.Overrides, p.cfg.Roster.ExcludeMarker, p.logger), nil
}
