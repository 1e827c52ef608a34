package parity

import (
	"context"
	"log/slog"
	"sort"

	"graybook/pkg/contracts/domain"
)

// comparisonRankOrder fixes the order groups and comparisons are reported
// in: professorial ranks first, then the lecturer bucket.
var comparisonRankOrder = []domain.Rank{
	domain.RankFull,
	domain.RankAssociate,
	domain.RankAssistant,
	domain.RankLecturer,
}

// Observation is one person's contribution to a salary group.
type Observation struct {
	Name        string  `json:"name"`
	Salary      float64 `json:"salary"`
	TotalSalary float64 `json:"total_salary"`
}

// GroupSummary is the summary for one (track, normalized rank) group,
// with its members sorted by descending salary.
type GroupSummary struct {
	Track   domain.Track  `json:"track"`
	Rank    domain.Rank   `json:"rank"`
	Stats   GroupStats    `json:"stats"`
	Members []Observation `json:"members"`
}

// Analysis is the parity result for one department's classified faculty.
type Analysis struct {
	Groups   []GroupSummary     `json:"groups"`
	Parity   []ParityComparison `json:"parity"`
	Excluded []string           `json:"excluded_split_appointments"`
}

// Analyzer restricts a department's classified faculty to the comparable
// population and computes grouped statistics and parity comparisons.
type Analyzer struct {
	logger *slog.Logger
}

// NewAnalyzer creates an analyzer. A nil logger falls back to slog.Default().
func NewAnalyzer(logger *slog.Logger) *Analyzer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Analyzer{logger: logger}
}

// Analyze runs the appointment filter and statistics engine over a
// classified faculty list. The input is never mutated; only full-time,
// clean, paid teaching- and tenure-track members enter the comparison.
func (a *Analyzer) Analyze(ctx context.Context, faculty []domain.ClassifiedFaculty) *Analysis {
	type groupKey struct {
		track domain.Track
		rank  domain.Rank
	}
	groups := make(map[groupKey][]Observation)
	analysis := &Analysis{}

	for _, f := range faculty {
		if !f.IsFullTimeHere {
			continue
		}
		if !IsCleanAppointment(f.Positions) {
			a.logger.InfoContext(ctx, "excluding split appointment",
				slog.String("name", f.Name),
				slog.String("track", string(f.Track)))
			analysis.Excluded = append(analysis.Excluded, f.Name)
			continue
		}
		if f.Track != domain.TrackTeaching && f.Track != domain.TrackTenureTrack {
			continue
		}
		salary := ComparisonSalary(f.Positions)
		if salary == 0 {
			continue
		}

		key := groupKey{track: f.Track, rank: NormalizeRank(f.Rank)}
		groups[key] = append(groups[key], Observation{
			Name:        f.Name,
			Salary:      salary,
			TotalSalary: f.TotalPresentSalary,
		})
	}

	for _, rank := range comparisonRankOrder {
		for _, track := range []domain.Track{domain.TrackTeaching, domain.TrackTenureTrack} {
			members := groups[groupKey{track: track, rank: rank}]
			if len(members) == 0 {
				continue
			}
			sort.SliceStable(members, func(i, j int) bool {
				return members[i].Salary > members[j].Salary
			})
			summary := GroupSummary{
				Track:   track,
				Rank:    rank,
				Stats:   Summarize(salaries(members)),
				Members: members,
			}
			analysis.Groups = append(analysis.Groups, summary)
		}

		teaching := groups[groupKey{track: domain.TrackTeaching, rank: rank}]
		tenure := groups[groupKey{track: domain.TrackTenureTrack, rank: rank}]
		if len(teaching) > 0 && len(tenure) > 0 {
			comparison := CompareParity(salaries(teaching), salaries(tenure))
			comparison.Rank = rank
			analysis.Parity = append(analysis.Parity, comparison)
		}
	}

	a.logger.InfoContext(ctx, "parity analysis complete",
		slog.Int("groups", len(analysis.Groups)),
		slog.Int("comparisons", len(analysis.Parity)),
		slog.Int("split_appointments", len(analysis.Excluded)))

	return analysis
}

func salaries(members []Observation) []float64 {
	values := make([]float64, len(members))
	for i, m := range members {
		values[i] = m.Salary
	}
	return values
}
