package parity

import (
	"math"
	"sort"

	"graybook/pkg/contracts/domain"
)

// GroupStats holds the summary statistics for one (track, rank) group.
// Stdev is the population standard deviation (divisor N) and is omitted
// for single-observation groups, where it is undefined.
type GroupStats struct {
	Count  int      `json:"count"`
	Mean   float64  `json:"mean"`
	Median float64  `json:"median"`
	Min    float64  `json:"min"`
	Max    float64  `json:"max"`
	Stdev  *float64 `json:"stdev,omitempty"`
}

// ParityComparison compares the teaching-track and tenure-track groups at
// one rank. Differences are tenure minus teaching; ratio percentages are
// teaching over tenure.
type ParityComparison struct {
	Rank           domain.Rank `json:"rank"`
	TeachingCount  int         `json:"teaching_count"`
	TenureCount    int         `json:"tenure_count"`
	MeanDiff       float64     `json:"mean_diff"`
	MeanDiffPct    float64     `json:"mean_diff_pct"`
	MedianDiff     float64     `json:"median_diff"`
	MedianDiffPct  float64     `json:"median_diff_pct"`
	MeanRatioPct   float64     `json:"mean_ratio_pct"`
	MedianRatioPct float64     `json:"median_ratio_pct"`
}

// NormalizeRank folds fragmented ranks into their comparison buckets:
// senior lecturers group with lecturers, instructors compare with assistant
// professors. Idempotent; it must run on every record before grouping.
func NormalizeRank(rank domain.Rank) domain.Rank {
	switch rank {
	case domain.RankSeniorLecturer:
		return domain.RankLecturer
	case domain.RankInstructor:
		return domain.RankAssistant
	default:
		return rank
	}
}

// Summarize computes the summary statistics for one group of salaries.
// The group must be non-empty.
func Summarize(values []float64) GroupStats {
	stats := GroupStats{Count: len(values)}
	if len(values) == 0 {
		return stats
	}

	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	stats.Min = sorted[0]
	stats.Max = sorted[len(sorted)-1]

	var sum float64
	for _, v := range sorted {
		sum += v
	}
	stats.Mean = sum / float64(len(sorted))
	stats.Median = median(sorted)

	if len(sorted) > 1 {
		var sqSum float64
		for _, v := range sorted {
			d := v - stats.Mean
			sqSum += d * d
		}
		sd := math.Sqrt(sqSum / float64(len(sorted)))
		stats.Stdev = &sd
	}

	return stats
}

// median returns the middle value of a sorted slice, averaging the two
// middle values for even lengths.
func median(sorted []float64) float64 {
	n := len(sorted)
	if n%2 == 1 {
		return sorted[n/2]
	}
	return (sorted[n/2-1] + sorted[n/2]) / 2
}

// CompareParity computes the parity comparison between a teaching-track and
// a tenure-track salary group at the same rank. Both groups must be
// non-empty.
func CompareParity(teaching, tenure []float64) ParityComparison {
	t := Summarize(teaching)
	r := Summarize(tenure)

	return ParityComparison{
		TeachingCount:  t.Count,
		TenureCount:    r.Count,
		MeanDiff:       r.Mean - t.Mean,
		MeanDiffPct:    (r.Mean - t.Mean) / t.Mean * 100,
		MedianDiff:     r.Median - t.Median,
		MedianDiffPct:  (r.Median - t.Median) / t.Median * 100,
		MeanRatioPct:   t.Mean / r.Mean * 100,
		MedianRatioPct: t.Median / r.Median * 100,
	}
}
