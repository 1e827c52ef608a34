package main

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"graybook/internal/parity"
	"graybook/internal/services"
	"graybook/pkg/contracts/domain"
)

const rule = "======================================================================"

// printReport writes the console parity report: per-rank group statistics
// with parity comparisons, the lecturer section, the overall summary and
// the ranked faculty listings.
func printReport(w io.Writer, result *services.Result) {
	fmt.Fprintln(w, rule)
	fmt.Fprintln(w, "SALARY PARITY ANALYSIS: Teaching vs Tenure-Track Faculty")
	fmt.Fprintln(w, result.Snapshot.Department)
	fmt.Fprintln(w, rule)

	for _, name := range result.Analysis.Excluded {
		fmt.Fprintf(w, "Excluding split appointment: %s\n", name)
	}

	groups := indexGroups(result.Analysis)

	for _, rank := range []domain.Rank{domain.RankFull, domain.RankAssociate, domain.RankAssistant} {
		fmt.Fprintf(w, "\n%s\nRANK: %s PROFESSOR\n%s\n", rule, strings.ToUpper(string(rank)), rule)
		printTrackBlock(w, "Teaching Track", groups[groupID{domain.TrackTeaching, rank}])
		printTrackBlock(w, "Tenure Track", groups[groupID{domain.TrackTenureTrack, rank}])
		printParityBlock(w, result.Analysis, rank)
	}

	if lecturers, ok := groups[groupID{domain.TrackTeaching, domain.RankLecturer}]; ok {
		fmt.Fprintf(w, "\n%s\nLECTURERS (non-professorial teaching track)\n%s\n", rule, rule)
		fmt.Fprintf(w, "\n%d lecturers:\n", lecturers.Stats.Count)
		fmt.Fprintf(w, "  Mean:   $%s\n", money(lecturers.Stats.Mean))
		fmt.Fprintf(w, "  Median: $%s\n", money(lecturers.Stats.Median))
		fmt.Fprintf(w, "  Range:  $%s - $%s\n", money(lecturers.Stats.Min), money(lecturers.Stats.Max))
	}

	printOverallSummary(w, result.Analysis)
}

type groupID struct {
	track domain.Track
	rank  domain.Rank
}

func indexGroups(analysis *parity.Analysis) map[groupID]parity.GroupSummary {
	groups := make(map[groupID]parity.GroupSummary, len(analysis.Groups))
	for _, g := range analysis.Groups {
		groups[groupID{g.Track, g.Rank}] = g
	}
	return groups
}

func printTrackBlock(w io.Writer, label string, group parity.GroupSummary) {
	if group.Stats.Count == 0 {
		fmt.Fprintf(w, "\n%s: No faculty at this rank\n", label)
		return
	}
	fmt.Fprintf(w, "\n%s (%d faculty):\n", label, group.Stats.Count)
	fmt.Fprintf(w, "  Mean:   $%s\n", money(group.Stats.Mean))
	fmt.Fprintf(w, "  Median: $%s\n", money(group.Stats.Median))
	fmt.Fprintf(w, "  Min:    $%s\n", money(group.Stats.Min))
	fmt.Fprintf(w, "  Max:    $%s\n", money(group.Stats.Max))
	if group.Stats.Stdev != nil {
		fmt.Fprintf(w, "  StdDev: $%s\n", money(*group.Stats.Stdev))
	}
}

func printParityBlock(w io.Writer, analysis *parity.Analysis, rank domain.Rank) {
	for _, c := range analysis.Parity {
		if c.Rank != rank {
			continue
		}
		fmt.Fprintln(w, "\n--- PARITY COMPARISON ---")
		fmt.Fprintf(w, "  Mean difference:   $%s (%+.1f%%)\n", money(c.MeanDiff), c.MeanDiffPct)
		fmt.Fprintf(w, "  Median difference: $%s (%+.1f%%)\n", money(c.MedianDiff), c.MedianDiffPct)
		fmt.Fprintf(w, "  Teaching/Tenure ratio: %.2f%% (mean), %.2f%% (median)\n",
			c.MeanRatioPct, c.MedianRatioPct)
		return
	}
}

func printOverallSummary(w io.Writer, analysis *parity.Analysis) {
	teaching := trackMembers(analysis, domain.TrackTeaching)
	tenure := trackMembers(analysis, domain.TrackTenureTrack)

	fmt.Fprintf(w, "\n%s\nOVERALL SUMMARY\n%s\n", rule, rule)
	fmt.Fprintln(w, "\nTotal faculty analyzed:")
	fmt.Fprintf(w, "  Teaching track: %d\n", len(teaching))
	fmt.Fprintf(w, "  Tenure track:   %d\n", len(tenure))

	if len(teaching) > 0 {
		stats := parity.Summarize(observationSalaries(teaching))
		fmt.Fprintln(w, "\nTeaching track overall:")
		fmt.Fprintf(w, "  Mean:   $%s\n", money(stats.Mean))
		fmt.Fprintf(w, "  Median: $%s\n", money(stats.Median))
	}
	if len(tenure) > 0 {
		stats := parity.Summarize(observationSalaries(tenure))
		fmt.Fprintln(w, "\nTenure track overall:")
		fmt.Fprintf(w, "  Mean:   $%s\n", money(stats.Mean))
		fmt.Fprintf(w, "  Median: $%s\n", money(stats.Median))
	}

	printListing(w, "TEACHING TRACK FACULTY (sorted by salary)", teaching, len(teaching))
	printListing(w, "TENURE TRACK FACULTY - TOP 30 (sorted by salary)", tenure, 30)
}

func printListing(w io.Writer, title string, members []parity.Observation, limit int) {
	if len(members) == 0 {
		return
	}
	fmt.Fprintf(w, "\n%s\n%s\n%s\n", rule, title, rule)
	sort.SliceStable(members, func(i, j int) bool { return members[i].Salary > members[j].Salary })
	if limit > len(members) {
		limit = len(members)
	}
	for _, m := range members[:limit] {
		fmt.Fprintf(w, "  %-45s $%12s\n", m.Name, money(m.Salary))
	}
}

func trackMembers(analysis *parity.Analysis, track domain.Track) []parity.Observation {
	var members []parity.Observation
	for _, g := range analysis.Groups {
		if g.Track == track {
			members = append(members, g.Members...)
		}
	}
	return members
}

func observationSalaries(members []parity.Observation) []float64 {
	values := make([]float64, len(members))
	for i, m := range members {
		values[i] = m.Salary
	}
	return values
}

// money formats an amount with thousands separators and cents.
func money(v float64) string {
	neg := v < 0
	if neg {
		v = -v
	}
	s := strconv.FormatFloat(v, 'f', 2, 64)
	dot := strings.Index(s, ".")
	whole, frac := s[:dot], s[dot:]
	for i := len(whole) - 3; i > 0; i -= 3 {
		whole = whole[:i] + "," + whole[i:]
	}
	if neg {
		return "-" + whole + frac
	}
	return whole + frac
}
