// Package classification derives track, rank and appointment flags for a
// faculty member from their position list. Classification is a pure function
// of the positions: no cross-person state, no mutation of the input.
package classification

import (
	"strings"

	"graybook/pkg/contracts/domain"
)

// fullTimeThreshold is the aggregate present FTE at or above which an
// appointment counts as full time in this department.
const fullTimeThreshold = 0.9

// trackRule is one entry of the flat decision list for track derivation.
// Rules are evaluated top-down against the upper-cased primary title;
// the first match wins.
type trackRule struct {
	matches func(title string) bool
	track   domain.Track
}

var trackRules = []trackRule{
	{
		// Teaching-track markers, including the TCH title prefix.
		matches: containsAny("TCH ", "TEACHING", "SR. LECTURER", "SR LECTURER", "LECTURER"),
		track:   domain.TrackTeaching,
	},
	{
		// Research faculty carry RES plus a professorial qualifier.
		matches: func(title string) bool {
			return strings.Contains(title, "RES ") && containsAny("PROF", "ASSOC", "ASST")(title)
		},
		track: domain.TrackResearch,
	},
	{
		matches: containsAny("CLIN", "CLINICAL"),
		track:   domain.TrackClinical,
	},
	{
		// A bare professorial title with none of the above is tenure track.
		matches: containsAny("PROF"),
		track:   domain.TrackTenureTrack,
	},
	{
		matches: containsAny("INSTR"),
		track:   domain.TrackTeaching,
	},
}

// rankRule is one entry of the flat decision list for rank derivation.
type rankRule struct {
	matches func(title string) bool
	rank    domain.Rank
}

var rankRules = []rankRule{
	{containsAny("ASST PROF", "ASSISTANT PROF"), domain.RankAssistant},
	{containsAny("ASSOC PROF", "ASSOCIATE PROF"), domain.RankAssociate},
	// Plain PROF must come after the assistant/associate patterns.
	{containsAny("PROF"), domain.RankFull},
	{func(title string) bool {
		return strings.Contains(title, "SR") && strings.Contains(title, "LECTURER")
	}, domain.RankSeniorLecturer},
	{containsAny("LECTURER"), domain.RankLecturer},
	{containsAny("INSTR"), domain.RankInstructor},
}

// Classify derives the immutable classification for one faculty member.
func Classify(f *domain.FacultyMember) domain.ClassifiedFaculty {
	return domain.ClassifiedFaculty{
		Name:                f.Name,
		Department:          f.Department,
		Track:               TrackOf(f.Positions),
		Rank:                RankOf(f.Positions),
		IsFullTimeHere:      IsFullTimeHere(f.Positions),
		IsJointAppointment:  IsJointAppointment(f.Positions),
		TotalPresentSalary:  f.TotalPresentSalary(),
		TotalProposedSalary: f.TotalProposedSalary(),
		TotalPresentFTE:     f.TotalPresentFTE(),
		Positions:           f.Positions,
	}
}

// TrackOf derives the career track from the primary position's title.
func TrackOf(positions []domain.Position) domain.Track {
	primary := domain.PrimaryPosition(positions)
	if primary == nil {
		return domain.TrackUnknown
	}
	title := strings.ToUpper(primary.Title)
	for _, rule := range trackRules {
		if rule.matches(title) {
			return rule.track
		}
	}
	return domain.TrackOther
}

// RankOf derives the academic rank from the primary position's title.
func RankOf(positions []domain.Position) domain.Rank {
	primary := domain.PrimaryPosition(positions)
	if primary == nil {
		return domain.RankUnknown
	}
	title := strings.ToUpper(primary.Title)
	for _, rule := range rankRules {
		if rule.matches(title) {
			return rule.rank
		}
	}
	return domain.RankOther
}

// IsFullTimeHere reports whether the aggregate present FTE across all
// positions meets the full-time threshold.
func IsFullTimeHere(positions []domain.Position) bool {
	return totalPresentFTE(positions) >= fullTimeThreshold
}

// IsJointAppointment reports whether the appointment looks joint: the
// aggregate FTE falls below the full-time threshold, or the person holds
// no paid position in this department at all.
func IsJointAppointment(positions []domain.Position) bool {
	return totalPresentFTE(positions) < fullTimeThreshold || totalPresentSalary(positions) == 0
}

func totalPresentFTE(positions []domain.Position) float64 {
	var total float64
	for _, p := range positions {
		total += p.PresentFTE
	}
	return total
}

func totalPresentSalary(positions []domain.Position) float64 {
	var total float64
	for _, p := range positions {
		total += p.PresentSalary
	}
	return total
}

// containsAny builds a predicate that reports whether the title contains
// any of the given markers.
func containsAny(markers ...string) func(string) bool {
	return func(title string) bool {
		for _, m := range markers {
			if strings.Contains(title, m) {
				return true
			}
		}
		return false
	}
}
