package parity

import (
	"strings"

	"graybook/pkg/contracts/domain"
)

// facultyClasses is the allow-list of faculty employee-class codes.
// Staff-class rows (BA and friends) are extracted but never compared.
var facultyClasses = map[string]bool{
	"AA": true,
	"AB": true,
	"AL": true,
	"AM": true,
}

// IsFacultyClass reports whether an employee-class code denotes faculty.
func IsFacultyClass(class string) bool {
	return facultyClasses[class]
}

// QualifyingPositions restricts a position list to faculty-class records.
func QualifyingPositions(positions []domain.Position) []domain.Position {
	var qualifying []domain.Position
	for _, p := range positions {
		if facultyClasses[p.EmplClass] {
			qualifying = append(qualifying, p)
		}
	}
	return qualifying
}

// IsCleanAppointment reports whether the qualifying positions imply at most
// one track signal. People whose titles straddle tracks hold split
// appointments and are excluded from the parity comparison.
//
// The signal keywords here are deliberately narrower than the classifier's
// track rules: the filter is conservative about what counts as research or
// teaching so that split roles never slip into the comparison.
func IsCleanAppointment(positions []domain.Position) bool {
	var hasTeaching, hasResearch, hasTenureTrack bool

	for _, p := range QualifyingPositions(positions) {
		title := strings.ToUpper(p.Title)
		if strings.Contains(title, "TCH") || strings.Contains(title, "TEACHING") || strings.Contains(title, "LECTURER") {
			hasTeaching = true
		}
		if strings.Contains(title, "RES ") {
			hasResearch = true
		}
		if strings.Contains(title, "PROF") &&
			!strings.Contains(title, "TCH") &&
			!strings.Contains(title, "RES") &&
			!strings.Contains(title, "TEACHING") {
			hasTenureTrack = true
		}
	}

	signals := 0
	for _, s := range []bool{hasTeaching, hasResearch, hasTenureTrack} {
		if s {
			signals++
		}
	}
	return signals <= 1
}

// ComparisonSalary returns the salary used for the parity comparison: the
// highest present salary among paid qualifying positions. Zero when no
// qualifying position pays, which the positive-salary guard later excludes.
func ComparisonSalary(positions []domain.Position) float64 {
	var best float64
	for _, p := range QualifyingPositions(positions) {
		if p.PresentSalary > best {
			best = p.PresentSalary
		}
	}
	return best
}
