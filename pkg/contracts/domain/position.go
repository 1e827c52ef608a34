package domain

// Position represents a single line-item appointment for a faculty member
// as it appears in the Gray Book: one row of title, codes, FTE fractions
// and salary amounts. Positions are immutable once extracted.
type Position struct {
	Title          string  `json:"title"`
	TenureCode     string  `json:"tenure_code"`
	EmplClass      string  `json:"empl_class"`
	PresentFTE     float64 `json:"present_fte"`
	ProposedFTE    float64 `json:"proposed_fte"`
	PresentSalary  float64 `json:"present_salary"`
	ProposedSalary float64 `json:"proposed_salary"`
}

// FacultyMember is a person extracted from one department section of the
// Gray Book, with one or more positions. Positions are appended while the
// extractor consumes continuation rows, then the value is treated as frozen.
type FacultyMember struct {
	Name       string     `json:"name"`
	Department string     `json:"department"`
	Positions  []Position `json:"positions"`
}

// TotalPresentSalary sums present salary across all positions.
// Totals are always recomputed from the position list, never cached.
func (f *FacultyMember) TotalPresentSalary() float64 {
	var total float64
	for _, p := range f.Positions {
		total += p.PresentSalary
	}
	return total
}

// TotalProposedSalary sums proposed salary across all positions.
func (f *FacultyMember) TotalProposedSalary() float64 {
	var total float64
	for _, p := range f.Positions {
		total += p.ProposedSalary
	}
	return total
}

// TotalPresentFTE sums present FTE across all positions.
func (f *FacultyMember) TotalPresentFTE() float64 {
	var total float64
	for _, p := range f.Positions {
		total += p.PresentFTE
	}
	return total
}

// TotalProposedFTE sums proposed FTE across all positions.
func (f *FacultyMember) TotalProposedFTE() float64 {
	var total float64
	for _, p := range f.Positions {
		total += p.ProposedFTE
	}
	return total
}
