package domain

// Track identifies the career track a faculty member belongs to,
// derived from the title of their primary position.
type Track string

const (
	TrackTeaching    Track = "teaching"
	TrackResearch    Track = "research"
	TrackClinical    Track = "clinical"
	TrackTenureTrack Track = "tenure_track"
	TrackOther       Track = "other"
	TrackUnknown     Track = "unknown"
)

// Rank identifies the academic rank derived from the primary position title.
type Rank string

const (
	RankAssistant      Rank = "assistant"
	RankAssociate      Rank = "associate"
	RankFull           Rank = "full"
	RankSeniorLecturer Rank = "senior_lecturer"
	RankLecturer       Rank = "lecturer"
	RankInstructor     Rank = "instructor"
	RankOther          Rank = "other"
	RankUnknown        Rank = "unknown"
)

// ClassifiedFaculty is the immutable classification result for one
// FacultyMember. Exactly one ClassifiedFaculty is derived per member;
// all fields are functions of the position list alone.
type ClassifiedFaculty struct {
	Name                string     `json:"name"`
	Department          string     `json:"department"`
	Track               Track      `json:"faculty_type"`
	Rank                Rank       `json:"rank"`
	IsFullTimeHere      bool       `json:"is_full_time_here"`
	IsJointAppointment  bool       `json:"is_joint_appointment"`
	TotalPresentSalary  float64    `json:"total_present_salary"`
	TotalProposedSalary float64    `json:"total_proposed_salary"`
	TotalPresentFTE     float64    `json:"total_present_fte"`
	Positions           []Position `json:"positions"`
}

// PrimaryPosition returns the position with the highest nonzero present
// salary, falling back to the first position when every salary is zero.
// Returns nil only for an empty position list.
func PrimaryPosition(positions []Position) *Position {
	if len(positions) == 0 {
		return nil
	}
	var best *Position
	for i := range positions {
		p := &positions[i]
		if p.PresentSalary <= 0 {
			continue
		}
		if best == nil || p.PresentSalary > best.PresentSalary {
			best = p
		}
	}
	if best == nil {
		return &positions[0]
	}
	return best
}
