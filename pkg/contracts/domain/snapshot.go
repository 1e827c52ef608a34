package domain

// SummaryCounts tallies the classified faculty of one department by track,
// with full-time subtotals for the two tracks the parity analysis compares.
type SummaryCounts struct {
	TotalFaculty          int `json:"total_faculty"`
	TeachingTrack         int `json:"teaching_track"`
	TeachingTrackFullTime int `json:"teaching_track_fulltime"`
	TenureTrack           int `json:"tenure_track"`
	TenureTrackFullTime   int `json:"tenure_track_fulltime"`
	Research              int `json:"research"`
	Clinical              int `json:"clinical"`
	Other                 int `json:"other"`
}

// DepartmentSnapshot is the terminal artifact of the core pipeline: one
// department's display name, count summary, and the reconciled classified
// faculty list in document order.
type DepartmentSnapshot struct {
	Department string              `json:"department"`
	Summary    SummaryCounts       `json:"summary"`
	Faculty    []ClassifiedFaculty `json:"faculty"`
}

// NewSummaryCounts tallies a classified faculty list.
func NewSummaryCounts(faculty []ClassifiedFaculty) SummaryCounts {
	var s SummaryCounts
	s.TotalFaculty = len(faculty)
	for _, f := range faculty {
		switch f.Track {
		case TrackTeaching:
			s.TeachingTrack++
			if f.IsFullTimeHere {
				s.TeachingTrackFullTime++
			}
		case TrackTenureTrack:
			s.TenureTrack++
			if f.IsFullTimeHere {
				s.TenureTrackFullTime++
			}
		case TrackResearch:
			s.Research++
		case TrackClinical:
			s.Clinical++
		default:
			s.Other++
		}
	}
	return s
}
