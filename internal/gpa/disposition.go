package gpa

// Disposition says how a course row affects the cumulative record.
type Disposition string

const (
	DispositionNormal  Disposition = "NORMAL"
	DispositionRetake  Disposition = "RETAKE"
	DispositionDropped Disposition = "DROPPED"
)

func (d Disposition) Valid() bool {
	switch d {
	case DispositionNormal, DispositionRetake, DispositionDropped:
		return true
	}
	return false
}

// Disposition resolves the row's flags. Dropped wins over retake.
func (c CourseRecord) Disposition() Disposition {
	switch {
	case c.Dropped:
		return DispositionDropped
	case c.Retake:
		return DispositionRetake
	default:
		return DispositionNormal
	}
}
