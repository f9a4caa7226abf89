package gpa

import (
	"math"

	"github.com/dshills/cgpacalc/internal/grade"
)

// Semester computes the current-term GPA. Dropped rows and incomplete or
// malformed rows are left out. Retake is ignored: a retaken course counts at
// full weight toward the term.
func Semester(courses []CourseRecord) Result {
	var points, credits float64
	for _, c := range courses {
		if c.Dropped {
			continue
		}
		gp, cr, ok := usable(c)
		if !ok {
			continue
		}
		points += gp * cr
		credits += cr
	}
	return average(points, credits)
}

// Cumulative computes the updated CGPA starting from prior.
//
// A dropped row removes its points and credits from the running totals. A
// retake adds points without adding credits, since the credit hours are
// already part of prior.Credits. Any other complete row adds both.
// Rows with an unrecognized grade or an invalid credit are skipped, the same
// as in Semester.
func Cumulative(prior PriorStanding, courses []CourseRecord) Result {
	points := prior.CGPA * prior.Credits
	credits := prior.Credits
	for _, c := range courses {
		gp, cr, ok := usable(c)
		if !ok {
			continue
		}
		switch c.Disposition() {
		case DispositionDropped:
			points -= gp * cr
			credits -= cr
		case DispositionRetake:
			points += gp * cr
		default:
			points += gp * cr
			credits += cr
		}
	}
	return average(points, credits)
}

// Compute runs both aggregations over the same input.
func Compute(prior PriorStanding, courses []CourseRecord) Summary {
	return Summary{
		Semester:   Semester(courses),
		Cumulative: Cumulative(prior, courses),
	}
}

// Counted reports whether c contributes to either aggregation.
func Counted(c CourseRecord) bool {
	_, _, ok := usable(c)
	return ok
}

// usable returns the grade point and credit of a complete, well-formed row.
func usable(c CourseRecord) (gp, credit float64, ok bool) {
	if c.Credit == nil {
		return 0, 0, false
	}
	credit = *c.Credit
	if math.IsNaN(credit) || math.IsInf(credit, 0) || credit < 0 {
		return 0, 0, false
	}
	gp, ok = grade.Point(c.Grade)
	if !ok {
		return 0, 0, false
	}
	return gp, credit, true
}

// average divides points by credits, defining the zero-credit case as 0.
func average(points, credits float64) Result {
	if credits <= 0 {
		return Result{Average: 0, CreditsCounted: credits}
	}
	return Result{Average: points / credits, CreditsCounted: credits}
}
