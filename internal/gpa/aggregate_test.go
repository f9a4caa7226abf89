package gpa

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/cgpacalc/internal/grade"
)

const tolerance = 1e-9

func course(g grade.Grade, credit float64) CourseRecord {
	return CourseRecord{Grade: g, Credit: Hours(credit)}
}

func retake(g grade.Grade, credit float64) CourseRecord {
	c := course(g, credit)
	c.Retake = true
	return c
}

func dropped(g grade.Grade, credit float64) CourseRecord {
	c := course(g, credit)
	c.Dropped = true
	return c
}

func assertResult(t *testing.T, got Result, wantAvg, wantCredits float64) {
	t.Helper()
	assert.InDelta(t, wantAvg, got.Average, tolerance, "average")
	assert.InDelta(t, wantCredits, got.CreditsCounted, tolerance, "credits counted")
}

// --- Semester tests ---

func TestSemesterEmpty(t *testing.T) {
	assert.Equal(t, Result{}, Semester(nil))
	assert.Equal(t, Result{}, Semester([]CourseRecord{}))
}

func TestSemesterAllDropped(t *testing.T) {
	courses := []CourseRecord{dropped(grade.A, 3), dropped(grade.B, 4), dropped(grade.F, 1)}
	assert.Equal(t, Result{}, Semester(courses))
}

func TestSemesterIgnoresRetake(t *testing.T) {
	plain := Semester([]CourseRecord{course(grade.C, 3), course(grade.A, 3)})
	withRetake := Semester([]CourseRecord{retake(grade.C, 3), course(grade.A, 3)})
	assert.Equal(t, plain, withRetake)
	assertResult(t, withRetake, 3.0, 6)
}

func TestSemesterSkipsMalformedRows(t *testing.T) {
	courses := []CourseRecord{
		course(grade.A, 3),
		{Grade: "", Credit: Hours(3)},
		{Grade: grade.B, Credit: nil},
		{Grade: "Z", Credit: Hours(4)},
		course(grade.B, -2),
		course(grade.B, math.NaN()),
		course(grade.B, math.Inf(1)),
	}
	assertResult(t, Semester(courses), 4.0, 3)
}

func TestSemesterZeroCreditCourse(t *testing.T) {
	got := Semester([]CourseRecord{course(grade.A, 0)})
	assert.Equal(t, Result{}, got)
	assert.False(t, math.IsNaN(got.Average))
}

// --- Cumulative tests ---

func TestCumulativeEmpty(t *testing.T) {
	tests := []struct {
		name        string
		prior       PriorStanding
		wantAvg     float64
		wantCredits float64
	}{
		{"with prior credits", PriorStanding{CGPA: 3.25, Credits: 40}, 3.25, 40},
		{"no prior credits", PriorStanding{CGPA: 3.25, Credits: 0}, 0, 0},
		{"zero standing", PriorStanding{}, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertResult(t, Cumulative(tt.prior, nil), tt.wantAvg, tt.wantCredits)
		})
	}
}

func TestCumulativeRetakeKeepsCredits(t *testing.T) {
	prior := PriorStanding{CGPA: 2.8, Credits: 45}
	for _, g := range grade.All() {
		t.Run(string(g), func(t *testing.T) {
			gp, _ := grade.Point(g)
			got := Cumulative(prior, []CourseRecord{retake(g, 3)})
			assertResult(t, got, (2.8*45+gp*3)/45, 45)
		})
	}
}

func TestCumulativeDropReversesNormal(t *testing.T) {
	prior := PriorStanding{CGPA: 3.1, Credits: 62}
	for _, g := range grade.All() {
		t.Run(string(g), func(t *testing.T) {
			added := Cumulative(prior, []CourseRecord{course(g, 4)})
			require.InDelta(t, 66, added.CreditsCounted, tolerance)

			back := Cumulative(added.Standing(), []CourseRecord{dropped(g, 4)})
			assertResult(t, back, prior.CGPA, prior.Credits)
		})
	}
}

func TestCumulativeDroppedWinsOverRetake(t *testing.T) {
	prior := PriorStanding{CGPA: 3.0, Credits: 20}
	both := course(grade.B, 3)
	both.Retake = true
	both.Dropped = true

	assert.Equal(t, DispositionDropped, both.Disposition())
	assert.Equal(t, Cumulative(prior, []CourseRecord{dropped(grade.B, 3)}), Cumulative(prior, []CourseRecord{both}))
	assertResult(t, Cumulative(prior, []CourseRecord{both}), 3.0, 17)
}

func TestCumulativeSkipsIncompleteRows(t *testing.T) {
	prior := PriorStanding{CGPA: 3.0, Credits: 10}
	courses := []CourseRecord{
		{Grade: "", Credit: Hours(3), Dropped: true},
		{Grade: grade.A, Credit: nil, Retake: true},
		{Grade: "", Credit: nil},
	}
	assertResult(t, Cumulative(prior, courses), 3.0, 10)
}

func TestCumulativeSkipsUnrecognizedGrade(t *testing.T) {
	prior := PriorStanding{CGPA: 3.0, Credits: 10}
	got := Cumulative(prior, []CourseRecord{{Grade: "A+", Credit: Hours(3)}})
	assertResult(t, got, 3.0, 10)
}

func TestCumulativeDropToZeroCredits(t *testing.T) {
	prior := PriorStanding{CGPA: 4.0, Credits: 3}
	got := Cumulative(prior, []CourseRecord{dropped(grade.A, 3)})
	assert.Equal(t, 0.0, got.Average)
	assert.InDelta(t, 0, got.CreditsCounted, tolerance)
}

// --- Scenarios ---

func TestScenarioMixedTerm(t *testing.T) {
	courses := []CourseRecord{course(grade.A, 3), course(grade.B, 4)}
	prior := PriorStanding{CGPA: 3.0, Credits: 30}

	s := Compute(prior, courses)
	assertResult(t, s.Semester, 24.0/7, 7)
	assertResult(t, s.Cumulative, 114.0/37, 37)
	assert.InDelta(t, 3.43, s.Semester.Average, 0.005)
	assert.InDelta(t, 3.08, s.Cumulative.Average, 0.005)
}

func TestScenarioRetake(t *testing.T) {
	got := Cumulative(PriorStanding{CGPA: 2.5, Credits: 10}, []CourseRecord{retake(grade.C, 3)})
	assertResult(t, got, 3.1, 10)
}

func TestScenarioDropped(t *testing.T) {
	got := Cumulative(PriorStanding{CGPA: 2.0, Credits: 10}, []CourseRecord{dropped(grade.F, 3)})
	assertResult(t, got, 20.0/7, 7)
}

func TestScenarioBlankFields(t *testing.T) {
	prior := PriorStanding{CGPA: 3.5, Credits: 12}
	rows := []CourseRecord{
		{Grade: "", Credit: Hours(3)},
		{Grade: "", Credit: Hours(3), Retake: true},
		{Grade: grade.A, Credit: nil, Dropped: true},
	}
	s := Compute(prior, rows)
	assert.Equal(t, Result{}, s.Semester)
	assertResult(t, s.Cumulative, 3.5, 12)
}

func TestOrderIndependence(t *testing.T) {
	prior := PriorStanding{CGPA: 3.2, Credits: 50}
	courses := []CourseRecord{
		course(grade.A, 3),
		course(grade.BMinus, 4),
		retake(grade.CPlus, 3),
		dropped(grade.D, 2),
		course(grade.F, 1),
		{Grade: "", Credit: Hours(3)},
		course(grade.AMinus, 1.5),
	}
	want := Compute(prior, courses)

	r := rand.New(rand.NewSource(7))
	for i := 0; i < 20; i++ {
		shuffled := make([]CourseRecord, len(courses))
		copy(shuffled, courses)
		r.Shuffle(len(shuffled), func(a, b int) { shuffled[a], shuffled[b] = shuffled[b], shuffled[a] })

		got := Compute(prior, shuffled)
		assertResult(t, got.Semester, want.Semester.Average, want.Semester.CreditsCounted)
		assertResult(t, got.Cumulative, want.Cumulative.Average, want.Cumulative.CreditsCounted)
	}
}

func TestInputNotMutated(t *testing.T) {
	courses := []CourseRecord{course(grade.A, 3), dropped(grade.B, 4)}
	credit := *courses[0].Credit
	Compute(PriorStanding{CGPA: 3, Credits: 10}, courses)
	assert.Equal(t, credit, *courses[0].Credit)
	assert.True(t, courses[1].Dropped)
}

func TestCounted(t *testing.T) {
	assert.True(t, Counted(course(grade.A, 3)))
	assert.True(t, Counted(dropped(grade.A, 3)))
	assert.False(t, Counted(CourseRecord{Grade: grade.A}))
	assert.False(t, Counted(CourseRecord{Credit: Hours(3)}))
	assert.False(t, Counted(course("Q", 3)))
}

func TestDispositionValid(t *testing.T) {
	for _, d := range []Disposition{DispositionNormal, DispositionRetake, DispositionDropped} {
		assert.True(t, d.Valid(), "%q should be valid", d)
	}
	assert.False(t, Disposition("WITHDRAWN").Valid())
}

func TestDisposition(t *testing.T) {
	assert.Equal(t, DispositionNormal, course(grade.A, 3).Disposition())
	assert.Equal(t, DispositionRetake, retake(grade.A, 3).Disposition())
	assert.Equal(t, DispositionDropped, dropped(grade.A, 3).Disposition())
}
