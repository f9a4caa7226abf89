// Package grade holds the fixed letter-grade to grade-point table.
package grade

import "strings"

// Grade is a letter-grade symbol on the 4-point plus/minus scale.
// The zero value means no grade has been entered.
type Grade string

const (
	A      Grade = "A"
	AMinus Grade = "A-"
	BPlus  Grade = "B+"
	B      Grade = "B"
	BMinus Grade = "B-"
	CPlus  Grade = "C+"
	C      Grade = "C"
	CMinus Grade = "C-"
	D      Grade = "D"
	F      Grade = "F"
)

var points = map[Grade]float64{
	A:      4.0,
	AMinus: 3.7,
	BPlus:  3.3,
	B:      3.0,
	BMinus: 2.7,
	CPlus:  2.3,
	C:      2.0,
	CMinus: 1.7,
	D:      1.0,
	F:      0.0,
}

// Point returns the grade-point value of g. ok is false when g is not a
// recognized symbol, including the empty grade.
func Point(g Grade) (float64, bool) {
	p, ok := points[g]
	return p, ok
}

func (g Grade) Valid() bool {
	_, ok := points[g]
	return ok
}

// All returns every recognized grade, best first.
func All() []Grade {
	return []Grade{A, AMinus, BPlus, B, BMinus, CPlus, C, CMinus, D, F}
}

// Parse converts user text into a Grade. Surrounding whitespace is ignored
// and letters are upper-cased, so " b+ " parses as B+.
func Parse(s string) (Grade, bool) {
	g := Grade(strings.ToUpper(strings.TrimSpace(s)))
	if !g.Valid() {
		return "", false
	}
	return g, true
}
