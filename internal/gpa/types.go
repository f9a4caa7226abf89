// Package gpa folds course records into term GPA and cumulative GPA.
package gpa

import "github.com/dshills/cgpacalc/internal/grade"

// CourseRecord is one course row for the current term.
// An empty Grade or nil Credit marks the row as not yet entered.
type CourseRecord struct {
	Name    string      `json:"name,omitempty" yaml:"name,omitempty"`
	Grade   grade.Grade `json:"grade" yaml:"grade"`
	Credit  *float64    `json:"credit" yaml:"credit"`
	Retake  bool        `json:"retake" yaml:"retake"`
	Dropped bool        `json:"dropped" yaml:"dropped"`
}

// PriorStanding is the cumulative record before the current term.
type PriorStanding struct {
	CGPA    float64 `json:"cgpa" yaml:"cgpa"`
	Credits float64 `json:"credits" yaml:"credits"`
}

// Result is a weighted average and the credit total used as its denominator.
type Result struct {
	Average        float64 `json:"average" yaml:"average"`
	CreditsCounted float64 `json:"credits_counted" yaml:"credits_counted"`
}

// Summary pairs the term and cumulative results of one computation.
type Summary struct {
	Semester   Result `json:"semester" yaml:"semester"`
	Cumulative Result `json:"cumulative" yaml:"cumulative"`
}

// Hours returns a pointer to c for building CourseRecord values.
func Hours(c float64) *float64 {
	return &c
}

// Standing returns r as the prior standing for a later term.
func (r Result) Standing() PriorStanding {
	return PriorStanding{CGPA: r.Average, Credits: r.CreditsCounted}
}
