// Package report defines the calculation report and its encodings.
package report

import (
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/dshills/cgpacalc/internal/gpa"
	"github.com/dshills/cgpacalc/internal/sheet"
)

// Report is the top-level output object.
type Report struct {
	Tool        string            `json:"tool" yaml:"tool"`
	Version     string            `json:"version" yaml:"version"`
	ID          string            `json:"id" yaml:"id"`
	GeneratedAt time.Time         `json:"generated_at" yaml:"generated_at"`
	Input       Input             `json:"input" yaml:"input"`
	Prior       gpa.PriorStanding `json:"prior" yaml:"prior"`
	Semester    gpa.Result        `json:"semester" yaml:"semester"`
	Cumulative  gpa.Result        `json:"cumulative" yaml:"cumulative"`
	Courses     []Line            `json:"courses" yaml:"courses"`
	Warnings    []sheet.Issue     `json:"warnings,omitempty" yaml:"warnings,omitempty"`
}

// Input describes the sheet the report was computed from.
type Input struct {
	File    string `json:"file" yaml:"file"`
	Hash    string `json:"hash" yaml:"hash"`
	Format  string `json:"format" yaml:"format"`
	Courses int    `json:"courses" yaml:"courses"`
	Counted int    `json:"counted" yaml:"counted"`
}

// Line is one course row as it was treated by the calculation.
type Line struct {
	Name        string          `json:"name,omitempty" yaml:"name,omitempty"`
	Grade       string          `json:"grade" yaml:"grade"`
	Credit      *float64        `json:"credit" yaml:"credit"`
	Disposition gpa.Disposition `json:"disposition" yaml:"disposition"`
	Counted     bool            `json:"counted" yaml:"counted"`
}

// Meta identifies the tool producing the report.
type Meta struct {
	Tool    string
	Version string
}

// Build assembles a report for a sheet and the prior standing actually used.
func Build(s *sheet.Sheet, prior gpa.PriorStanding, meta Meta) *Report {
	sum := gpa.Compute(prior, s.Courses)

	r := &Report{
		Tool:        meta.Tool,
		Version:     meta.Version,
		ID:          uuid.New().String(),
		GeneratedAt: time.Now().UTC(),
		Input: Input{
			File:    filepath.Base(s.FilePath),
			Hash:    s.Hash,
			Format:  string(s.Format),
			Courses: len(s.Courses),
		},
		Prior:      prior,
		Semester:   sum.Semester,
		Cumulative: sum.Cumulative,
		Courses:    make([]Line, 0, len(s.Courses)),
		Warnings:   s.Issues,
	}
	for _, c := range s.Courses {
		counted := gpa.Counted(c)
		if counted {
			r.Input.Counted++
		}
		r.Courses = append(r.Courses, Line{
			Name:        c.Name,
			Grade:       string(c.Grade),
			Credit:      c.Credit,
			Disposition: c.Disposition(),
			Counted:     counted,
		})
	}
	return r
}
