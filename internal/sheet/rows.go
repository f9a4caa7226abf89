package sheet

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dshills/cgpacalc/internal/gpa"
	"github.com/dshills/cgpacalc/internal/grade"
)

// Column names recognized in CSV and XLSX header rows.
const (
	ColName    = "name"
	ColGrade   = "grade"
	ColCredit  = "credit"
	ColRetake  = "retake"
	ColDropped = "dropped"
)

var headerAliases = map[string]string{
	"name":         ColName,
	"course":       ColName,
	"title":        ColName,
	"grade":        ColGrade,
	"letter":       ColGrade,
	"credit":       ColCredit,
	"credits":      ColCredit,
	"credit hours": ColCredit,
	"hours":        ColCredit,
	"retake":       ColRetake,
	"dropped":      ColDropped,
	"drop":         ColDropped,
}

// rawRow holds the text cells of one course row before conversion.
type rawRow struct {
	Name    string
	Grade   string `yaml:"grade" validate:"omitempty,grade"`
	Credit  string `yaml:"credit" validate:"omitempty,credit"`
	Retake  string `yaml:"retake" validate:"omitempty,flag"`
	Dropped string `yaml:"dropped" validate:"omitempty,flag"`
}

// FromRows converts a header row and its data rows into course records.
// Only the grade and credit columns are required. Fully blank rows are skipped.
func FromRows(header []string, rows [][]string) ([]gpa.CourseRecord, []Issue, error) {
	cols, err := mapHeader(header)
	if err != nil {
		return nil, nil, err
	}

	var courses []gpa.CourseRecord
	var issues []Issue
	for i, row := range rows {
		if isRowEmpty(row) {
			continue
		}
		raw := rawRow{
			Name:    cell(row, cols, ColName),
			Grade:   cell(row, cols, ColGrade),
			Credit:  cell(row, cols, ColCredit),
			Retake:  cell(row, cols, ColRetake),
			Dropped: cell(row, cols, ColDropped),
		}
		// Header is row 1, so data row i sits on line i+2.
		c, rowIssues := convertRow(fmt.Sprintf("row %d", i+2), raw)
		courses = append(courses, c)
		issues = append(issues, rowIssues...)
	}
	return courses, issues, nil
}

func mapHeader(header []string) (map[string]int, error) {
	cols := make(map[string]int)
	for i, h := range header {
		key := strings.ToLower(strings.TrimSpace(h))
		name, ok := headerAliases[key]
		if !ok {
			continue
		}
		if _, dup := cols[name]; dup {
			return nil, fmt.Errorf("duplicate column %q", name)
		}
		cols[name] = i
	}
	for _, required := range []string{ColGrade, ColCredit} {
		if _, ok := cols[required]; !ok {
			return nil, fmt.Errorf("missing required column %q", required)
		}
	}
	return cols, nil
}

func cell(row []string, cols map[string]int, name string) string {
	i, ok := cols[name]
	if !ok || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

func isRowEmpty(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

// convertRow turns text cells into a CourseRecord. Blank grade or credit
// leaves the field unset. Cells that fail validation are also left unset and
// reported as issues under prefix.
func convertRow(prefix string, raw rawRow) (gpa.CourseRecord, []Issue) {
	raw.Grade = strings.TrimSpace(raw.Grade)
	raw.Credit = strings.TrimSpace(raw.Credit)
	raw.Retake = strings.TrimSpace(raw.Retake)
	raw.Dropped = strings.TrimSpace(raw.Dropped)

	bad := validateRow(raw)
	var issues []Issue
	for field, msg := range bad {
		issues = append(issues, Issue{Path: prefix + "." + field, Message: msg})
	}
	sortIssues(issues)

	c := gpa.CourseRecord{Name: strings.TrimSpace(raw.Name)}
	if _, skip := bad[ColGrade]; !skip && raw.Grade != "" {
		c.Grade, _ = grade.Parse(raw.Grade)
	}
	if _, skip := bad[ColCredit]; !skip && raw.Credit != "" {
		v, _ := strconv.ParseFloat(raw.Credit, 64)
		switch {
		case v < 0:
			issues = append(issues, Issue{Path: prefix + "." + ColCredit, Message: fmt.Sprintf("credit must be non-negative, got %s", raw.Credit)})
		case v > MaxCourseCredit:
			issues = append(issues, Issue{Path: prefix + "." + ColCredit, Message: fmt.Sprintf("credit must be at most %d, got %s", MaxCourseCredit, raw.Credit)})
		default:
			c.Credit = gpa.Hours(v)
		}
	}
	if _, skip := bad[ColRetake]; !skip {
		c.Retake, _ = parseFlag(raw.Retake)
	}
	if _, skip := bad[ColDropped]; !skip {
		c.Dropped, _ = parseFlag(raw.Dropped)
	}
	return c, issues
}

// parseFlag reads a checkbox-style cell. Blank is false.
func parseFlag(s string) (bool, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "false", "no", "n", "0":
		return false, true
	case "true", "yes", "y", "1", "x":
		return true, true
	}
	return false, false
}
