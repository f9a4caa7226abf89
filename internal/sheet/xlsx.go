package sheet

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Sheet names looked up in workbooks.
const (
	CoursesSheet = "Courses"
	PriorSheet   = "Prior"
)

func decodeXLSX(data []byte) (*Sheet, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("open xlsx: %w", err)
	}
	defer f.Close()

	names := f.GetSheetList()
	if len(names) == 0 {
		return nil, fmt.Errorf("workbook has no sheets")
	}
	coursesName := findSheet(names, CoursesSheet)
	if coursesName == "" {
		coursesName = names[0]
	}

	rows, err := f.GetRows(coursesName)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", coursesName, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("sheet %q is empty: header row required", coursesName)
	}
	courses, issues, err := FromRows(rows[0], rows[1:])
	if err != nil {
		return nil, fmt.Errorf("sheet %q: %w", coursesName, err)
	}
	s := &Sheet{Courses: courses, Issues: issues}

	if priorName := findSheet(names, PriorSheet); priorName != "" {
		prows, err := f.GetRows(priorName)
		if err != nil {
			return nil, fmt.Errorf("read sheet %q: %w", priorName, err)
		}
		if err := readPrior(s, prows); err != nil {
			return nil, fmt.Errorf("sheet %q: %w", priorName, err)
		}
	}
	return s, nil
}

func findSheet(names []string, want string) string {
	for _, n := range names {
		if strings.EqualFold(n, want) {
			return n
		}
	}
	return ""
}

// readPrior reads label/value pairs from columns A and B.
func readPrior(s *Sheet, rows [][]string) error {
	for _, row := range rows {
		if len(row) < 2 {
			continue
		}
		label := strings.ToLower(strings.TrimSpace(row[0]))
		value := strings.TrimSpace(row[1])
		switch label {
		case "cgpa", "prior cgpa", "previous cgpa":
			v, err := parseNumber("prior.cgpa", value)
			if err != nil {
				return err
			}
			s.Prior.CGPA = v
			s.HasPrior = true
		case "credits", "prior credits", "previous credits":
			v, err := parseNumber("prior.credits", value)
			if err != nil {
				return err
			}
			s.Prior.Credits = v
			s.HasPrior = true
		}
	}
	return nil
}
