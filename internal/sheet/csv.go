package sheet

import (
	"bytes"
	"encoding/csv"
	"fmt"
)

func decodeCSV(data []byte) (*Sheet, error) {
	r := csv.NewReader(bytes.NewReader(bytes.TrimPrefix(data, []byte("\ufeff"))))
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true

	all, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse csv: %w", err)
	}
	if len(all) == 0 {
		return nil, fmt.Errorf("empty csv: header row required")
	}

	courses, issues, err := FromRows(all[0], all[1:])
	if err != nil {
		return nil, err
	}
	return &Sheet{Courses: courses, Issues: issues}, nil
}
