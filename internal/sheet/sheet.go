// Package sheet loads course sheets from YAML, CSV, and XLSX files and
// converts their text cells into typed course records.
package sheet

import (
	"crypto/sha256"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dshills/cgpacalc/internal/gpa"
)

// Sheet is a loaded course sheet.
type Sheet struct {
	FilePath string
	Hash     string
	Format   Format
	Prior    gpa.PriorStanding
	// HasPrior is false when the file carries no prior standing (CSV, or
	// XLSX without a Prior sheet).
	HasPrior bool
	Courses  []gpa.CourseRecord
	Issues   []Issue
}

// Format identifies the on-disk layout of a sheet.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
)

// Issue is a cell that could not be used. The affected field is left unset
// so the row drops out of both aggregations.
type Issue struct {
	Path    string `json:"path" yaml:"path"`
	Message string `json:"message" yaml:"message"`
}

func (i Issue) String() string {
	return fmt.Sprintf("%s: %s", i.Path, i.Message)
}

// FormatFor maps a file extension to a sheet format.
func FormatFor(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".csv":
		return FormatCSV, nil
	case ".xlsx":
		return FormatXLSX, nil
	}
	return "", fmt.Errorf("unsupported sheet extension %q (want .yaml, .yml, .csv or .xlsx)", filepath.Ext(path))
}

// Load reads a course sheet and computes its SHA-256 hash.
func Load(path string) (*Sheet, error) {
	format, err := FormatFor(path)
	if err != nil {
		return nil, fmt.Errorf("sheet.Load: %w", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("sheet.Load: %w", err)
	}

	var s *Sheet
	switch format {
	case FormatYAML:
		s, err = decodeYAML(data)
	case FormatCSV:
		s, err = decodeCSV(data)
	case FormatXLSX:
		s, err = decodeXLSX(data)
	}
	if err != nil {
		return nil, fmt.Errorf("sheet.Load: %s: %w", filepath.Base(path), err)
	}
	if s.HasPrior {
		if err := ValidatePrior(s.Prior); err != nil {
			return nil, fmt.Errorf("sheet.Load: %s: %w", filepath.Base(path), err)
		}
	}

	h := sha256.Sum256(data)
	s.FilePath = path
	s.Hash = fmt.Sprintf("sha256:%x", h)
	s.Format = format
	return s, nil
}
