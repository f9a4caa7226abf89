package report

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Markdown renders the report as the Description/Value results table,
// followed by the per-course breakdown and any warnings.
func Markdown(r *Report) string {
	var b strings.Builder

	b.WriteString("# CGPA Calculator\n\n")
	b.WriteString("| Description | Value |\n")
	b.WriteString("|---|---|\n")
	fmt.Fprintf(&b, "| Current Semester GPA | %s |\n", FormatResult(r.Semester.Average, r.Semester.CreditsCounted))
	fmt.Fprintf(&b, "| Updated CGPA | %s |\n\n", FormatResult(r.Cumulative.Average, r.Cumulative.CreditsCounted))

	fmt.Fprintf(&b, "**Prior standing:** %s\n\n", FormatResult(r.Prior.CGPA, r.Prior.Credits))

	if len(r.Courses) > 0 {
		b.WriteString("## Courses\n\n")
		b.WriteString("| # | Course | Grade | Credit | Disposition | Counted |\n")
		b.WriteString("|---|---|---|---|---|---|\n")
		for i, l := range r.Courses {
			fmt.Fprintf(&b, "| %d | %s | %s | %s | %s | %s |\n",
				i+1, orDash(l.Name), orDash(l.Grade), formatCredit(l.Credit), l.Disposition, yesNo(l.Counted))
		}
		b.WriteString("\n")
	} else {
		b.WriteString("No courses entered.\n\n")
	}

	if len(r.Warnings) > 0 {
		b.WriteString("## Warnings\n\n")
		for _, w := range r.Warnings {
			fmt.Fprintf(&b, "- %s\n", w)
		}
		b.WriteString("\n")
	}

	return b.String()
}

// FormatResult prints an average to two decimals with its credit count,
// e.g. "3.43 (7 credits)".
func FormatResult(avg, credits float64) string {
	return fmt.Sprintf("%.2f (%s credits)", avg, strconv.FormatFloat(credits, 'f', -1, 64))
}

// JSON renders the report as indented JSON with a trailing newline.
func JSON(r *Report) (string, error) {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return "", fmt.Errorf("report.JSON: %w", err)
	}
	return string(data) + "\n", nil
}

// YAML renders the report as a YAML document.
func YAML(r *Report) (string, error) {
	var b strings.Builder
	enc := yaml.NewEncoder(&b)
	enc.SetIndent(2)
	if err := enc.Encode(r); err != nil {
		return "", fmt.Errorf("report.YAML: %w", err)
	}
	if err := enc.Close(); err != nil {
		return "", fmt.Errorf("report.YAML: %w", err)
	}
	return b.String(), nil
}

// Render encodes the report in the named format: md, json or yaml.
func Render(r *Report, format string) (string, error) {
	switch strings.ToLower(format) {
	case "md", "markdown":
		return Markdown(r), nil
	case "json":
		return JSON(r)
	case "yaml", "yml":
		return YAML(r)
	}
	return "", fmt.Errorf("unknown format: %s", format)
}

func formatCredit(c *float64) string {
	if c == nil {
		return "-"
	}
	return strconv.FormatFloat(*c, 'f', -1, 64)
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
