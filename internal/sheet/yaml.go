package sheet

import (
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"
)

// text accepts any YAML scalar as its literal text, so `credit: 3`,
// `credit: "3"` and `credit:` all decode.
type text string

func (t *text) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: expected a scalar value", n.Line)
	}
	if n.Tag == "!!null" {
		*t = ""
		return nil
	}
	*t = text(n.Value)
	return nil
}

type yamlDoc struct {
	Prior   *yamlPrior `yaml:"prior"`
	Courses []yamlRow  `yaml:"courses"`
}

type yamlPrior struct {
	CGPA    text `yaml:"cgpa"`
	Credits text `yaml:"credits"`
}

type yamlRow struct {
	Name    text `yaml:"name"`
	Grade   text `yaml:"grade"`
	Credit  text `yaml:"credit"`
	Retake  text `yaml:"retake"`
	Dropped text `yaml:"dropped"`
}

func decodeYAML(data []byte) (*Sheet, error) {
	var doc yamlDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}

	s := &Sheet{}
	if doc.Prior != nil {
		cgpa, err := parseNumber("prior.cgpa", string(doc.Prior.CGPA))
		if err != nil {
			return nil, err
		}
		credits, err := parseNumber("prior.credits", string(doc.Prior.Credits))
		if err != nil {
			return nil, err
		}
		s.Prior.CGPA = cgpa
		s.Prior.Credits = credits
		s.HasPrior = true
	}

	for i, r := range doc.Courses {
		c, issues := convertRow(fmt.Sprintf("courses[%d]", i), rawRow{
			Name:    string(r.Name),
			Grade:   string(r.Grade),
			Credit:  string(r.Credit),
			Retake:  string(r.Retake),
			Dropped: string(r.Dropped),
		})
		s.Courses = append(s.Courses, c)
		s.Issues = append(s.Issues, issues...)
	}
	return s, nil
}

// parseNumber reads a prior-standing value. Blank is 0.
func parseNumber(path, s string) (float64, error) {
	if s == "" {
		return 0, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%s: invalid number %q", path, s)
	}
	return v, nil
}
