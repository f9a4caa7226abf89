package sheet

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	govalidator "github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"

	"github.com/dshills/cgpacalc/internal/gpa"
	"github.com/dshills/cgpacalc/internal/grade"
)

var (
	setupOnce sync.Once
	validate  *govalidator.Validate
	trans     ut.Translator
)

// Upper bounds on credit hours. They keep points*credits well inside
// float64 range.
const (
	MaxCourseCredit = 100
	MaxPriorCredits = 10000
)

// priorInput mirrors gpa.PriorStanding with its accepted ranges.
type priorInput struct {
	CGPA    float64 `yaml:"cgpa" validate:"finite,gte=0,lte=4"`
	Credits float64 `yaml:"credits" validate:"finite,gte=0,lte=10000"`
}

func setup() {
	validate = govalidator.New()

	// Use yaml tag names in messages so paths match the sheet.
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("yaml"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	enLocale := en.New()
	uni := ut.New(enLocale, enLocale)
	trans, _ = uni.GetTranslator("en")
	_ = en_translations.RegisterDefaultTranslations(validate, trans)

	_ = validate.RegisterValidation("grade", func(fl govalidator.FieldLevel) bool {
		_, ok := grade.Parse(fl.Field().String())
		return ok
	})
	_ = validate.RegisterValidation("flag", func(fl govalidator.FieldLevel) bool {
		_, ok := parseFlag(fl.Field().String())
		return ok
	})

	_ = validate.RegisterValidation("credit", func(fl govalidator.FieldLevel) bool {
		v, err := strconv.ParseFloat(fl.Field().String(), 64)
		return err == nil && isFinite(v)
	})
	_ = validate.RegisterValidation("finite", func(fl govalidator.FieldLevel) bool {
		return isFinite(fl.Field().Float())
	})

	registerMessage("grade", "{0} must be one of "+gradeList())
	registerMessage("flag", "{0} must be a yes/no value")
	registerMessage("credit", "{0} must be a number")
	registerMessage("finite", "{0} must be a finite number")
}

func registerMessage(tag, text string) {
	_ = validate.RegisterTranslation(tag, trans,
		func(u ut.Translator) error { return u.Add(tag, text, true) },
		func(u ut.Translator, fe govalidator.FieldError) string {
			msg, _ := u.T(tag, fe.Field())
			return msg
		},
	)
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func gradeList() string {
	all := grade.All()
	names := make([]string, len(all))
	for i, g := range all {
		names[i] = string(g)
	}
	return strings.Join(names, ", ")
}

// validateRow returns a message per failing field, keyed by column name.
func validateRow(raw rawRow) map[string]string {
	setupOnce.Do(setup)
	return translate(validate.Struct(raw))
}

// ValidatePrior checks that a prior standing is in range.
func ValidatePrior(p gpa.PriorStanding) error {
	setupOnce.Do(setup)
	fields := translate(validate.Struct(priorInput{CGPA: p.CGPA, Credits: p.Credits}))
	if len(fields) == 0 {
		return nil
	}
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	msgs := make([]string, len(keys))
	for i, k := range keys {
		msgs[i] = fields[k]
	}
	return fmt.Errorf("invalid prior standing: %s", strings.Join(msgs, "; "))
}

func translate(err error) map[string]string {
	if err == nil {
		return nil
	}
	fields := make(map[string]string)
	var ve govalidator.ValidationErrors
	if errors.As(err, &ve) {
		for _, fe := range ve {
			fields[fe.Field()] = fe.Translate(trans)
		}
		return fields
	}
	fields["detail"] = err.Error()
	return fields
}

func sortIssues(issues []Issue) {
	sort.Slice(issues, func(i, j int) bool { return issues[i].Path < issues[j].Path })
}
