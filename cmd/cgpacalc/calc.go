package main

import (
	"fmt"
	"io"
	"math"
	"os"

	"github.com/spf13/cobra"

	"github.com/dshills/cgpacalc/internal/config"
	"github.com/dshills/cgpacalc/internal/gpa"
	"github.com/dshills/cgpacalc/internal/logging"
	"github.com/dshills/cgpacalc/internal/report"
	"github.com/dshills/cgpacalc/internal/sheet"
)

type calcFlags struct {
	format       string
	hasFormat    bool
	out          string
	configPath   string
	priorCGPA    float64
	hasCGPA      bool
	priorCredits float64
	hasCredits   bool
	failBelow    float64
	hasFailBelow bool
	verbose      bool

	stdout io.Writer
	stderr io.Writer
}

func newCalcCmd() *cobra.Command {
	f := &calcFlags{}

	cmd := &cobra.Command{
		Use:   "calc <sheet>",
		Short: "Compute the current semester GPA and updated CGPA",
		Long: `Reads a course sheet (.yaml, .csv or .xlsx) and prints the current semester
GPA and the updated CGPA.

Rows with a blank grade or credit are treated as not yet entered and are left
out. Retaken courses replace grade points without adding credits to the CGPA;
dropped courses are removed from the cumulative record.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := cmd.Flags()
			f.hasFormat = flags.Changed("format")
			f.hasCGPA = flags.Changed("prior-cgpa")
			f.hasCredits = flags.Changed("prior-credits")
			f.hasFailBelow = flags.Changed("fail-below")
			f.stdout = cmd.OutOrStdout()
			f.stderr = cmd.ErrOrStderr()
			return runCalc(args[0], f)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&f.format, "format", "md", "Output format: md, json or yaml")
	flags.StringVar(&f.out, "out", "", "Output file path (default: stdout)")
	flags.StringVar(&f.configPath, "config", ".cgpacalc.yaml", "Config file with defaults")
	flags.Float64Var(&f.priorCGPA, "prior-cgpa", 0, "Prior CGPA (overrides the sheet)")
	flags.Float64Var(&f.priorCredits, "prior-credits", 0, "Prior credit hours (overrides the sheet)")
	flags.Float64Var(&f.failBelow, "fail-below", 0, "Exit 2 if the updated CGPA is below this value")
	flags.BoolVar(&f.verbose, "verbose", false, "Log processing steps to stderr")

	return cmd
}

func runCalc(sheetPath string, f *calcFlags) error {
	if f.stdout == nil {
		f.stdout = os.Stdout
	}
	if f.stderr == nil {
		f.stderr = os.Stderr
	}

	cfg, err := config.Load(f.configPath)
	if err != nil {
		return exitError(3, "failed to load config: %v", err)
	}
	if f.hasFormat {
		cfg.Format = f.format
	}
	if f.hasFailBelow {
		cfg.FailBelow = &f.failBelow
	}
	if f.verbose {
		cfg.LogLevel = "debug"
	}
	log := logging.Setup(cfg.LogLevel, cfg.LogFormat, f.stderr)

	// 1. Load sheet
	log.Debug().Str("path", sheetPath).Msg("loading sheet")
	s, err := sheet.Load(sheetPath)
	if err != nil {
		return exitError(3, "failed to load sheet: %v", err)
	}
	log.Debug().Str("format", string(s.Format)).Int("courses", len(s.Courses)).Str("hash", s.Hash).Msg("sheet loaded")
	for _, iss := range s.Issues {
		log.Warn().Str("cell", iss.Path).Msg(iss.Message)
	}

	// 2. Resolve prior standing
	prior := s.Prior
	if f.hasCGPA {
		prior.CGPA = f.priorCGPA
	}
	if f.hasCredits {
		prior.Credits = f.priorCredits
	}
	if !s.HasPrior && !f.hasCGPA && !f.hasCredits {
		log.Debug().Msg("no prior standing given, starting from 0 credits")
	}
	if err := sheet.ValidatePrior(prior); err != nil {
		return exitError(3, "%v", err)
	}

	// 3. Compute and render
	rep := report.Build(s, prior, report.Meta{Tool: "cgpacalc", Version: version})
	log.Debug().
		Float64("gpa", rep.Semester.Average).
		Float64("cgpa", rep.Cumulative.Average).
		Int("counted", rep.Input.Counted).
		Msg("computed")
	if rep.Cumulative.CreditsCounted < 0 {
		log.Warn().Float64("credits", rep.Cumulative.CreditsCounted).Msg("dropped courses exceed prior credits")
	}

	output, err := report.Render(rep, cfg.Format)
	if err != nil {
		return exitError(3, "%v", err)
	}

	if f.out != "" {
		log.Debug().Str("path", f.out).Msg("writing output")
		if err := os.WriteFile(f.out, []byte(output), 0644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	} else {
		fmt.Fprint(f.stdout, output)
	}

	// 4. Exit code based on --fail-below
	if cfg.FailBelow != nil && belowThreshold(rep.Cumulative, *cfg.FailBelow) {
		return exitError(2, "CGPA %.2f is below %.2f", rep.Cumulative.Average, *cfg.FailBelow)
	}
	return nil
}

// belowThreshold compares on the two-decimal figure the report shows, so a
// displayed 2.00 never fails a 2.00 threshold.
func belowThreshold(r gpa.Result, threshold float64) bool {
	return roundTo2(r.Average) < roundTo2(threshold)
}

func roundTo2(v float64) float64 {
	return math.Round(v*100) / 100
}
