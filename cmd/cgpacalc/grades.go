package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/dshills/cgpacalc/internal/grade"
)

func newGradesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "grades",
		Short: "Print the letter-grade to grade-point table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			writeGradeTable(cmd.OutOrStdout())
			return nil
		},
	}
}

func writeGradeTable(w io.Writer) {
	fmt.Fprintln(w, "| Grade | Points |")
	fmt.Fprintln(w, "|---|---|")
	for _, g := range grade.All() {
		p, _ := grade.Point(g)
		fmt.Fprintf(w, "| %s | %.1f |\n", g, p)
	}
}
