package main

import (
	"errors"
	"log"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/sortlab/report"
	"github.com/katalvlaran/sortlab/runner"
)

// newRunCmd builds "sortbench run": a single comparison.
func newRunCmd(logger *log.Logger) *cobra.Command {
	var (
		s       settings
		size    int
		algos   []string
		summary bool
	)
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run one comparison on a freshly generated array",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := s.validateFormat(); err != nil {
				return err
			}
			b, err := runner.Run(size, splitAlgos(algos), s.options()...)
			var ve *runner.ValidationError
			if errors.As(err, &ve) {
				return errors.New(ve.Message())
			}
			if err != nil {
				return err
			}
			warnSkipped(logger, b.Skipped)

			rows := report.FromRecords(b.Records)
			out := cmd.OutOrStdout()
			if err = s.render(out, "", rows); err != nil {
				return err
			}
			if summary && s.format == formatText {
				return report.WriteSummary(out, report.Summarize(rows))
			}
			return nil
		},
	}

	fs := cmd.Flags()
	fs.IntVarP(&size, "size", "n", 0, "array size (1..max-size)")
	fs.StringArrayVarP(&algos, "algo", "a", nil, `algorithm to run, repeatable or comma separated (e.g. "Quick Sort")`)
	fs.BoolVar(&summary, "summary", false, "print the per-metric leaders after the table")
	s.bind(fs)

	return cmd
}
