package main

import (
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/sortlab/report"
	"github.com/katalvlaran/sortlab/runner"
	"github.com/katalvlaran/sortlab/seqgen"
)

// Output formats accepted by --format.
const (
	formatText = "text"
	formatJSON = "json"
)

// settings are the flags shared by run and session.
type settings struct {
	maxSize  int
	minSel   int
	parallel int
	seed     int64
	lo, hi   int64
	format   string
}

// bind registers the shared flags on fs.
func (s *settings) bind(fs *pflag.FlagSet) {
	fs.IntVar(&s.maxSize, "max-size", runner.DefaultMaxSize, "largest accepted array size")
	fs.IntVar(&s.minSel, "min", runner.DefaultMinSelection, "fewest algorithms per comparison")
	fs.IntVar(&s.parallel, "parallel", 1, "run up to N algorithms concurrently (1 = sequential)")
	fs.Int64Var(&s.seed, "seed", 0, "seed for the generated sequence (0 = random)")
	fs.Int64Var(&s.lo, "lo", 0, "smallest generated value")
	fs.Int64Var(&s.hi, "hi", 0, "largest generated value (0 = 2^53-1)")
	fs.StringVarP(&s.format, "format", "o", formatText, "output format: text or json")
}

// options translates the flags into runner options.
func (s *settings) options() []runner.Option {
	opts := []runner.Option{
		runner.WithMaxSize(s.maxSize),
		runner.WithMinSelection(s.minSel),
		runner.WithParallelism(s.parallel),
	}
	if s.seed != 0 {
		opts = append(opts, runner.WithSeed(s.seed))
	}
	if s.lo != 0 || s.hi != 0 {
		hi := s.hi
		if hi == 0 {
			hi = seqgen.MaxSafeInteger
		}
		opts = append(opts, runner.WithRange(s.lo, hi))
	}
	return opts
}

// validateFormat rejects unknown --format values.
func (s *settings) validateFormat() error {
	switch s.format {
	case formatText, formatJSON:
		return nil
	}
	return fmt.Errorf("unknown format %q (want %s or %s)", s.format, formatText, formatJSON)
}

// render writes rows in the selected format; text output gets a title line.
func (s *settings) render(w io.Writer, title string, rows []report.Row) error {
	if s.format == formatJSON {
		return report.WriteJSON(w, rows)
	}
	if title != "" {
		fmt.Fprintln(w, title)
	}
	return report.WriteTable(w, rows)
}

// splitAlgos expands repeated and comma-separated --algo values.
func splitAlgos(values []string) []string {
	var out []string
	for _, v := range values {
		for _, name := range strings.Split(v, ",") {
			if name = strings.TrimSpace(name); name != "" {
				out = append(out, name)
			}
		}
	}
	return out
}

// warnSkipped logs identifiers the runner did not recognize.
func warnSkipped(logger *log.Logger, skipped []string) {
	for _, name := range skipped {
		logger.Printf("warning: unknown algorithm %q skipped", name)
	}
}

// newRootCmd assembles the command tree.
func newRootCmd(logger *log.Logger) *cobra.Command {
	root := &cobra.Command{
		Use:           "sortbench",
		Short:         "Compare sorting algorithms by time, comparisons and swaps",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(
		newRunCmd(logger),
		newSessionCmd(logger),
		newAlgorithmsCmd(),
	)

	return root
}
