package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/sortlab/history"
	"github.com/katalvlaran/sortlab/report"
	"github.com/katalvlaran/sortlab/runner"
)

// errBadRequest marks a session line that could not be parsed.
var errBadRequest = errors.New("invalid request")

// request is one parsed session line.
type request struct {
	size  int
	algos []string
}

// parseRequest reads "<size> <algo>[,<algo>...]".
func parseRequest(line string) (request, error) {
	sizeField, rest, _ := strings.Cut(strings.TrimSpace(line), " ")
	size, err := strconv.Atoi(sizeField)
	if err != nil {
		return request{}, fmt.Errorf("%w: size %q is not a number", errBadRequest, sizeField)
	}
	return request{size: size, algos: splitAlgos([]string{rest})}, nil
}

// newSessionCmd builds "sortbench session".
func newSessionCmd(logger *log.Logger) *cobra.Command {
	var s settings
	cmd := &cobra.Command{
		Use:   "session",
		Short: "Run requests read from stdin and print the session history",
		Long: `Each input line is "<size> <algo>[,<algo>...]", for example:

  1000 Bubble Sort,Quick Sort

Blank lines and lines starting with # are ignored. Rejected requests print
their reason and the session continues.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := s.validateFormat(); err != nil {
				return err
			}
			return runSession(cmd.InOrStdin(), cmd.OutOrStdout(), logger, &s)
		},
	}
	s.bind(cmd.Flags())

	return cmd
}

// runSession drives one interactive session over in/out and returns only
// I/O or option errors; rejected requests are reported inline.
func runSession(in io.Reader, out io.Writer, logger *log.Logger, s *settings) error {
	var (
		hist = history.New()
		opts = s.options()
		sc   = bufio.NewScanner(in)
	)
	for lineNo := 1; sc.Scan(); lineNo++ {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		req, err := parseRequest(line)
		if err != nil {
			fmt.Fprintf(out, "line %d: %v\n", lineNo, err)
			continue
		}
		b, err := runner.Run(req.size, req.algos, opts...)
		var ve *runner.ValidationError
		if errors.As(err, &ve) {
			fmt.Fprintf(out, "line %d: %s\n", lineNo, ve.Message())
			continue
		}
		if err != nil {
			return err
		}
		warnSkipped(logger, b.Skipped)

		hist.AppendBatch(b)
		if err = s.render(out, "Current Results", report.FromRecords(hist.Current())); err != nil {
			return err
		}
	}
	if err := sc.Err(); err != nil {
		return err
	}

	if hist.Batches() == 0 {
		return nil
	}
	return s.render(out, "Session History", report.FromRecords(hist.All()))
}
