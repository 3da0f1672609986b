package report

import (
	"fmt"
	"io"

	"github.com/samber/lo"
)

// Summary names the leader of each metric in one batch. Ties go to the
// earlier row, i.e. the earlier algorithm in registry order.
type Summary struct {
	Fastest           string
	FewestComparisons string
	FewestSwaps       string
}

// Summarize computes the per-metric leaders of rows. The zero Summary is
// returned for an empty batch.
func Summarize(rows []Row) Summary {
	if len(rows) == 0 {
		return Summary{}
	}
	return Summary{
		Fastest:           lo.MinBy(rows, func(a, b Row) bool { return a.Time < b.Time }).Name,
		FewestComparisons: lo.MinBy(rows, func(a, b Row) bool { return a.Comparisons < b.Comparisons }).Name,
		FewestSwaps:       lo.MinBy(rows, func(a, b Row) bool { return a.Swaps < b.Swaps }).Name,
	}
}

// WriteSummary prints s as three labelled lines. Nothing is written for the
// zero Summary.
func WriteSummary(w io.Writer, s Summary) error {
	if s == (Summary{}) {
		return nil
	}
	_, err := fmt.Fprintf(w, "fastest: %s\nfewest comparisons: %s\nfewest swaps: %s\n",
		s.Fastest, s.FewestComparisons, s.FewestSwaps)
	return err
}
