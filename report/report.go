package report

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"text/tabwriter"

	"github.com/samber/lo"

	"github.com/katalvlaran/sortlab/runner"
)

// Row is one algorithm's metrics in response form.
type Row struct {
	Name        string  `json:"name"`
	Time        float64 `json:"time"`
	Comparisons int     `json:"comparisons"`
	Swaps       int     `json:"swaps"`
	Size        int     `json:"size"`
}

// Round2 rounds ms half away from zero to two decimal places.
func Round2(ms float64) float64 {
	return math.Round(ms*100) / 100
}

// FromRecord converts a single record.
func FromRecord(r runner.Record) Row {
	return Row{
		Name:        r.Algorithm,
		Time:        Round2(r.ElapsedMs),
		Comparisons: r.Comparisons,
		Swaps:       r.Swaps,
		Size:        r.InputSize,
	}
}

// FromRecords converts records preserving their order. nil in, empty out.
func FromRecords(rs []runner.Record) []Row {
	return lo.Map(rs, func(r runner.Record, _ int) Row { return FromRecord(r) })
}

// WriteTable renders rows as an aligned text table with a header line.
func WriteTable(w io.Writer, rows []Row) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "Algorithm\tTime (ms)\tComparisons\tArray Size\tSwaps")
	for _, r := range rows {
		fmt.Fprintf(tw, "%s\t%.2f\t%d\t%d\t%d\n", r.Name, r.Time, r.Comparisons, r.Size, r.Swaps)
	}
	return tw.Flush()
}

// WriteJSON renders rows as an indented JSON array. An empty selection is
// written as [] rather than null.
func WriteJSON(w io.Writer, rows []Row) error {
	if rows == nil {
		rows = []Row{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(rows)
}
