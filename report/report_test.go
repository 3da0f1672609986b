package report_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sortlab/report"
	"github.com/katalvlaran/sortlab/runner"
	"github.com/katalvlaran/sortlab/sorting"
)

var records = []runner.Record{
	{Algorithm: sorting.NameBubble, ElapsedMs: 1.23456, Comparisons: 10, Swaps: 8, InputSize: 5},
	{Algorithm: sorting.NameSelection, ElapsedMs: 0.499, Comparisons: 10, Swaps: 4, InputSize: 5},
}

// TestRound2 covers the two-decimal rounding used for the time field.
func TestRound2(t *testing.T) {
	cases := map[float64]float64{
		0:        0,
		0.004:    0,
		0.005:    0.01,
		1.23456:  1.23,
		99.999:   100,
		0.499:    0.5,
		1500.125: 1500.13,
	}
	for in, want := range cases {
		assert.InDelta(t, want, report.Round2(in), 1e-9, "Round2(%v)", in)
	}
}

// TestFromRecords maps every field and keeps order.
func TestFromRecords(t *testing.T) {
	rows := report.FromRecords(records)
	require.Len(t, rows, 2)
	assert.Equal(t, report.Row{Name: sorting.NameBubble, Time: 1.23, Comparisons: 10, Swaps: 8, Size: 5}, rows[0])
	assert.Equal(t, report.Row{Name: sorting.NameSelection, Time: 0.5, Comparisons: 10, Swaps: 4, Size: 5}, rows[1])

	assert.NotNil(t, report.FromRecords(nil))
	assert.Empty(t, report.FromRecords(nil))
}

// TestWriteTable checks column order and alignment.
func TestWriteTable(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, report.WriteTable(&buf, report.FromRecords(records)))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, []string{"Algorithm", "Time", "(ms)", "Comparisons", "Array", "Size", "Swaps"}, strings.Fields(lines[0]))
	assert.Equal(t, []string{"Bubble", "Sort", "1.23", "10", "5", "8"}, strings.Fields(lines[1]))
	assert.Equal(t, []string{"Selection", "Sort", "0.50", "10", "5", "4"}, strings.Fields(lines[2]))

	col := strings.Index(lines[0], "Time (ms)")
	assert.Equal(t, col, strings.Index(lines[1], "1.23"))
	assert.Equal(t, col, strings.Index(lines[2], "0.50"))
}

// TestWriteJSON uses the wire field names.
func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, report.WriteJSON(&buf, report.FromRecords(records[:1])))

	var got []map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, map[string]any{
		"name":        sorting.NameBubble,
		"time":        1.23,
		"comparisons": 10.0,
		"swaps":       8.0,
		"size":        5.0,
	}, got[0])

	buf.Reset()
	require.NoError(t, report.WriteJSON(&buf, nil))
	assert.Equal(t, "[]\n", buf.String())
}

// TestSummarize picks per-metric leaders, ties to the earlier row.
func TestSummarize(t *testing.T) {
	s := report.Summarize(report.FromRecords(records))
	assert.Equal(t, sorting.NameSelection, s.Fastest)
	assert.Equal(t, sorting.NameBubble, s.FewestComparisons)
	assert.Equal(t, sorting.NameSelection, s.FewestSwaps)

	assert.Equal(t, report.Summary{}, report.Summarize(nil))

	var buf bytes.Buffer
	require.NoError(t, report.WriteSummary(&buf, s))
	assert.Equal(t, "fastest: Selection Sort\nfewest comparisons: Bubble Sort\nfewest swaps: Selection Sort\n", buf.String())

	buf.Reset()
	require.NoError(t, report.WriteSummary(&buf, report.Summary{}))
	assert.Empty(t, buf.String())
}
