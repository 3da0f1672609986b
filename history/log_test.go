package history_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sortlab/history"
	"github.com/katalvlaran/sortlab/runner"
	"github.com/katalvlaran/sortlab/sorting"
)

// rec builds a record tagged with its position for order checks.
func rec(name string, size int) runner.Record {
	return runner.Record{Algorithm: name, InputSize: size}
}

// TestLog_Empty checks the zero value.
func TestLog_Empty(t *testing.T) {
	var l history.Log
	assert.Nil(t, l.Current())
	assert.Empty(t, l.All())
	assert.Zero(t, l.Len())
	assert.Zero(t, l.Batches())
}

// TestLog_Accumulation appends batches of 2 and 3 records.
func TestLog_Accumulation(t *testing.T) {
	l := history.New()
	first := []runner.Record{rec(sorting.NameBubble, 10), rec(sorting.NameQuick, 10)}
	second := []runner.Record{rec(sorting.NameMerge, 20), rec(sorting.NameInsertion, 20), rec(sorting.NameSelection, 20)}

	l.Append(first)
	assert.Equal(t, first, l.Current())
	l.Append(second)

	all := l.All()
	require.Len(t, all, 5)
	assert.Equal(t, append(append([]runner.Record{}, first...), second...), all)
	assert.Equal(t, second, l.Current())
	assert.Equal(t, 5, l.Len())
	assert.Equal(t, 2, l.Batches())
}

// TestLog_EmptyBatchBecomesCurrent mirrors replacing the current results
// with an empty set.
func TestLog_EmptyBatchBecomesCurrent(t *testing.T) {
	l := history.New()
	l.Append([]runner.Record{rec(sorting.NameBubble, 1)})
	l.Append(nil)

	assert.NotNil(t, l.Current())
	assert.Empty(t, l.Current())
	assert.Equal(t, 1, l.Len())
	assert.Equal(t, 2, l.Batches())
}

// TestLog_ReturnsCopies ensures callers cannot rewrite history.
func TestLog_ReturnsCopies(t *testing.T) {
	l := history.New()
	in := []runner.Record{rec(sorting.NameBubble, 3), rec(sorting.NameQuick, 3)}
	l.Append(in)

	in[0].Algorithm = "mutated"
	got := l.All()
	got[1].Algorithm = "mutated"
	cur := l.Current()
	cur[0].Swaps = 99

	assert.Equal(t, sorting.NameBubble, l.All()[0].Algorithm)
	assert.Equal(t, sorting.NameQuick, l.All()[1].Algorithm)
	assert.Zero(t, l.Current()[0].Swaps)
}

// TestLog_AppendBatch accepts runner batches directly.
func TestLog_AppendBatch(t *testing.T) {
	b, err := runner.Run(16, []string{sorting.NameMerge, sorting.NameQuick}, runner.WithSeed(2))
	require.NoError(t, err)

	l := history.New()
	l.AppendBatch(b)
	assert.Equal(t, b.Records, l.Current())
}

// TestLog_ConcurrentAppend keeps every record under concurrent writers.
func TestLog_ConcurrentAppend(t *testing.T) {
	const writers, perWriter = 8, 50
	l := history.New()

	var wg sync.WaitGroup
	wg.Add(writers)
	for w := 0; w < writers; w++ {
		w := w
		go func() {
			defer wg.Done()
			for i := 0; i < perWriter; i++ {
				l.Append([]runner.Record{rec(sorting.NameBubble, w), rec(sorting.NameQuick, w)})
				_ = l.Current()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, writers*perWriter*2, l.Len())
	assert.Equal(t, writers*perWriter, l.Batches())

	// Batches are never interleaved: each Bubble is followed by its Quick.
	all := l.All()
	for i := 0; i < len(all); i += 2 {
		assert.Equal(t, sorting.NameBubble, all[i].Algorithm)
		assert.Equal(t, sorting.NameQuick, all[i+1].Algorithm)
		assert.Equal(t, all[i].InputSize, all[i+1].InputSize)
	}
}
