package runner

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/katalvlaran/sortlab/seqgen"
)

const (
	// DefaultMaxSize is the largest accepted input size.
	DefaultMaxSize = 10000
	// DefaultMinSelection is the fewest algorithms a comparison needs.
	DefaultMinSelection = 2
)

// Record is the immutable metrics of one algorithm over one input.
type Record struct {
	// Algorithm is the wire identifier, e.g. "Quick Sort".
	Algorithm string
	// ElapsedMs is the wall-clock time of the sort in milliseconds (≥ 0).
	ElapsedMs float64
	// Comparisons and Swaps follow the per-algorithm counting rules.
	Comparisons int
	Swaps       int
	// InputSize is the length of the sorted sequence.
	InputSize int
}

// Batch is the outcome of one Run.
type Batch struct {
	// Records holds one entry per selected algorithm, in registry order.
	Records []Record
	// Input is the sequence every algorithm sorted. Callers must not mutate it.
	Input []int64
	// Skipped lists requested identifiers that are not registered.
	Skipped []string
}

// Option configures a Run via functional arguments.
// Invalid values are recorded and surfaced as ErrOptionViolation by Run.
type Option func(*Options)

// Options holds the resolved run configuration.
type Options struct {
	// MaxSize is the inclusive upper bound of the input size.
	MaxSize int
	// MinSelection is the fewest distinct known algorithms accepted.
	MinSelection int
	// Parallelism > 1 runs sorters concurrently on that many goroutines.
	Parallelism int
	// Clock is the timing source applied around each sort.
	Clock func() time.Time

	gen []seqgen.Option
	err error
}

// DefaultOptions returns Options with:
//   - MaxSize = 10000, MinSelection = 2
//   - sequential execution
//   - time.Now as the clock
//   - generated input over seqgen's default range.
func DefaultOptions() Options {
	return Options{
		MaxSize:      DefaultMaxSize,
		MinSelection: DefaultMinSelection,
		Parallelism:  1,
		Clock:        time.Now,
	}
}

// fail records the first option violation.
func (o *Options) fail(format string, args ...any) {
	if o.err == nil {
		o.err = fmt.Errorf("%w: "+format, append([]any{ErrOptionViolation}, args...)...)
	}
}

// WithMaxSize sets the largest accepted input size (must be ≥ 1).
func WithMaxSize(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.fail("MaxSize must be positive (%d)", n)
			return
		}
		o.MaxSize = n
	}
}

// WithMinSelection sets the fewest algorithms a run needs (must be ≥ 1).
func WithMinSelection(k int) Option {
	return func(o *Options) {
		if k < 1 {
			o.fail("MinSelection must be positive (%d)", k)
			return
		}
		o.MinSelection = k
	}
}

// WithParallelism runs up to p sorters at once.
//
//	p == 0 or 1: sequential
//	p > 1:       concurrent, results still in registry order
//	p < 0:       invalid → ErrOptionViolation
func WithParallelism(p int) Option {
	return func(o *Options) {
		switch {
		case p < 0:
			o.fail("Parallelism cannot be negative (%d)", p)
		case p == 0:
			o.Parallelism = 1
		default:
			o.Parallelism = p
		}
	}
}

// WithClock replaces time.Now as the timing source.
func WithClock(now func() time.Time) Option {
	return func(o *Options) {
		if now == nil {
			o.fail("Clock cannot be nil")
			return
		}
		o.Clock = now
	}
}

// WithRange bounds generated values to [lo, hi].
func WithRange(lo, hi int64) Option {
	return func(o *Options) {
		if lo > hi {
			o.fail("range [%d, %d] is empty", lo, hi)
			return
		}
		o.gen = append(o.gen, seqgen.WithRange(lo, hi))
	}
}

// WithSeed makes the generated sequence deterministic.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.gen = append(o.gen, seqgen.WithSeed(seed))
	}
}

// WithRand draws the generated sequence from r.
func WithRand(r *rand.Rand) Option {
	return func(o *Options) {
		if r == nil {
			o.fail("rand source cannot be nil")
			return
		}
		o.gen = append(o.gen, seqgen.WithRand(r))
	}
}
