package runner

import (
	"time"

	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/sortlab/seqgen"
	"github.com/katalvlaran/sortlab/sorting"
)

// Run validates the request, generates one sequence of the given size and
// runs every selected algorithm on its own copy of it.
//
// names are wire identifiers ("Bubble Sort", ...). Unknown names are skipped
// and returned in Batch.Skipped; duplicates collapse.
//
// Errors: *ValidationError (ErrSizeOutOfRange, ErrInsufficientSelection),
// ErrOptionViolation. Generation cannot fail once validation has passed.
//
// Complexity: O(n) generation plus the sum of the selected algorithms.
func Run(size int, names []string, opts ...Option) (Batch, error) {
	algs, skipped := Select(names)
	b, err := RunAlgorithms(size, algs, opts...)
	if err != nil {
		return Batch{}, err
	}
	b.Skipped = skipped

	return b, nil
}

// RunAlgorithms is Run with an already resolved selection. Invalid or
// duplicate entries in algs are ignored.
func RunAlgorithms(size int, algs []sorting.Algorithm, opts ...Option) (Batch, error) {
	o, err := resolve(opts)
	if err != nil {
		return Batch{}, err
	}
	algs = canonical(algs)
	if err = validate(o, size, len(algs)); err != nil {
		return Batch{}, err
	}

	input, err := seqgen.Generate(size, o.gen...)
	if err != nil {
		// Only reachable through a range rejected by seqgen itself.
		return Batch{}, err
	}

	return execute(o, input, algs), nil
}

// RunSequence runs the named algorithms over a caller-supplied sequence
// instead of a generated one. len(seq) is validated as the run size; seq is
// never modified. Generation options (WithRange, WithSeed, WithRand) are
// accepted and ignored.
func RunSequence(seq []int64, names []string, opts ...Option) (Batch, error) {
	o, err := resolve(opts)
	if err != nil {
		return Batch{}, err
	}
	algs, skipped := Select(names)
	if err = validate(o, len(seq), len(algs)); err != nil {
		return Batch{}, err
	}

	input := make([]int64, len(seq))
	copy(input, seq)
	b := execute(o, input, algs)
	b.Skipped = skipped

	return b, nil
}

// Select resolves wire identifiers into distinct algorithms in registry
// order. Identifiers that do not resolve are returned in skipped, once each,
// in the order first seen.
func Select(names []string) (algs []sorting.Algorithm, skipped []string) {
	chosen := make(map[sorting.Algorithm]bool, len(names))
	for _, name := range lo.Uniq(names) {
		a, err := sorting.ParseAlgorithm(name)
		if err != nil {
			skipped = append(skipped, name)
			continue
		}
		chosen[a] = true
	}
	algs = lo.Filter(sorting.Algorithms(), func(a sorting.Algorithm, _ int) bool {
		return chosen[a]
	})

	return algs, skipped
}

// resolve applies opts over DefaultOptions.
func resolve(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o, o.err
}

// canonical drops invalid and duplicate entries and sorts by registry order.
func canonical(algs []sorting.Algorithm) []sorting.Algorithm {
	return lo.Filter(sorting.Algorithms(), func(a sorting.Algorithm, _ int) bool {
		return lo.Contains(algs, a)
	})
}

// validate enforces the size and selection policies before any work starts.
func validate(o Options, size, selected int) error {
	if size < 1 || size > o.MaxSize {
		return &ValidationError{Field: FieldSize, Err: ErrSizeOutOfRange}
	}
	if selected < o.MinSelection {
		return &ValidationError{Field: FieldAlgorithms, Err: ErrInsufficientSelection}
	}
	return nil
}

// execute sorts input with every algorithm in algs. Record i always belongs
// to algs[i], whatever order parallel tasks finish in.
func execute(o Options, input []int64, algs []sorting.Algorithm) Batch {
	records := make([]Record, len(algs))

	if o.Parallelism <= 1 || len(algs) < 2 {
		for i, a := range algs {
			records[i] = measure(o.Clock, a, input)
		}
		return Batch{Records: records, Input: input}
	}

	var g errgroup.Group
	g.SetLimit(o.Parallelism)
	for i, a := range algs {
		i, a := i, a
		g.Go(func() error {
			records[i] = measure(o.Clock, a, input)
			return nil
		})
	}
	_ = g.Wait() // tasks never fail

	return Batch{Records: records, Input: input}
}

// measure is the timing boundary around one algorithm. The algorithm sorts
// its own copy, so input is shared read-only between tasks.
func measure(now func() time.Time, a sorting.Algorithm, input []int64) Record {
	fn := a.Func()

	start := now()
	res := fn(input)
	elapsed := now().Sub(start)

	return Record{
		Algorithm:   a.String(),
		ElapsedMs:   toMillis(elapsed),
		Comparisons: res.Comparisons,
		Swaps:       res.Swaps,
		InputSize:   len(input),
	}
}

// toMillis converts d to fractional milliseconds, clamping clock skew to 0.
func toMillis(d time.Duration) float64 {
	if d < 0 {
		return 0
	}
	return float64(d) / float64(time.Millisecond)
}
