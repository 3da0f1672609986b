package seqgen

import (
	"fmt"
	"math"
	"math/rand"
	"time"
)

// Generate returns n uniformly distributed integers in the configured
// inclusive range (default [0, MaxSafeInteger]).
//
// Contract:
//   - n must be > 0, otherwise ErrBadLength.
//   - lo ≤ hi, otherwise ErrBadRange.
//   - Every value v satisfies lo ≤ v ≤ hi; len(result) == n.
//
// Upper size limits are a caller policy (see sortlab/runner) and are not
// enforced here.
//
// Complexity: O(n).
func Generate(n int, opts ...Option) ([]int64, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrBadLength, n)
	}
	c := newConfig(opts...)
	if c.lo > c.hi {
		return nil, fmt.Errorf("%w: [%d, %d]", ErrBadRange, c.lo, c.hi)
	}
	r := c.rng
	if r == nil {
		r = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	out := make([]int64, n)
	for i := range out {
		out[i] = drawInclusive(r, c.lo, c.hi)
	}

	return out, nil
}

// drawInclusive returns a uniform value in [lo, hi] (lo ≤ hi).
// Spans up to 2^63 use Int63n; wider spans fall back to rejection sampling
// over Uint64 so that the full int64 domain stays reachable.
func drawInclusive(r *rand.Rand, lo, hi int64) int64 {
	span := uint64(hi-lo) + 1 // wraps to 0 for the full int64 domain
	switch {
	case span == 0:
		return int64(r.Uint64())
	case span <= math.MaxInt64:
		return lo + r.Int63n(int64(span))
	}

	// span in (2^63, 2^64): reject the biased tail.
	limit := math.MaxUint64 - math.MaxUint64%span
	for {
		v := r.Uint64()
		if v < limit {
			return lo + int64(v%span)
		}
	}
}
