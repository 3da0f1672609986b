package seqgen_test

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sortlab/seqgen"
)

// TestGenerate_Errors verifies that invalid lengths and ranges are rejected.
func TestGenerate_Errors(t *testing.T) {
	for _, n := range []int{0, -1, -10000} {
		_, err := seqgen.Generate(n)
		require.Truef(t, errors.Is(err, seqgen.ErrBadLength), "n=%d: want ErrBadLength, got %v", n, err)
	}

	_, err := seqgen.Generate(5, seqgen.WithRange(10, 9))
	require.ErrorIs(t, err, seqgen.ErrBadRange)
}

// TestGenerate_LengthAndRange checks the structural contract: exact length,
// every value inside [lo, hi].
func TestGenerate_LengthAndRange(t *testing.T) {
	seq, err := seqgen.Generate(100, seqgen.WithRange(0, 100))
	require.NoError(t, err)
	require.Len(t, seq, 100)
	for i, v := range seq {
		require.GreaterOrEqualf(t, v, int64(0), "seq[%d]", i)
		require.LessOrEqualf(t, v, int64(100), "seq[%d]", i)
	}
}

// TestGenerate_DefaultRange draws with the default [0, MaxSafeInteger] bounds.
func TestGenerate_DefaultRange(t *testing.T) {
	seq, err := seqgen.Generate(1000, seqgen.WithSeed(7))
	require.NoError(t, err)
	require.Len(t, seq, 1000)

	var sawLarge bool
	for _, v := range seq {
		require.GreaterOrEqual(t, v, seqgen.DefaultLo)
		require.LessOrEqual(t, v, seqgen.MaxSafeInteger)
		if v > math.MaxInt32 {
			sawLarge = true
		}
	}
	// 1000 uniform draws over 2^53 values all landing below 2^31 is
	// practically impossible; this guards against a 32-bit generator.
	require.True(t, sawLarge, "no value exceeded the 32-bit range")
}

// TestGenerate_SingleValueRange pins lo == hi.
func TestGenerate_SingleValueRange(t *testing.T) {
	seq, err := seqgen.Generate(16, seqgen.WithRange(-3, -3))
	require.NoError(t, err)
	for _, v := range seq {
		require.Equal(t, int64(-3), v)
	}
}

// TestGenerate_FullInt64Range exercises the wide-span paths.
func TestGenerate_FullInt64Range(t *testing.T) {
	seq, err := seqgen.Generate(64, seqgen.WithRange(math.MinInt64, math.MaxInt64), seqgen.WithSeed(1))
	require.NoError(t, err)
	require.Len(t, seq, 64)

	seq, err = seqgen.Generate(64, seqgen.WithRange(-1, math.MaxInt64), seqgen.WithSeed(1))
	require.NoError(t, err)
	for _, v := range seq {
		require.GreaterOrEqual(t, v, int64(-1))
	}
}

// TestGenerate_SeedDeterminism checks that equal seeds give equal streams.
func TestGenerate_SeedDeterminism(t *testing.T) {
	a, err := seqgen.Generate(50, seqgen.WithSeed(42))
	require.NoError(t, err)
	b, err := seqgen.Generate(50, seqgen.WithRand(rand.New(rand.NewSource(42))))
	require.NoError(t, err)
	require.Equal(t, a, b)
}

// TestWithRand_NilPanics confirms the option constructor fails fast.
func TestWithRand_NilPanics(t *testing.T) {
	require.Panics(t, func() { seqgen.WithRand(nil) })
}
