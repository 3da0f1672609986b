package seqgen

import (
	"errors"
	"math/rand"
)

// MaxSafeInteger is the largest integer exactly representable as float64.
// It is the default inclusive upper bound of generated values.
const MaxSafeInteger int64 = 1<<53 - 1

// DefaultLo is the default inclusive lower bound of generated values.
const DefaultLo int64 = 0

// Sentinel errors for sequence generation.
var (
	// ErrBadLength is returned when the requested length is not positive.
	ErrBadLength = errors.New("seqgen: length must be positive")

	// ErrBadRange is returned when the lower bound exceeds the upper bound.
	ErrBadRange = errors.New("seqgen: lower bound exceeds upper bound")
)

// Option customizes a single Generate call.
type Option func(*config)

// config is the resolved generator configuration.
type config struct {
	lo  int64
	hi  int64
	rng *rand.Rand
}

// newConfig applies opts over the defaults.
func newConfig(opts ...Option) config {
	c := config{lo: DefaultLo, hi: MaxSafeInteger}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// WithRange sets the inclusive value range [lo, hi].
// lo > hi is reported as ErrBadRange by Generate.
func WithRange(lo, hi int64) Option {
	return func(c *config) {
		c.lo, c.hi = lo, hi
	}
}

// WithSeed draws values from a deterministic source seeded with seed.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand draws values from r. Panics on nil: a nil source is a programmer
// error and would otherwise silently fall back to a time-seeded stream.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("seqgen: WithRand(nil)")
	}
	return func(c *config) {
		c.rng = r
	}
}
