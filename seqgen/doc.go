// Package seqgen produces random integer sequences used as benchmark input
// for the sorting algorithms in sortlab/sorting.
//
// What:
//
//   - Generate(n, opts...) returns exactly n independently drawn integers,
//     uniformly distributed over an inclusive range [Lo, Hi].
//   - The default range is [0, MaxSafeInteger] (2^53 − 1), the largest
//     integer a float64 represents exactly. Values are int64 so the range is
//     preserved on 32-bit platforms as well.
//
// Determinism:
//
//   - By default each call draws from a fresh time-seeded source; nothing
//     about the produced values is guaranteed.
//   - WithSeed / WithRand lock the stream for tests and reproducible runs.
//
// Errors:
//
//   - ErrBadLength — n ≤ 0.
//   - ErrBadRange  — Lo > Hi.
//
// Complexity: O(n) time, O(n) memory.
package seqgen
