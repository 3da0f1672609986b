// Package runner executes a selection of sortlab/sorting algorithms against one
// generated sequence and collects a metrics record per algorithm.
//
// Flow:
//
//  1. Validate: size ∈ [1, MaxSize]; at least MinSelection distinct, known
//     algorithms. Nothing runs when validation fails.
//  2. Generate exactly one sequence via sortlab/seqgen (or use the sequence given to RunSequence).
//  3. For each selected algorithm, in canonical registry order, sort an
//     independent copy of that sequence inside a timing boundary.
//  4. Return a Batch whose records follow registry order regardless of the
//     order in which names were given or tasks completed.
//
// Unknown identifiers are skipped and listed in Batch.Skipped; they never
// count toward the minimum selection. Duplicate identifiers collapse.
//
// Concurrency:
//
//	Sequential by default. WithParallelism(p>1) runs the sorters on an
//	errgroup limited to p goroutines; every task owns its input copy and its
//	record slot. Wall-clock figures from a parallel run include scheduler
//	contention and are not comparable with sequential ones.
//
// Errors:
//
//   - *ValidationError wrapping ErrSizeOutOfRange or ErrInsufficientSelection.
//   - ErrOptionViolation for meaningless option values.
//
// Once validation passes a run always completes.
package runner
