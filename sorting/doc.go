// Package sorting implements five classic comparison sorts, each instrumented
// to report how many element comparisons and element relocations it performed.
//
// What:
//
//   - Bubble     — adjacent-pair passes, range shrinks by one per pass,
//     no early exit when a pass makes no exchange.
//   - Quick      — Lomuto partition, last element of each subrange as pivot.
//   - Merge      — top-down, split at floor(n/2), merge favors the left run on ties.
//   - Insertion  — shift-left insertion of each key from index 1 onward.
//   - Selection  — per-position minimum scan, at most one exchange per position.
//
// Counting rules (the value of this package is that they are exact):
//
//	Algorithm   Comparisons                         Swaps
//	---------   ---------------------------------   ----------------------------------------
//	Bubble      one per adjacent pair examined      one per pair exchanged
//	Selection   one per element vs current minimum  one per position whose minimum moved
//	Insertion   one per shift attempt, including    one per shift, plus one for placing the
//	            the attempt that stops the loop     key (even when nothing shifted)
//	Merge       one per head-to-head comparison     one per element appended to a merged
//	                                                run, tail elements included
//	Quick       one per element scanned vs pivot    one per partition exchange (self
//	                                                exchanges included) plus one for the
//	                                                final pivot placement
//
// "Swaps" is therefore a per-algorithm definition, not a universal metric:
// the numbers are comparable across runs of one algorithm, not across algorithms.
//
// Contract shared by all five:
//   - The input slice is never modified; each algorithm sorts a private copy.
//   - Output is the ascending permutation of the input.
//   - Empty and single-element inputs report zero comparisons and zero swaps.
//   - Algorithms are pure: no clock, no logging, no shared state. Timing is
//     applied from outside by sortlab/runner.
//
// Complexity:
//
//	Bubble, Selection, Insertion: O(n²) time, O(n) memory (the copy).
//	Merge: O(n log n) time, O(n) memory.
//	Quick: O(n log n) expected, O(n²) worst case (sorted or all-equal input),
//	       O(log n) stack by recursing into the smaller side first.
package sorting
