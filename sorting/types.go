package sorting

import (
	"errors"
	"fmt"
)

// ErrUnknownAlgorithm is returned when an identifier is not in the registry.
var ErrUnknownAlgorithm = errors.New("sorting: unknown algorithm")

// Algorithm identifies one of the registered sorting algorithms.
// Constants are declared in canonical registry order, which is also the order
// of records in a run batch.
type Algorithm int

const (
	// Bubble is adjacent-exchange bubble sort.
	Bubble Algorithm = iota
	// Quick is quicksort with Lomuto partitioning.
	Quick
	// Merge is top-down merge sort.
	Merge
	// Insertion is shift-based insertion sort.
	Insertion
	// Selection is minimum-selection sort.
	Selection

	numAlgorithms
)

// Identifiers used on the wire and in user-facing output.
const (
	NameBubble    = "Bubble Sort"
	NameQuick     = "Quick Sort"
	NameMerge     = "Merge Sort"
	NameInsertion = "Insertion Sort"
	NameSelection = "Selection Sort"
)

// Result is the outcome of one instrumented sort.
type Result struct {
	// Output is the sorted copy of the input.
	Output []int64

	// Comparisons counts element-to-element relational evaluations.
	Comparisons int

	// Swaps counts element relocations, per the algorithm's counting rule.
	Swaps int
}

// Func is the signature shared by every instrumented algorithm.
type Func func(input []int64) Result

// entry binds an identifier to its implementation.
type entry struct {
	name string
	fn   Func
}

// registry is indexed by Algorithm.
var registry = [numAlgorithms]entry{
	Bubble:    {NameBubble, BubbleSort},
	Quick:     {NameQuick, QuickSort},
	Merge:     {NameMerge, MergeSort},
	Insertion: {NameInsertion, InsertionSort},
	Selection: {NameSelection, SelectionSort},
}

// String returns the wire identifier, e.g. "Bubble Sort".
func (a Algorithm) String() string {
	if !a.Valid() {
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}
	return registry[a].name
}

// Valid reports whether a is a registered algorithm.
func (a Algorithm) Valid() bool {
	return a >= 0 && a < numAlgorithms
}

// Func returns the implementation of a, or nil if a is not registered.
func (a Algorithm) Func() Func {
	if !a.Valid() {
		return nil
	}
	return registry[a].fn
}

// Algorithms returns every registered algorithm in canonical order.
// The returned slice is a fresh copy.
func Algorithms() []Algorithm {
	out := make([]Algorithm, numAlgorithms)
	for i := range out {
		out[i] = Algorithm(i)
	}
	return out
}

// ParseAlgorithm maps a wire identifier to its Algorithm.
// Matching is exact; unknown names yield ErrUnknownAlgorithm.
func ParseAlgorithm(name string) (Algorithm, error) {
	for i, e := range registry {
		if e.name == name {
			return Algorithm(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
}

// Sort runs algorithm a over input. It returns ErrUnknownAlgorithm for
// unregistered values of a; sorting itself never fails.
func Sort(a Algorithm, input []int64) (Result, error) {
	fn := a.Func()
	if fn == nil {
		return Result{}, fmt.Errorf("%w: %d", ErrUnknownAlgorithm, int(a))
	}
	return fn(input), nil
}
