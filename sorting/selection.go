package sorting

// SelectionSort sorts a copy of input by selecting the minimum of the
// unsorted suffix for each position.
//
// The strict < keeps the first occurrence of the minimum, so ties never
// cause an exchange. An exchange is skipped (and not counted) when the
// minimum already sits at its position.
//
// Complexity: O(n²) time, exactly n(n-1)/2 comparisons, at most n-1 swaps.
func SelectionSort(input []int64) Result {
	a := clone(input)
	n := len(a)
	var cmp, swp int

	for i := 0; i < n-1; i++ {
		minIdx := i
		for j := i + 1; j < n; j++ {
			cmp++
			if a[j] < a[minIdx] {
				minIdx = j
			}
		}
		if minIdx != i {
			a[i], a[minIdx] = a[minIdx], a[i]
			swp++
		}
	}

	return Result{Output: a, Comparisons: cmp, Swaps: swp}
}
