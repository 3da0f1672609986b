package sorting

// BubbleSort sorts a copy of input by repeated adjacent exchanges.
//
// Pass i examines pairs (j, j+1) for j in [0, n-i-2]; the largest remaining
// value settles at the end of each pass. All n-1 passes run even when a pass
// makes no exchange, so Comparisons is always n(n-1)/2 and Swaps equals the
// number of inversions in input.
//
// Complexity: O(n²) time, O(n) memory.
func BubbleSort(input []int64) Result {
	a := clone(input)
	n := len(a)
	var cmp, swp int

	for i := 0; i < n-1; i++ {
		for j := 0; j < n-i-1; j++ {
			cmp++
			if a[j] > a[j+1] {
				a[j], a[j+1] = a[j+1], a[j]
				swp++
			}
		}
	}

	return Result{Output: a, Comparisons: cmp, Swaps: swp}
}
