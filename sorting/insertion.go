package sorting

// InsertionSort sorts a copy of input by shifting each key left past every
// strictly greater neighbor.
//
// Counting:
//   - one comparison per neighbor inspected, including the one that stops
//     the shift (no comparison happens once the front is reached);
//   - one swap per shift plus one for writing the key into its slot, so each
//     outer step contributes shifts+1 even when the key does not move.
//
// Complexity: O(n²) worst case, O(n) on sorted input.
func InsertionSort(input []int64) Result {
	a := clone(input)
	var cmp, swp int

	for i := 1; i < len(a); i++ {
		key := a[i]
		j := i - 1
		for j >= 0 {
			cmp++
			if a[j] <= key {
				break
			}
			a[j+1] = a[j]
			swp++
			j--
		}
		a[j+1] = key
		swp++
	}

	return Result{Output: a, Comparisons: cmp, Swaps: swp}
}
