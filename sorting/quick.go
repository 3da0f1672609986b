package sorting

// QuickSort sorts a copy of input with Lomuto-partition quicksort.
//
// The pivot of each subrange [lo, hi] is a[hi]. Every a[j] for j in [lo, hi)
// is compared against it with strict <; each element that goes left is
// exchanged into place and counted, self-exchanges included. The final
// pivot placement is counted once per partition even when the pivot does not
// move.
//
// Recursion descends into the smaller side and loops on the larger one, which
// bounds stack depth by O(log n) without changing any count.
//
// Complexity: O(n log n) expected, O(n²) on sorted or all-equal input.
func QuickSort(input []int64) Result {
	a := clone(input)
	q := quick{a: a}
	q.sort(0, len(a)-1)

	return Result{Output: a, Comparisons: q.cmp, Swaps: q.swp}
}

// quick holds the working slice and counters of one QuickSort call.
type quick struct {
	a   []int64
	cmp int
	swp int
}

// sort orders q.a[lo..hi] inclusive.
func (q *quick) sort(lo, hi int) {
	for lo < hi {
		p := q.partition(lo, hi)
		if p-lo < hi-p {
			q.sort(lo, p-1)
			lo = p + 1
		} else {
			q.sort(p+1, hi)
			hi = p - 1
		}
	}
}

// partition places a[hi] at its final index and returns that index.
func (q *quick) partition(lo, hi int) int {
	a := q.a
	pivot := a[hi]
	i := lo - 1
	for j := lo; j < hi; j++ {
		q.cmp++
		if a[j] < pivot {
			i++
			a[i], a[j] = a[j], a[i]
			q.swp++
		}
	}
	a[i+1], a[hi] = a[hi], a[i+1]
	q.swp++

	return i + 1
}
