package sorting

// MergeSort sorts a copy of input with top-down merge sort.
//
// Runs are split at floor(n/2) until they hold a single element. Merging
// compares run heads with <=, so equal values keep their left-run order
// (the sort is stable). Every element appended to a merged run counts as one
// swap, whether it won a comparison or was copied from a leftover tail, so
// the swap total depends only on n, never on the input order.
//
// Complexity: O(n log n) time, O(n) auxiliary memory.
func MergeSort(input []int64) Result {
	a := clone(input)
	if len(a) < 2 {
		return Result{Output: a}
	}

	m := merger{buf: make([]int64, len(a))}
	m.sort(a)

	return Result{Output: a, Comparisons: m.cmp, Swaps: m.swp}
}

// merger carries the counters and a scratch buffer shared by all merge steps.
type merger struct {
	buf []int64
	cmp int
	swp int
}

// sort orders s in place.
func (m *merger) sort(s []int64) {
	if len(s) <= 1 {
		return
	}
	mid := len(s) / 2
	m.sort(s[:mid])
	m.sort(s[mid:])
	m.merge(s, mid)
}

// merge combines the sorted halves s[:mid] and s[mid:] back into s.
func (m *merger) merge(s []int64, mid int) {
	left := m.buf[:mid]
	copy(left, s[:mid])
	right := s[mid:]

	// k never overtakes mid+j, so writes into s do not clobber unread
	// elements of the right half.
	i, j, k := 0, 0, 0
	for i < len(left) && j < len(right) {
		m.cmp++
		if left[i] <= right[j] {
			s[k] = left[i]
			i++
		} else {
			s[k] = right[j]
			j++
		}
		k++
		m.swp++
	}
	for ; i < len(left); i++ {
		s[k] = left[i]
		k++
		m.swp++
	}
	// Leftover right elements are already in their final slots; they are
	// still appended to the merged run and counted as such.
	m.swp += len(right) - j
}
