package sorting

// clone returns a private working copy of s (never nil).
func clone(s []int64) []int64 {
	out := make([]int64, len(s))
	copy(out, s)
	return out
}
