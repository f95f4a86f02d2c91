package sorting

import "cmp"

// Merge sorts s with a top-down merge sort. The result lands back in s;
// one O(n) auxiliary buffer is shared by all merge steps.
// Complexity: O(n log n) always; stable.
func Merge[T cmp.Ordered](s []T) {
	if len(s) < 2 {
		return
	}
	buf := make([]T, len(s))
	mergeSort(s, buf)
}

func mergeSort[T cmp.Ordered](s, buf []T) {
	if len(s) < 2 {
		return
	}
	mid := len(s) / 2
	mergeSort(s[:mid], buf[:mid])
	mergeSort(s[mid:], buf[mid:])

	// Merge the two sorted halves into buf, then copy back. The <=
	// comparison keeps equal elements in their original half order, which
	// is what makes the sort stable.
	i, j, k := 0, mid, 0
	for i < mid && j < len(s) {
		if s[i] <= s[j] {
			buf[k] = s[i]
			i++
		} else {
			buf[k] = s[j]
			j++
		}
		k++
	}
	k += copy(buf[k:], s[i:mid])
	copy(buf[k:], s[j:])
	copy(s, buf[:len(s)])
}
