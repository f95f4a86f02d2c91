// Package sorting: the three quadratic sorts. Kept separate and literal —
// these exist to be read against the O(n log n) group, not to be fast.
package sorting

import "cmp"

// Bubble sorts s in place by repeatedly swapping adjacent out-of-order
// pairs. A pass without swaps proves the slice sorted, so nearly-sorted
// input exits early.
// Complexity: O(n²) worst, O(n) best; in place.
func Bubble[T cmp.Ordered](s []T) {
	for end := len(s) - 1; end > 0; end-- {
		swapped := false
		for i := 0; i < end; i++ {
			if s[i] > s[i+1] {
				s[i], s[i+1] = s[i+1], s[i]
				swapped = true
			}
		}
		if !swapped {
			return
		}
	}
}

// Insertion sorts s in place by growing a sorted prefix one element at a
// time, shifting larger elements right to open the insertion slot.
// Complexity: O(n²) worst, O(n) on nearly-sorted input; in place, stable.
func Insertion[T cmp.Ordered](s []T) {
	for i := 1; i < len(s); i++ {
		key := s[i]
		j := i - 1
		for j >= 0 && s[j] > key {
			s[j+1] = s[j]
			j--
		}
		s[j+1] = key
	}
}

// Selection sorts s in place by repeatedly selecting the minimum of the
// unsorted suffix. It performs at most n−1 swaps, the fewest of the
// quadratic sorts.
// Complexity: O(n²) always; in place.
func Selection[T cmp.Ordered](s []T) {
	for i := 0; i < len(s)-1; i++ {
		minAt := i
		for j := i + 1; j < len(s); j++ {
			if s[j] < s[minAt] {
				minAt = j
			}
		}
		if minAt != i {
			s[i], s[minAt] = s[minAt], s[i]
		}
	}
}
