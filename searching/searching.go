package searching

import "cmp"

// Linear scans s front to back.
// Complexity: O(n); works on unsorted input.
func Linear[T comparable](s []T, target T) (int, bool) {
	for i, v := range s {
		if v == target {
			return i, true
		}
	}

	return -1, false
}

// Binary searches ascending-sorted s by halving the candidate range.
// Complexity: O(log n).
func Binary[T cmp.Ordered](s []T, target T) (int, bool) {
	lo, hi := 0, len(s)-1
	for lo <= hi {
		mid := lo + (hi-lo)/2 // avoids overflow on huge slices
		switch {
		case s[mid] == target:
			return mid, true
		case s[mid] < target:
			lo = mid + 1
		default:
			hi = mid - 1
		}
	}

	return -1, false
}

// Exponential searches ascending-sorted s by galloping — doubling a probe
// index until it overshoots — then binary-searching the bracketed window.
// Complexity: O(log i) where i is the match position.
func Exponential[T cmp.Ordered](s []T, target T) (int, bool) {
	if len(s) == 0 {
		return -1, false
	}
	if s[0] == target {
		return 0, true
	}

	// Gallop: bound grows 1, 2, 4, ... until s[bound] ≥ target.
	bound := 1
	for bound < len(s) && s[bound] < target {
		bound *= 2
	}

	lo := bound / 2
	hi := min(bound, len(s)-1)
	at, ok := Binary(s[lo:hi+1], target)
	if !ok {
		return -1, false
	}

	return lo + at, true
}

// Number constrains Interpolation to types whose distance ratios are
// meaningful arithmetic.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Interpolation searches ascending-sorted numeric s by estimating the
// probe position from the target's value relative to the range bounds —
// the way one opens a dictionary near the right letter.
// Complexity: O(log log n) on uniform input, O(n) worst case.
func Interpolation[T Number](s []T, target T) (int, bool) {
	lo, hi := 0, len(s)-1
	for lo <= hi && target >= s[lo] && target <= s[hi] {
		if s[lo] == s[hi] {
			// Flat range: interpolation would divide by zero; any probe
			// decides.
			if s[lo] == target {
				return lo, true
			}

			break
		}

		// Probe proportionally between the bounds.
		pos := lo + int(float64(hi-lo)*float64(target-s[lo])/float64(s[hi]-s[lo]))
		switch {
		case s[pos] == target:
			return pos, true
		case s[pos] < target:
			lo = pos + 1
		default:
			hi = pos - 1
		}
	}

	return -1, false
}
