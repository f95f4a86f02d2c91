package sorting

import (
	"cmp"
	"math/rand"
	"time"
)

// Quick sorts s in place with quicksort. The pivot strategy defaults to
// PivotLast and is selectable with WithPivot; PivotRandom accepts WithSeed
// for reproducible runs.
// Complexity: O(n log n) expected, O(n²) worst case (adversarial input
// against a deterministic strategy); in place, not stable.
func Quick[T cmp.Ordered](s []T, opts ...QuickOption) {
	cfg := quickSettings{pivot: PivotLast}
	for _, opt := range opts {
		opt(&cfg)
	}

	var rng *rand.Rand
	if cfg.pivot == PivotRandom {
		seed := cfg.seed
		if !cfg.useSeed {
			seed = time.Now().UnixNano()
		}
		rng = rand.New(rand.NewSource(seed))
	}

	quickSort(s, cfg.pivot, rng)
}

func quickSort[T cmp.Ordered](s []T, strategy PivotStrategy, rng *rand.Rand) {
	if len(s) < 2 {
		return
	}

	p := partition(s, strategy, rng)
	quickSort(s[:p], strategy, rng)
	quickSort(s[p+1:], strategy, rng)
}

// partition moves the strategy's pivot to the end, runs Lomuto's scheme,
// and returns the pivot's final index.
func partition[T cmp.Ordered](s []T, strategy PivotStrategy, rng *rand.Rand) int {
	last := len(s) - 1

	// 1) Choose the pivot index per strategy and park it at the end.
	var at int
	switch strategy {
	case PivotFirst:
		at = 0
	case PivotMiddle:
		at = last / 2
	case PivotRandom:
		at = rng.Intn(len(s))
	case PivotMedianOfThree:
		at = medianOfThree(s, 0, last/2, last)
	default: // PivotLast
		at = last
	}
	s[at], s[last] = s[last], s[at]
	pivot := s[last]

	// 2) Lomuto partition: everything < pivot shifts left of the fence.
	fence := 0
	for i := 0; i < last; i++ {
		if s[i] < pivot {
			s[i], s[fence] = s[fence], s[i]
			fence++
		}
	}
	s[fence], s[last] = s[last], s[fence]

	return fence
}

// medianOfThree returns the index of the median of s[a], s[b], s[c].
func medianOfThree[T cmp.Ordered](s []T, a, b, c int) int {
	x, y, z := s[a], s[b], s[c]
	switch {
	case (x <= y && y <= z) || (z <= y && y <= x):
		return b
	case (y <= x && x <= z) || (z <= x && x <= y):
		return a
	default:
		return c
	}
}
