package sorting

import "cmp"

// Shell sorts s in place with gapped insertion sort. The gap progression
// defaults to GapsHalving and is selectable with WithGaps; the asymptotic
// bound depends on the sequence (Hibbard O(n^1.5), Sedgewick O(n^4/3)).
// In place, not stable.
func Shell[T cmp.Ordered](s []T, opts ...ShellOption) {
	cfg := shellSettings{gaps: GapsHalving}
	for _, opt := range opts {
		opt(&cfg)
	}

	for _, gap := range gapsFor(cfg.gaps, len(s)) {
		// Gapped insertion sort: each residue class mod gap is insertion
		// sorted; later (smaller) gaps profit from the coarse ordering.
		for i := gap; i < len(s); i++ {
			key := s[i]
			j := i - gap
			for j >= 0 && s[j] > key {
				s[j+gap] = s[j]
				j -= gap
			}
			s[j+gap] = key
		}
	}
}

// gapsFor materializes the chosen sequence descending, largest gap first,
// always ending in 1 (a bare insertion-sort pass that finishes the job).
func gapsFor(seq GapSequence, n int) []int {
	if n < 2 {
		return nil
	}

	var gaps []int
	switch seq {
	case GapsKnuth:
		for g := 1; g < n/3; g = 3*g + 1 {
			gaps = append(gaps, g)
		}
	case GapsHibbard:
		for g := 1; g < n; g = 2*g + 1 { // 2^k − 1
			gaps = append(gaps, g)
		}
	case GapsSedgewick:
		// 4^k + 3·2^(k−1) + 1, with the sequence's leading 1.
		gaps = append(gaps, 1)
		for k, pow4, pow2 := 1, 4, 1; ; k, pow4, pow2 = k+1, pow4*4, pow2*2 {
			g := pow4 + 3*pow2 + 1
			if g >= n {
				break
			}
			gaps = append(gaps, g)
		}
	default: // GapsHalving
		for g := n / 2; g > 0; g /= 2 {
			gaps = append(gaps, g)
		}
		// Already descending; return as-is.
		return gaps
	}

	// The generators above build ascending sequences; reverse them.
	for i, j := 0, len(gaps)-1; i < j; i, j = i+1, j-1 {
		gaps[i], gaps[j] = gaps[j], gaps[i]
	}
	if len(gaps) == 0 {
		gaps = []int{1}
	}

	return gaps
}
