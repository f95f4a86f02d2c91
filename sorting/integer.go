package sorting

// Counting sorts s by tallying occurrences over the value range. Negative
// values are handled by offsetting against the minimum. The counts array
// is sized to max−min+1, so this is only sensible for dense ranges.
// Complexity: O(n + k) time and O(k) space for range width k; stable in
// effect (equal integers are indistinguishable).
func Counting[T Integer](s []T) {
	if len(s) < 2 {
		return
	}

	lo, hi := s[0], s[0]
	for _, v := range s[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}

	counts := make([]int, int(hi-lo)+1)
	for _, v := range s {
		counts[int(v-lo)]++
	}

	i := 0
	for offset, c := range counts {
		for ; c > 0; c-- {
			s[i] = lo + T(offset)
			i++
		}
	}
}

// Radix sorts s with base-256 least-significant-digit passes. Negatives
// are split out, sorted by magnitude, and prepended in reverse, so the
// full signed range works.
// Complexity: O(d·n) for d bytes of key width; O(n) auxiliary space.
func Radix[T Integer](s []T) {
	if len(s) < 2 {
		return
	}

	// Partition: negatives (as positive magnitudes) and non-negatives.
	neg := make([]uint64, 0)
	pos := make([]uint64, 0, len(s))
	for _, v := range s {
		if v < 0 {
			neg = append(neg, uint64(-int64(v)))
		} else {
			pos = append(pos, uint64(v))
		}
	}

	radixPass(neg)
	radixPass(pos)

	// Stitch: negatives descend by magnitude, then positives ascend.
	i := 0
	for j := len(neg) - 1; j >= 0; j-- {
		s[i] = T(-int64(neg[j]))
		i++
	}
	for _, m := range pos {
		s[i] = T(m)
		i++
	}
}

// radixPass LSD-sorts magnitudes in place, one byte per pass, skipping
// high-order passes once every remaining byte is zero.
func radixPass(s []uint64) {
	if len(s) < 2 {
		return
	}

	buf := make([]uint64, len(s))
	for shift := uint(0); shift < 64; shift += 8 {
		var counts [256]int
		maxByte := uint64(0)
		for _, v := range s {
			b := (v >> shift) & 0xff
			counts[b]++
			if rest := v >> shift; rest > maxByte {
				maxByte = rest
			}
		}

		// Prefix sums turn counts into write positions.
		total := 0
		for b := 0; b < 256; b++ {
			counts[b], total = total, total+counts[b]
		}
		for _, v := range s {
			b := (v >> shift) & 0xff
			buf[counts[b]] = v
			counts[b]++
		}
		copy(s, buf)

		if maxByte < 256 {
			return // no value has bits above this byte; done
		}
	}
}
