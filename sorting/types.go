// Package sorting: variant selectors and functional options for the
// configurable sorts.
package sorting

// PivotStrategy selects how Quick picks its pivot element.
type PivotStrategy int

const (
	// PivotLast uses the final element (Lomuto's textbook default).
	PivotLast PivotStrategy = iota

	// PivotFirst uses the first element.
	PivotFirst

	// PivotMiddle uses the middle element.
	PivotMiddle

	// PivotRandom picks a uniformly random element, defeating adversarial
	// orderings at the cost of an RNG call per partition.
	PivotRandom

	// PivotMedianOfThree takes the median of first, middle and last,
	// which behaves well on sorted and reverse-sorted input.
	PivotMedianOfThree
)

// GapSequence selects the gap progression Shell uses.
type GapSequence int

const (
	// GapsHalving is Shell's original n/2, n/4, ..., 1.
	GapsHalving GapSequence = iota

	// GapsKnuth uses 1, 4, 13, 40, ... (3h+1).
	GapsKnuth

	// GapsHibbard uses 1, 3, 7, 15, ... (2^k − 1).
	GapsHibbard

	// GapsSedgewick uses 1, 8, 23, 77, ... (4^k + 3·2^(k−1) + 1).
	GapsSedgewick
)

// QuickOption configures Quick.
type QuickOption func(*quickSettings)

type quickSettings struct {
	pivot   PivotStrategy
	seed    int64
	useSeed bool
}

// WithPivot selects the pivot strategy (default PivotLast).
func WithPivot(p PivotStrategy) QuickOption {
	return func(s *quickSettings) { s.pivot = p }
}

// WithSeed fixes the RNG seed used by PivotRandom, for reproducible runs.
func WithSeed(seed int64) QuickOption {
	return func(s *quickSettings) { s.seed, s.useSeed = seed, true }
}

// ShellOption configures Shell.
type ShellOption func(*shellSettings)

type shellSettings struct {
	gaps GapSequence
}

// WithGaps selects the gap sequence (default GapsHalving).
func WithGaps(g GapSequence) ShellOption {
	return func(s *shellSettings) { s.gaps = g }
}

// Integer constrains the distribution sorts to integer keys.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}
