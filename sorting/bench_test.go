// Package sorting_test provides benchmarks comparing the O(n log n)
// variants on identical random input.
package sorting_test

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/velmaran/strukt/sorting"
)

const benchSize = 10_000

func benchInput() []int {
	r := rand.New(rand.NewSource(3))
	s := make([]int, benchSize)
	for i := range s {
		s[i] = r.Int()
	}

	return s
}

func runSortBench(b *testing.B, sortFn func([]int)) {
	input := benchInput()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		work := slices.Clone(input)
		b.StartTimer()
		sortFn(work)
	}
}

func BenchmarkMerge(b *testing.B) { runSortBench(b, sorting.Merge[int]) }
func BenchmarkHeap(b *testing.B)  { runSortBench(b, sorting.Heap[int]) }
func BenchmarkQuick_Last(b *testing.B) {
	runSortBench(b, func(s []int) { sorting.Quick(s) })
}
func BenchmarkQuick_MedianOfThree(b *testing.B) {
	runSortBench(b, func(s []int) { sorting.Quick(s, sorting.WithPivot(sorting.PivotMedianOfThree)) })
}
func BenchmarkShell_Knuth(b *testing.B) {
	runSortBench(b, func(s []int) { sorting.Shell(s, sorting.WithGaps(sorting.GapsKnuth)) })
}
func BenchmarkRadix(b *testing.B) { runSortBench(b, sorting.Radix[int]) }
