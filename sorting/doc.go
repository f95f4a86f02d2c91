// Package sorting implements the classic comparison and distribution
// sorts over slices of ordered elements. Every sort works on the caller's
// slice; the in-place group sorts it directly, while Merge, Counting and
// Radix allocate the auxiliary buffers their algorithms require.
//
// Comparison sorts:
//
//   - Bubble     O(n²), adjacent swaps, early exit on a clean pass
//   - Insertion  O(n²) worst, O(n) on nearly-sorted input
//   - Selection  O(n²), minimum swaps (n−1)
//   - Merge      O(n log n), stable, O(n) buffer
//   - Quick      O(n log n) expected; pivot strategy selectable via
//     WithPivot (First, Last, Middle, Random, MedianOfThree)
//   - Heap       O(n log n), in-place max-heap selection
//   - Shell      gap-sequence insertion sort; sequence selectable via
//     WithGaps (Halving, Knuth, Hibbard, Sedgewick)
//
// Distribution sorts (integer keys only):
//
//   - Counting   O(n + k) for value range k; negative values supported
//   - Radix      O(d·n) base-256 LSD passes; negative values supported
//
// None of the variants share helpers — each is written as the textbook
// presents it, so they can be read and compared side by side.
package sorting
