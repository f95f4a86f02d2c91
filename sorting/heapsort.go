package sorting

import "cmp"

// Heap sorts s in place: build a max-heap over the slice bottom-up, then
// repeatedly swap the root behind the shrinking heap boundary.
// Complexity: O(n log n) always; in place, not stable.
func Heap[T cmp.Ordered](s []T) {
	// 1) Heapify: sift down every internal node, deepest first.
	for i := len(s)/2 - 1; i >= 0; i-- {
		siftDown(s, i, len(s))
	}

	// 2) Selection phase: the max moves to the end, the heap shrinks.
	for end := len(s) - 1; end > 0; end-- {
		s[0], s[end] = s[end], s[0]
		siftDown(s, 0, end)
	}
}

// siftDown restores the max-heap property for the subtree at i within
// s[:size].
func siftDown[T cmp.Ordered](s []T, i, size int) {
	for {
		left, right := 2*i+1, 2*i+2
		largest := i
		if left < size && s[left] > s[largest] {
			largest = left
		}
		if right < size && s[right] > s[largest] {
			largest = right
		}
		if largest == i {
			return
		}
		s[i], s[largest] = s[largest], s[i]
		i = largest
	}
}
