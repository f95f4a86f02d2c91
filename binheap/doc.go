// Package binheap provides a generic array-backed binary heap and a
// priority queue built on top of it.
//
// Heap[T] orders elements by a user-supplied less function; NewMin and
// NewMax cover the common orderings for cmp.Ordered types. Push and Pop
// sift in O(log n); Peek is O(1). FromSlice heapifies an existing slice
// bottom-up in O(n), which beats n sequential pushes.
//
// PriorityQueue[T, P] pairs opaque items with an ordered priority and
// dequeues lowest-priority-first (or highest, via NewMaxQueue). Ties are
// broken by insertion order, so equal-priority items dequeue FIFO.
//
// Complexity:
//
//   - Push / Pop:        O(log n)
//   - Peek / Len:        O(1)
//   - FromSlice:         O(n)
//   - TopK:              O(k log n)
//   - Merge:             O(m log(n+m)) for m pushed elements
//   - Verify:            O(n), for tests
//
// Errors:
//
//   - ErrEmptyHeap — Pop or Peek on a heap or queue with no elements.
//
// Neither type is safe for concurrent use.
package binheap
