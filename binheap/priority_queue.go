package binheap

import "cmp"

// pqItem carries one queued element. seq is a monotonically increasing
// insertion counter: equal priorities compare by seq, so ties dequeue FIFO.
type pqItem[T any, P cmp.Ordered] struct {
	value    T
	priority P
	seq      uint64
}

// PriorityQueue dequeues the lowest-priority item first (or highest for
// NewMaxQueue). It is a thin wrapper over Heap with stable tie-breaking.
type PriorityQueue[T any, P cmp.Ordered] struct {
	heap *Heap[pqItem[T, P]]
	seq  uint64
}

// NewQueue returns an empty min-priority queue: Pop yields the item with
// the smallest priority.
func NewQueue[T any, P cmp.Ordered]() *PriorityQueue[T, P] {
	return &PriorityQueue[T, P]{
		heap: New(func(a, b pqItem[T, P]) bool {
			if a.priority != b.priority {
				return a.priority < b.priority
			}

			return a.seq < b.seq
		}),
	}
}

// NewMaxQueue returns an empty max-priority queue: Pop yields the item
// with the largest priority.
func NewMaxQueue[T any, P cmp.Ordered]() *PriorityQueue[T, P] {
	return &PriorityQueue[T, P]{
		heap: New(func(a, b pqItem[T, P]) bool {
			if a.priority != b.priority {
				return a.priority > b.priority
			}

			return a.seq < b.seq
		}),
	}
}

// Len reports the number of queued items. O(1)
func (q *PriorityQueue[T, P]) Len() int { return q.heap.Len() }

// Empty reports whether the queue has no items. O(1)
func (q *PriorityQueue[T, P]) Empty() bool { return q.heap.Empty() }

// Push enqueues value with the given priority. O(log n)
func (q *PriorityQueue[T, P]) Push(value T, priority P) {
	q.seq++
	q.heap.Push(pqItem[T, P]{value: value, priority: priority, seq: q.seq})
}

// Pop dequeues and returns the best item and its priority, or ErrEmptyHeap.
// O(log n)
func (q *PriorityQueue[T, P]) Pop() (T, P, error) {
	item, err := q.heap.Pop()
	if err != nil {
		var zeroT T
		var zeroP P
		return zeroT, zeroP, err
	}

	return item.value, item.priority, nil
}

// Peek returns the best item and its priority without removing it, or
// ErrEmptyHeap. O(1)
func (q *PriorityQueue[T, P]) Peek() (T, P, error) {
	item, err := q.heap.Peek()
	if err != nil {
		var zeroT T
		var zeroP P
		return zeroT, zeroP, err
	}

	return item.value, item.priority, nil
}

// Clear removes every item. O(n)
func (q *PriorityQueue[T, P]) Clear() { q.heap.Clear() }
