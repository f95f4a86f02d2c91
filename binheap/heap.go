package binheap

import (
	"cmp"
	"errors"
)

// ErrEmptyHeap indicates Pop or Peek was called with no elements present.
var ErrEmptyHeap = errors.New("binheap: heap is empty")

// Heap is an array-backed binary heap: data[0] is the top, the children of
// index i sit at 2i+1 and 2i+2. The less function decides what "top"
// means; it must be a strict weak ordering.
type Heap[T any] struct {
	data []T
	less func(a, b T) bool
}

// New returns an empty heap ordered by less. Panics if less is nil.
func New[T any](less func(a, b T) bool) *Heap[T] {
	if less == nil {
		panic("binheap: nil less function")
	}

	return &Heap[T]{less: less}
}

// NewMin returns a min-heap over T's natural ordering: Pop yields the
// smallest element.
func NewMin[T cmp.Ordered]() *Heap[T] {
	return New(func(a, b T) bool { return a < b })
}

// NewMax returns a max-heap over T's natural ordering: Pop yields the
// largest element.
func NewMax[T cmp.Ordered]() *Heap[T] {
	return New(func(a, b T) bool { return a > b })
}

// FromSlice builds a heap over a copy of values using bottom-up heapify.
// Complexity: O(n), against O(n log n) for n pushes.
func FromSlice[T any](less func(a, b T) bool, values []T) *Heap[T] {
	h := New(less)
	h.data = make([]T, len(values))
	copy(h.data, values)
	for i := len(h.data)/2 - 1; i >= 0; i-- {
		h.siftDown(i)
	}

	return h
}

// Len reports the number of elements. O(1)
func (h *Heap[T]) Len() int { return len(h.data) }

// Empty reports whether the heap has no elements. O(1)
func (h *Heap[T]) Empty() bool { return len(h.data) == 0 }

// Push adds value. O(log n)
func (h *Heap[T]) Push(value T) {
	h.data = append(h.data, value)
	h.siftUp(len(h.data) - 1)
}

// Pop removes and returns the top element, or ErrEmptyHeap. O(log n)
func (h *Heap[T]) Pop() (T, error) {
	if len(h.data) == 0 {
		var zero T
		return zero, ErrEmptyHeap
	}
	top := h.data[0]
	last := len(h.data) - 1
	h.data[0] = h.data[last]
	var zero T
	h.data[last] = zero
	h.data = h.data[:last]
	if last > 0 {
		h.siftDown(0)
	}

	return top, nil
}

// Peek returns the top element without removing it, or ErrEmptyHeap. O(1)
func (h *Heap[T]) Peek() (T, error) {
	if len(h.data) == 0 {
		var zero T
		return zero, ErrEmptyHeap
	}

	return h.data[0], nil
}

// TopK removes and returns up to k top elements in pop order.
// Complexity: O(k log n)
func (h *Heap[T]) TopK(k int) []T {
	if k < 0 {
		k = 0
	}
	if k > len(h.data) {
		k = len(h.data)
	}
	out := make([]T, 0, k)
	for i := 0; i < k; i++ {
		v, _ := h.Pop()
		out = append(out, v)
	}

	return out
}

// Merge drains other into h. Both heaps may use different orderings; the
// merged elements obey h's. After Merge, other is empty.
// Complexity: O(m log(n+m))
func (h *Heap[T]) Merge(other *Heap[T]) {
	for _, v := range other.data {
		h.Push(v)
	}
	other.Clear()
}

// Clear removes every element, keeping the backing array. O(n)
func (h *Heap[T]) Clear() {
	var zero T
	for i := range h.data {
		h.data[i] = zero
	}
	h.data = h.data[:0]
}

// Verify re-checks the heap property over the whole array; it exists for
// tests and debugging. O(n)
func (h *Heap[T]) Verify() bool {
	for i := 1; i < len(h.data); i++ {
		parent := (i - 1) / 2
		if h.less(h.data[i], h.data[parent]) {
			return false
		}
	}

	return true
}

// siftUp bubbles the element at i toward the root while it sorts before
// its parent.
func (h *Heap[T]) siftUp(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if !h.less(h.data[i], h.data[parent]) {
			return
		}
		h.data[i], h.data[parent] = h.data[parent], h.data[i]
		i = parent
	}
}

// siftDown sinks the element at i below any child that sorts before it,
// always swapping with the smaller (per less) child.
func (h *Heap[T]) siftDown(i int) {
	n := len(h.data)
	for {
		left, right := 2*i+1, 2*i+2
		smallest := i
		if left < n && h.less(h.data[left], h.data[smallest]) {
			smallest = left
		}
		if right < n && h.less(h.data[right], h.data[smallest]) {
			smallest = right
		}
		if smallest == i {
			return
		}
		h.data[i], h.data[smallest] = h.data[smallest], h.data[i]
		i = smallest
	}
}
