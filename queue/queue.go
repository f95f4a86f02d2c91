package queue

import "errors"

// Sentinel errors for queue operations.
var (
	// ErrEmptyQueue indicates Dequeue, Front or Back on a queue with no elements.
	ErrEmptyQueue = errors.New("queue: queue is empty")

	// ErrFullQueue indicates Enqueue on a Ring at capacity.
	ErrFullQueue = errors.New("queue: ring is full")
)

type qnode[T any] struct {
	value T
	next  *qnode[T]
}

// Queue is an unbounded linked FIFO queue. The zero value is ready to use.
type Queue[T any] struct {
	head *qnode[T]
	tail *qnode[T]
	size int
}

// New returns a Queue seeded by Enqueue per value.
func New[T any](values ...T) *Queue[T] {
	q := &Queue[T]{}
	for _, v := range values {
		q.Enqueue(v)
	}

	return q
}

// Len reports the number of elements. O(1)
func (q *Queue[T]) Len() int { return q.size }

// Empty reports whether the queue has no elements. O(1)
func (q *Queue[T]) Empty() bool { return q.size == 0 }

// Enqueue appends value at the back. O(1)
func (q *Queue[T]) Enqueue(value T) {
	n := &qnode[T]{value: value}
	if q.tail == nil {
		q.head, q.tail = n, n
	} else {
		q.tail.next = n
		q.tail = n
	}
	q.size++
}

// Dequeue removes and returns the front element, or ErrEmptyQueue. O(1)
func (q *Queue[T]) Dequeue() (T, error) {
	if q.head == nil {
		var zero T
		return zero, ErrEmptyQueue
	}
	v := q.head.value
	q.head = q.head.next
	if q.head == nil {
		q.tail = nil
	}
	q.size--

	return v, nil
}

// Front returns the front element without removing it, or ErrEmptyQueue.
func (q *Queue[T]) Front() (T, error) {
	if q.head == nil {
		var zero T
		return zero, ErrEmptyQueue
	}

	return q.head.value, nil
}

// Back returns the back element without removing it, or ErrEmptyQueue.
func (q *Queue[T]) Back() (T, error) {
	if q.tail == nil {
		var zero T
		return zero, ErrEmptyQueue
	}

	return q.tail.value, nil
}

// Values returns the elements front to back as a fresh slice. O(n)
func (q *Queue[T]) Values() []T {
	out := make([]T, 0, q.size)
	for n := q.head; n != nil; n = n.next {
		out = append(out, n.value)
	}

	return out
}

// Clear removes every element. O(1)
func (q *Queue[T]) Clear() {
	q.head, q.tail, q.size = nil, nil, 0
}
