package queue

// Ring is a bounded FIFO queue over a fixed circular buffer. Capacity is
// set at construction; Enqueue on a full ring fails with ErrFullQueue
// rather than growing or overwriting.
type Ring[T any] struct {
	buf  []T
	head int // index of the front element
	size int
}

// NewRing returns an empty Ring with the given capacity.
// Panics if capacity is not positive — a zero-capacity ring can never
// accept an element, so constructing one is a programming error.
func NewRing[T any](capacity int) *Ring[T] {
	if capacity <= 0 {
		panic("queue: ring capacity must be positive")
	}

	return &Ring[T]{buf: make([]T, capacity)}
}

// Len reports the number of elements. O(1)
func (r *Ring[T]) Len() int { return r.size }

// Cap reports the fixed capacity. O(1)
func (r *Ring[T]) Cap() int { return len(r.buf) }

// Empty reports whether the ring has no elements. O(1)
func (r *Ring[T]) Empty() bool { return r.size == 0 }

// Full reports whether the ring is at capacity. O(1)
func (r *Ring[T]) Full() bool { return r.size == len(r.buf) }

// Enqueue appends value at the back, or returns ErrFullQueue. O(1)
func (r *Ring[T]) Enqueue(value T) error {
	if r.Full() {
		return ErrFullQueue
	}
	r.buf[(r.head+r.size)%len(r.buf)] = value
	r.size++

	return nil
}

// Dequeue removes and returns the front element, or ErrEmptyQueue. O(1)
func (r *Ring[T]) Dequeue() (T, error) {
	if r.size == 0 {
		var zero T
		return zero, ErrEmptyQueue
	}
	v := r.buf[r.head]
	var zero T
	r.buf[r.head] = zero // release the slot for the GC
	r.head = (r.head + 1) % len(r.buf)
	r.size--

	return v, nil
}

// Front returns the front element without removing it, or ErrEmptyQueue.
func (r *Ring[T]) Front() (T, error) {
	if r.size == 0 {
		var zero T
		return zero, ErrEmptyQueue
	}

	return r.buf[r.head], nil
}

// Back returns the back element without removing it, or ErrEmptyQueue.
func (r *Ring[T]) Back() (T, error) {
	if r.size == 0 {
		var zero T
		return zero, ErrEmptyQueue
	}

	return r.buf[(r.head+r.size-1)%len(r.buf)], nil
}

// Values returns the elements front to back as a fresh slice. O(n)
func (r *Ring[T]) Values() []T {
	out := make([]T, 0, r.size)
	for i := 0; i < r.size; i++ {
		out = append(out, r.buf[(r.head+i)%len(r.buf)])
	}

	return out
}

// Clear removes every element, keeping the buffer. O(n)
func (r *Ring[T]) Clear() {
	var zero T
	for i := range r.buf {
		r.buf[i] = zero
	}
	r.head, r.size = 0, 0
}
