package list

// Ring is a circular singly linked list: the last node links back to the
// first. Only the tail pointer is stored; the head is tail.next, which
// makes both PushFront and PushBack O(1).
// The zero value is an empty ring ready to use.
type Ring[T any] struct {
	tail *snode[T]
	size int
}

// NewRing returns an empty Ring seeded by PushBack per value.
func NewRing[T any](values ...T) *Ring[T] {
	r := &Ring[T]{}
	for _, v := range values {
		r.PushBack(v)
	}

	return r
}

// Len reports the number of elements. O(1)
func (r *Ring[T]) Len() int { return r.size }

// Empty reports whether the ring has no elements. O(1)
func (r *Ring[T]) Empty() bool { return r.size == 0 }

// PushBack appends value just before the head. O(1)
func (r *Ring[T]) PushBack(value T) {
	n := &snode[T]{value: value}
	if r.tail == nil {
		n.next = n
	} else {
		n.next = r.tail.next
		r.tail.next = n
	}
	r.tail = n
	r.size++
}

// PushFront prepends value as the new head. Same splice as PushBack, but
// the tail pointer stays put, so the new node is tail.next — the head. O(1)
func (r *Ring[T]) PushFront(value T) {
	n := &snode[T]{value: value}
	if r.tail == nil {
		n.next = n
		r.tail = n
	} else {
		n.next = r.tail.next
		r.tail.next = n
	}
	r.size++
}

// PopFront removes and returns the head, or ErrEmptyList. O(1)
func (r *Ring[T]) PopFront() (T, error) {
	if r.tail == nil {
		var zero T
		return zero, ErrEmptyList
	}
	head := r.tail.next
	if head == r.tail {
		r.tail = nil
	} else {
		r.tail.next = head.next
	}
	r.size--

	return head.value, nil
}

// Front returns the head without removing it, or ErrEmptyList.
func (r *Ring[T]) Front() (T, error) {
	if r.tail == nil {
		var zero T
		return zero, ErrEmptyList
	}

	return r.tail.next.value, nil
}

// Rotate advances the ring by k positions: the element k steps from the
// head becomes the new head. Negative k rotates backwards. O(k mod Len)
func (r *Ring[T]) Rotate(k int) {
	if r.size == 0 {
		return
	}
	k %= r.size
	if k < 0 {
		k += r.size
	}
	for ; k > 0; k-- {
		r.tail = r.tail.next
	}
}

// Values returns the elements head to tail as a fresh slice. O(n)
func (r *Ring[T]) Values() []T {
	out := make([]T, 0, r.size)
	if r.tail == nil {
		return out
	}
	n := r.tail.next
	for i := 0; i < r.size; i++ {
		out = append(out, n.value)
		n = n.next
	}

	return out
}

// Clear removes every element. O(1)
func (r *Ring[T]) Clear() {
	r.tail, r.size = nil, 0
}
