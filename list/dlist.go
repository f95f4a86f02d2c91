package list

// dnode is a doubly linked node.
type dnode[T any] struct {
	value T
	prev  *dnode[T]
	next  *dnode[T]
}

// DList is a doubly linked list. Both ends support O(1) push and pop.
// The zero value is an empty list ready to use.
type DList[T any] struct {
	head *dnode[T]
	tail *dnode[T]
	size int
}

// NewDList returns an empty DList seeded by PushBack per value.
func NewDList[T any](values ...T) *DList[T] {
	l := &DList[T]{}
	for _, v := range values {
		l.PushBack(v)
	}

	return l
}

// Len reports the number of elements. O(1)
func (l *DList[T]) Len() int { return l.size }

// Empty reports whether the list has no elements. O(1)
func (l *DList[T]) Empty() bool { return l.size == 0 }

// PushFront prepends value. O(1)
func (l *DList[T]) PushFront(value T) {
	n := &dnode[T]{value: value, next: l.head}
	if l.head != nil {
		l.head.prev = n
	} else {
		l.tail = n
	}
	l.head = n
	l.size++
}

// PushBack appends value. O(1)
func (l *DList[T]) PushBack(value T) {
	n := &dnode[T]{value: value, prev: l.tail}
	if l.tail != nil {
		l.tail.next = n
	} else {
		l.head = n
	}
	l.tail = n
	l.size++
}

// PopFront removes and returns the first element, or ErrEmptyList. O(1)
func (l *DList[T]) PopFront() (T, error) {
	if l.head == nil {
		var zero T
		return zero, ErrEmptyList
	}
	v := l.head.value
	l.head = l.head.next
	if l.head != nil {
		l.head.prev = nil
	} else {
		l.tail = nil
	}
	l.size--

	return v, nil
}

// PopBack removes and returns the last element, or ErrEmptyList. O(1)
func (l *DList[T]) PopBack() (T, error) {
	if l.tail == nil {
		var zero T
		return zero, ErrEmptyList
	}
	v := l.tail.value
	l.tail = l.tail.prev
	if l.tail != nil {
		l.tail.next = nil
	} else {
		l.head = nil
	}
	l.size--

	return v, nil
}

// Front returns the first element, or ErrEmptyList.
func (l *DList[T]) Front() (T, error) {
	if l.head == nil {
		var zero T
		return zero, ErrEmptyList
	}

	return l.head.value, nil
}

// Back returns the last element, or ErrEmptyList.
func (l *DList[T]) Back() (T, error) {
	if l.tail == nil {
		var zero T
		return zero, ErrEmptyList
	}

	return l.tail.value, nil
}

// Reverse reverses the list in place by swapping every node's links. O(n)
func (l *DList[T]) Reverse() {
	for n := l.head; n != nil; n = n.prev { // n.prev is the old n.next
		n.prev, n.next = n.next, n.prev
	}
	l.head, l.tail = l.tail, l.head
}

// Values returns the elements front to back. O(n)
func (l *DList[T]) Values() []T {
	out := make([]T, 0, l.size)
	for n := l.head; n != nil; n = n.next {
		out = append(out, n.value)
	}

	return out
}

// ValuesReverse returns the elements back to front, walking the prev links.
// O(n)
func (l *DList[T]) ValuesReverse() []T {
	out := make([]T, 0, l.size)
	for n := l.tail; n != nil; n = n.prev {
		out = append(out, n.value)
	}

	return out
}

// Clear removes every element. O(1)
func (l *DList[T]) Clear() {
	l.head, l.tail, l.size = nil, nil, 0
}
