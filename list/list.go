package list

// snode is a singly linked node.
type snode[T any] struct {
	value T
	next  *snode[T]
}

// List is a singly linked list with head and tail pointers.
// The zero value is an empty list ready to use.
type List[T any] struct {
	head *snode[T]
	tail *snode[T]
	size int
}

// NewList returns an empty List seeded with the given values back to front
// of the argument order (PushBack per value).
func NewList[T any](values ...T) *List[T] {
	l := &List[T]{}
	for _, v := range values {
		l.PushBack(v)
	}

	return l
}

// Len reports the number of elements. O(1)
func (l *List[T]) Len() int { return l.size }

// Empty reports whether the list has no elements. O(1)
func (l *List[T]) Empty() bool { return l.size == 0 }

// PushFront prepends value. O(1)
func (l *List[T]) PushFront(value T) {
	n := &snode[T]{value: value, next: l.head}
	l.head = n
	if l.tail == nil {
		l.tail = n
	}
	l.size++
}

// PushBack appends value. O(1)
func (l *List[T]) PushBack(value T) {
	n := &snode[T]{value: value}
	if l.tail == nil {
		l.head, l.tail = n, n
	} else {
		l.tail.next = n
		l.tail = n
	}
	l.size++
}

// PopFront removes and returns the first element, or ErrEmptyList. O(1)
func (l *List[T]) PopFront() (T, error) {
	if l.head == nil {
		var zero T
		return zero, ErrEmptyList
	}
	v := l.head.value
	l.head = l.head.next
	if l.head == nil {
		l.tail = nil
	}
	l.size--

	return v, nil
}

// PopBack removes and returns the last element, or ErrEmptyList.
// O(n): a singly linked list has to walk to the predecessor of tail.
func (l *List[T]) PopBack() (T, error) {
	if l.head == nil {
		var zero T
		return zero, ErrEmptyList
	}
	v := l.tail.value
	if l.head == l.tail {
		l.head, l.tail = nil, nil
	} else {
		n := l.head
		for n.next != l.tail {
			n = n.next
		}
		n.next = nil
		l.tail = n
	}
	l.size--

	return v, nil
}

// Front returns the first element without removing it, or ErrEmptyList.
func (l *List[T]) Front() (T, error) {
	if l.head == nil {
		var zero T
		return zero, ErrEmptyList
	}

	return l.head.value, nil
}

// Back returns the last element without removing it, or ErrEmptyList.
func (l *List[T]) Back() (T, error) {
	if l.tail == nil {
		var zero T
		return zero, ErrEmptyList
	}

	return l.tail.value, nil
}

// InsertAt inserts value so that it ends up at position index
// (0 prepends, Len appends). O(n)
func (l *List[T]) InsertAt(index int, value T) error {
	if index < 0 || index > l.size {
		return ErrIndexOutOfRange
	}
	switch index {
	case 0:
		l.PushFront(value)
	case l.size:
		l.PushBack(value)
	default:
		prev := l.head
		for i := 1; i < index; i++ {
			prev = prev.next
		}
		prev.next = &snode[T]{value: value, next: prev.next}
		l.size++
	}

	return nil
}

// RemoveAt removes and returns the element at index. O(n)
func (l *List[T]) RemoveAt(index int) (T, error) {
	if index < 0 || index >= l.size {
		var zero T
		return zero, ErrIndexOutOfRange
	}
	if index == 0 {
		return l.PopFront()
	}

	prev := l.head
	for i := 1; i < index; i++ {
		prev = prev.next
	}
	n := prev.next
	prev.next = n.next
	if n == l.tail {
		l.tail = prev
	}
	l.size--

	return n.value, nil
}

// Reverse reverses the list in place. O(n)
func (l *List[T]) Reverse() {
	var prev *snode[T]
	n := l.head
	l.tail = l.head
	for n != nil {
		next := n.next
		n.next = prev
		prev = n
		n = next
	}
	l.head = prev
}

// Contains reports whether eq matches any element. O(n)
func (l *List[T]) Contains(eq func(T) bool) bool {
	for n := l.head; n != nil; n = n.next {
		if eq(n.value) {
			return true
		}
	}

	return false
}

// Values returns the elements front to back as a fresh slice. O(n)
func (l *List[T]) Values() []T {
	out := make([]T, 0, l.size)
	for n := l.head; n != nil; n = n.next {
		out = append(out, n.value)
	}

	return out
}

// Clear removes every element. O(1)
func (l *List[T]) Clear() {
	l.head, l.tail, l.size = nil, nil, 0
}
