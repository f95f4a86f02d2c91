package stack

// ListStack is a linked-node LIFO stack: every Push allocates one node and
// never moves existing elements. The zero value is ready to use.
type ListStack[T any] struct {
	top  *lnode[T]
	size int
}

type lnode[T any] struct {
	value T
	below *lnode[T]
}

// NewListStack returns a ListStack seeded by Push per value.
func NewListStack[T any](values ...T) *ListStack[T] {
	s := &ListStack[T]{}
	for _, v := range values {
		s.Push(v)
	}

	return s
}

// Len reports the number of elements. O(1)
func (s *ListStack[T]) Len() int { return s.size }

// Empty reports whether the stack has no elements. O(1)
func (s *ListStack[T]) Empty() bool { return s.size == 0 }

// Push places value on top. O(1)
func (s *ListStack[T]) Push(value T) {
	s.top = &lnode[T]{value: value, below: s.top}
	s.size++
}

// Pop removes and returns the top element, or ErrEmptyStack. O(1)
func (s *ListStack[T]) Pop() (T, error) {
	if s.top == nil {
		var zero T
		return zero, ErrEmptyStack
	}
	v := s.top.value
	s.top = s.top.below
	s.size--

	return v, nil
}

// Peek returns the top element without removing it, or ErrEmptyStack. O(1)
func (s *ListStack[T]) Peek() (T, error) {
	if s.top == nil {
		var zero T
		return zero, ErrEmptyStack
	}

	return s.top.value, nil
}

// Values returns the elements bottom to top as a fresh slice. O(n)
func (s *ListStack[T]) Values() []T {
	out := make([]T, s.size)
	i := s.size - 1
	for n := s.top; n != nil; n = n.below {
		out[i] = n.value
		i--
	}

	return out
}

// Clear removes every element. O(1)
func (s *ListStack[T]) Clear() {
	s.top, s.size = nil, 0
}
