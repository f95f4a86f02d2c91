package stack

import "errors"

// ErrEmptyStack indicates Pop or Peek was called on a stack with no elements.
var ErrEmptyStack = errors.New("stack: stack is empty")

// Stack is a slice-backed LIFO stack. The zero value is ready to use.
type Stack[T any] struct {
	items []T
}

// New returns a Stack seeded by Push per value (so the last argument is on
// top).
func New[T any](values ...T) *Stack[T] {
	s := &Stack[T]{items: make([]T, 0, len(values))}
	s.items = append(s.items, values...)

	return s
}

// Len reports the number of elements. O(1)
func (s *Stack[T]) Len() int { return len(s.items) }

// Empty reports whether the stack has no elements. O(1)
func (s *Stack[T]) Empty() bool { return len(s.items) == 0 }

// Push places value on top. Amortized O(1)
func (s *Stack[T]) Push(value T) {
	s.items = append(s.items, value)
}

// Pop removes and returns the top element, or ErrEmptyStack. O(1)
func (s *Stack[T]) Pop() (T, error) {
	if len(s.items) == 0 {
		var zero T
		return zero, ErrEmptyStack
	}
	top := s.items[len(s.items)-1]
	var zero T
	s.items[len(s.items)-1] = zero // release the reference for the GC
	s.items = s.items[:len(s.items)-1]

	return top, nil
}

// Peek returns the top element without removing it, or ErrEmptyStack. O(1)
func (s *Stack[T]) Peek() (T, error) {
	if len(s.items) == 0 {
		var zero T
		return zero, ErrEmptyStack
	}

	return s.items[len(s.items)-1], nil
}

// Values returns the elements bottom to top as a fresh slice. O(n)
func (s *Stack[T]) Values() []T {
	out := make([]T, len(s.items))
	copy(out, s.items)

	return out
}

// Clear removes every element, keeping the backing array. O(n)
func (s *Stack[T]) Clear() {
	var zero T
	for i := range s.items {
		s.items[i] = zero
	}
	s.items = s.items[:0]
}
