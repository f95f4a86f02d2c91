package bst

import (
	"cmp"
	"errors"
)

// ErrEmptyTree indicates Min or Max was called on a tree with no elements.
var ErrEmptyTree = errors.New("bst: tree is empty")

type node[T any] struct {
	value T
	left  *node[T]
	right *node[T]
}

// Tree is an unbalanced binary search tree holding unique values of T.
// Construct through New or NewFunc; the zero value has no ordering.
type Tree[T any] struct {
	root    *node[T]
	size    int
	compare func(a, b T) int
}

// New returns an empty Tree ordered by cmp.Compare, with any seed values
// inserted sequentially.
func New[T cmp.Ordered](seeds ...T) *Tree[T] {
	return NewFunc(cmp.Compare[T], seeds...)
}

// NewFunc returns an empty Tree ordered by compare (a strict total order).
// Panics if compare is nil.
func NewFunc[T any](compare func(a, b T) int, seeds ...T) *Tree[T] {
	if compare == nil {
		panic("bst: nil comparison function")
	}
	t := &Tree[T]{compare: compare}
	for _, v := range seeds {
		t.Insert(v)
	}

	return t
}

// Len reports the number of stored values.
func (t *Tree[T]) Len() int { return t.size }

// Empty reports whether the tree holds no values.
func (t *Tree[T]) Empty() bool { return t.size == 0 }

// Clear removes every value.
func (t *Tree[T]) Clear() {
	t.root = nil
	t.size = 0
}

// Insert adds value; inserting a present value is a no-op.
// Complexity: O(h), h up to n on adversarial input.
func (t *Tree[T]) Insert(value T) {
	var grew bool
	t.root, grew = t.insert(t.root, value)
	if grew {
		t.size++
	}
}

func (t *Tree[T]) insert(n *node[T], value T) (*node[T], bool) {
	if n == nil {
		return &node[T]{value: value}, true
	}

	var grew bool
	switch c := t.compare(value, n.value); {
	case c < 0:
		n.left, grew = t.insert(n.left, value)
	case c > 0:
		n.right, grew = t.insert(n.right, value)
	}

	return n, grew
}

// Remove deletes value; removing an absent value is a no-op. Two-child
// nodes are replaced by their in-order successor, as in the AVL tree, but
// no rebalancing follows.
func (t *Tree[T]) Remove(value T) {
	var shrank bool
	t.root, shrank = t.remove(t.root, value)
	if shrank {
		t.size--
	}
}

func (t *Tree[T]) remove(n *node[T], value T) (*node[T], bool) {
	if n == nil {
		return nil, false
	}

	var shrank bool
	switch c := t.compare(value, n.value); {
	case c < 0:
		n.left, shrank = t.remove(n.left, value)
	case c > 0:
		n.right, shrank = t.remove(n.right, value)
	default:
		shrank = true
		switch {
		case n.left == nil:
			n = n.right
		case n.right == nil:
			n = n.left
		default:
			succ := n.right
			for succ.left != nil {
				succ = succ.left
			}
			n.value = succ.value
			n.right, _ = t.remove(n.right, succ.value)
		}
	}

	return n, shrank
}

// Contains reports whether value is present.
func (t *Tree[T]) Contains(value T) bool {
	return t.lookup(value) != nil
}

// Find returns a pointer to the stored element equal to value, for callers
// that keep satellite data alongside the ordering key. Mutating the part of
// T the comparison function inspects corrupts the tree; the tree cannot
// detect that.
func (t *Tree[T]) Find(value T) (*T, bool) {
	n := t.lookup(value)
	if n == nil {
		return nil, false
	}

	return &n.value, true
}

// lookup is the shared iterative BST descent.
func (t *Tree[T]) lookup(value T) *node[T] {
	n := t.root
	for n != nil {
		switch c := t.compare(value, n.value); {
		case c < 0:
			n = n.left
		case c > 0:
			n = n.right
		default:
			return n
		}
	}

	return nil
}

// Min returns the smallest stored value, or ErrEmptyTree.
func (t *Tree[T]) Min() (T, error) {
	if t.root == nil {
		var zero T
		return zero, ErrEmptyTree
	}
	n := t.root
	for n.left != nil {
		n = n.left
	}

	return n.value, nil
}

// Max returns the largest stored value, or ErrEmptyTree.
func (t *Tree[T]) Max() (T, error) {
	if t.root == nil {
		var zero T
		return zero, ErrEmptyTree
	}
	n := t.root
	for n.right != nil {
		n = n.right
	}

	return n.value, nil
}

// Height reports the tree height (0 when empty), derived by a full walk —
// unlike the AVL tree, nothing caches it.
// Complexity: O(n)
func (t *Tree[T]) Height() int {
	var rec func(n *node[T]) int
	rec = func(n *node[T]) int {
		if n == nil {
			return 0
		}

		return 1 + max(rec(n.left), rec(n.right))
	}

	return rec(t.root)
}

// InOrder returns the values ascending.
func (t *Tree[T]) InOrder() []T {
	out := make([]T, 0, t.size)
	var rec func(n *node[T])
	rec = func(n *node[T]) {
		if n == nil {
			return
		}
		rec(n.left)
		out = append(out, n.value)
		rec(n.right)
	}
	rec(t.root)

	return out
}

// PreOrder returns the values in self, left, right order.
func (t *Tree[T]) PreOrder() []T {
	out := make([]T, 0, t.size)
	var rec func(n *node[T])
	rec = func(n *node[T]) {
		if n == nil {
			return
		}
		out = append(out, n.value)
		rec(n.left)
		rec(n.right)
	}
	rec(t.root)

	return out
}

// PostOrder returns the values in left, right, self order.
func (t *Tree[T]) PostOrder() []T {
	out := make([]T, 0, t.size)
	var rec func(n *node[T])
	rec = func(n *node[T]) {
		if n == nil {
			return
		}
		rec(n.left)
		rec(n.right)
		out = append(out, n.value)
	}
	rec(t.root)

	return out
}

// LevelOrder returns the values breadth-first.
func (t *Tree[T]) LevelOrder() []T {
	out := make([]T, 0, t.size)
	if t.root == nil {
		return out
	}
	queue := []*node[T]{t.root}
	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]
		out = append(out, n.value)
		if n.left != nil {
			queue = append(queue, n.left)
		}
		if n.right != nil {
			queue = append(queue, n.right)
		}
	}

	return out
}

// IsBST re-verifies the ordering invariant over the whole tree; it exists
// for tests and debugging.
// Complexity: O(n)
func (t *Tree[T]) IsBST() bool {
	var prev *T
	ok := true
	var rec func(n *node[T])
	rec = func(n *node[T]) {
		if n == nil || !ok {
			return
		}
		rec(n.left)
		if prev != nil && t.compare(*prev, n.value) >= 0 {
			ok = false
			return
		}
		v := n.value
		prev = &v
		rec(n.right)
	}
	rec(t.root)

	return ok
}
