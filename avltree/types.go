// Package avltree declares the Tree and node types, sentinel errors,
// and the New/NewFunc constructors. The rebalancing algorithms live in
// avltree.go, the traversals in traversal.go, and the rendering helpers
// in render.go.
package avltree

import (
	"cmp"
	"errors"
)

// Sentinel errors for tree accessors.
var (
	// ErrEmptyTree indicates Min or Max was called on a tree with no elements.
	ErrEmptyTree = errors.New("avltree: tree is empty")
)

// node is one stored element with its local balance metadata.
// Each node exclusively owns its left and right subtrees; there are no
// parent pointers, so rotations relink whole subtrees by moving the
// child pointers of at most three nodes.
type node[T any] struct {
	value  T
	left   *node[T]
	right  *node[T]
	height int // height of the subtree rooted here; a leaf has height 1
}

// Tree is a height-balanced binary search tree holding unique values of T.
//
// The zero value is not usable: a Tree needs its comparison function, so
// always construct through New or NewFunc.
type Tree[T any] struct {
	root    *node[T]
	size    int
	compare func(a, b T) int // strict total order: <0, 0, >0
}

// New returns an empty Tree ordered by the natural ordering of T
// (cmp.Compare). Any seed values are inserted sequentially, so duplicates
// among the seeds are dropped.
//
// Complexity: O(k log k) for k seed values.
func New[T cmp.Ordered](seeds ...T) *Tree[T] {
	return NewFunc(cmp.Compare[T], seeds...)
}

// NewFunc returns an empty Tree ordered by the given comparison function,
// which must implement a strict total order: negative when a sorts before b,
// zero when equal, positive when a sorts after b. Any seed values are
// inserted sequentially.
//
// NewFunc panics if compare is nil — there is no meaningful tree without
// an ordering.
func NewFunc[T any](compare func(a, b T) int, seeds ...T) *Tree[T] {
	if compare == nil {
		panic("avltree: nil comparison function")
	}
	t := &Tree[T]{compare: compare}
	for _, v := range seeds {
		t.Insert(v)
	}

	return t
}

// Len reports the number of stored values.
// Complexity: O(1)
func (t *Tree[T]) Len() int { return t.size }

// Empty reports whether the tree holds no values.
// Complexity: O(1)
func (t *Tree[T]) Empty() bool { return t.size == 0 }

// Height reports the height of the tree: 0 for an empty tree, 1 for a
// single node. Reads the cached root height, so it costs O(1).
func (t *Tree[T]) Height() int { return height(t.root) }

// Clear removes every value. The old nodes become unreachable and are
// reclaimed by the garbage collector; no explicit teardown pass is needed
// because ownership is strictly tree-shaped (no cycles).
// Complexity: O(1)
func (t *Tree[T]) Clear() {
	t.root = nil
	t.size = 0
}

// height is the one height helper used by every call site: an absent
// subtree has height 0. Keeping this definition in a single place keeps
// the balance-factor arithmetic consistent.
func height[T any](n *node[T]) int {
	if n == nil {
		return 0
	}

	return n.height
}

// balanceOf computes height(left) − height(right) for n, 0 for nil.
func balanceOf[T any](n *node[T]) int {
	if n == nil {
		return 0
	}

	return height(n.left) - height(n.right)
}

// reheight recomputes n.height from its children's cached heights.
func reheight[T any](n *node[T]) {
	n.height = 1 + max(height(n.left), height(n.right))
}
