// Package avltree: the four traversal producers and the Walk callback.
// Every traversal materializes a fresh slice sized to Len() up front; none
// of them expose live tree state.
package avltree

// InOrder returns every stored value in ascending order (left, self,
// right). This is the canonical way to extract the sorted content.
//
// Complexity: O(n)
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

// PreOrder returns the values in self, left, right order. Re-inserting a
// PreOrder sequence into an empty plain BST reproduces the same shape,
// which makes it the natural serialization order.
//
// Complexity: O(n)
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

// PostOrder returns the values in left, right, self order — children
// before parents, the order an explicit teardown would free nodes in.
//
// Complexity: O(n)
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

// LevelOrder returns the values breadth-first, top level to bottom, left
// to right within a level, driven by a FIFO queue of pending nodes.
//
// Complexity: O(n)
func (t *Tree[T]) LevelOrder() []T {
	out := make([]T, 0, t.size)
	if t.root == nil {
		return out
	}

	queue := make([]*node[T], 0, t.size)
	queue = append(queue, t.root)
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

// Walk visits the values in ascending order without materializing a slice,
// calling visit for each; returning false stops the walk early.
//
// Complexity: O(n), O(log n) stack
func (t *Tree[T]) Walk(visit func(value T) bool) {
	var rec func(n *node[T]) bool
	rec = func(n *node[T]) bool {
		if n == nil {
			return true
		}
		if !rec(n.left) {
			return false
		}
		if !visit(n.value) {
			return false
		}

		return rec(n.right)
	}
	rec(t.root)
}
