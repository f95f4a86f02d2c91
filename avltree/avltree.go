// Package avltree: insertion, deletion, rebalancing rotations, and point
// queries. The recursive mutators return the (possibly new) subtree root so
// that parents relink rotated subtrees on the unwind path; every ancestor
// of a structural change gets its height recomputed and its balance checked,
// not just the node where the change happened.
package avltree

// Insert adds value to the tree. Inserting a value that is already present
// is a no-op: the structure and Len are left untouched.
//
// Complexity: O(log n)
func (t *Tree[T]) Insert(value T) {
	var grew bool
	t.root, grew = t.insert(t.root, value)
	if grew {
		t.size++
	}
}

// insert descends the BST path for value, creates the leaf, and rebalances
// each ancestor on the way back up. The bool reports whether a node was
// actually created.
func (t *Tree[T]) insert(n *node[T], value T) (*node[T], bool) {
	// 1) Empty slot: the value becomes a fresh leaf.
	if n == nil {
		return &node[T]{value: value, height: 1}, true
	}

	// 2) Standard BST descent; an equal value terminates without change.
	var grew bool
	switch c := t.compare(value, n.value); {
	case c < 0:
		n.left, grew = t.insert(n.left, value)
	case c > 0:
		n.right, grew = t.insert(n.right, value)
	default:
		return n, false // duplicate
	}
	if !grew {
		// Nothing below changed shape, so n's height and balance are intact.
		return n, false
	}

	// 3) Unwind: refresh the cached height, then restore balance if the
	//    insertion tipped this node past the AVL bound.
	reheight(n)
	balance := balanceOf(n)

	// Left-Left: the new value went into the left child's left subtree.
	if balance > 1 && t.compare(value, n.left.value) < 0 {
		return rotateRight(n), true
	}
	// Right-Right: mirror case, single left rotation.
	if balance < -1 && t.compare(value, n.right.value) > 0 {
		return rotateLeft(n), true
	}
	// Left-Right: rotate the left child left, then this node right.
	if balance > 1 && t.compare(value, n.left.value) > 0 {
		n.left = rotateLeft(n.left)
		return rotateRight(n), true
	}
	// Right-Left: mirror double rotation.
	if balance < -1 && t.compare(value, n.right.value) < 0 {
		n.right = rotateRight(n.right)
		return rotateLeft(n), true
	}

	return n, true
}

// Remove deletes value from the tree. Removing an absent value is a no-op:
// the structure and Len are left untouched.
//
// Complexity: O(log n)
func (t *Tree[T]) Remove(value T) {
	var shrank bool
	t.root, shrank = t.remove(t.root, value)
	if shrank {
		t.size--
	}
}

// remove deletes value from the subtree rooted at n and rebalances every
// ancestor on the unwind. The bool reports whether a node was removed.
//
// Rotation-case selection after a deletion keys off the balance factor of
// the taller child with NON-strict comparisons (>= 0 / <= 0): a deletion
// can leave that child perfectly balanced, and a perfectly balanced child
// still takes the single-rotation case. Tightening these to the strict
// comparisons used on insert mis-rotates some delete shapes.
func (t *Tree[T]) remove(n *node[T], value T) (*node[T], bool) {
	if n == nil {
		return nil, false // absent: nothing to do
	}

	// 1) Descend to the doomed node.
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
			// Zero or one child: splice the node out directly.
			n = n.right
		case n.right == nil:
			n = n.left
		default:
			// Two children: adopt the in-order successor's value, then
			// delete that successor from the right subtree. The successor
			// has no left child, so the recursive delete terminates in the
			// splice cases above.
			succ := n.right
			for succ.left != nil {
				succ = succ.left
			}
			n.value = succ.value
			n.right, _ = t.remove(n.right, succ.value)
		}
	}
	if n == nil || !shrank {
		return n, shrank
	}

	// 2) Unwind: refresh height, restore balance.
	reheight(n)
	balance := balanceOf(n)

	// Left-Left: left child leans left or is even.
	if balance > 1 && balanceOf(n.left) >= 0 {
		return rotateRight(n), true
	}
	// Left-Right: left child leans right.
	if balance > 1 && balanceOf(n.left) < 0 {
		n.left = rotateLeft(n.left)
		return rotateRight(n), true
	}
	// Right-Right: right child leans right or is even.
	if balance < -1 && balanceOf(n.right) <= 0 {
		return rotateLeft(n), true
	}
	// Right-Left: right child leans left.
	if balance < -1 && balanceOf(n.right) > 0 {
		n.right = rotateRight(n.right)
		return rotateLeft(n), true
	}

	return n, true
}

// Contains reports whether value is present.
// Complexity: O(log n)
func (t *Tree[T]) Contains(value T) bool {
	return t.lookup(value) != nil
}

// Find returns a pointer to the stored element equal to value, for callers
// that keep satellite data alongside the ordering key. Mutating the part of
// T the comparison function inspects corrupts the tree; the tree cannot
// detect that.
//
// Complexity: O(log n)
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

// Min returns the smallest stored value, or ErrEmptyTree when the tree has
// no elements. T may have no safe default, so emptiness is reported as an
// error rather than a sentinel value.
//
// Complexity: O(log n)
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

// Max returns the largest stored value, or ErrEmptyTree when the tree has
// no elements.
//
// Complexity: O(log n)
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

// Depth returns the number of edges between the root and the node holding
// value (0 for the root itself), and false when value is absent.
//
// Complexity: O(log n)
func (t *Tree[T]) Depth(value T) (int, bool) {
	depth, n := 0, t.root
	for n != nil {
		switch c := t.compare(value, n.value); {
		case c < 0:
			n = n.left
		case c > 0:
			n = n.right
		default:
			return depth, true
		}
		depth++
	}

	return 0, false
}

// LCA returns the value of the lowest common ancestor of a and b: the
// deepest node whose subtree contains both. Reports false when either
// value is absent. A value is its own ancestor, so LCA(x, x) is x.
//
// Complexity: O(log n)
func (t *Tree[T]) LCA(a, b T) (T, bool) {
	var zero T
	if !t.Contains(a) || !t.Contains(b) {
		return zero, false
	}

	n := t.root
	for n != nil {
		ca, cb := t.compare(a, n.value), t.compare(b, n.value)
		switch {
		case ca < 0 && cb < 0:
			n = n.left
		case ca > 0 && cb > 0:
			n = n.right
		default:
			// The two descents part ways here (or one ends here).
			return n.value, true
		}
	}

	return zero, false
}

// IsBalanced re-derives subtree heights from scratch and reports whether
// every node satisfies the AVL bound. It exists for verification and tests;
// a Tree maintains the invariant after every mutation, so production code
// has no reason to call it.
//
// Complexity: O(n)
func (t *Tree[T]) IsBalanced() bool {
	return checkBalance(t.root) >= 0
}

// checkBalance returns the true height of n's subtree, or -1 if any node
// below violates the AVL bound.
func checkBalance[T any](n *node[T]) int {
	if n == nil {
		return 0
	}
	lh := checkBalance(n.left)
	if lh < 0 {
		return -1
	}
	rh := checkBalance(n.right)
	if rh < 0 {
		return -1
	}
	if lh-rh > 1 || rh-lh > 1 {
		return -1
	}

	return 1 + max(lh, rh)
}

// rotateRight performs a single right rotation around y and returns the new
// subtree root x (y's former left child). Only two links move:
//
//	      y                x
//	     / \              / \
//	    x   C    =>      A   y
//	   / \                  / \
//	  A   B                B   C
//
// Heights are refreshed bottom-up: y first (now below x), then x.
func rotateRight[T any](y *node[T]) *node[T] {
	x := y.left
	y.left = x.right
	x.right = y

	reheight(y)
	reheight(x)

	return x
}

// rotateLeft is the mirror of rotateRight: x's right child y becomes the
// new subtree root, x adopts y's former left subtree.
func rotateLeft[T any](x *node[T]) *node[T] {
	y := x.right
	x.right = y.left
	y.left = x

	reheight(x)
	reheight(y)

	return y
}
