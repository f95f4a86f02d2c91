// Package avltree: read-only debug views. Nothing in this file mutates the
// tree; Render and Snapshot are cosmetic/testing surfaces, not part of the
// functional contract.
package avltree

import (
	"fmt"
	"strings"
)

// branch glyphs for Render.
const (
	renderTee    = "├── "
	renderElbow  = "└── "
	renderPipe   = "│   "
	renderIndent = "    "
)

// Entry pairs a stored value with the cached height of its node, in the
// order Snapshot emits them.
type Entry[T any] struct {
	Value  T
	Height int
}

// Snapshot returns a (value, height) pair per node in pre-order. It is the
// structural dump tests use to assert height bookkeeping without reaching
// into unexported state.
//
// Complexity: O(n)
func (t *Tree[T]) Snapshot() []Entry[T] {
	out := make([]Entry[T], 0, t.size)
	var rec func(n *node[T])
	rec = func(n *node[T]) {
		if n == nil {
			return
		}
		out = append(out, Entry[T]{Value: n.value, Height: n.height})
		rec(n.left)
		rec(n.right)
	}
	rec(t.root)

	return out
}

// Render draws the tree as an indented ASCII diagram, one node per line as
// "value (h:height)", left subtree above right. An empty tree renders as
// "(empty)". The output ends with a newline.
//
// Complexity: O(n)
func (t *Tree[T]) Render() string {
	if t.root == nil {
		return "(empty)\n"
	}

	var b strings.Builder
	renderNode(&b, t.root, "", false)

	return b.String()
}

// renderNode writes n and its subtrees. The asLeft flag picks the branch
// glyph and the continuation prefix for descendants.
func renderNode[T any](b *strings.Builder, n *node[T], prefix string, asLeft bool) {
	if n == nil {
		return
	}

	glyph, cont := renderElbow, renderIndent
	if asLeft {
		glyph, cont = renderTee, renderPipe
	}
	fmt.Fprintf(b, "%s%s%v (h:%d)\n", prefix, glyph, n.value, n.height)

	renderNode(b, n.left, prefix+cont, true)
	renderNode(b, n.right, prefix+cont, false)
}

// String summarizes the tree without dumping its contents.
func (t *Tree[T]) String() string {
	return fmt.Sprintf("AVLTree[size=%d, height=%d, balanced=%t]",
		t.size, t.Height(), t.IsBalanced())
}
