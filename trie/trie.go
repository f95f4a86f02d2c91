package trie

import (
	"cmp"
	"slices"
)

// tnode is one trie node; terminal marks the end of a stored sequence.
type tnode[S cmp.Ordered] struct {
	children map[S]*tnode[S]
	terminal bool
}

func newTnode[S cmp.Ordered]() *tnode[S] {
	return &tnode[S]{children: make(map[S]*tnode[S])}
}

// orderedSymbols returns n's child symbols in ascending order; every
// multi-child iteration goes through here so output order is stable.
func orderedSymbols[S cmp.Ordered](n *tnode[S]) []S {
	symbols := make([]S, 0, len(n.children))
	for s := range n.children {
		symbols = append(symbols, s)
	}
	slices.Sort(symbols)

	return symbols
}

// Trie is a prefix tree storing unique sequences of S.
type Trie[S cmp.Ordered] struct {
	root *tnode[S]
	size int
}

// New returns an empty Trie, inserting any seed sequences.
func New[S cmp.Ordered](seeds ...[]S) *Trie[S] {
	t := &Trie[S]{root: newTnode[S]()}
	for _, seq := range seeds {
		t.Insert(seq)
	}

	return t
}

// Len reports the number of stored sequences. O(1)
func (t *Trie[S]) Len() int { return t.size }

// Empty reports whether no sequences are stored. O(1)
func (t *Trie[S]) Empty() bool { return t.size == 0 }

// Clear removes every sequence. O(1)
func (t *Trie[S]) Clear() {
	t.root = newTnode[S]()
	t.size = 0
}

// Insert adds seq; inserting a present sequence is a no-op. O(m)
func (t *Trie[S]) Insert(seq []S) {
	n := t.root
	for _, s := range seq {
		child, ok := n.children[s]
		if !ok {
			child = newTnode[S]()
			n.children[s] = child
		}
		n = child
	}
	if !n.terminal {
		n.terminal = true
		t.size++
	}
}

// Remove deletes seq and prunes any nodes left without descendants holding
// stored sequences; removing an absent sequence is a no-op. O(m)
func (t *Trie[S]) Remove(seq []S) {
	t.remove(t.root, seq, 0)
}

// remove reports whether the child at this level should be unlinked.
func (t *Trie[S]) remove(n *tnode[S], seq []S, i int) bool {
	if i == len(seq) {
		if !n.terminal {
			return false // absent: nothing stored here
		}
		n.terminal = false
		t.size--

		return len(n.children) == 0
	}

	child, ok := n.children[seq[i]]
	if !ok {
		return false
	}
	if t.remove(child, seq, i+1) {
		delete(n.children, seq[i])
	}

	return !n.terminal && len(n.children) == 0
}

// Contains reports whether seq was stored (prefix-only matches do not
// count). O(m)
func (t *Trie[S]) Contains(seq []S) bool {
	n := t.descend(seq)

	return n != nil && n.terminal
}

// StartsWith reports whether any stored sequence begins with prefix. O(m)
func (t *Trie[S]) StartsWith(prefix []S) bool {
	return t.descend(prefix) != nil
}

// CountPrefix returns how many stored sequences begin with prefix.
// O(m + subtree)
func (t *Trie[S]) CountPrefix(prefix []S) int {
	n := t.descend(prefix)
	if n == nil {
		return 0
	}

	return countTerminals(n)
}

// WithPrefix returns every stored sequence beginning with prefix, in
// lexicographic order. Each returned slice is freshly allocated.
func (t *Trie[S]) WithPrefix(prefix []S) [][]S {
	n := t.descend(prefix)
	if n == nil {
		return nil
	}

	var out [][]S
	collect(n, slices.Clone(prefix), &out)

	return out
}

// All returns every stored sequence in lexicographic order.
func (t *Trie[S]) All() [][]S {
	return t.WithPrefix(nil)
}

// LongestCommonPrefix returns the longest sequence that prefixes every
// stored sequence (empty when the trie is empty or the root branches).
func (t *Trie[S]) LongestCommonPrefix() []S {
	var out []S
	if t.size == 0 {
		return out
	}
	n := t.root
	// Follow the spine while it does not branch and nothing terminates.
	for !n.terminal && len(n.children) == 1 {
		for s, child := range n.children {
			out = append(out, s)
			n = child
		}
	}

	return out
}

// NodeCount returns the number of nodes excluding the root; it shrinks as
// Remove prunes dead branches. O(nodes)
func (t *Trie[S]) NodeCount() int {
	var rec func(n *tnode[S]) int
	rec = func(n *tnode[S]) int {
		total := len(n.children)
		for _, child := range n.children {
			total += rec(child)
		}

		return total
	}

	return rec(t.root)
}

// Height returns the length of the longest stored chain. O(nodes)
func (t *Trie[S]) Height() int {
	var rec func(n *tnode[S]) int
	rec = func(n *tnode[S]) int {
		deepest := 0
		for _, child := range n.children {
			deepest = max(deepest, 1+rec(child))
		}

		return deepest
	}

	return rec(t.root)
}

// descend walks seq and returns the node it ends at, or nil.
func (t *Trie[S]) descend(seq []S) *tnode[S] {
	n := t.root
	for _, s := range seq {
		child, ok := n.children[s]
		if !ok {
			return nil
		}
		n = child
	}

	return n
}

func countTerminals[S cmp.Ordered](n *tnode[S]) int {
	total := 0
	if n.terminal {
		total++
	}
	for _, child := range n.children {
		total += countTerminals(child)
	}

	return total
}

// collect gathers stored sequences below n in symbol order; acc is the
// path from the root to n.
func collect[S cmp.Ordered](n *tnode[S], acc []S, out *[][]S) {
	if n.terminal {
		*out = append(*out, slices.Clone(acc))
	}
	for _, s := range orderedSymbols(n) {
		collect(n.children[s], append(acc, s), out)
	}
}
