// Package strukt is a generics-first collection of the classic data
// structures and algorithms — self-balancing trees, heaps, tries and
// the sorts and searches everything else is measured against.
//
// 🚀 What is strukt?
//
//	A teaching-grade yet production-usable library that brings together:
//		• AVL tree: self-balancing BST with O(log n) insert/remove/search
//		• Plain BST: the unbalanced baseline for comparison
//		• Linked lists: singly, doubly and circular variants
//		• Stacks & queues: slice-backed, linked and bounded ring forms
//		• Binary heap: min/max heap plus a stable priority queue
//		• Trie: prefix tree over ordered symbol sequences
//		• DSU: disjoint-set union with rank and path compression
//		• Graph: adjacency-map graph with BFS, DFS and Dijkstra
//		• Sorting: eleven variants from Bubble to base-256 Radix
//		• Searching: linear, binary, exponential and interpolation
//
// ✨ Why choose strukt?
//
//   - Generics throughout – one Tree[T], not a tree per element type
//   - Deterministic output – sorted iteration wherever order could drift
//   - Explicit errors – sentinel errors, no panics on empty structures
//   - Honest complexity – every operation documents its cost
//
// Everything is organized under flat subpackages:
//
//	avltree/   — the self-balancing core: rotations, traversals, rendering
//	bst/       — unbalanced binary search tree
//	list/      — singly, doubly and circular linked lists
//	stack/     — LIFO containers
//	queue/     — FIFO containers, bounded and unbounded
//	binheap/   — binary heap and priority queue
//	trie/      — prefix tree over []S sequences
//	dsu/       — disjoint-set union (union-find)
//	graph/     — adjacency-map graph with traversals and shortest paths
//	sorting/   — comparison and integer sorts
//	searching/ — search over slices, sorted and not
//	cmd/strukt — interactive terminal playground
//
// Quick ASCII example — inserting 10, 20, 30 triggers a left rotation:
//
//	10            20
//	  \          /  \
//	   20   ⇒  10    30
//	     \
//	      30
//
// Start with avltree.New, push values in, and render the shape at any
// point with Tree.Render.
package strukt
