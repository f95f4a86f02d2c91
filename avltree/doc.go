// Package avltree provides a generic height-balanced binary search tree
// (AVL tree, after Adelson-Velsky and Landis).
//
// The tree stores a dynamic set of unique values ordered by a total-order
// comparison and actively restores the balance invariant
//
//	|height(left) − height(right)| ≤ 1   at every node
//
// after each insertion and deletion, using at most one single or double
// rotation per ancestor on the recursion unwind path. This bounds the tree
// height by ~1.44·log2(n+2), so point operations are O(log n) worst case,
// unlike a plain BST which degenerates to O(n) on sorted input.
//
// Why use avltree.Tree?
//
//   - Guaranteed O(log n) Insert / Remove / Contains / Find / Min / Max.
//   - Duplicate-insert and absent-remove are silent no-ops (set semantics).
//   - Four materialized traversals: InOrder (sorted), PreOrder, PostOrder,
//     LevelOrder — each returns a fresh slice, never a live view.
//   - Structural introspection: Height, Len, Empty, IsBalanced, Depth, LCA.
//   - Render produces an indented ASCII diagram with per-node heights,
//     handy for debugging and teaching.
//
// Construction:
//
//	t := avltree.New[int]()                  // natural ordering via cmp.Compare
//	t := avltree.New(50, 30, 70)             // sequential inserts of the seeds
//	t := avltree.NewFunc(compareFn, seeds...) // custom total order
//
// Complexity:
//
//   - Insert / Remove / Contains / Find / Min / Max / Depth / LCA: O(log n)
//   - InOrder / PreOrder / PostOrder / LevelOrder / Render:  O(n)
//   - Height / Len / Empty:                                  O(1)
//   - IsBalanced (full re-derivation, for verification):     O(n)
//
// Errors:
//
//   - ErrEmptyTree — Min or Max called on a tree with no elements.
//
// The ordering function must be a strict total order on T; the tree does not
// detect a broken comparator. Mutating the ordering key through the pointer
// returned by Find breaks the BST invariant and is the caller's
// responsibility to avoid.
//
// Tree is not safe for concurrent use; guard it externally if shared.
package avltree
