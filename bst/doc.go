// Package bst provides a plain (unbalanced) generic binary search tree.
//
// It shares the set semantics of package avltree — unique values, silent
// no-ops on duplicate insert and absent remove, ErrEmptyTree on empty-tree
// accessors — but performs no rebalancing: operations are O(h) where the
// height h is O(log n) only for favorable insertion orders and degrades to
// O(n) on sorted input. Use avltree.Tree when the insertion order is not
// under your control.
//
// The two trees are deliberately independent implementations; neither is
// built on the other.
package bst
