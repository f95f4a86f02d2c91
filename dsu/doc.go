// Package dsu provides a generic disjoint-set union (union-find) over
// comparable elements.
//
// Elements enter through MakeSet as singleton sets; Union joins sets by
// rank and Find compresses paths, so any sequence of m operations over n
// elements runs in O(m α(n)), effectively constant per operation.
//
// Errors:
//
//   - ErrElementNotFound — Find, Union, SameSet or SetSize referenced an
//     element never passed to MakeSet.
//
// A DSU is not safe for concurrent use; note that Find mutates internal
// parent links (path compression) even though it is logically a query.
package dsu
