// Package graph provides a generic adjacency-list graph with breadth-first
// and depth-first traversal and Dijkstra shortest paths.
//
// A Graph[V] is keyed by any ordered vertex type (strings, ints, ...).
// Ordering matters: every enumeration — Vertices, Edges, Neighbors, and
// therefore BFS and DFS visit order — is sorted by vertex, so results are
// deterministic across runs despite the map-backed storage.
//
// Behavior is fixed at construction through options:
//
//   - WithDirected() — edges are one-way; default is undirected (AddEdge
//     mirrors the edge in both adjacency rows).
//   - WithWeighted() — edges carry non-zero float64 weights; on an
//     unweighted graph any non-zero weight is rejected with ErrBadWeight.
//
// One edge per vertex pair, no self-loops (ErrSelfLoop). AddEdge inserts
// missing endpoints automatically, matching the convenience the traversal
// algorithms expect.
//
// Complexity:
//
//   - AddVertex / HasVertex / HasEdge / Weight: O(1)
//   - AddEdge / RemoveEdge:                     O(1)
//   - RemoveVertex:                             O(V) (undirected: O(deg))
//   - Vertices / Edges / Neighbors:             O(k log k) for k results
//   - BFS / DFS:                                O((V + E) log V) (sorting)
//   - Dijkstra:                                 O((V + E) log V)
//
// Errors:
//
//   - ErrVertexNotFound  — operation referenced a missing vertex.
//   - ErrEdgeNotFound    — operation referenced a missing edge.
//   - ErrBadWeight       — non-zero weight on an unweighted graph.
//   - ErrSelfLoop        — AddEdge(v, v).
//   - ErrNotWeighted     — Dijkstra on an unweighted graph.
//   - ErrNegativeWeight  — Dijkstra found an edge with negative weight.
//
// A Graph is not safe for concurrent use.
package graph
