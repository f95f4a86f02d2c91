// Package graph: type declarations, sentinel errors, construction options.
package graph

import (
	"cmp"
	"errors"
)

// Sentinel errors for graph operations.
var (
	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("graph: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("graph: edge not found")

	// ErrBadWeight indicates a non-zero weight on an unweighted graph.
	ErrBadWeight = errors.New("graph: non-zero weight on unweighted graph")

	// ErrSelfLoop indicates an attempted edge from a vertex to itself.
	ErrSelfLoop = errors.New("graph: self-loop not allowed")

	// ErrNotWeighted indicates Dijkstra was called on an unweighted graph.
	ErrNotWeighted = errors.New("graph: graph must be weighted")

	// ErrNegativeWeight indicates a negative edge weight was found where
	// non-negative weights are required.
	ErrNegativeWeight = errors.New("graph: negative edge weight")
)

// Edge is one connection as reported by Edges: From→To with its weight.
// Undirected edges are reported once, with From ≤ To.
type Edge[V cmp.Ordered] struct {
	From   V
	To     V
	Weight float64
}

// Option configures a Graph at construction.
type Option func(*settings)

type settings struct {
	directed bool
	weighted bool
}

// WithDirected makes edges one-way; without it edges are mirrored.
func WithDirected() Option {
	return func(s *settings) { s.directed = true }
}

// WithWeighted permits non-zero edge weights.
func WithWeighted() Option {
	return func(s *settings) { s.weighted = true }
}

// Graph is an adjacency-list graph over ordered vertex keys.
type Graph[V cmp.Ordered] struct {
	directed  bool
	weighted  bool
	adj       map[V]map[V]float64 // adj[from][to] = weight
	edgeCount int
}

// New creates an empty Graph. Default: undirected, unweighted.
// Complexity: O(1)
func New[V cmp.Ordered](opts ...Option) *Graph[V] {
	var s settings
	for _, opt := range opts {
		opt(&s)
	}

	return &Graph[V]{
		directed: s.directed,
		weighted: s.weighted,
		adj:      make(map[V]map[V]float64),
	}
}

// Directed reports whether edges are one-way.
func (g *Graph[V]) Directed() bool { return g.directed }

// Weighted reports whether non-zero weights are permitted.
func (g *Graph[V]) Weighted() bool { return g.weighted }
