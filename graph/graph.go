// Package graph: vertex and edge lifecycle plus sorted enumeration.
package graph

import "slices"

// AddVertex inserts v; inserting a present vertex is a no-op.
// Complexity: O(1)
func (g *Graph[V]) AddVertex(v V) {
	if _, ok := g.adj[v]; !ok {
		g.adj[v] = make(map[V]float64)
	}
}

// HasVertex reports whether v is present. O(1)
func (g *Graph[V]) HasVertex(v V) bool {
	_, ok := g.adj[v]

	return ok
}

// RemoveVertex deletes v and every edge touching it, or returns
// ErrVertexNotFound. Directed graphs scan all rows for inbound edges.
// Complexity: O(V) directed, O(deg) undirected.
func (g *Graph[V]) RemoveVertex(v V) error {
	row, ok := g.adj[v]
	if !ok {
		return ErrVertexNotFound
	}

	if g.directed {
		g.edgeCount -= len(row)
		for from, out := range g.adj {
			if from == v {
				continue
			}
			if _, in := out[v]; in {
				delete(out, v)
				g.edgeCount--
			}
		}
	} else {
		g.edgeCount -= len(row)
		for to := range row {
			delete(g.adj[to], v)
		}
	}
	delete(g.adj, v)

	return nil
}

// AddEdge connects from→to with the given weight, inserting missing
// endpoints. On undirected graphs the mirror edge appears automatically.
// Re-adding an existing edge overwrites its weight.
//
// Fails with ErrSelfLoop when from == to, and ErrBadWeight when a
// non-zero weight is given to an unweighted graph.
// Complexity: O(1)
func (g *Graph[V]) AddEdge(from, to V, weight float64) error {
	if from == to {
		return ErrSelfLoop
	}
	if !g.weighted && weight != 0 {
		return ErrBadWeight
	}

	g.AddVertex(from)
	g.AddVertex(to)

	if _, exists := g.adj[from][to]; !exists {
		g.edgeCount++
	}
	g.adj[from][to] = weight
	if !g.directed {
		g.adj[to][from] = weight
	}

	return nil
}

// RemoveEdge deletes the edge from→to (and its mirror when undirected),
// or returns ErrEdgeNotFound. O(1)
func (g *Graph[V]) RemoveEdge(from, to V) error {
	row, ok := g.adj[from]
	if !ok {
		return ErrEdgeNotFound
	}
	if _, ok = row[to]; !ok {
		return ErrEdgeNotFound
	}

	delete(row, to)
	if !g.directed {
		delete(g.adj[to], from)
	}
	g.edgeCount--

	return nil
}

// HasEdge reports whether the edge from→to exists. O(1)
func (g *Graph[V]) HasEdge(from, to V) bool {
	_, ok := g.adj[from][to]

	return ok
}

// Weight returns the weight of the edge from→to, or ErrEdgeNotFound.
// O(1)
func (g *Graph[V]) Weight(from, to V) (float64, error) {
	w, ok := g.adj[from][to]
	if !ok {
		return 0, ErrEdgeNotFound
	}

	return w, nil
}

// Neighbors returns v's adjacent vertices sorted ascending, or
// ErrVertexNotFound. O(deg log deg)
func (g *Graph[V]) Neighbors(v V) ([]V, error) {
	row, ok := g.adj[v]
	if !ok {
		return nil, ErrVertexNotFound
	}

	out := make([]V, 0, len(row))
	for to := range row {
		out = append(out, to)
	}
	slices.Sort(out)

	return out, nil
}

// Degree returns the number of edges touching v (out-degree on directed
// graphs), or ErrVertexNotFound. O(1)
func (g *Graph[V]) Degree(v V) (int, error) {
	row, ok := g.adj[v]
	if !ok {
		return 0, ErrVertexNotFound
	}

	return len(row), nil
}

// Vertices returns every vertex sorted ascending. O(V log V)
func (g *Graph[V]) Vertices() []V {
	out := make([]V, 0, len(g.adj))
	for v := range g.adj {
		out = append(out, v)
	}
	slices.Sort(out)

	return out
}

// Edges returns every edge sorted by (From, To). Undirected edges are
// reported once with From ≤ To. O(E log E)
func (g *Graph[V]) Edges() []Edge[V] {
	out := make([]Edge[V], 0, g.edgeCount)
	for from, row := range g.adj {
		for to, w := range row {
			if !g.directed && to < from {
				continue // mirror; reported from the smaller endpoint
			}
			out = append(out, Edge[V]{From: from, To: to, Weight: w})
		}
	}
	slices.SortFunc(out, func(a, b Edge[V]) int {
		if a.From != b.From {
			if a.From < b.From {
				return -1
			}

			return 1
		}
		switch {
		case a.To < b.To:
			return -1
		case a.To > b.To:
			return 1
		default:
			return 0
		}
	})

	return out
}

// VertexCount reports the number of vertices. O(1)
func (g *Graph[V]) VertexCount() int { return len(g.adj) }

// EdgeCount reports the number of edges (mirrors counted once). O(1)
func (g *Graph[V]) EdgeCount() int { return g.edgeCount }

// Clear removes every vertex and edge, preserving the option flags. O(1)
func (g *Graph[V]) Clear() {
	g.adj = make(map[V]map[V]float64)
	g.edgeCount = 0
}
