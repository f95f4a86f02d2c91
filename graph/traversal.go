// Package graph: breadth-first and depth-first traversal. Both visit
// neighbors in ascending vertex order, so the result for a given graph is
// fully deterministic.
package graph

// VisitFunc is called once per visited vertex; returning a non-nil error
// aborts the traversal and surfaces that error to the caller.
type VisitFunc[V any] func(v V) error

// TraversalOption customizes BFS and DFS.
type TraversalOption[V any] func(*traversalSettings[V])

type traversalSettings[V any] struct {
	onVisit  VisitFunc[V]
	maxDepth int // -1: unlimited
}

// WithOnVisit registers a hook invoked at each vertex in visit order.
func WithOnVisit[V any](fn VisitFunc[V]) TraversalOption[V] {
	return func(s *traversalSettings[V]) { s.onVisit = fn }
}

// WithMaxDepth stops exploring beyond depth edges from the start vertex
// (0 visits only the start). Negative depths mean unlimited.
func WithMaxDepth[V any](depth int) TraversalOption[V] {
	return func(s *traversalSettings[V]) { s.maxDepth = depth }
}

func applyTraversalOptions[V any](opts []TraversalOption[V]) traversalSettings[V] {
	s := traversalSettings[V]{maxDepth: -1}
	for _, opt := range opts {
		opt(&s)
	}

	return s
}

// BFS traverses breadth-first from start and returns the visit order, or
// ErrVertexNotFound when start is absent. Only vertices reachable from
// start appear.
//
// Complexity: O((V + E) log V) — the log factor pays for sorted neighbor
// expansion.
func (g *Graph[V]) BFS(start V, opts ...TraversalOption[V]) ([]V, error) {
	if !g.HasVertex(start) {
		return nil, ErrVertexNotFound
	}
	s := applyTraversalOptions(opts)

	type item struct {
		v     V
		depth int
	}
	order := make([]V, 0, len(g.adj))
	seen := map[V]struct{}{start: {}}
	queue := []item{{v: start}}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		order = append(order, cur.v)
		if s.onVisit != nil {
			if err := s.onVisit(cur.v); err != nil {
				return order, err
			}
		}
		if s.maxDepth >= 0 && cur.depth == s.maxDepth {
			continue
		}

		neighbors, _ := g.Neighbors(cur.v)
		for _, next := range neighbors {
			if _, ok := seen[next]; ok {
				continue
			}
			seen[next] = struct{}{}
			queue = append(queue, item{v: next, depth: cur.depth + 1})
		}
	}

	return order, nil
}

// DFS traverses depth-first (pre-order) from start and returns the visit
// order, or ErrVertexNotFound when start is absent.
//
// Complexity: O((V + E) log V)
func (g *Graph[V]) DFS(start V, opts ...TraversalOption[V]) ([]V, error) {
	if !g.HasVertex(start) {
		return nil, ErrVertexNotFound
	}
	s := applyTraversalOptions(opts)

	order := make([]V, 0, len(g.adj))
	seen := make(map[V]struct{}, len(g.adj))

	var rec func(v V, depth int) error
	rec = func(v V, depth int) error {
		seen[v] = struct{}{}
		order = append(order, v)
		if s.onVisit != nil {
			if err := s.onVisit(v); err != nil {
				return err
			}
		}
		if s.maxDepth >= 0 && depth == s.maxDepth {
			return nil
		}

		neighbors, _ := g.Neighbors(v)
		for _, next := range neighbors {
			if _, ok := seen[next]; ok {
				continue
			}
			if err := rec(next, depth+1); err != nil {
				return err
			}
		}

		return nil
	}
	if err := rec(start, 0); err != nil {
		return order, err
	}

	return order, nil
}
