// Package graph: Dijkstra single-source shortest paths with a lazy
// decrease-key strategy — stale priority-queue entries are pushed freely
// and skipped on pop.
package graph

import (
	"fmt"
	"math"

	"github.com/velmaran/strukt/binheap"
)

// DijkstraResult reports shortest-path distances from a source vertex.
// Unreachable vertices are absent from both maps.
type DijkstraResult[V comparable] struct {
	// Dist maps each reachable vertex to its minimum distance from Source.
	Dist map[V]float64

	// Prev maps each reachable vertex (except Source) to its predecessor
	// on a shortest path. Nil unless WithPredecessors was given.
	Prev map[V]V
}

// DijkstraOption customizes Dijkstra.
type DijkstraOption func(*dijkstraSettings)

type dijkstraSettings struct {
	predecessors bool
	maxDistance  float64
}

// WithPredecessors records the predecessor map for path reconstruction.
func WithPredecessors() DijkstraOption {
	return func(s *dijkstraSettings) { s.predecessors = true }
}

// WithMaxDistance stops exploring vertices farther than limit from the
// source; such vertices are reported as unreachable.
func WithMaxDistance(limit float64) DijkstraOption {
	return func(s *dijkstraSettings) { s.maxDistance = limit }
}

// Dijkstra computes minimum distances from source to every reachable
// vertex.
//
// Preconditions, checked in order:
//  1. The graph must be weighted (ErrNotWeighted).
//  2. source must exist (ErrVertexNotFound).
//  3. No edge may have negative weight (ErrNegativeWeight, detected by an
//     upfront O(E) scan so the failure is immediate, not path-dependent).
//
// Complexity: O((V + E) log V) time, O(V + E) space.
func (g *Graph[V]) Dijkstra(source V, opts ...DijkstraOption) (*DijkstraResult[V], error) {
	// 1) Validate inputs.
	if !g.weighted {
		return nil, ErrNotWeighted
	}
	if !g.HasVertex(source) {
		return nil, ErrVertexNotFound
	}
	for _, e := range g.Edges() {
		if e.Weight < 0 {
			return nil, fmt.Errorf("%w: %v→%v weight=%v", ErrNegativeWeight, e.From, e.To, e.Weight)
		}
	}

	s := dijkstraSettings{maxDistance: math.Inf(1)}
	for _, opt := range opts {
		opt(&s)
	}

	// 2) Prepare the result and the frontier.
	res := &DijkstraResult[V]{Dist: make(map[V]float64, len(g.adj))}
	if s.predecessors {
		res.Prev = make(map[V]V, len(g.adj))
	}

	// Lazy decrease-key: a vertex may sit in the queue several times with
	// different priorities; the first pop wins, later pops are stale.
	frontier := binheap.NewQueue[V, float64]()
	frontier.Push(source, 0)
	res.Dist[source] = 0
	settled := make(map[V]struct{}, len(g.adj))

	// 3) Settle vertices in increasing distance order.
	for !frontier.Empty() {
		v, d, _ := frontier.Pop()
		if _, done := settled[v]; done {
			continue // stale entry
		}
		settled[v] = struct{}{}

		for to, w := range g.adj[v] {
			alt := d + w
			if alt > s.maxDistance {
				continue
			}
			if cur, seen := res.Dist[to]; seen && cur <= alt {
				continue
			}
			res.Dist[to] = alt
			if s.predecessors {
				res.Prev[to] = v
			}
			frontier.Push(to, alt)
		}
	}

	return res, nil
}

// Path reconstructs the shortest path source→target from a result computed
// with WithPredecessors. The second return is false when target was not
// reached (or predecessors were not recorded).
func (r *DijkstraResult[V]) Path(source, target V) ([]V, bool) {
	if r.Prev == nil {
		return nil, false
	}
	if _, ok := r.Dist[target]; !ok {
		return nil, false
	}

	path := []V{target}
	for path[len(path)-1] != source {
		prev, ok := r.Prev[path[len(path)-1]]
		if !ok {
			return nil, false
		}
		path = append(path, prev)
	}
	// Reverse in place: the chain was collected target→source.
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, true
}
