// Package graph_test: BFS/DFS order, hooks, depth limits, and Dijkstra.
package graph_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/velmaran/strukt/graph"
)

// buildDiamond: A—B, A—C, B—D, C—D. With sorted expansion, BFS from A is
// A,B,C,D and DFS from A is A,B,D,C.
func buildDiamond() *graph.Graph[string] {
	g := graph.New[string]()
	_ = g.AddEdge("A", "B", 0)
	_ = g.AddEdge("A", "C", 0)
	_ = g.AddEdge("B", "D", 0)
	_ = g.AddEdge("C", "D", 0)

	return g
}

func TestBFS_OrderAndReachability(t *testing.T) {
	g := buildDiamond()
	_ = g.AddEdge("X", "Y", 0) // separate component

	order, err := g.BFS("A")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C", "D"}, order)
	assert.NotContains(t, order, "X", "BFS must not cross components")

	_, err = g.BFS("missing")
	assert.ErrorIs(t, err, graph.ErrVertexNotFound)
}

func TestDFS_PreOrder(t *testing.T) {
	g := buildDiamond()

	order, err := g.DFS("A")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "D", "C"}, order)
}

func TestTraversal_OnVisitHookAndAbort(t *testing.T) {
	g := buildDiamond()
	boom := errors.New("stop here")

	var visited []string
	order, err := g.BFS("A", graph.WithOnVisit(func(v string) error {
		visited = append(visited, v)
		if v == "C" {
			return boom
		}

		return nil
	}))

	assert.ErrorIs(t, err, boom)
	assert.Equal(t, []string{"A", "B", "C"}, visited)
	assert.Equal(t, []string{"A", "B", "C"}, order, "partial order up to the abort")
}

func TestTraversal_MaxDepth(t *testing.T) {
	g := buildDiamond()

	order, err := g.BFS("A", graph.WithMaxDepth[string](1))
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, order, "depth 1 excludes D")

	order, err = g.DFS("A", graph.WithMaxDepth[string](0))
	require.NoError(t, err)
	assert.Equal(t, []string{"A"}, order)
}

// ------------------------------------------------------------------------
// Dijkstra.
// ------------------------------------------------------------------------

func TestDijkstra_Validation(t *testing.T) {
	g := graph.New[string]()
	_, err := g.Dijkstra("A")
	assert.ErrorIs(t, err, graph.ErrNotWeighted)

	wg := graph.New[string](graph.WithWeighted())
	_, err = wg.Dijkstra("A")
	assert.ErrorIs(t, err, graph.ErrVertexNotFound)

	_ = wg.AddEdge("A", "B", -2)
	_, err = wg.Dijkstra("A")
	assert.ErrorIs(t, err, graph.ErrNegativeWeight)
}

func TestDijkstra_Triangle(t *testing.T) {
	// A—B(1), B—C(2), A—C(5): best A→C is 3 via B.
	g := graph.New[string](graph.WithWeighted())
	_ = g.AddEdge("A", "B", 1)
	_ = g.AddEdge("B", "C", 2)
	_ = g.AddEdge("A", "C", 5)

	res, err := g.Dijkstra("A")
	require.NoError(t, err)

	assert.Equal(t, 0.0, res.Dist["A"])
	assert.Equal(t, 1.0, res.Dist["B"])
	assert.Equal(t, 3.0, res.Dist["C"])
	assert.Nil(t, res.Prev, "predecessors only on request")
}

func TestDijkstra_PathReconstruction(t *testing.T) {
	g := graph.New[string](graph.WithWeighted())
	_ = g.AddEdge("A", "B", 1)
	_ = g.AddEdge("B", "C", 2)
	_ = g.AddEdge("A", "C", 5)
	_ = g.AddEdge("C", "D", 1)

	res, err := g.Dijkstra("A", graph.WithPredecessors())
	require.NoError(t, err)

	path, ok := res.Path("A", "D")
	assert.True(t, ok)
	assert.Equal(t, []string{"A", "B", "C", "D"}, path)

	// Unreachable target.
	g2 := graph.New[string](graph.WithWeighted())
	_ = g2.AddEdge("A", "B", 1)
	g2.AddVertex("Z")
	res2, err := g2.Dijkstra("A", graph.WithPredecessors())
	require.NoError(t, err)
	_, ok = res2.Path("A", "Z")
	assert.False(t, ok)
	_, reached := res2.Dist["Z"]
	assert.False(t, reached)
}

func TestDijkstra_DirectedRespectsOrientation(t *testing.T) {
	g := graph.New[string](graph.WithDirected(), graph.WithWeighted())
	_ = g.AddEdge("A", "B", 1)
	_ = g.AddEdge("C", "B", 1) // inbound only; C unreachable from A

	res, err := g.Dijkstra("A")
	require.NoError(t, err)

	assert.Equal(t, 1.0, res.Dist["B"])
	_, reached := res.Dist["C"]
	assert.False(t, reached)
}

func TestDijkstra_MaxDistanceCutsOff(t *testing.T) {
	g := graph.New[string](graph.WithWeighted())
	_ = g.AddEdge("A", "B", 4)
	_ = g.AddEdge("B", "C", 4)

	res, err := g.Dijkstra("A", graph.WithMaxDistance(5))
	require.NoError(t, err)

	assert.Equal(t, 4.0, res.Dist["B"])
	_, reached := res.Dist["C"]
	assert.False(t, reached, "C at distance 8 exceeds the 5 limit")
}
