// Package avltree_test: traversal-order tests against a fixed seven-node
// tree whose shape is fully determined (no rotations fire while building).
package avltree_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/velmaran/strukt/avltree"
)

// buildSeven constructs:
//
//	        50
//	      /    \
//	    30      70
//	   /  \    /  \
//	  20  40  60  80
func buildSeven() *avltree.Tree[int] {
	return avltree.New(50, 30, 70, 20, 40, 60, 80)
}

func TestTraversals_FixedShape(t *testing.T) {
	tree := buildSeven()

	assert.Equal(t, []int{20, 30, 40, 50, 60, 70, 80}, tree.InOrder())
	assert.Equal(t, []int{50, 30, 20, 40, 70, 60, 80}, tree.PreOrder())
	assert.Equal(t, []int{20, 40, 30, 60, 80, 70, 50}, tree.PostOrder())
	assert.Equal(t, []int{50, 30, 70, 20, 40, 60, 80}, tree.LevelOrder())
}

func TestTraversals_EmptyTreeYieldEmptySlices(t *testing.T) {
	tree := avltree.New[int]()

	assert.Empty(t, tree.InOrder())
	assert.Empty(t, tree.PreOrder())
	assert.Empty(t, tree.PostOrder())
	assert.Empty(t, tree.LevelOrder())
}

func TestTraversals_ReturnFreshSlices(t *testing.T) {
	tree := buildSeven()

	first := tree.InOrder()
	first[0] = -1 // mutating the result must not leak into the tree

	assert.Equal(t, []int{20, 30, 40, 50, 60, 70, 80}, tree.InOrder())
}

func TestWalk_VisitsAscendingAndStopsEarly(t *testing.T) {
	tree := buildSeven()

	var seen []int
	tree.Walk(func(v int) bool {
		seen = append(seen, v)
		return v < 50 // stop once 50 has been visited
	})

	assert.Equal(t, []int{20, 30, 40, 50}, seen)
}

func TestSnapshot_HeightsMatchShape(t *testing.T) {
	tree := buildSeven()

	want := []avltree.Entry[int]{
		{Value: 50, Height: 3},
		{Value: 30, Height: 2},
		{Value: 20, Height: 1},
		{Value: 40, Height: 1},
		{Value: 70, Height: 2},
		{Value: 60, Height: 1},
		{Value: 80, Height: 1},
	}
	assert.Equal(t, want, tree.Snapshot())
}

func TestRender_ContainsEveryValueWithHeight(t *testing.T) {
	tree := avltree.New(2, 1, 3)

	out := tree.Render()
	assert.Contains(t, out, "2 (h:2)")
	assert.Contains(t, out, "1 (h:1)")
	assert.Contains(t, out, "3 (h:1)")

	assert.Equal(t, "(empty)\n", avltree.New[int]().Render())
}

func TestString_Summary(t *testing.T) {
	tree := avltree.New(10, 20, 30)
	assert.Equal(t, "AVLTree[size=3, height=2, balanced=true]", tree.String())
}
