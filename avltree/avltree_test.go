// Package avltree_test contains unit tests for the AVL tree: rotation
// triggers on insert and delete, duplicate/absent no-op semantics, accessor
// errors on the empty tree, and invariant checks after randomized workloads.
package avltree_test

import (
	"errors"
	"math"
	"math/rand"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/velmaran/strukt/avltree"
)

// assertInvariants checks every property the tree promises after a public
// mutating call: balance, cached-height correctness, sortedness of InOrder,
// and size agreement.
func assertInvariants[T int | string](t *testing.T, tree *avltree.Tree[T]) {
	t.Helper()

	assert.True(t, tree.IsBalanced(), "balance invariant violated")

	in := tree.InOrder()
	assert.True(t, slices.IsSorted(in), "InOrder not ascending: %v", in)
	assert.Len(t, in, tree.Len(), "Len disagrees with reachable node count")

	// Every cached node height must be positive and no larger than the
	// tree height; the root entry must equal Height() exactly.
	snap := tree.Snapshot()
	assert.Len(t, snap, tree.Len())
	for _, e := range snap {
		assert.GreaterOrEqual(t, e.Height, 1)
		assert.LessOrEqual(t, e.Height, tree.Height())
	}
	if len(snap) > 0 {
		assert.Equal(t, tree.Height(), snap[0].Height, "root height cache stale")
	}
}

// ------------------------------------------------------------------------
// 1. Rotation triggers: the four insert cases on minimal three-node input.
// ------------------------------------------------------------------------

func TestInsert_RightRightTriggersLeftRotation(t *testing.T) {
	// Ascending insert [10, 20, 30] is the classic right-right chain; one
	// left rotation must leave 20 at the root with height 2.
	tree := avltree.New(10, 20, 30)

	assert.Equal(t, []int{10, 20, 30}, tree.InOrder())
	assert.Equal(t, []int{20, 10, 30}, tree.PreOrder(), "20 should be the root")
	assert.Equal(t, 2, tree.Height())
	assertInvariants(t, tree)
}

func TestInsert_LeftLeftTriggersRightRotation(t *testing.T) {
	tree := avltree.New(30, 20, 10)

	assert.Equal(t, []int{10, 20, 30}, tree.InOrder())
	assert.Equal(t, []int{20, 10, 30}, tree.PreOrder())
	assert.Equal(t, 2, tree.Height())
}

func TestInsert_LeftRightDoubleRotation(t *testing.T) {
	// [30, 10, 20]: 20 lands in 30.left.right, requiring a left rotation
	// of the left child followed by a right rotation of the root.
	tree := avltree.New(30, 10, 20)

	assert.Equal(t, []int{20, 10, 30}, tree.PreOrder(), "20 should surface as root")
	assert.Equal(t, []int{10, 20, 30}, tree.InOrder())
}

func TestInsert_RightLeftDoubleRotation(t *testing.T) {
	tree := avltree.New(10, 30, 20)

	assert.Equal(t, []int{20, 10, 30}, tree.PreOrder())
	assert.Equal(t, []int{10, 20, 30}, tree.InOrder())
}

// ------------------------------------------------------------------------
// 2. Set semantics: duplicate insert and absent remove are silent no-ops.
// ------------------------------------------------------------------------

func TestInsert_DuplicateIsNoOp(t *testing.T) {
	tree := avltree.New(50, 30, 70)
	before := tree.PreOrder()

	tree.Insert(30)

	assert.Equal(t, 3, tree.Len(), "duplicate insert must not grow the tree")
	assert.Equal(t, before, tree.PreOrder(), "duplicate insert must not restructure")
}

func TestRemove_AbsentIsNoOp(t *testing.T) {
	tree := avltree.New(50, 30, 70)
	before := tree.PreOrder()

	tree.Remove(99)

	assert.Equal(t, 3, tree.Len())
	assert.Equal(t, before, tree.PreOrder())
}

func TestRemove_OnEmptyTreeReturnsNormally(t *testing.T) {
	tree := avltree.New[int]()
	tree.Remove(1) // must not panic or alter anything
	assert.Zero(t, tree.Len())
	assert.True(t, tree.Empty())
}

// ------------------------------------------------------------------------
// 3. Point queries and accessors.
// ------------------------------------------------------------------------

func TestQueries_SevenNodePerfectTree(t *testing.T) {
	// [50, 30, 70, 20, 40, 60, 80] inserts with no rotation needed; the
	// result is the complete tree of height 3.
	tree := avltree.New(50, 30, 70, 20, 40, 60, 80)

	assert.Equal(t, 7, tree.Len())
	assert.Equal(t, 3, tree.Height())

	lo, err := tree.Min()
	require.NoError(t, err)
	assert.Equal(t, 20, lo)

	hi, err := tree.Max()
	require.NoError(t, err)
	assert.Equal(t, 80, hi)

	assert.True(t, tree.Contains(40))
	assert.False(t, tree.Contains(99))

	d, ok := tree.Depth(50)
	assert.True(t, ok)
	assert.Zero(t, d, "root depth")
	d, ok = tree.Depth(40)
	assert.True(t, ok)
	assert.Equal(t, 2, d)
	_, ok = tree.Depth(99)
	assert.False(t, ok)
}

func TestLCA_SevenNodePerfectTree(t *testing.T) {
	tree := avltree.New(50, 30, 70, 20, 40, 60, 80)

	cases := []struct {
		a, b, want int
	}{
		{20, 40, 30}, // siblings meet at their parent
		{20, 60, 50}, // opposite halves meet at the root
		{30, 40, 30}, // an ancestor is its own LCA
		{80, 80, 80}, // and so is a value with itself
		{60, 80, 70},
	}
	for _, c := range cases {
		got, ok := tree.LCA(c.a, c.b)
		require.True(t, ok, "LCA(%d, %d)", c.a, c.b)
		assert.Equal(t, c.want, got, "LCA(%d, %d)", c.a, c.b)
	}

	_, ok := tree.LCA(20, 99)
	assert.False(t, ok, "absent value has no common ancestor")
	_, ok = avltree.New[int]().LCA(1, 2)
	assert.False(t, ok)
}

func TestMinMax_EmptyTreeError(t *testing.T) {
	tree := avltree.New[string]()

	_, err := tree.Min()
	assert.True(t, errors.Is(err, avltree.ErrEmptyTree), "Min on empty: got %v", err)

	_, err = tree.Max()
	assert.True(t, errors.Is(err, avltree.ErrEmptyTree), "Max on empty: got %v", err)
}

func TestFind_ReturnsStoredElement(t *testing.T) {
	tree := avltree.New("cherry", "apple", "banana")

	p, ok := tree.Find("banana")
	require.True(t, ok)
	assert.Equal(t, "banana", *p)

	_, ok = tree.Find("durian")
	assert.False(t, ok)
}

// TestFind_MutateSatelliteData exercises the mutate-through-identity use
// case: ordering by key only, updating the satellite count in place.
func TestFind_MutateSatelliteData(t *testing.T) {
	type entry struct {
		key   string
		count int
	}
	tree := avltree.NewFunc(func(a, b entry) int {
		switch {
		case a.key < b.key:
			return -1
		case a.key > b.key:
			return 1
		default:
			return 0
		}
	})
	tree.Insert(entry{key: "hits"})

	p, ok := tree.Find(entry{key: "hits"})
	require.True(t, ok)
	p.count = 7

	p, _ = tree.Find(entry{key: "hits"})
	assert.Equal(t, 7, p.count, "mutation through Find pointer must persist")
}

// ------------------------------------------------------------------------
// 4. Deletion: splice cases, successor replacement, delete-time rotations.
// ------------------------------------------------------------------------

func TestRemove_TwoChildNodeUsesSuccessor(t *testing.T) {
	tree := avltree.New(50, 30, 70, 20, 40, 60, 80)

	tree.Remove(70) // two children; in-order successor 80 takes its place

	assert.Equal(t, 6, tree.Len())
	assert.Equal(t, []int{20, 30, 40, 50, 60, 80}, tree.InOrder())
	assertInvariants(t, tree)
}

func TestRemove_LeafAndSingleChild(t *testing.T) {
	tree := avltree.New(50, 30, 70, 20)

	tree.Remove(20) // leaf
	assert.Equal(t, []int{30, 50, 70}, tree.InOrder())

	tree.Remove(30) // now a leaf again after rebalance; exercise repeatedly
	tree.Remove(70)
	assert.Equal(t, []int{50}, tree.InOrder())
	assert.Equal(t, 1, tree.Height())
}

func TestRemove_RootUntilEmpty(t *testing.T) {
	tree := avltree.New(3, 1, 4, 1, 5, 9, 2, 6)

	for !tree.Empty() {
		root := tree.PreOrder()[0]
		tree.Remove(root)
		assertInvariants(t, tree)
	}
	assert.Equal(t, 0, tree.Height())
}

// TestRemove_EvenChildTakesSingleRotation pins the delete-time rotation
// selection: after the deletion the taller child is perfectly balanced
// (balance factor 0), which must still resolve to a single rotation.
func TestRemove_EvenChildTakesSingleRotation(t *testing.T) {
	// Shape:        4            Deleting 5 unbalances 4 (balance +2)
	//             /   \          while its left child 2 has balance 0.
	//            2     5         A single right rotation must fix it.
	//           / \
	//          1   3
	tree := avltree.New(4, 2, 5, 1, 3)

	tree.Remove(5)

	assert.Equal(t, []int{2, 1, 4, 3}, tree.PreOrder(), "expected single right rotation at old root")
	assertInvariants(t, tree)
}

// ------------------------------------------------------------------------
// 5. Balance bound and randomized workloads.
// ------------------------------------------------------------------------

func TestInsert_SequentialHundredStaysLogarithmic(t *testing.T) {
	// 0..99 ascending is the degenerate chain for a plain BST; the AVL
	// bound 1.44*log2(n+2) ≈ 9.8 caps the height at 9.
	tree := avltree.New[int]()
	for i := 0; i < 100; i++ {
		tree.Insert(i)
	}

	assert.Equal(t, 100, tree.Len())
	assert.LessOrEqual(t, tree.Height(), 10)
	assertInvariants(t, tree)
}

func TestHeightBound_HoldsWhileGrowing(t *testing.T) {
	tree := avltree.New[int]()
	for i := 1; i <= 1024; i++ {
		tree.Insert(i)
		limit := int(math.Ceil(1.44 * math.Log2(float64(i+2))))
		if tree.Height() > limit {
			t.Fatalf("n=%d: height %d exceeds AVL bound %d", i, tree.Height(), limit)
		}
	}
}

func TestRandomizedChurn_InvariantsHold(t *testing.T) {
	// Deterministic mixed insert/remove workload; re-check the full
	// invariant set against a map oracle every so often.
	r := rand.New(rand.NewSource(42))
	tree := avltree.New[int]()
	oracle := make(map[int]struct{})

	for i := 0; i < 5000; i++ {
		v := r.Intn(512)
		if r.Intn(3) == 0 {
			tree.Remove(v)
			delete(oracle, v)
		} else {
			tree.Insert(v)
			oracle[v] = struct{}{}
		}

		if i%250 == 0 {
			assertInvariants(t, tree)
		}
	}

	require.Equal(t, len(oracle), tree.Len())
	want := make([]int, 0, len(oracle))
	for v := range oracle {
		want = append(want, v)
	}
	slices.Sort(want)
	assert.Equal(t, want, tree.InOrder())
	assertInvariants(t, tree)
}

// ------------------------------------------------------------------------
// 6. Size bookkeeping and reconstruction round-trip.
// ------------------------------------------------------------------------

func TestLen_TracksDistinctInsertsAndRemoves(t *testing.T) {
	tree := avltree.New[int]()
	for i := 0; i < 20; i++ {
		tree.Insert(i)
	}
	assert.Equal(t, 20, tree.Len())

	for i := 0; i < 5; i++ {
		tree.Remove(i)
	}
	assert.Equal(t, 15, tree.Len())
}

func TestInOrder_RoundTripReconstruction(t *testing.T) {
	tree := avltree.New(9, 4, 17, 3, 6, 22, 5, 7, 20)
	sorted := tree.InOrder()

	rebuilt := avltree.New(sorted...)

	assert.Equal(t, sorted, rebuilt.InOrder(), "reconstruction must be order-independent")
}

func TestClear_ResetsToEmpty(t *testing.T) {
	tree := avltree.New(1, 2, 3)
	tree.Clear()

	assert.True(t, tree.Empty())
	assert.Zero(t, tree.Height())
	_, err := tree.Min()
	assert.ErrorIs(t, err, avltree.ErrEmptyTree)
}

func TestNewFunc_NilComparePanics(t *testing.T) {
	assert.Panics(t, func() { avltree.NewFunc[int](nil) })
}

// TestNewFunc_ReverseOrdering checks a custom comparator drives the BST
// order: with a reversed comparison, InOrder yields descending values.
func TestNewFunc_ReverseOrdering(t *testing.T) {
	tree := avltree.NewFunc(func(a, b int) int { return b - a }, 1, 2, 3, 4, 5)

	assert.Equal(t, []int{5, 4, 3, 2, 1}, tree.InOrder())
	assert.True(t, tree.IsBalanced())
}
