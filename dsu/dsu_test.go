// Package dsu_test covers union-find semantics: representatives, set
// counts, sizes, and the error contract for untracked elements.
package dsu_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/velmaran/strukt/dsu"
)

func TestMakeSet_SingletonsAndIdempotence(t *testing.T) {
	d := dsu.New("a", "b", "c")

	assert.Equal(t, 3, d.Len())
	assert.Equal(t, 3, d.SetCount())

	d.MakeSet("a") // already present
	assert.Equal(t, 3, d.Len())
	assert.Equal(t, 3, d.SetCount())

	root, err := d.Find("a")
	require.NoError(t, err)
	assert.Equal(t, "a", root, "a singleton is its own representative")
}

func TestUnion_MergesAndCounts(t *testing.T) {
	d := dsu.New(1, 2, 3, 4)

	require.NoError(t, d.Union(1, 2))
	require.NoError(t, d.Union(3, 4))
	assert.Equal(t, 2, d.SetCount())

	same, err := d.SameSet(1, 2)
	require.NoError(t, err)
	assert.True(t, same)
	same, _ = d.SameSet(1, 3)
	assert.False(t, same)

	// Union of already-joined elements changes nothing.
	require.NoError(t, d.Union(2, 1))
	assert.Equal(t, 2, d.SetCount())

	require.NoError(t, d.Union(2, 3))
	assert.Equal(t, 1, d.SetCount())
	same, _ = d.SameSet(1, 4)
	assert.True(t, same)
}

func TestSetSize_TracksMerges(t *testing.T) {
	d := dsu.New("a", "b", "c", "d", "e")

	_ = d.Union("a", "b")
	_ = d.Union("c", "d")
	_ = d.Union("a", "c")

	n, err := d.SetSize("d")
	require.NoError(t, err)
	assert.Equal(t, 4, n)

	n, err = d.SetSize("e")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestErrors_UntrackedElements(t *testing.T) {
	d := dsu.New("a")

	_, err := d.Find("ghost")
	assert.ErrorIs(t, err, dsu.ErrElementNotFound)

	assert.ErrorIs(t, d.Union("a", "ghost"), dsu.ErrElementNotFound)
	assert.ErrorIs(t, d.Union("ghost", "a"), dsu.ErrElementNotFound)

	_, err = d.SameSet("ghost", "a")
	assert.ErrorIs(t, err, dsu.ErrElementNotFound)

	_, err = d.SetSize("ghost")
	assert.ErrorIs(t, err, dsu.ErrElementNotFound)
}

func TestFind_PathCompressionKeepsAnswersStable(t *testing.T) {
	// Chain unions force deep trees; repeated Finds must keep returning
	// the same representative while flattening internally.
	d := dsu.New[int]()
	for i := 0; i < 64; i++ {
		d.MakeSet(i)
	}
	for i := 1; i < 64; i++ {
		require.NoError(t, d.Union(i-1, i))
	}

	first, err := d.Find(63)
	require.NoError(t, err)
	for i := 0; i < 64; i++ {
		r, err := d.Find(i)
		require.NoError(t, err)
		assert.Equal(t, first, r)
	}
	assert.Equal(t, 1, d.SetCount())

	n, _ := d.SetSize(0)
	assert.Equal(t, 64, n)
}

func TestClear(t *testing.T) {
	d := dsu.New(1, 2)
	_ = d.Union(1, 2)

	d.Clear()

	assert.True(t, d.Empty())
	assert.Zero(t, d.SetCount())
	assert.False(t, d.Contains(1))
}
