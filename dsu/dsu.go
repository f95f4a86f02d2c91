package dsu

import (
	"errors"
	"fmt"
)

// ErrElementNotFound indicates an operation referenced an element that was
// never added through MakeSet.
var ErrElementNotFound = errors.New("dsu: element not found")

// entry is the per-element bookkeeping: parent link, union rank, and the
// set size (maintained only at roots).
type entry[T comparable] struct {
	parent T
	rank   int
	size   int
}

// DSU is a disjoint-set forest over elements of T.
type DSU[T comparable] struct {
	entries map[T]*entry[T]
	sets    int
}

// New returns an empty DSU, adding any seed elements as singletons.
func New[T comparable](seeds ...T) *DSU[T] {
	d := &DSU[T]{entries: make(map[T]*entry[T], len(seeds))}
	for _, v := range seeds {
		d.MakeSet(v)
	}

	return d
}

// Len reports the number of tracked elements. O(1)
func (d *DSU[T]) Len() int { return len(d.entries) }

// Empty reports whether no elements are tracked. O(1)
func (d *DSU[T]) Empty() bool { return len(d.entries) == 0 }

// SetCount reports the number of disjoint sets. O(1)
func (d *DSU[T]) SetCount() int { return d.sets }

// MakeSet adds value as a singleton set; adding a present element is a
// no-op. O(1)
func (d *DSU[T]) MakeSet(value T) {
	if _, ok := d.entries[value]; ok {
		return
	}
	d.entries[value] = &entry[T]{parent: value, rank: 0, size: 1}
	d.sets++
}

// Contains reports whether value has been added. O(1)
func (d *DSU[T]) Contains(value T) bool {
	_, ok := d.entries[value]

	return ok
}

// Find returns the representative of value's set, compressing the path on
// the way, or ErrElementNotFound. O(α(n)) amortized.
func (d *DSU[T]) Find(value T) (T, error) {
	e, ok := d.entries[value]
	if !ok {
		var zero T
		return zero, fmt.Errorf("%w: %v", ErrElementNotFound, value)
	}
	if e.parent == value {
		return value, nil
	}

	root, _ := d.Find(e.parent) // cannot fail: parents are always tracked
	e.parent = root

	return root, nil
}

// Union merges the sets containing x and y (no-op when already joined),
// attaching the lower-rank root under the higher. Returns
// ErrElementNotFound if either element is untracked.
func (d *DSU[T]) Union(x, y T) error {
	rx, err := d.Find(x)
	if err != nil {
		return err
	}
	ry, err := d.Find(y)
	if err != nil {
		return err
	}
	if rx == ry {
		return nil
	}

	ex, ey := d.entries[rx], d.entries[ry]
	// Keep ex as the higher-rank root.
	if ex.rank < ey.rank {
		ex, ey = ey, ex
		rx, ry = ry, rx
	}
	ey.parent = rx
	ex.size += ey.size
	if ex.rank == ey.rank {
		ex.rank++
	}
	d.sets--

	return nil
}

// SameSet reports whether x and y share a representative, or
// ErrElementNotFound if either is untracked.
func (d *DSU[T]) SameSet(x, y T) (bool, error) {
	rx, err := d.Find(x)
	if err != nil {
		return false, err
	}
	ry, err := d.Find(y)
	if err != nil {
		return false, err
	}

	return rx == ry, nil
}

// SetSize returns the size of value's set, or ErrElementNotFound.
func (d *DSU[T]) SetSize(value T) (int, error) {
	root, err := d.Find(value)
	if err != nil {
		return 0, err
	}

	return d.entries[root].size, nil
}

// Clear removes every element. O(1)
func (d *DSU[T]) Clear() {
	d.entries = make(map[T]*entry[T])
	d.sets = 0
}
