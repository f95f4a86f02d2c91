// Package queue_test covers the linked queue and the circular ring,
// including the wrap-around behavior that distinguishes the ring.
package queue_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/velmaran/strukt/queue"
)

// ------------------------------------------------------------------------
// 1. Linked Queue.
// ------------------------------------------------------------------------

func TestQueue_FIFOOrder(t *testing.T) {
	q := queue.New("a", "b")
	q.Enqueue("c")

	assert.Equal(t, 3, q.Len())
	assert.Equal(t, []string{"a", "b", "c"}, q.Values())

	front, err := q.Front()
	assert.NoError(t, err)
	assert.Equal(t, "a", front)
	back, err := q.Back()
	assert.NoError(t, err)
	assert.Equal(t, "c", back)

	for _, want := range []string{"a", "b", "c"} {
		v, err := q.Dequeue()
		assert.NoError(t, err)
		assert.Equal(t, want, v)
	}
	assert.True(t, q.Empty())
}

func TestQueue_EmptyErrorsAndReuse(t *testing.T) {
	q := queue.New[int]()

	_, err := q.Dequeue()
	assert.ErrorIs(t, err, queue.ErrEmptyQueue)
	_, err = q.Front()
	assert.ErrorIs(t, err, queue.ErrEmptyQueue)
	_, err = q.Back()
	assert.ErrorIs(t, err, queue.ErrEmptyQueue)

	// Drain-then-reuse must re-link head and tail correctly.
	q.Enqueue(1)
	_, _ = q.Dequeue()
	q.Enqueue(2)
	v, err := q.Dequeue()
	assert.NoError(t, err)
	assert.Equal(t, 2, v)
}

// ------------------------------------------------------------------------
// 2. Circular Ring.
// ------------------------------------------------------------------------

func TestRing_FillToCapacityAndOverflow(t *testing.T) {
	r := queue.NewRing[int](3)

	assert.NoError(t, r.Enqueue(1))
	assert.NoError(t, r.Enqueue(2))
	assert.NoError(t, r.Enqueue(3))
	assert.True(t, r.Full())

	assert.ErrorIs(t, r.Enqueue(4), queue.ErrFullQueue)
	assert.Equal(t, []int{1, 2, 3}, r.Values(), "failed enqueue must not change contents")
}

func TestRing_WrapAround(t *testing.T) {
	r := queue.NewRing[int](3)

	// Fill, drain two, refill two: the buffer indices wrap past the end.
	_ = r.Enqueue(1)
	_ = r.Enqueue(2)
	_ = r.Enqueue(3)
	_, _ = r.Dequeue()
	_, _ = r.Dequeue()
	_ = r.Enqueue(4)
	_ = r.Enqueue(5)

	assert.Equal(t, []int{3, 4, 5}, r.Values())

	front, _ := r.Front()
	back, _ := r.Back()
	assert.Equal(t, 3, front)
	assert.Equal(t, 5, back)
	assert.Equal(t, 3, r.Len())
	assert.Equal(t, 3, r.Cap())
}

func TestRing_EmptyErrorsAndClear(t *testing.T) {
	r := queue.NewRing[string](2)

	_, err := r.Dequeue()
	assert.ErrorIs(t, err, queue.ErrEmptyQueue)

	_ = r.Enqueue("x")
	r.Clear()
	assert.True(t, r.Empty())
	assert.False(t, r.Full())
	_, err = r.Front()
	assert.ErrorIs(t, err, queue.ErrEmptyQueue)
}

func TestNewRing_BadCapacityPanics(t *testing.T) {
	assert.Panics(t, func() { queue.NewRing[int](0) })
	assert.Panics(t, func() { queue.NewRing[int](-1) })
}
