// Package queue provides two generic FIFO queues:
//
//   - Queue[T] — unbounded, linked-node-backed: O(1) Enqueue and Dequeue,
//     one allocation per element.
//   - Ring[T]  — bounded, fixed-capacity circular buffer: O(1) at both
//     ends with zero steady-state allocation; Enqueue on a full ring
//     returns ErrFullQueue.
//
// Dequeue, Front and Back on an empty queue return ErrEmptyQueue. Neither
// type is safe for concurrent use.
package queue
