// Package stack provides two generic LIFO stacks with the same surface:
//
//   - Stack[T]     — slice-backed; amortized O(1) Push, cache-friendly.
//   - ListStack[T] — linked-node-backed; strict O(1) Push with no
//     reallocation spikes, one allocation per element.
//
// Pop and Peek on an empty stack return ErrEmptyStack. Neither type is
// safe for concurrent use.
package stack
