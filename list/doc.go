// Package list provides three generic linked-list variants:
//
//   - List[T]  — singly linked, head+tail pointers: O(1) PushFront,
//     PushBack and PopFront; PopBack is O(n) (no back-links to walk).
//   - DList[T] — doubly linked: O(1) at both ends in both directions.
//   - Ring[T]  — circular singly linked: the tail links back to the head,
//     useful for round-robin iteration via Rotate.
//
// All three share the same error contract: ErrEmptyList from Pop/Front/Back
// on an empty list, ErrIndexOutOfRange from positional InsertAt/RemoveAt.
// None of them are safe for concurrent use.
//
// These are deliberate side-by-side implementations, not one list with
// flags; each keeps only the pointers its variant needs.
package list
