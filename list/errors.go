package list

import "errors"

// Sentinel errors shared by the list variants.
var (
	// ErrEmptyList indicates a Pop, Front or Back on a list with no elements.
	ErrEmptyList = errors.New("list: list is empty")

	// ErrIndexOutOfRange indicates a positional operation outside [0, Len).
	ErrIndexOutOfRange = errors.New("list: index out of range")
)
