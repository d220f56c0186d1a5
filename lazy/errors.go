package lazy

import "errors"

var (
	// ErrExhausted is returned when an operation needs an element and none is left.
	ErrExhausted = errors.New("lazy: chain exhausted")

	// ErrOutOfRange is returned by Nth when the index lies beyond the end of the chain.
	ErrOutOfRange = errors.New("lazy: index out of range")
)
