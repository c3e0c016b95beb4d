package ir

import "errors"

var (
	// ErrInvalidFormat is reported when a value does not satisfy the shape
	// an operation requires, e.g. a sequence used as a pair sequence whose
	// elements are not (key, value) tuples.
	ErrInvalidFormat = errors.New("invalid format")
)
