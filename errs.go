package destructure

import "errors"

// ErrMatchFailure is reported by the final bind step: a missing mandatory
// key or element, differing rigid arity, or an irreconcilable literal.
// Compile errors (pattern package) and merge errors (merge package) are
// separate so callers can tell a malformed pattern from a non-matching
// input.
var ErrMatchFailure = errors.New("match failure")
