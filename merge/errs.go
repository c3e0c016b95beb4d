package merge

import (
	"errors"

	"github.com/destructure-format/go-destructure/ir"
)

var (
	// ErrShapeMismatch is reported when a rigid target kind is
	// incompatible with the right-hand value's kind.
	ErrShapeMismatch = errors.New("shape mismatch")
	// ErrArityMismatch is reported when a rigid sequence length differs
	// from the pattern's.
	ErrArityMismatch = errors.New("arity mismatch")
	// ErrInvalidHeadShape is reported when a loose head/tail pattern's
	// head is not a single keyed entry.
	ErrInvalidHeadShape = errors.New("invalid head shape")
	// ErrInvalidFormat is reported when a value cannot be converted to
	// the shape loose reconciliation needs.
	ErrInvalidFormat = ir.ErrInvalidFormat
)
