package pattern

import "errors"

var (
	// ErrIllegalOptionalContext is reported at compile time when an
	// optional-variable marker appears where no merge support exists,
	// e.g. inside a plain nested bind with no destructuring semantics.
	ErrIllegalOptionalContext = errors.New("illegal optional context")
	// ErrInvalidVariableForm is reported for a call-form variable with
	// more than one argument.
	ErrInvalidVariableForm = errors.New("invalid variable form")
)
