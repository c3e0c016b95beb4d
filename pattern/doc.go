// Package pattern defines the destructuring pattern AST and compiles it
// into the pair consumed at invocation time: a normalized pattern for the
// structural bind and a merger tree for reshaping runtime values.
//
// Compilation threads an immutable per-frame Context carrying the
// loose/rigid mode, the key universe, and the pair-var flag; each
// recursive call receives its own copy, flipped where a toggle node
// demands, so toggling needs no mutable state. Compile-time failures
// (ErrIllegalOptionalContext, ErrInvalidVariableForm) are raised before
// any runtime value is seen; logically vacuous constructs emit advisories
// to the DiagSink instead.
package pattern
