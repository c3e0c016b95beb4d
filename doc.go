// Package destructure computes name bindings from a declarative pattern
// and an arbitrary runtime value shaped as a key-value collection, an
// ordered pair sequence, or a fixed-size sequence.
//
// Destructuring runs in two phases. Compilation turns a pattern into a
// normalized pattern plus a merger tree; it is pure, sees no runtime
// value, and its result may be cached and shared. Invocation reshapes the
// runtime value through the merger tree into an adjusted value and then
// structurally binds the normalized pattern against it:
//
//	c, err := destructure.CompileString("List[a, _b, c(5)]")
//	...
//	bound, err := c.Destructure(value)
//	// bound["a"], bound["b"], bound["c"]
//
// Loose subtrees reconcile collection kinds freely: a map, a pair
// sequence, and a tuple of pairs all destructure the same way, list
// targets keep only the declared keys while map targets retain every key
// the value carries. Rigid subtrees (the ! toggle) require exact kind and
// arity agreement. Key lookups live in either the symbolic or the string
// key universe (the ~ toggle); the two never collide.
//
// Failure is atomic: either every declared name binds, or none do.
// Compile errors (pattern package), merge errors (merge package) and
// ErrMatchFailure are distinct, so a malformed pattern is always
// distinguishable from a non-matching input.
package destructure
