// Package parse reads the textual pattern surface and produces the
// pattern AST consumed by the compiler.
//
// # Syntax
//
//	name          mandatory variable
//	_name         optional variable, absence default
//	name()        optional variable, absence default
//	name(expr)    optional variable with an explicit default; expr is an
//	              expression evaluated once, at parse time
//	_             wildcard
//	key: sub      keyed entry; "key": sub forces the string key universe
//	name = sub    bind name to the whole value and destructure inside it
//	Map{...}      key-value collection pattern
//	List[...]     ordered collection pattern
//	Tuple(...)    fixed-sequence pattern
//	List[h | t]   head/tail split, exactly two positions
//	!pat          flip loose/rigid for pat and its descendants
//	~pat          flip the key universe for lookups under pat
//
// The empty form of any collection literal requests coercion of the whole
// value into that kind.
package parse
