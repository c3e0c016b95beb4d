// Package ir provides the runtime value representation for the
// destructuring engine.
//
// # Overview
//
// Every value the engine consumes or produces (runtime inputs, adjusted
// values, defaults, bindings) is an ir.Node tree. The IR is a simple
// recursive tagged union readily representable in JSON, which makes values
// easy to construct in tests and to move across process boundaries.
//
// # Node Kinds
//
// The Kind field indicates the node's kind:
//
//   - NullKind: the absence value (bindable, observable)
//   - BoolKind: boolean
//   - NumberKind: numeric value (int64 or float64, string fallback)
//   - StringKind: string scalar, also the string key universe
//   - SymbolKind: symbolic key universe, disjoint from strings
//   - MapKind: key-value collection with unique keys (order-preserving
//     representation of an unordered collection)
//   - ListKind: ordered sequence; a sequence of 2-tuples is an ordered
//     pair sequence
//   - TupleKind: fixed-arity sequence, matched positionally in rigid mode
//   - AbsentKind: internal missing-position sentinel, never observable in
//     bindings
//
// # Creating Nodes
//
// Use constructor functions to create nodes:
//
//	node := ir.FromString("hello")
//	num := ir.FromInt(42)
//	obj := ir.FromMap(map[string]*ir.Node{"key": ir.FromString("value")})
//	seq := ir.FromPairs([]ir.KeyVal{{Key: ir.FromSymbol("a"), Val: ir.FromInt(1)}})
//
// # Comparison
//
// Nodes compare with a total order:
//
//	equal := ir.Compare(a, b) == 0
//
// Key lookups use Compare-equality, so symbolic and string keys never
// collide.
//
// # Thread Safety
//
// Nodes are not synchronized. Share them across goroutines only while
// treating them as read-only, or clone per goroutine.
package ir
