// Package pairs implements order-preserving operations over ordered pair
// sequences, the uniform loose-mode intermediate representation of the
// merge engine.
//
// A pair sequence is an ir.ListKind node whose elements are (key, value)
// 2-tuples. On duplicate keys the first occurrence wins. All operations are
// O(n) scans per element with no hidden index, which keeps them simple and
// order-faithful for the small inputs patterns produce.
package pairs
