package ir

import (
	"maps"
	"slices"
)

// Node is a runtime value. It works as a recursive tagged union: the Kind
// field selects which payload fields are meaningful.
//
// MapKind nodes hold parallel Keys/Values slices, one key node per value.
// Keys are scalar nodes, usually SymbolKind or StringKind; the two key
// universes are disjoint and never compare equal. ListKind and TupleKind
// nodes hold only Values. An ordered pair sequence is a ListKind node whose
// elements are all 2-element tuples.
//
// MapKind nodes may carry a Tag naming a record-like type. Tags survive
// loose reconciliation: the right-hand value's tag is kept on the result.
type Node struct {
	Kind Kind
	Tag  string

	Keys   []*Node
	Values []*Node

	String  string
	Bool    bool
	Number  string
	Float64 *float64
	Int64   *int64
}

func (n *Node) WithTag(tag string) *Node {
	n.Tag = tag
	return n
}

func (n *Node) Clone() *Node {
	res := &Node{}
	return n.CloneTo(res)
}

func (n *Node) CloneTo(dst *Node) *Node {
	dst.Kind = n.Kind
	dst.Tag = n.Tag
	dst.String = n.String
	dst.Bool = n.Bool
	dst.Number = n.Number
	if n.Float64 != nil {
		f := *n.Float64
		dst.Float64 = &f
	}
	if n.Int64 != nil {
		i := *n.Int64
		dst.Int64 = &i
	}
	if n.Keys != nil {
		dst.Keys = make([]*Node, len(n.Keys))
		for i, k := range n.Keys {
			dst.Keys[i] = k.Clone()
		}
	}
	if n.Values != nil {
		dst.Values = make([]*Node, len(n.Values))
		for i, v := range n.Values {
			dst.Values[i] = v.Clone()
		}
	}
	return dst
}

func FromString(v string) *Node {
	return &Node{Kind: StringKind, String: v}
}

// FromSymbol returns a symbolic-key scalar. Symbols share the String payload
// field with strings but live in a separate key universe.
func FromSymbol(v string) *Node {
	return &Node{Kind: SymbolKind, String: v}
}

func FromInt(v int64) *Node {
	return &Node{Kind: NumberKind, Int64: &v}
}

func FromFloat(f float64) *Node {
	return &Node{Kind: NumberKind, Float64: &f}
}

func FromBool(v bool) *Node {
	return &Node{Kind: BoolKind, Bool: v}
}

func Null() *Node {
	return &Node{Kind: NullKind}
}

// Absent returns the internal missing-position sentinel. The binder treats
// any attempt to bind it as a match failure.
func Absent() *Node {
	return &Node{Kind: AbsentKind}
}

// KeyVal is a single (key, value) pair used to build maps and pair
// sequences without going through Go maps (which would lose order).
type KeyVal struct {
	Key *Node
	Val *Node
}

// FromMap builds a MapKind node with symbolic keys in sorted key order.
func FromMap(m map[string]*Node) *Node {
	res := &Node{Kind: MapKind}
	keys := slices.Sorted(maps.Keys(m))
	res.Keys = make([]*Node, len(keys))
	res.Values = make([]*Node, len(keys))
	for i, key := range keys {
		res.Keys[i] = FromSymbol(key)
		res.Values[i] = m[key]
	}
	return res
}

// FromStringMap is FromMap with string-universe keys.
func FromStringMap(m map[string]*Node) *Node {
	res := FromMap(m)
	for _, k := range res.Keys {
		k.Kind = StringKind
	}
	return res
}

// FromKeyVals builds a MapKind node preserving the given order.
func FromKeyVals(kvs []KeyVal) *Node {
	res := &Node{Kind: MapKind}
	res.Keys = make([]*Node, len(kvs))
	res.Values = make([]*Node, len(kvs))
	for i := range kvs {
		kv := &kvs[i]
		res.Keys[i] = kv.Key
		res.Values[i] = kv.Val
	}
	return res
}

// Pair builds a 2-element tuple (key, value), the element shape of an
// ordered pair sequence.
func Pair(key, val *Node) *Node {
	return &Node{Kind: TupleKind, Values: []*Node{key, val}}
}

// FromPairs builds an ordered pair sequence from kvs.
func FromPairs(kvs []KeyVal) *Node {
	res := &Node{Kind: ListKind}
	res.Values = make([]*Node, len(kvs))
	for i := range kvs {
		res.Values[i] = Pair(kvs[i].Key, kvs[i].Val)
	}
	return res
}

func FromList(vs []*Node) *Node {
	return &Node{Kind: ListKind, Values: vs}
}

func FromTuple(vs []*Node) *Node {
	return &Node{Kind: TupleKind, Values: vs}
}

// Get returns the value stored under key in a MapKind node, or nil. Key
// equality is Compare-equality, so the key universes stay disjoint.
func Get(n *Node, key *Node) *Node {
	if n.Kind != MapKind {
		return nil
	}
	for i := range n.Keys {
		if Compare(n.Keys[i], key) == 0 {
			return n.Values[i]
		}
	}
	return nil
}

// GetSymbol is Get with a symbolic key.
func GetSymbol(n *Node, key string) *Node {
	return Get(n, FromSymbol(key))
}

// IsPair reports whether n has the (key, value) element shape of an ordered
// pair sequence: a 2-element tuple whose first element is a scalar key.
func (n *Node) IsPair() bool {
	if n.Kind != TupleKind || len(n.Values) != 2 {
		return false
	}
	switch n.Values[0].Kind {
	case SymbolKind, StringKind, NumberKind, BoolKind:
		return true
	}
	return false
}

func (n *Node) Visit(f func(n *Node, isPost bool) (bool, error)) error {
	dive, err := f(n, false)
	if err != nil {
		return err
	}
	if dive {
		for _, v := range n.Values {
			if err := v.Visit(f); err != nil {
				return err
			}
		}
	}
	if _, err := f(n, true); err != nil {
		return err
	}
	return nil
}
