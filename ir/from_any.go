package ir

import (
	"encoding/json"
	"fmt"
	"math"
	"sort"
)

// FromAny converts a plain Go value into a Node. It accepts the shapes
// produced by encoding/json unmarshalling into any, plus Go integer types
// and existing nodes. Map keys land in the string universe; use
// SymbolizeKeys to move them.
func FromAny(v any) (*Node, error) {
	switch x := v.(type) {
	case nil:
		return Null(), nil
	case *Node:
		return x.Clone(), nil
	case bool:
		return FromBool(x), nil
	case string:
		return FromString(x), nil
	case int:
		return FromInt(int64(x)), nil
	case int64:
		return FromInt(x), nil
	case float64:
		if x == math.Trunc(x) && math.Abs(x) < 1<<53 {
			return FromInt(int64(x)), nil
		}
		return FromFloat(x), nil
	case json.Number:
		if i, err := x.Int64(); err == nil {
			return FromInt(i), nil
		}
		if f, err := x.Float64(); err == nil {
			return FromFloat(f), nil
		}
		return &Node{Kind: NumberKind, Number: x.String()}, nil
	case []any:
		vals := make([]*Node, len(x))
		for i, elt := range x {
			n, err := FromAny(elt)
			if err != nil {
				return nil, err
			}
			vals[i] = n
		}
		return FromList(vals), nil
	case map[string]any:
		keys := make([]string, 0, len(x))
		for k := range x {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		res := &Node{Kind: MapKind}
		res.Keys = make([]*Node, len(keys))
		res.Values = make([]*Node, len(keys))
		for i, k := range keys {
			n, err := FromAny(x[k])
			if err != nil {
				return nil, err
			}
			res.Keys[i] = FromString(k)
			res.Values[i] = n
		}
		return res, nil
	}
	return nil, fmt.Errorf("%w: cannot represent %T", ErrInvalidFormat, v)
}

// ToAny converts a node to the plain Go shapes used by encoding/json.
// Symbols become strings; maps become map[string]any keyed by the key's
// string payload; tuples become []any.
func ToAny(n *Node) any {
	switch n.Kind {
	case MapKind:
		res := make(map[string]any, len(n.Keys))
		for i := range n.Keys {
			res[n.Keys[i].String] = ToAny(n.Values[i])
		}
		return res
	case ListKind, TupleKind:
		res := make([]any, len(n.Values))
		for i, elt := range n.Values {
			res[i] = ToAny(elt)
		}
		return res
	case StringKind, SymbolKind:
		return n.String
	case NumberKind:
		if n.Int64 != nil {
			return *n.Int64
		}
		if n.Float64 != nil {
			return *n.Float64
		}
		return n.Number
	case BoolKind:
		return n.Bool
	case NullKind, AbsentKind:
		return nil
	}
	return nil
}

// SymbolizeKeys rewrites every map key in the string universe to the
// symbolic one, recursively. Useful after FromAny when the pattern side
// uses symbolic keys.
func SymbolizeKeys(n *Node) *Node {
	switch n.Kind {
	case MapKind:
		for _, k := range n.Keys {
			if k.Kind == StringKind {
				k.Kind = SymbolKind
			}
		}
		for _, v := range n.Values {
			SymbolizeKeys(v)
		}
	case ListKind, TupleKind:
		for _, v := range n.Values {
			SymbolizeKeys(v)
		}
	}
	return n
}
