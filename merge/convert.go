package merge

import (
	"fmt"

	"github.com/destructure-format/go-destructure/encode"
	"github.com/destructure-format/go-destructure/ir"
	"github.com/destructure-format/go-destructure/pairs"
)

// toPairs converts any collection kind to an ordered pair sequence, the
// uniform loose-mode intermediate. Maps convert in iteration order; lists
// and tuples must already be pair-shaped. The source's tag is carried on
// the result so a later toMap can restore it.
func toPairs(right *ir.Node) (*ir.Node, error) {
	switch right.Kind {
	case ir.MapKind:
		res := &ir.Node{Kind: ir.ListKind, Tag: right.Tag}
		res.Values = make([]*ir.Node, len(right.Keys))
		for i := range right.Keys {
			res.Values[i] = ir.Pair(right.Keys[i], right.Values[i])
		}
		return res, nil
	case ir.ListKind:
		if !pairs.IsPairSeq(right) {
			return nil, fmt.Errorf("%w: sequence is not pair-shaped: %s",
				ErrInvalidFormat, encode.MustString(right))
		}
		return right, nil
	case ir.TupleKind:
		res := &ir.Node{Kind: ir.ListKind, Tag: right.Tag, Values: right.Values}
		if !pairs.IsPairSeq(res) {
			return nil, fmt.Errorf("%w: tuple is not pair-shaped: %s",
				ErrInvalidFormat, encode.MustString(right))
		}
		return res, nil
	}
	return nil, fmt.Errorf("%w: cannot treat %s as a pair sequence: %s",
		ErrInvalidFormat, right.Kind, encode.MustString(right))
}

// toMap converts a pair sequence to a key-value collection; the first
// occurrence of a duplicate key wins.
func toMap(seq *ir.Node) *ir.Node {
	res := &ir.Node{Kind: ir.MapKind, Tag: seq.Tag}
	for _, elt := range seq.Values {
		if ir.Get(res, elt.Values[0]) != nil {
			continue
		}
		res.Keys = append(res.Keys, elt.Values[0])
		res.Values = append(res.Values, elt.Values[1])
	}
	return res
}

// dedupFirst drops duplicate-keyed pairs, keeping the first occurrence.
func dedupFirst(seq *ir.Node) *ir.Node {
	res := &ir.Node{Kind: ir.ListKind, Tag: seq.Tag}
	for _, elt := range seq.Values {
		if pairs.Has(res, elt.Values[0]) {
			continue
		}
		res.Values = append(res.Values, elt)
	}
	return res
}

// isSequence reports whether n is positional: a list or a tuple.
func isSequence(n *ir.Node) bool {
	return n.Kind == ir.ListKind || n.Kind == ir.TupleKind
}
