package pairs

import (
	"fmt"

	"github.com/destructure-format/go-destructure/ir"
)

// Resolver combines the left and right values found under the same key
// during Merge. Either side, but not both, may be nil-free; Merge only
// calls it when the key occurs on both sides.
type Resolver func(key, left, right *ir.Node) (*ir.Node, error)

// IsPairSeq reports whether n is an ordered pair sequence: a list whose
// elements are all (key, value) 2-tuples with scalar keys.
func IsPairSeq(n *ir.Node) bool {
	if n == nil || n.Kind != ir.ListKind {
		return false
	}
	for _, elt := range n.Values {
		if !elt.IsPair() {
			return false
		}
	}
	return true
}

// Get returns the value under key, first occurrence wins. Returns nil when
// the key is not present.
func Get(seq, key *ir.Node) *ir.Node {
	for _, elt := range seq.Values {
		if ir.Compare(elt.Values[0], key) == 0 {
			return elt.Values[1]
		}
	}
	return nil
}

// Has reports whether key occurs in seq.
func Has(seq, key *ir.Node) bool {
	return Get(seq, key) != nil
}

// Merge walks right and reconciles it into left. Pairs of right whose key
// already occurs in left replace the value in left's original position,
// going through resolve; pairs with new keys are appended after all of
// left's pairs, in right's order. Both inputs must be pair sequences.
//
// The scan is O(n*m) with no index structure; pattern sizes are small and
// order preservation is the point.
func Merge(left, right *ir.Node, resolve Resolver) (*ir.Node, error) {
	if !IsPairSeq(left) {
		return nil, fmt.Errorf("%w: merge left operand is not a pair sequence: %s",
			ir.ErrInvalidFormat, left.Kind)
	}
	if !IsPairSeq(right) {
		return nil, fmt.Errorf("%w: merge right operand is not a pair sequence: %s",
			ir.ErrInvalidFormat, right.Kind)
	}
	res := &ir.Node{Kind: ir.ListKind}
	res.Values = make([]*ir.Node, len(left.Values))
	for i, elt := range left.Values {
		res.Values[i] = elt
	}
	for _, relt := range right.Values {
		key := relt.Values[0]
		i := indexOf(res, key)
		if i < 0 {
			res.Values = append(res.Values, relt)
			continue
		}
		lval := res.Values[i].Values[1]
		v, err := resolve(key, lval, relt.Values[1])
		if err != nil {
			return nil, err
		}
		res.Values[i] = ir.Pair(key, v)
	}
	return res, nil
}

// Delete returns seq without any pair keyed by key, preserving order.
func Delete(seq, key *ir.Node) *ir.Node {
	return Reject(seq, func(k, _ *ir.Node) bool {
		return ir.Compare(k, key) == 0
	})
}

// Reject returns seq without the pairs for which pred holds, preserving
// order.
func Reject(seq *ir.Node, pred func(key, val *ir.Node) bool) *ir.Node {
	res := &ir.Node{Kind: ir.ListKind}
	for _, elt := range seq.Values {
		if pred(elt.Values[0], elt.Values[1]) {
			continue
		}
		res.Values = append(res.Values, elt)
	}
	return res
}

func indexOf(seq, key *ir.Node) int {
	for i, elt := range seq.Values {
		if ir.Compare(elt.Values[0], key) == 0 {
			return i
		}
	}
	return -1
}
