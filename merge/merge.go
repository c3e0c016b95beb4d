package merge

import (
	"fmt"

	"github.com/destructure-format/go-destructure/debug"
	"github.com/destructure-format/go-destructure/encode"
	"github.com/destructure-format/go-destructure/ir"
	"github.com/destructure-format/go-destructure/pairs"
)

// TagKey is the reserved lookup key reading a map's record tag. A pattern
// declaring it explicitly wins over ordinary field lookup.
const TagKey = "__tag__"

// Merge reshapes right according to m, producing the adjusted value the
// normalized pattern binds against. Missing mandatory positions surface as
// AbsentKind nodes in the result; only Default entries substitute values on
// absence. Merge never mutates right.
func Merge(m Merger, right *ir.Node) (*ir.Node, error) {
	if debug.Merge() {
		debug.Logf("merge %s with %v\n", m, right)
	}
	switch x := m.(type) {
	case Passthrough:
		return right, nil
	case Default:
		if right == nil || right.Kind == ir.AbsentKind {
			return x.Value, nil
		}
		return right, nil
	case ModeTagged:
		return mergeTagged(x, right)
	case HeadTail:
		return mergeHeadTail(x, right)
	}
	panic(fmt.Sprintf("unknown merger %T", m))
}

func mergeTagged(m ModeTagged, right *ir.Node) (*ir.Node, error) {
	switch m.Kind {
	case ir.MapKind:
		if m.Mode == ir.Rigid {
			return mergeRigidMap(m, right)
		}
		return mergeLooseMap(m, right)
	case ir.ListKind, ir.TupleKind:
		if m.Mode == ir.Rigid {
			return mergeRigidSeq(m, right)
		}
		return mergeLooseSeq(m, right)
	}
	panic(fmt.Sprintf("unknown collection kind %s", m.Kind))
}

// mergeLooseMap converts right to a key-value collection from any source
// kind and reconciles the declared entries into it. Keys present on the
// right but undeclared are retained: variables bound to the whole result
// observe the superset.
func mergeLooseMap(m ModeTagged, right *ir.Node) (*ir.Node, error) {
	conv, err := toPairs(right)
	if err != nil {
		return nil, err
	}
	conv = dedupFirst(conv)
	if len(m.Entries) == 0 {
		return toMap(conv), nil
	}
	left := &ir.Node{Kind: ir.ListKind, Tag: conv.Tag}
	for _, e := range m.Entries {
		if e.Key == nil {
			continue
		}
		left.Values = append(left.Values, ir.Pair(e.Key, leftValue(e.Child)))
	}
	rightSide := withTagPair(m, conv)
	merged, err := pairs.Merge(left, rightSide, func(key, _, r *ir.Node) (*ir.Node, error) {
		return resolveEntry(entryChild(m.Entries, key), r)
	})
	if err != nil {
		return nil, err
	}
	merged.Tag = conv.Tag
	return toMap(merged), nil
}

// mergeRigidMap requires right to already be a key-value collection and
// resolves only the declared keys, ignoring extras on the right.
func mergeRigidMap(m ModeTagged, right *ir.Node) (*ir.Node, error) {
	if right.Kind != ir.MapKind {
		return nil, fmt.Errorf("%w: rigid Map target, right is %s: %s",
			ErrShapeMismatch, right.Kind, encode.MustString(right))
	}
	if len(m.Entries) == 0 {
		return right, nil
	}
	res := &ir.Node{Kind: ir.MapKind, Tag: right.Tag}
	for _, e := range m.Entries {
		if e.Key == nil {
			continue
		}
		rv := lookupKey(m, right, e.Key)
		v, err := resolveEntry(e.Child, rv)
		if err != nil {
			return nil, err
		}
		res.Keys = append(res.Keys, e.Key)
		res.Values = append(res.Values, v)
	}
	return res, nil
}

// mergeLooseSeq produces exactly the declared keys, in declared order.
// Keys present on the right but undeclared are dropped: the left side
// selects the subset.
func mergeLooseSeq(m ModeTagged, right *ir.Node) (*ir.Node, error) {
	conv, err := toPairs(right)
	if err != nil {
		return nil, err
	}
	conv = dedupFirst(conv)
	if len(m.Entries) == 0 {
		res := conv
		if m.Kind == ir.TupleKind {
			res = &ir.Node{Kind: ir.TupleKind, Tag: conv.Tag, Values: conv.Values}
		}
		return res, nil
	}
	res := &ir.Node{Kind: m.Kind}
	res.Values = make([]*ir.Node, len(m.Entries))
	for i, e := range m.Entries {
		// Keyless slots (wildcards, positional literals) have no lookup
		// in loose mode; they resolve against absence and stay unpaired.
		if e.Key == nil {
			v, err := resolveEntry(e.Child, nil)
			if err != nil {
				return nil, err
			}
			res.Values[i] = v
			continue
		}
		rv := pairs.Get(conv, e.Key)
		if isTagKey(e.Key) && conv.Tag != "" {
			rv = ir.FromString(conv.Tag)
		}
		v, err := resolveEntry(e.Child, rv)
		if err != nil {
			return nil, err
		}
		res.Values[i] = ir.Pair(e.Key, v)
	}
	return res, nil
}

// mergeRigidSeq resolves positionally against a sequence of identical
// length, no reordering, no key lookup.
func mergeRigidSeq(m ModeTagged, right *ir.Node) (*ir.Node, error) {
	if !isSequence(right) {
		return nil, fmt.Errorf("%w: rigid %s target, right is %s: %s",
			ErrShapeMismatch, m.Kind, right.Kind, encode.MustString(right))
	}
	if len(m.Entries) == 0 {
		if right.Kind != m.Kind {
			res := &ir.Node{Kind: m.Kind, Tag: right.Tag, Values: right.Values}
			return res, nil
		}
		return right, nil
	}
	if len(right.Values) != len(m.Entries) {
		return nil, fmt.Errorf("%w: rigid %s wants %d elements, right has %d: %s",
			ErrArityMismatch, m.Kind, len(m.Entries), len(right.Values),
			encode.MustString(right))
	}
	res := &ir.Node{Kind: m.Kind}
	res.Values = make([]*ir.Node, len(m.Entries))
	for i, e := range m.Entries {
		v, err := resolveEntry(e.Child, right.Values[i])
		if err != nil {
			return nil, err
		}
		res.Values[i] = v
	}
	return res, nil
}

// mergeHeadTail splits right. The adjusted form is a 2-tuple
// (head, tail); the binder views it as the reconstruction [head, ...tail].
func mergeHeadTail(m HeadTail, right *ir.Node) (*ir.Node, error) {
	if m.Mode == ir.Rigid {
		if !isSequence(right) {
			return nil, fmt.Errorf("%w: rigid head/tail target, right is %s: %s",
				ErrShapeMismatch, right.Kind, encode.MustString(right))
		}
		if len(right.Values) == 0 {
			return nil, fmt.Errorf("%w: rigid head/tail needs at least one element",
				ErrArityMismatch)
		}
		head, err := resolveEntry(m.Head.Child, right.Values[0])
		if err != nil {
			return nil, err
		}
		rest := &ir.Node{Kind: right.Kind, Values: right.Values[1:]}
		tail, err := Merge(m.Tail, rest)
		if err != nil {
			return nil, err
		}
		return ir.FromTuple([]*ir.Node{head, tail}), nil
	}
	if m.Head.Key == nil {
		return nil, fmt.Errorf("%w: loose head must be a single keyed entry",
			ErrInvalidHeadShape)
	}
	conv, err := toPairs(right)
	if err != nil {
		return nil, err
	}
	conv = dedupFirst(conv)
	rv := pairs.Get(conv, m.Head.Key)
	head, err := resolveEntry(m.Head.Child, rv)
	if err != nil {
		return nil, err
	}
	remainder := pairs.Delete(conv, m.Head.Key)
	remainder.Tag = conv.Tag
	tail, err := Merge(m.Tail, remainder)
	if err != nil {
		return nil, err
	}
	return ir.FromTuple([]*ir.Node{head, tail}), nil
}

// resolveEntry is the shared per-key/per-position combination step. If the
// entry declares a nested reshaping and the right value is itself
// collection-shaped, recursion goes through Merge; otherwise a present
// right value wins outright, and an absent one yields the declared default
// or the Absent sentinel.
func resolveEntry(child Merger, right *ir.Node) (*ir.Node, error) {
	if right == nil || right.Kind == ir.AbsentKind {
		if d, ok := child.(Default); ok {
			return d.Value, nil
		}
		return ir.Absent(), nil
	}
	switch child.(type) {
	case Passthrough, Default:
		return right, nil
	case ModeTagged, HeadTail:
		if right.Kind.IsCollection() {
			return Merge(child, right)
		}
		// Scalar right against a collection merger: the right value
		// wins here and the binder reports the mismatch.
		return right, nil
	}
	panic(fmt.Sprintf("unknown merger %T", child))
}

// leftValue is the declared placeholder an entry contributes before the
// right side is consulted.
func leftValue(child Merger) *ir.Node {
	if d, ok := child.(Default); ok {
		return d.Value
	}
	return ir.Absent()
}

func entryChild(entries []Entry, key *ir.Node) Merger {
	for _, e := range entries {
		if ir.Compare(e.Key, key) == 0 {
			return e.Child
		}
	}
	return Passthrough{}
}

func isTagKey(key *ir.Node) bool {
	if key == nil {
		return false
	}
	return (key.Kind == ir.SymbolKind || key.Kind == ir.StringKind) &&
		key.String == TagKey
}

// withTagPair substitutes the (TagKey, tag) pair when the pattern declares
// the reserved tag key: the carried tag shadows any ordinary field spelled
// the same way.
func withTagPair(m ModeTagged, conv *ir.Node) *ir.Node {
	if conv.Tag == "" {
		return conv
	}
	for _, e := range m.Entries {
		if !isTagKey(e.Key) {
			continue
		}
		rest := pairs.Reject(conv, func(k, _ *ir.Node) bool {
			return isTagKey(k)
		})
		res := &ir.Node{Kind: ir.ListKind, Tag: conv.Tag}
		res.Values = append(res.Values, ir.Pair(e.Key.Clone(), ir.FromString(conv.Tag)))
		res.Values = append(res.Values, rest.Values...)
		return res
	}
	return conv
}

func lookupKey(m ModeTagged, right *ir.Node, key *ir.Node) *ir.Node {
	if isTagKey(key) && right.Tag != "" {
		return ir.FromString(right.Tag)
	}
	return ir.Get(right, key)
}
