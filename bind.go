package destructure

import (
	"fmt"

	"github.com/destructure-format/go-destructure/debug"
	"github.com/destructure-format/go-destructure/encode"
	"github.com/destructure-format/go-destructure/ir"
	"github.com/destructure-format/go-destructure/pairs"
	"github.com/destructure-format/go-destructure/pattern"
)

// bind matches a normalized pattern against an adjusted value, collecting
// name bindings into res. It fails on missing mandatory positions (the
// Absent sentinel), literal mismatches, and shape disagreements the merge
// engine deferred to the bind step.
func bind(norm pattern.Norm, adjusted *ir.Node, res Bindings) error {
	if debug.Bind() {
		debug.Logf("bind %s against %v\n", norm, adjusted)
	}
	switch x := norm.(type) {
	case pattern.NormWild:
		// Vacuous on purpose: a wildcard accepts even absence.
		return nil
	case pattern.NormVar:
		if adjusted.Kind == ir.AbsentKind {
			return fmt.Errorf("%w: no value for mandatory %q", ErrMatchFailure, x.Name)
		}
		res[x.Name] = adjusted
		return nil
	case pattern.NormLit:
		if ir.Compare(x.Value, adjusted) != 0 {
			return fmt.Errorf("%w: literal %s does not match %s",
				ErrMatchFailure, encode.MustString(x.Value), encode.MustString(adjusted))
		}
		return nil
	case pattern.NormBind:
		if adjusted.Kind == ir.AbsentKind {
			return fmt.Errorf("%w: no value for mandatory %q", ErrMatchFailure, x.Name)
		}
		res[x.Name] = adjusted
		return bind(x.Sub, adjusted, res)
	case pattern.NormColl:
		return bindColl(x, adjusted, res)
	case pattern.NormHeadTail:
		return bindHeadTail(x, adjusted, res)
	}
	panic(fmt.Sprintf("unknown norm %T", norm))
}

func bindColl(c pattern.NormColl, adjusted *ir.Node, res Bindings) error {
	if adjusted.Kind != c.Kind {
		return fmt.Errorf("%w: expected %s, got %s: %s", ErrMatchFailure,
			c.Kind, adjusted.Kind, encode.MustString(adjusted))
	}
	if c.Kind == ir.MapKind {
		for _, e := range c.Entries {
			// Keyless slots in a map have nothing to address; they
			// bind against absence.
			if e.Key == nil {
				if err := bind(e.Sub, ir.Absent(), res); err != nil {
					return err
				}
				continue
			}
			v := lookupBound(adjusted, e.Key)
			if v == nil {
				return fmt.Errorf("%w: missing key %s in %s", ErrMatchFailure,
					encode.MustString(e.Key), encode.MustString(adjusted))
			}
			if err := bind(e.Sub, v, res); err != nil {
				return err
			}
		}
		return nil
	}
	if len(c.Entries) == 0 {
		// Coercion request: the merge engine already reshaped the
		// whole value, nothing to bind.
		return nil
	}
	if len(adjusted.Values) != len(c.Entries) {
		return fmt.Errorf("%w: expected %d elements, got %d: %s", ErrMatchFailure,
			len(c.Entries), len(adjusted.Values), encode.MustString(adjusted))
	}
	keyed := c.Mode == ir.Loose
	for i, e := range c.Entries {
		v := adjusted.Values[i]
		if keyed && e.Key != nil {
			if !v.IsPair() {
				return fmt.Errorf("%w: expected a pair, got %s", ErrMatchFailure,
					encode.MustString(v))
			}
			v = v.Values[1]
		}
		if err := bind(e.Sub, v, res); err != nil {
			return err
		}
	}
	return nil
}

func bindHeadTail(h pattern.NormHeadTail, adjusted *ir.Node, res Bindings) error {
	if adjusted.Kind != ir.TupleKind || len(adjusted.Values) != 2 {
		return fmt.Errorf("%w: expected a head/tail split, got %s", ErrMatchFailure,
			encode.MustString(adjusted))
	}
	if err := bind(h.Head, adjusted.Values[0], res); err != nil {
		return err
	}
	return bind(h.Tail, adjusted.Values[1], res)
}

// lookupBound resolves a declared key in a merged map, falling back to a
// pair-sequence scan should the adjusted value carry duplicate-tolerant
// shape (first occurrence wins there).
func lookupBound(adjusted, key *ir.Node) *ir.Node {
	if adjusted.Kind == ir.MapKind {
		return ir.Get(adjusted, key)
	}
	if pairs.IsPairSeq(adjusted) {
		return pairs.Get(adjusted, key)
	}
	return nil
}
