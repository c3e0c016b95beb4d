package pattern

import (
	"fmt"

	"github.com/destructure-format/go-destructure/debug"
	"github.com/destructure-format/go-destructure/ir"
	"github.com/destructure-format/go-destructure/merge"
)

// Compile turns a declarative pattern into its normalized form and the
// merger tree reshaping runtime values for it. Compilation is pure and
// independent of any runtime value; the results are immutable and may be
// cached and shared across invocations.
func Compile(p Pattern, ctx Context) (Norm, merge.Merger, error) {
	norm, m, err := compile(p, ctx)
	if err != nil {
		return nil, nil, err
	}
	if debug.Compile() {
		debug.Logf("compiled pattern to %s / %s\n", norm, m)
	}
	return norm, m, nil
}

func compile(p Pattern, ctx Context) (Norm, merge.Merger, error) {
	switch x := p.(type) {
	case Var:
		// A bare variable outside a collection entry binds the whole
		// adjusted value; there is no merge support for defaults here.
		if x.Optional {
			return nil, nil, optionalErr(ctx)
		}
		return NormVar{Name: x.Name}, merge.Passthrough{}, nil
	case Wildcard:
		if ctx.Mode == ir.Loose {
			ctx.advise("unnamed placeholder in loose mode matches anything and binds nothing")
		}
		return NormWild{}, merge.Passthrough{}, nil
	case Lit:
		return NormLit{Value: x.Value}, merge.Passthrough{}, nil
	case Bind:
		sub := ctx
		sub.noOptional = "inside a plain nested bind"
		norm, m, err := compile(x.Sub, sub)
		if err != nil {
			return nil, nil, err
		}
		return NormBind{Name: x.Name, Sub: norm}, m, nil
	case ModeToggle:
		sub := ctx
		sub.Mode = ctx.Mode.Flip()
		sub.PairVar = true
		sub.noOptional = ""
		return compile(x.Child, sub)
	case KeyTypeToggle:
		sub := ctx
		sub.KeyType = ctx.KeyType.Flip()
		return compile(x.Child, sub)
	case Coll:
		return compileColl(x, ctx)
	case HeadTail:
		return compileHeadTail(x, ctx)
	case Entry:
		return nil, nil, fmt.Errorf("%w: keyed entry outside a collection",
			ErrInvalidVariableForm)
	}
	panic(fmt.Sprintf("unknown pattern %T", p))
}

func compileColl(c Coll, ctx Context) (Norm, merge.Merger, error) {
	norm := NormColl{Kind: c.Kind, Mode: ctx.Mode}
	m := merge.ModeTagged{Mode: ctx.Mode, Kind: c.Kind}
	entryCtx := ctx
	entryCtx.noOptional = ""
	for _, ep := range c.Entries {
		ne, me, err := compileCollEntry(ep, entryCtx)
		if err != nil {
			return nil, nil, err
		}
		norm.Entries = append(norm.Entries, ne)
		m.Entries = append(m.Entries, me)
	}
	return norm, m, nil
}

// compileCollEntry compiles one slot of a collection. A bare identifier
// with pair-var active is reinterpreted as a keyed entry under the current
// key universe.
func compileCollEntry(p Pattern, ctx Context) (NormEntry, merge.Entry, error) {
	switch x := p.(type) {
	case Var:
		if ctx.PairVar {
			return compileKeyed(ctx.key(x.Name), x, ctx)
		}
		if x.Optional {
			return NormEntry{}, merge.Entry{}, optionalErr(ctx)
		}
		return NormEntry{Sub: NormVar{Name: x.Name}},
			merge.Entry{Child: merge.Passthrough{}}, nil
	case Entry:
		return compileKeyed(x.Key, x.Sub, ctx)
	}
	// Positional slot: literals, wildcards, nested collections, toggles.
	norm, m, err := compile(p, ctx)
	if err != nil {
		return NormEntry{}, merge.Entry{}, err
	}
	return NormEntry{Sub: norm}, merge.Entry{Child: m}, nil
}

// compileKeyed compiles the value pattern of a keyed entry. Optional
// variables produce a Default merger; everything else compiles as usual.
// Identifier-derived keys land in the context's key universe; explicitly
// quoted keys are already string-typed and stay that way.
func compileKeyed(key *ir.Node, sub Pattern, ctx Context) (NormEntry, merge.Entry, error) {
	if key.Kind == ir.SymbolKind && ctx.KeyType == ir.StringKeys {
		key = ir.FromString(key.String)
	}
	if v, ok := sub.(Var); ok {
		if v.Optional {
			if ctx.Mode == ir.Rigid {
				ctx.advise("optional marker on %q has no effect in rigid mode", v.Name)
			}
			def := v.Default
			if def == nil {
				def = ir.Null()
			}
			return NormEntry{Key: key, Sub: NormVar{Name: v.Name}},
				merge.Entry{Key: key, Child: merge.Default{Value: def}}, nil
		}
		return NormEntry{Key: key, Sub: NormVar{Name: v.Name}},
			merge.Entry{Key: key, Child: merge.Passthrough{}}, nil
	}
	norm, m, err := compile(sub, ctx)
	if err != nil {
		return NormEntry{}, merge.Entry{}, err
	}
	return NormEntry{Key: key, Sub: norm}, merge.Entry{Key: key, Child: m}, nil
}

// compileHeadTail compiles head and tail independently. The tail compiles
// with pair-var forced off so a bare tail variable binds the remainder
// rather than becoming a keyed entry.
func compileHeadTail(h HeadTail, ctx Context) (Norm, merge.Merger, error) {
	headCtx := ctx
	headCtx.noOptional = ""
	headNorm, headMerge, err := compileCollEntry(h.Head, headCtx)
	if err != nil {
		return nil, nil, err
	}
	tailCtx := ctx
	tailCtx.PairVar = false
	tailCtx.noOptional = "in a tail position"
	tailNorm, tailMerge, err := compile(h.Tail, tailCtx)
	if err != nil {
		return nil, nil, err
	}
	norm := NormHeadTail{Head: headNorm.Sub, Tail: tailNorm}
	m := merge.HeadTail{Mode: ctx.Mode, Head: headMerge, Tail: tailMerge}
	return norm, m, nil
}

func optionalErr(ctx Context) error {
	if ctx.noOptional != "" {
		return fmt.Errorf("%w: optional variable %s", ErrIllegalOptionalContext,
			ctx.noOptional)
	}
	return fmt.Errorf("%w: optional variable outside a collection entry",
		ErrIllegalOptionalContext)
}
