package destructure

import (
	"sync"

	"github.com/destructure-format/go-destructure/ir"
	"github.com/destructure-format/go-destructure/merge"
	"github.com/destructure-format/go-destructure/parse"
	"github.com/destructure-format/go-destructure/pattern"
)

// Bindings maps declared names to their resolved values. A Bindings is
// produced only on full success; no partial bindings are ever observable.
type Bindings map[string]*ir.Node

// Compiled is a compiled pattern: the normalized pattern for the final
// structural bind and the merger tree reshaping runtime values for it.
// Compiled values are immutable and safe to share across goroutines.
type Compiled struct {
	Norm   pattern.Norm
	Merger merge.Merger
}

type CompileConfig struct {
	Context pattern.Context
}

type CompileOpt func(*CompileConfig)

// CompileSink directs compile-time advisories to sink.
func CompileSink(sink pattern.DiagSink) CompileOpt {
	return func(c *CompileConfig) { c.Context = c.Context.WithSink(sink) }
}

// CompileMode sets the initial matching discipline (loose by default).
func CompileMode(m ir.Mode) CompileOpt {
	return func(c *CompileConfig) { c.Context.Mode = m }
}

// CompileKeyType sets the initial key universe (symbolic by default).
func CompileKeyType(t ir.KeyType) CompileOpt {
	return func(c *CompileConfig) { c.Context.KeyType = t }
}

// Compile compiles a pattern AST once; the result may be reused across
// many invocations with different runtime values.
func Compile(p pattern.Pattern, opts ...CompileOpt) (*Compiled, error) {
	cfg := &CompileConfig{Context: pattern.NewContext()}
	for _, opt := range opts {
		opt(cfg)
	}
	norm, m, err := pattern.Compile(p, cfg.Context)
	if err != nil {
		return nil, err
	}
	return &Compiled{Norm: norm, Merger: m}, nil
}

// CompileString parses and compiles the pattern surface syntax.
func CompileString(src string, opts ...CompileOpt) (*Compiled, error) {
	p, err := parse.Parse(src)
	if err != nil {
		return nil, err
	}
	return Compile(p, opts...)
}

// Destructure reshapes value through the compiled merger tree and binds
// the normalized pattern against the result. Failure is atomic: on any
// error no bindings are returned.
func Destructure(c *Compiled, value *ir.Node) (Bindings, error) {
	return c.Destructure(value)
}

func (c *Compiled) Destructure(value *ir.Node) (Bindings, error) {
	adjusted, err := merge.Merge(c.Merger, value)
	if err != nil {
		return nil, err
	}
	res := Bindings{}
	if err := bind(c.Norm, adjusted, res); err != nil {
		return nil, err
	}
	return res, nil
}

var cache sync.Map // pattern source -> *Compiled

// DestructureString is Destructure over source text, caching the default
// compilation per distinct pattern string.
func DestructureString(src string, value *ir.Node) (Bindings, error) {
	if c, ok := cache.Load(src); ok {
		return c.(*Compiled).Destructure(value)
	}
	c, err := CompileString(src)
	if err != nil {
		return nil, err
	}
	cache.Store(src, c)
	return c.Destructure(value)
}
