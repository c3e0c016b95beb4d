package pattern

import "github.com/destructure-format/go-destructure/ir"

// DiagSink receives advisory notices about logically vacuous but non-fatal
// pattern constructs. It never influences control flow. A nil sink
// discards. Thread safety of the sink belongs to its provider.
type DiagSink interface {
	Advise(format string, args ...any)
}

// Context is the per-frame compilation state. Each recursive call receives
// its own copy, flipped where needed, so toggling needs no push/pop.
type Context struct {
	// Mode is the matching discipline inherited by this subtree.
	Mode ir.Mode
	// KeyType selects the key universe identifiers compile into.
	KeyType ir.KeyType
	// PairVar marks positions where a bare identifier is reinterpreted
	// as a keyed entry.
	PairVar bool
	// Sink receives advisories; nil discards.
	Sink DiagSink

	// noOptional carries the reason optional markers are rejected in
	// this subtree. It is transient: set just before descending into the
	// one child that needs it, zero elsewhere.
	noOptional string
}

// NewContext returns the default top-level context: loose mode, symbolic
// keys, identifiers read as keyed entries.
func NewContext() Context {
	return Context{Mode: ir.Loose, KeyType: ir.SymbolicKeys, PairVar: true}
}

func (c Context) WithSink(sink DiagSink) Context {
	c.Sink = sink
	return c
}

func (c Context) advise(format string, args ...any) {
	if c.Sink == nil {
		return
	}
	c.Sink.Advise(format, args...)
}

// key builds the lookup key for an identifier under the current key
// universe.
func (c Context) key(name string) *ir.Node {
	if c.KeyType == ir.StringKeys {
		return ir.FromString(name)
	}
	return ir.FromSymbol(name)
}
