package pattern

import (
	"github.com/destructure-format/go-destructure/ir"
)

// Pattern is a declarative destructuring pattern node. It is a sealed sum
// type; Compile dispatches exhaustively over the variants.
type Pattern interface {
	pattern()
}

// Var declares a name. A mandatory variable must find a value; an optional
// one falls back to Default (the absence value when Default is nil).
type Var struct {
	Name     string
	Optional bool
	Default  *ir.Node
}

// Entry looks up Key and destructures the value with Sub. When Sub is a
// bare Var with a different name, the bound program name differs from the
// lookup key.
type Entry struct {
	Key *ir.Node
	Sub Pattern
}

// Coll is a collection pattern. Kind is ir.MapKind, ir.ListKind or
// ir.TupleKind. An empty Entries list is the coercion request: reshape the
// whole right-hand value into Kind.
type Coll struct {
	Kind    ir.Kind
	Entries []Pattern
}

// HeadTail extracts a head position and the remainder of a sequence.
type HeadTail struct {
	Head Pattern
	Tail Pattern
}

// Bind binds Name to the whole resolved value while also destructuring
// inside it with Sub.
type Bind struct {
	Name string
	Sub  Pattern
}

// ModeToggle flips loose/rigid for Child and its descendants until
// re-toggled.
type ModeToggle struct {
	Child Pattern
}

// KeyTypeToggle flips the symbolic/string key universe for lookups in
// Child's subtree. Orthogonal to ModeToggle.
type KeyTypeToggle struct {
	Child Pattern
}

// Lit matches a literal value exactly.
type Lit struct {
	Value *ir.Node
}

// Wildcard matches anything present and binds nothing.
type Wildcard struct{}

func (Var) pattern()           {}
func (Entry) pattern()         {}
func (Coll) pattern()          {}
func (HeadTail) pattern()      {}
func (Bind) pattern()          {}
func (ModeToggle) pattern()    {}
func (KeyTypeToggle) pattern() {}
func (Lit) pattern()           {}
func (Wildcard) pattern()      {}
