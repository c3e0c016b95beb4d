package pattern

import (
	"fmt"
	"strings"

	"github.com/destructure-format/go-destructure/encode"
	"github.com/destructure-format/go-destructure/ir"
)

// Norm is a normalized pattern node, the structural-bind side of a
// compilation. Like Pattern it is a sealed sum type; the binder dispatches
// exhaustively over it.
type Norm interface {
	norm()
	String() string
}

type NormVar struct {
	Name string
}

type NormLit struct {
	Value *ir.Node
}

type NormWild struct{}

type NormBind struct {
	Name string
	Sub  Norm
}

// NormEntry is one slot of a normalized collection. Key is the lookup key
// of keyed positions; it is nil for positional slots, which bind the raw
// adjusted element.
type NormEntry struct {
	Key *ir.Node
	Sub Norm
}

// NormColl binds a reshaped collection. The merge engine has already
// reconciled kinds and filled defaults; the binder only walks the declared
// slots.
type NormColl struct {
	Kind    ir.Kind
	Mode    ir.Mode
	Entries []NormEntry
}

// NormHeadTail binds the (head, tail) split the merge engine produced:
// the adjusted value is a 2-tuple holding the resolved head and the
// remainder.
type NormHeadTail struct {
	Head Norm
	Tail Norm
}

func (NormVar) norm()      {}
func (NormLit) norm()      {}
func (NormWild) norm()     {}
func (NormBind) norm()     {}
func (NormColl) norm()     {}
func (NormHeadTail) norm() {}

func (v NormVar) String() string { return v.Name }
func (l NormLit) String() string { return encode.MustString(l.Value) }
func (NormWild) String() string  { return "_" }
func (b NormBind) String() string {
	return fmt.Sprintf("%s = %s", b.Name, b.Sub)
}
func (c NormColl) String() string {
	parts := make([]string, len(c.Entries))
	for i, e := range c.Entries {
		if e.Key != nil {
			parts[i] = fmt.Sprintf("%s: %s", encode.MustString(e.Key), e.Sub)
		} else {
			parts[i] = e.Sub.String()
		}
	}
	return fmt.Sprintf("%s %s{%s}", c.Mode, c.Kind, strings.Join(parts, ", "))
}
func (h NormHeadTail) String() string {
	return fmt.Sprintf("[%s | %s]", h.Head, h.Tail)
}
