package merge

import (
	"fmt"
	"strings"

	"github.com/destructure-format/go-destructure/encode"
	"github.com/destructure-format/go-destructure/ir"
)

// Merger is the compile-time-derived reshaping instruction for one pattern
// position. It is a sealed sum type: Passthrough, Default, ModeTagged and
// HeadTail are the only variants, and Merge dispatches exhaustively over
// them.
type Merger interface {
	merger()
	String() string
}

// Passthrough means "use the right-hand value exactly as received". It is
// an explicit variant, not a sentinel constant, so dispatch stays
// checkable.
type Passthrough struct{}

func (Passthrough) merger()        {}
func (Passthrough) String() string { return "pass" }

// Default substitutes Value when the position is absent on the right. A
// present right-hand value always wins outright; the two are never
// combined.
type Default struct {
	Value *ir.Node
}

func (Default) merger() {}
func (d Default) String() string {
	return fmt.Sprintf("default(%s)", encode.MustString(d.Value))
}

// Entry is one keyed (or, in rigid sequences, positional) slot of a
// ModeTagged merger. Key is nil for positions that carry no lookup key.
type Entry struct {
	Key   *ir.Node
	Child Merger
}

// ModeTagged reshapes the right-hand value into Kind under Mode, entry by
// entry. An Entries-empty ModeTagged is the coercion request: convert the
// whole right-hand value to Kind and return it unfiltered.
type ModeTagged struct {
	Mode    ir.Mode
	Kind    ir.Kind
	Entries []Entry
}

func (ModeTagged) merger() {}
func (m ModeTagged) String() string {
	parts := make([]string, len(m.Entries))
	for i, e := range m.Entries {
		if e.Key != nil {
			parts[i] = fmt.Sprintf("%s: %s", encode.MustString(e.Key), e.Child)
		} else {
			parts[i] = e.Child.String()
		}
	}
	return fmt.Sprintf("%s %s{%s}", m.Mode, m.Kind, strings.Join(parts, ", "))
}

// HeadTail splits the right-hand value into a head position and the
// remainder. In loose mode Head.Key selects the pair to extract; in rigid
// mode the head is the first element and Head.Key is ignored.
type HeadTail struct {
	Mode ir.Mode
	Head Entry
	Tail Merger
}

func (HeadTail) merger() {}
func (h HeadTail) String() string {
	head := h.Head.Child.String()
	if h.Head.Key != nil {
		head = fmt.Sprintf("%s: %s", encode.MustString(h.Head.Key), h.Head.Child)
	}
	return fmt.Sprintf("%s headtail(%s | %s)", h.Mode, head, h.Tail)
}
