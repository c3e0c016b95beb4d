package encode

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/destructure-format/go-destructure/ir"
)

var ErrEncoding = errors.New("encoding error")

type EncState struct {
	Color func(ir.Kind, ColorAttr, string) string
}

type EncodeOption func(*EncState)

// Encode writes a single-line textual rendering of node to w. Symbols print
// bare, strings quoted, so the two key universes stay distinguishable. Maps
// print as {k: v, ...} with a !tag prefix when tagged, lists as [...],
// tuples as (...).
func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{}
	for _, opt := range opts {
		opt(es)
	}
	return encode(node, w, es)
}

func encode(node *ir.Node, w io.Writer, es *EncState) error {
	switch node.Kind {
	case ir.NullKind:
		return writeValue(w, es, node.Kind, "null")
	case ir.AbsentKind:
		return writeValue(w, es, node.Kind, "<absent>")
	case ir.BoolKind:
		return writeValue(w, es, node.Kind, strconv.FormatBool(node.Bool))
	case ir.NumberKind:
		return writeValue(w, es, node.Kind, numberString(node))
	case ir.SymbolKind:
		return writeValue(w, es, node.Kind, node.String)
	case ir.StringKind:
		return writeValue(w, es, node.Kind, strconv.Quote(node.String))
	case ir.MapKind:
		return encodeMap(node, w, es)
	case ir.ListKind:
		return encodeSeq(node, w, es, "[", "]")
	case ir.TupleKind:
		return encodeSeq(node, w, es, "(", ")")
	}
	return fmt.Errorf("%w: unknown kind %d", ErrEncoding, int(node.Kind))
}

func encodeMap(node *ir.Node, w io.Writer, es *EncState) error {
	if node.Tag != "" {
		if err := writeString(w, es.color(node.Kind, TagColor, "!"+node.Tag)); err != nil {
			return err
		}
	}
	if err := writeString(w, es.color(node.Kind, SepColor, "{")); err != nil {
		return err
	}
	for i := range node.Keys {
		if i != 0 {
			if err := writeString(w, es.color(node.Kind, SepColor, ", ")); err != nil {
				return err
			}
		}
		if err := writeKey(node.Keys[i], w, es); err != nil {
			return err
		}
		if err := writeString(w, es.color(node.Kind, SepColor, ": ")); err != nil {
			return err
		}
		if err := encode(node.Values[i], w, es); err != nil {
			return err
		}
	}
	return writeString(w, es.color(node.Kind, SepColor, "}"))
}

func encodeSeq(node *ir.Node, w io.Writer, es *EncState, open, close string) error {
	if err := writeString(w, es.color(node.Kind, SepColor, open)); err != nil {
		return err
	}
	for i, elt := range node.Values {
		if i != 0 {
			if err := writeString(w, es.color(node.Kind, SepColor, ", ")); err != nil {
				return err
			}
		}
		if err := encode(elt, w, es); err != nil {
			return err
		}
	}
	return writeString(w, es.color(node.Kind, SepColor, close))
}

func writeKey(key *ir.Node, w io.Writer, es *EncState) error {
	s := ""
	switch key.Kind {
	case ir.SymbolKind:
		s = key.String
	case ir.StringKind:
		s = strconv.Quote(key.String)
	case ir.NumberKind:
		s = numberString(key)
	case ir.BoolKind:
		s = strconv.FormatBool(key.Bool)
	default:
		return fmt.Errorf("%w: bad key kind %s", ErrEncoding, key.Kind)
	}
	return writeString(w, es.color(key.Kind, FieldColor, s))
}

func writeValue(w io.Writer, es *EncState, k ir.Kind, s string) error {
	return writeString(w, es.color(k, ValueColor, s))
}

func writeString(w io.Writer, s string) error {
	_, err := w.Write([]byte(s))
	return err
}

func (es *EncState) color(k ir.Kind, attr ColorAttr, s string) string {
	if es.Color == nil {
		return s
	}
	return es.Color(k, attr, s)
}

func numberString(n *ir.Node) string {
	if n.Int64 != nil {
		return strconv.FormatInt(*n.Int64, 10)
	}
	if n.Float64 != nil {
		return strconv.FormatFloat(*n.Float64, 'g', -1, 64)
	}
	return n.Number
}
