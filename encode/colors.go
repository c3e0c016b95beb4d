package encode

import (
	"github.com/fatih/color"

	"github.com/destructure-format/go-destructure/ir"
)

type Colorable struct {
	Kind ir.Kind
	Attr ColorAttr
}

type ColorAttr int

const (
	TagColor ColorAttr = iota
	FieldColor
	ValueColor
	SepColor
)

type Colors struct {
	Default func(string, ...any) string
	Map     map[Colorable]func(string, ...any) string
}

func colorDefault(s string, args ...any) string {
	return color.WhiteString(s, args...)
}

func NewColors() *Colors {
	colors := &Colors{
		Default: colorDefault,
		Map:     map[Colorable]func(string, ...any) string{},
	}
	for _, k := range ir.Kinds() {
		able := Colorable{Kind: k, Attr: TagColor}
		colors.Map[able] = color.RGB(74, 92, 138).SprintfFunc()
		able.Attr = SepColor
		colors.Map[able] = color.RGB(255, 0, 196).SprintfFunc()
		able.Attr = FieldColor
		colors.Map[able] = color.RGB(196, 96, 16).SprintfFunc()
	}

	able := Colorable{Attr: ValueColor}
	able.Kind = ir.NumberKind
	colors.Map[able] = color.RGB(128, 216, 236).SprintfFunc()
	able.Kind = ir.NullKind
	colors.Map[able] = color.RGB(168, 0, 196).SprintfFunc()
	able.Kind = ir.AbsentKind
	colors.Map[able] = color.RedString
	able.Kind = ir.BoolKind
	colors.Map[able] = color.CyanString
	able.Kind = ir.StringKind
	colors.Map[able] = color.GreenString
	able.Kind = ir.SymbolKind
	colors.Map[able] = color.YellowString
	return colors
}

// Colorize returns a Color function for EncState backed by c.
func (c *Colors) Colorize() func(ir.Kind, ColorAttr, string) string {
	return func(k ir.Kind, attr ColorAttr, s string) string {
		f, ok := c.Map[Colorable{Kind: k, Attr: attr}]
		if !ok {
			f = c.Default
		}
		return f("%s", s)
	}
}

// EncodeColors installs color rendering on the encoder.
func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) { es.Color = c.Colorize() }
}
