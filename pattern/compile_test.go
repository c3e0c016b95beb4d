package pattern

import (
	"errors"
	"fmt"
	"testing"

	"github.com/destructure-format/go-destructure/ir"
	"github.com/destructure-format/go-destructure/merge"
)

type sinkRec struct {
	notes []string
}

func (s *sinkRec) Advise(format string, args ...any) {
	s.notes = append(s.notes, fmt.Sprintf(format, args...))
}

func TestCompileBareVar(t *testing.T) {
	norm, m, err := Compile(Var{Name: "x"}, NewContext())
	if err != nil {
		t.Fatal(err)
	}
	if v, ok := norm.(NormVar); !ok || v.Name != "x" {
		t.Errorf("norm = %#v", norm)
	}
	if _, ok := m.(merge.Passthrough); !ok {
		t.Errorf("merger = %#v", m)
	}
}

func TestCompileOptionalContexts(t *testing.T) {
	tests := []struct {
		name string
		p    Pattern
	}{
		{"top level", Var{Name: "x", Optional: true}},
		{"under bind", Bind{Name: "b", Sub: Var{Name: "x", Optional: true}}},
		{"tail position", HeadTail{
			Head: Var{Name: "h"},
			Tail: Var{Name: "t", Optional: true},
		}},
		{"positional slot", HeadTail{
			Head: Var{Name: "h"},
			Tail: Coll{Kind: ir.ListKind, Entries: []Pattern{
				Var{Name: "x", Optional: true},
			}},
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := Compile(tt.p, NewContext())
			if !errors.Is(err, ErrIllegalOptionalContext) {
				t.Errorf("err = %v, want illegal optional context", err)
			}
		})
	}
}

func TestCompileKeyedReinterpretation(t *testing.T) {
	p := Coll{Kind: ir.ListKind, Entries: []Pattern{
		Var{Name: "a"},
		Var{Name: "b"},
	}}
	norm, m, err := Compile(p, NewContext())
	if err != nil {
		t.Fatal(err)
	}
	mt := m.(merge.ModeTagged)
	if mt.Mode != ir.Loose || mt.Kind != ir.ListKind {
		t.Fatalf("merger = %#v", mt)
	}
	for i, name := range []string{"a", "b"} {
		key := mt.Entries[i].Key
		if key == nil || key.Kind != ir.SymbolKind || key.String != name {
			t.Errorf("entry %d key = %v", i, key)
		}
	}
	nc := norm.(NormColl)
	if nc.Entries[0].Key == nil || nc.Entries[0].Sub.(NormVar).Name != "a" {
		t.Errorf("norm entries = %#v", nc.Entries)
	}
}

func TestCompileKeyUniverse(t *testing.T) {
	p := KeyTypeToggle{Child: Coll{Kind: ir.MapKind, Entries: []Pattern{
		Var{Name: "a"},
		Entry{Key: ir.FromSymbol("b"), Sub: Var{Name: "bb"}},
		Entry{Key: ir.FromString("c"), Sub: Var{Name: "cc"}},
	}}}
	_, m, err := Compile(p, NewContext())
	if err != nil {
		t.Fatal(err)
	}
	mt := m.(merge.ModeTagged)
	for i, want := range []string{"a", "b", "c"} {
		key := mt.Entries[i].Key
		if key.Kind != ir.StringKind || key.String != want {
			t.Errorf("entry %d key = %s %q, want string %q", i, key.Kind, key.String, want)
		}
	}
}

func TestCompileOptionalDefaults(t *testing.T) {
	p := Coll{Kind: ir.MapKind, Entries: []Pattern{
		Var{Name: "a", Optional: true},
		Entry{Key: ir.FromSymbol("b"), Sub: Var{Name: "b", Optional: true, Default: ir.FromInt(5)}},
	}}
	_, m, err := Compile(p, NewContext())
	if err != nil {
		t.Fatal(err)
	}
	mt := m.(merge.ModeTagged)
	d0 := mt.Entries[0].Child.(merge.Default)
	if d0.Value.Kind != ir.NullKind {
		t.Errorf("bare optional default = %v, want null", d0.Value)
	}
	d1 := mt.Entries[1].Child.(merge.Default)
	if d1.Value.Int64 == nil || *d1.Value.Int64 != 5 {
		t.Errorf("declared default = %v", d1.Value)
	}
}

func TestCompileModeToggle(t *testing.T) {
	p := ModeToggle{Child: Coll{Kind: ir.TupleKind, Entries: []Pattern{
		Var{Name: "x"},
		ModeToggle{Child: Coll{Kind: ir.MapKind, Entries: []Pattern{
			Var{Name: "y"},
		}}},
	}}}
	norm, m, err := Compile(p, NewContext())
	if err != nil {
		t.Fatal(err)
	}
	outer := m.(merge.ModeTagged)
	if outer.Mode != ir.Rigid {
		t.Errorf("outer mode = %s", outer.Mode)
	}
	inner := outer.Entries[1].Child.(merge.ModeTagged)
	if inner.Mode != ir.Loose {
		t.Errorf("inner mode = %s", inner.Mode)
	}
	nc := norm.(NormColl)
	if nc.Mode != ir.Rigid {
		t.Errorf("norm mode = %s", nc.Mode)
	}
}

func TestCompileHeadTail(t *testing.T) {
	p := HeadTail{Head: Var{Name: "h"}, Tail: Var{Name: "rest"}}
	norm, m, err := Compile(p, NewContext())
	if err != nil {
		t.Fatal(err)
	}
	ht := m.(merge.HeadTail)
	if ht.Head.Key == nil || ht.Head.Key.String != "h" {
		t.Errorf("head key = %v", ht.Head.Key)
	}
	if _, ok := ht.Tail.(merge.Passthrough); !ok {
		t.Errorf("tail merger = %#v", ht.Tail)
	}
	nh := norm.(NormHeadTail)
	if nh.Tail.(NormVar).Name != "rest" {
		t.Errorf("tail norm = %#v", nh.Tail)
	}
}

func TestCompileAdvisories(t *testing.T) {
	sink := &sinkRec{}
	ctx := NewContext().WithSink(sink)
	_, _, err := Compile(Coll{Kind: ir.ListKind, Entries: []Pattern{
		Wildcard{},
	}}, ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(sink.notes) != 1 {
		t.Fatalf("notes = %v", sink.notes)
	}

	sink = &sinkRec{}
	_, _, err = Compile(ModeToggle{Child: Coll{Kind: ir.MapKind, Entries: []Pattern{
		Var{Name: "x", Optional: true},
	}}}, NewContext().WithSink(sink))
	if err != nil {
		t.Fatal(err)
	}
	if len(sink.notes) != 1 {
		t.Fatalf("rigid optional notes = %v", sink.notes)
	}
}

func TestCompileEntryOutsideCollection(t *testing.T) {
	_, _, err := Compile(Entry{Key: ir.FromSymbol("a"), Sub: Var{Name: "x"}}, NewContext())
	if !errors.Is(err, ErrInvalidVariableForm) {
		t.Errorf("err = %v, want invalid variable form", err)
	}
}
