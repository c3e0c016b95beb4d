package merge

import (
	"errors"
	"testing"

	"github.com/destructure-format/go-destructure/ir"

	"github.com/google/go-cmp/cmp"
)

func sym(s string) *ir.Node { return ir.FromSymbol(s) }

func entry(key string, child Merger) Entry {
	return Entry{Key: sym(key), Child: child}
}

func pairList(kvs ...ir.KeyVal) *ir.Node { return ir.FromPairs(kvs) }

func kv(key string, val *ir.Node) ir.KeyVal {
	return ir.KeyVal{Key: sym(key), Val: val}
}

func checkNode(t *testing.T, want, got *ir.Node) {
	t.Helper()
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("unexpected result (-want +got):\n%s", d)
	}
}

func TestLooseMapSuperset(t *testing.T) {
	m := ModeTagged{Mode: ir.Loose, Kind: ir.MapKind, Entries: []Entry{
		entry("a", Passthrough{}),
	}}
	right := ir.FromMap(map[string]*ir.Node{"b": ir.FromInt(2), "a": ir.FromInt(1)})
	got, err := Merge(m, right)
	if err != nil {
		t.Fatal(err)
	}
	// declared keys first, the rest retained in right's order
	want := ir.FromKeyVals([]ir.KeyVal{
		kv("a", ir.FromInt(1)),
		kv("b", ir.FromInt(2)),
	})
	checkNode(t, want, got)
}

func TestLooseMapFromPairSeq(t *testing.T) {
	m := ModeTagged{Mode: ir.Loose, Kind: ir.MapKind, Entries: []Entry{
		entry("a", Passthrough{}),
	}}
	// duplicate keys: first occurrence wins
	right := pairList(kv("a", ir.FromInt(1)), kv("b", ir.FromInt(2)), kv("a", ir.FromInt(9)))
	got, err := Merge(m, right)
	if err != nil {
		t.Fatal(err)
	}
	want := ir.FromKeyVals([]ir.KeyVal{
		kv("a", ir.FromInt(1)),
		kv("b", ir.FromInt(2)),
	})
	checkNode(t, want, got)
}

func TestLooseMapAbsentAndDefault(t *testing.T) {
	m := ModeTagged{Mode: ir.Loose, Kind: ir.MapKind, Entries: []Entry{
		entry("need", Passthrough{}),
		entry("opt", Default{Value: ir.FromInt(7)}),
	}}
	got, err := Merge(m, ir.FromMap(map[string]*ir.Node{}))
	if err != nil {
		t.Fatal(err)
	}
	want := ir.FromKeyVals([]ir.KeyVal{
		kv("need", ir.Absent()),
		kv("opt", ir.FromInt(7)),
	})
	checkNode(t, want, got)
}

func TestLooseMapDefaultIgnoredWhenPresent(t *testing.T) {
	m := ModeTagged{Mode: ir.Loose, Kind: ir.MapKind, Entries: []Entry{
		entry("opt", Default{Value: ir.FromInt(7)}),
	}}
	got, err := Merge(m, ir.FromMap(map[string]*ir.Node{"opt": ir.FromInt(1)}))
	if err != nil {
		t.Fatal(err)
	}
	want := ir.FromKeyVals([]ir.KeyVal{kv("opt", ir.FromInt(1))})
	checkNode(t, want, got)
}

func TestLooseMapCoercion(t *testing.T) {
	m := ModeTagged{Mode: ir.Loose, Kind: ir.MapKind}
	right := pairList(kv("b", ir.FromInt(2)), kv("a", ir.FromInt(1)))
	got, err := Merge(m, right)
	if err != nil {
		t.Fatal(err)
	}
	want := ir.FromKeyVals([]ir.KeyVal{
		kv("b", ir.FromInt(2)),
		kv("a", ir.FromInt(1)),
	})
	checkNode(t, want, got)
}

func TestLooseMapInvalidFormat(t *testing.T) {
	m := ModeTagged{Mode: ir.Loose, Kind: ir.MapKind}
	for _, right := range []*ir.Node{
		ir.FromInt(1),
		ir.FromList([]*ir.Node{ir.FromInt(1)}),
	} {
		if _, err := Merge(m, right); !errors.Is(err, ErrInvalidFormat) {
			t.Errorf("Merge(%v) err = %v, want invalid format", right, err)
		}
	}
}

func TestRigidMap(t *testing.T) {
	m := ModeTagged{Mode: ir.Rigid, Kind: ir.MapKind, Entries: []Entry{
		entry("a", Passthrough{}),
	}}
	right := ir.FromMap(map[string]*ir.Node{"a": ir.FromInt(1), "b": ir.FromInt(2)})
	got, err := Merge(m, right)
	if err != nil {
		t.Fatal(err)
	}
	// extras ignored, declared keys only
	want := ir.FromKeyVals([]ir.KeyVal{kv("a", ir.FromInt(1))})
	checkNode(t, want, got)

	if _, err := Merge(m, pairList(kv("a", ir.FromInt(1)))); !errors.Is(err, ErrShapeMismatch) {
		t.Errorf("rigid map over pair list err = %v, want shape mismatch", err)
	}
}

func TestLooseSeqSubset(t *testing.T) {
	m := ModeTagged{Mode: ir.Loose, Kind: ir.ListKind, Entries: []Entry{
		entry("b", Passthrough{}),
		entry("a", Passthrough{}),
	}}
	right := ir.FromMap(map[string]*ir.Node{
		"a": ir.FromInt(1), "b": ir.FromInt(2), "c": ir.FromInt(3),
	})
	got, err := Merge(m, right)
	if err != nil {
		t.Fatal(err)
	}
	// declared keys only, in declared order
	want := pairList(kv("b", ir.FromInt(2)), kv("a", ir.FromInt(1)))
	checkNode(t, want, got)
}

func TestLooseSeqCoercionKeepsKind(t *testing.T) {
	m := ModeTagged{Mode: ir.Loose, Kind: ir.TupleKind}
	right := ir.FromMap(map[string]*ir.Node{"a": ir.FromInt(1)})
	got, err := Merge(m, right)
	if err != nil {
		t.Fatal(err)
	}
	if got.Kind != ir.TupleKind || len(got.Values) != 1 {
		t.Errorf("got %v", got)
	}
}

func TestRigidSeq(t *testing.T) {
	m := ModeTagged{Mode: ir.Rigid, Kind: ir.ListKind, Entries: []Entry{
		entry("x", Passthrough{}),
		entry("y", Passthrough{}),
	}}
	got, err := Merge(m, ir.FromList([]*ir.Node{ir.FromInt(1), ir.FromInt(2)}))
	if err != nil {
		t.Fatal(err)
	}
	want := ir.FromList([]*ir.Node{ir.FromInt(1), ir.FromInt(2)})
	checkNode(t, want, got)

	_, err = Merge(m, ir.FromList([]*ir.Node{ir.FromInt(1)}))
	if !errors.Is(err, ErrArityMismatch) {
		t.Errorf("short right err = %v, want arity mismatch", err)
	}
	_, err = Merge(m, ir.FromMap(nil))
	if !errors.Is(err, ErrShapeMismatch) {
		t.Errorf("map right err = %v, want shape mismatch", err)
	}
}

func TestRigidSeqAcceptsEitherSequenceKind(t *testing.T) {
	m := ModeTagged{Mode: ir.Rigid, Kind: ir.TupleKind}
	got, err := Merge(m, ir.FromList([]*ir.Node{ir.FromInt(1), ir.FromInt(2)}))
	if err != nil {
		t.Fatal(err)
	}
	if got.Kind != ir.TupleKind {
		t.Errorf("kind = %s, want tuple", got.Kind)
	}
}

func TestHeadTailRigid(t *testing.T) {
	m := HeadTail{
		Mode: ir.Rigid,
		Head: Entry{Child: Passthrough{}},
		Tail: Passthrough{},
	}
	got, err := Merge(m, ir.FromList([]*ir.Node{ir.FromInt(1), ir.FromInt(2), ir.FromInt(3)}))
	if err != nil {
		t.Fatal(err)
	}
	want := ir.FromTuple([]*ir.Node{
		ir.FromInt(1),
		ir.FromList([]*ir.Node{ir.FromInt(2), ir.FromInt(3)}),
	})
	checkNode(t, want, got)

	_, err = Merge(m, ir.FromList(nil))
	if !errors.Is(err, ErrArityMismatch) {
		t.Errorf("empty right err = %v, want arity mismatch", err)
	}
}

func TestHeadTailLoose(t *testing.T) {
	m := HeadTail{
		Mode: ir.Loose,
		Head: entry("b", Passthrough{}),
		Tail: Passthrough{},
	}
	right := pairList(kv("a", ir.FromInt(1)), kv("b", ir.FromInt(2)), kv("c", ir.FromInt(3)))
	got, err := Merge(m, right)
	if err != nil {
		t.Fatal(err)
	}
	want := ir.FromTuple([]*ir.Node{
		ir.FromInt(2),
		pairList(kv("a", ir.FromInt(1)), kv("c", ir.FromInt(3))),
	})
	checkNode(t, want, got)
}

func TestHeadTailLooseNeedsKey(t *testing.T) {
	m := HeadTail{
		Mode: ir.Loose,
		Head: Entry{Child: Passthrough{}},
		Tail: Passthrough{},
	}
	_, err := Merge(m, pairList(kv("a", ir.FromInt(1))))
	if !errors.Is(err, ErrInvalidHeadShape) {
		t.Errorf("err = %v, want invalid head shape", err)
	}
}

func TestNestedScalarRightWins(t *testing.T) {
	m := ModeTagged{Mode: ir.Loose, Kind: ir.MapKind, Entries: []Entry{
		entry("a", ModeTagged{Mode: ir.Rigid, Kind: ir.ListKind, Entries: []Entry{
			entry("x", Passthrough{}),
		}}),
	}}
	got, err := Merge(m, ir.FromMap(map[string]*ir.Node{"a": ir.FromInt(5)}))
	if err != nil {
		t.Fatal(err)
	}
	// the mismatch surfaces at bind time, not here
	want := ir.FromKeyVals([]ir.KeyVal{kv("a", ir.FromInt(5))})
	checkNode(t, want, got)
}

func TestTagKeyLookup(t *testing.T) {
	m := ModeTagged{Mode: ir.Loose, Kind: ir.MapKind, Entries: []Entry{
		entry(TagKey, Passthrough{}),
		entry("a", Passthrough{}),
	}}
	right := ir.FromMap(map[string]*ir.Node{"a": ir.FromInt(1)}).WithTag("user")
	got, err := Merge(m, right)
	if err != nil {
		t.Fatal(err)
	}
	if got.Tag != "user" {
		t.Errorf("tag = %q, want user", got.Tag)
	}
	tv := ir.Get(got, sym(TagKey))
	if tv == nil || tv.Kind != ir.StringKind || tv.String != "user" {
		t.Errorf("tag value = %v", tv)
	}
}

func TestTagKeyShadowsField(t *testing.T) {
	m := ModeTagged{Mode: ir.Loose, Kind: ir.MapKind, Entries: []Entry{
		entry(TagKey, Passthrough{}),
	}}
	right := ir.FromMap(map[string]*ir.Node{
		TagKey: ir.FromString("declared"),
	}).WithTag("fromtag")
	got, err := Merge(m, right)
	if err != nil {
		t.Fatal(err)
	}
	tv := ir.Get(got, sym(TagKey))
	if tv == nil || tv.String != "fromtag" {
		t.Errorf("tag value = %v", tv)
	}
}
