package ir

import "testing"

func TestKindText(t *testing.T) {
	for _, k := range Kinds() {
		d, err := k.MarshalText()
		if err != nil {
			t.Fatal(err)
		}
		var back Kind
		if err := back.UnmarshalText(d); err != nil {
			t.Fatal(err)
		}
		if back != k {
			t.Errorf("%s round-tripped to %s", k, back)
		}
	}
	var k Kind
	if err := k.UnmarshalText([]byte("nope")); err == nil {
		t.Error("expected an error for an unknown kind name")
	}
}

func TestFlips(t *testing.T) {
	if Loose.Flip() != Rigid || Rigid.Flip() != Loose {
		t.Error("mode flip")
	}
	if SymbolicKeys.Flip() != StringKeys || StringKeys.Flip() != SymbolicKeys {
		t.Error("key type flip")
	}
	if !MapKind.IsCollection() || NumberKind.IsCollection() {
		t.Error("collection classification")
	}
	if !StringKind.IsLeaf() || ListKind.IsLeaf() {
		t.Error("leaf classification")
	}
}
