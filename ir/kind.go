package ir

import "fmt"

type Kind int

const (
	NullKind Kind = iota
	NumberKind
	StringKind
	SymbolKind
	BoolKind
	MapKind
	ListKind
	TupleKind
	// AbsentKind marks a position the merge engine could not fill. It is
	// internal to an invocation: it never appears in bindings.
	AbsentKind
)

func (k Kind) String() string {
	s, ok := map[Kind]string{
		NullKind:   "Null",
		NumberKind: "Number",
		StringKind: "String",
		SymbolKind: "Symbol",
		BoolKind:   "Bool",
		MapKind:    "Map",
		ListKind:   "List",
		TupleKind:  "Tuple",
		AbsentKind: "Absent",
	}[k]
	if ok {
		return s
	}
	return "<unknown kind>"
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(d []byte) error {
	kk, ok := map[string]Kind{
		"Null":   NullKind,
		"Number": NumberKind,
		"String": StringKind,
		"Symbol": SymbolKind,
		"Bool":   BoolKind,
		"Map":    MapKind,
		"List":   ListKind,
		"Tuple":  TupleKind,
		"Absent": AbsentKind,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized kind %q", d)
	}
	*k = kk
	return nil
}

func Kinds() []Kind {
	return []Kind{
		NullKind,
		NumberKind,
		StringKind,
		SymbolKind,
		BoolKind,
		MapKind,
		ListKind,
		TupleKind,
		AbsentKind,
	}
}

func (k Kind) IsLeaf() bool {
	switch k {
	case MapKind, ListKind, TupleKind:
		return false
	default:
		return true
	}
}

// IsCollection reports whether nodes of this kind carry child values.
func (k Kind) IsCollection() bool {
	return !k.IsLeaf()
}

// Mode is the matching discipline of a pattern subtree: loose subtrees
// reconcile collection kinds freely, rigid subtrees require exact kind and
// arity agreement.
type Mode int

const (
	Loose Mode = iota
	Rigid
)

func (m Mode) String() string {
	if m == Rigid {
		return "rigid"
	}
	return "loose"
}

// Flip returns the other mode.
func (m Mode) Flip() Mode {
	if m == Rigid {
		return Loose
	}
	return Rigid
}

// KeyType selects the key universe used when a pattern identifier becomes a
// lookup key. Symbolic and string keys never compare equal.
type KeyType int

const (
	SymbolicKeys KeyType = iota
	StringKeys
)

func (t KeyType) String() string {
	if t == StringKeys {
		return "string"
	}
	return "symbolic"
}

func (t KeyType) Flip() KeyType {
	if t == StringKeys {
		return SymbolicKeys
	}
	return StringKeys
}
