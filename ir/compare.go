package ir

import (
	"cmp"
	"strings"
)

// Compare returns an integer comparing two nodes.
// The result will be 0 if a==b, -1 if a < b, and +1 if a > b.
func Compare(a, b *Node) int {
	if a == b {
		return 0
	}
	if a == nil {
		return -1
	}
	if b == nil {
		return 1
	}

	rankA := rank(a.Kind)
	rankB := rank(b.Kind)
	if rankA != rankB {
		return cmp.Compare(rankA, rankB)
	}

	switch a.Kind {
	case NumberKind:
		return compareNumbers(a, b)
	case StringKind, SymbolKind:
		return strings.Compare(a.String, b.String)
	case BoolKind:
		if a.Bool == b.Bool {
			return 0
		}
		if !a.Bool {
			return -1
		}
		return 1
	case ListKind, TupleKind:
		return compareSeqs(a, b)
	case MapKind:
		return compareMaps(a, b)
	case NullKind, AbsentKind:
		return 0
	}
	return 0
}

// rank returns the sorting rank of a kind.
// Order: Absent < Null < Bool < Number < Symbol < String < List < Tuple < Map
func rank(k Kind) int {
	switch k {
	case AbsentKind:
		return 0
	case NullKind:
		return 1
	case BoolKind:
		return 2
	case NumberKind:
		return 3
	case SymbolKind:
		return 4
	case StringKind:
		return 5
	case ListKind:
		return 6
	case TupleKind:
		return 7
	case MapKind:
		return 8
	}
	return 100
}

func compareNumbers(a, b *Node) int {
	// Sub-rank: Int64 < Float64 < Number
	subRankA := numberSubRank(a)
	subRankB := numberSubRank(b)
	if subRankA != subRankB {
		return cmp.Compare(subRankA, subRankB)
	}
	if a.Int64 != nil {
		return cmp.Compare(*a.Int64, *b.Int64)
	}
	if a.Float64 != nil {
		return cmp.Compare(*a.Float64, *b.Float64)
	}
	return strings.Compare(a.Number, b.Number)
}

func numberSubRank(n *Node) int {
	if n.Int64 != nil {
		return 0
	}
	if n.Float64 != nil {
		return 1
	}
	return 2
}

func compareSeqs(a, b *Node) int {
	if d := cmp.Compare(len(a.Values), len(b.Values)); d != 0 {
		return d
	}
	for i := range a.Values {
		if d := Compare(a.Values[i], b.Values[i]); d != 0 {
			return d
		}
	}
	return 0
}

func compareMaps(a, b *Node) int {
	if d := strings.Compare(a.Tag, b.Tag); d != 0 {
		return d
	}
	if d := cmp.Compare(len(a.Keys), len(b.Keys)); d != 0 {
		return d
	}
	// Maps are unordered: compare values under matching keys, then fall
	// back to key-set comparison for keys missing on the other side.
	for i := range a.Keys {
		bv := Get(b, a.Keys[i])
		if bv == nil {
			return compareKeySets(a, b)
		}
		if d := Compare(a.Values[i], bv); d != 0 {
			return d
		}
	}
	return 0
}

func compareKeySets(a, b *Node) int {
	ak := sortedKeys(a)
	bk := sortedKeys(b)
	for i := range ak {
		if d := Compare(ak[i], bk[i]); d != 0 {
			return d
		}
	}
	return 0
}

func sortedKeys(n *Node) []*Node {
	ks := make([]*Node, len(n.Keys))
	copy(ks, n.Keys)
	for i := 1; i < len(ks); i++ {
		for j := i; j > 0 && Compare(ks[j], ks[j-1]) < 0; j-- {
			ks[j], ks[j-1] = ks[j-1], ks[j]
		}
	}
	return ks
}
