package ir

import (
	"testing"
)

func TestCompare(t *testing.T) {
	tests := []struct {
		name     string
		a, b     *Node
		expected int
	}{
		// Kind ranking: Absent < Null < Bool < Number < Symbol < String < List < Tuple < Map
		{"Absent < Null", Absent(), Null(), -1},
		{"Null < Bool", Null(), FromBool(false), -1},
		{"Bool < Number", FromBool(true), FromInt(1), -1},
		{"Number < Symbol", FromInt(1), FromSymbol("a"), -1},
		{"Symbol < String", FromSymbol("a"), FromString("a"), -1},
		{"String < List", FromString("a"), FromList(nil), -1},
		{"List < Tuple", FromList(nil), FromTuple(nil), -1},
		{"Tuple < Map", FromTuple(nil), FromKeyVals(nil), -1},

		// Bool comparison
		{"false < true", FromBool(false), FromBool(true), -1},
		{"true > false", FromBool(true), FromBool(false), 1},
		{"true == true", FromBool(true), FromBool(true), 0},

		// Number comparison: Int < Float < String payload
		{"Int < Float", FromInt(1), FromFloat(1.0), -1},
		{"Float < StringNum", FromFloat(1.0), &Node{Kind: NumberKind, Number: "1"}, -1},
		{"Int < Int", FromInt(1), FromInt(2), -1},
		{"Float < Float", FromFloat(1.0), FromFloat(2.0), -1},

		// Key universes never meet
		{"Symbol != String same text", FromSymbol("k"), FromString("k"), -1},
		{"Symbol < Symbol", FromSymbol("a"), FromSymbol("b"), -1},

		// Sequence comparison
		{"Empty List == Empty List", FromList(nil), FromList(nil), 0},
		{"Short List < Long List", FromList([]*Node{FromInt(1)}), FromList([]*Node{FromInt(1), FromInt(2)}), -1},
		{"List element comparison", FromList([]*Node{FromInt(1)}), FromList([]*Node{FromInt(2)}), -1},
		{"Pair == Pair", Pair(FromSymbol("a"), FromInt(1)), Pair(FromSymbol("a"), FromInt(1)), 0},

		// Map comparison
		{"Empty Map == Empty Map", FromKeyVals(nil), FromKeyVals(nil), 0},
		{"Short Map < Long Map",
			FromMap(map[string]*Node{"a": FromInt(1)}),
			FromMap(map[string]*Node{"a": FromInt(1), "b": FromInt(2)}),
			-1},
		{"Map key comparison",
			FromMap(map[string]*Node{"a": FromInt(1)}),
			FromMap(map[string]*Node{"b": FromInt(1)}),
			-1},
		{"Map value comparison",
			FromMap(map[string]*Node{"a": FromInt(1)}),
			FromMap(map[string]*Node{"a": FromInt(2)}),
			-1},
		{"Map order irrelevant",
			FromKeyVals([]KeyVal{{Key: FromSymbol("b"), Val: FromInt(2)}, {Key: FromSymbol("a"), Val: FromInt(1)}}),
			FromKeyVals([]KeyVal{{Key: FromSymbol("a"), Val: FromInt(1)}, {Key: FromSymbol("b"), Val: FromInt(2)}}),
			0},
		{"Untagged < Tagged same fields",
			FromMap(map[string]*Node{"a": FromInt(1)}),
			FromMap(map[string]*Node{"a": FromInt(1)}).WithTag("t"),
			-1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Compare(tt.a, tt.b)
			if got != tt.expected {
				t.Errorf("Compare() = %d, want %d", got, tt.expected)
			}
			if tt.expected != 0 {
				if rev := Compare(tt.b, tt.a); rev != -tt.expected {
					t.Errorf("Compare() reversed = %d, want %d", rev, -tt.expected)
				}
			}
		})
	}
}

func TestCompareNil(t *testing.T) {
	if Compare(nil, nil) != 0 {
		t.Error("nil == nil")
	}
	if Compare(nil, Null()) != -1 {
		t.Error("nil < any node")
	}
	if Compare(Null(), nil) != 1 {
		t.Error("any node > nil")
	}
}
