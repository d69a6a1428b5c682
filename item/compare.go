package item

import (
	"cmp"
	"slices"
	"strings"
)

// Compare returns an integer comparing two nodes.
// The result will be 0 if a==b, -1 if a < b, and +1 if a > b.
// Object members are compared in key order, so member insertion order
// never matters. Nil (holes) sorts before everything else.
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
	va, _ := a.View()
	vb, _ := b.View()

	rankA := rank(va.Type)
	rankB := rank(vb.Type)
	if rankA != rankB {
		return cmp.Compare(rankA, rankB)
	}

	switch va.Type {
	case NumberType:
		return cmp.Compare(va.Number, vb.Number)
	case StringType:
		return strings.Compare(va.String, vb.String)
	case ArrayType:
		return compareArrays(va.Elems, vb.Elems)
	case ObjectType:
		return compareObjects(va.Members, vb.Members)
	}
	return 0
}

func Equal(a, b *Node) bool {
	return Compare(a, b) == 0
}

// rank returns the sorting rank of a type.
// Order: Invalid < Null < False < True < Number < String < Array < Object
func rank(t Type) int {
	switch t {
	case NullType:
		return 1
	case FalseType:
		return 2
	case TrueType:
		return 3
	case NumberType:
		return 4
	case StringType:
		return 5
	case ArrayType:
		return 6
	case ObjectType:
		return 7
	}
	return 0
}

func compareArrays(a, b []*Node) int {
	minLen := min(len(a), len(b))
	for i := 0; i < minLen; i++ {
		if c := Compare(a[i], b[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(len(a), len(b))
}

func compareObjects(a, b []Member) int {
	byKey := func(x, y Member) int { return strings.Compare(x.Key, y.Key) }
	slices.SortFunc(a, byKey)
	slices.SortFunc(b, byKey)
	minLen := min(len(a), len(b))
	for i := 0; i < minLen; i++ {
		if c := strings.Compare(a[i].Key, b[i].Key); c != 0 {
			return c
		}
		if c := Compare(a[i].Val, b[i].Val); c != 0 {
			return c
		}
	}
	return cmp.Compare(len(a), len(b))
}
