package item

import (
	"bytes"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestScalars(t *testing.T) {
	tests := []struct {
		name  string
		n     *Node
		typ   Type
		count int
	}{
		{"null", Null(), NullType, 1},
		{"true", True(), TrueType, 1},
		{"false", Bool(false), FalseType, 1},
		{"number", Number(1.5), NumberType, 1},
		{"int", Int(-3), NumberType, 1},
		{"string", String("s"), StringType, 1},
		{"empty string", String(""), StringType, 1},
		{"array", Array(), ArrayType, 0},
		{"object", Object(), ObjectType, 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.n.Type(); got != tc.typ {
				t.Errorf("type %s, want %s", got, tc.typ)
			}
			if got := tc.n.Count(); got != tc.count {
				t.Errorf("count %d, want %d", got, tc.count)
			}
			if tc.n.IsEmpty() != (tc.count == 0) {
				t.Error("IsEmpty disagrees with Count")
			}
			if tc.n.Parent() != nil || tc.n.Root() != tc.n {
				t.Error("new node is not a root")
			}
		})
	}
}

func TestAccessorsCheckType(t *testing.T) {
	s := String("x")
	if _, ok := s.NumberValue(); ok {
		t.Error("NumberValue on string")
	}
	if _, ok := s.BoolValue(); ok {
		t.Error("BoolValue on string")
	}
	if err := s.SetNumber(1); !errors.Is(err, ErrType) {
		t.Errorf("SetNumber on string: %v", err)
	}
	if got, ok := s.StringValue(); !ok || got != "x" {
		t.Errorf("StringValue %q %t", got, ok)
	}
	n := Number(2.75)
	if err := n.SetNumber(-7.9); err != nil {
		t.Fatal(err)
	}
	if i, ok := n.IntValue(); !ok || i != -7 {
		t.Errorf("IntValue %d %t", i, ok)
	}
	if _, ok := Number(math.NaN()).IntValue(); ok {
		t.Error("IntValue of NaN")
	}
	if _, ok := Number(1e300).IntValue(); ok {
		t.Error("IntValue out of range")
	}
	if b, ok := True().BoolValue(); !ok || !b {
		t.Error("BoolValue of true")
	}
	if !False().IsBool() || Null().IsBool() {
		t.Error("IsBool")
	}
}

func TestStringPtr(t *testing.T) {
	if StringPtr(nil) != nil {
		t.Error("absent string created a node")
	}
	s := ""
	n := StringPtr(&s)
	if got, ok := n.StringValue(); !ok || got != "" {
		t.Errorf("got %q %t", got, ok)
	}
}

func TestFree(t *testing.T) {
	arr := Array()
	obj := Object()
	str := String("leaf")
	if err := obj.Set("k", str); err != nil {
		t.Fatal(err)
	}
	if err := arr.Push(obj); err != nil {
		t.Fatal(err)
	}
	if got := Free(obj); got != obj {
		t.Error("freed an owned node")
	}
	if !obj.Valid() {
		t.Fatal("owned node invalidated")
	}
	if got := Free(arr); got != nil {
		t.Error("Free of root did not return nil")
	}
	for _, n := range []*Node{arr, obj, str} {
		if n.Valid() {
			t.Errorf("%p still valid", n)
		}
		if n.Type() != InvalidType {
			t.Errorf("%p type %s", n, n.Type())
		}
		if n.Count() != 0 {
			t.Error("count of freed node")
		}
	}
	if err := arr.Push(Null()); !errors.Is(err, ErrInvalid) {
		t.Errorf("push to freed: %v", err)
	}
	if Free(nil) != nil {
		t.Error("Free(nil)")
	}
	if Free(arr) != nil {
		t.Error("double free")
	}
	zero := &Node{}
	if Free(zero) != zero {
		t.Error("zero node not passed through")
	}
}

func TestClear(t *testing.T) {
	obj := Object()
	child := Array()
	if err := obj.Set("a", child); err != nil {
		t.Fatal(err)
	}
	if err := obj.Clear(); err != nil {
		t.Fatal(err)
	}
	if !obj.IsNull() {
		t.Errorf("cleared to %s", obj.Type())
	}
	if child.Valid() {
		t.Error("child of cleared node still valid")
	}
	if err := obj.Set("b", Null()); !errors.Is(err, ErrType) {
		t.Errorf("set on cleared: %v", err)
	}
}

func TestCopy(t *testing.T) {
	src, err := FromAny(map[string]any{
		"a": []any{1.0, "two", nil, true},
		"b": map[string]any{"c": false},
	}, WithLockTimeout(3*time.Millisecond))
	if err != nil {
		t.Fatal(err)
	}
	if err := src.Get("a").SetIndex(6, Null()); err != nil {
		t.Fatal(err)
	}
	cp := src.Copy()
	if !Equal(src, cp) {
		t.Fatal("copy differs")
	}
	if cp.Parent() != nil {
		t.Error("copy has a parent")
	}
	if cp.Get("a").Parent() != cp || cp.Get("b").Get("c").Parent() != cp.Get("b") {
		t.Error("copied children not owned by the copy")
	}
	if cp.Get("a") == src.Get("a") {
		t.Error("shallow copy")
	}
	if cp.LockTimeout() != 3*time.Millisecond {
		t.Errorf("timeout %v", cp.LockTimeout())
	}
	if cp.Get("a").Index(5) != nil {
		t.Error("hole not preserved")
	}
	if err := cp.Get("b").Set("c", String("changed")); err != nil {
		t.Fatal(err)
	}
	if Equal(src, cp) {
		t.Error("copy shares state with source")
	}
	inner := src.Get("b").Copy()
	if inner.Parent() != nil {
		t.Error("copy of owned node has a parent")
	}
}

func TestDump(t *testing.T) {
	n, err := FromAny(map[string]any{"b": []any{1, "x"}, "a": nil})
	if err != nil {
		t.Fatal(err)
	}
	if err := n.Get("b").SetIndex(3, True()); err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := Dump(&buf, n); err != nil {
		t.Fatal(err)
	}
	want := `Object (2)
  "a": Null
  "b": Array (4)
    [0]: Number 1
    [1]: String "x"
    [2]: <hole>
    [3]: True
`
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestTypeText(t *testing.T) {
	for _, typ := range Types() {
		d, err := typ.MarshalText()
		if err != nil {
			t.Fatal(err)
		}
		var back Type
		if err := back.UnmarshalText(d); err != nil {
			t.Fatal(err)
		}
		if back != typ {
			t.Errorf("%s came back as %s", typ, back)
		}
	}
	var x Type
	if err := x.UnmarshalText([]byte("Bool")); err == nil {
		t.Error("accepted unknown type")
	}
}
