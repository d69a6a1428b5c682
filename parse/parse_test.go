package parse

import (
	"errors"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/ovitem/debug"
	"github.com/signadot/ovitem/item"
	"github.com/signadot/ovitem/token"
)

func TestDecodeConsumed(t *testing.T) {
	tests := []struct {
		in   string
		n    int
		want any
	}{
		{in: `null`, n: 4, want: nil},
		{in: `true`, n: 4, want: true},
		{in: `false`, n: 5, want: false},
		{in: ` {} `, n: 4, want: map[string]any{}},
		{in: `{} extra`, n: 2, want: map[string]any{}},
		{in: "\t[]\n", n: 4, want: []any{}},
		{in: `[1, 2] [3]`, n: 6, want: []any{1.0, 2.0}},
		{in: `"a\"b" tail`, n: 6, want: `a"b`},
		{in: `-12.5e1,`, n: 7, want: -125.0},
		{in: `0`, n: 1, want: 0.0},
		{in: `{"a": {"b": [true, null]}}`, n: 26, want: map[string]any{
			"a": map[string]any{"b": []any{true, nil}},
		}},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			n, node, err := Decode([]byte(tc.in))
			if err != nil {
				t.Fatal(err)
			}
			if n != tc.n {
				t.Errorf("consumed %d, want %d", n, tc.n)
			}
			if diff := cmp.Diff(tc.want, node.ToAny()); diff != "" {
				t.Errorf("mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDecodeTraced(t *testing.T) {
	prev := debug.Parse()
	debug.SetParse(true)
	defer debug.SetParse(prev)
	n, node, err := Decode([]byte(`{"a": [1]} `))
	if err != nil {
		t.Fatal(err)
	}
	defer item.Free(node)
	if n != 11 {
		t.Errorf("consumed %d, want 11", n)
	}
}

func TestDecodeSequence(t *testing.T) {
	d := []byte(`{"a":1} [2] "three" 4 null`)
	var got []any
	for len(d) > 0 {
		n, node, err := Decode(d)
		if err != nil {
			t.Fatal(err)
		}
		got = append(got, node.ToAny())
		item.Free(node)
		d = d[n:]
	}
	want := []any{map[string]any{"a": 1.0}, []any{2.0}, "three", 4.0, nil}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodeStrings(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{`""`, ""},
		{`"plain"`, "plain"},
		{`"\\ \/ \b \f \n \r \t"`, "\\ / \b \f \n \r \t"},
		{`"\u00e9t\u00e9"`, "été"},
		{`"été"`, "été"},
		{`"\ud83d\ude00"`, "\U0001F600"},
		{`"[{not a container}]"`, "[{not a container}]"},
	}
	for _, tc := range tests {
		node, err := Parse([]byte(tc.in))
		if err != nil {
			t.Errorf("%s: %v", tc.in, err)
			continue
		}
		got, ok := node.StringValue()
		if !ok {
			t.Errorf("%s: not a string: %s", tc.in, node.Type())
			continue
		}
		if got != tc.want {
			t.Errorf("%s: got %q want %q", tc.in, got, tc.want)
		}
	}
}

func TestDuplicateKeyLastWins(t *testing.T) {
	node, err := Parse([]byte(`{"k": 1, "k": [2]}`))
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(map[string]any{"k": []any{2.0}}, node.ToAny()); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestParents(t *testing.T) {
	root, err := Parse([]byte(`{"a": [{"b": 1}]}`))
	if err != nil {
		t.Fatal(err)
	}
	a := root.Get("a")
	b := a.Index(0).Get("b")
	if a.Parent() != root {
		t.Error("a not owned by root")
	}
	if b.Parent() != a.Index(0) {
		t.Error("b not owned by its object")
	}
	if b.Root() != root {
		t.Error("b does not reach root")
	}
}

func TestBadDecode(t *testing.T) {
	tests := []struct {
		in   string
		want error
	}{
		{``, ErrEmpty},
		{`   `, ErrEmpty},
		{`nul`, token.ErrLiteral},
		{`nulL`, token.ErrLiteral},
		{`True`, token.ErrUnexpected},
		{`1.`, token.ErrNumber},
		{`1e `, token.ErrNumber},
		{`-`, token.ErrNumber},
		{`1e999`, token.ErrNumber},
		{`"abc`, token.ErrUnterminated},
		{`"a\qb"`, token.ErrBadEscape},
		{"\"a\nb\"", token.ErrUnicodeControl},
		{`{"a" 1}`, ErrColon},
		{`{"a": 1,}`, ErrKey},
		{`{a: 1}`, ErrKey},
		{`{"a": 1 "b": 2}`, ErrComma},
		{`[1 2]`, ErrComma},
		{`[1,]`, ErrEmpty},
		{`[1, {"a": }]`, ErrEmpty},
		{`[`, token.ErrUnterminated},
		{`[}`, token.ErrDocBalance},
		{`{"a": [1, 2}`, token.ErrDocBalance},
		{`]`, token.ErrUnexpected},
	}
	for _, tc := range tests {
		n, node, err := Decode([]byte(tc.in))
		if err == nil {
			t.Errorf("%q: expected error, got %d bytes", tc.in, n)
			continue
		}
		if !errors.Is(err, tc.want) {
			t.Errorf("%q: got %v, want %v", tc.in, err, tc.want)
		}
		if !errors.Is(err, ErrParse) {
			t.Errorf("%q: %v does not wrap ErrParse", tc.in, err)
		}
		if node != nil || n != 0 {
			t.Errorf("%q: partial result on error", tc.in)
		}
	}
}

func TestErrorOffset(t *testing.T) {
	_, err := Parse([]byte("{\n  \"a\": tru\n}"))
	var pe *Error
	if !errors.As(err, &pe) {
		t.Fatalf("got %v, want *Error", err)
	}
	if pe.Offset != 9 {
		t.Errorf("offset %d, want 9", pe.Offset)
	}
	if !strings.HasPrefix(pe.Error(), "2:8:") {
		t.Errorf("error %q does not start with line:col", pe.Error())
	}
}

func TestParseTrailing(t *testing.T) {
	if _, err := Parse([]byte(` [1] `)); err != nil {
		t.Fatal(err)
	}
	_, err := Parse([]byte(`[1] x`))
	if !errors.Is(err, ErrTrailing) {
		t.Fatalf("got %v, want ErrTrailing", err)
	}
}

func TestMaxDepth(t *testing.T) {
	deep := func(n int) []byte {
		return []byte(strings.Repeat("[", n) + strings.Repeat("]", n))
	}
	if _, err := Parse(deep(3), MaxDepth(3)); err != nil {
		t.Fatal(err)
	}
	_, err := Parse(deep(4), MaxDepth(3))
	if !errors.Is(err, ErrDepth) {
		t.Fatalf("got %v, want ErrDepth", err)
	}
	if _, err := Parse(deep(DefaultMaxDepth)); err != nil {
		t.Fatalf("default depth: %v", err)
	}
}

func TestLockTimeout(t *testing.T) {
	node, err := Parse([]byte(`{"a": [1]}`), LockTimeout(5*time.Millisecond))
	if err != nil {
		t.Fatal(err)
	}
	for _, n := range []*item.Node{node, node.Get("a"), node.Get("a").Index(0)} {
		if got := n.LockTimeout(); got != 5*time.Millisecond {
			t.Errorf("timeout %v, want 5ms", got)
		}
	}
}

func TestNumbers(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"0", 0},
		{"-0", math.Copysign(0, -1)},
		{"123", 123},
		{"1.5", 1.5},
		{"1E3", 1000},
		{"2e-2", 0.02},
		{"-9007199254740993", -9007199254740992},
	}
	for _, tc := range tests {
		node, err := Parse([]byte(tc.in))
		if err != nil {
			t.Errorf("%s: %v", tc.in, err)
			continue
		}
		got, _ := node.NumberValue()
		if got != tc.want {
			t.Errorf("%s: got %v want %v", tc.in, got, tc.want)
		}
	}
}

func TestParseYAML(t *testing.T) {
	node, err := ParseYAML([]byte("a: 1\nb:\n  - x\n  - true\n  - null\nc: 2.5\n"))
	if err != nil {
		t.Fatal(err)
	}
	want := map[string]any{
		"a": 1.0,
		"b": []any{"x", true, nil},
		"c": 2.5,
	}
	if diff := cmp.Diff(want, node.ToAny()); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
	if _, err := ParseYAML([]byte("a: [1, 2")); !errors.Is(err, ErrParse) {
		t.Errorf("got %v, want ErrParse", err)
	}
}
