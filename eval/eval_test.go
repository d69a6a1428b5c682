package eval

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/ovitem/item"
	"github.com/signadot/ovitem/parse"
)

func mustParse(t *testing.T, s string) *item.Node {
	t.Helper()
	n, err := parse.Parse([]byte(s))
	if err != nil {
		t.Fatal(err)
	}
	return n
}

func TestEval(t *testing.T) {
	doc := mustParse(t, `{"a": 2, "b": [1, 2, 3], "name": "ov", "nested": {"x": true}}`)
	tests := []struct {
		expr string
		env  Env
		want any
	}{
		{expr: `a * 3`, want: 6.0},
		{expr: `len(b)`, want: 3.0},
		{expr: `name + "item"`, want: "ovitem"},
		{expr: `nested.x && a > 1`, want: true},
		{expr: `doc.b[1]`, want: 2.0},
		{expr: `map(b, # * a)`, want: []any{2.0, 4.0, 6.0}},
		{expr: `getpath("/nested/x")`, want: true},
		{expr: `whereami()`, want: ""},
		{expr: `a + k`, env: Env{"k": 40}, want: 42.0},
		{expr: `{"k": a}`, want: map[string]any{"k": 2.0}},
		{expr: `nil`, want: nil},
	}
	for _, tc := range tests {
		got, err := Eval(doc, tc.expr, tc.env)
		if err != nil {
			t.Errorf("%s: %v", tc.expr, err)
			continue
		}
		if diff := cmp.Diff(tc.want, got.ToAny()); diff != "" {
			t.Errorf("%s: mismatch (-want +got):\n%s", tc.expr, diff)
		}
	}
}

func TestEvalErrors(t *testing.T) {
	doc := mustParse(t, `{"a": 1}`)
	for _, x := range []string{`a +`, `getpath("/missing")`, `undefinedFunc()`} {
		if _, err := Eval(doc, x, nil); !errors.Is(err, ErrEval) {
			t.Errorf("%s: got %v, want ErrEval", x, err)
		}
	}
}

func TestExpand(t *testing.T) {
	doc := mustParse(t, `{"n": 2, "sq": ".[n * n]", "list": ["keep", ".[whereami()]"], "deep": {"p": ".[getpath('/n') + 1]"}}`)
	got, err := Expand(doc, nil)
	if err != nil {
		t.Fatal(err)
	}
	if got != doc {
		t.Error("root replaced")
	}
	want := map[string]any{
		"n":    2.0,
		"sq":   4.0,
		"list": []any{"keep", "/list/1"},
		"deep": map[string]any{"p": 3.0},
	}
	if diff := cmp.Diff(want, got.ToAny()); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
	if p := got.Get("list").Index(1).Parent(); p != got.Get("list") {
		t.Error("replacement not owned by its array")
	}
}

func TestExpandRoot(t *testing.T) {
	doc := item.String(".[1 + 1]")
	got, err := Expand(doc, nil)
	if err != nil {
		t.Fatal(err)
	}
	if f, ok := got.NumberValue(); !ok || f != 2 {
		t.Errorf("got %v", got.ToAny())
	}
	if doc.Valid() {
		t.Error("replaced root not freed")
	}
}

func TestGetRaw(t *testing.T) {
	for in, want := range map[string]string{
		".[number]": "number",
		".[]":       "",
		"[x]":       "",
		".[x":       "",
		"plain":     "",
	} {
		if got := GetRaw(in); got != want {
			t.Errorf("GetRaw(%q) = %q, want %q", in, got, want)
		}
	}
}
