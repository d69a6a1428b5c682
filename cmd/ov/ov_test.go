package main

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/signadot/ovitem/encode"
	"github.com/signadot/ovitem/format"
	"github.com/signadot/ovitem/item"
	"github.com/signadot/ovitem/item/pointer"
	"github.com/signadot/ovitem/parse"
)

func TestEnvFunc(t *testing.T) {
	env := map[string]any{}
	for _, a := range []string{"a=1", "b.c=x", "b.d=[1, 2]"} {
		if err := envFunc(env, a); err != nil {
			t.Fatalf("envFunc(%q): %v", a, err)
		}
	}
	want := map[string]any{
		"a": uint64(1),
		"b": map[string]any{
			"c": "x",
			"d": []any{uint64(1), uint64(2)},
		},
	}
	if diff := cmp.Diff(want, env); diff != "" {
		t.Errorf("env mismatch (-want +got):\n%s", diff)
	}
	if err := envFunc(env, "novalue"); err == nil {
		t.Error("expected error for missing '='")
	}
	if err := envFunc(env, "a.x=1"); err == nil {
		t.Error("expected error descending into a scalar")
	}
}

func TestDecodeAll(t *testing.T) {
	tests := []struct {
		name string
		yaml bool
		in   string
		want []string
		err  bool
	}{
		{name: "one", in: `{"a":1}`, want: []string{`{"a":1}`}},
		{name: "sequence", in: "[1] {\"b\":true}\n\"s\" 2\n", want: []string{`[1]`, `{"b":true}`, `"s"`, `2`}},
		{name: "empty", in: "  ", err: true},
		{name: "bad second", in: `[1] [`, err: true},
		{name: "yaml", yaml: true, in: "a: 1\n---\n- x\n", want: []string{`{"a":1}`, `["x"]`}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := &MainConfig{Y: tc.yaml}
			docs, err := cfg.decodeAll([]byte(tc.in))
			if tc.err {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			var got []string
			for _, doc := range docs {
				got = append(got, encode.MustString(doc, encode.WithStyle(format.Minimal())))
				item.Free(doc)
			}
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("documents mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSetAt(t *testing.T) {
	tests := []struct {
		ptr  string
		want string
		err  bool
	}{
		{ptr: "/a", want: `{"a":0,"l":[1]}`},
		{ptr: "/new", want: `{"a":{"b":true},"l":[1],"new":0}`},
		{ptr: "/l/-", want: `{"a":{"b":true},"l":[1,0]}`},
		{ptr: "/l/0", want: `{"a":{"b":true},"l":[0]}`},
		{ptr: "/l/-/x", err: true},
		{ptr: "/a/b/c", err: true},
		{ptr: "/missing/x", err: true},
	}
	for _, tc := range tests {
		t.Run(tc.ptr, func(t *testing.T) {
			doc, err := parse.Parse([]byte(`{"a":{"b":true},"l":[1]}`))
			if err != nil {
				t.Fatal(err)
			}
			defer item.Free(doc)
			p, err := pointer.Parse(tc.ptr)
			if err != nil {
				t.Fatal(err)
			}
			err = setAt(doc, p, item.Int(0))
			if tc.err {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			got := encode.MustString(doc, encode.WithStyle(format.Minimal().WithCollate(format.Lexical)))
			if got != tc.want {
				t.Errorf("got %s want %s", got, tc.want)
			}
		})
	}
}
