package token

import (
	"errors"
	"math"
	"testing"
)

func TestBalanced(t *testing.T) {
	tests := []struct {
		in   string
		want int
		err  error
	}{
		{in: `{}`, want: 2},
		{in: `[] tail`, want: 2},
		{in: `{"a": [1, {"b": []}]}, 1`, want: 21},
		{in: `["]", "\"]"]x`, want: 12},
		{in: `[`, err: ErrUnterminated},
		{in: `["]`, err: ErrUnterminated},
		{in: `[}`, err: ErrDocBalance},
		{in: `x`, err: ErrDocBalance},
	}
	for _, tc := range tests {
		got, err := Balanced([]byte(tc.in))
		if tc.err != nil {
			if !errors.Is(err, tc.err) {
				t.Errorf("%s: got %v want %v", tc.in, err, tc.err)
			}
			continue
		}
		if err != nil || got != tc.want {
			t.Errorf("%s: got %d %v want %d", tc.in, got, err, tc.want)
		}
	}
}

func TestQuoted(t *testing.T) {
	tests := []struct {
		in   string
		span int
		want string
		err  error
	}{
		{in: `"" x`, span: 2, want: ""},
		{in: `"ab\"c" x`, span: 7, want: `ab"c`},
		{in: `"\\" x`, span: 4, want: `\`},
		{in: `"\u00e9\u20AC"`, span: 14, want: "é€"},
		{in: `"é€"`, span: 7, want: "é€"},
		{in: `"\ud83d\ude00"`, span: 14, want: "\U0001F600"},
		{in: `"\ud83d"`, span: 8, want: "\uFFFD"},
		{in: `"\u12"`, span: 6, err: ErrBadUnicode},
		{in: `"\x"`, span: 4, err: ErrBadEscape},
		{in: "\"\t\"", span: 3, err: ErrUnicodeControl},
	}
	for _, tc := range tests {
		span, err := QuotedSpan([]byte(tc.in))
		if err != nil {
			t.Errorf("%s: span: %v", tc.in, err)
			continue
		}
		if span != tc.span {
			t.Errorf("%s: span %d want %d", tc.in, span, tc.span)
		}
		got, err := Unquote([]byte(tc.in[:span]))
		if tc.err != nil {
			if !errors.Is(err, tc.err) {
				t.Errorf("%s: got %v want %v", tc.in, err, tc.err)
			}
			continue
		}
		if err != nil || got != tc.want {
			t.Errorf("%s: got %q %v want %q", tc.in, got, err, tc.want)
		}
	}
	if _, err := QuotedSpan([]byte(`"abc\"`)); !errors.Is(err, ErrUnterminated) {
		t.Errorf("unterminated: %v", err)
	}
}

func TestQuote(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"", `""`},
		{"plain é", `"plain é"`},
		{"q\"b\\", `"q\"b\\"`},
		{"\b\f\n\r\t", `"\b\f\n\r\t"`},
		{"\x01\x1f", `"\u0001\u001f"`},
		{"/", `"/"`},
	}
	for _, tc := range tests {
		got := Quote(tc.in)
		if got != tc.want {
			t.Errorf("%q: got %s want %s", tc.in, got, tc.want)
		}
		if EscapedLen(tc.in)+2 != len(got) {
			t.Errorf("%q: EscapedLen %d for %s", tc.in, EscapedLen(tc.in), got)
		}
		back, err := Unquote([]byte(got))
		if err != nil || back != tc.in {
			t.Errorf("%q: unquoted to %q %v", tc.in, back, err)
		}
	}
}

func TestNumber(t *testing.T) {
	tests := []struct {
		in   string
		want float64
		n    int
		err  bool
	}{
		{in: "0", want: 0, n: 1},
		{in: "12,", want: 12, n: 2},
		{in: "-3.25]", want: -3.25, n: 5},
		{in: "1e3 ", want: 1000, n: 3},
		{in: "2E-2}", want: 0.02, n: 4},
		{in: "1.", err: true},
		{in: "1e", err: true},
		{in: "1e+", err: true},
		{in: "-", err: true},
		{in: "-x", err: true},
		{in: "1e400", err: true},
	}
	for _, tc := range tests {
		got, n, err := Number([]byte(tc.in))
		if tc.err {
			if !errors.Is(err, ErrNumber) {
				t.Errorf("%q: got %v, want ErrNumber", tc.in, err)
			}
			continue
		}
		if err != nil || got != tc.want || n != tc.n {
			t.Errorf("%q: got %v %d %v", tc.in, got, n, err)
		}
	}
}

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{math.Copysign(0, -1), "0"},
		{42, "42"},
		{-7, "-7"},
		{0.1, "0.1"},
		{1 << 53, "9.007199254740992e+15"},
		{1<<53 - 1, "9007199254740991"},
		{1e21, "1e+21"},
		{1.5e-9, "1.5e-09"},
		{math.NaN(), "null"},
		{math.Inf(1), "null"},
	}
	for _, tc := range tests {
		if got := FormatNumber(tc.in); got != tc.want {
			t.Errorf("%v: got %s want %s", tc.in, got, tc.want)
		}
	}
}

func TestKeyword(t *testing.T) {
	for _, kw := range []Keyword{NullKeyword, TrueKeyword, FalseKeyword} {
		got, n, err := MatchKeyword([]byte(kw.String() + ","))
		if err != nil || got != kw || n != len(kw.String()) {
			t.Errorf("%s: %v %d %v", kw, got, n, err)
		}
	}
	for _, bad := range []string{"", "nul", "tru", "fals", "nulL", "x"} {
		if _, _, err := MatchKeyword([]byte(bad)); !errors.Is(err, ErrLiteral) {
			t.Errorf("%q: %v", bad, err)
		}
	}
}

func TestPos(t *testing.T) {
	d := []byte("ab\ncd\n\nx")
	doc := NewPosDoc(d)
	tests := []struct {
		off  int
		want string
	}{
		{0, "1:1"},
		{1, "1:2"},
		{3, "2:1"},
		{6, "3:1"},
		{7, "4:1"},
	}
	for _, tc := range tests {
		if got := doc.Pos(tc.off).String(); got != tc.want {
			t.Errorf("offset %d: got %s want %s", tc.off, got, tc.want)
		}
	}
}
