package format

import (
	"errors"
	"fmt"
	"strings"
)

// Tokens are the literal strings written for one JSON type.
type Tokens struct {
	// Intro and Outro enclose a value. For arrays and objects they are
	// the brackets, for strings the quotes.
	Intro, Outro string
	// Separator is written between consecutive items of a container.
	Separator string
	// Delimiter is written between an object key and its value.
	Delimiter string
}

// Len returns the combined length of Intro and Outro.
func (t Tokens) Len() int {
	return len(t.Intro) + len(t.Outro)
}

// Collation orders object keys for output.
type Collation func(a, b string) int

// Lexical orders keys by byte-wise comparison.
func Lexical(a, b string) int {
	return strings.Compare(a, b)
}

// Style configures stringification.
type Style struct {
	Name string

	Literal Tokens
	Number  Tokens
	String  Tokens
	Array   Tokens
	Object  Tokens

	// Indent is repeated once per nesting level in front of container
	// items and closing brackets.
	Indent string
	// Newline follows an opening bracket and each separator and precedes
	// a closing bracket.
	Newline string

	// Collate, if set, orders object keys. Otherwise keys are written in
	// the object's own iteration order.
	Collate Collation
}

// Indents reports whether the style lays out containers over lines.
func (s *Style) Indents() bool {
	return s.Indent != "" || s.Newline != ""
}

// WithCollate returns a copy of s ordering object keys with c.
func (s Style) WithCollate(c Collation) Style {
	s.Collate = c
	return s
}

// Minimal returns the tightest style: no whitespace at all.
func Minimal() Style {
	return Style{
		Name:   "minimal",
		String: Tokens{Intro: `"`, Outro: `"`},
		Array:  Tokens{Intro: "[", Outro: "]", Separator: ","},
		Object: Tokens{Intro: "{", Outro: "}", Separator: ",", Delimiter: ":"},
	}
}

// Pretty returns the default style, indenting nested containers with
// tabs.
func Pretty() Style {
	s := Minimal()
	s.Name = "pretty"
	s.Indent = "\t"
	s.Newline = "\n"
	return s
}

// Default is the style used when none is given.
func Default() Style {
	return Pretty()
}

var ErrBadStyle = errors.New("bad style")

func ParseStyle(v string) (Style, error) {
	f, ok := map[string]func() Style{
		"m":       Minimal,
		"minimal": Minimal,
		"p":       Pretty,
		"pretty":  Pretty,
		"d":       Default,
		"default": Default,
	}[v]
	if ok {
		return f(), nil
	}
	return Style{}, fmt.Errorf("%w: %q", ErrBadStyle, v)
}

// AllStyles returns the names of the canned styles.
func AllStyles() []string {
	return []string{"minimal", "pretty"}
}
