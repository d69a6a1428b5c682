package pointer

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Append is the token addressing the end of an array.
const Append = "-"

var (
	ErrSyntax = errors.New("pointer syntax")
	ErrIndex  = errors.New("bad array index")
)

// Pointer is a parsed pointer: its unescaped tokens in order.
type Pointer []string

type parseOpts struct {
	slash string
}

type ParseOption func(*parseOpts)

// BackslashEscape makes "~1" decode to a backslash instead of "/", for
// pointers produced by peers using that convention.
func BackslashEscape() ParseOption {
	return func(o *parseOpts) { o.slash = `\` }
}

// Parse splits s into unescaped tokens. The empty string yields the empty
// pointer; any other input must start with "/".
func Parse(s string, opts ...ParseOption) (Pointer, error) {
	o := &parseOpts{slash: "/"}
	for _, f := range opts {
		f(o)
	}
	if s == "" {
		return Pointer{}, nil
	}
	if s[0] != '/' {
		return nil, fmt.Errorf("%w: %q does not start with '/'", ErrSyntax, s)
	}
	parts := strings.Split(s[1:], "/")
	for i, part := range parts {
		parts[i] = unescape(part, o.slash)
	}
	return Pointer(parts), nil
}

// Unescape decodes "~1" to "/" and then "~0" to "~".
func Unescape(tok string) string {
	return unescape(tok, "/")
}

func unescape(tok, slash string) string {
	if strings.IndexByte(tok, '~') == -1 {
		return tok
	}
	tok = strings.ReplaceAll(tok, "~1", slash)
	return strings.ReplaceAll(tok, "~0", "~")
}

// Escape encodes tok for use inside a pointer.
func Escape(tok string) string {
	if strings.IndexAny(tok, "~/") == -1 {
		return tok
	}
	tok = strings.ReplaceAll(tok, "~", "~0")
	return strings.ReplaceAll(tok, "/", "~1")
}

func (p Pointer) String() string {
	var b strings.Builder
	for _, tok := range p {
		b.WriteByte('/')
		b.WriteString(Escape(tok))
	}
	return b.String()
}

// Append returns p extended by tok.
func (p Pointer) Append(tok string) Pointer {
	res := make(Pointer, len(p), len(p)+1)
	copy(res, p)
	return append(res, tok)
}

// Parent returns p without its last token. The root's parent is the root.
func (p Pointer) Parent() Pointer {
	if len(p) == 0 {
		return p
	}
	return p[:len(p)-1]
}

// Last returns the last token of p, or "" for the root.
func (p Pointer) Last() string {
	if len(p) == 0 {
		return ""
	}
	return p[len(p)-1]
}

// Index parses an array index token: decimal digits only.
func Index(tok string) (int, error) {
	if tok == "" {
		return 0, fmt.Errorf("%w: empty", ErrIndex)
	}
	for i := 0; i < len(tok); i++ {
		if tok[i] < '0' || tok[i] > '9' {
			return 0, fmt.Errorf("%w: %q", ErrIndex, tok)
		}
	}
	i, err := strconv.Atoi(tok)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrIndex, tok)
	}
	return i, nil
}
