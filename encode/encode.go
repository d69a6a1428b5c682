package encode

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/signadot/ovitem/debug"
	"github.com/signadot/ovitem/format"
	"github.com/signadot/ovitem/item"
	"github.com/signadot/ovitem/token"
)

// Encode returns the JSON text of node. Options apply in order, so a
// Collate given before WithStyle is replaced by the style's collation.
func Encode(node *item.Node, opts ...EncodeOption) (string, error) {
	return EncodeStyle(node, StyleFromOpts(opts...))
}

// EncodeStyle returns the JSON text of node in style s.
func EncodeStyle(node *item.Node, s format.Style) (string, error) {
	size, err := Calculate(node, s, 0)
	if err != nil {
		return "", err
	}
	buf := make([]byte, size)
	n, err := Write(node, s, buf)
	if err != nil {
		return "", err
	}
	if n != size {
		return "", fmt.Errorf("%w: sized %d, wrote %d", ErrSize, size, n)
	}
	return string(buf), nil
}

// EncodeTo writes the JSON text of node to w.
func EncodeTo(node *item.Node, w io.Writer, opts ...EncodeOption) error {
	s, err := Encode(node, opts...)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, s)
	return err
}

// Calculate returns the exact number of bytes Write produces for node in
// style s, with containers indented as if nested depth levels deep.
func Calculate(node *item.Node, s format.Style, depth int) (int, error) {
	if !node.Valid() {
		return 0, item.ErrInvalid
	}
	v, err := node.View()
	if err != nil {
		return 0, err
	}
	n, err := size(&v, &s, depth)
	if err != nil {
		return 0, err
	}
	if debug.Encode() {
		debug.Logf("encode: %s style size %d at depth %d\n", s.Name, n, depth)
	}
	return n, nil
}

// Write writes node in style s into buf and returns the number of bytes
// written. buf must hold at least Calculate(node, s, 0) bytes, otherwise
// Write fails with ErrOverflow.
func Write(node *item.Node, s format.Style, buf []byte) (int, error) {
	if !node.Valid() {
		return 0, item.ErrInvalid
	}
	v, err := node.View()
	if err != nil {
		return 0, err
	}
	w := &writer{buf: buf}
	if err := w.value(&v, &s, 0); err != nil {
		if debug.Encode() && err == ErrOverflow {
			panic(fmt.Sprintf("encode: %d byte buffer too small for %s style", len(buf), s.Name))
		}
		return 0, err
	}
	return w.off, nil
}

func keyword(t item.Type) string {
	switch t {
	case item.TrueType:
		return "true"
	case item.FalseType:
		return "false"
	default:
		return "null"
	}
}

// view snapshots a child. A hole reads as null.
func view(n *item.Node) (item.View, error) {
	if n == nil {
		return item.View{Type: item.NullType}, nil
	}
	return n.View()
}

func nonEmptyContainer(v *item.View) bool {
	switch v.Type {
	case item.ArrayType:
		return len(v.Elems) != 0
	case item.ObjectType:
		return len(v.Members) != 0
	}
	return false
}

func members(v *item.View, s *format.Style) []item.Member {
	if s.Collate != nil {
		slices.SortFunc(v.Members, func(a, b item.Member) int {
			return s.Collate(a.Key, b.Key)
		})
	}
	return v.Members
}

func size(v *item.View, s *format.Style, depth int) (int, error) {
	switch v.Type {
	case item.NullType, item.TrueType, item.FalseType:
		return s.Literal.Len() + len(keyword(v.Type)), nil
	case item.NumberType:
		return s.Number.Len() + len(token.FormatNumber(v.Number)), nil
	case item.StringType:
		return s.String.Len() + token.EscapedLen(v.String), nil
	case item.ArrayType:
		if len(v.Elems) == 0 {
			return s.Array.Len(), nil
		}
		n := containerLen(&s.Array, s, depth, len(v.Elems))
		for _, e := range v.Elems {
			cv, err := view(e)
			if err != nil {
				return 0, err
			}
			cn, err := size(&cv, s, depth+1)
			if err != nil {
				return 0, err
			}
			n += cn
		}
		return n, nil
	case item.ObjectType:
		if len(v.Members) == 0 {
			return s.Object.Len(), nil
		}
		n := containerLen(&s.Object, s, depth, len(v.Members))
		for _, m := range v.Members {
			cv, err := view(m.Val)
			if err != nil {
				return 0, err
			}
			n += s.String.Len() + token.EscapedLen(m.Key) + len(s.Object.Delimiter)
			if s.Indents() && nonEmptyContainer(&cv) {
				n += len(s.Newline) + len(s.Indent)*(depth+1)
			}
			cn, err := size(&cv, s, depth+1)
			if err != nil {
				return 0, err
			}
			n += cn
		}
		return n, nil
	default:
		return 0, item.ErrInvalid
	}
}

// containerLen is the length of the brackets, separators and layout of
// a container holding count items, excluding the items themselves.
func containerLen(t *format.Tokens, s *format.Style, depth, count int) int {
	n := t.Len() + (count-1)*len(t.Separator)
	if s.Indents() {
		n += 2 * len(s.Newline)
		n += (count - 1) * len(s.Newline)
		n += count * len(s.Indent) * (depth + 1)
		n += len(s.Indent) * depth
	}
	return n
}

type writer struct {
	buf []byte
	off int
}

func (w *writer) put(s string) error {
	if w.off+len(s) > len(w.buf) {
		return ErrOverflow
	}
	w.off += copy(w.buf[w.off:], s)
	return nil
}

func (w *writer) putAll(ss ...string) error {
	for _, s := range ss {
		if err := w.put(s); err != nil {
			return err
		}
	}
	return nil
}

func (w *writer) indent(s *format.Style, depth int) error {
	if s.Indent == "" {
		return nil
	}
	return w.put(strings.Repeat(s.Indent, depth))
}

func (w *writer) quoted(t *format.Tokens, str string) error {
	if err := w.put(t.Intro); err != nil {
		return err
	}
	if w.off+token.EscapedLen(str) > len(w.buf) {
		return ErrOverflow
	}
	w.off += len(token.AppendEscaped(w.buf[w.off:w.off], str))
	return w.put(t.Outro)
}

func (w *writer) value(v *item.View, s *format.Style, depth int) error {
	switch v.Type {
	case item.NullType, item.TrueType, item.FalseType:
		return w.putAll(s.Literal.Intro, keyword(v.Type), s.Literal.Outro)
	case item.NumberType:
		return w.putAll(s.Number.Intro, token.FormatNumber(v.Number), s.Number.Outro)
	case item.StringType:
		return w.quoted(&s.String, v.String)
	case item.ArrayType:
		if len(v.Elems) == 0 {
			return w.putAll(s.Array.Intro, s.Array.Outro)
		}
		if err := w.open(&s.Array, s); err != nil {
			return err
		}
		for i, e := range v.Elems {
			if err := w.next(&s.Array, s, depth, i); err != nil {
				return err
			}
			cv, err := view(e)
			if err != nil {
				return err
			}
			if err := w.value(&cv, s, depth+1); err != nil {
				return err
			}
		}
		return w.close(&s.Array, s, depth)
	case item.ObjectType:
		if len(v.Members) == 0 {
			return w.putAll(s.Object.Intro, s.Object.Outro)
		}
		if err := w.open(&s.Object, s); err != nil {
			return err
		}
		for i, m := range members(v, s) {
			if err := w.next(&s.Object, s, depth, i); err != nil {
				return err
			}
			cv, err := view(m.Val)
			if err != nil {
				return err
			}
			if err := w.quoted(&s.String, m.Key); err != nil {
				return err
			}
			if err := w.put(s.Object.Delimiter); err != nil {
				return err
			}
			if s.Indents() && nonEmptyContainer(&cv) {
				if err := w.put(s.Newline); err != nil {
					return err
				}
				if err := w.indent(s, depth+1); err != nil {
					return err
				}
			}
			if err := w.value(&cv, s, depth+1); err != nil {
				return err
			}
		}
		return w.close(&s.Object, s, depth)
	default:
		return item.ErrInvalid
	}
}

func (w *writer) open(t *format.Tokens, s *format.Style) error {
	if err := w.put(t.Intro); err != nil {
		return err
	}
	if s.Indents() {
		return w.put(s.Newline)
	}
	return nil
}

// next writes what precedes item i of a container: the separator from
// the previous item and the item's indentation.
func (w *writer) next(t *format.Tokens, s *format.Style, depth, i int) error {
	if i > 0 {
		if err := w.put(t.Separator); err != nil {
			return err
		}
		if s.Indents() {
			if err := w.put(s.Newline); err != nil {
				return err
			}
		}
	}
	if s.Indents() {
		return w.indent(s, depth+1)
	}
	return nil
}

func (w *writer) close(t *format.Tokens, s *format.Style, depth int) error {
	if s.Indents() {
		if err := w.put(s.Newline); err != nil {
			return err
		}
		if err := w.indent(s, depth); err != nil {
			return err
		}
	}
	return w.put(t.Outro)
}
