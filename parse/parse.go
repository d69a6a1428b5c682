package parse

import (
	"fmt"

	"github.com/signadot/ovitem/debug"
	"github.com/signadot/ovitem/item"
	"github.com/signadot/ovitem/token"
)

// Decode decodes the value at the front of d. It returns the number of
// bytes consumed, which counts leading whitespace and, when nothing but
// whitespace follows the value, the rest of d.
//
// On error no node is returned and any partially decoded tree is freed.
func Decode(d []byte, opts ...ParseOption) (int, *item.Node, error) {
	p := &parser{d: d, opts: newOpts(opts)}
	n, node, err := p.value(0, len(d), 0)
	if err != nil {
		return 0, nil, err
	}
	if token.AllSpace(d[n:]) {
		n = len(d)
	}
	if debug.Parse() {
		debug.Logf("decoded %d/%d bytes:\n%v", n, len(d), node)
	}
	return n, node, nil
}

// Parse decodes d, which must hold exactly one value surrounded by
// optional whitespace.
func Parse(d []byte, opts ...ParseOption) (*item.Node, error) {
	n, node, err := Decode(d, opts...)
	if err != nil {
		return nil, err
	}
	if n != len(d) {
		item.Free(node)
		return nil, &Error{Offset: n, Err: ErrTrailing, doc: d}
	}
	return node, nil
}

type parser struct {
	d    []byte
	opts *parseOpts
}

// value decodes the value starting at or after off, looking no further
// than end. It returns the offset just past the value.
func (p *parser) value(off, end, depth int) (int, *item.Node, error) {
	i := off + token.SkipSpace(p.d[off:end])
	if i == end {
		return 0, nil, p.errAt(i, ErrEmpty)
	}
	switch c := p.d[i]; c {
	case '{', '[':
		if depth >= p.opts.maxDepth {
			return 0, nil, p.errAt(i, ErrDepth)
		}
		span, err := token.Balanced(p.d[i:end])
		if err != nil {
			return 0, nil, p.errAt(i, err)
		}
		var node *item.Node
		if c == '{' {
			node, err = p.object(i, i+span, depth+1)
		} else {
			node, err = p.array(i, i+span, depth+1)
		}
		if err != nil {
			return 0, nil, err
		}
		return i + span, node, nil
	case '"':
		span, err := token.QuotedSpan(p.d[i:end])
		if err != nil {
			return 0, nil, p.errAt(i, err)
		}
		s, err := token.Unquote(p.d[i : i+span])
		if err != nil {
			return 0, nil, p.errAt(i, err)
		}
		return i + span, item.String(s, p.opts.itemOpts...), nil
	case 'n', 't', 'f':
		kw, span, err := token.MatchKeyword(p.d[i:end])
		if err != nil {
			return 0, nil, p.errAt(i, err)
		}
		var node *item.Node
		switch kw {
		case token.NullKeyword:
			node = item.Null(p.opts.itemOpts...)
		case token.TrueKeyword:
			node = item.True(p.opts.itemOpts...)
		default:
			node = item.False(p.opts.itemOpts...)
		}
		return i + span, node, nil
	case '-', '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		f, span, err := token.Number(p.d[i:end])
		if err != nil {
			return 0, nil, p.errAt(i, err)
		}
		return i + span, item.Number(f, p.opts.itemOpts...), nil
	default:
		return 0, nil, p.errAt(i, fmt.Errorf("%w %q", token.ErrUnexpected, c))
	}
}

// object decodes the balanced span d[start:end], which opens with '{' and
// closes with '}'.
func (p *parser) object(start, end, depth int) (*item.Node, error) {
	res := item.Object(p.opts.itemOpts...)
	last := end - 1
	i := start + 1
	i += token.SkipSpace(p.d[i:last])
	if i == last {
		return res, nil
	}
	for {
		i += token.SkipSpace(p.d[i:last])
		if i == last || p.d[i] != '"' {
			item.Free(res)
			return nil, p.errAt(i, ErrKey)
		}
		span, err := token.QuotedSpan(p.d[i:last])
		if err != nil {
			item.Free(res)
			return nil, p.errAt(i, err)
		}
		key, err := token.Unquote(p.d[i : i+span])
		if err != nil {
			item.Free(res)
			return nil, p.errAt(i, err)
		}
		i += span
		i += token.SkipSpace(p.d[i:last])
		if i == last || p.d[i] != ':' {
			item.Free(res)
			return nil, p.errAt(i, ErrColon)
		}
		next, val, err := p.value(i+1, last, depth)
		if err != nil {
			item.Free(res)
			return nil, err
		}
		if err := res.Set(key, val); err != nil {
			item.Free(val)
			item.Free(res)
			return nil, p.errAt(i, fmt.Errorf("%w: %w", ErrInsert, err))
		}
		i = next + token.SkipSpace(p.d[next:last])
		if i == last {
			return res, nil
		}
		if p.d[i] != ',' {
			item.Free(res)
			return nil, p.errAt(i, ErrComma)
		}
		i++
	}
}

// array decodes the balanced span d[start:end], which opens with '[' and
// closes with ']'.
func (p *parser) array(start, end, depth int) (*item.Node, error) {
	res := item.Array(p.opts.itemOpts...)
	last := end - 1
	i := start + 1
	i += token.SkipSpace(p.d[i:last])
	if i == last {
		return res, nil
	}
	for {
		next, val, err := p.value(i, last, depth)
		if err != nil {
			item.Free(res)
			return nil, err
		}
		if err := res.Push(val); err != nil {
			item.Free(val)
			item.Free(res)
			return nil, p.errAt(i, fmt.Errorf("%w: %w", ErrInsert, err))
		}
		i = next + token.SkipSpace(p.d[next:last])
		if i == last {
			return res, nil
		}
		if p.d[i] != ',' {
			item.Free(res)
			return nil, p.errAt(i, ErrComma)
		}
		i++
	}
}
