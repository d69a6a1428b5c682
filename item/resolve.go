package item

import (
	"fmt"
	"strconv"

	"github.com/signadot/ovitem/item/pointer"
)

// Resolve navigates root along the pointer ptr without modifying the tree.
//
// Object segments are key lookups, array segments are decimal indices. An
// empty segment stays on the current node. The append token "-" names no
// existing element and fails; see ResolveOrAppend.
func Resolve(root *Node, ptr string, opts ...pointer.ParseOption) (*Node, error) {
	return resolve(root, ptr, false, opts)
}

// ResolveOrAppend is Resolve, except that the token "-" applied to an
// array appends a new null element and continues from it.
func ResolveOrAppend(root *Node, ptr string, opts ...pointer.ParseOption) (*Node, error) {
	return resolve(root, ptr, true, opts)
}

func resolve(root *Node, ptr string, appendOK bool, opts []pointer.ParseOption) (*Node, error) {
	if !root.Valid() {
		return nil, ErrInvalid
	}
	p, err := pointer.Parse(ptr, opts...)
	if err != nil {
		return nil, err
	}
	cur := root
	for i, tok := range p {
		next, err := cur.step(tok, appendOK)
		if err != nil {
			return nil, fmt.Errorf("%w at %s", err, p[:i+1])
		}
		cur = next
	}
	return cur, nil
}

func (n *Node) step(tok string, appendOK bool) (*Node, error) {
	if tok == "" {
		return n, nil
	}
	switch n.Type() {
	case ObjectType:
		v := n.Get(tok)
		if v == nil {
			return nil, fmt.Errorf("%w: key %q", ErrNotFound, tok)
		}
		return v, nil
	case ArrayType:
		if tok == pointer.Append {
			if !appendOK {
				return nil, fmt.Errorf("%w: append token in read", ErrNotFound)
			}
			v := Null(WithLockTimeout(n.timeout))
			if err := n.Push(v); err != nil {
				return nil, err
			}
			return v, nil
		}
		i, err := pointer.Index(tok)
		if err != nil {
			return nil, err
		}
		v := n.Index(i)
		if v == nil {
			return nil, fmt.Errorf("%w: index %d", ErrNotFound, i)
		}
		return v, nil
	case InvalidType:
		return nil, ErrInvalid
	default:
		return nil, fmt.Errorf("%w: cannot descend into %s", ErrType, n.Type())
	}
}

// Pointer returns the pointer addressing n from its root.
func (n *Node) Pointer() string {
	var toks pointer.Pointer
	cur := n
	for {
		p := cur.Parent()
		if p == nil {
			break
		}
		tok, ok := p.tokenOf(cur)
		if !ok {
			break
		}
		toks = append(toks, tok)
		cur = p
	}
	for i, j := 0, len(toks)-1; i < j; i, j = i+1, j-1 {
		toks[i], toks[j] = toks[j], toks[i]
	}
	return toks.String()
}

func (n *Node) tokenOf(child *Node) (string, bool) {
	v, err := n.View()
	if err != nil {
		return "", false
	}
	switch v.Type {
	case ArrayType:
		for i, e := range v.Elems {
			if e == child {
				return strconv.Itoa(i), true
			}
		}
	case ObjectType:
		for _, m := range v.Members {
			if m.Val == child {
				return m.Key, true
			}
		}
	}
	return "", false
}
