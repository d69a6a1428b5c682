package patch

import (
	"errors"
	"fmt"

	"github.com/signadot/ovitem/debug"
	"github.com/signadot/ovitem/encode"
	"github.com/signadot/ovitem/format"
	"github.com/signadot/ovitem/item"
	"github.com/signadot/ovitem/parse"

	jsonpatch "github.com/evanphx/json-patch"
)

var (
	ErrPatch = errors.New("patch")
)

// Apply applies the RFC 6902 operations in ops to doc.
func Apply(doc *item.Node, ops []byte, opts ...parse.ParseOption) (*item.Node, error) {
	p, err := jsonpatch.DecodePatch(ops)
	if err != nil {
		return nil, fmt.Errorf("%w: decoding operations: %w", ErrPatch, err)
	}
	d, err := marshal(doc)
	if err != nil {
		return nil, err
	}
	if debug.Patch() {
		debug.Logf("json patch %d ops on %s\n", len(p), d)
	}
	out, err := p.Apply(d)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	return parse.Parse(out, withTimeout(doc, opts)...)
}

// ApplyNode is Apply with the operations given as a tree.
func ApplyNode(doc, ops *item.Node, opts ...parse.ParseOption) (*item.Node, error) {
	d, err := marshal(ops)
	if err != nil {
		return nil, err
	}
	return Apply(doc, d, opts...)
}

// Merge applies the RFC 7386 merge patch mp to doc.
func Merge(doc, mp *item.Node, opts ...parse.ParseOption) (*item.Node, error) {
	d, err := marshal(doc)
	if err != nil {
		return nil, err
	}
	m, err := marshal(mp)
	if err != nil {
		return nil, err
	}
	if debug.Patch() {
		debug.Logf("merge patch %s on %s\n", m, d)
	}
	out, err := jsonpatch.MergePatch(d, m)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	return parse.Parse(out, withTimeout(doc, opts)...)
}

// CreateMerge returns the merge patch turning from into to.
func CreateMerge(from, to *item.Node, opts ...parse.ParseOption) (*item.Node, error) {
	a, err := marshal(from)
	if err != nil {
		return nil, err
	}
	b, err := marshal(to)
	if err != nil {
		return nil, err
	}
	out, err := jsonpatch.CreateMergePatch(a, b)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	return parse.Parse(out, withTimeout(from, opts)...)
}

func marshal(n *item.Node) ([]byte, error) {
	s, err := encode.EncodeStyle(n, format.Minimal())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	return []byte(s), nil
}

// withTimeout gives the result the lock timeout of doc unless opts says
// otherwise.
func withTimeout(doc *item.Node, opts []parse.ParseOption) []parse.ParseOption {
	return append([]parse.ParseOption{parse.LockTimeout(doc.LockTimeout())}, opts...)
}
