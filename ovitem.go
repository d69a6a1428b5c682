// Package ovitem is a thread-safe JSON value tree.
//
// Trees are built from item nodes, each guarded by its own timed lock, so
// independent goroutines may read and modify different parts of a
// document. This package collects the conversions most callers need:
//
//	root, err := ovitem.FromJSON([]byte(`{"servers": [{"port": 80}]}`))
//	port, err := ovitem.Resolve(root, "/servers/0/port")
//	out, err := ovitem.ToJSON(root)
//
// # Related Packages
//
//   - github.com/signadot/ovitem/item - nodes and their operations
//   - github.com/signadot/ovitem/parse - decoding
//   - github.com/signadot/ovitem/encode - encoding
//   - github.com/signadot/ovitem/format - output styles
package ovitem

import (
	"github.com/signadot/ovitem/debug"
	"github.com/signadot/ovitem/encode"
	"github.com/signadot/ovitem/format"
	"github.com/signadot/ovitem/item"
	"github.com/signadot/ovitem/item/pointer"
	"github.com/signadot/ovitem/parse"
)

// FromJSON decodes a complete JSON document.
func FromJSON(d []byte, opts ...parse.ParseOption) (*item.Node, error) {
	return parse.Parse(d, opts...)
}

// ToJSON encodes n in the default style.
func ToJSON(n *item.Node) (string, error) {
	return encode.EncodeStyle(n, format.Default())
}

// ToJSONStyle encodes n in style s.
func ToJSONStyle(n *item.Node, s format.Style) (string, error) {
	return encode.EncodeStyle(n, s)
}

// Resolve returns the node ptr addresses in root.
func Resolve(root *item.Node, ptr string, opts ...pointer.ParseOption) (*item.Node, error) {
	if debug.Pointer() {
		debug.Logf("resolve %q in %v\n", ptr, root)
	}
	return item.Resolve(root, ptr, opts...)
}

// ResolveOrAppend is Resolve, with "-" appending a null to an array.
func ResolveOrAppend(root *item.Node, ptr string, opts ...pointer.ParseOption) (*item.Node, error) {
	if debug.Pointer() {
		debug.Logf("resolve or append %q in %v\n", ptr, root)
	}
	return item.ResolveOrAppend(root, ptr, opts...)
}
