// Package encode writes item trees as JSON text.
//
// Encoding runs in two passes over the tree. Calculate computes the exact
// byte count of the output for a style and Write fills a caller supplied
// buffer of that size. Encode runs both.
//
// # Usage
//
//	node, _ := parse.Parse([]byte(`{"name": "alice", "tags": ["a"]}`))
//
//	// default (pretty) style
//	out, err := encode.Encode(node)
//
//	// minimal style with sorted keys
//	out, err = encode.EncodeStyle(node, format.Minimal().WithCollate(format.Lexical))
//
//	// sized buffer
//	n, err := encode.Calculate(node, format.Minimal(), 0)
//	buf := make([]byte, n)
//	_, err = encode.Write(node, format.Minimal(), buf)
//
// # Related Packages
//
//   - github.com/signadot/ovitem/item - the value tree
//   - github.com/signadot/ovitem/format - output styles
//   - github.com/signadot/ovitem/parse - JSON text to trees
package encode
