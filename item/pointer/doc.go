// Package pointer parses and formats JSON pointers.
//
// A pointer is a sequence of "/token" segments. The empty pointer
// addresses the root. Within a token "~1" stands for "/" and "~0" for "~";
// unescaping replaces "~1" first and "~0" second, so "~01" decodes to "~1".
// Peers that use "~1" for a backslash instead are served by
// [BackslashEscape].
//
// # Usage
//
//	p, err := pointer.Parse("/a~1b/0")
//	// p is Pointer{"a/b", "0"}
//	s := p.String() // "/a~1b/0"
//
// The token "-" (Append) addresses the position after the last element of
// an array.
//
// # Related Packages
//
//   - github.com/signadot/ovitem/item - resolves pointers against a tree
package pointer
