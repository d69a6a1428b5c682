// Package eval evaluates expr-lang expressions against documents.
//
// An expression sees the document as the variable doc and, when the
// document is an object, each of its members as a variable of the same
// name. The functions whereami(), getpath(pointer) and getenv(name) are
// available as well.
//
// # Related Packages
//
//   - github.com/signadot/ovitem/item - the value tree
//   - github.com/expr-lang/expr - the expression language
package eval
