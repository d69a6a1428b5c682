// Package format describes how values are stringified.
//
// A [Style] holds, for each JSON type, the tokens written around a value
// (intro and outro), between container items (separator) and between an
// object key and its value (delimiter), plus the indentation policy. The
// encoder is style agnostic: every layout decision it makes is read from
// a Style.
//
// # Usage
//
//	s := format.Pretty().WithCollate(format.Lexical)
//	out, err := encode.EncodeStyle(node, s)
//
// Two styles are provided: [Minimal], the tightest form (`{"1":1}`), and
// [Pretty], which indents with tabs. Empty arrays and objects are written
// as their intro and outro alone, never laid out over lines.
//
// # Related Packages
//
//   - github.com/signadot/ovitem/encode - encodes values with a Style
package format
