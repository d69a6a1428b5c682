// Package token provides the lexical layer of the JSON codec.
//
// It knows about whitespace, balanced container spans, quoted strings,
// the literals null/true/false and numbers. The decoder in package parse
// uses the scanners to find token boundaries; the encoder in package
// encode uses [AppendEscaped], [EscapedLen] and [FormatNumber] so that its size
// and write passes render tokens identically.
//
// Numbers are written as plain integers only while they are integral and
// below 2^53 in magnitude; larger values use the shortest exponent form,
// e.g. 2^53 is written 9.007199254740992e+15.
package token
