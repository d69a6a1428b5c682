// Package parse decodes JSON documents into item trees.
//
// Decode reads one value from the front of a buffer and reports how many
// bytes it consumed, so a caller can decode values laid end to end. Parse
// requires the whole buffer to be one value.
package parse
