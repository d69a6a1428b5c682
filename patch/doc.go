// Package patch applies RFC 6902 JSON Patch and RFC 7386 merge patch
// documents to item trees.
//
// Patching works on the minimal encoding of a tree and decodes the
// result into a new tree. The input tree is left unchanged.
package patch
