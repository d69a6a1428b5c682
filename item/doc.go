// Package item provides the value tree for JSON documents.
//
// # Overview
//
// A Node holds one JSON value: null, true, false, a number, a string, an
// array or an object. Nodes are a tagged union. The payload matching the
// node's type is reached only through accessors, which check the type
// first and report a miss with a zero value, false or an error.
//
// # Ownership
//
// Arrays and objects own their children. Inserting a node with Push,
// SetIndex or Set transfers ownership to the container and records it as
// the node's parent. A node has at most one parent, so inserting a node
// that is already owned fails with ErrOwned. Remove, Pop and Shift hand
// ownership back to the caller and clear the parent.
//
// Free releases a root node and everything below it. Afterwards every
// operation on the node reports it as invalid. Free refuses nodes still
// held by a container.
//
// # Locking
//
// Each node carries its own lock, acquired with a timeout (see
// WithLockTimeout and SetDefaultLockTimeout). Operations lock only the
// node they act on, never a whole subtree, so readers and writers of
// different nodes of one tree do not contend. A node operation that
// cannot take the lock in time fails with ErrLockTimeout, or reports
// the node as invalid when the operation has no error result.
//
// # Related Packages
//
//   - github.com/signadot/ovitem/item/pointer - pointer parsing
//   - github.com/signadot/ovitem/parse - decode JSON into trees
//   - github.com/signadot/ovitem/encode - encode trees as JSON
package item
