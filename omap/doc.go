// Package omap provides a string-keyed map that remembers insertion
// order.
//
// Go's builtin map iterates in a randomized order; every enumeration
// surface in xgraph (nodes, neighbors, edges, attribute keys) promises
// insertion order instead, so this small structure underpins all of the
// library's storage.
//
// Ordering contract:
//
//   - Setting a new key appends it at the end.
//   - Setting an existing key overwrites the value in place; the key
//     keeps its position.
//   - Deleting a key does not reorder the survivors.
//   - Re-inserting a previously deleted key appends it at the current
//     end, not at its old position.
//
// Map is not safe for concurrent use; callers serialize access, matching
// the library-wide single-writer contract.
package omap
