// Package xgraph is an in-memory, mutable multi-view graph library:
// ordered adjacency storage, simple and multi graphs, directed and
// undirected semantics, and zero-copy views that stay live as the
// underlying graph changes.
//
// 🚀 What is xgraph?
//
//	A small, deterministic library that brings together:
//		• Core primitives: nodes, edges and attribute maps with
//		  insertion-ordered, reproducible iteration
//		• One Graph type, four shapes: simple/multi × directed/undirected
//		  selected at construction time
//		• Views: subgraph, edge-subgraph, reverse, to-directed and
//		  to-undirected projections — no storage duplication, read-through
//		• Filters: composable node/edge admission predicates with an
//		  O(1)-recognized allow-all
//		• Converters: build graphs from edge lists, adjacency maps, or
//		  other graphs and views
//
// ✨ Why choose xgraph?
//
//   - Deterministic - every enumeration follows insertion order, so test
//     output and serialization are reproducible
//   - Live views - subgraphs and reversals see parent mutations without
//     reconstruction, and share attribute maps by reference
//   - Pure Go - no cgo, a single test-only dependency
//   - Honest errors - sentinel errors for not-found, capability and
//     malformed-input failures; no silent degradation
//
// Everything is organized under three subpackages:
//
//	omap/ — generic insertion-ordered map, the ordering primitive
//	attr/ — attribute mappings shared by graphs, nodes and edges
//	core/ — the Graph type, filters, views and converters
//
// Quick ASCII example:
//
//	    A───B
//	    │   │
//	    C───D
//
//	four nodes, four edges; Subgraph over {A, B, C} keeps A─B and A─C
//	and tracks any later edge added between those nodes.
//
//	go get github.com/katalvlaran/xgraph/core
package xgraph
