// Package core provides the mutable, in-memory Graph data structure and
// its family of zero-copy read-only views.
//
// The Graph G = (V,E) covers four shapes behind one type, selected at
// construction time:
//
//   - Undirected vs. directed edges (WithDirected, NewDiGraph)
//   - Simple vs. multigraph — parallel keyed edges (WithMulti,
//     NewMultiGraph, NewMultiDiGraph)
//   - Self-loops are always permitted and follow the classic counting
//     convention: once in Size(), twice in undirected Degree()
//   - Graph/node/edge attributes stored in ordered attr.Map objects
//
// Storage model:
//
//	An adjacency store of nested insertion-ordered maps. Undirected
//	edges record the *same* payload pointer under both endpoint slots;
//	directed edges record it under the successor slot of u and the
//	predecessor slot of v. Multigraph slots hold an ordered key→attrs
//	table, auto-keyed by the smallest unused non-negative integer.
//	The payload sharing is a contract: mutating an edge's attribute map
//	obtained from either side (or through any view) is visible
//	everywhere.
//
// Views:
//
//	Subgraph, EdgeSubgraph, Reverse, ToDirected and ToUndirected build
//	read-only GraphLike values over a parent without copying data. They
//	read through live: mutations of the root graph are visible on the
//	next access. A subgraph of a subgraph re-parents onto the original
//	root with conjoined filters, so chains of plain restrictions never
//	deepen; chains through a role-remapping layer (Reverse, the
//	projections) are preserved literally. Clone materializes any
//	GraphLike into an independent Graph.
//
// Determinism:
//
//	Nodes(), Edges(), Neighbors() and attribute keys all iterate in
//	insertion order, stable across removals. Re-inserting a removed
//	node or edge appends at the current end.
//
// Concurrency:
//
//	None. The graph is a single-threaded data structure; wrap it in
//	your own mutex if a multi-threaded host mutates it.
//
// Errors are sentinels (errors.Is-friendly), split into not-found
// (ErrNodeNotFound, ErrEdgeNotFound, ErrKeyNotFound), capability
// (ErrNotDirected, ErrDirected, ErrNotMultigraph, ErrMultigraph),
// malformed input (ErrEmptyNodeID, ErrMalformedEdge) and degenerate
// input (ErrNullGraph).
package core
