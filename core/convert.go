// File: convert.go
// Role: Bulk constructors — building graphs from edge lists, adjacency
//       maps and other graphs or views, with shape conversion.

package core

import (
	"sort"

	"github.com/katalvlaran/xgraph/attr"
)

// FromEdges builds a graph from edge tuples ({u,v}, or {u,v,key} for
// multigraphs), applied in order with AddEdgesFrom semantics: the first
// malformed tuple aborts the construction with the partial graph
// discarded by the caller.
// Complexity: O(len(edges)).
func FromEdges(edges [][]string, opts ...GraphOption) (*Graph, error) {
	g := NewGraph(opts...)
	if err := g.AddEdgesFrom(edges); err != nil {
		return nil, err
	}

	return g, nil
}

// FromAdjacency builds a graph from a node -> neighbor-list mapping
// (dict-of-lists). Outer keys are processed in lexicographic order so
// construction is deterministic despite Go's randomized map iteration;
// every outer key becomes a node even when its list is empty. For
// undirected graphs a mirrored listing of the same edge upserts rather
// than duplicates.
// Complexity: O(V log V + E).
func FromAdjacency(adj map[string][]string, opts ...GraphOption) (*Graph, error) {
	g := NewGraph(opts...)
	nodes := make([]string, 0, len(adj))
	for u := range adj {
		nodes = append(nodes, u)
	}
	sort.Strings(nodes)

	for _, u := range nodes {
		if err := g.AddNode(u); err != nil {
			return nil, err
		}
		for _, v := range adj[u] {
			if _, err := g.AddEdge(u, v); err != nil {
				return nil, err
			}
		}
	}

	return g, nil
}

// FromGraph builds an independent graph from src, defaulting to src's
// shape; options may reshape the result, with these conversion rules:
//
//   - directed -> undirected: opposite arcs merge, later attribute
//     writes winning per key (and per parallel-edge key on multigraphs).
//   - undirected -> directed: every edge becomes two opposite arcs
//     with independent attribute copies.
//   - multi -> simple: parallel edges collapse into one slot, payloads
//     merged in key order so the last one wins per attribute key.
//   - simple -> multi: each edge lands under auto-assigned key "0".
//
// Attribute maps are rebuilt fresh; aliasing with src is broken.
// Complexity: O(V+E).
func FromGraph(src GraphLike, opts ...GraphOption) *Graph {
	base := []GraphOption{WithDirected(src.Directed())}
	if src.Multigraph() {
		base = append(base, WithMulti(true))
	}
	out := NewGraph(append(base, opts...)...)
	attr.Merge(out.attrs, attr.Items(src.Attrs()))

	for _, id := range src.Nodes() {
		m, err := src.NodeAttrs(id)
		if err != nil {
			continue
		}
		out.store.addNode(id, attr.Items(m))
	}

	splitArcs := out.directed && !src.Directed()
	keepKeys := out.multi && src.Multigraph()
	for _, e := range src.Edges() {
		kv := attr.Items(e.Attrs)
		out.store.addEdge(e.U, e.V, e.Key, keepKeys, kv)
		if splitArcs && e.U != e.V {
			out.store.addEdge(e.V, e.U, e.Key, keepKeys, kv)
		}
	}

	return out
}
