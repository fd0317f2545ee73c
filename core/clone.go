// File: clone.go
// Role: Materialization — turning any GraphLike (graph or view) into an
//       independent Graph.

package core

import "github.com/katalvlaran/xgraph/attr"

// Clone materializes g into a fully independent Graph of the same
// shape: flags as g projects them, structure copied, every graph, node
// and edge attribute map rebuilt fresh so no aliasing with g survives.
// Cloning a view therefore "freezes" what the view currently shows.
// Complexity: O(V+E).
func Clone(g GraphLike) *Graph {
	opts := []GraphOption{WithDirected(g.Directed())}
	if g.Multigraph() {
		opts = append(opts, WithMulti(true))
	}
	out := NewGraph(opts...)
	attr.Merge(out.attrs, attr.Items(g.Attrs()))

	for _, id := range g.Nodes() {
		m, err := g.NodeAttrs(id)
		if err != nil {
			continue
		}
		out.store.addNode(id, attr.Items(m))
	}
	for _, e := range g.Edges() {
		out.store.addEdge(e.U, e.V, e.Key, out.multi, attr.Items(e.Attrs))
	}

	return out
}
