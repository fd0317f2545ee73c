// File: function.go
// Role: Small structural helpers layered entirely on the GraphLike read
//       contract; they work identically for graphs and live views.

package core

import "github.com/katalvlaran/xgraph/attr"

// IsEmpty reports whether g has no edges (nodes may still exist).
// Complexity: O(1) for graphs, O(V+E) for filtered views.
func IsEmpty(g GraphLike) bool { return g.Size() == 0 }

// Density returns the edge density of g: m/(n·(n−1)) for directed
// graphs and 2m/(n·(n−1)) for undirected ones. The single-node graph
// has density 0; self-loops can push the value above 1.
// Returns ErrNullGraph for the 0-node graph — the graph is well-formed,
// the quantity is simply undefined.
// Complexity: O(1) for graphs, O(V+E) for filtered views.
func Density(g GraphLike) (float64, error) {
	n := g.Order()
	if n == 0 {
		return 0, ErrNullGraph
	}
	if n == 1 {
		return 0, nil
	}
	m := float64(g.Size())
	d := m / (float64(n) * float64(n-1))
	if !g.Directed() {
		d *= 2
	}

	return d, nil
}

// AverageDegree returns the mean degree 2m/n (each edge contributes two
// endpoint incidences in both the directed and undirected conventions).
// Returns ErrNullGraph for the 0-node graph.
// Complexity: O(1) for graphs, O(V+E) for filtered views.
func AverageDegree(g GraphLike) (float64, error) {
	n := g.Order()
	if n == 0 {
		return 0, ErrNullGraph
	}

	return 2 * float64(g.Size()) / float64(n), nil
}

// SelfLoopNodes returns the nodes carrying at least one self-loop, in
// node insertion order.
// Complexity: O(V).
func SelfLoopNodes(g GraphLike) []string {
	var out []string
	for _, id := range g.Nodes() {
		if g.HasEdge(id, id) {
			out = append(out, id)
		}
	}

	return out
}

// NumberOfSelfLoops counts self-loop edges; multigraph parallel loops
// count individually.
// Complexity: O(V+E).
func NumberOfSelfLoops(g GraphLike) int {
	n := 0
	for _, e := range g.Edges() {
		if e.U == e.V {
			n++
		}
	}

	return n
}

// CreateEmptyCopy returns an independent graph with g's shape, graph
// attributes and nodes (attribute maps rebuilt fresh) but no edges.
// Complexity: O(V).
func CreateEmptyCopy(g GraphLike) *Graph {
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

	return out
}

// Degrees resolves the degree of each requested node, results in query
// order. The first unknown node aborts with its error.
// Complexity: O(len(ids) · deg) for graphs.
func Degrees(g GraphLike, ids []string) ([]NodeDegree, error) {
	out := make([]NodeDegree, 0, len(ids))
	for _, id := range ids {
		d, err := g.Degree(id)
		if err != nil {
			return nil, err
		}
		out = append(out, NodeDegree{ID: id, Degree: d})
	}

	return out, nil
}
