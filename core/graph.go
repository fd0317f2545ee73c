// File: graph.go
// Role: The Graph type, its constructors and instance-wide accessors.
//
// One concrete type covers all four shapes; directedness and
// multiplicity are construction-time flags surfaced through Directed()
// and Multigraph(), and capability errors guard the operations that
// only one shape supports.

package core

import "github.com/katalvlaran/xgraph/attr"

// Graph is the mutable graph object: one adjacency store plus
// graph-level attributes and the immutable shape flags.
type Graph struct {
	directed bool
	multi    bool

	attrs *attr.Map
	store *adjacencyStore
}

// NewGraph creates an empty undirected simple graph, unless reshaped by
// options. Flags are immutable afterwards.
// Complexity: O(len(opts)).
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{attrs: attr.New()}
	for _, opt := range opts {
		opt(g)
	}
	g.store = newStore(g.directed, g.multi)

	return g
}

// NewDiGraph creates an empty directed simple graph.
func NewDiGraph(opts ...GraphOption) *Graph {
	return NewGraph(append([]GraphOption{WithDirected(true)}, opts...)...)
}

// NewMultiGraph creates an empty undirected multigraph.
func NewMultiGraph(opts ...GraphOption) *Graph {
	return NewGraph(append([]GraphOption{WithMulti(true)}, opts...)...)
}

// NewMultiDiGraph creates an empty directed multigraph.
func NewMultiDiGraph(opts ...GraphOption) *Graph {
	return NewGraph(append([]GraphOption{WithDirected(true), WithMulti(true)}, opts...)...)
}

// Directed reports whether edges are directed.
func (g *Graph) Directed() bool { return g.directed }

// Multigraph reports whether parallel keyed edges are permitted.
func (g *Graph) Multigraph() bool { return g.multi }

// Attrs returns the live graph-level attribute map.
func (g *Graph) Attrs() *attr.Map { return g.attrs }

// Clear resets topology and graph attributes but preserves shape flags.
// Complexity: O(V+E) released to the collector.
func (g *Graph) Clear() {
	g.attrs = attr.New()
	g.store = newStore(g.directed, g.multi)
}

// Copy returns a fully independent duplicate: same shape, same
// structure, fresh attribute maps (aliasing with the source is broken).
// Complexity: O(V+E).
func (g *Graph) Copy() *Graph { return Clone(g) }
