// File: view_reverse.go
// Role: The reversal view — successor and predecessor roles swapped
//       without copying anything.

package core

import "github.com/katalvlaran/xgraph/attr"

// ReverseView presents a directed parent with every arc flipped. Edge
// attribute maps keep their identity; only the index roles swap.
type ReverseView struct {
	parent GraphLike
}

// Reverse returns the reversal view of g. Reversing a ReverseView
// unwraps to its parent, so double reversal is the identity.
// Returns ErrNotDirected for an undirected g — the capability check
// happens at construction, not on first access.
// Complexity: O(1).
func Reverse(g GraphLike) (GraphLike, error) {
	if !g.Directed() {
		return nil, ErrNotDirected
	}
	if rv, ok := g.(*ReverseView); ok {
		return rv.parent, nil
	}

	return &ReverseView{parent: g}, nil
}

// Parent returns the wrapped graph.
func (r *ReverseView) Parent() GraphLike { return r.parent }

// AsView returns a sibling reversal of the same parent.
func (r *ReverseView) AsView() *ReverseView { return &ReverseView{parent: r.parent} }

// Directed is always true: only directed graphs can be reversed.
func (r *ReverseView) Directed() bool { return true }

// Multigraph reports the parent's multiplicity.
func (r *ReverseView) Multigraph() bool { return r.parent.Multigraph() }

// Attrs returns the parent's live graph-level attribute map.
func (r *ReverseView) Attrs() *attr.Map { return r.parent.Attrs() }

// Order reports the parent's node count.
func (r *ReverseView) Order() int { return r.parent.Order() }

// HasNode delegates to the parent: reversal never changes the node set.
func (r *ReverseView) HasNode(id string) bool { return r.parent.HasNode(id) }

// Nodes delegates to the parent in its insertion order.
func (r *ReverseView) Nodes() []string { return r.parent.Nodes() }

// NodeAttrs returns the parent's live node attribute map.
func (r *ReverseView) NodeAttrs(id string) (*attr.Map, error) { return r.parent.NodeAttrs(id) }

// Size reports the parent's edge count; reversal preserves it.
func (r *ReverseView) Size() int { return r.parent.Size() }

// WeightedSize reports the parent's weighted edge sum.
func (r *ReverseView) WeightedSize(weightKey string) float64 {
	return r.parent.WeightedSize(weightKey)
}

// HasEdge answers for the flipped arc.
func (r *ReverseView) HasEdge(u, v string) bool { return r.parent.HasEdge(v, u) }

// HasEdgeKey answers for the flipped keyed arc.
func (r *ReverseView) HasEdgeKey(u, v, key string) bool { return r.parent.HasEdgeKey(v, u, key) }

// Edges returns the parent's edges with endpoints swapped, in the
// parent's enumeration order, sharing the same attribute maps.
func (r *ReverseView) Edges() []Edge {
	src := r.parent.Edges()
	out := make([]Edge, len(src))
	for i, e := range src {
		out[i] = Edge{U: e.V, V: e.U, Key: e.Key, Attrs: e.Attrs}
	}

	return out
}

// EdgeAttrs returns the live attribute map of the flipped arc.
func (r *ReverseView) EdgeAttrs(u, v string) (*attr.Map, error) {
	return r.parent.EdgeAttrs(v, u)
}

// EdgeAttrsKey returns the live attribute map of the flipped keyed arc.
func (r *ReverseView) EdgeAttrsKey(u, v, key string) (*attr.Map, error) {
	return r.parent.EdgeAttrsKey(v, u, key)
}

// EdgeKeys returns the parallel-edge keys of the flipped slot.
func (r *ReverseView) EdgeKeys(u, v string) ([]string, error) {
	return r.parent.EdgeKeys(v, u)
}

// Neighbors enumerates successors, which under reversal are the
// parent's predecessors.
func (r *ReverseView) Neighbors(id string) ([]string, error) { return r.parent.Predecessors(id) }

// Successors are the parent's predecessors.
func (r *ReverseView) Successors(id string) ([]string, error) { return r.parent.Predecessors(id) }

// Predecessors are the parent's successors.
func (r *ReverseView) Predecessors(id string) ([]string, error) { return r.parent.Successors(id) }

// AdjacencyList flattens the reversed adjacency.
func (r *ReverseView) AdjacencyList() map[string][]string { return adjacencyListOf(r) }

// Degree is reversal-invariant (in+out swaps internally).
func (r *ReverseView) Degree(id string) (int, error) { return r.parent.Degree(id) }

// InDegree is the parent's out-degree.
func (r *ReverseView) InDegree(id string) (int, error) { return r.parent.OutDegree(id) }

// OutDegree is the parent's in-degree.
func (r *ReverseView) OutDegree(id string) (int, error) { return r.parent.InDegree(id) }

// WeightedDegree is reversal-invariant.
func (r *ReverseView) WeightedDegree(id, weightKey string) (float64, error) {
	return r.parent.WeightedDegree(id, weightKey)
}
