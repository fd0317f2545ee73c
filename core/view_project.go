// File: view_project.go
// Role: Direction-changing projection views: ToDirected shows an
//       undirected parent as a digraph (each edge as two opposite arcs
//       sharing one attribute map), ToUndirected merges a directed
//       parent's arcs (successor slot wins when both orientations
//       exist).

package core

import "github.com/katalvlaran/xgraph/attr"

// DirectedView presents its parent with directed semantics. Over an
// already-directed parent it is a pure passthrough.
type DirectedView struct {
	parent GraphLike
}

// ToDirected returns a directed projection view of g, sharing storage
// and seeing live mutations. Use Clone(ToDirected(g)) for an
// independent materialized digraph.
// Complexity: O(1).
func ToDirected(g GraphLike) *DirectedView { return &DirectedView{parent: g} }

// Parent returns the wrapped graph.
func (d *DirectedView) Parent() GraphLike { return d.parent }

// AsView returns a sibling projection of the same parent.
func (d *DirectedView) AsView() *DirectedView { return &DirectedView{parent: d.parent} }

// Directed is always true for this projection.
func (d *DirectedView) Directed() bool { return true }

// Multigraph reports the parent's multiplicity.
func (d *DirectedView) Multigraph() bool { return d.parent.Multigraph() }

// Attrs returns the parent's live graph-level attribute map.
func (d *DirectedView) Attrs() *attr.Map { return d.parent.Attrs() }

// Order reports the parent's node count.
func (d *DirectedView) Order() int { return d.parent.Order() }

// HasNode delegates to the parent.
func (d *DirectedView) HasNode(id string) bool { return d.parent.HasNode(id) }

// Nodes delegates to the parent in its insertion order.
func (d *DirectedView) Nodes() []string { return d.parent.Nodes() }

// NodeAttrs returns the parent's live node attribute map.
func (d *DirectedView) NodeAttrs(id string) (*attr.Map, error) { return d.parent.NodeAttrs(id) }

// HasEdge reports arc existence. Over an undirected parent the answer
// is orientation-symmetric, because the projection emits both arcs.
func (d *DirectedView) HasEdge(u, v string) bool { return d.parent.HasEdge(u, v) }

// HasEdgeKey reports keyed arc existence.
func (d *DirectedView) HasEdgeKey(u, v, key string) bool { return d.parent.HasEdgeKey(u, v, key) }

// Edges enumerates the projected arcs: a directed parent's edges
// unchanged, or both orientations of every undirected edge (self-loops
// once), each orientation sharing the parent's attribute map.
// Complexity: O(V+E) over the parent.
func (d *DirectedView) Edges() []Edge {
	src := d.parent.Edges()
	if d.parent.Directed() {
		return src
	}
	out := make([]Edge, 0, 2*len(src))
	for _, e := range src {
		out = append(out, e)
		if e.U != e.V {
			out = append(out, Edge{U: e.V, V: e.U, Key: e.Key, Attrs: e.Attrs})
		}
	}

	return out
}

// Size counts projected arcs: 2·E minus self-loops over an undirected
// parent. Complexity: O(V+E) over an undirected parent.
func (d *DirectedView) Size() int {
	if d.parent.Directed() {
		return d.parent.Size()
	}

	return len(d.Edges())
}

// WeightedSize sums weights over the projected arcs.
func (d *DirectedView) WeightedSize(weightKey string) float64 { return weightedSizeOf(d, weightKey) }

// EdgeAttrs returns the live attribute map of the arc; both projected
// orientations of an undirected edge resolve to the same map.
func (d *DirectedView) EdgeAttrs(u, v string) (*attr.Map, error) { return d.parent.EdgeAttrs(u, v) }

// EdgeAttrsKey is the keyed variant of EdgeAttrs.
func (d *DirectedView) EdgeAttrsKey(u, v, key string) (*attr.Map, error) {
	return d.parent.EdgeAttrsKey(u, v, key)
}

// EdgeKeys delegates to the parent slot.
func (d *DirectedView) EdgeKeys(u, v string) ([]string, error) { return d.parent.EdgeKeys(u, v) }

// Neighbors enumerates successors of the projection.
func (d *DirectedView) Neighbors(id string) ([]string, error) { return d.parent.Neighbors(id) }

// Successors are the parent's successors, or all neighbors when the
// parent is undirected (every edge became an out-arc).
func (d *DirectedView) Successors(id string) ([]string, error) {
	if d.parent.Directed() {
		return d.parent.Successors(id)
	}

	return d.parent.Neighbors(id)
}

// Predecessors are the parent's predecessors, or all neighbors when the
// parent is undirected (every edge became an in-arc too).
func (d *DirectedView) Predecessors(id string) ([]string, error) {
	if d.parent.Directed() {
		return d.parent.Predecessors(id)
	}

	return d.parent.Neighbors(id)
}

// AdjacencyList flattens the projected adjacency.
func (d *DirectedView) AdjacencyList() map[string][]string { return adjacencyListOf(d) }

// Degree follows directed semantics (in+out) over the projected arcs.
func (d *DirectedView) Degree(id string) (int, error) {
	if d.parent.Directed() {
		return d.parent.Degree(id)
	}

	return degreeByScan(d, id)
}

// InDegree counts projected incoming arcs.
func (d *DirectedView) InDegree(id string) (int, error) {
	if d.parent.Directed() {
		return d.parent.InDegree(id)
	}

	return inDegreeByScan(d, id)
}

// OutDegree counts projected outgoing arcs.
func (d *DirectedView) OutDegree(id string) (int, error) {
	if d.parent.Directed() {
		return d.parent.OutDegree(id)
	}

	return outDegreeByScan(d, id)
}

// WeightedDegree sums weights over projected incident arcs.
func (d *DirectedView) WeightedDegree(id, weightKey string) (float64, error) {
	if d.parent.Directed() {
		return d.parent.WeightedDegree(id, weightKey)
	}

	return weightedDegreeByScan(d, id, weightKey)
}

// UndirectedView presents its parent with undirected semantics. Over an
// already-undirected parent it is a pure passthrough; over a directed
// parent opposite arcs merge, the successor orientation taking
// precedence on attribute lookup.
type UndirectedView struct {
	parent GraphLike
}

// ToUndirected returns an undirected projection view of g, sharing
// storage and seeing live mutations. Use Clone(ToUndirected(g)) for an
// independent materialized graph.
// Complexity: O(1).
func ToUndirected(g GraphLike) *UndirectedView { return &UndirectedView{parent: g} }

// Parent returns the wrapped graph.
func (ud *UndirectedView) Parent() GraphLike { return ud.parent }

// AsView returns a sibling projection of the same parent.
func (ud *UndirectedView) AsView() *UndirectedView { return &UndirectedView{parent: ud.parent} }

// Directed is always false for this projection.
func (ud *UndirectedView) Directed() bool { return false }

// Multigraph reports the parent's multiplicity.
func (ud *UndirectedView) Multigraph() bool { return ud.parent.Multigraph() }

// Attrs returns the parent's live graph-level attribute map.
func (ud *UndirectedView) Attrs() *attr.Map { return ud.parent.Attrs() }

// Order reports the parent's node count.
func (ud *UndirectedView) Order() int { return ud.parent.Order() }

// HasNode delegates to the parent.
func (ud *UndirectedView) HasNode(id string) bool { return ud.parent.HasNode(id) }

// Nodes delegates to the parent in its insertion order.
func (ud *UndirectedView) Nodes() []string { return ud.parent.Nodes() }

// NodeAttrs returns the parent's live node attribute map.
func (ud *UndirectedView) NodeAttrs(id string) (*attr.Map, error) { return ud.parent.NodeAttrs(id) }

// HasEdge merges orientations: the edge exists if either arc does.
func (ud *UndirectedView) HasEdge(u, v string) bool {
	return ud.parent.HasEdge(u, v) || ud.parent.HasEdge(v, u)
}

// HasEdgeKey merges orientations for the keyed slot.
func (ud *UndirectedView) HasEdgeKey(u, v, key string) bool {
	return ud.parent.HasEdgeKey(u, v, key) || ud.parent.HasEdgeKey(v, u, key)
}

// Edges enumerates the merged edges once each, at the first orientation
// encountered in the parent's order.
// Complexity: O(V+E) over the parent.
func (ud *UndirectedView) Edges() []Edge {
	src := ud.parent.Edges()
	if !ud.parent.Directed() {
		return src
	}
	out := make([]Edge, 0, len(src))
	seen := make(map[[3]string]struct{}, len(src))
	for _, e := range src {
		pair := canonicalPair(e.U, e.V)
		id := [3]string{pair[0], pair[1], e.Key}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, e)
	}

	return out
}

// Size counts the merged edges. Complexity: O(V+E) over a directed parent.
func (ud *UndirectedView) Size() int {
	if !ud.parent.Directed() {
		return ud.parent.Size()
	}

	return len(ud.Edges())
}

// WeightedSize sums weights over the merged edges.
func (ud *UndirectedView) WeightedSize(weightKey string) float64 {
	return weightedSizeOf(ud, weightKey)
}

// EdgeAttrs returns the live attribute map, successor orientation
// winning when both arcs exist.
func (ud *UndirectedView) EdgeAttrs(u, v string) (*attr.Map, error) {
	m, err := ud.parent.EdgeAttrs(u, v)
	if err == nil || !ud.parent.Directed() {
		return m, err
	}

	return ud.parent.EdgeAttrs(v, u)
}

// EdgeAttrsKey is the keyed variant of EdgeAttrs, same precedence rule.
func (ud *UndirectedView) EdgeAttrsKey(u, v, key string) (*attr.Map, error) {
	m, err := ud.parent.EdgeAttrsKey(u, v, key)
	if err == nil || !ud.parent.Directed() {
		return m, err
	}

	return ud.parent.EdgeAttrsKey(v, u, key)
}

// EdgeKeys unions the keys of both orientations, successor slot first.
func (ud *UndirectedView) EdgeKeys(u, v string) ([]string, error) {
	if !ud.parent.Directed() {
		return ud.parent.EdgeKeys(u, v)
	}
	fwd, errFwd := ud.parent.EdgeKeys(u, v)
	rev, errRev := ud.parent.EdgeKeys(v, u)
	if errFwd != nil && errRev != nil {
		return nil, errFwd
	}
	out := make([]string, 0, len(fwd)+len(rev))
	seen := make(map[string]struct{}, len(fwd))
	for _, k := range fwd {
		out = append(out, k)
		seen[k] = struct{}{}
	}
	for _, k := range rev {
		if _, dup := seen[k]; !dup {
			out = append(out, k)
		}
	}

	return out, nil
}

// Neighbors unions successors and predecessors, successor order first.
func (ud *UndirectedView) Neighbors(id string) ([]string, error) {
	if !ud.parent.Directed() {
		return ud.parent.Neighbors(id)
	}
	succ, err := ud.parent.Successors(id)
	if err != nil {
		return nil, err
	}
	pred, err := ud.parent.Predecessors(id)
	if err != nil {
		return nil, err
	}
	out := make([]string, 0, len(succ)+len(pred))
	seen := make(map[string]struct{}, len(succ))
	for _, v := range succ {
		out = append(out, v)
		seen[v] = struct{}{}
	}
	for _, v := range pred {
		if _, dup := seen[v]; !dup {
			out = append(out, v)
		}
	}

	return out, nil
}

// Successors is a directed-only operation; the projection is undirected.
func (ud *UndirectedView) Successors(string) ([]string, error) { return nil, ErrNotDirected }

// Predecessors is a directed-only operation; the projection is undirected.
func (ud *UndirectedView) Predecessors(string) ([]string, error) { return nil, ErrNotDirected }

// AdjacencyList flattens the merged adjacency.
func (ud *UndirectedView) AdjacencyList() map[string][]string { return adjacencyListOf(ud) }

// Degree follows undirected semantics over the merged edges.
func (ud *UndirectedView) Degree(id string) (int, error) {
	if !ud.parent.Directed() {
		return ud.parent.Degree(id)
	}

	return degreeByScan(ud, id)
}

// InDegree is a directed-only operation; the projection is undirected.
func (ud *UndirectedView) InDegree(string) (int, error) { return 0, ErrNotDirected }

// OutDegree is a directed-only operation; the projection is undirected.
func (ud *UndirectedView) OutDegree(string) (int, error) { return 0, ErrNotDirected }

// WeightedDegree sums weights over the merged incident edges.
func (ud *UndirectedView) WeightedDegree(id, weightKey string) (float64, error) {
	if !ud.parent.Directed() {
		return ud.parent.WeightedDegree(id, weightKey)
	}

	return weightedDegreeByScan(ud, id, weightKey)
}
