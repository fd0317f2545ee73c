// File: view.go
// Role: Filtered read-only views (node- and edge-induced subgraphs)
//       plus the generic read helpers shared by every view kind.
//
// Views own no storage: every accessor reads through the parent on each
// call, so mutations of the root graph are visible immediately and
// attribute maps keep their identity across the view boundary. A view
// is cheap to construct (O(1) beyond materializing its admission sets)
// and is invalidated in effect, never destroyed, when the parent
// changes under it.
//
// Chain policy: a subgraph of a subgraph re-parents onto the inner
// view's parent with conjoined filters, so repeated restriction never
// deepens the chain. A chain through a role-remapping layer (Reverse,
// ToDirected, ToUndirected) is preserved literally — collapsing across
// a remap would discard the role swap.

package core

import "github.com/katalvlaran/xgraph/attr"

// SubgraphView is a restriction of a parent graph to the node/edge
// admissions of its filters. It implements GraphLike and nothing more:
// the absence of mutating methods is the read-only contract.
type SubgraphView struct {
	parent GraphLike
	nodeOK NodeFilter
	edgeOK EdgeFilter
}

// Subgraph returns the node-induced view of g: exactly the given nodes
// (intersected with g's current node set) and every edge between them.
// Edges added to g later between admitted nodes become visible without
// reconstructing the view.
// Complexity: O(len(nodes)) construction.
func Subgraph(g GraphLike, nodes []string) *SubgraphView {
	show := make(map[string]struct{}, len(nodes))
	for _, id := range nodes {
		if g.HasNode(id) {
			show[id] = struct{}{}
		}
	}

	return restrict(g, ShowNodes(show), nil)
}

// EdgeSubgraph returns the edge-induced view of g: exactly the listed
// edges that exist in g right now, plus their incident nodes. For
// multigraphs each Edge must carry its Key.
// Complexity: O(len(edges)) construction.
func EdgeSubgraph(g GraphLike, edges []Edge) *SubgraphView {
	nodes := make(map[string]struct{}, 2*len(edges))
	var edgeOK EdgeFilter
	if g.Multigraph() {
		keep := make(map[[3]string]struct{}, len(edges))
		for _, e := range edges {
			if !g.HasEdgeKey(e.U, e.V, e.Key) {
				continue
			}
			keep[[3]string{e.U, e.V, e.Key}] = struct{}{}
			nodes[e.U] = struct{}{}
			nodes[e.V] = struct{}{}
		}
		if g.Directed() {
			edgeOK = ShowMultiDiEdges(keep)
		} else {
			edgeOK = ShowMultiEdges(keep)
		}
	} else {
		keep := make(map[[2]string]struct{}, len(edges))
		for _, e := range edges {
			if !g.HasEdge(e.U, e.V) {
				continue
			}
			keep[[2]string{e.U, e.V}] = struct{}{}
			nodes[e.U] = struct{}{}
			nodes[e.V] = struct{}{}
		}
		if g.Directed() {
			edgeOK = ShowDiEdges(keep)
		} else {
			edgeOK = ShowEdges(keep)
		}
	}

	return restrict(g, ShowNodes(nodes), edgeOK)
}

// restrict wires a filtered layer over g, collapsing onto g's parent
// when g itself is a plain filtered layer.
func restrict(g GraphLike, nodeOK NodeFilter, edgeOK EdgeFilter) *SubgraphView {
	if sv, ok := g.(*SubgraphView); ok {
		return &SubgraphView{
			parent: sv.parent,
			nodeOK: andNode(sv.nodeOK, nodeOK),
			edgeOK: andEdge(sv.edgeOK, edgeOK),
		}
	}

	return &SubgraphView{parent: g, nodeOK: nodeOK, edgeOK: edgeOK}
}

// Parent returns the effective parent: the original root for collapsed
// chains of plain restrictions, or the nearest role-remapping view.
func (s *SubgraphView) Parent() GraphLike { return s.parent }

// AsView returns a sibling view bound to the same parent with the same
// admissions — never a deeper chain.
func (s *SubgraphView) AsView() *SubgraphView {
	return &SubgraphView{parent: s.parent, nodeOK: s.nodeOK, edgeOK: s.edgeOK}
}

// Directed reports the parent's directedness.
func (s *SubgraphView) Directed() bool { return s.parent.Directed() }

// Multigraph reports the parent's multiplicity.
func (s *SubgraphView) Multigraph() bool { return s.parent.Multigraph() }

// Attrs returns the parent's live graph-level attribute map.
func (s *SubgraphView) Attrs() *attr.Map { return s.parent.Attrs() }

// HasNode reports membership under the node admission.
func (s *SubgraphView) HasNode(id string) bool {
	return admitNode(s.nodeOK, id) && s.parent.HasNode(id)
}

// Nodes returns the admitted node IDs in the parent's insertion order.
func (s *SubgraphView) Nodes() []string {
	var out []string
	for _, id := range s.parent.Nodes() {
		if admitNode(s.nodeOK, id) {
			out = append(out, id)
		}
	}

	return out
}

// Order counts the admitted nodes. Complexity: O(V).
func (s *SubgraphView) Order() int { return len(s.Nodes()) }

// NodeAttrs returns the parent's live attribute map for an admitted node.
func (s *SubgraphView) NodeAttrs(id string) (*attr.Map, error) {
	if !admitNode(s.nodeOK, id) {
		return nil, ErrNodeNotFound
	}

	return s.parent.NodeAttrs(id)
}

// edgeVisible reports whether the (u,v) slot has at least one admitted
// edge observation.
func (s *SubgraphView) edgeVisible(u, v string) bool {
	if s.parent.Multigraph() {
		keys, err := s.parent.EdgeKeys(u, v)
		if err != nil {
			return false
		}
		for _, k := range keys {
			if admitEdge(s.edgeOK, u, v, k) {
				return true
			}
		}

		return false
	}

	return s.parent.HasEdge(u, v) && admitEdge(s.edgeOK, u, v, "")
}

// HasEdge reports whether an admitted edge (u,v) exists.
func (s *SubgraphView) HasEdge(u, v string) bool {
	return admitNode(s.nodeOK, u) && admitNode(s.nodeOK, v) && s.edgeVisible(u, v)
}

// HasEdgeKey reports whether the admitted parallel edge (u,v,key) exists.
func (s *SubgraphView) HasEdgeKey(u, v, key string) bool {
	return admitNode(s.nodeOK, u) && admitNode(s.nodeOK, v) &&
		admitEdge(s.edgeOK, u, v, key) && s.parent.HasEdgeKey(u, v, key)
}

// Edges returns the admitted edges in the parent's enumeration order.
// Complexity: O(V+E) over the parent.
func (s *SubgraphView) Edges() []Edge {
	var out []Edge
	for _, e := range s.parent.Edges() {
		if admitNode(s.nodeOK, e.U) && admitNode(s.nodeOK, e.V) &&
			admitEdge(s.edgeOK, e.U, e.V, e.Key) {
			out = append(out, e)
		}
	}

	return out
}

// Size counts the admitted edges. Complexity: O(V+E) over the parent.
func (s *SubgraphView) Size() int { return len(s.Edges()) }

// WeightedSize sums weights over the admitted edges.
func (s *SubgraphView) WeightedSize(weightKey string) float64 {
	return weightedSizeOf(s, weightKey)
}

// EdgeAttrs returns the live attribute map of an admitted edge.
func (s *SubgraphView) EdgeAttrs(u, v string) (*attr.Map, error) {
	if s.Multigraph() {
		return nil, ErrMultigraph
	}
	if !s.HasEdge(u, v) {
		return nil, ErrEdgeNotFound
	}

	return s.parent.EdgeAttrs(u, v)
}

// EdgeAttrsKey returns the live attribute map of an admitted parallel edge.
func (s *SubgraphView) EdgeAttrsKey(u, v, key string) (*attr.Map, error) {
	if !s.Multigraph() {
		return nil, ErrNotMultigraph
	}
	if !admitNode(s.nodeOK, u) || !admitNode(s.nodeOK, v) || !s.edgeVisible(u, v) {
		return nil, ErrEdgeNotFound
	}
	if !admitEdge(s.edgeOK, u, v, key) {
		return nil, ErrKeyNotFound
	}

	return s.parent.EdgeAttrsKey(u, v, key)
}

// EdgeKeys returns the admitted parallel-edge keys of slot (u,v).
func (s *SubgraphView) EdgeKeys(u, v string) ([]string, error) {
	if !s.Multigraph() {
		return nil, ErrNotMultigraph
	}
	if !admitNode(s.nodeOK, u) || !admitNode(s.nodeOK, v) {
		return nil, ErrEdgeNotFound
	}
	keys, err := s.parent.EdgeKeys(u, v)
	if err != nil {
		return nil, err
	}
	out := keys[:0:0]
	for _, k := range keys {
		if admitEdge(s.edgeOK, u, v, k) {
			out = append(out, k)
		}
	}
	if len(out) == 0 {
		return nil, ErrEdgeNotFound
	}

	return out, nil
}

// Neighbors returns the admitted adjacent nodes of an admitted node.
func (s *SubgraphView) Neighbors(id string) ([]string, error) {
	if id == "" {
		return nil, ErrEmptyNodeID
	}
	if !s.HasNode(id) {
		return nil, ErrNodeNotFound
	}
	nbrs, err := s.parent.Neighbors(id)
	if err != nil {
		return nil, err
	}
	var out []string
	for _, v := range nbrs {
		if admitNode(s.nodeOK, v) && s.edgeVisible(id, v) {
			out = append(out, v)
		}
	}

	return out, nil
}

// Successors returns the admitted out-neighbors. Directed parents only.
func (s *SubgraphView) Successors(id string) ([]string, error) {
	if !s.Directed() {
		return nil, ErrNotDirected
	}

	return s.Neighbors(id)
}

// Predecessors returns the admitted in-neighbors. Directed parents only.
func (s *SubgraphView) Predecessors(id string) ([]string, error) {
	if !s.Directed() {
		return nil, ErrNotDirected
	}
	if id == "" {
		return nil, ErrEmptyNodeID
	}
	if !s.HasNode(id) {
		return nil, ErrNodeNotFound
	}
	preds, err := s.parent.Predecessors(id)
	if err != nil {
		return nil, err
	}
	var out []string
	for _, u := range preds {
		if admitNode(s.nodeOK, u) && s.edgeVisible(u, id) {
			out = append(out, u)
		}
	}

	return out, nil
}

// AdjacencyList flattens the admitted adjacency.
func (s *SubgraphView) AdjacencyList() map[string][]string { return adjacencyListOf(s) }

// Degree counts admitted incident edges under the package degree policy.
// Complexity: O(V+E) over the parent.
func (s *SubgraphView) Degree(id string) (int, error) { return degreeByScan(s, id) }

// InDegree counts admitted incoming edges. Directed parents only.
func (s *SubgraphView) InDegree(id string) (int, error) { return inDegreeByScan(s, id) }

// OutDegree counts admitted outgoing edges. Directed parents only.
func (s *SubgraphView) OutDegree(id string) (int, error) { return outDegreeByScan(s, id) }

// WeightedDegree sums weights over admitted incident edges.
func (s *SubgraphView) WeightedDegree(id, weightKey string) (float64, error) {
	return weightedDegreeByScan(s, id, weightKey)
}

// Shared view read helpers:
////////////////////

// degreeByScan derives the degree of id from g.Edges(). Both endpoint
// incidences of every edge count, so an undirected self-loop adds 2 and
// a directed graph yields in+out.
func degreeByScan(g GraphLike, id string) (int, error) {
	if id == "" {
		return 0, ErrEmptyNodeID
	}
	if !g.HasNode(id) {
		return 0, ErrNodeNotFound
	}
	deg := 0
	for _, e := range g.Edges() {
		if e.U == id {
			deg++
		}
		if e.V == id {
			deg++
		}
	}

	return deg, nil
}

// inDegreeByScan derives the in-degree of id from g.Edges().
func inDegreeByScan(g GraphLike, id string) (int, error) {
	if !g.Directed() {
		return 0, ErrNotDirected
	}
	if id == "" {
		return 0, ErrEmptyNodeID
	}
	if !g.HasNode(id) {
		return 0, ErrNodeNotFound
	}
	deg := 0
	for _, e := range g.Edges() {
		if e.V == id {
			deg++
		}
	}

	return deg, nil
}

// outDegreeByScan derives the out-degree of id from g.Edges().
func outDegreeByScan(g GraphLike, id string) (int, error) {
	if !g.Directed() {
		return 0, ErrNotDirected
	}
	if id == "" {
		return 0, ErrEmptyNodeID
	}
	if !g.HasNode(id) {
		return 0, ErrNodeNotFound
	}
	deg := 0
	for _, e := range g.Edges() {
		if e.U == id {
			deg++
		}
	}

	return deg, nil
}

// weightedDegreeByScan derives the weighted degree of id from g.Edges().
func weightedDegreeByScan(g GraphLike, id, weightKey string) (float64, error) {
	if id == "" {
		return 0, ErrEmptyNodeID
	}
	if !g.HasNode(id) {
		return 0, ErrNodeNotFound
	}
	var total float64
	for _, e := range g.Edges() {
		w := attr.WeightOr(e.Attrs, weightKey, 1)
		if e.U == id {
			total += w
		}
		if e.V == id {
			total += w
		}
	}

	return total, nil
}

// weightedSizeOf sums weights over g.Edges() with a default of 1.
func weightedSizeOf(g GraphLike, weightKey string) float64 {
	var total float64
	for _, e := range g.Edges() {
		total += attr.WeightOr(e.Attrs, weightKey, 1)
	}

	return total
}

// adjacencyListOf flattens g into node -> neighbor IDs using g's own
// Neighbors enumeration. Isolated nodes map to an empty slice, never nil,
// matching the Graph surface.
func adjacencyListOf(g GraphLike) map[string][]string {
	nodes := g.Nodes()
	out := make(map[string][]string, len(nodes))
	for _, u := range nodes {
		nbrs, err := g.Neighbors(u)
		if err != nil {
			continue
		}
		if nbrs == nil {
			nbrs = []string{}
		}
		out[u] = nbrs
	}

	return out
}
