package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/xgraph/core"
)

// TestMirrorInvariant verifies that both orientations of an undirected
// edge resolve to the same live attribute map.
func TestMirrorInvariant(t *testing.T) {
	g := core.NewGraph()
	mustAddEdge(t, g, NodeA, NodeB)
	mustAddEdge(t, g, NodeB, NodeC)

	for _, pair := range [][2]string{{NodeA, NodeB}, {NodeB, NodeC}} {
		u, v := pair[0], pair[1]

		nu, err := g.Neighbors(u)
		require.NoError(t, err)
		nv, err := g.Neighbors(v)
		require.NoError(t, err)
		require.Contains(t, nu, v)
		require.Contains(t, nv, u)

		uv, err := g.EdgeAttrs(u, v)
		require.NoError(t, err)
		vu, err := g.EdgeAttrs(v, u)
		require.NoError(t, err)
		require.Same(t, uv, vu, "both orientations must alias one map")
	}

	// Mutation through one orientation is visible through the other.
	ab, _ := g.EdgeAttrs(NodeA, NodeB)
	ab.Set("color", "red")
	ba, _ := g.EdgeAttrs(NodeB, NodeA)
	c, ok := ba.Get("color")
	require.True(t, ok)
	require.Equal(t, "red", c)
}

// TestDegreeSumLaw verifies sum(degree) == 2*Size, self-loops included.
func TestDegreeSumLaw(t *testing.T) {
	g := core.NewGraph()
	mustAddEdge(t, g, NodeA, NodeB)
	mustAddEdge(t, g, NodeB, NodeC)
	mustAddEdge(t, g, NodeC, NodeC)
	require.NoError(t, g.AddNode(NodeD))

	sum := 0
	for _, id := range g.Nodes() {
		d, err := g.Degree(id)
		require.NoError(t, err)
		sum += d
	}
	require.Equal(t, 2*g.Size(), sum)

	dc, err := g.Degree(NodeC)
	require.NoError(t, err)
	require.Equal(t, 3, dc, "self-loop contributes two to its endpoint")
}

// TestViewLiveness verifies a subgraph tracks edges added to its parent
// after construction.
func TestViewLiveness(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddNodesFrom([]string{NodeA, NodeB, NodeC}))
	view := core.Subgraph(g, []string{NodeA, NodeB})
	require.Empty(t, view.Edges())

	mustAddEdge(t, g, NodeA, NodeB)
	mustAddEdge(t, g, NodeB, NodeC) // outside the member set, stays hidden

	edges := view.Edges()
	require.Len(t, edges, 1)
	require.Equal(t, NodeA, edges[0].U)
	require.Equal(t, NodeB, edges[0].V)

	// Node removal in the parent is live too.
	require.NoError(t, g.RemoveNode(NodeA))
	require.False(t, view.HasNode(NodeA))
	require.Empty(t, view.Edges())
}

// TestDirectedMirrorInvariant verifies succ/pred mirroring and the
// reverse view swapping the two.
func TestDirectedMirrorInvariant(t *testing.T) {
	d := core.NewDiGraph()
	mustAddEdge(t, d, NodeA, NodeB)
	mustAddEdge(t, d, NodeB, NodeC)

	for _, pair := range [][2]string{{NodeA, NodeB}, {NodeB, NodeC}} {
		u, v := pair[0], pair[1]
		succ, err := d.Successors(u)
		require.NoError(t, err)
		pred, err := d.Predecessors(v)
		require.NoError(t, err)
		require.Contains(t, succ, v)
		require.Contains(t, pred, u)
	}

	r, err := core.Reverse(d)
	require.NoError(t, err)
	for _, id := range d.Nodes() {
		want, perr := d.Predecessors(id)
		require.NoError(t, perr)
		got, serr := r.Successors(id)
		require.NoError(t, serr)
		require.Equal(t, want, got)
	}
}

// TestSubgraphCollapse verifies the chain short-cut: stacked plain
// subgraphs collapse onto the root, while a role-remapping layer in the
// middle blocks the collapse.
func TestSubgraphCollapse(t *testing.T) {
	d := core.NewDiGraph()
	mustAddEdge(t, d, NodeA, NodeB)
	mustAddEdge(t, d, NodeB, NodeC)
	mustAddEdge(t, d, NodeC, NodeD)

	inner := core.Subgraph(d, []string{NodeA, NodeB, NodeC})
	outer := core.Subgraph(inner, []string{NodeB, NodeC})
	require.Same(t, d, outer.Parent(), "plain chains collapse onto the root")
	require.Equal(t, []string{NodeB, NodeC}, outer.Nodes())

	rev, err := core.Reverse(inner)
	require.NoError(t, err)
	remapped := core.Subgraph(rev, []string{NodeB, NodeC})
	require.Same(t, rev, remapped.Parent(), "role remap blocks the collapse")

	// Filtered behavior survives the remap: B->C in d appears as C->B.
	edges := remapped.Edges()
	require.Len(t, edges, 1)
	require.Equal(t, NodeC, edges[0].U)
	require.Equal(t, NodeB, edges[0].V)
}

// TestReverseRoundTrip verifies Reverse(Reverse(g)) unwraps to g.
func TestReverseRoundTrip(t *testing.T) {
	d := core.NewDiGraph()
	mustAddEdge(t, d, NodeA, NodeB)

	r, err := core.Reverse(d)
	require.NoError(t, err)
	rr, err := core.Reverse(r)
	require.NoError(t, err)
	require.Same(t, d, rr)
}

// TestEndToEnd_UndirectedPath covers the plain build-and-query flow.
func TestEndToEnd_UndirectedPath(t *testing.T) {
	g := core.NewGraph()
	mustAddEdge(t, g, "1", "2")
	mustAddEdge(t, g, "2", "3")

	d, err := g.Degree("2")
	require.NoError(t, err)
	require.Equal(t, 2, d)
	require.Equal(t, []string{"1", "2", "3"}, g.Nodes())
	require.False(t, g.HasEdge("1", "3"))
}

// TestEndToEnd_ReverseView covers building a digraph from tuples,
// reading it through a reverse view, and round-tripping back.
func TestEndToEnd_ReverseView(t *testing.T) {
	d, err := core.FromEdges([][]string{{"0", "1"}, {"1", "2"}}, core.WithDirected(true))
	require.NoError(t, err)

	r, err := core.Reverse(d)
	require.NoError(t, err)
	var pairs [][2]string
	for _, e := range r.Edges() {
		pairs = append(pairs, [2]string{e.U, e.V})
	}
	require.Equal(t, [][2]string{{"1", "0"}, {"2", "1"}}, pairs)

	rr, err := core.Reverse(r)
	require.NoError(t, err)
	require.Equal(t, d.Edges(), rr.Edges())
}

// TestEndToEnd_ParallelEdges covers a consumer picking the lighter of
// two parallel multigraph edges by key.
func TestEndToEnd_ParallelEdges(t *testing.T) {
	mg := core.NewMultiGraph()
	mustAddEdge(t, mg, "0", "1", core.WithEdgeKey("a"), core.WithWeight(2))
	mustAddEdge(t, mg, "0", "1", core.WithEdgeKey("b"), core.WithWeight(1))

	best := ""
	bestW := 0.0
	for _, e := range mg.Edges() {
		w, ok := e.Attrs.Get(core.WeightKey)
		require.True(t, ok)
		if best == "" || w.(float64) < bestW {
			best, bestW = e.Key, w.(float64)
		}
	}
	require.Equal(t, "b", best)
	require.Equal(t, 1.0, bestW)
	require.Equal(t, 2, mg.Size())
}
