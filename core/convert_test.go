package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/xgraph/core"
)

// TestFromEdges verifies tuple construction and its fail-fast surface.
func TestFromEdges(t *testing.T) {
	g, err := core.FromEdges([][]string{{NodeA, NodeB}, {NodeB, NodeC}})
	require.NoError(t, err)
	require.False(t, g.Directed())
	require.Equal(t, []string{NodeA, NodeB, NodeC}, g.Nodes())
	require.Equal(t, 2, g.Size())

	_, err = core.FromEdges([][]string{{NodeA}})
	require.ErrorIs(t, err, core.ErrMalformedEdge)

	mg, err := core.FromEdges([][]string{{NodeA, NodeB, "x"}}, core.WithMulti(true))
	require.NoError(t, err)
	require.True(t, mg.HasEdgeKey(NodeA, NodeB, "x"))
}

// TestFromAdjacency verifies dict-of-lists construction: deterministic
// outer order, empty lists kept as isolated nodes, mirrored listings
// deduplicated.
func TestFromAdjacency(t *testing.T) {
	g, err := core.FromAdjacency(map[string][]string{
		NodeB: {NodeA, NodeC},
		NodeA: {NodeB}, // mirror of B->A, upserts
		NodeD: {},
	})
	require.NoError(t, err)
	require.Equal(t, []string{NodeA, NodeB, NodeC, NodeD}, g.Nodes())
	require.Equal(t, 2, g.Size())
	require.True(t, g.HasNode(NodeD))

	d, err := core.FromAdjacency(map[string][]string{
		NodeA: {NodeB},
		NodeB: {NodeA},
	}, core.WithDirected(true))
	require.NoError(t, err)
	require.Equal(t, 2, d.Size(), "directed mirrors are distinct arcs")
}

// TestFromGraph_SameShape verifies the default copy breaks aliasing.
func TestFromGraph_SameShape(t *testing.T) {
	g := core.NewGraph()
	g.Attrs().Set("name", "g")
	mustAddEdge(t, g, NodeA, NodeB, core.WithWeight(2))

	cp := core.FromGraph(g)
	require.False(t, cp.Directed())
	require.Equal(t, g.Nodes(), cp.Nodes())
	name, _ := cp.Attrs().Get("name")
	require.Equal(t, "g", name)

	gm, _ := g.EdgeAttrs(NodeA, NodeB)
	cm, err := cp.EdgeAttrs(NodeA, NodeB)
	require.NoError(t, err)
	require.NotSame(t, gm, cm)
}

// TestFromGraph_UndirectedToDirected verifies edge splitting into two
// independent arcs.
func TestFromGraph_UndirectedToDirected(t *testing.T) {
	g := core.NewGraph()
	mustAddEdge(t, g, NodeA, NodeB, core.WithWeight(3))
	mustAddEdge(t, g, NodeC, NodeC)

	d := core.FromGraph(g, core.WithDirected(true))
	require.True(t, d.Directed())
	require.True(t, d.HasEdge(NodeA, NodeB))
	require.True(t, d.HasEdge(NodeB, NodeA))
	require.Equal(t, 3, d.Size(), "self-loop splits into one arc, not two")

	// The split arcs carry independent attribute copies.
	ab, err := d.EdgeAttrs(NodeA, NodeB)
	require.NoError(t, err)
	ba, err := d.EdgeAttrs(NodeB, NodeA)
	require.NoError(t, err)
	require.NotSame(t, ab, ba)
	ab.Set(core.WeightKey, 99.0)
	w, _ := ba.Get(core.WeightKey)
	require.Equal(t, 3.0, w)
}

// TestFromGraph_DirectedToUndirected verifies opposite arcs merge with
// last-write-wins attributes.
func TestFromGraph_DirectedToUndirected(t *testing.T) {
	d := core.NewDiGraph()
	mustAddEdge(t, d, NodeA, NodeB, core.WithWeight(1))
	mustAddEdge(t, d, NodeB, NodeA, core.WithWeight(9))

	g := core.FromGraph(d, core.WithDirected(false))
	require.False(t, g.Directed())
	require.Equal(t, 1, g.Size())
	m, err := g.EdgeAttrs(NodeA, NodeB)
	require.NoError(t, err)
	w, _ := m.Get(core.WeightKey)
	require.Equal(t, 9.0, w, "later arc's payload wins")
}

// TestFromGraph_MultiToSimple verifies parallel edges collapse into one
// slot with payloads merged in key order.
func TestFromGraph_MultiToSimple(t *testing.T) {
	mg := core.NewMultiGraph()
	mustAddEdge(t, mg, NodeA, NodeB, core.WithEdgeKey("a"), core.WithWeight(2), core.WithEdgeAttr("color", "red"))
	mustAddEdge(t, mg, NodeA, NodeB, core.WithEdgeKey("b"), core.WithWeight(7))

	g := core.FromGraph(mg, core.WithMulti(false))
	require.False(t, g.Multigraph())
	require.Equal(t, 1, g.Size())

	m, err := g.EdgeAttrs(NodeA, NodeB)
	require.NoError(t, err)
	w, _ := m.Get(core.WeightKey)
	require.Equal(t, 7.0, w, "later key's payload wins per attribute")
	c, ok := m.Get("color")
	require.True(t, ok, "untouched attributes of earlier keys survive the merge")
	require.Equal(t, "red", c)
}

// TestFromGraph_SimpleToMulti verifies plain edges land under auto key.
func TestFromGraph_SimpleToMulti(t *testing.T) {
	g := core.NewGraph()
	mustAddEdge(t, g, NodeA, NodeB)

	mg := core.FromGraph(g, core.WithMulti(true))
	require.True(t, mg.Multigraph())
	keys, err := mg.EdgeKeys(NodeA, NodeB)
	require.NoError(t, err)
	require.Equal(t, []string{"0"}, keys)
}

// TestFromGraph_MaterializesView verifies converting straight from a
// filtered view.
func TestFromGraph_MaterializesView(t *testing.T) {
	d := core.NewDiGraph()
	mustAddEdge(t, d, NodeA, NodeB)
	mustAddEdge(t, d, NodeB, NodeC)

	g := core.FromGraph(core.Subgraph(d, []string{NodeA, NodeB}), core.WithDirected(false))
	require.False(t, g.Directed())
	require.Equal(t, []string{NodeA, NodeB}, g.Nodes())
	require.Equal(t, 1, g.Size())
}
