package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/xgraph/core"
)

// TestIsEmpty treats edgeless graphs as empty even with nodes present.
func TestIsEmpty(t *testing.T) {
	g := core.NewGraph()
	require.True(t, core.IsEmpty(g))
	require.NoError(t, g.AddNode(NodeA))
	require.True(t, core.IsEmpty(g))
	mustAddEdge(t, g, NodeA, NodeB)
	require.False(t, core.IsEmpty(g))
}

// TestDensity verifies the directed/undirected formulas and the
// pointless-concept sentinel on the 0-node graph.
func TestDensity(t *testing.T) {
	g := core.NewGraph()
	_, err := core.Density(g)
	require.ErrorIs(t, err, core.ErrNullGraph)

	require.NoError(t, g.AddNode(NodeA))
	d, err := core.Density(g)
	require.NoError(t, err)
	require.Zero(t, d, "the single-node graph has density 0")

	// Undirected triangle: 2·3/(3·2) = 1.
	mustAddEdge(t, g, NodeA, NodeB)
	mustAddEdge(t, g, NodeB, NodeC)
	mustAddEdge(t, g, NodeC, NodeA)
	d, err = core.Density(g)
	require.NoError(t, err)
	require.Equal(t, 1.0, d)

	// Directed pair with one arc: 1/(2·1) = 0.5.
	dg := core.NewDiGraph()
	mustAddEdge(t, dg, NodeA, NodeB)
	d, err = core.Density(dg)
	require.NoError(t, err)
	require.Equal(t, 0.5, d)
}

// TestAverageDegree verifies 2m/n and the 0-node sentinel.
func TestAverageDegree(t *testing.T) {
	g := core.NewGraph()
	_, err := core.AverageDegree(g)
	require.ErrorIs(t, err, core.ErrNullGraph)

	mustAddEdge(t, g, NodeA, NodeB)
	mustAddEdge(t, g, NodeB, NodeC)
	avg, err := core.AverageDegree(g)
	require.NoError(t, err)
	require.InDelta(t, 4.0/3.0, avg, 1e-12)
}

// TestSelfLoops verifies loop detection and counting, parallel loops
// counted individually.
func TestSelfLoops(t *testing.T) {
	mg := core.NewMultiGraph()
	mustAddEdge(t, mg, NodeA, NodeA)
	mustAddEdge(t, mg, NodeA, NodeA)
	mustAddEdge(t, mg, NodeA, NodeB)
	mustAddEdge(t, mg, NodeC, NodeC)

	require.Equal(t, []string{NodeA, NodeC}, core.SelfLoopNodes(mg))
	require.Equal(t, 3, core.NumberOfSelfLoops(mg))

	g := core.NewGraph()
	mustAddEdge(t, g, NodeA, NodeB)
	require.Empty(t, core.SelfLoopNodes(g))
	require.Zero(t, core.NumberOfSelfLoops(g))
}

// TestCreateEmptyCopy verifies shape, attributes and nodes carry over
// without edges or aliasing.
func TestCreateEmptyCopy(t *testing.T) {
	d := core.NewDiGraph()
	d.Attrs().Set("name", "d")
	require.NoError(t, d.AddNode(NodeA, core.WithNodeAttr("tag", 1)))
	mustAddEdge(t, d, NodeA, NodeB)

	cp := core.CreateEmptyCopy(d)
	require.True(t, cp.Directed())
	require.Equal(t, []string{NodeA, NodeB}, cp.Nodes())
	require.Equal(t, 0, cp.Size())

	name, _ := cp.Attrs().Get("name")
	require.Equal(t, "d", name)

	orig, _ := d.NodeAttrs(NodeA)
	copied, err := cp.NodeAttrs(NodeA)
	require.NoError(t, err)
	require.NotSame(t, orig, copied)
	tag, _ := copied.Get("tag")
	require.Equal(t, 1, tag)
}

// TestDegrees verifies batch resolution in query order with fail-fast
// on unknown nodes.
func TestDegrees(t *testing.T) {
	g := core.NewGraph()
	mustAddEdge(t, g, NodeA, NodeB)
	mustAddEdge(t, g, NodeB, NodeC)

	got, err := core.Degrees(g, []string{NodeB, NodeA})
	require.NoError(t, err)
	require.Equal(t, []core.NodeDegree{{ID: NodeB, Degree: 2}, {ID: NodeA, Degree: 1}}, got)

	_, err = core.Degrees(g, []string{NodeA, NodeX})
	require.ErrorIs(t, err, core.ErrNodeNotFound)
}

// TestFunctionsOverViews verifies the helpers read through live views.
func TestFunctionsOverViews(t *testing.T) {
	g := core.NewGraph()
	mustAddEdge(t, g, NodeA, NodeB)
	mustAddEdge(t, g, NodeB, NodeC)
	mustAddEdge(t, g, NodeC, NodeC)

	view := core.Subgraph(g, []string{NodeA, NodeB})
	require.False(t, core.IsEmpty(view))
	require.Empty(t, core.SelfLoopNodes(view), "the loop's node is filtered out")

	d, err := core.Density(view)
	require.NoError(t, err)
	require.Equal(t, 1.0, d)
}
