package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/xgraph/core"
)

// StoreSuite exercises the adjacency bookkeeping through the public
// surface on a fixture that every test rebuilds fresh.
type StoreSuite struct {
	suite.Suite
	g *core.Graph
}

func (s *StoreSuite) SetupTest() {
	// Undirected simple square with one diagonal:
	//   A───B
	//   │ ╲ │
	//   C───D
	s.g = core.NewGraph()
	for _, e := range [][2]string{{NodeA, NodeB}, {NodeA, NodeC}, {NodeC, NodeD}, {NodeB, NodeD}, {NodeA, NodeD}} {
		mustAddEdge(s.T(), s.g, e[0], e[1])
	}
}

func (s *StoreSuite) TestFixtureShape() {
	require := require.New(s.T())
	require.Equal(4, s.g.Order())
	require.Equal(5, s.g.Size())
	require.Equal([]string{NodeA, NodeB, NodeC, NodeD}, s.g.Nodes())
}

func (s *StoreSuite) TestMirrorConsistencyAfterRemoval() {
	require := require.New(s.T())
	require.NoError(s.g.RemoveEdge(NodeD, NodeA))

	nbrs, err := s.g.Neighbors(NodeA)
	require.NoError(err)
	require.Equal([]string{NodeB, NodeC}, nbrs)
	nbrs, err = s.g.Neighbors(NodeD)
	require.NoError(err)
	require.Equal([]string{NodeC, NodeB}, nbrs)
	require.Equal(4, s.g.Size())
}

func (s *StoreSuite) TestRemoveNodeLeavesNoDanglingRows() {
	require := require.New(s.T())
	require.NoError(s.g.RemoveNode(NodeA))

	require.Equal(2, s.g.Size())
	for _, id := range []string{NodeB, NodeC, NodeD} {
		nbrs, err := s.g.Neighbors(id)
		require.NoError(err)
		require.NotContains(nbrs, NodeA, "no adjacency row may still point at %s", NodeA)
	}
}

func (s *StoreSuite) TestDegreeSumTracksMutations() {
	require := require.New(s.T())
	sum := func() int {
		total := 0
		for _, id := range s.g.Nodes() {
			d, err := s.g.Degree(id)
			require.NoError(err)
			total += d
		}

		return total
	}

	require.Equal(2*s.g.Size(), sum())
	mustAddEdge(s.T(), s.g, NodeB, NodeB) // self-loop
	require.Equal(2*s.g.Size(), sum())
	require.NoError(s.g.RemoveNode(NodeD))
	require.Equal(2*s.g.Size(), sum())
}

func (s *StoreSuite) TestSubgraphReadsThroughFixture() {
	require := require.New(s.T())
	view := core.Subgraph(s.g, []string{NodeA, NodeB, NodeD})
	require.Equal(3, view.Size(), "A-B, B-D and A-D survive the cut")

	require.NoError(s.g.RemoveEdge(NodeA, NodeD))
	require.Equal(2, view.Size())
}

func TestStoreSuite(t *testing.T) {
	suite.Run(t, new(StoreSuite))
}
