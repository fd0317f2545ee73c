// File: methods_adjacent.go
// Role: Adjacency and degree queries on Graph.
//
// Degree policy (classic convention):
//   - Undirected: every incident edge counts once, a self-loop twice,
//     so sum-of-degrees == 2 × Size() always holds.
//   - Directed: Degree = InDegree + OutDegree; a directed self-loop
//     contributes one to each.
//   - Weighted variants sum the weight attribute with a default of 1
//     per edge, self-loop weight counted twice (undirected).

package core

import "github.com/katalvlaran/xgraph/attr"

// Neighbors returns the adjacent node IDs of id in adjacency insertion
// order. For directed graphs these are the successors.
// Returns ErrEmptyNodeID or ErrNodeNotFound.
// Complexity: O(deg(v)).
func (g *Graph) Neighbors(id string) ([]string, error) {
	if id == "" {
		return nil, ErrEmptyNodeID
	}
	out, ok := g.store.neighbors(id)
	if !ok {
		return nil, ErrNodeNotFound
	}

	return out, nil
}

// Successors returns the out-neighbors of id. Directed graphs only.
// Returns ErrNotDirected, ErrEmptyNodeID or ErrNodeNotFound.
// Complexity: O(deg+(v)).
func (g *Graph) Successors(id string) ([]string, error) {
	if !g.directed {
		return nil, ErrNotDirected
	}

	return g.Neighbors(id)
}

// Predecessors returns the in-neighbors of id in insertion order.
// Directed graphs only.
// Returns ErrNotDirected, ErrEmptyNodeID or ErrNodeNotFound.
// Complexity: O(deg-(v)).
func (g *Graph) Predecessors(id string) ([]string, error) {
	if !g.directed {
		return nil, ErrNotDirected
	}
	if id == "" {
		return nil, ErrEmptyNodeID
	}
	out, ok := g.store.predecessors(id)
	if !ok {
		return nil, ErrNodeNotFound
	}

	return out, nil
}

// AdjacencyList exposes a flattened node -> neighbor-IDs mapping, every
// node present, each slice in adjacency insertion order (successors for
// directed graphs, multigraph neighbors listed once per slot).
// Complexity: O(V+E).
func (g *Graph) AdjacencyList() map[string][]string {
	out := make(map[string][]string, g.store.nodes.Len())
	for _, u := range g.store.nodes.Keys() {
		nbrs, _ := g.store.neighbors(u)
		out[u] = nbrs
	}

	return out
}

// Degree returns the degree of id under the package degree policy.
// Complexity: O(deg(v)).
func (g *Graph) Degree(id string) (int, error) {
	if id == "" {
		return 0, ErrEmptyNodeID
	}
	row, ok := g.store.succ.Get(id)
	if !ok {
		return 0, ErrNodeNotFound
	}

	deg := 0
	row.Each(func(v string, ed *edgeData) bool {
		c := ed.count()
		deg += c
		if !g.directed && v == id {
			deg += c // undirected self-loop counts twice
		}

		return true
	})
	if g.directed {
		prow, _ := g.store.pred.Get(id)
		prow.Each(func(_ string, ed *edgeData) bool {
			deg += ed.count()

			return true
		})
	}

	return deg, nil
}

// InDegree returns the number of incoming edges. Directed graphs only.
// Complexity: O(deg-(v)).
func (g *Graph) InDegree(id string) (int, error) {
	if !g.directed {
		return 0, ErrNotDirected
	}
	if id == "" {
		return 0, ErrEmptyNodeID
	}
	row, ok := g.store.pred.Get(id)
	if !ok {
		return 0, ErrNodeNotFound
	}
	deg := 0
	row.Each(func(_ string, ed *edgeData) bool {
		deg += ed.count()

		return true
	})

	return deg, nil
}

// OutDegree returns the number of outgoing edges. Directed graphs only.
// Complexity: O(deg+(v)).
func (g *Graph) OutDegree(id string) (int, error) {
	if !g.directed {
		return 0, ErrNotDirected
	}
	if id == "" {
		return 0, ErrEmptyNodeID
	}
	row, ok := g.store.succ.Get(id)
	if !ok {
		return 0, ErrNodeNotFound
	}
	deg := 0
	row.Each(func(_ string, ed *edgeData) bool {
		deg += ed.count()

		return true
	})

	return deg, nil
}

// WeightedDegree sums the weightKey attribute over the incident edges,
// defaulting absent weights to 1; undirected self-loop weight counts
// twice and, on directed graphs, incoming and outgoing sums combine.
// Complexity: O(deg(v)).
func (g *Graph) WeightedDegree(id, weightKey string) (float64, error) {
	if id == "" {
		return 0, ErrEmptyNodeID
	}
	row, ok := g.store.succ.Get(id)
	if !ok {
		return 0, ErrNodeNotFound
	}

	var total float64
	add := func(v string, ed *edgeData, loopTwice bool) {
		w := slotWeight(ed, weightKey)
		total += w
		if loopTwice && v == id {
			total += w
		}
	}
	row.Each(func(v string, ed *edgeData) bool {
		add(v, ed, !g.directed)

		return true
	})
	if g.directed {
		prow, _ := g.store.pred.Get(id)
		prow.Each(func(v string, ed *edgeData) bool {
			add(v, ed, false)

			return true
		})
	}

	return total, nil
}

// slotWeight sums the weight attribute across a slot's parallel edges.
func slotWeight(ed *edgeData, weightKey string) float64 {
	if ed.keyed == nil {
		return attr.WeightOr(ed.attrs, weightKey, 1)
	}
	var w float64
	ed.keyed.Each(func(_ string, m *attr.Map) bool {
		w += attr.WeightOr(m, weightKey, 1)

		return true
	})

	return w
}
