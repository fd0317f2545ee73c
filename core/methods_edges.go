// File: methods_edges.go
// Role: Edge lifecycle and edge queries on Graph.
//
// Determinism:
//   - Edges() walks nodes in insertion order and each adjacency row in
//     insertion order; undirected graphs report every edge exactly once,
//     at its first encounter.

package core

import (
	"fmt"

	"github.com/katalvlaran/xgraph/attr"
)

// AddEdge upserts the edge (u,v), auto-creating absent endpoints with
// empty attributes, and returns the edge key ("" on simple graphs).
//
// Simple graphs: re-adding an existing edge overwrites only the
// supplied attribute keys (last write wins per key) and never
// duplicates the edge. Multigraphs: without WithEdgeKey the smallest
// unused non-negative integer key is assigned; an explicit duplicate
// key overwrites that parallel edge's attributes.
//
// Returns ErrEmptyNodeID, or ErrNotMultigraph when WithEdgeKey is used
// on a simple graph.
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(u, v string, opts ...EdgeOption) (string, error) {
	if u == "" || v == "" {
		return "", ErrEmptyNodeID
	}
	var cfg edgeConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.hasKey && !g.multi {
		return "", ErrNotMultigraph
	}

	return g.store.addEdge(u, v, cfg.key, cfg.hasKey, cfg.kv), nil
}

// AddEdgesFrom applies the given edge tuples in order. A tuple is
// {u, v} or, for multigraphs, {u, v, key}. The call fails fast at the
// first malformed tuple (ErrMalformedEdge on wrong arity,
// ErrNotMultigraph on a keyed tuple for a simple graph); tuples already
// applied are retained, never rolled back.
// Complexity: O(len(edges)).
func (g *Graph) AddEdgesFrom(edges [][]string) error {
	for i, e := range edges {
		var err error
		switch len(e) {
		case 2:
			_, err = g.AddEdge(e[0], e[1])
		case 3:
			if !g.multi {
				err = ErrNotMultigraph
			} else {
				_, err = g.AddEdge(e[0], e[1], WithEdgeKey(e[2]))
			}
		default:
			err = ErrMalformedEdge
		}
		if err != nil {
			return fmt.Errorf("core: edges[%d]: %w", i, err)
		}
	}

	return nil
}

// RemoveEdge deletes edge (u,v); on multigraphs the most recently
// inserted parallel edge is removed.
// Returns ErrEmptyNodeID or ErrEdgeNotFound.
// Complexity: O(1) plus row bookkeeping.
func (g *Graph) RemoveEdge(u, v string) error {
	if u == "" || v == "" {
		return ErrEmptyNodeID
	}

	return g.store.removeEdge(u, v)
}

// RemoveEdgeKey deletes the parallel edge (u,v,key). Multigraphs only.
// Returns ErrNotMultigraph, ErrEdgeNotFound or ErrKeyNotFound.
// Complexity: O(1) plus row bookkeeping.
func (g *Graph) RemoveEdgeKey(u, v, key string) error {
	if u == "" || v == "" {
		return ErrEmptyNodeID
	}
	if !g.multi {
		return ErrNotMultigraph
	}

	return g.store.removeEdgeKey(u, v, key)
}

// RemoveEdgesFrom removes edge tuples ({u,v} or {u,v,key}) in order,
// stopping at the first failure with prior removals retained.
// Complexity: O(len(edges)).
func (g *Graph) RemoveEdgesFrom(edges [][]string) error {
	for i, e := range edges {
		var err error
		switch len(e) {
		case 2:
			err = g.RemoveEdge(e[0], e[1])
		case 3:
			err = g.RemoveEdgeKey(e[0], e[1], e[2])
		default:
			err = ErrMalformedEdge
		}
		if err != nil {
			return fmt.Errorf("core: edges[%d]: %w", i, err)
		}
	}

	return nil
}

// HasEdge reports whether at least one edge (u,v) exists. Undirected
// graphs answer symmetrically.
// Complexity: O(1).
func (g *Graph) HasEdge(u, v string) bool {
	_, ok := g.store.slot(u, v)

	return ok
}

// HasEdgeKey reports whether the parallel edge (u,v,key) exists.
// Simple graphs report false for any key.
// Complexity: O(1).
func (g *Graph) HasEdgeKey(u, v, key string) bool {
	if !g.multi {
		return false
	}
	ed, ok := g.store.slot(u, v)

	return ok && ed.keyed.Has(key)
}

// Edges returns every edge in deterministic insertion order. Keys are
// populated for multigraphs; Attrs are the live shared maps.
// Complexity: O(V+E).
func (g *Graph) Edges() []Edge {
	out := make([]Edge, 0, g.store.size)
	seen := make(map[[2]string]struct{})
	for _, u := range g.store.nodes.Keys() {
		row, _ := g.store.succ.Get(u)
		row.Each(func(v string, ed *edgeData) bool {
			if !g.directed {
				pair := canonicalPair(u, v)
				if _, dup := seen[pair]; dup {
					return true
				}
				seen[pair] = struct{}{}
			}
			if g.multi {
				ed.keyed.Each(func(key string, m *attr.Map) bool {
					out = append(out, Edge{U: u, V: v, Key: key, Attrs: m})

					return true
				})
			} else {
				out = append(out, Edge{U: u, V: v, Attrs: ed.attrs})
			}

			return true
		})
	}

	return out
}

// canonicalPair orders an unordered endpoint pair for dedup bookkeeping.
func canonicalPair(u, v string) [2]string {
	if v < u {
		return [2]string{v, u}
	}

	return [2]string{u, v}
}

// EdgeAttrs returns the live attribute map of edge (u,v). The same map
// object is reachable from both endpoint slots (and, when directed, the
// predecessor index) — that identity is a contract.
// Returns ErrMultigraph on multigraphs (a key is required) and
// ErrEdgeNotFound when absent.
// Complexity: O(1).
func (g *Graph) EdgeAttrs(u, v string) (*attr.Map, error) {
	if g.multi {
		return nil, ErrMultigraph
	}
	ed, ok := g.store.slot(u, v)
	if !ok {
		return nil, ErrEdgeNotFound
	}

	return ed.attrs, nil
}

// EdgeAttrsKey returns the live attribute map of the parallel edge
// (u,v,key). Multigraphs only.
// Returns ErrNotMultigraph, ErrEdgeNotFound or ErrKeyNotFound.
// Complexity: O(1).
func (g *Graph) EdgeAttrsKey(u, v, key string) (*attr.Map, error) {
	if !g.multi {
		return nil, ErrNotMultigraph
	}
	ed, ok := g.store.slot(u, v)
	if !ok {
		return nil, ErrEdgeNotFound
	}
	m, ok := ed.keyed.Get(key)
	if !ok {
		return nil, ErrKeyNotFound
	}

	return m, nil
}

// EdgeKeys returns the parallel-edge keys of slot (u,v) in insertion
// order. Multigraphs only.
// Returns ErrNotMultigraph or ErrEdgeNotFound.
// Complexity: O(k).
func (g *Graph) EdgeKeys(u, v string) ([]string, error) {
	if !g.multi {
		return nil, ErrNotMultigraph
	}
	ed, ok := g.store.slot(u, v)
	if !ok {
		return nil, ErrEdgeNotFound
	}

	return ed.keyed.Keys(), nil
}

// Size returns the number of edges; parallel edges count individually
// and a self-loop counts once.
// Complexity: O(1).
func (g *Graph) Size() int { return g.store.size }

// WeightedSize sums the weightKey attribute over all edges, defaulting
// each edge to 1 when the attribute is absent or non-numeric.
// Complexity: O(V+E).
func (g *Graph) WeightedSize(weightKey string) float64 {
	var total float64
	for _, e := range g.Edges() {
		total += attr.WeightOr(e.Attrs, weightKey, 1)
	}

	return total
}
