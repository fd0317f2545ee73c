// File: methods_nodes.go
// Role: Node lifecycle and node queries on Graph.
//
// Determinism:
//   - Nodes() returns IDs in insertion order, stable across removals.

package core

import (
	"fmt"

	"github.com/katalvlaran/xgraph/attr"
)

// AddNode upserts a node: inserts id if absent, otherwise merges the
// supplied attribute keys over the existing ones (no error, nothing is
// cleared). This idempotence is a documented design choice, not error
// suppression.
// Returns ErrEmptyNodeID for an empty id.
// Complexity: O(1) amortized.
func (g *Graph) AddNode(id string, opts ...NodeOption) error {
	if id == "" {
		return ErrEmptyNodeID
	}
	var cfg nodeConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	g.store.addNode(id, cfg.kv)

	return nil
}

// AddNodesFrom upserts the given ids in order. The call fails fast on
// the first invalid id; nodes already applied stay (no rewind).
// Complexity: O(len(ids)).
func (g *Graph) AddNodesFrom(ids []string) error {
	for i, id := range ids {
		if err := g.AddNode(id); err != nil {
			return fmt.Errorf("core: nodes[%d]: %w", i, err)
		}
	}

	return nil
}

// RemoveNode deletes the node, its attribute entry, and every incident
// edge from all index sides.
// Returns ErrEmptyNodeID or ErrNodeNotFound.
// Complexity: O(deg(v)).
func (g *Graph) RemoveNode(id string) error {
	if id == "" {
		return ErrEmptyNodeID
	}

	return g.store.removeNode(id)
}

// RemoveNodesFrom removes the given ids in order, stopping at the first
// failure with prior removals retained.
// Complexity: O(Σ deg(v)).
func (g *Graph) RemoveNodesFrom(ids []string) error {
	for i, id := range ids {
		if err := g.RemoveNode(id); err != nil {
			return fmt.Errorf("core: nodes[%d] %q: %w", i, id, err)
		}
	}

	return nil
}

// HasNode reports whether id exists (empty id is absent by definition).
// Complexity: O(1).
func (g *Graph) HasNode(id string) bool {
	return id != "" && g.store.nodes.Has(id)
}

// Nodes returns all node IDs in insertion order.
// Complexity: O(V).
func (g *Graph) Nodes() []string { return g.store.nodes.Keys() }

// Order returns the number of nodes.
// Complexity: O(1).
func (g *Graph) Order() int { return g.store.nodes.Len() }

// NodeAttrs returns the live attribute map of id. The pointer is shared
// with the store: writes through it are immediately visible everywhere,
// including through views.
// Returns ErrNodeNotFound for an unknown id.
// Complexity: O(1).
func (g *Graph) NodeAttrs(id string) (*attr.Map, error) {
	m, ok := g.store.nodes.Get(id)
	if !ok {
		return nil, ErrNodeNotFound
	}

	return m, nil
}
