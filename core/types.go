// File: types.go
// Role: Sentinel errors, functional options, the Edge value and the
//       GraphLike read contract shared by Graph and every view.

package core

import (
	"errors"

	"github.com/katalvlaran/xgraph/attr"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyNodeID indicates an operation was given an empty node ID.
	ErrEmptyNodeID = errors.New("core: node ID is empty")

	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrKeyNotFound indicates a multigraph operation referenced a
	// non-existent parallel-edge key for an existing (u,v) slot.
	ErrKeyNotFound = errors.New("core: edge key not found")

	// ErrNotDirected indicates a directed-only operation (Successors,
	// Predecessors, Reverse, In/OutDegree) on an undirected graph.
	ErrNotDirected = errors.New("core: graph is not directed")

	// ErrDirected indicates an undirected-only operation on a directed graph.
	ErrDirected = errors.New("core: graph is directed")

	// ErrNotMultigraph indicates a keyed multi-edge operation on a simple graph.
	ErrNotMultigraph = errors.New("core: graph is not a multigraph")

	// ErrMultigraph indicates a simple-graph operation that needs an edge
	// key was invoked on a multigraph (use the *Key variant).
	ErrMultigraph = errors.New("core: graph is a multigraph, edge key required")

	// ErrMalformedEdge indicates a bulk edge tuple of the wrong arity.
	ErrMalformedEdge = errors.New("core: malformed edge tuple")

	// ErrNullGraph indicates a quantity undefined on the 0-node graph.
	ErrNullGraph = errors.New("core: operation undefined on the null graph")
)

// Edge is one edge observation returned by enumeration surfaces.
// Key is the parallel-edge key for multigraphs and "" for simple graphs.
// Attrs is the live, shared attribute map — mutations through it are
// visible from both endpoints and every view.
type Edge struct {
	U, V  string
	Key   string
	Attrs *attr.Map
}

// NodeDegree pairs a node ID with its degree, preserving query order.
type NodeDegree struct {
	ID     string
	Degree int
}

// GraphOption configures a Graph before creation. Flags are immutable
// once the constructor returns.
type GraphOption func(g *Graph)

// WithDirected sets edge directedness (true = directed).
func WithDirected(directed bool) GraphOption {
	return func(g *Graph) { g.directed = directed }
}

// WithMulti sets whether parallel keyed edges between the same
// endpoints are permitted.
func WithMulti(multi bool) GraphOption {
	return func(g *Graph) { g.multi = multi }
}

// WithAttrs seeds graph-level attributes in the given order.
func WithAttrs(kv ...attr.KV) GraphOption {
	return func(g *Graph) { attr.Merge(g.attrs, kv) }
}

// nodeConfig collects per-node options before application.
type nodeConfig struct {
	kv []attr.KV
}

// NodeOption configures a single AddNode call.
type NodeOption func(*nodeConfig)

// WithNodeAttr attaches one attribute to the node being added.
func WithNodeAttr(key string, value any) NodeOption {
	return func(c *nodeConfig) { c.kv = append(c.kv, attr.KV{Key: key, Value: value}) }
}

// WithNodeAttrs attaches attributes to the node being added, in order.
func WithNodeAttrs(kv ...attr.KV) NodeOption {
	return func(c *nodeConfig) { c.kv = append(c.kv, kv...) }
}

// edgeConfig collects per-edge options before application.
type edgeConfig struct {
	key    string
	hasKey bool
	kv     []attr.KV
}

// EdgeOption configures a single AddEdge call.
type EdgeOption func(*edgeConfig)

// WithEdgeAttr attaches one attribute to the edge being added.
func WithEdgeAttr(key string, value any) EdgeOption {
	return func(c *edgeConfig) { c.kv = append(c.kv, attr.KV{Key: key, Value: value}) }
}

// WithEdgeAttrs attaches attributes to the edge being added, in order.
func WithEdgeAttrs(kv ...attr.KV) EdgeOption {
	return func(c *edgeConfig) { c.kv = append(c.kv, kv...) }
}

// WithWeight attaches the conventional "weight" attribute.
func WithWeight(w float64) EdgeOption {
	return func(c *edgeConfig) { c.kv = append(c.kv, attr.KV{Key: WeightKey, Value: w}) }
}

// WithEdgeKey fixes the parallel-edge key explicitly instead of
// auto-assignment. Multigraphs only: AddEdge rejects it with
// ErrNotMultigraph on simple graphs.
func WithEdgeKey(key string) EdgeOption {
	return func(c *edgeConfig) {
		c.key = key
		c.hasKey = true
	}
}

// WeightKey is the conventional attribute key read by weighted accessors.
const WeightKey = "weight"

// GraphLike is the read contract shared by *Graph and every view.
// Algorithms and serializers should accept GraphLike and work
// polymorphically over graphs and live views.
type GraphLike interface {
	// Shape flags (immutable per instance).
	Directed() bool
	Multigraph() bool

	// Attrs returns the live graph-level attribute map.
	Attrs() *attr.Map

	// Node surface. Nodes() follows insertion order.
	Order() int
	HasNode(id string) bool
	Nodes() []string
	NodeAttrs(id string) (*attr.Map, error)

	// Edge surface. Edges() follows insertion order; undirected graphs
	// report each edge once.
	Size() int
	WeightedSize(weightKey string) float64
	HasEdge(u, v string) bool
	HasEdgeKey(u, v, key string) bool
	Edges() []Edge
	EdgeAttrs(u, v string) (*attr.Map, error)
	EdgeAttrsKey(u, v, key string) (*attr.Map, error)
	EdgeKeys(u, v string) ([]string, error)

	// Adjacency surface. Neighbors follows adjacency insertion order;
	// for directed graphs it enumerates successors.
	Neighbors(id string) ([]string, error)
	Successors(id string) ([]string, error)
	Predecessors(id string) ([]string, error)
	AdjacencyList() map[string][]string

	// Degree surface. Undirected self-loops count twice; directed
	// self-loops contribute one in and one out.
	Degree(id string) (int, error)
	InDegree(id string) (int, error)
	OutDegree(id string) (int, error)
	WeightedDegree(id, weightKey string) (float64, error)
}

// Contract anchors: every graph and view kind satisfies GraphLike.
var (
	_ GraphLike = (*Graph)(nil)
	_ GraphLike = (*SubgraphView)(nil)
	_ GraphLike = (*ReverseView)(nil)
	_ GraphLike = (*DirectedView)(nil)
	_ GraphLike = (*UndirectedView)(nil)
)
