// File: store.go
// Role: The adjacency store — single source of truth for the node
//       catalog, node attributes, edge attributes and topology.
//
// Layout:
//   - nodes: id -> *attr.Map (node attributes), insertion ordered.
//   - succ:  u -> (v -> *edgeData), insertion ordered at both levels.
//   - pred:  directed stores only; mirrors the SAME *edgeData pointers
//     keyed the opposite way, so successor and predecessor slots can
//     never diverge.
//
// Undirected stores mirror inside succ itself: slot (u,v) and slot
// (v,u) hold one shared *edgeData. A self-loop occupies a single slot.

package core

import (
	"strconv"

	"github.com/katalvlaran/xgraph/attr"
	"github.com/katalvlaran/xgraph/omap"
)

// adjRow is one adjacency row: neighbor -> payload.
type adjRow = omap.Map[*edgeData]

// edgeData is the payload stored at an adjacency slot. Exactly one of
// the two fields is set: attrs for simple graphs, keyed for multigraphs.
// The pointer is shared by every slot that records the same edge.
type edgeData struct {
	attrs *attr.Map            // simple graphs: the edge attribute map
	keyed *omap.Map[*attr.Map] // multigraphs: key -> attribute map
}

// count returns how many parallel edges the slot carries.
func (ed *edgeData) count() int {
	if ed.keyed != nil {
		return ed.keyed.Len()
	}

	return 1
}

// adjacencyStore owns all graph storage. Methods assume non-empty,
// caller-validated node IDs.
type adjacencyStore struct {
	directed bool
	multi    bool

	nodes *omap.Map[*attr.Map]
	succ  *omap.Map[*adjRow]
	pred  *omap.Map[*adjRow] // nil unless directed

	size int // edge count; parallel edges counted individually
}

func newStore(directed, multi bool) *adjacencyStore {
	s := &adjacencyStore{
		directed: directed,
		multi:    multi,
		nodes:    omap.New[*attr.Map](0),
		succ:     omap.New[*adjRow](0),
	}
	if directed {
		s.pred = omap.New[*adjRow](0)
	}

	return s
}

// ensureNode registers id if absent (empty attributes, empty rows) and
// returns its attribute map.
// Complexity: O(1) amortized.
func (s *adjacencyStore) ensureNode(id string) *attr.Map {
	if m, ok := s.nodes.Get(id); ok {
		return m
	}
	m := attr.New()
	s.nodes.Set(id, m)
	s.succ.Set(id, omap.New[*edgeData](0))
	if s.directed {
		s.pred.Set(id, omap.New[*edgeData](0))
	}

	return m
}

// addNode upserts: inserts id if absent, then merges the supplied
// attribute keys over whatever is already stored.
func (s *adjacencyStore) addNode(id string, kv []attr.KV) {
	attr.Merge(s.ensureNode(id), kv)
}

// removeNode deletes the node, its attribute entry, and every incident
// edge from all index sides.
// Complexity: O(deg(v)) plus row bookkeeping.
func (s *adjacencyStore) removeNode(id string) error {
	if !s.nodes.Has(id) {
		return ErrNodeNotFound
	}

	out, _ := s.succ.Get(id)
	if s.directed {
		// Outgoing: drop the mirror slot in each target's predecessor row.
		out.Each(func(v string, ed *edgeData) bool {
			s.size -= ed.count()
			if row, ok := s.pred.Get(v); ok {
				row.Delete(id)
			}

			return true
		})
		// Incoming: drop the mirror slot in each source's successor row.
		// The self-loop was already counted in the outgoing pass.
		in, _ := s.pred.Get(id)
		in.Each(func(u string, ed *edgeData) bool {
			if u != id {
				s.size -= ed.count()
				if row, ok := s.succ.Get(u); ok {
					row.Delete(id)
				}
			}

			return true
		})
		s.pred.Delete(id)
	} else {
		out.Each(func(v string, ed *edgeData) bool {
			s.size -= ed.count()
			if v != id {
				if row, ok := s.succ.Get(v); ok {
					row.Delete(id)
				}
			}

			return true
		})
	}
	s.succ.Delete(id)
	s.nodes.Delete(id)

	return nil
}

// slot returns the payload recorded under succ[u][v].
func (s *adjacencyStore) slot(u, v string) (*edgeData, bool) {
	row, ok := s.succ.Get(u)
	if !ok {
		return nil, false
	}

	return row.Get(v)
}

// link records ed under succ[u][v] and the appropriate mirror slot.
func (s *adjacencyStore) link(u, v string, ed *edgeData) {
	row, _ := s.succ.Get(u)
	row.Set(v, ed)
	if s.directed {
		prow, _ := s.pred.Get(v)
		prow.Set(u, ed)
	} else if u != v {
		mrow, _ := s.succ.Get(v)
		mrow.Set(u, ed)
	}
}

// unlink removes the (u,v) slot from every index side.
func (s *adjacencyStore) unlink(u, v string) {
	if row, ok := s.succ.Get(u); ok {
		row.Delete(v)
	}
	if s.directed {
		if prow, ok := s.pred.Get(v); ok {
			prow.Delete(u)
		}
	} else if u != v {
		if mrow, ok := s.succ.Get(v); ok {
			mrow.Delete(u)
		}
	}
}

// freeKey picks the smallest non-negative integer (as its decimal
// string) not already used for the slot.
func freeKey(keyed *omap.Map[*attr.Map]) string {
	for n := 0; ; n++ {
		k := strconv.Itoa(n)
		if !keyed.Has(k) {
			return k
		}
	}
}

// addEdge inserts or upserts the edge (u,v), auto-creating absent
// endpoints. Simple graphs ignore key/explicit and upsert the single
// attribute map (last write wins per key). Multigraphs insert under the
// explicit key, or the smallest unused integer key when explicit is
// false; an existing key upserts that parallel edge's attributes.
// Returns the effective key ("" for simple graphs).
// Complexity: O(1) amortized (O(k) worst case for auto key probing).
func (s *adjacencyStore) addEdge(u, v string, key string, explicit bool, kv []attr.KV) string {
	s.ensureNode(u)
	s.ensureNode(v)

	ed, ok := s.slot(u, v)
	if !s.multi {
		if !ok {
			ed = &edgeData{attrs: attr.New()}
			s.link(u, v, ed)
			s.size++
		}
		attr.Merge(ed.attrs, kv)

		return ""
	}

	if !ok {
		ed = &edgeData{keyed: omap.New[*attr.Map](1)}
		s.link(u, v, ed)
	}
	if !explicit {
		key = freeKey(ed.keyed)
	}
	m, exists := ed.keyed.Get(key)
	if !exists {
		m = attr.New()
		ed.keyed.Set(key, m)
		s.size++
	}
	attr.Merge(m, kv)

	return key
}

// removeEdge deletes edge (u,v). On a multigraph the most recently
// inserted parallel edge goes; the slot disappears once empty.
func (s *adjacencyStore) removeEdge(u, v string) error {
	ed, ok := s.slot(u, v)
	if !ok {
		return ErrEdgeNotFound
	}
	if s.multi {
		keys := ed.keyed.Keys()
		ed.keyed.Delete(keys[len(keys)-1])
		s.size--
		if ed.keyed.Len() == 0 {
			s.unlink(u, v)
		}

		return nil
	}
	s.unlink(u, v)
	s.size--

	return nil
}

// removeEdgeKey deletes the parallel edge stored under key.
func (s *adjacencyStore) removeEdgeKey(u, v, key string) error {
	ed, ok := s.slot(u, v)
	if !ok {
		return ErrEdgeNotFound
	}
	if !ed.keyed.Delete(key) {
		return ErrKeyNotFound
	}
	s.size--
	if ed.keyed.Len() == 0 {
		s.unlink(u, v)
	}

	return nil
}

// neighbors returns the adjacency row keys of id: successors for
// directed stores, all adjacent nodes for undirected ones.
func (s *adjacencyStore) neighbors(id string) ([]string, bool) {
	row, ok := s.succ.Get(id)
	if !ok {
		return nil, false
	}

	return row.Keys(), true
}

// predecessors returns the predecessor row keys (directed stores only).
func (s *adjacencyStore) predecessors(id string) ([]string, bool) {
	row, ok := s.pred.Get(id)
	if !ok {
		return nil, false
	}

	return row.Keys(), true
}
