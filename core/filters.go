// File: filters.go
// Role: Composable node/edge admission predicates used to build
//       restricted views without copying storage.
//
// A nil NodeFilter/EdgeFilter is the recognized allow-everything
// predicate: composition helpers special-case it in O(1) and without
// allocation, so stacking a no-op on a real filter costs exactly one
// check per evaluation.
//
// Every factory captures the caller's set by reference, never by
// snapshot: mutating the set after a view is built changes admission on
// the view's next read. That liveness is deliberate and independent of
// the parent graph's own mutations.

package core

// NodeFilter admits or rejects a node ID. nil admits everything.
type NodeFilter func(id string) bool

// EdgeFilter admits or rejects an edge observation. key is the
// parallel-edge key for multigraphs and "" for simple graphs.
// nil admits everything.
type EdgeFilter func(u, v, key string) bool

// ShowNodes admits exactly the members of set.
func ShowNodes(set map[string]struct{}) NodeFilter {
	return func(id string) bool {
		_, ok := set[id]

		return ok
	}
}

// HideNodes admits everything except the members of set.
func HideNodes(set map[string]struct{}) NodeFilter {
	return func(id string) bool {
		_, ok := set[id]

		return !ok
	}
}

// ShowDiEdges admits exactly the listed arcs, orientation-sensitive.
func ShowDiEdges(set map[[2]string]struct{}) EdgeFilter {
	return func(u, v, _ string) bool {
		_, ok := set[[2]string{u, v}]

		return ok
	}
}

// HideDiEdges rejects exactly the listed arcs, orientation-sensitive.
func HideDiEdges(set map[[2]string]struct{}) EdgeFilter {
	return func(u, v, _ string) bool {
		_, ok := set[[2]string{u, v}]

		return !ok
	}
}

// ShowEdges admits the listed undirected edges in either orientation.
func ShowEdges(set map[[2]string]struct{}) EdgeFilter {
	return func(u, v, _ string) bool {
		if _, ok := set[[2]string{u, v}]; ok {
			return true
		}
		_, ok := set[[2]string{v, u}]

		return ok
	}
}

// HideEdges rejects the listed undirected edges in either orientation.
func HideEdges(set map[[2]string]struct{}) EdgeFilter {
	show := ShowEdges(set)

	return func(u, v, key string) bool { return !show(u, v, key) }
}

// ShowMultiDiEdges admits exactly the listed keyed arcs.
func ShowMultiDiEdges(set map[[3]string]struct{}) EdgeFilter {
	return func(u, v, key string) bool {
		_, ok := set[[3]string{u, v, key}]

		return ok
	}
}

// HideMultiDiEdges rejects exactly the listed keyed arcs.
func HideMultiDiEdges(set map[[3]string]struct{}) EdgeFilter {
	show := ShowMultiDiEdges(set)

	return func(u, v, key string) bool { return !show(u, v, key) }
}

// ShowMultiEdges admits the listed keyed undirected edges in either
// orientation.
func ShowMultiEdges(set map[[3]string]struct{}) EdgeFilter {
	return func(u, v, key string) bool {
		if _, ok := set[[3]string{u, v, key}]; ok {
			return true
		}
		_, ok := set[[3]string{v, u, key}]

		return ok
	}
}

// HideMultiEdges rejects the listed keyed undirected edges in either
// orientation.
func HideMultiEdges(set map[[3]string]struct{}) EdgeFilter {
	show := ShowMultiEdges(set)

	return func(u, v, key string) bool { return !show(u, v, key) }
}

// andNode conjoins two node filters, skipping nil no-ops in O(1).
func andNode(a, b NodeFilter) NodeFilter {
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}

	return func(id string) bool { return a(id) && b(id) }
}

// andEdge conjoins two edge filters, skipping nil no-ops in O(1).
func andEdge(a, b EdgeFilter) EdgeFilter {
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}

	return func(u, v, key string) bool { return a(u, v, key) && b(u, v, key) }
}

// admitNode evaluates a possibly-nil node filter.
func admitNode(f NodeFilter, id string) bool { return f == nil || f(id) }

// admitEdge evaluates a possibly-nil edge filter.
func admitEdge(f EdgeFilter, u, v, key string) bool { return f == nil || f(u, v, key) }
