// Package attr defines the attribute mapping carried by graphs, nodes
// and edges.
//
// An attr.Map is an insertion-ordered string→any mapping. One Map object
// is shared, by pointer, between every adjacency slot that records the
// same edge: both endpoint slots of an undirected edge, and the
// successor and predecessor slots of a directed edge. Mutating it from
// any side is visible from every other — that sharing is the mechanism
// that keeps graph views live, and is an explicit contract of this
// package, not an accident.
//
// Merge implements upsert semantics: supplied keys overwrite, absent
// keys survive. This is the attribute policy of AddNode/AddEdge
// throughout core.
package attr
