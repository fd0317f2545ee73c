// File: omap.go
// Role: Insertion-ordered string-keyed map used by all xgraph storage.
//
// Determinism:
//   - Keys() and iteration helpers follow insertion order exactly.
//
// Concurrency:
//   - None. Map is a plain value type; callers serialize access.

package omap

// Map is a mutable string-keyed map preserving insertion order.
// The zero value is ready to use.
type Map[V any] struct {
	keys []string     // insertion order; never reordered by Delete
	vals map[string]V // key -> value
}

// New returns an empty Map with capacity hints applied.
// Complexity: O(1).
func New[V any](capacity int) *Map[V] {
	return &Map[V]{
		keys: make([]string, 0, capacity),
		vals: make(map[string]V, capacity),
	}
}

// Len returns the number of stored keys.
// Complexity: O(1).
func (m *Map[V]) Len() int { return len(m.vals) }

// Has reports whether key is present.
// Complexity: O(1).
func (m *Map[V]) Has(key string) bool {
	_, ok := m.vals[key]

	return ok
}

// Get returns the value stored under key and whether it was present.
// Complexity: O(1).
func (m *Map[V]) Get(key string) (V, bool) {
	v, ok := m.vals[key]

	return v, ok
}

// Set stores value under key. A new key is appended at the end of the
// iteration order; an existing key keeps its position.
// Complexity: O(1) amortized.
func (m *Map[V]) Set(key string, value V) {
	if m.vals == nil {
		m.vals = make(map[string]V)
	}
	if _, ok := m.vals[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.vals[key] = value
}

// Delete removes key and reports whether it was present.
// Survivors keep their relative order.
// Complexity: O(n) for the positional splice.
func (m *Map[V]) Delete(key string) bool {
	if _, ok := m.vals[key]; !ok {
		return false
	}
	delete(m.vals, key)
	for i, k := range m.keys {
		if k == key {
			m.keys = append(m.keys[:i], m.keys[i+1:]...)
			break
		}
	}

	return true
}

// Keys returns a fresh slice of keys in insertion order.
// Complexity: O(n).
func (m *Map[V]) Keys() []string {
	out := make([]string, len(m.keys))
	copy(out, m.keys)

	return out
}

// Each invokes fn for every key/value pair in insertion order.
// fn returning false stops the walk early.
// Complexity: O(n) full walk.
func (m *Map[V]) Each(fn func(key string, value V) bool) {
	for _, k := range m.keys {
		if !fn(k, m.vals[k]) {
			return
		}
	}
}

// Clone returns a shallow copy: keys and the value table are fresh,
// values themselves are shared.
// Complexity: O(n).
func (m *Map[V]) Clone() *Map[V] {
	out := New[V](len(m.keys))
	out.keys = append(out.keys, m.keys...)
	for k, v := range m.vals {
		out.vals[k] = v
	}

	return out
}

// Clear removes every entry while keeping allocated capacity.
// Complexity: O(n).
func (m *Map[V]) Clear() {
	m.keys = m.keys[:0]
	clear(m.vals)
}
