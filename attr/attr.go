// File: attr.go
// Role: Attribute mapping type plus the small helper surface used by
//       weighted accessors (numeric coercion, weight-or-default).

package attr

import "github.com/katalvlaran/xgraph/omap"

// Map is an insertion-ordered attribute mapping (string keys, arbitrary
// values). The zero value is ready to use.
type Map = omap.Map[any]

// KV is one attribute assignment, used by variadic constructors.
type KV struct {
	Key   string
	Value any
}

// New builds a Map from the given assignments in order.
// Complexity: O(len(kv)).
func New(kv ...KV) *Map {
	m := omap.New[any](len(kv))
	for _, a := range kv {
		m.Set(a.Key, a.Value)
	}

	return m
}

// Clone returns an independent Map with the same keys in the same order.
// Values are shared (shallow); the map identity is broken, which is what
// Graph copies need to stop aliasing with their source.
// Complexity: O(n).
func Clone(m *Map) *Map {
	if m == nil {
		return New()
	}

	return m.Clone()
}

// Items flattens m into KV assignments in iteration order, the inverse
// of New. Copy helpers use it to rebuild independent maps.
// Complexity: O(n).
func Items(m *Map) []KV {
	if m == nil {
		return nil
	}
	out := make([]KV, 0, m.Len())
	m.Each(func(k string, v any) bool {
		out = append(out, KV{Key: k, Value: v})

		return true
	})

	return out
}

// Merge upserts every src entry into dst in src order: supplied keys
// overwrite, keys absent from src are left untouched.
// Complexity: O(len(src)).
func Merge(dst *Map, src []KV) {
	for _, a := range src {
		dst.Set(a.Key, a.Value)
	}
}

// Number coerces a stored attribute value to float64.
// Recognized: every built-in integer and float type.
// Complexity: O(1).
func Number(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	default:
		return 0, false
	}
}

// WeightOr reads key from m as a number, falling back to def when the
// key is absent or non-numeric. Degree and size accessors use def = 1 so
// every edge counts once by default.
// Complexity: O(1).
func WeightOr(m *Map, key string, def float64) float64 {
	if m == nil {
		return def
	}
	v, ok := m.Get(key)
	if !ok {
		return def
	}
	n, ok := Number(v)
	if !ok {
		return def
	}

	return n
}
