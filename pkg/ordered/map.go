// Package ordered provides a map that remembers insertion order.
//
// It is a thin layer over github.com/wk8/go-ordered-map. The zero value and
// a nil map are both safe to read.
package ordered

import orderedmap "github.com/wk8/go-ordered-map/v2"

// Map is a map whose iteration order is the order keys were first set.
// The zero value is ready to use.
type Map[K comparable, V any] struct {
	om *orderedmap.OrderedMap[K, V]
}

// New creates an empty map with room for size entries
func New[K comparable, V any](size int) *Map[K, V] {
	return &Map[K, V]{om: orderedmap.New[K, V](size)}
}

// Set stores v under k. Overwriting keeps the key's original position.
func (m *Map[K, V]) Set(k K, v V) {
	if m.om == nil {
		m.om = orderedmap.New[K, V]()
	}
	m.om.Set(k, v)
}

// Get returns the value stored under k
func (m *Map[K, V]) Get(k K) (V, bool) {
	if m == nil || m.om == nil {
		var zero V
		return zero, false
	}
	return m.om.Get(k)
}

// Has reports whether k is present
func (m *Map[K, V]) Has(k K) bool {
	_, ok := m.Get(k)
	return ok
}

// Len returns the number of entries
func (m *Map[K, V]) Len() int {
	if m == nil || m.om == nil {
		return 0
	}
	return m.om.Len()
}

// Keys returns the keys in insertion order
func (m *Map[K, V]) Keys() []K {
	if m.Len() == 0 {
		return nil
	}
	keys := make([]K, 0, m.Len())
	for p := m.om.Oldest(); p != nil; p = p.Next() {
		keys = append(keys, p.Key)
	}
	return keys
}

// Values returns the values in insertion order
func (m *Map[K, V]) Values() []V {
	if m.Len() == 0 {
		return nil
	}
	vals := make([]V, 0, m.Len())
	for p := m.om.Oldest(); p != nil; p = p.Next() {
		vals = append(vals, p.Value)
	}
	return vals
}

// Each calls fn for every entry in insertion order until fn returns false
func (m *Map[K, V]) Each(fn func(k K, v V) bool) {
	if m.Len() == 0 {
		return
	}
	for p := m.om.Oldest(); p != nil; p = p.Next() {
		if !fn(p.Key, p.Value) {
			return
		}
	}
}
