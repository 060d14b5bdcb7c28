// SPDX-License-Identifier: MIT

package lookup

import (
	"iter"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Ordered is a Lookup that remembers insertion order. All and MutAll visit
// entries oldest first, which makes sparse dumps and cache inspection
// deterministic. Entry pointers address the map's own pair storage.
type Ordered[K comparable, V any] struct {
	om *orderedmap.OrderedMap[K, V]
}

var _ Lookup[int, int] = (*Ordered[int, int])(nil)

// NewOrdered returns an empty Ordered lookup.
func NewOrdered[K comparable, V any]() *Ordered[K, V] {
	return &Ordered[K, V]{om: orderedmap.New[K, V]()}
}

// OrderedFactory returns a Factory producing empty Ordered lookups.
func OrderedFactory[K comparable, V any]() Factory[K, V] {
	return func() Lookup[K, V] { return NewOrdered[K, V]() }
}

// Len returns the number of entries.
func (l *Ordered[K, V]) Len() int { return l.om.Len() }

// Contains reports whether k is present.
func (l *Ordered[K, V]) Contains(k K) bool { return l.om.GetPair(k) != nil }

// Get returns the value stored for k.
func (l *Ordered[K, V]) Get(k K) (V, bool) { return l.om.Get(k) }

// Insert stores v for k; an existing key keeps its original position.
func (l *Ordered[K, V]) Insert(k K, v V) { l.om.Set(k, v) }

// Entry returns the stored value for k, inserting def() when absent.
func (l *Ordered[K, V]) Entry(k K, def func() V) *V {
	if p := l.om.GetPair(k); p != nil {
		return &p.Value
	}
	l.om.Set(k, def())

	return &l.om.GetPair(k).Value
}

// All yields entries in insertion order.
func (l *Ordered[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for p := l.om.Oldest(); p != nil; p = p.Next() {
			if !yield(p.Key, p.Value) {
				return
			}
		}
	}
}

// MutAll applies f to every stored value in insertion order.
func (l *Ordered[K, V]) MutAll(f func(k K, v *V)) {
	for p := l.om.Oldest(); p != nil; p = p.Next() {
		f(p.Key, &p.Value)
	}
}

// Keys returns the keys in insertion order.
func (l *Ordered[K, V]) Keys() []K {
	keys := make([]K, 0, l.om.Len())
	for p := l.om.Oldest(); p != nil; p = p.Next() {
		keys = append(keys, p.Key)
	}

	return keys
}

// Clear removes every entry.
func (l *Ordered[K, V]) Clear() { l.om = orderedmap.New[K, V]() }
