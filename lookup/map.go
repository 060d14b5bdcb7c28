// SPDX-License-Identifier: MIT

package lookup

import "iter"

// Map is the default Lookup: a builtin map of boxed values, so Entry can
// hand out stable pointers. Iteration order is unspecified.
type Map[K comparable, V any] struct {
	m map[K]*V
}

var _ Lookup[int, int] = (*Map[int, int])(nil)

// NewMap returns an empty Map.
func NewMap[K comparable, V any]() *Map[K, V] {
	return &Map[K, V]{m: make(map[K]*V)}
}

// MapFactory returns a Factory producing empty Maps.
func MapFactory[K comparable, V any]() Factory[K, V] {
	return func() Lookup[K, V] { return NewMap[K, V]() }
}

// Len returns the number of entries.
func (l *Map[K, V]) Len() int { return len(l.m) }

// Contains reports whether k is present.
func (l *Map[K, V]) Contains(k K) bool {
	_, ok := l.m[k]

	return ok
}

// Get returns the value stored for k.
func (l *Map[K, V]) Get(k K) (V, bool) {
	if p, ok := l.m[k]; ok {
		return *p, true
	}
	var zero V

	return zero, false
}

// Insert stores v for k, overwriting any previous value in place.
func (l *Map[K, V]) Insert(k K, v V) {
	if p, ok := l.m[k]; ok {
		*p = v

		return
	}
	l.m[k] = &v
}

// Entry returns the stored value for k, inserting def() when absent.
func (l *Map[K, V]) Entry(k K, def func() V) *V {
	if p, ok := l.m[k]; ok {
		return p
	}
	v := def()
	p := &v
	l.m[k] = p

	return p
}

// All yields every entry.
func (l *Map[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for k, p := range l.m {
			if !yield(k, *p) {
				return
			}
		}
	}
}

// MutAll applies f to every stored value.
func (l *Map[K, V]) MutAll(f func(k K, v *V)) {
	for k, p := range l.m {
		f(k, p)
	}
}

// Clear removes every entry.
func (l *Map[K, V]) Clear() { clear(l.m) }
