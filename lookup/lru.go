// SPDX-License-Identifier: MIT

package lookup

import (
	"errors"
	"fmt"
	"iter"

	lru "github.com/hashicorp/golang-lru/v2"
)

// ErrCapacity indicates a non-positive LRU capacity.
var ErrCapacity = errors.New("lookup: capacity must be > 0")

// LRU is a bounded Lookup that evicts the least recently used entry once
// Len reaches its capacity. Get and Entry refresh recency; Contains, All and
// MutAll do not. A pointer returned by Entry is detached from the lookup
// once its entry is evicted.
type LRU[K comparable, V any] struct {
	c    *lru.Cache[K, *V]
	size int
}

var (
	_ Lookup[int, int] = (*LRU[int, int])(nil)
	_ Evicting         = (*LRU[int, int])(nil)
)

// NewLRU returns an empty LRU lookup holding at most size entries.
func NewLRU[K comparable, V any](size int) (*LRU[K, V], error) {
	if size <= 0 {
		return nil, fmt.Errorf("NewLRU(%d): %w", size, ErrCapacity)
	}
	c, err := lru.New[K, *V](size)
	if err != nil {
		return nil, fmt.Errorf("NewLRU(%d): %w", size, err)
	}

	return &LRU[K, V]{c: c, size: size}, nil
}

// LRUFactory returns a Factory producing empty LRU lookups of the given
// capacity. It panics with ErrCapacity on a non-positive size so that a
// misconfigured cache fails where it is declared.
func LRUFactory[K comparable, V any](size int) Factory[K, V] {
	if size <= 0 {
		panic(fmt.Errorf("LRUFactory(%d): %w", size, ErrCapacity))
	}

	return func() Lookup[K, V] {
		l, err := NewLRU[K, V](size)
		if err != nil {
			panic(err)
		}

		return l
	}
}

// Cap returns the capacity.
func (l *LRU[K, V]) Cap() int { return l.size }

// Len returns the number of entries.
func (l *LRU[K, V]) Len() int { return l.c.Len() }

// Contains reports whether k is present without touching recency.
func (l *LRU[K, V]) Contains(k K) bool { return l.c.Contains(k) }

// Get returns the value stored for k and marks it recently used.
func (l *LRU[K, V]) Get(k K) (V, bool) {
	if p, ok := l.c.Get(k); ok {
		return *p, true
	}
	var zero V

	return zero, false
}

// Insert stores v for k, possibly evicting the oldest entry.
func (l *LRU[K, V]) Insert(k K, v V) {
	if p, ok := l.c.Get(k); ok {
		*p = v

		return
	}
	l.c.Add(k, &v)
}

// Entry returns the stored value for k, inserting def() when absent.
func (l *LRU[K, V]) Entry(k K, def func() V) *V {
	if p, ok := l.c.Get(k); ok {
		return p
	}
	v := def()
	p := &v
	l.c.Add(k, p)

	return p
}

// All yields entries from least to most recently used.
func (l *LRU[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, k := range l.c.Keys() {
			p, ok := l.c.Peek(k)
			if !ok {
				continue
			}
			if !yield(k, *p) {
				return
			}
		}
	}
}

// MutAll applies f to every stored value, least recently used first.
func (l *LRU[K, V]) MutAll(f func(k K, v *V)) {
	for _, k := range l.c.Keys() {
		if p, ok := l.c.Peek(k); ok {
			f(k, p)
		}
	}
}

// Clear removes every entry.
func (l *LRU[K, V]) Clear() { l.c.Purge() }
