// SPDX-License-Identifier: MIT

package variant

import (
	"iter"

	"github.com/katalvlaran/lvseq/card"
	"github.com/katalvlaran/lvseq/dim"
	"github.com/katalvlaran/lvseq/lookup"
	"github.com/katalvlaran/lvseq/seq"
)

// Cached memoizes the elements of an inner sequence.
//
// The first At for an index asks the inner sequence and stores the result;
// later reads return the stored value without consulting the inner one.
// A stored entry is authoritative until Clear (or eviction, for a bounded
// lookup). At mutates the cache, which is why Cached is only used through
// a pointer and must not be shared between goroutines.
type Cached[T any] struct {
	inner   seq.Seq[T]
	cache   lookup.Lookup[dim.Idx, T]
	c       card.Cardinality // nil: use inner's
	factory lookup.Factory[dim.Idx, T]
}

var _ seq.Seq[int] = (*Cached[int])(nil)

// NewCached wraps inner with an empty cache. Panics with ErrNilInner on nil.
func NewCached[T any](inner seq.Seq[T], opts ...Option[T]) *Cached[T] {
	if inner == nil {
		fail("NewCached", ErrNilInner)
	}
	o := gatherOptions(opts...)

	return &Cached[T]{inner: inner, cache: o.factory(), factory: o.factory}
}

// Inner returns the wrapped sequence.
func (s *Cached[T]) Inner() seq.Seq[T] { return s.inner }

// Lookup exposes the cache.
func (s *Cached[T]) Lookup() lookup.Lookup[dim.Idx, T] { return s.cache }

// Len returns the number of cached entries.
func (s *Cached[T]) Len() int { return s.cache.Len() }

// Clear discards every cached entry. The inner sequence is untouched.
func (s *Cached[T]) Clear() { s.cache.Clear() }

// Fresh returns a Cached over the same inner sequence and bounds with its
// own empty cache built by the same factory.
func (s *Cached[T]) Fresh() *Cached[T] {
	return &Cached[T]{inner: s.inner, cache: s.factory(), c: s.c, factory: s.factory}
}

// Bounded returns a Cached with cardinality c that shares the cache of s.
func (s *Cached[T]) Bounded(c card.Cardinality) *Cached[T] {
	mustBounds("Cached.Bounded", c, s.Dim())
	b := *s
	b.c = c

	return &b
}

// WithRectBounds is Bounded(card.Rect(lens...)).
func (s *Cached[T]) WithRectBounds(lens ...int) *Cached[T] { return s.Bounded(card.Rect(lens...)) }

// WithVariableBounds is Bounded(card.Var(counts)).
func (s *Cached[T]) WithVariableBounds(counts card.Counts) *Cached[T] {
	return s.Bounded(card.Var(counts))
}

// Dim returns the inner dimension.
func (s *Cached[T]) Dim() dim.Dim { return s.inner.Dim() }

// Card returns the attached cardinality, falling back to the inner one.
func (s *Cached[T]) Card(sub dim.Idx) int {
	if s.c != nil {
		return s.c.Card(sub)
	}

	return s.inner.Card(sub)
}

// At returns the cached value, computing and storing it on a miss.
func (s *Cached[T]) At(idx dim.Idx) T {
	if v, ok := s.cache.Get(idx); ok {
		return v
	}
	v := s.inner.At(idx)
	s.cache.Insert(idx, v)

	return v
}

// Child returns the projection of row i; it reads through this cache.
func (s *Cached[T]) Child(i int) seq.Seq[T] { return seq.ChildOf[T](s, i) }

// All yields every element, filling the cache as it goes.
func (s *Cached[T]) All() iter.Seq[T] { return seq.AllOf[T](s) }
