// SPDX-License-Identifier: MIT

package variant

import (
	"iter"

	"github.com/katalvlaran/lvseq/card"
	"github.com/katalvlaran/lvseq/dim"
	"github.com/katalvlaran/lvseq/lookup"
	"github.com/katalvlaran/lvseq/seq"
)

// Sparse stores explicit exceptions to a default value.
//
//	At(idx)     = lookup[idx] if present, else the default
//	Set(idx, v) inserts or updates lookup[idx]
//
// The lookup grows with the number of distinct indices ever written,
// independent of the declared cardinality. AtMut inserts the default
// before handing out the pointer, so it counts as a write.
type Sparse[T any] struct {
	def T
	lk  lookup.Lookup[dim.Idx, T]
	c   card.Cardinality
	eq  func(a, b T) bool
}

var _ seq.Mut[int] = (*Sparse[int])(nil)

// NewSparse returns an unbounded dimension-d sparse sequence whose
// unwritten elements read as def.
// Panics with ErrEvictingLookup when the lookup implements lookup.Evicting
// (e.g. WithLRULookup): a dropped entry would silently read as def again.
func NewSparse[T any](d dim.Dim, def T, opts ...Option[T]) *Sparse[T] {
	o := gatherOptions(opts...)
	lk := o.factory()
	if _, ok := lk.(lookup.Evicting); ok {
		fail("NewSparse", ErrEvictingLookup)
	}

	return &Sparse[T]{
		def: def,
		lk:  lk,
		c:   card.NewUnbounded(d),
		eq:  o.equal,
	}
}

// Default returns the value of unwritten elements.
func (s *Sparse[T]) Default() T { return s.def }

// Len returns the number of stored entries.
func (s *Sparse[T]) Len() int { return s.lk.Len() }

// Lookup exposes the backing store.
func (s *Sparse[T]) Lookup() lookup.Lookup[dim.Idx, T] { return s.lk }

// Stored yields the explicitly stored (index, value) pairs in the order
// of the backing lookup.
func (s *Sparse[T]) Stored() iter.Seq2[dim.Idx, T] { return s.lk.All() }

// Clear drops every stored entry; all elements read as the default again.
func (s *Sparse[T]) Clear() { s.lk.Clear() }

// Cardinality returns the declared shape.
func (s *Sparse[T]) Cardinality() card.Cardinality { return s.c }

// Bounded returns a sparse sequence with cardinality c that shares the
// lookup of s. Writes through either are visible through both.
func (s *Sparse[T]) Bounded(c card.Cardinality) *Sparse[T] {
	mustBounds("Sparse.Bounded", c, s.Dim())
	b := *s
	b.c = c

	return &b
}

// WithRectBounds is Bounded(card.Rect(lens...)).
func (s *Sparse[T]) WithRectBounds(lens ...int) *Sparse[T] { return s.Bounded(card.Rect(lens...)) }

// WithVariableBounds is Bounded(card.Var(counts)).
func (s *Sparse[T]) WithVariableBounds(counts card.Counts) *Sparse[T] {
	return s.Bounded(card.Var(counts))
}

// Dim returns the dimension.
func (s *Sparse[T]) Dim() dim.Dim { return s.c.Dim() }

// Card delegates to the cardinality.
func (s *Sparse[T]) Card(sub dim.Idx) int { return s.c.Card(sub) }

// At returns the stored value or the default.
func (s *Sparse[T]) At(idx dim.Idx) T {
	if v, ok := s.lk.Get(idx); ok {
		return v
	}

	return s.def
}

// Child returns the projection of row i; it shares the lookup.
func (s *Sparse[T]) Child(i int) seq.Seq[T] { return seq.ChildOf[T](s, i) }

// All yields every element of the declared cardinality.
func (s *Sparse[T]) All() iter.Seq[T] { return seq.AllOf[T](s) }

// Set stores v at idx. Panics with dim.ErrArityMismatch on a wrong-arity idx.
func (s *Sparse[T]) Set(idx dim.Idx, v T) {
	dim.MustMatch("variant.Sparse.Set", idx, s.Dim())
	s.lk.Insert(idx, v)
}

// AtMut returns a pointer to the stored element at idx, inserting the
// default first when absent.
func (s *Sparse[T]) AtMut(idx dim.Idx) *T {
	dim.MustMatch("variant.Sparse.AtMut", idx, s.Dim())

	return s.lk.Entry(idx, s.defValue)
}

func (s *Sparse[T]) defValue() T { return s.def }

// ChildMut returns the mutable projection of row i.
func (s *Sparse[T]) ChildMut(i int) seq.Mut[T] { return seq.ChildMutOf[T](s, i) }

// MutAll applies f to every element of the declared cardinality. Every
// visited index becomes a stored entry.
func (s *Sparse[T]) MutAll(f func(*T)) { seq.MutAllOf[T](s, f) }

// ResetAll sets every element of the declared cardinality to v. When v
// equals the default the lookup is cleared instead, which also drops
// entries stored outside the declared cardinality.
func (s *Sparse[T]) ResetAll(v T) {
	if s.eq != nil && s.eq(v, s.def) {
		s.lk.Clear()

		return
	}
	seq.ResetAllOf[T](s, v)
}
