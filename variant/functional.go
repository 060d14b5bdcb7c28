// SPDX-License-Identifier: MIT

package variant

import (
	"iter"

	"github.com/katalvlaran/lvseq/card"
	"github.com/katalvlaran/lvseq/dim"
	"github.com/katalvlaran/lvseq/seq"
)

// Fun is a sequence whose elements are computed by a pure function of the
// index. The function is trusted to be total: At calls it for any index,
// inside or outside the declared cardinality.
type Fun[T any] struct {
	f func(dim.Idx) T
	c card.Cardinality
}

var _ seq.Seq[int] = Fun[int]{}

// NewFun returns an unbounded dimension-d sequence computing f(idx).
// Panics with ErrNilFunc on a nil f.
func NewFun[T any](d dim.Dim, f func(dim.Idx) T) Fun[T] {
	if f == nil {
		fail("NewFun", ErrNilFunc)
	}

	return Fun[T]{f: f, c: card.NewUnbounded(d)}
}

// NewFun1 is NewFun for a dimension-1 function of the position.
func NewFun1[T any](f func(i int) T) Fun[T] {
	if f == nil {
		fail("NewFun1", ErrNilFunc)
	}

	return NewFun(dim.D1, func(idx dim.Idx) T { return f(idx.First()) })
}

// NewFun2 is NewFun for a dimension-2 function of (row, col).
func NewFun2[T any](f func(i, j int) T) Fun[T] {
	if f == nil {
		fail("NewFun2", ErrNilFunc)
	}

	return NewFun(dim.D2, func(idx dim.Idx) T { return f(idx.At(0), idx.At(1)) })
}

// Cardinality returns the declared shape.
func (s Fun[T]) Cardinality() card.Cardinality { return s.c }

// Bounded returns the same function with cardinality c attached.
func (s Fun[T]) Bounded(c card.Cardinality) Fun[T] {
	mustBounds("Fun.Bounded", c, s.Dim())
	s.c = c

	return s
}

// WithRectBounds is Bounded(card.Rect(lens...)).
func (s Fun[T]) WithRectBounds(lens ...int) Fun[T] { return s.Bounded(card.Rect(lens...)) }

// WithVariableBounds is Bounded(card.Var(counts)).
func (s Fun[T]) WithVariableBounds(counts card.Counts) Fun[T] { return s.Bounded(card.Var(counts)) }

// Dim returns the dimension.
func (s Fun[T]) Dim() dim.Dim { return s.c.Dim() }

// Card delegates to the cardinality.
func (s Fun[T]) Card(sub dim.Idx) int { return s.c.Card(sub) }

// At returns f(idx).
func (s Fun[T]) At(idx dim.Idx) T { return s.f(idx) }

// Child returns the function r -> f(LeftJoin(i, r)) under the child cardinality.
func (s Fun[T]) Child(i int) seq.Seq[T] {
	if s.Dim() == dim.D1 {
		seq.Fail("variant.Fun.Child", seq.ErrNoChildren)
	}
	f := s.f

	return Fun[T]{
		f: func(lower dim.Idx) T { return f(dim.LeftJoin(i, lower)) },
		c: s.c.Child(i),
	}
}

// All yields f over every index of the declared cardinality.
func (s Fun[T]) All() iter.Seq[T] { return seq.AllOf[T](s) }
