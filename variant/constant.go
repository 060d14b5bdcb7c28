// SPDX-License-Identifier: MIT

package variant

import (
	"iter"

	"github.com/katalvlaran/lvseq/card"
	"github.com/katalvlaran/lvseq/dim"
	"github.com/katalvlaran/lvseq/seq"
)

// Constant is a sequence whose every element is the same value.
// At never fails, inside or outside the declared cardinality.
type Constant[T any] struct {
	value T
	c     card.Cardinality
}

var _ seq.Seq[int] = Constant[int]{}

// NewConstant returns an unbounded dimension-d sequence of v.
func NewConstant[T any](d dim.Dim, v T) Constant[T] {
	return Constant[T]{value: v, c: card.NewUnbounded(d)}
}

// Value returns the constant.
func (s Constant[T]) Value() T { return s.value }

// Cardinality returns the declared shape.
func (s Constant[T]) Cardinality() card.Cardinality { return s.c }

// Bounded returns the same constant with cardinality c attached.
// Panics with ErrBoundsDim when c.Dim() != s.Dim().
func (s Constant[T]) Bounded(c card.Cardinality) Constant[T] {
	mustBounds("Constant.Bounded", c, s.Dim())
	s.c = c

	return s
}

// WithRectBounds is Bounded(card.Rect(lens...)).
func (s Constant[T]) WithRectBounds(lens ...int) Constant[T] { return s.Bounded(card.Rect(lens...)) }

// WithVariableBounds is Bounded(card.Var(counts)).
func (s Constant[T]) WithVariableBounds(counts card.Counts) Constant[T] {
	return s.Bounded(card.Var(counts))
}

// Dim returns the dimension.
func (s Constant[T]) Dim() dim.Dim { return s.c.Dim() }

// Card delegates to the cardinality.
func (s Constant[T]) Card(sub dim.Idx) int { return s.c.Card(sub) }

// At returns the constant for any index.
func (s Constant[T]) At(dim.Idx) T { return s.value }

// Child returns the constant of dimension Dim()-1 bounded by the child cardinality.
func (s Constant[T]) Child(i int) seq.Seq[T] {
	if s.Dim() == dim.D1 {
		seq.Fail("variant.Constant.Child", seq.ErrNoChildren)
	}

	return Constant[T]{value: s.value, c: s.c.Child(i)}
}

// All yields the constant once per element of the declared cardinality.
// Panics with dim.ErrUnbounded when unbounded.
func (s Constant[T]) All() iter.Seq[T] {
	n := card.Total(s.c)

	return func(yield func(T) bool) {
		for i := 0; i < n; i++ {
			if !yield(s.value) {
				return
			}
		}
	}
}
