// SPDX-License-Identifier: MIT
// Package seq - operations derived from the core contract.
//
// Purpose:
//   - Give every backing the checked access path, shape queries and
//     traversal helpers for free.
//   - Backings implement All/MutAll/ResetAll by delegating to AllOf,
//     MutAllOf and ResetAllOf unless they have a faster native loop.
//
// Complexity quicksheet:
//   - TryAt/InBounds: O(d) Card calls + one At.
//   - IsRectangular: O(children) per level (see card.IsRectangular).
//   - AllOf/MutAllOf/ResetAllOf: O(total elements).

package seq

import (
	"iter"
	"slices"

	"github.com/katalvlaran/lvseq/card"
	"github.com/katalvlaran/lvseq/dim"
)

// ---------- checked access ----------

// InBounds reports whether idx lies within the declared cardinality of s.
// Panics with dim.ErrArityMismatch if idx does not have arity s.Dim().
func InBounds[T any](s Seq[T], idx dim.Idx) bool {
	dim.MustMatch("seq.InBounds", idx, s.Dim())

	return dim.InBounds(idx, s)
}

// TryAt returns (s.At(idx), true) when idx is in bounds and (zero, false) otherwise.
func TryAt[T any](s Seq[T], idx dim.Idx) (T, bool) {
	if !InBounds(s, idx) {
		var zero T

		return zero, false
	}

	return s.At(idx), true
}

// ---------- shape queries ----------

// NumChildren returns the number of dimension-(D-1) children of s.
func NumChildren[T any](s Seq[T]) int { return s.Card(dim.Idx{}) }

// IsBounded reports whether s declares a finite number of children.
func IsBounded[T any](s Seq[T]) bool { return NumChildren(s) != dim.MaxCard }

// IsUnbounded reports whether s has no declared upper bound.
func IsUnbounded[T any](s Seq[T]) bool { return NumChildren(s) == dim.MaxCard }

// CardOf views the shape of s as a card.Cardinality.
func CardOf[T any](s Seq[T]) card.Cardinality { return card.Of(s.Dim(), s) }

// IsRectangular reports whether every sibling of s at every depth has the
// same cardinality. Unbounded sequences are vacuously rectangular.
func IsRectangular[T any](s Seq[T]) bool { return CardOf(s).IsRectangular() }

// Total returns the number of scalar elements of s.
// Panics with dim.ErrUnbounded on unbounded sequences.
func Total[T any](s Seq[T]) int { return card.Total(CardOf(s)) }

// ---------- traversal ----------

// Indices returns every full index of s in row-major nesting order.
// Panics with dim.ErrUnbounded on unbounded sequences.
func Indices[T any](s Seq[T]) iter.Seq[dim.Idx] { return dim.Walk(s.Dim(), s) }

// AllOf is the generic All: it walks the indices of s and yields s.At.
// The unbounded check runs when AllOf is called, not when iteration starts.
func AllOf[T any](s Seq[T]) iter.Seq[T] {
	indices := Indices(s)

	return func(yield func(T) bool) {
		for idx := range indices {
			if !yield(s.At(idx)) {
				return
			}
		}
	}
}

// AllIn yields s.At for each index produced by indices. It never consults
// the cardinality, so it is the supported way to iterate an unbounded
// sequence partially.
func AllIn[T any](s Seq[T], indices iter.Seq[dim.Idx]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for idx := range indices {
			if !yield(s.At(idx)) {
				return
			}
		}
	}
}

// Children yields Child(i) for i in [0, NumChildren(s)). It is lazy, so a
// consumer may break out early even on an unbounded sequence.
func Children[T any](s Seq[T]) iter.Seq[Seq[T]] {
	if s.Dim() == dim.D1 {
		Fail("seq.Children", ErrNoChildren)
	}

	return func(yield func(Seq[T]) bool) {
		n := NumChildren(s)
		for i := 0; i < n; i++ {
			if !yield(s.Child(i)) {
				return
			}
		}
	}
}

// ChildrenMut is Children over mutable children.
func ChildrenMut[T any](s Mut[T]) iter.Seq[Mut[T]] {
	if s.Dim() == dim.D1 {
		Fail("seq.ChildrenMut", ErrNoChildren)
	}

	return func(yield func(Mut[T]) bool) {
		n := NumChildren[T](s)
		for i := 0; i < n; i++ {
			if !yield(s.ChildMut(i)) {
				return
			}
		}
	}
}

// Collect materializes All() into a slice.
func Collect[T any](s Seq[T]) []T { return slices.Collect(s.All()) }

// ---------- mutation ----------

// MutAllOf is the generic MutAll: f receives AtMut of every index of s.
func MutAllOf[T any](s Mut[T], f func(*T)) {
	for idx := range Indices[T](s) {
		f(s.AtMut(idx))
	}
}

// ResetAllOf is the generic ResetAll: Set(idx, v) for every index of s.
func ResetAllOf[T any](s Mut[T], v T) {
	for idx := range Indices[T](s) {
		s.Set(idx, v)
	}
}
