// SPDX-License-Identifier: MIT
// Package card - variable (jagged) cardinality and shape views.
//
// Purpose:
//   - Variable reads its counts from a dimension-(D-1) integer sequence: the
//     count below sub-index s of arity D-1 is counts.At(s), and counts below
//     shorter sub-indices are counts' own cardinality.
//   - Of adapts any dim.Shape (including any sequence) to a Cardinality.
//
// AI-Hints:
//   - Any seq.Seq[int] satisfies Counts structurally; pass one directly.
//   - Lengths(l...) is the shortcut for the common dimension-2 jagged case.

package card

import (
	"github.com/katalvlaran/lvseq/dim"
)

// Counts is the producer seam a Variable cardinality reads from.
// Every seq.Seq[int] satisfies it.
type Counts interface {
	dim.Shape
	Dim() dim.Dim
	At(idx dim.Idx) int
}

// Variable is the cardinality of a jagged sequence whose counts are
// supplied per index by another sequence of dimension D-1.
type Variable struct {
	counts Counts
}

// Var builds a Variable cardinality of dimension counts.Dim()+1.
// Panics with ErrCountsDim if the resulting dimension would exceed dim.MaxDim.
func Var(counts Counts) Variable {
	cd := counts.Dim()
	if !cd.Valid() || cd >= dim.MaxDim {
		fail("Var("+cd.String()+")", ErrCountsDim)
	}

	return Variable{counts: counts}
}

// Lengths builds the dimension-2 Variable whose i-th row has lens[i] elements.
// The slice is copied. Panics on negative lengths.
func Lengths(lens ...int) Variable {
	cp := make(lengths, len(lens))
	for i, n := range lens {
		if n < 0 {
			fail("Lengths", ErrNegativeCount)
		}
		cp[i] = n
	}

	return Variable{counts: cp}
}

// Dim returns counts.Dim()+1.
func (v Variable) Dim() dim.Dim { return v.counts.Dim() + 1 }

// Counts returns the underlying counts sequence.
func (v Variable) Counts() Counts { return v.counts }

// Card returns the count below sub.
func (v Variable) Card(sub dim.Idx) int {
	d := v.Dim()
	mustSub("Variable.Card", sub, d)
	if sub.Dim() == d-1 {
		return v.counts.At(sub)
	}

	return v.counts.Card(sub)
}

// Child returns the cardinality of the i-th child: Fixed for dimension 2,
// otherwise a Variable over the i-th child of counts.
func (v Variable) Child(i int) Cardinality {
	if v.Dim() == dim.D2 {
		return Fixed(v.counts.At(dim.I1(i)))
	}

	return Variable{counts: subCounts{parent: v.counts, prefix: dim.I1(i)}}
}

// IsRectangular walks all children comparing their cardinalities and stops
// at the first mismatch. The result is not cached.
func (v Variable) IsRectangular() bool { return IsRectangular(v) }

// lengths is a dimension-1 Counts over a plain slice.
type lengths []int

func (l lengths) Dim() dim.Dim { return dim.D1 }

func (l lengths) Card(sub dim.Idx) int {
	mustSub("Lengths.Card", sub, dim.D1)

	return len(l)
}

func (l lengths) At(idx dim.Idx) int { return l[idx.First()] }

// subCounts projects the child of a Counts sequence below a fixed prefix.
type subCounts struct {
	parent Counts
	prefix dim.Idx
}

func (s subCounts) Dim() dim.Dim { return s.parent.Dim() - s.prefix.Dim() }

func (s subCounts) Card(sub dim.Idx) int { return s.parent.Card(s.prefix.Join(sub)) }

func (s subCounts) At(idx dim.Idx) int { return s.parent.At(s.prefix.Join(idx)) }

// ---------- shape views ----------

// shaped views a dimension-d dim.Shape below a prefix as a Cardinality.
type shaped struct {
	d      dim.Dim
	s      dim.Shape
	prefix dim.Idx
}

// Of returns the Cardinality of a dimension-d shape. Card and Child delegate
// to s; no counts are copied.
func Of(d dim.Dim, s dim.Shape) Cardinality {
	dim.MustValid(d)
	if c, ok := s.(Cardinality); ok && c.Dim() == d {
		return c
	}

	return shaped{d: d, s: s}
}

func (v shaped) Dim() dim.Dim { return v.d - v.prefix.Dim() }

func (v shaped) Card(sub dim.Idx) int {
	mustSub("Of.Card", sub, v.Dim())

	return v.s.Card(v.prefix.Join(sub))
}

func (v shaped) Child(i int) Cardinality {
	if v.Dim() <= dim.D1 {
		fail("Of.Child", ErrNoChildren)
	}

	return shaped{d: v.d, s: v.s, prefix: v.prefix.Append(i)}
}

func (v shaped) IsRectangular() bool { return IsRectangular(v) }
