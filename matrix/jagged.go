// SPDX-License-Identifier: MIT

// Package matrix - Jagged: a dimension-1 sequence split into rows of varying length.
//
// Purpose:
//   - Row r covers the flat range [ends[r-1], ends[r]) with ends[-1] = 0.
//   - ToFlatIndex([r, c]) = ends[r-1] + c, checked against the row length.
//     Unlike the rectangular views, At goes through the checked mapping, so
//     a column outside its row panics instead of reading the next row.
//   - Construction validates the offsets (non-negative, non-decreasing, last
//     equal to the flat cardinality); a bad offset table never reaches At.
//
// Complexity quicksheet:
//   - NewJagged: O(rows); At/Set: O(1); FromFlatIndex: O(log rows); All: O(n).

package matrix

import (
	"fmt"
	"iter"
	"slices"

	"github.com/katalvlaran/lvseq/card"
	"github.com/katalvlaran/lvseq/dim"
	"github.com/katalvlaran/lvseq/seq"
)

const (
	ctxNewJagged    = "NewJagged"
	ctxJaggedMut    = "NewJaggedMut"
	ctxJaggedLens   = "NewJaggedFromLengths"
	ctxToFlatIndex  = "Jagged.ToFlatIndex"
	ctxFromFlatIdx  = "Jagged.FromFlatIndex"
	ctxJaggedRow    = "Jagged.Row"
	ctxJaggedRowMut = "Jagged.RowMut"
)

// Jagged is the read-only jagged view.
type Jagged[T any] struct {
	src  seq.Seq[T]
	ends []int
}

// JaggedMut is the mutable jagged view.
type JaggedMut[T any] struct {
	Jagged[T]
	mut seq.Mut[T]
}

// Compile-time assertions.
var (
	_ seq.Seq[int] = (*Jagged[int])(nil)
	_ seq.Mut[int] = (*JaggedMut[int])(nil)
)

// NewJagged splits src at the given row-end offsets (copied).
// MAIN DESCRIPTION:
//   - Non-owning reinterpretation of a dimension-1 sequence as rows.
//
// Implementation:
//   - Stage 1: ValidateSource (nil, D1, bounded).
//   - Stage 2: ValidateRowEnds against the flat cardinality.
//
// Errors:
//   - ErrNilSource, ErrSourceDim, ErrBadShape, ErrRowEnds.
//
// Complexity:
//   - Time O(rows), Space O(rows).
func NewJagged[T any](src seq.Seq[T], rowEnds []int) (*Jagged[T], error) {
	if err := validateJagged(src, rowEnds); err != nil {
		return nil, fmt.Errorf("%s: %w", ctxNewJagged, err)
	}

	return &Jagged[T]{src: src, ends: slices.Clone(rowEnds)}, nil
}

// MustJagged is NewJagged that panics on error.
func MustJagged[T any](src seq.Seq[T], rowEnds []int) *Jagged[T] {
	j, err := NewJagged(src, rowEnds)
	if err != nil {
		panic(err)
	}

	return j
}

// NewJaggedMut is NewJagged over a mutable source.
func NewJaggedMut[T any](src seq.Mut[T], rowEnds []int) (*JaggedMut[T], error) {
	if err := validateJagged[T](src, rowEnds); err != nil {
		return nil, fmt.Errorf("%s: %w", ctxJaggedMut, err)
	}

	return &JaggedMut[T]{Jagged: Jagged[T]{src: src, ends: slices.Clone(rowEnds)}, mut: src}, nil
}

// MustJaggedMut is NewJaggedMut that panics on error.
func MustJaggedMut[T any](src seq.Mut[T], rowEnds []int) *JaggedMut[T] {
	j, err := NewJaggedMut(src, rowEnds)
	if err != nil {
		panic(err)
	}

	return j
}

// NewJaggedFromLengths splits src into rows of the given lengths.
//
// Errors:
//   - ErrBadShape on a negative length, plus the NewJagged errors.
func NewJaggedFromLengths[T any](src seq.Seq[T], lens []int) (*Jagged[T], error) {
	ends, err := endsOf(lens)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ctxJaggedLens, err)
	}

	return NewJagged(src, ends)
}

// endsOf returns the running sums of lens.
func endsOf(lens []int) ([]int, error) {
	ends := make([]int, len(lens))
	total := 0
	for i, n := range lens {
		if n < 0 {
			return nil, validatorErrorf(fmt.Sprintf("lens[%d]=%d", i, n), ErrBadShape)
		}
		total += n
		ends[i] = total
	}

	return ends, nil
}

func validateJagged[T any](src seq.Seq[T], rowEnds []int) error {
	if err := ValidateSource(src, dim.D1); err != nil {
		return err
	}

	return ValidateRowEnds(rowEnds, seq.NumChildren(src))
}

// Source returns the wrapped flat sequence.
func (j *Jagged[T]) Source() seq.Seq[T] { return j.src }

// RowEnds returns a copy of the row-end offsets.
func (j *Jagged[T]) RowEnds() []int { return slices.Clone(j.ends) }

// NumRows returns the number of rows.
func (j *Jagged[T]) NumRows() int { return len(j.ends) }

// Cardinality returns the row lengths as a variable cardinality.
func (j *Jagged[T]) Cardinality() card.Cardinality { return card.Of(dim.D2, j) }

func (j *Jagged[T]) start(r int) int {
	if r == 0 {
		return 0
	}

	return j.ends[r-1]
}

// RowLen returns the length of row r.
func (j *Jagged[T]) RowLen(r int) int { return j.ends[r] - j.start(r) }

// RowSpan returns the flat range [start, end) of row r.
func (j *Jagged[T]) RowSpan(r int) (start, end int) { return j.start(r), j.ends[r] }

// ToFlatIndex maps [r, c] to its flat offset.
// Panics with ErrOutOfRange when r is not a row or c is outside [0, RowLen(r)).
func (j *Jagged[T]) ToFlatIndex(idx dim.Idx) int {
	dim.MustMatch(ctxToFlatIndex, idx, dim.D2)
	r, c := idx.At(0), idx.At(1)
	if r >= len(j.ends) {
		panic(fmt.Errorf("%s(%s): row of %d: %w", ctxToFlatIndex, idx, len(j.ends), ErrOutOfRange))
	}
	if n := j.RowLen(r); c >= n {
		panic(fmt.Errorf("%s(%s): column of %d: %w", ctxToFlatIndex, idx, n, ErrOutOfRange))
	}

	return j.start(r) + c
}

// FromFlatIndex maps a flat offset back to [r, c]. Empty rows are skipped.
// Panics with ErrOutOfRange when k is outside [0, total).
func (j *Jagged[T]) FromFlatIndex(k int) dim.Idx {
	total := 0
	if len(j.ends) > 0 {
		total = j.ends[len(j.ends)-1]
	}
	if k < 0 || k >= total {
		panic(fmt.Errorf("%s(%d) of %d: %w", ctxFromFlatIdx, k, total, ErrOutOfRange))
	}
	r, _ := slices.BinarySearch(j.ends, k+1) // first row whose end is past k

	return dim.I2(r, k-j.start(r))
}

// Dim returns D2.
func (j *Jagged[T]) Dim() dim.Dim { return dim.D2 }

// Card returns the row count for the empty sub-index and RowLen(r) for [r].
func (j *Jagged[T]) Card(sub dim.Idx) int {
	if sub.IsEmpty() {
		return len(j.ends)
	}

	return j.RowLen(sub.First())
}

// At returns the element at [r, c] through the checked mapping.
func (j *Jagged[T]) At(idx dim.Idx) T { return j.src.At(dim.I1(j.ToFlatIndex(idx))) }

// Child returns row r.
func (j *Jagged[T]) Child(r int) seq.Seq[T] { return j.Row(r) }

// Row returns row r as a unit-step line (a sub-slice over a vec.Slice source).
func (j *Jagged[T]) Row(r int) seq.Seq[T] {
	j.mustRow(ctxJaggedRow, r)

	return newSpan(j.src, j.start(r), 1, j.RowLen(r))
}

func (j *Jagged[T]) mustRow(ctx string, r int) {
	if r < 0 || r >= len(j.ends) {
		panic(fmt.Errorf("%s(%d) of %d rows: %w", ctx, r, len(j.ends), ErrOutOfRange))
	}
}

// All yields the flat source in order, which is row order.
func (j *Jagged[T]) All() iter.Seq[T] { return j.src.All() }

// Set writes v at [r, c] through the checked mapping.
func (j *JaggedMut[T]) Set(idx dim.Idx, v T) { j.mut.Set(dim.I1(j.ToFlatIndex(idx)), v) }

// AtMut returns a pointer to the element at [r, c].
func (j *JaggedMut[T]) AtMut(idx dim.Idx) *T { return j.mut.AtMut(dim.I1(j.ToFlatIndex(idx))) }

// ChildMut returns row r.
func (j *JaggedMut[T]) ChildMut(r int) seq.Mut[T] { return j.RowMut(r) }

// RowMut returns row r as a mutable line.
func (j *JaggedMut[T]) RowMut(r int) seq.Mut[T] {
	j.mustRow(ctxJaggedRowMut, r)

	return newSpanMut(j.mut, j.start(r), 1, j.RowLen(r))
}

// MutAll applies f to every element.
func (j *JaggedMut[T]) MutAll(f func(*T)) { j.mut.MutAll(f) }

// ResetAll overwrites every element with v.
func (j *JaggedMut[T]) ResetAll(v T) { j.mut.ResetAll(v) }
