// SPDX-License-Identifier: MIT

// Package matrix - Flat: a dimension-1 sequence reinterpreted as a grid.
//
// Purpose:
//   - Present a flat source of length rows*cols as a rows x cols matrix
//     under RowMajor or ColMajor layout, without copying.
//   - At is the trusting path: it applies the layout formula and lets the
//     source decide what an out-of-grid offset means. Use seq.TryAt or
//     Layout.FlatIndex for the checked path.
//
// AI-Hints:
//   - Row(i) in RowMajor and Col(j) in ColMajor are unit-step lines; over a
//     vec.Slice source they are returned as contiguous sub-slices.
//
// Complexity quicksheet:
//   - FromFlat: O(1); At/Set: O(1) + source cost; Row/Col: O(1); All: O(rows*cols).

package matrix

import (
	"fmt"
	"iter"

	"github.com/katalvlaran/lvseq/dim"
	"github.com/katalvlaran/lvseq/seq"
)

// ---------- error context tags ----------

const (
	ctxFromFlat    = "FromFlat"
	ctxFromFlatMut = "FromFlatMut"
	ctxRow         = "Row"
	ctxCol         = "Col"
)

// grid holds the logical shape shared by every view.
type grid struct {
	rows, cols int
	layout     Layout
}

// NumRows returns the logical row count.
func (g grid) NumRows() int { return g.rows }

// NumCols returns the logical column count.
func (g grid) NumCols() int { return g.cols }

// Layout reports the storage layout of the wrapped sequence.
func (g grid) Layout() Layout { return g.layout }

// Dim returns D2.
func (grid) Dim() dim.Dim { return dim.D2 }

// Card returns rows for the empty sub-index and cols for [i].
func (g grid) Card(sub dim.Idx) int {
	if sub.IsEmpty() {
		return g.rows
	}

	return g.cols
}

func (g grid) mustRow(ctx string, i int) {
	if i < 0 || i >= g.rows {
		panic(fmt.Errorf("%s(%d) of %d rows: %w", ctx, i, g.rows, ErrOutOfRange))
	}
}

func (g grid) mustCol(ctx string, j int) {
	if j < 0 || j >= g.cols {
		panic(fmt.Errorf("%s(%d) of %d cols: %w", ctx, j, g.cols, ErrOutOfRange))
	}
}

// Flat is the read-only flat-backed matrix view.
type Flat[T any] struct {
	grid
	src seq.Seq[T]
}

// FlatMut is the mutable flat-backed matrix view.
type FlatMut[T any] struct {
	Flat[T]
	mut seq.Mut[T]
}

// Compile-time assertions.
var (
	_ Matrix[int]    = (*Flat[int])(nil)
	_ MatrixMut[int] = (*FlatMut[int])(nil)
)

// FromFlat views src as a rows x cols matrix.
// MAIN DESCRIPTION:
//   - Non-owning reinterpretation of a dimension-1 sequence.
//
// Implementation:
//   - Stage 1: ValidateFlat (nil, D1, bounded, non-negative shape, rows*cols == card).
//   - Stage 2: resolve options (layout).
//
// Errors:
//   - ErrNilSource, ErrSourceDim, ErrBadShape, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(1), Space O(1).
func FromFlat[T any](src seq.Seq[T], rows, cols int, opts ...Option) (*Flat[T], error) {
	if err := ValidateFlat(src, rows, cols); err != nil {
		return nil, fmt.Errorf("%s: %w", ctxFromFlat, err)
	}
	o := gatherOptions(opts...)

	return &Flat[T]{grid: grid{rows: rows, cols: cols, layout: o.layout}, src: src}, nil
}

// MustFlat is FromFlat that panics on error.
func MustFlat[T any](src seq.Seq[T], rows, cols int, opts ...Option) *Flat[T] {
	m, err := FromFlat(src, rows, cols, opts...)
	if err != nil {
		panic(err)
	}

	return m
}

// FromFlatMut is FromFlat over a mutable source.
func FromFlatMut[T any](src seq.Mut[T], rows, cols int, opts ...Option) (*FlatMut[T], error) {
	if err := ValidateFlat[T](src, rows, cols); err != nil {
		return nil, fmt.Errorf("%s: %w", ctxFromFlatMut, err)
	}
	o := gatherOptions(opts...)

	return &FlatMut[T]{
		Flat: Flat[T]{grid: grid{rows: rows, cols: cols, layout: o.layout}, src: src},
		mut:  src,
	}, nil
}

// MustFlatMut is FromFlatMut that panics on error.
func MustFlatMut[T any](src seq.Mut[T], rows, cols int, opts ...Option) *FlatMut[T] {
	m, err := FromFlatMut(src, rows, cols, opts...)
	if err != nil {
		panic(err)
	}

	return m
}

// Source returns the wrapped flat sequence.
func (m *Flat[T]) Source() seq.Seq[T] { return m.src }

func (m *Flat[T]) flat(idx dim.Idx) dim.Idx {
	return dim.I1(m.layout.offset(m.rows, m.cols, idx.At(0), idx.At(1)))
}

// At returns the element at [i, j] (unchecked).
func (m *Flat[T]) At(idx dim.Idx) T { return m.src.At(m.flat(idx)) }

// Child returns logical row i.
func (m *Flat[T]) Child(i int) seq.Seq[T] { return m.Row(i) }

// Row returns logical row i.
func (m *Flat[T]) Row(i int) seq.Seq[T] {
	m.mustRow(ctxRow, i)
	start, step := m.layout.stepOf(m.rows, m.cols, i, true)

	return newSpan(m.src, start, step, m.cols)
}

// Col returns logical column j.
func (m *Flat[T]) Col(j int) seq.Seq[T] {
	m.mustCol(ctxCol, j)
	start, step := m.layout.stepOf(m.rows, m.cols, j, false)

	return newSpan(m.src, start, step, m.rows)
}

// All yields every element in logical row-major order.
func (m *Flat[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < m.rows; i++ {
			for j := 0; j < m.cols; j++ {
				if !yield(m.src.At(dim.I1(m.layout.offset(m.rows, m.cols, i, j)))) {
					return
				}
			}
		}
	}
}

// Set writes v at [i, j] (unchecked).
func (m *FlatMut[T]) Set(idx dim.Idx, v T) { m.mut.Set(m.flat(idx), v) }

// AtMut returns a pointer to the element at [i, j] (unchecked).
func (m *FlatMut[T]) AtMut(idx dim.Idx) *T { return m.mut.AtMut(m.flat(idx)) }

// ChildMut returns logical row i.
func (m *FlatMut[T]) ChildMut(i int) seq.Mut[T] { return m.RowMut(i) }

// RowMut returns logical row i as a mutable line.
func (m *FlatMut[T]) RowMut(i int) seq.Mut[T] {
	m.mustRow("RowMut", i)
	start, step := m.layout.stepOf(m.rows, m.cols, i, true)

	return newSpanMut(m.mut, start, step, m.cols)
}

// ColMut returns logical column j as a mutable line.
func (m *FlatMut[T]) ColMut(j int) seq.Mut[T] {
	m.mustCol("ColMut", j)
	start, step := m.layout.stepOf(m.rows, m.cols, j, false)

	return newSpanMut(m.mut, start, step, m.rows)
}

// MutAll applies f to every element in storage order.
func (m *FlatMut[T]) MutAll(f func(*T)) { m.mut.MutAll(f) }

// ResetAll overwrites every element with v.
func (m *FlatMut[T]) ResetAll(v T) { m.mut.ResetAll(v) }
