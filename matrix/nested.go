// SPDX-License-Identifier: MIT

// Package matrix - Nested: a rectangular dimension-2 sequence viewed as a grid.
//
// Purpose:
//   - RowMajor: the children of the source are the rows, [i, j] -> src[i][j].
//   - ColMajor: the children of the source are the columns, [i, j] -> src[j][i].
//   - The major axis line is the source child itself, so over a vec.Nested2
//     it is the contiguous inner slice; the minor axis is a cross view.
//
// Complexity quicksheet:
//   - FromNested: O(children) rectangularity check; At/Set: O(1) + source cost.

package matrix

import (
	"fmt"
	"iter"

	"github.com/katalvlaran/lvseq/dim"
	"github.com/katalvlaran/lvseq/seq"
)

const (
	ctxFromNested    = "FromNested"
	ctxFromNestedMut = "FromNestedMut"
)

// Nested is the read-only nested-backed matrix view.
type Nested[T any] struct {
	grid
	src seq.Seq[T]
}

// NestedMut is the mutable nested-backed matrix view.
type NestedMut[T any] struct {
	Nested[T]
	mut seq.Mut[T]
}

// Compile-time assertions.
var (
	_ Matrix[int]    = (*Nested[int])(nil)
	_ MatrixMut[int] = (*NestedMut[int])(nil)
)

// nestedGrid derives the logical shape of a validated source.
func nestedGrid[T any](src seq.Seq[T], l Layout) grid {
	major := seq.NumChildren(src)
	minor := 0
	if major > 0 {
		minor = src.Card(dim.I1(0))
	}
	if l == RowMajor {
		return grid{rows: major, cols: minor, layout: l}
	}

	return grid{rows: minor, cols: major, layout: l}
}

// FromNested views a rectangular dimension-2 sequence as a matrix.
// MAIN DESCRIPTION:
//   - Non-owning reinterpretation; the layout decides whether the source
//     children are rows (RowMajor) or columns (ColMajor).
//
// Errors:
//   - ErrNilSource, ErrSourceDim, ErrBadShape (unbounded), ErrNotRectangular.
//
// Complexity:
//   - Time O(children), Space O(1).
func FromNested[T any](src seq.Seq[T], opts ...Option) (*Nested[T], error) {
	if err := ValidateRectangular(src); err != nil {
		return nil, fmt.Errorf("%s: %w", ctxFromNested, err)
	}
	o := gatherOptions(opts...)

	return &Nested[T]{grid: nestedGrid(src, o.layout), src: src}, nil
}

// MustNested is FromNested that panics on error.
func MustNested[T any](src seq.Seq[T], opts ...Option) *Nested[T] {
	m, err := FromNested(src, opts...)
	if err != nil {
		panic(err)
	}

	return m
}

// FromNestedMut is FromNested over a mutable source.
func FromNestedMut[T any](src seq.Mut[T], opts ...Option) (*NestedMut[T], error) {
	if err := ValidateRectangular[T](src); err != nil {
		return nil, fmt.Errorf("%s: %w", ctxFromNestedMut, err)
	}
	o := gatherOptions(opts...)

	return &NestedMut[T]{
		Nested: Nested[T]{grid: nestedGrid[T](src, o.layout), src: src},
		mut:    src,
	}, nil
}

// MustNestedMut is FromNestedMut that panics on error.
func MustNestedMut[T any](src seq.Mut[T], opts ...Option) *NestedMut[T] {
	m, err := FromNestedMut(src, opts...)
	if err != nil {
		panic(err)
	}

	return m
}

// Source returns the wrapped nested sequence.
func (m *Nested[T]) Source() seq.Seq[T] { return m.src }

func (m *Nested[T]) cell(idx dim.Idx) dim.Idx {
	if m.layout == RowMajor {
		return idx
	}

	return dim.I2(idx.At(1), idx.At(0))
}

// At returns the element at [i, j] (unchecked).
func (m *Nested[T]) At(idx dim.Idx) T { return m.src.At(m.cell(idx)) }

// Child returns logical row i.
func (m *Nested[T]) Child(i int) seq.Seq[T] { return m.Row(i) }

// Row returns logical row i: the source child in RowMajor, a cross view otherwise.
func (m *Nested[T]) Row(i int) seq.Seq[T] {
	m.mustRow(ctxRow, i)
	if m.layout == RowMajor {
		return m.src.Child(i)
	}

	return cross[T]{src: m.src, fixed: i, n: m.cols}
}

// Col returns logical column j: the source child in ColMajor, a cross view otherwise.
func (m *Nested[T]) Col(j int) seq.Seq[T] {
	m.mustCol(ctxCol, j)
	if m.layout == ColMajor {
		return m.src.Child(j)
	}

	return cross[T]{src: m.src, fixed: j, n: m.rows}
}

// All yields every element in logical row-major order.
func (m *Nested[T]) All() iter.Seq[T] {
	if m.layout == RowMajor {
		return m.src.All()
	}

	return func(yield func(T) bool) {
		for i := 0; i < m.rows; i++ {
			for j := 0; j < m.cols; j++ {
				if !yield(m.src.At(dim.I2(j, i))) {
					return
				}
			}
		}
	}
}

// Set writes v at [i, j] (unchecked).
func (m *NestedMut[T]) Set(idx dim.Idx, v T) { m.mut.Set(m.cell(idx), v) }

// AtMut returns a pointer to the element at [i, j] (unchecked).
func (m *NestedMut[T]) AtMut(idx dim.Idx) *T { return m.mut.AtMut(m.cell(idx)) }

// ChildMut returns logical row i.
func (m *NestedMut[T]) ChildMut(i int) seq.Mut[T] { return m.RowMut(i) }

// RowMut returns logical row i as a mutable line.
func (m *NestedMut[T]) RowMut(i int) seq.Mut[T] {
	m.mustRow("RowMut", i)
	if m.layout == RowMajor {
		return m.mut.ChildMut(i)
	}

	return crossMut[T]{cross: cross[T]{src: m.mut, fixed: i, n: m.cols}, mut: m.mut}
}

// ColMut returns logical column j as a mutable line.
func (m *NestedMut[T]) ColMut(j int) seq.Mut[T] {
	m.mustCol("ColMut", j)
	if m.layout == ColMajor {
		return m.mut.ChildMut(j)
	}

	return crossMut[T]{cross: cross[T]{src: m.mut, fixed: j, n: m.rows}, mut: m.mut}
}

// MutAll applies f to every element in storage order.
func (m *NestedMut[T]) MutAll(f func(*T)) { m.mut.MutAll(f) }

// ResetAll overwrites every element with v.
func (m *NestedMut[T]) ResetAll(v T) { m.mut.ResetAll(v) }
