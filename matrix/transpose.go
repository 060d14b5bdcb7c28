// SPDX-License-Identifier: MIT

package matrix

import (
	"iter"

	"github.com/katalvlaran/lvseq/dim"
	"github.com/katalvlaran/lvseq/seq"
)

// transposed swaps the axes of a Matrix without copying.
type transposed[T any] struct {
	m Matrix[T]
}

type transposedMut[T any] struct {
	transposed[T]
	mm MatrixMut[T]
}

var (
	_ Matrix[int]    = transposed[int]{}
	_ MatrixMut[int] = transposedMut[int]{}
)

// Transpose returns the view [i, j] -> m[j, i]. Transposing twice returns m.
// The reported layout is the opposite of m's, since the major axis of the
// storage becomes the other logical axis.
func Transpose[T any](m Matrix[T]) Matrix[T] {
	switch t := m.(type) {
	case transposed[T]:
		return t.m
	case transposedMut[T]:
		return t.mm
	}

	return transposed[T]{m: m}
}

// TransposeMut is Transpose over a mutable matrix.
func TransposeMut[T any](m MatrixMut[T]) MatrixMut[T] {
	if t, ok := m.(transposedMut[T]); ok {
		return t.mm
	}

	return transposedMut[T]{transposed: transposed[T]{m: m}, mm: m}
}

func swap(idx dim.Idx) dim.Idx { return dim.I2(idx.At(1), idx.At(0)) }

func (t transposed[T]) NumRows() int { return t.m.NumCols() }

func (t transposed[T]) NumCols() int { return t.m.NumRows() }

func (t transposed[T]) Layout() Layout { return t.m.Layout().Transposed() }

func (transposed[T]) Dim() dim.Dim { return dim.D2 }

func (t transposed[T]) Card(sub dim.Idx) int {
	if sub.IsEmpty() {
		return t.m.NumCols()
	}

	return t.m.NumRows()
}

func (t transposed[T]) At(idx dim.Idx) T { return t.m.At(swap(idx)) }

func (t transposed[T]) Child(i int) seq.Seq[T] { return t.m.Col(i) }

func (t transposed[T]) Row(i int) seq.Seq[T] { return t.m.Col(i) }

func (t transposed[T]) Col(j int) seq.Seq[T] { return t.m.Row(j) }

func (t transposed[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		rows, cols := t.m.NumCols(), t.m.NumRows()
		for i := 0; i < rows; i++ {
			for j := 0; j < cols; j++ {
				if !yield(t.m.At(dim.I2(j, i))) {
					return
				}
			}
		}
	}
}

func (t transposedMut[T]) Set(idx dim.Idx, v T) { t.mm.Set(swap(idx), v) }

func (t transposedMut[T]) AtMut(idx dim.Idx) *T { return t.mm.AtMut(swap(idx)) }

func (t transposedMut[T]) ChildMut(i int) seq.Mut[T] { return t.mm.ColMut(i) }

func (t transposedMut[T]) RowMut(i int) seq.Mut[T] { return t.mm.ColMut(i) }

func (t transposedMut[T]) ColMut(j int) seq.Mut[T] { return t.mm.RowMut(j) }

func (t transposedMut[T]) MutAll(f func(*T)) { t.mm.MutAll(f) }

func (t transposedMut[T]) ResetAll(v T) { t.mm.ResetAll(v) }
