// SPDX-License-Identifier: MIT

package vec

import (
	"iter"

	"github.com/katalvlaran/lvseq/dim"
	"github.com/katalvlaran/lvseq/seq"
)

// Nested2 is a dimension-2 sequence over a [][]T; rows may be jagged.
type Nested2[T any] [][]T

// Nested3 is a dimension-3 sequence over a [][][]T.
type Nested3[T any] [][][]T

var (
	_ seq.Mut[int] = Nested2[int](nil)
	_ seq.Mut[int] = Nested3[int](nil)
)

// ---------- Nested2 ----------

// Dim returns D2.
func (Nested2[T]) Dim() dim.Dim { return dim.D2 }

// Card returns the number of rows for the empty sub-index and the row length for [i].
func (n Nested2[T]) Card(sub dim.Idx) int {
	if sub.IsEmpty() {
		return len(n)
	}

	return len(n[sub.First()])
}

// At returns n[i][j].
func (n Nested2[T]) At(idx dim.Idx) T { return n[idx.At(0)][idx.At(1)] }

// Child returns row i as a Slice (shares storage).
func (n Nested2[T]) Child(i int) seq.Seq[T] { return Slice[T](n[i]) }

// All yields every element row by row.
func (n Nested2[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, row := range n {
			for _, v := range row {
				if !yield(v) {
					return
				}
			}
		}
	}
}

// Set writes n[i][j] = v.
func (n Nested2[T]) Set(idx dim.Idx, v T) { n[idx.At(0)][idx.At(1)] = v }

// AtMut returns &n[i][j].
func (n Nested2[T]) AtMut(idx dim.Idx) *T { return &n[idx.At(0)][idx.At(1)] }

// ChildMut returns row i as a mutable Slice.
func (n Nested2[T]) ChildMut(i int) seq.Mut[T] { return Slice[T](n[i]) }

// MutAll applies f to every element.
func (n Nested2[T]) MutAll(f func(*T)) {
	for _, row := range n {
		Slice[T](row).MutAll(f)
	}
}

// ResetAll overwrites every element with v.
func (n Nested2[T]) ResetAll(v T) {
	for _, row := range n {
		Slice[T](row).ResetAll(v)
	}
}

// ---------- Nested3 ----------

// Dim returns D3.
func (Nested3[T]) Dim() dim.Dim { return dim.D3 }

// Card returns the count below sub.
func (n Nested3[T]) Card(sub dim.Idx) int {
	switch sub.Dim() {
	case dim.D0:
		return len(n)
	case dim.D1:
		return len(n[sub.First()])
	default:
		return len(n[sub.At(0)][sub.At(1)])
	}
}

// At returns n[i][j][k].
func (n Nested3[T]) At(idx dim.Idx) T { return n[idx.At(0)][idx.At(1)][idx.At(2)] }

// Child returns block i as a Nested2 (shares storage).
func (n Nested3[T]) Child(i int) seq.Seq[T] { return Nested2[T](n[i]) }

// All yields every element in row-major nesting order.
func (n Nested3[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, block := range n {
			for _, row := range block {
				for _, v := range row {
					if !yield(v) {
						return
					}
				}
			}
		}
	}
}

// Set writes n[i][j][k] = v.
func (n Nested3[T]) Set(idx dim.Idx, v T) { n[idx.At(0)][idx.At(1)][idx.At(2)] = v }

// AtMut returns &n[i][j][k].
func (n Nested3[T]) AtMut(idx dim.Idx) *T { return &n[idx.At(0)][idx.At(1)][idx.At(2)] }

// ChildMut returns block i as a mutable Nested2.
func (n Nested3[T]) ChildMut(i int) seq.Mut[T] { return Nested2[T](n[i]) }

// MutAll applies f to every element.
func (n Nested3[T]) MutAll(f func(*T)) {
	for _, block := range n {
		Nested2[T](block).MutAll(f)
	}
}

// ResetAll overwrites every element with v.
func (n Nested3[T]) ResetAll(v T) {
	for _, block := range n {
		Nested2[T](block).ResetAll(v)
	}
}

// ---------- materialization ----------

// ToNested2 copies a bounded dimension-2 sequence into a fresh [][]T.
// Panics with dim.ErrArityMismatch for other dimensions and with
// dim.ErrUnbounded for unbounded sequences.
func ToNested2[T any](s seq.Seq[T]) Nested2[T] {
	if s.Dim() != dim.D2 {
		seq.Fail("vec.ToNested2("+s.Dim().String()+")", dim.ErrArityMismatch)
	}
	n := seq.NumChildren(s)
	if n == dim.MaxCard {
		seq.Fail("vec.ToNested2", dim.ErrUnbounded)
	}
	out := make(Nested2[T], n)
	for i := 0; i < n; i++ {
		out[i] = seq.Collect(s.Child(i))
	}

	return out
}

// ToSlice copies a bounded sequence of any dimension into a flat Slice in
// row-major nesting order.
func ToSlice[T any](s seq.Seq[T]) Slice[T] { return Slice[T](seq.Collect(s)) }
