// SPDX-License-Identifier: MIT
// Package vec - Tensor: flat row-major storage with a rectangular shape.
//
// Purpose:
//   - Back an N-dimensional rectangular sequence by one contiguous []T, the
//     way dense nd-array libraries do (shape + row-major strides).
//   - Child(i) is a zero-copy sub-tensor over one contiguous block.
//
// Complexity quicksheet:
//   - At/Set: O(d); Child: O(d); All/MutAll/ResetAll: O(len(data)) straight loops.

package vec

import (
	"errors"
	"fmt"
	"iter"

	"github.com/katalvlaran/lvseq/card"
	"github.com/katalvlaran/lvseq/dim"
	"github.com/katalvlaran/lvseq/seq"
)

// ErrShape indicates that a data buffer does not match the requested shape.
var ErrShape = errors.New("vec: data length does not match shape")

// Tensor is a rectangular sequence of dimension len(lens) over a flat
// row-major buffer.
type Tensor[T any] struct {
	data    []T
	lens    []int
	strides []int
}

var _ seq.Mut[int] = (*Tensor[int])(nil)

// NewTensor wraps data with the given shape; len(data) must equal the
// product of lens. Returns ErrShape otherwise; invalid shapes (no lengths,
// too many or negative lengths) panic as in card.Rect.
func NewTensor[T any](data []T, lens ...int) (*Tensor[T], error) {
	shape := card.Rect(lens...)
	if n := card.Total(shape); n != len(data) {
		return nil, fmt.Errorf("NewTensor(%v): len %d, want %d: %w", lens, len(data), n, ErrShape)
	}

	return &Tensor[T]{data: data, lens: shape.Lens(), strides: rowMajorStrides(lens)}, nil
}

// ZeroTensor allocates a zero-valued tensor of the given shape.
func ZeroTensor[T any](lens ...int) *Tensor[T] {
	shape := card.Rect(lens...)
	data := make([]T, card.Total(shape))

	return &Tensor[T]{data: data, lens: shape.Lens(), strides: rowMajorStrides(lens)}
}

// rowMajorStrides returns element strides for a row-major (C-order) layout.
func rowMajorStrides(lens []int) []int {
	r := make([]int, len(lens))
	s := 1
	for k := len(lens) - 1; k >= 0; k-- {
		r[k] = s
		s *= lens[k]
	}

	return r
}

// offset ravels idx into the flat buffer.
func (t *Tensor[T]) offset(idx dim.Idx) int {
	off := 0
	for k, st := range t.strides {
		off += idx.At(k) * st
	}

	return off
}

// Data returns the backing buffer (shared).
func (t *Tensor[T]) Data() []T { return t.data }

// Lens returns the per-depth lengths.
func (t *Tensor[T]) Lens() []int { return append([]int(nil), t.lens...) }

// Strides returns the row-major strides.
func (t *Tensor[T]) Strides() []int { return append([]int(nil), t.strides...) }

// Shape returns the rectangular cardinality.
func (t *Tensor[T]) Shape() card.Rectangular { return card.Rect(t.lens...) }

// Dim returns the number of depths.
func (t *Tensor[T]) Dim() dim.Dim { return dim.Dim(len(t.lens)) }

// Card returns lens[len(sub)].
func (t *Tensor[T]) Card(sub dim.Idx) int { return t.lens[sub.Len()] }

// At returns the element at idx.
func (t *Tensor[T]) At(idx dim.Idx) T { return t.data[t.offset(idx)] }

// Child returns the contiguous sub-tensor of block i.
func (t *Tensor[T]) Child(i int) seq.Seq[T] { return t.child(i) }

func (t *Tensor[T]) child(i int) *Tensor[T] {
	if len(t.lens) == 1 {
		seq.Fail("vec.Tensor.Child", seq.ErrNoChildren)
	}
	block := t.strides[0]

	return &Tensor[T]{
		data:    t.data[i*block : (i+1)*block],
		lens:    t.lens[1:],
		strides: t.strides[1:],
	}
}

// All yields the buffer in order, which is row-major nesting order.
func (t *Tensor[T]) All() iter.Seq[T] { return Slice[T](t.data).All() }

// Set writes the element at idx.
func (t *Tensor[T]) Set(idx dim.Idx, v T) { t.data[t.offset(idx)] = v }

// AtMut returns a pointer to the element at idx.
func (t *Tensor[T]) AtMut(idx dim.Idx) *T { return &t.data[t.offset(idx)] }

// ChildMut returns the mutable sub-tensor of block i.
func (t *Tensor[T]) ChildMut(i int) seq.Mut[T] { return t.child(i) }

// MutAll applies f to every element.
func (t *Tensor[T]) MutAll(f func(*T)) { Slice[T](t.data).MutAll(f) }

// ResetAll overwrites every element with v.
func (t *Tensor[T]) ResetAll(v T) { Slice[T](t.data).ResetAll(v) }
