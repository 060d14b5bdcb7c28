// SPDX-License-Identifier: MIT

// Package matrix - one-dimensional line views (rows and columns).
//
// Purpose:
//   - span walks a flat source from start with a fixed step; a unit-step
//     span over a vec.Slice is returned as the sub-slice itself, so major
//     axis lines over materialized storage are contiguous in memory.
//   - cross reads element k of the minor axis of a nested source, i.e.
//     src.At([k, fixed]); it is never contiguous but always correct.

package matrix

import (
	"iter"

	"github.com/katalvlaran/lvseq/dim"
	"github.com/katalvlaran/lvseq/seq"
	"github.com/katalvlaran/lvseq/vec"
)

// ---------- span ----------

type span[T any] struct {
	src         seq.Seq[T]
	start, step int
	n           int
}

type spanMut[T any] struct {
	span[T]
	mut seq.Mut[T]
}

var (
	_ seq.Seq[int] = span[int]{}
	_ seq.Mut[int] = spanMut[int]{}
)

// newSpan returns the line; contiguous slices short-circuit to a sub-slice.
func newSpan[T any](src seq.Seq[T], start, step, n int) seq.Seq[T] {
	if s, ok := src.(vec.Slice[T]); ok && step == 1 {
		return s[start : start+n : start+n]
	}

	return span[T]{src: src, start: start, step: step, n: n}
}

func newSpanMut[T any](src seq.Mut[T], start, step, n int) seq.Mut[T] {
	if s, ok := src.(vec.Slice[T]); ok && step == 1 {
		return s[start : start+n : start+n]
	}

	return spanMut[T]{span: span[T]{src: src, start: start, step: step, n: n}, mut: src}
}

func (s span[T]) flat(idx dim.Idx) dim.Idx { return dim.I1(s.start + idx.First()*s.step) }

func (span[T]) Dim() dim.Dim { return dim.D1 }

func (s span[T]) Card(dim.Idx) int { return s.n }

func (s span[T]) At(idx dim.Idx) T { return s.src.At(s.flat(idx)) }

func (span[T]) Child(int) seq.Seq[T] {
	seq.Fail("matrix.line.Child", seq.ErrNoChildren)

	return nil
}

func (s span[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for k := 0; k < s.n; k++ {
			if !yield(s.src.At(dim.I1(s.start + k*s.step))) {
				return
			}
		}
	}
}

func (s spanMut[T]) Set(idx dim.Idx, v T) { s.mut.Set(s.flat(idx), v) }

func (s spanMut[T]) AtMut(idx dim.Idx) *T { return s.mut.AtMut(s.flat(idx)) }

func (spanMut[T]) ChildMut(int) seq.Mut[T] {
	seq.Fail("matrix.line.ChildMut", seq.ErrNoChildren)

	return nil
}

func (s spanMut[T]) MutAll(f func(*T)) {
	for k := 0; k < s.n; k++ {
		f(s.mut.AtMut(dim.I1(s.start + k*s.step)))
	}
}

func (s spanMut[T]) ResetAll(v T) {
	for k := 0; k < s.n; k++ {
		s.mut.Set(dim.I1(s.start+k*s.step), v)
	}
}

// ---------- cross ----------

type cross[T any] struct {
	src   seq.Seq[T]
	fixed int
	n     int
}

type crossMut[T any] struct {
	cross[T]
	mut seq.Mut[T]
}

var (
	_ seq.Seq[int] = cross[int]{}
	_ seq.Mut[int] = crossMut[int]{}
)

func (c cross[T]) cell(idx dim.Idx) dim.Idx { return dim.I2(idx.First(), c.fixed) }

func (cross[T]) Dim() dim.Dim { return dim.D1 }

func (c cross[T]) Card(dim.Idx) int { return c.n }

func (c cross[T]) At(idx dim.Idx) T { return c.src.At(c.cell(idx)) }

func (cross[T]) Child(int) seq.Seq[T] {
	seq.Fail("matrix.line.Child", seq.ErrNoChildren)

	return nil
}

func (c cross[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for k := 0; k < c.n; k++ {
			if !yield(c.src.At(dim.I2(k, c.fixed))) {
				return
			}
		}
	}
}

func (c crossMut[T]) Set(idx dim.Idx, v T) { c.mut.Set(c.cell(idx), v) }

func (c crossMut[T]) AtMut(idx dim.Idx) *T { return c.mut.AtMut(c.cell(idx)) }

func (crossMut[T]) ChildMut(int) seq.Mut[T] {
	seq.Fail("matrix.line.ChildMut", seq.ErrNoChildren)

	return nil
}

func (c crossMut[T]) MutAll(f func(*T)) {
	for k := 0; k < c.n; k++ {
		f(c.mut.AtMut(dim.I2(k, c.fixed)))
	}
}

func (c crossMut[T]) ResetAll(v T) {
	for k := 0; k < c.n; k++ {
		c.mut.Set(dim.I2(k, c.fixed), v)
	}
}
