// SPDX-License-Identifier: MIT

// Package matrix - Dense: owned, materialized storage.
//
// Purpose:
//   - Own a flat []T of length rows*cols under a chosen layout and expose it
//     through the FlatMut view, so every view rule applies unchanged.
//   - Materialize copies any Matrix into fresh storage.
//
// AI-Hints:
//   - Data() exposes the buffer for hot loops; offsets follow Layout.FlatIndex.
//   - Major axis lines (Row in RowMajor, Col in ColMajor) are sub-slices of Data().
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set: O(1); Materialize/Clone: O(r*c).

package matrix

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lvseq/dim"
	"github.com/katalvlaran/lvseq/vec"
)

// ---------- Formatting literals  ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// Dense is a materialized matrix backed by one contiguous buffer.
type Dense[T any] struct {
	FlatMut[T]
	data vec.Slice[T]
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ MatrixMut[int] = (*Dense[int])(nil)
	_ fmt.Stringer   = (*Dense[int])(nil)
)

// NewDense creates a rows x cols zero matrix.
// MAIN DESCRIPTION:
//   - Public constructor with shape validation; zero-area shapes are allowed.
//
// Errors:
//   - ErrBadShape when rows < 0 or cols < 0.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense[T any](rows, cols int, opts ...Option) (*Dense[T], error) {
	if err := ValidateShape(rows, cols); err != nil {
		return nil, fmt.Errorf("NewDense: %w", err)
	}

	return newDense(make(vec.Slice[T], rows*cols), rows, cols, gatherOptions(opts...).layout), nil
}

// NewDenseFrom wraps data (not copied) as a rows x cols matrix.
//
// Errors:
//   - ErrBadShape, ErrDimensionMismatch when len(data) != rows*cols.
func NewDenseFrom[T any](data []T, rows, cols int, opts ...Option) (*Dense[T], error) {
	if err := ValidateFlat[T](vec.Slice[T](data), rows, cols); err != nil {
		return nil, fmt.Errorf("NewDenseFrom: %w", err)
	}

	return newDense(vec.Slice[T](data), rows, cols, gatherOptions(opts...).layout), nil
}

func newDense[T any](data vec.Slice[T], rows, cols int, l Layout) *Dense[T] {
	return &Dense[T]{
		FlatMut: FlatMut[T]{
			Flat: Flat[T]{grid: grid{rows: rows, cols: cols, layout: l}, src: data},
			mut:  data,
		},
		data: data,
	}
}

// Materialize copies m into a new Dense of the same shape; the layout
// defaults to m.Layout() and may be overridden with WithLayout.
// Panics with ErrBadShape when rows*cols overflows int.
// Complexity: O(r*c).
func Materialize[T any](m Matrix[T], opts ...Option) *Dense[T] {
	rows, cols := m.NumRows(), m.NumCols()
	if err := ValidateShape(rows, cols); err != nil {
		panic(fmt.Errorf("Materialize: %w", err))
	}
	o := Options{layout: m.Layout()}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	d := newDense(make(vec.Slice[T], rows*cols), rows, cols, o.layout)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			d.data[o.layout.offset(rows, cols, i, j)] = m.At(dim.I2(i, j))
		}
	}

	return d
}

// Data returns the backing buffer (shared).
func (m *Dense[T]) Data() []T { return m.data }

// Clone returns a deep copy with the same layout.
func (m *Dense[T]) Clone() *Dense[T] {
	return newDense(append(vec.Slice[T](nil), m.data...), m.rows, m.cols, m.layout)
}

// String renders one "[a, b, c]" line per logical row.
func (m *Dense[T]) String() string {
	var b strings.Builder
	var i, j int
	for i = 0; i < m.rows; i++ { // iterate rows deterministically
		b.WriteString(_fmtRowOpen)
		for j = 0; j < m.cols; j++ {
			fmt.Fprintf(&b, "%v", m.data[m.layout.offset(m.rows, m.cols, i, j)])
			if j+1 < m.cols {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}
