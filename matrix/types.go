// SPDX-License-Identifier: MIT

// Package matrix: the public view contracts.
// This file contains ONLY the Matrix and MatrixMut interfaces; concrete
// views live in flat.go, nested.go, dense.go, transpose.go and jagged.go.
package matrix

import "github.com/katalvlaran/lvseq/seq"

// Matrix is a dimension-2 sequence with a fixed row and column count.
// Child(i) is the i-th logical row regardless of layout.
//
// Complexity notes: every method is expected O(1) except All (O(rows*cols)).
type Matrix[T any] interface {
	seq.Seq[T]

	// NumRows returns the number of logical rows.
	NumRows() int

	// NumCols returns the number of logical columns.
	NumCols() int

	// Layout reports how the wrapped storage is laid out.
	Layout() Layout

	// Row returns row i as a dimension-1 sequence.
	// Panics with ErrOutOfRange when i is outside [0, NumRows()).
	Row(i int) seq.Seq[T]

	// Col returns column j as a dimension-1 sequence.
	// Panics with ErrOutOfRange when j is outside [0, NumCols()).
	Col(j int) seq.Seq[T]
}

// MatrixMut is a Matrix whose elements can be written through the view.
type MatrixMut[T any] interface {
	Matrix[T]
	seq.Mut[T]

	// RowMut returns row i as a mutable dimension-1 sequence.
	RowMut(i int) seq.Mut[T]

	// ColMut returns column j as a mutable dimension-1 sequence.
	ColMut(j int) seq.Mut[T]
}
