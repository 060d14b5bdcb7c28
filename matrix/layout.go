// SPDX-License-Identifier: MIT

// Package matrix - storage layouts.
//
// Purpose:
//   - Map a logical (row, col) pair onto a flat offset.
//     RowMajor: offset = cols*row + col.
//     ColMajor: offset = rows*col + row.
//   - FlatIndex is the checked entry point; views use the unchecked formula
//     so that At only pays for what the wrapped sequence checks itself.
//
// Complexity quicksheet:
//   - FlatIndex/offset: O(1).

package matrix

import "fmt"

// Layout selects how a logical grid is laid out in flat storage.
type Layout uint8

const (
	// RowMajor stores each row contiguously (C order).
	RowMajor Layout = iota
	// ColMajor stores each column contiguously (Fortran order).
	ColMajor
)

// String returns "RowMajor" or "ColMajor".
func (l Layout) String() string {
	switch l {
	case RowMajor:
		return "RowMajor"
	case ColMajor:
		return "ColMajor"
	default:
		return fmt.Sprintf("Layout(%d)", uint8(l))
	}
}

// Valid reports whether l is RowMajor or ColMajor.
func (l Layout) Valid() bool { return l == RowMajor || l == ColMajor }

// Transposed returns the other layout.
func (l Layout) Transposed() Layout {
	if l == RowMajor {
		return ColMajor
	}

	return RowMajor
}

// FlatIndex returns the flat offset of (i, j) in a rows x cols grid.
// MAIN DESCRIPTION:
//   - Checked counterpart of the formula used by the views.
//
// Behavior highlights:
//   - Panics with ErrOutOfRange when i is outside [0, rows) or j outside [0, cols).
//   - Panics with ErrLayout on an unknown layout.
//
// Complexity:
//   - Time O(1), Space O(1).
func (l Layout) FlatIndex(rows, cols, i, j int) int {
	if !l.Valid() {
		panic(fmt.Errorf("Layout.FlatIndex: %w", ErrLayout))
	}
	if i < 0 || i >= rows || j < 0 || j >= cols {
		panic(fmt.Errorf("%s.FlatIndex(%d,%d) in %dx%d: %w", l, i, j, rows, cols, ErrOutOfRange))
	}

	return l.offset(rows, cols, i, j)
}

// offset is the unchecked formula.
func (l Layout) offset(rows, cols, i, j int) int {
	if l == RowMajor {
		return cols*i + j
	}

	return rows*j + i
}

// stepOf returns the flat start and stride of row i (byRow) or column i.
func (l Layout) stepOf(rows, cols, i int, byRow bool) (start, step int) {
	switch {
	case byRow && l == RowMajor:
		return cols * i, 1
	case byRow:
		return i, rows
	case l == RowMajor:
		return i, cols
	default:
		return rows * i, 1
	}
}
