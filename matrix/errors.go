// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. Constructors return these sentinels wrapped with their context
// tag and tests check them via errors.Is. Access-time violations (a column
// outside its row, an unknown layout) are programmer errors and panic with
// an error value wrapping the same sentinels.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency. Call sites
// wrap with fmt.Errorf("Ctx: %w", ErrX); callers still match with errors.Is.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil source -> source dimension -> shape -> dimension mismatch -> structure.

var (
	// ErrNilSource indicates that a nil sequence was passed to a view constructor.
	ErrNilSource = errors.New("matrix: nil source sequence")

	// ErrSourceDim indicates a source of the wrong dimension
	// (flat and jagged views need D1, nested views need D2).
	ErrSourceDim = errors.New("matrix: source has the wrong dimension")

	// ErrBadShape is returned when a requested shape is invalid
	// (negative rows/cols, negative row length, unbounded source).
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrDimensionMismatch indicates rows*cols differs from the flat source cardinality.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNotRectangular indicates a nested source whose rows differ in length.
	ErrNotRectangular = errors.New("matrix: source is not rectangular")

	// ErrRowEnds indicates row-end offsets that decrease, are negative, or
	// whose last value differs from the flat source cardinality.
	ErrRowEnds = errors.New("matrix: invalid row-end offsets")

	// ErrOutOfRange indicates that a row or column lies outside the view.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrLayout indicates a Layout value other than RowMajor or ColMajor.
	ErrLayout = errors.New("matrix: unknown layout")
)
