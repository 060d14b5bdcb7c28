// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for the construction checks
//    of every view (nil source, source dimension, shape, row-end offsets).
//  - Keep constructors minimal by delegating the checks here.
//  - Return sentinel errors wrapped with the validator tag so call sites can
//    add their own context and callers can still match with errors.Is.
//
// Determinism & Performance:
//  - Checks are pure and allocate nothing, except ValidateRectangular which
//    walks the rows of the source once.
//
// Note:
//  - Each composite validator follows a fixed sequence
//    (NotNil -> Dim -> Bounded -> shape-specific check).

package matrix

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvseq/dim"
	"github.com/katalvlaran/lvseq/seq"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateSource ensures src is non-nil, of dimension d and bounded.
//
// Returns ErrNilSource, ErrSourceDim or ErrBadShape (unbounded source).
// Complexity: O(1).
func ValidateSource[T any](src seq.Seq[T], d dim.Dim) error {
	if src == nil {
		return validatorErrorf("ValidateSource", ErrNilSource)
	}
	if src.Dim() != d {
		return validatorErrorf(fmt.Sprintf("ValidateSource: got %s, want %s", src.Dim(), d), ErrSourceDim)
	}
	if seq.IsUnbounded(src) {
		return validatorErrorf("ValidateSource: unbounded", ErrBadShape)
	}

	return nil
}

// ValidateShape ensures rows and cols are non-negative and that rows*cols
// fits in an int.
// Complexity: O(1).
func ValidateShape(rows, cols int) error {
	if rows < 0 || cols < 0 {
		return validatorErrorf(fmt.Sprintf("ValidateShape(%d,%d)", rows, cols), ErrBadShape)
	}
	if cols != 0 && rows > math.MaxInt/cols {
		return validatorErrorf(fmt.Sprintf("ValidateShape(%d,%d): area overflows int", rows, cols), ErrBadShape)
	}

	return nil
}

// ValidateFlat – Composite: Source(D1) -> Shape -> rows*cols == card.
//
// Errors: ErrNilSource, ErrSourceDim, ErrBadShape, ErrDimensionMismatch.
// Complexity: O(1).
func ValidateFlat[T any](src seq.Seq[T], rows, cols int) error {
	if err := ValidateSource(src, dim.D1); err != nil {
		return err
	}
	if err := ValidateShape(rows, cols); err != nil {
		return err
	}
	if n := seq.NumChildren(src); rows*cols != n {
		return validatorErrorf(fmt.Sprintf("ValidateFlat: %dx%d over %d", rows, cols, n), ErrDimensionMismatch)
	}

	return nil
}

// ValidateRectangular – Composite: Source(D2) -> every row has the same length.
//
// Errors: ErrNilSource, ErrSourceDim, ErrBadShape, ErrNotRectangular.
// Complexity: O(rows).
func ValidateRectangular[T any](src seq.Seq[T]) error {
	if err := ValidateSource(src, dim.D2); err != nil {
		return err
	}
	n := seq.NumChildren(src)
	if n == 0 {
		return nil
	}
	want := src.Card(dim.I1(0))
	for i := 1; i < n; i++ {
		if got := src.Card(dim.I1(i)); got != want {
			return validatorErrorf(fmt.Sprintf("ValidateRectangular: row %d has %d, want %d", i, got, want), ErrNotRectangular)
		}
	}

	return nil
}

// ValidateRowEnds ensures ends is non-negative, non-decreasing and that its
// last value equals total (an empty ends requires total == 0).
//
// Errors: ErrRowEnds.
// Complexity: O(len(ends)).
func ValidateRowEnds(ends []int, total int) error {
	prev := 0
	for i, e := range ends {
		if e < prev {
			return validatorErrorf(fmt.Sprintf("ValidateRowEnds: ends[%d]=%d < %d", i, e, prev), ErrRowEnds)
		}
		prev = e
	}
	if prev != total {
		return validatorErrorf(fmt.Sprintf("ValidateRowEnds: last end %d, flat card %d", prev, total), ErrRowEnds)
	}

	return nil
}
