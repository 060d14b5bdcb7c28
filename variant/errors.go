// SPDX-License-Identifier: MIT
// Package variant: sentinel error set.
//
// Bounding a variant with a cardinality of another dimension, building a
// functional sequence from a nil function, backing a Sparse with an evicting
// lookup, or writing with an index of the wrong arity are programmer errors
// and panic with the sentinels below.

package variant

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvseq/card"
	"github.com/katalvlaran/lvseq/dim"
)

var (
	// ErrBoundsDim indicates a cardinality whose dimension differs from the sequence.
	ErrBoundsDim = errors.New("variant: bounds dimension mismatch")

	// ErrNilFunc indicates a nil production function.
	ErrNilFunc = errors.New("variant: nil function")

	// ErrNilInner indicates a nil inner sequence for Cached.
	ErrNilInner = errors.New("variant: nil inner sequence")

	// ErrEvictingLookup indicates a bounded lookup passed to Sparse, whose
	// stored entries are the data itself.
	ErrEvictingLookup = errors.New("variant: sparse storage cannot use an evicting lookup")
)

// fail panics with err wrapped under ctx.
func fail(ctx string, err error) {
	panic(fmt.Errorf("%s: %w", ctx, err))
}

// mustBounds panics unless c describes a dimension-d sequence.
func mustBounds(ctx string, c card.Cardinality, d dim.Dim) {
	if c == nil || c.Dim() != d {
		fail(ctx, ErrBoundsDim)
	}
}
