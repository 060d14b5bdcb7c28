// SPDX-License-Identifier: MIT
// Package dim: sentinel error set.
//
// Every violation in this package is a programmer error (wrong arity,
// overflowing the maximum dimension, traversing an unbounded shape), so the
// sentinels below are raised through panic with a wrapped error value.
// Tests match them with require.PanicsWithError or errors.Is on the
// recovered value.

package dim

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDim indicates a dimension tag outside D1..D8 where a sequence dimension is required.
	ErrInvalidDim = errors.New("dim: invalid dimension")

	// ErrDimOverflow indicates an index would exceed MaxDim components.
	ErrDimOverflow = errors.New("dim: index exceeds maximum dimension")

	// ErrNegativeIndex indicates a negative index component.
	ErrNegativeIndex = errors.New("dim: negative index component")

	// ErrArityMismatch indicates an index whose arity differs from the expected dimension.
	ErrArityMismatch = errors.New("dim: index arity mismatch")

	// ErrEmptySplit indicates Split was called on the empty sub-index.
	ErrEmptySplit = errors.New("dim: cannot split the empty index")

	// ErrUnbounded indicates a full traversal was requested over an unbounded domain.
	ErrUnbounded = errors.New("dim: full traversal over an unbounded domain")
)

// fail panics with err wrapped under the given context tag.
func fail(ctx string, err error) {
	panic(fmt.Errorf("%s: %w", ctx, err))
}
