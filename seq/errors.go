// SPDX-License-Identifier: MIT
// Package seq: sentinel error set.
//
// Sequence access has no error return; every sentinel here is raised by
// panic with a wrapped error value (programmer errors only). The checked
// access path (TryAt) reports absence with a boolean, not an error.

package seq

import (
	"errors"
	"fmt"
)

var (
	// ErrNoChildren indicates Child was requested on a dimension-1 sequence.
	ErrNoChildren = errors.New("seq: dimension-1 sequence has no children")

	// ErrPrefix indicates a projection prefix whose arity is not below the sequence dimension.
	ErrPrefix = errors.New("seq: prefix arity must be below the dimension")
)

// Fail panics with err wrapped under ctx. Backings in other packages use it
// to raise the sentinels of this package with a uniform message shape.
func Fail(ctx string, err error) {
	panic(fmt.Errorf("%s: %w", ctx, err))
}
