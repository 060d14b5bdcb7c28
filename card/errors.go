// SPDX-License-Identifier: MIT
// Package card: sentinel error set.
//
// Cardinality queries are hot-path calls with no error return; misuse is a
// programmer error and panics with a wrapped sentinel. Constructors taking
// user data (Rect, Lengths, Var) panic as well: a malformed shape must fail
// at construction rather than at first access.

package card

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvseq/dim"
)

var (
	// ErrNoChildren indicates Child was requested on a dimension-1 cardinality.
	ErrNoChildren = errors.New("card: dimension-1 cardinality has no children")

	// ErrSubIndex indicates a sub-index whose arity is not below the cardinality dimension.
	ErrSubIndex = errors.New("card: sub-index arity must be below the dimension")

	// ErrNegativeCount indicates a negative length passed to a constructor.
	ErrNegativeCount = errors.New("card: negative count")

	// ErrCountsDim indicates a counts sequence whose dimension cannot describe a Variable cardinality.
	ErrCountsDim = errors.New("card: counts dimension out of range")
)

// wrap tags err with ctx, preserving the sentinel for errors.Is.
func wrap(ctx string, err error) error {
	return fmt.Errorf("%s: %w", ctx, err)
}

// fail panics with err wrapped under ctx.
func fail(ctx string, err error) {
	panic(wrap(ctx, err))
}

// mustSub panics unless sub can be queried on a dimension-d cardinality.
func mustSub(ctx string, sub dim.Idx, d dim.Dim) {
	if sub.Dim() >= d {
		fail(ctx+"("+sub.String()+") on "+d.String(), ErrSubIndex)
	}
}
