// SPDX-License-Identifier: MIT

// Package dtw - sentinel errors.
//
// Errors are returned by DTW and Align; option constructors panic on
// nonsensical values instead.

package dtw

import "errors"

var (
	// ErrNilInput indicates a nil sequence argument.
	ErrNilInput = errors.New("dtw: nil input sequence")

	// ErrNotSequence indicates an input whose dimension is not D1.
	ErrNotSequence = errors.New("dtw: input must be a dimension-1 sequence")

	// ErrUnboundedInput indicates an input without a finite length.
	ErrUnboundedInput = errors.New("dtw: input sequence is unbounded")

	// ErrEmptyInput indicates one or both inputs are empty.
	ErrEmptyInput = errors.New("dtw: input sequences must be non-empty")

	// ErrNilCost indicates a nil cost function passed to Align.
	ErrNilCost = errors.New("dtw: nil cost function")

	// ErrPathNeedsMatrix indicates path recovery requested without FullMatrix mode.
	ErrPathNeedsMatrix = errors.New("dtw: path recovery requires MemoryMode=FullMatrix")
)
