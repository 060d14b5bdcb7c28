// SPDX-License-Identifier: MIT

// Package dtw - functional options.
//
// Defaults:
//   - Window: NoWindow (unconstrained)
//   - SlopePenalty: 0
//   - MemoryMode: FullMatrix
//   - path recovery: off

package dtw

import (
	"fmt"
	"math"
)

// MemoryMode controls how the accumulated cost table is stored.
type MemoryMode uint8

const (
	// FullMatrix keeps the whole table; required for path recovery. O(n*m) memory.
	FullMatrix MemoryMode = iota

	// TwoRows keeps the previous and current rows only. O(m) memory.
	TwoRows
)

// String returns the mode name.
func (m MemoryMode) String() string {
	switch m {
	case FullMatrix:
		return "FullMatrix"
	case TwoRows:
		return "TwoRows"
	default:
		return fmt.Sprintf("MemoryMode(%d)", uint8(m))
	}
}

// NoWindow disables the Sakoe-Chiba band.
const NoWindow = -1

const (
	panicWindowNegative  = "dtw: WithWindow: window must be >= 0 or NoWindow"
	panicPenaltyInvalid  = "dtw: WithSlopePenalty: penalty must be finite and >= 0"
	panicMemoryModeValid = "dtw: WithMemoryMode: mode must be FullMatrix or TwoRows"
)

// Options holds the resolved configuration. Construct via Option functions.
type Options struct {
	window   int
	penalty  float64
	mode     MemoryMode
	wantPath bool
}

// Option mutates Options.
type Option func(*Options)

// WithWindow limits the alignment to |i-j| <= w. NoWindow removes the limit.
func WithWindow(w int) Option {
	if w < NoWindow {
		panic(panicWindowNegative)
	}

	return func(o *Options) { o.window = w }
}

// WithSlopePenalty adds p to every non-diagonal step.
func WithSlopePenalty(p float64) Option {
	if p < 0 || math.IsNaN(p) || math.IsInf(p, 0) {
		panic(panicPenaltyInvalid)
	}

	return func(o *Options) { o.penalty = p }
}

// WithMemoryMode selects the table storage.
func WithMemoryMode(m MemoryMode) Option {
	if m != FullMatrix && m != TwoRows {
		panic(panicMemoryModeValid)
	}

	return func(o *Options) { o.mode = m }
}

// WithPath requests the warping path in the result.
func WithPath() Option { return func(o *Options) { o.wantPath = true } }

func gatherOptions(opts ...Option) Options {
	o := Options{window: NoWindow, mode: FullMatrix}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
