// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for matrix views. This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal).
//
// Design goals:
//   - Deterministic behavior: no global state.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//   - Options fields are unexported; public APIs consume ...Option.
package matrix

// ---------- Defaults (single source of truth) ----------

// DefaultLayout is the layout used when no WithLayout option is given.
const DefaultLayout = RowMajor

// ---------- Internal panic messages (no magic strings) ----------

const panicLayoutInvalid = "matrix: WithLayout: layout must be RowMajor or ColMajor"

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly; the last one wins.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	layout Layout // DefaultLayout
}

// WithLayout selects the storage layout of the wrapped sequence.
// Implementation:
//   - Stage 1: validate l is RowMajor or ColMajor.
//   - Stage 2: return a setter that writes the layout into Options.
//
// Notes:
//   - For flat views the layout decides the offset formula.
//   - For nested views it decides whether children are rows or columns.
func WithLayout(l Layout) Option {
	if !l.Valid() {
		panic(panicLayoutInvalid)
	}

	return func(o *Options) { o.layout = l }
}

// WithRowMajor is WithLayout(RowMajor).
func WithRowMajor() Option { return WithLayout(RowMajor) }

// WithColMajor is WithLayout(ColMajor).
func WithColMajor() Option { return WithLayout(ColMajor) }

// gatherOptions applies defaults and then opts in order; nil options are skipped.
func gatherOptions(opts ...Option) Options {
	o := Options{layout: DefaultLayout}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
