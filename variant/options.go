// SPDX-License-Identifier: MIT
// Package variant: functional configuration for lookup-backed variants.
//
// This file defines:
//   - Option / Options (functional options with unexported state),
//   - WithX constructors that validate and panic on nonsensical values,
//   - gatherOptions, which applies defaults first and options in order.
//
// Defaults:
//   - lookup: builtin map (lookup.Map).
//   - equality used by Sparse.ResetAll: == when T is a comparable non-interface
//     type, otherwise none (ResetAll then always overwrites element-wise).
//
// AI-Hints:
//   - Use WithOrderedLookup when entry order must be reproducible.
//   - Use WithLRULookup(n) to bound the memory of a Cached over a huge domain;
//     evicted indices are recomputed on the next read. Sparse rejects it.

package variant

import (
	"fmt"
	"reflect"

	"github.com/katalvlaran/lvseq/dim"
	"github.com/katalvlaran/lvseq/lookup"
)

// Panic messages for option constructors.
const (
	panicNilLookup = "variant: WithLookup(nil)"
	panicNilEqual  = "variant: WithEqual(nil)"
)

// Option mutates Options. Safe to apply repeatedly; the last one wins.
type Option[T any] func(*Options[T])

// Options is the effective configuration after applying Option setters.
type Options[T any] struct {
	factory lookup.Factory[dim.Idx, T] // builds the lookup; never nil after gatherOptions
	equal   func(a, b T) bool          // nil means "unknown equality"
}

// WithLookup sets the factory for the backing lookup. Panics on nil.
func WithLookup[T any](f lookup.Factory[dim.Idx, T]) Option[T] {
	if f == nil {
		panic(panicNilLookup)
	}

	return func(o *Options[T]) { o.factory = f }
}

// WithMapLookup selects the builtin map backing (the default).
func WithMapLookup[T any]() Option[T] {
	return WithLookup(lookup.MapFactory[dim.Idx, T]())
}

// WithOrderedLookup selects the insertion-ordered backing.
func WithOrderedLookup[T any]() Option[T] {
	return WithLookup(lookup.OrderedFactory[dim.Idx, T]())
}

// WithLRULookup selects a bounded LRU backing of the given capacity.
// Only Cached accepts it; NewSparse panics with ErrEvictingLookup.
// Panics with lookup.ErrCapacity when size <= 0.
func WithLRULookup[T any](size int) Option[T] {
	return WithLookup(lookup.LRUFactory[dim.Idx, T](size))
}

// WithEqual sets the equality used to detect "reset to default". Panics on nil.
func WithEqual[T any](eq func(a, b T) bool) Option[T] {
	if eq == nil {
		panic(panicNilEqual)
	}

	return func(o *Options[T]) { o.equal = eq }
}

// gatherOptions applies defaults and then opts in order.
func gatherOptions[T any](opts ...Option[T]) Options[T] {
	o := Options[T]{
		factory: lookup.MapFactory[dim.Idx, T](),
		equal:   defaultEqual[T](),
	}
	for _, opt := range opts {
		if opt == nil {
			panic(fmt.Sprintf("variant: nil Option[%s]", reflect.TypeFor[T]()))
		}
		opt(&o)
	}

	return o
}

// defaultEqual returns == for comparable, non-interface T and nil otherwise.
// Interface types are excluded because == panics on non-comparable dynamic values.
func defaultEqual[T any]() func(a, b T) bool {
	rt := reflect.TypeFor[T]()
	if !rt.Comparable() || rt.Kind() == reflect.Interface {
		return nil
	}

	return func(a, b T) bool { return any(a) == any(b) }
}
