// SPDX-License-Identifier: MIT

// Package lookup defines the lookup collaborator behind sparse and cached
// sequences, and ships three backings for it.
//
//   - Map     - builtin map of boxed values; the default.
//   - Ordered - insertion-ordered map (github.com/wk8/go-ordered-map/v2);
//     All and MutAll visit entries in insertion order.
//   - LRU     - bounded least-recently-used cache
//     (github.com/hashicorp/golang-lru/v2); inserting beyond capacity
//     evicts the oldest entry.
//
// None of the backings is safe for concurrent use.
package lookup

import "iter"

// Lookup is a mutable key -> value store.
//
// Entry returns a pointer to the stored value for k, inserting def() first
// when k is absent (get-or-insert-with). The pointer stays valid until the
// entry is removed by Clear (or evicted, for bounded backings).
type Lookup[K comparable, V any] interface {
	Len() int
	Contains(k K) bool
	Get(k K) (V, bool)
	Insert(k K, v V)
	Entry(k K, def func() V) *V
	All() iter.Seq2[K, V]
	MutAll(f func(k K, v *V))
	Clear()
}

// Evicting is implemented by bounded backings that may drop an entry on
// Insert or Entry. Consumers that need every write to persist reject them.
type Evicting interface {
	Cap() int
}

// Factory builds a fresh, empty Lookup.
type Factory[K comparable, V any] func() Lookup[K, V]
