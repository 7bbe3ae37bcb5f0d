package mapz

import (
	"iter"
	"slices"
)

// Iterator is a cursor over every (key, value) pair of a MultiValueDictionary,
// flattening the two-level structure into one linear sequence: all of the
// first key's values, then all of the second key's, and so on, in the
// dictionary's enumeration order.
//
// Usage:
//
//	for it := mvd.Items(); it.Next(); {
//	    key, value := it.Key(), it.Value()
//	    // process key, value
//	}
//
// The iterator snapshots the dictionary at creation; mutations made
// afterward are not observed. Key, Value, and Pair are valid only after a
// Next call that returned true.
type Iterator[K comparable, V comparable] struct {
	keys    []K
	buckets [][]V
	outer   int
	inner   int
}

// Items returns a new iterator over a snapshot of the dictionary's current
// (key, value) pairs.
func (mvd *MultiValueDictionary[K, V]) Items() *Iterator[K, V] {
	buckets := make([][]V, len(mvd.keys))
	for i, key := range mvd.keys {
		buckets[i] = mvd.buckets[key].AsSlice()
	}
	return &Iterator[K, V]{
		keys:    slices.Clone(mvd.keys),
		buckets: buckets,
		inner:   -1,
	}
}

// Next advances the iterator to the next (key, value) pair, stepping to the
// following key whenever the current key's values are exhausted. Returns
// false once every pair has been produced; the iterator is then terminal and
// all further Next calls return false.
func (it *Iterator[K, V]) Next() bool {
	for it.outer < len(it.keys) {
		if it.inner+1 < len(it.buckets[it.outer]) {
			it.inner++
			return true
		}

		it.outer++
		it.inner = -1
	}
	return false
}

// Key returns the key at the current position.
func (it *Iterator[K, V]) Key() K { return it.keys[it.outer] }

// Value returns the value at the current position.
func (it *Iterator[K, V]) Value() V { return it.buckets[it.outer][it.inner] }

// Pair returns the (key, value) pair at the current position.
func (it *Iterator[K, V]) Pair() Pair[K, V] {
	return Pair[K, V]{Key: it.Key(), Value: it.Value()}
}

// All returns the dictionary's (key, value) pairs as a range-over-func
// sequence, in the same order as Items.
func (mvd *MultiValueDictionary[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for it := mvd.Items(); it.Next(); {
			if !yield(it.Key(), it.Value()) {
				return
			}
		}
	}
}

// ForEach invokes the given function for every (key, value) pair, in the
// same order as Items, until the function returns false.
func (mvd *MultiValueDictionary[K, V]) ForEach(fn func(key K, value V) bool) {
	for it := mvd.Items(); it.Next(); {
		if !fn(it.Key(), it.Value()) {
			return
		}
	}
}
