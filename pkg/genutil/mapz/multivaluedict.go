package mapz

import "slices"

// Pair is a single (key, value) entry of a MultiValueDictionary.
type Pair[K comparable, V comparable] struct {
	Key   K
	Value V
}

// MultiValueDictionary is a map from keys to *sets* of values: each key holds
// one or more distinct values, and duplicate (key, value) pairs collapse to
// one.
//
// A key exists only while it has at least one value; removing a key's last
// value removes the key itself. Keys enumerate in the order they were first
// added, and values within a key in the order they were first added for that
// key, so enumeration of an unmodified dictionary is repeatable.
//
// Not safe for concurrent use; callers needing shared access must synchronize
// externally.
type MultiValueDictionary[K comparable, V comparable] struct {
	keys    []K
	buckets map[K]*Set[V]
	count   int
}

// NewMultiValueDictionary constructs a new empty MultiValueDictionary.
func NewMultiValueDictionary[K comparable, V comparable]() *MultiValueDictionary[K, V] {
	return &MultiValueDictionary[K, V]{buckets: map[K]*Set[V]{}}
}

// NewMultiValueDictionaryWithCap constructs an empty dictionary with the
// provided capacity hint for the number of keys.
func NewMultiValueDictionaryWithCap[K comparable, V comparable](capacity uint32) *MultiValueDictionary[K, V] {
	return &MultiValueDictionary[K, V]{
		keys:    make([]K, 0, capacity),
		buckets: make(map[K]*Set[V], capacity),
	}
}

// Add adds the value to the set of values held under the given key, creating
// the key if necessary. Returns false, without change, if the (key, value)
// pair already exists.
func (mvd *MultiValueDictionary[K, V]) Add(key K, value V) bool {
	bucket, ok := mvd.buckets[key]
	if !ok {
		bucket = NewSet[V]()
		mvd.buckets[key] = bucket
		mvd.keys = append(mvd.keys, key)
	}

	if !bucket.Add(value) {
		return false
	}

	mvd.count++
	return true
}

// Get returns a snapshot of the values held under the given key and whether
// the key existed. The snapshot does not reflect later mutation of the
// dictionary.
func (mvd *MultiValueDictionary[K, V]) Get(key K) ([]V, bool) {
	bucket, ok := mvd.buckets[key]
	if !ok {
		return nil, false
	}
	return bucket.AsSlice(), true
}

// Remove removes a single value from the given key's values. If this was the
// key's last value, the key is removed entirely. Returns the removed pair and
// true, or a zero pair and false if the key or value was not present.
func (mvd *MultiValueDictionary[K, V]) Remove(key K, value V) (Pair[K, V], bool) {
	bucket, ok := mvd.buckets[key]
	if !ok {
		return Pair[K, V]{}, false
	}

	if !bucket.Delete(value) {
		return Pair[K, V]{}, false
	}

	mvd.count--
	if bucket.IsEmpty() {
		mvd.deleteKey(key)
	}
	return Pair[K, V]{Key: key, Value: value}, true
}

// RemoveAll removes the given key and every value held under it. Returns the
// removed values, each exactly once in their enumeration order, and whether
// the key existed.
func (mvd *MultiValueDictionary[K, V]) RemoveAll(key K) ([]V, bool) {
	bucket, ok := mvd.buckets[key]
	if !ok {
		return nil, false
	}

	removed := bucket.AsSlice()
	mvd.count -= len(removed)
	mvd.deleteKey(key)
	return removed, true
}

// Set replaces the values held under the given key with the provided values,
// deduplicated in the order given. Replacing with no values removes the key.
func (mvd *MultiValueDictionary[K, V]) Set(key K, values []V) {
	replacement := NewSet(values...)

	existing, ok := mvd.buckets[key]
	if ok {
		mvd.count -= existing.Len()
	}

	if replacement.IsEmpty() {
		if ok {
			mvd.deleteKey(key)
		}
		return
	}

	if !ok {
		mvd.keys = append(mvd.keys, key)
	}
	mvd.buckets[key] = replacement
	mvd.count += replacement.Len()
}

// Has returns true if the key holds at least one value.
func (mvd *MultiValueDictionary[K, V]) Has(key K) bool {
	_, ok := mvd.buckets[key]
	return ok
}

// HasValue returns true if the (key, value) pair is present.
func (mvd *MultiValueDictionary[K, V]) HasValue(key K, value V) bool {
	bucket, ok := mvd.buckets[key]
	return ok && bucket.Has(value)
}

// Len returns the number of *keys* present.
func (mvd *MultiValueDictionary[K, V]) Len() int { return len(mvd.keys) }

// NumValues returns the total number of (key, value) pairs present.
func (mvd *MultiValueDictionary[K, V]) NumValues() int { return mvd.count }

// IsEmpty returns true if the dictionary holds no keys.
func (mvd *MultiValueDictionary[K, V]) IsEmpty() bool { return len(mvd.keys) == 0 }

// Keys returns a snapshot of the keys in enumeration order.
func (mvd *MultiValueDictionary[K, V]) Keys() []K {
	return slices.Clone(mvd.keys)
}

// Values returns a snapshot of every value in the dictionary, in enumeration
// order. A value held under multiple keys appears once per key.
func (mvd *MultiValueDictionary[K, V]) Values() []V {
	values := make([]V, 0, mvd.count)
	for _, key := range mvd.keys {
		values = append(values, mvd.buckets[key].members...)
	}
	return values
}

// CountOf returns the number of values held under the given key, zero if the
// key is absent.
func (mvd *MultiValueDictionary[K, V]) CountOf(key K) int {
	bucket, ok := mvd.buckets[key]
	if !ok {
		return 0
	}
	return bucket.Len()
}

// Clear removes all keys and values.
func (mvd *MultiValueDictionary[K, V]) Clear() {
	mvd.keys = nil
	mvd.buckets = map[K]*Set[V]{}
	mvd.count = 0
}

// Clone returns a deep copy of the dictionary.
func (mvd *MultiValueDictionary[K, V]) Clone() *MultiValueDictionary[K, V] {
	buckets := make(map[K]*Set[V], len(mvd.buckets))
	for key, bucket := range mvd.buckets {
		buckets[key] = bucket.Copy()
	}
	return &MultiValueDictionary[K, V]{
		keys:    slices.Clone(mvd.keys),
		buckets: buckets,
		count:   mvd.count,
	}
}

func (mvd *MultiValueDictionary[K, V]) deleteKey(key K) {
	delete(mvd.buckets, key)
	if index := slices.Index(mvd.keys, key); index >= 0 {
		mvd.keys = slices.Delete(mvd.keys, index, index+1)
	}
}
