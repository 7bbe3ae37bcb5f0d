package mapz

import "slices"

// Set is a deduplicating set of comparable items that remembers the order in
// which items were first added. Enumerating an unmodified set always yields
// the same sequence. Deleting an item and adding it back moves it to the end.
//
// Not safe for concurrent use.
type Set[T comparable] struct {
	indexes map[T]int
	members []T
}

// NewSet constructs a new set, populated with any items provided. Duplicates
// collapse to the first occurrence.
func NewSet[T comparable](items ...T) *Set[T] {
	s := &Set[T]{
		indexes: make(map[T]int, len(items)),
		members: make([]T, 0, len(items)),
	}
	for _, item := range items {
		s.Add(item)
	}
	return s
}

// NewSetWithCap constructs a new empty set with the given capacity hint.
func NewSetWithCap[T comparable](capacity uint32) *Set[T] {
	return &Set[T]{
		indexes: make(map[T]int, capacity),
		members: make([]T, 0, capacity),
	}
}

// Add adds the given item to the set. Returns true if the item was not
// already present.
func (s *Set[T]) Add(item T) bool {
	if _, ok := s.indexes[item]; ok {
		return false
	}

	s.indexes[item] = len(s.members)
	s.members = append(s.members, item)
	return true
}

// Delete removes the item from the set. Returns true if the item was present.
func (s *Set[T]) Delete(item T) bool {
	index, ok := s.indexes[item]
	if !ok {
		return false
	}

	delete(s.indexes, item)
	s.members = slices.Delete(s.members, index, index+1)
	for i := index; i < len(s.members); i++ {
		s.indexes[s.members[i]] = i
	}
	return true
}

// Has returns true if the item is in the set.
func (s *Set[T]) Has(item T) bool {
	_, ok := s.indexes[item]
	return ok
}

// Len returns the number of items in the set.
func (s *Set[T]) Len() int { return len(s.members) }

// IsEmpty returns true if the set is empty.
func (s *Set[T]) IsEmpty() bool { return len(s.members) == 0 }

// AsSlice returns a snapshot of the set's items in first-add order. The
// returned slice does not alias the set's internal storage.
func (s *Set[T]) AsSlice() []T {
	return slices.Clone(s.members)
}

// ForEach invokes the given function for each item in the set, in first-add
// order, until the function returns false.
func (s *Set[T]) ForEach(fn func(item T) bool) {
	for _, item := range s.members {
		if !fn(item) {
			return
		}
	}
}

// Copy returns a copy of the set with the same items in the same order.
func (s *Set[T]) Copy() *Set[T] {
	copied := &Set[T]{
		indexes: make(map[T]int, len(s.indexes)),
		members: slices.Clone(s.members),
	}
	for i, item := range copied.members {
		copied.indexes[item] = i
	}
	return copied
}
