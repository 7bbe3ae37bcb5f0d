package mapz

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSetOperations(t *testing.T) {
	s := NewSet[string]()
	require.Equal(t, 0, s.Len())
	require.True(t, s.IsEmpty())

	// Add some items to the set.
	require.True(t, s.Add("hello"))
	require.True(t, s.Add("hiya"))
	require.True(t, s.Add("heyo"))

	require.Equal(t, 3, s.Len())
	require.False(t, s.IsEmpty())
	require.True(t, s.Has("hiya"))
	require.False(t, s.Has("howdy"))

	// Duplicate adds make no change.
	require.False(t, s.Add("hiya"))
	require.Equal(t, 3, s.Len())
	require.Equal(t, []string{"hello", "hiya", "heyo"}, s.AsSlice())

	// Delete an item.
	require.True(t, s.Delete("hiya"))
	require.False(t, s.Has("hiya"))
	require.Equal(t, []string{"hello", "heyo"}, s.AsSlice())

	// Delete an unknown item.
	require.False(t, s.Delete("howdy"))
	require.Equal(t, 2, s.Len())

	// Re-adding a deleted item places it at the end.
	require.True(t, s.Add("hiya"))
	require.Equal(t, []string{"hello", "heyo", "hiya"}, s.AsSlice())
}

func TestSetConstructedWithItems(t *testing.T) {
	s := NewSet(1, 2, 3, 2, 1)
	require.Equal(t, 3, s.Len())
	require.Equal(t, []int{1, 2, 3}, s.AsSlice())
}

func TestSetDeleteReindexes(t *testing.T) {
	s := NewSet(10, 20, 30, 40)
	require.True(t, s.Delete(20))

	// Items after the deleted one must still be addressable.
	require.True(t, s.Delete(30))
	require.True(t, s.Delete(40))
	require.Equal(t, []int{10}, s.AsSlice())
}

func TestSetForEach(t *testing.T) {
	s := NewSet("a", "b", "c")

	var visited []string
	s.ForEach(func(item string) bool {
		visited = append(visited, item)
		return true
	})
	require.Equal(t, []string{"a", "b", "c"}, visited)

	// Returning false stops early.
	visited = nil
	s.ForEach(func(item string) bool {
		visited = append(visited, item)
		return false
	})
	require.Equal(t, []string{"a"}, visited)
}

func TestSetCopy(t *testing.T) {
	s := NewSet("a", "b")
	copied := s.Copy()

	s.Add("c")
	copied.Delete("a")

	require.Equal(t, []string{"a", "b", "c"}, s.AsSlice())
	require.Equal(t, []string{"b"}, copied.AsSlice())

	// The copy's index must track its own membership.
	require.True(t, copied.Add("d"))
	require.True(t, copied.Delete("b"))
	require.Equal(t, []string{"d"}, copied.AsSlice())
}

func TestSetAsSliceDoesNotAlias(t *testing.T) {
	s := NewSet(1, 2, 3)
	snapshot := s.AsSlice()
	s.Delete(1)
	require.Equal(t, []int{1, 2, 3}, snapshot)
}
