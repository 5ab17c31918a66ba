package dict

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSet_Add(t *testing.T) {
	s := NewSet()

	require.True(t, s.Add("foo"))
	require.False(t, s.Add("foo"))
	require.True(t, s.Has("foo"))
	require.Equal(t, 1, s.Len())
}

func TestSet_Remove(t *testing.T) {
	s := NewSet()
	s.Add("foo")

	require.True(t, s.Remove("foo"))
	require.False(t, s.Remove("foo"))
	require.False(t, s.Has("foo"))
	require.Zero(t, s.Len())
}

func TestSet_Tombstones(t *testing.T) {
	s := NewSet(WithHashFunc(collisionHash(0)))

	require.True(t, s.Add("A")) // Slot 0
	require.True(t, s.Add("B")) // Slot 1 (via probe)
	require.True(t, s.Add("C")) // Slot 2 (via probe)

	// Delete the "bridge" element
	require.True(t, s.Remove("B"))

	// Verify we can still find "C" even though there's a hole at "B"
	require.True(t, s.Has("C"), "Probe chain broken: could not find 'C' after deleting 'B'")
	assert.Equal(t, 1, s.Stats().Tombstones)
}

func TestSet_Keys(t *testing.T) {
	s := NewSet(WithCapacity(4))

	for _, key := range letters(26) {
		s.Add(key)
	}

	require.ElementsMatch(t, letters(26), s.Keys())
	require.Positive(t, s.Stats().Grows)
}
