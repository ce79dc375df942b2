package mapping_test

import (
	"testing"

	"github.com/katalvlaran/simcluster/mapping"
	"github.com/stretchr/testify/require"
)

type submission struct{ name string }

// TestMapIdempotent verifies that repeated Map calls return the same index
// and that Unmap(Map(o)) == o.
func TestMapIdempotent(t *testing.T) {
	a, b := &submission{"a"}, &submission{"b"}
	m := mapping.NewIntegerMapping[*submission](4)

	require.Equal(t, 0, m.Map(a))
	require.Equal(t, 1, m.Map(b))
	require.Equal(t, 0, m.Map(a)) // second sight, same index
	require.Equal(t, 2, m.Size())

	got, err := m.Unmap(m.Map(b))
	require.NoError(t, err)
	require.Same(t, b, got)
}

// TestIdentityNotEquality checks that distinct pointers with equal contents
// receive distinct indices.
func TestIdentityNotEquality(t *testing.T) {
	x, y := &submission{"same"}, &submission{"same"}
	m := mapping.NewIntegerMapping[*submission](0)

	require.NotEqual(t, m.Map(x), m.Map(y))
	require.Equal(t, 2, m.Size())
}

func TestUnmapUnknownIndex(t *testing.T) {
	m := mapping.NewIntegerMapping[string](-1) // negative hint is tolerated
	m.Map("a")

	for _, idx := range []int{-1, 1, 42} {
		_, err := m.Unmap(idx)
		require.ErrorIs(t, err, mapping.ErrUnknownIndex, "index %d", idx)
	}
}

func TestLookupDoesNotAllocate(t *testing.T) {
	m := mapping.NewIntegerMapping[string](2)

	_, ok := m.Lookup("ghost")
	require.False(t, ok)
	require.Zero(t, m.Size())

	m.Map("a")
	idx, ok := m.Lookup("a")
	require.True(t, ok)
	require.Zero(t, idx)
}

func TestObjectsIsACopy(t *testing.T) {
	m := mapping.NewIntegerMapping[string](2)
	m.Map("a")
	m.Map("b")

	objs := m.Objects()
	require.Equal(t, []string{"a", "b"}, objs)

	objs[0] = "mutated"
	got, err := m.Unmap(0)
	require.NoError(t, err)
	require.Equal(t, "a", got)
}
