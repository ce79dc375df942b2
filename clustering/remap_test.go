package clustering_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/katalvlaran/simcluster/clustering"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRemapPreservesShape checks cluster count, sizes, order and scores.
func TestRemapPreservesShape(t *testing.T) {
	src, err := clustering.NewResult([]clustering.Group[int]{
		{Members: []int{3, 1}, CommunityStrength: 0.2, AverageSimilarity: 0.6},
		{Members: []int{0}, CommunityStrength: -0.05},
		{Members: []int{2, 4, 5}, CommunityStrength: 0.3, AverageSimilarity: 0.4},
	}, 0.45)
	require.NoError(t, err)

	out, err := clustering.Remap(src, func(i int) (string, error) { return fmt.Sprintf("s%d", i), nil })
	require.NoError(t, err)

	require.Equal(t, src.Size(), out.Size())
	require.Equal(t, src.CommunityStrength(), out.CommunityStrength())
	require.Len(t, out.Clusters(), len(src.Clusters()))
	for ci, c := range out.Clusters() {
		orig := src.Clusters()[ci]
		require.Equal(t, orig.Size(), c.Size())
		assert.Equal(t, orig.CommunityStrength(), c.CommunityStrength())
		assert.Equal(t, orig.AverageSimilarity(), c.AverageSimilarity())
		for mi, m := range c.Members() {
			assert.Equal(t, fmt.Sprintf("s%d", orig.Members()[mi]), m)
		}
		assert.Same(t, out, c.Owner()) // never the source result
	}
}

func TestRemapFailsWithoutPartialResult(t *testing.T) {
	src, err := clustering.NewResult([]clustering.Group[int]{{Members: []int{0, 7}}}, 0)
	require.NoError(t, err)

	out, err := clustering.Remap(src, func(i int) (int, error) {
		if i > 5 {
			return 0, clustering.ErrUnknownIndex
		}
		return i, nil
	})
	require.ErrorIs(t, err, clustering.ErrUnknownIndex)
	require.Nil(t, out)
}

func TestRemapRejectsNonInjectiveFunc(t *testing.T) {
	src, err := clustering.NewResult([]clustering.Group[int]{{Members: []int{0}}, {Members: []int{1}}}, 0)
	require.NoError(t, err)

	_, err = clustering.Remap(src, func(int) (string, error) { return "same", nil })
	require.ErrorIs(t, err, clustering.ErrOverlappingClusters)
}

func TestRemapNilArguments(t *testing.T) {
	_, err := clustering.Remap[int, int](nil, func(i int) (int, error) { return i, nil })
	require.ErrorIs(t, err, clustering.ErrNilResult)

	src, err := clustering.NewResult[int](nil, 0)
	require.NoError(t, err)
	_, err = clustering.Remap[int, int](src, nil)
	require.True(t, errors.Is(err, clustering.ErrNilFunc))
}
