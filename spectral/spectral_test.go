package spectral_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/simcluster/internal/simtest"
	"github.com/katalvlaran/simcluster/matrix"
	"github.com/katalvlaran/simcluster/spectral"
)

func TestTwoCliques(t *testing.T) {
	m := simtest.TwoCliques(t)
	before := simtest.Snapshot(t, m)

	res, err := spectral.New().Cluster(m)
	require.NoError(t, err)
	simtest.RequirePartition(t, res, 6)
	require.Equal(t, [][]int{{0, 1, 2}, {3, 4, 5}}, simtest.Partition(res))
	assert.InDelta(t, 2*(5.4/11-0.25), res.CommunityStrength(), 1e-12)

	require.Equal(t, before, simtest.Snapshot(t, m))
}

func TestZeroDegreeBecomesSingleton(t *testing.T) {
	edges := []simtest.Edge{
		{I: 0, J: 1, W: 0.9}, {I: 0, J: 2, W: 0.9}, {I: 1, J: 2, W: 0.9},
		{I: 4, J: 5, W: 0.9}, {I: 4, J: 6, W: 0.9}, {I: 5, J: 6, W: 0.9},
		{I: 2, J: 4, W: 0.1},
	}
	m := simtest.Matrix(t, 7, edges...)

	res, err := spectral.New().Cluster(m)
	require.NoError(t, err)
	simtest.RequirePartition(t, res, 7)
	require.Equal(t, [][]int{{0, 1, 2}, {3}, {4, 5, 6}}, simtest.Partition(res))
}

func TestDegenerate(t *testing.T) {
	res, err := spectral.New().Cluster(simtest.Matrix(t, 0))
	require.NoError(t, err)
	require.Zero(t, res.Size())

	res, err = spectral.New().Cluster(simtest.Matrix(t, 3))
	require.NoError(t, err)
	require.Equal(t, [][]int{{0}, {1}, {2}}, simtest.Partition(res))

	// A lone pair: k = 1 keeps it together, k = 2 would score −0.5.
	pair := simtest.Matrix(t, 2, simtest.Edge{I: 0, J: 1, W: 0.7})
	res, err = spectral.New(spectral.WithMinClusters(1)).Cluster(pair)
	require.NoError(t, err)
	require.Equal(t, [][]int{{0, 1}}, simtest.Partition(res))
	assert.InDelta(t, 0, res.CommunityStrength(), 1e-12)
}

func TestEigenFailureSurfaces(t *testing.T) {
	_, err := spectral.New(spectral.WithMaxIterations(1)).Cluster(simtest.TwoCliques(t))
	require.ErrorIs(t, err, matrix.ErrEigenFailed)
}

func TestDeterministic(t *testing.T) {
	m := simtest.TwoCliques(t)
	alg := spectral.New(spectral.WithMaxClusters(4))
	first, err := alg.Cluster(m)
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		again, err := alg.Cluster(m)
		require.NoError(t, err)
		require.Equal(t, simtest.Partition(first), simtest.Partition(again))
	}
}

func TestOptions(t *testing.T) {
	require.Equal(t, spectral.DefaultOptions(), spectral.New().Options())

	o := spectral.New(
		spectral.WithMinClusters(3), spectral.WithMaxClusters(5),
		spectral.WithTolerance(1e-6), spectral.WithMaxIterations(10),
		spectral.WithKMeansIterations(7),
	).Options()
	require.Equal(t, spectral.Options{
		MinClusters: 3, MaxClusters: 5, Tolerance: 1e-6, MaxIterations: 10, KMeansIterations: 7,
	}, o)

	require.Panics(t, func() { spectral.WithMinClusters(0) })
	require.Panics(t, func() { spectral.WithMaxClusters(-1) })
	require.Panics(t, func() { spectral.WithTolerance(math.Inf(1)) })
	require.Panics(t, func() { spectral.WithMaxIterations(0) })
	require.Panics(t, func() { spectral.WithKMeansIterations(0) })
	require.Panics(t, func() { spectral.New(spectral.WithMinClusters(5), spectral.WithMaxClusters(2)) })
}
