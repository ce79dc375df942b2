package agglomerative_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/simcluster/agglomerative"
	"github.com/katalvlaran/simcluster/clustering"
	"github.com/katalvlaran/simcluster/internal/simtest"
)

func TestTwoCliques(t *testing.T) {
	m := simtest.TwoCliques(t)
	before := simtest.Snapshot(t, m)

	for _, l := range []agglomerative.Linkage{agglomerative.Average, agglomerative.Minimum, agglomerative.Maximum} {
		l := l
		t.Run(l.String(), func(t *testing.T) {
			res, err := agglomerative.New(agglomerative.WithLinkage(l)).Cluster(m)
			require.NoError(t, err)
			simtest.RequirePartition(t, res, 6)
			require.Equal(t, [][]int{{0, 1, 2}, {3, 4, 5}}, simtest.Partition(res))
			for _, c := range res.Clusters() {
				assert.InDelta(t, 0.9, c.AverageSimilarity(), 1e-12)
			}
		})
	}
	require.Equal(t, before, simtest.Snapshot(t, m))
}

func TestLinkageOnChain(t *testing.T) {
	// 0–1 and 1–2 are similar, 0–2 is not.
	m := simtest.Matrix(t, 3,
		simtest.Edge{I: 0, J: 1, W: 0.8},
		simtest.Edge{I: 1, J: 2, W: 0.8},
		simtest.Edge{I: 0, J: 2, W: 0.1},
	)

	cases := []struct {
		name      string
		linkage   agglomerative.Linkage
		threshold float64
		want      [][]int
	}{
		{"MaximumChains", agglomerative.Maximum, 0.5, [][]int{{0, 1, 2}}},
		{"MinimumRefuses", agglomerative.Minimum, 0.5, [][]int{{0, 1}, {2}}},
		{"AverageBelow", agglomerative.Average, 0.5, [][]int{{0, 1}, {2}}},
		{"AverageAbove", agglomerative.Average, 0.4, [][]int{{0, 1, 2}}},
		{"NothingMerges", agglomerative.Average, 0.9, [][]int{{0}, {1}, {2}}},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			alg := agglomerative.New(
				agglomerative.WithLinkage(tc.linkage),
				agglomerative.WithThreshold(tc.threshold),
			)
			res, err := alg.Cluster(m)
			require.NoError(t, err)
			simtest.RequirePartition(t, res, 3)
			require.Equal(t, tc.want, simtest.Partition(res))
		})
	}
}

func TestTieGoesToLowestPair(t *testing.T) {
	m := simtest.Matrix(t, 3,
		simtest.Edge{I: 0, J: 2, W: 0.6},
		simtest.Edge{I: 1, J: 2, W: 0.6},
	)
	alg := agglomerative.New(agglomerative.WithLinkage(agglomerative.Minimum), agglomerative.WithThreshold(0.5))

	res, err := alg.Cluster(m)
	require.NoError(t, err)
	require.Equal(t, [][]int{{0, 2}, {1}}, simtest.Partition(res))
}

func TestDegenerate(t *testing.T) {
	res, err := agglomerative.New().Cluster(simtest.Matrix(t, 0))
	require.NoError(t, err)
	require.Zero(t, res.Size())

	res, err = agglomerative.New().Cluster(simtest.Matrix(t, 1))
	require.NoError(t, err)
	require.Equal(t, [][]int{{0}}, simtest.Partition(res))

	neg := simtest.Matrix(t, 2, simtest.Edge{I: 0, J: 1, W: -0.5})
	_, err = agglomerative.New().Cluster(neg)
	require.ErrorIs(t, err, clustering.ErrNegativeSimilarity)
}

func TestParseLinkage(t *testing.T) {
	cases := map[string]agglomerative.Linkage{
		"average": agglomerative.Average, "AVG": agglomerative.Average,
		"minimum": agglomerative.Minimum, " min ": agglomerative.Minimum,
		"Maximum": agglomerative.Maximum, "max": agglomerative.Maximum,
	}
	for in, want := range cases {
		got, err := agglomerative.ParseLinkage(in)
		require.NoError(t, err, in)
		require.Equal(t, want, got, in)
	}

	_, err := agglomerative.ParseLinkage("ward")
	require.ErrorIs(t, err, agglomerative.ErrUnknownLinkage)
	require.Equal(t, "Linkage(7)", agglomerative.Linkage(7).String())
}

func TestOptionsPanic(t *testing.T) {
	require.Equal(t, agglomerative.DefaultOptions(), agglomerative.New().Options())
	require.Panics(t, func() { agglomerative.WithLinkage(agglomerative.Linkage(-1)) })
	require.Panics(t, func() { agglomerative.WithThreshold(math.NaN()) })
}
