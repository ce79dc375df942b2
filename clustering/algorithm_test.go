package clustering_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/simcluster/clustering"
	"github.com/katalvlaran/simcluster/internal/simtest"
	"github.com/katalvlaran/simcluster/matrix"
)

func TestAlgorithmFunc(t *testing.T) {
	called := false
	alg := clustering.AlgorithmFunc(func(m matrix.Matrix) (*clustering.Result[int], error) {
		called = true
		return clustering.NewIndexResult(nil, m)
	})
	m, err := matrix.NewSquare(0)
	require.NoError(t, err)

	res, err := alg.Cluster(m)
	require.NoError(t, err)
	require.True(t, called)
	require.Zero(t, res.Size())
}

func TestWeights(t *testing.T) {
	m, err := matrix.NewSquare(3)
	require.NoError(t, err)
	require.NoError(t, m.SetSymmetric(0, 2, 0.5))

	w, err := clustering.Weights(m)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{0, 0, 0.5}, {0, 0, 0}, {0.5, 0, 0}}, w)

	// The copy is private.
	w[0][2] = 9
	require.Equal(t, 0.5, at(t, m, 0, 2))

	cases := []struct {
		name string
		mut  func(*matrix.Dense)
		want error
	}{
		{"Asymmetric", func(d *matrix.Dense) { _ = d.Set(0, 1, 0.3) }, matrix.ErrAsymmetry},
		{"Negative", func(d *matrix.Dense) { _ = d.SetSymmetric(1, 2, -0.1) }, clustering.ErrNegativeSimilarity},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			d, err := matrix.NewSquare(3)
			require.NoError(t, err)
			tc.mut(d)
			_, err = clustering.Weights(d)
			require.ErrorIs(t, err, tc.want)
		})
	}

	rect := simtest.Rect{R: 2, C: 3}
	_, err = clustering.Weights(rect)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = clustering.Weights(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}
