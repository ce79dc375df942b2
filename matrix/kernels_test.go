package matrix_test

import (
	"testing"

	"github.com/katalvlaran/simcluster/matrix"
	"github.com/stretchr/testify/require"
)

// triangle builds the symmetric similarity matrix of a weighted triangle.
func triangle(t *testing.T) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewSquare(3)
	require.NoError(t, err)
	require.NoError(t, m.SetSymmetric(0, 1, 1))
	require.NoError(t, m.SetSymmetric(1, 2, 2))
	require.NoError(t, m.SetSymmetric(0, 2, 3))

	return m
}

func TestRowSums(t *testing.T) {
	m := triangle(t)

	sums, err := matrix.RowSums(m)
	require.NoError(t, err)
	require.Equal(t, []float64{4, 3, 5}, sums)

	_, err = matrix.RowSums(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestKernelsOnEmpty(t *testing.T) {
	m, err := matrix.NewSquare(0)
	require.NoError(t, err)

	sums, err := matrix.RowSums(m)
	require.NoError(t, err)
	require.Empty(t, sums)

	scaled, err := matrix.ScaleSymmetric(m, nil)
	require.NoError(t, err)
	require.Equal(t, 0, scaled.Rows())
}

func TestScaleSymmetric(t *testing.T) {
	m := triangle(t)

	out, err := matrix.ScaleSymmetric(m, []float64{1, 2, 0.5})
	require.NoError(t, err)
	v, _ := out.At(0, 1)
	require.Equal(t, 2.0, v) // 1 * 1 * 2
	v, _ = out.At(2, 1)
	require.Equal(t, 2.0, v) // 0.5 * 2 * 2
	require.NoError(t, matrix.ValidateSymmetric(out, 0))

	_, err = matrix.ScaleSymmetric(m, []float64{1})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestToSlicesIsACopy(t *testing.T) {
	m := triangle(t)

	rows, err := matrix.ToSlices(m)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{0, 1, 3}, {1, 0, 2}, {3, 2, 0}}, rows)

	rows[0][1] = 42
	v, err := m.At(0, 1)
	require.NoError(t, err)
	require.Equal(t, 1.0, v)

	empty, err := matrix.NewSquare(0)
	require.NoError(t, err)
	rows, err = matrix.ToSlices(empty)
	require.NoError(t, err)
	require.Empty(t, rows)

	_, err = matrix.ToSlices(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}
