// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the matrix validators.
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/simcluster/matrix"
	"github.com/stretchr/testify/require"
)

// TestValidateSquare covers nil inputs, square and non-square cases.
func TestValidateSquare(t *testing.T) {
	t.Parallel()

	square := func(n int) matrix.Matrix {
		m, err := matrix.NewSquare(n)
		require.NoError(t, err)
		return m
	}
	var typedNil *matrix.Dense

	tests := []struct {
		name string
		m    matrix.Matrix
		want error
	}{
		{"nil", nil, matrix.ErrNilMatrix},
		{"typed nil", typedNil, matrix.ErrNilMatrix},
		{"0x0", square(0), nil},
		{"3x3", square(3), nil},
		{"2x3", rect{rows: 2, cols: 3}, matrix.ErrDimensionMismatch},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			err := matrix.ValidateSquare(tc.m)
			if tc.want == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tc.want)
		})
	}
}

// TestValidateSymmetric covers symmetric, asymmetric and bad-tolerance inputs.
func TestValidateSymmetric(t *testing.T) {
	t.Parallel()

	m, err := matrix.NewSquare(3)
	require.NoError(t, err)
	require.NoError(t, m.SetSymmetric(0, 1, 0.5))
	require.NoError(t, matrix.ValidateSymmetric(m, 0))

	require.NoError(t, m.Set(2, 0, 0.1)) // break symmetry on one side only
	require.ErrorIs(t, matrix.ValidateSymmetric(m, 0), matrix.ErrAsymmetry)
	require.NoError(t, matrix.ValidateSymmetric(m, 0.2)) // tolerated within eps
	require.ErrorIs(t, matrix.ValidateSymmetric(m, math.NaN()), matrix.ErrNaNInf)
}

// TestValidateVecLen checks exact-length enforcement.
func TestValidateVecLen(t *testing.T) {
	t.Parallel()

	require.NoError(t, matrix.ValidateVecLen(nil, 0))
	require.NoError(t, matrix.ValidateVecLen([]float64{1, 2}, 2))
	require.ErrorIs(t, matrix.ValidateVecLen([]float64{1}, 2), matrix.ErrDimensionMismatch)
}
