// SPDX-License-Identifier: MIT

package clustering

import (
	"fmt"

	"github.com/katalvlaran/simcluster/matrix"
)

// Algorithm is the pluggable clustering capability: given an N×N symmetric
// similarity matrix it returns a partition of {0, …, N−1} into non-empty,
// disjoint clusters, each with a community strength, plus the overall strength.
//
// Implementations must not retain or mutate m beyond the call and must accept
// N == 0 (returning an empty result).
type Algorithm interface {
	Cluster(m matrix.Matrix) (*Result[int], error)
}

// AlgorithmFunc adapts an ordinary function to the Algorithm interface.
type AlgorithmFunc func(m matrix.Matrix) (*Result[int], error)

// Cluster calls f(m).
func (f AlgorithmFunc) Cluster(m matrix.Matrix) (*Result[int], error) {
	return f(m)
}

// Weights is the common entry check of the bundled algorithms. It validates
// that m is square, symmetric within matrix.DefaultEpsilon and free of
// negative entries, and returns a private row-major copy to work on.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrDimensionMismatch, matrix.ErrAsymmetry.
//   - ErrNegativeSimilarity for any A_ij < 0.
//
// Complexity: Time O(N²), Space O(N²).
func Weights(m matrix.Matrix) ([][]float64, error) {
	if err := matrix.ValidateSymmetric(m, matrix.DefaultEpsilon); err != nil {
		return nil, fmt.Errorf("Weights: %w", err)
	}
	w, err := matrix.ToSlices(m)
	if err != nil {
		return nil, fmt.Errorf("Weights: %w", err)
	}
	for i, row := range w {
		for j, v := range row {
			if v < 0 {
				return nil, fmt.Errorf("Weights: A[%d,%d]=%g: %w", i, j, v, ErrNegativeSimilarity)
			}
		}
	}

	return w, nil
}
