// SPDX-License-Identifier: MIT
// Package matrix: reductions and scalings used by the clustering algorithms.
//
// Determinism:
//   - Fixed i→j loop orders; *Dense operands take a flat-slice fast path.
//   - Every kernel accepts a 0×0 input and returns an empty/zero result.

package matrix

import "fmt"

// toDense returns m itself when it is a *Dense, otherwise a Dense copy built
// through At. Used by kernels that want the flat-slice fast path only.
// Complexity: O(1) for *Dense, O(r*c) otherwise.
func toDense(m Matrix) (*Dense, error) {
	if d, ok := m.(*Dense); ok {
		return d, nil
	}
	r, c := m.Rows(), m.Cols()
	out := &Dense{r: r, c: c, data: make([]float64, r*c)}
	var v float64
	var err error
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, fmt.Errorf("At(%d,%d): %w", i, j, err)
			}
			out.data[i*c+j] = v
		}
	}

	return out, nil
}

// RowSums returns vector s where s[i] = Σ_j m[i,j].
// On a similarity matrix this is the weighted degree of every vertex.
//
// Errors: ErrNilMatrix (wrapped with "RowSums").
// Complexity: Time O(r*c), Space O(r).
func RowSums(m Matrix) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opRowSums, err)
	}
	d, err := toDense(m)
	if err != nil {
		return nil, matrixErrorf(opRowSums, err)
	}

	sums := make([]float64, d.r)
	for i := 0; i < d.r; i++ {
		base := i * d.c
		for j := 0; j < d.c; j++ {
			sums[i] += d.data[base+j]
		}
	}

	return sums, nil
}

// ScaleSymmetric returns D·A·D for the diagonal matrix D = diag(d):
// out[i,j] = d[i] * A[i,j] * d[j]. With d = deg^{-1/2} this is the
// normalised adjacency used by spectral clustering.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (non-square or len(d) != n).
//
// Complexity: Time O(n²), Space O(n²) for the fresh result.
func ScaleSymmetric(m Matrix, d []float64) (*Dense, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opScaleSymmetric, err)
	}
	n := m.Rows()
	if err := ValidateVecLen(d, n); err != nil {
		return nil, matrixErrorf(opScaleSymmetric, err)
	}
	src, err := toDense(m)
	if err != nil {
		return nil, matrixErrorf(opScaleSymmetric, err)
	}
	out, err := NewSquare(n)
	if err != nil {
		return nil, matrixErrorf(opScaleSymmetric, err)
	}
	for i := 0; i < n; i++ {
		base := i * n
		for j := 0; j < n; j++ {
			out.data[base+j] = d[i] * src.data[base+j] * d[j]
		}
	}

	return out, nil
}

// ToSlices copies m into a freshly allocated row-major [][]float64.
// Algorithms that rewrite their working graph (aggregation, merging) start
// from this copy so the caller's matrix is never touched.
//
// Errors: ErrNilMatrix (wrapped with "ToSlices").
// Complexity: Time O(r*c), Space O(r*c).
func ToSlices(m Matrix) ([][]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opToSlices, err)
	}
	d, err := toDense(m)
	if err != nil {
		return nil, matrixErrorf(opToSlices, err)
	}

	out := make([][]float64, d.r)
	for i := range out {
		out[i] = make([]float64, d.c)
		copy(out[i], d.data[i*d.c:(i+1)*d.c])
	}

	return out, nil
}
