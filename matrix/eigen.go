// SPDX-License-Identifier: MIT

package matrix

import "math"

// Eigen computes eigenvalues and eigenvectors of a symmetric matrix with the
// cyclic Jacobi method.
// Implementation:
//   - Stage 1: Validate symmetric square input within tol.
//   - Stage 2: Sweep the strict upper triangle in i→j order, rotating away
//     every non-zero A[p,r] and accumulating each rotation into Q.
//   - Stage 3: Stop once the largest off-diagonal entry is below tol; fail
//     when it is still ≥ tol after maxSweeps sweeps.
//
// Inputs:
//   - m: symmetric Matrix (within tol); n := m.Rows(). The input is not mutated.
//   - tol: convergence threshold (typ. 1e-9..1e-12 for float64).
//   - maxSweeps: cap on full sweeps; must be > 0 unless n <= 1.
//
// Returns:
//   - []float64: eigenvalues (diagonal of the rotated matrix), unsorted.
//   - *Dense: Q whose column k is the eigenvector of eigenvalue k.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, ErrAsymmetry, ErrNaNInf (from ValidateSymmetric).
//   - ErrEigenFailed (max off-diagonal ≥ tol after maxSweeps sweeps).
//
// Determinism:
//   - Fixed sweep order and fixed update order produce stable results.
//
// Complexity:
//   - Time O(n³) per sweep (n²/2 rotations of O(n) each), O(maxSweeps·n³)
//     overall; convergence is quadratic, so a few sweeps usually suffice.
//   - Space O(n²).
func Eigen(m Matrix, tol float64, maxSweeps int) ([]float64, *Dense, error) {
	if err := ValidateSymmetric(m, tol); err != nil {
		return nil, nil, matrixErrorf(opEigen, err)
	}
	n := m.Rows()
	src, err := toDense(m)
	if err != nil {
		return nil, nil, matrixErrorf(opEigen, err)
	}
	// Work on a private copy so the caller's matrix stays untouched.
	a := src.Clone().(*Dense)
	q, _ := NewSquare(n) // n >= 0 is guaranteed by the shape validation above
	for i := 0; i < n; i++ {
		q.data[i*n+i] = 1.0
	}
	if n <= 1 {
		return diagonal(a), q, nil
	}
	if maxSweeps <= 0 {
		return nil, nil, matrixErrorf(opEigen, ErrEigenFailed)
	}

	for sweep := 0; sweep < maxSweeps; sweep++ {
		if maxOffDiagonal(a) < tol {
			break
		}
		for p := 0; p < n-1; p++ {
			for r := p + 1; r < n; r++ {
				if a.data[p*n+r] != 0 {
					rotate(a, q, p, r)
				}
			}
		}
	}

	if maxOffDiagonal(a) >= tol {
		return nil, nil, matrixErrorf(opEigen, ErrEigenFailed)
	}

	return diagonal(a), q, nil
}

// rotate applies the Jacobi rotation that zeroes A[p,r] (p < r, A[p,r] != 0)
// and accumulates it into Q. A stays symmetric.
// Complexity: O(n).
func rotate(a, q *Dense, p, r int) {
	n := a.r
	app := a.data[p*n+p]
	arr := a.data[r*n+r]
	apr := a.data[p*n+r]
	// θ = (arr−app)/(2*apr); t = sign(θ) / (|θ|+√(θ²+1))
	theta := (arr - app) / (2 * apr)
	t := math.Copysign(1.0/(math.Abs(theta)+math.Hypot(theta, 1)), theta)
	c := 1.0 / math.Sqrt(t*t+1)
	s := t * c

	var aip, air, qip, qir float64
	for i := 0; i < n; i++ {
		if i == p || i == r {
			continue
		}
		aip = a.data[i*n+p]
		air = a.data[i*n+r]
		a.data[i*n+p], a.data[p*n+i] = c*aip-s*air, c*aip-s*air
		a.data[i*n+r], a.data[r*n+i] = s*aip+c*air, s*aip+c*air
	}
	a.data[p*n+p] = c*c*app - 2*c*s*apr + s*s*arr
	a.data[r*n+r] = s*s*app + 2*c*s*apr + c*c*arr
	a.data[p*n+r], a.data[r*n+p] = 0, 0

	for i := 0; i < n; i++ {
		qip = q.data[i*n+p]
		qir = q.data[i*n+r]
		q.data[i*n+p] = c*qip - s*qir
		q.data[i*n+r] = s*qip + c*qir
	}
}

// maxOffDiagonal returns the largest |A[i,j]| on the strict upper triangle.
func maxOffDiagonal(a *Dense) float64 {
	n := a.r
	var best float64
	for i := 0; i < n; i++ {
		base := i * n
		for j := i + 1; j < n; j++ {
			if off := math.Abs(a.data[base+j]); off > best {
				best = off
			}
		}
	}

	return best
}

// diagonal copies the main diagonal of a square Dense.
func diagonal(a *Dense) []float64 {
	out := make([]float64, a.r)
	for i := range out {
		out[i] = a.data[i*a.c+i]
	}

	return out
}
