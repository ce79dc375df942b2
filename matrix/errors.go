// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// All kernels return these sentinels (optionally wrapped with an operation
// tag) and tests match them via errors.Is. No kernel panics on user input.

package matrix

import (
	"errors"
	"fmt"
)

// Every message is prefixed with "matrix: ..." so it greps cleanly in logs.
// Wrap with matrixErrorf(tag, ErrX) at the detection site; callers still
// match with errors.Is.
var (
	// ErrInvalidDimensions indicates a negative size passed to NewSquare.
	ErrInvalidDimensions = errors.New("matrix: invalid dimensions")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set) return this, never panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands
	// or a non-square matrix where a square one is required.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrAsymmetry signals that a matrix expected to be symmetric violated
	// symmetry within the tolerance.
	ErrAsymmetry = errors.New("matrix: matrix is not symmetric within eps")

	// ErrNaNInf signals a NaN or ±Inf value where finite values are required.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrEigenFailed indicates that the Jacobi routine did not converge
	// under the given tolerance/iterations.
	ErrEigenFailed = errors.New("matrix: eigen decomposition failed")
)

// Operation tags used by matrixErrorf; keep them constant for grep-ability.
const (
	opRowSums        = "RowSums"
	opScaleSymmetric = "ScaleSymmetric"
	opEigen          = "Eigen"
	opNewSquare      = "NewSquare"
	opToSlices       = "ToSlices"
)

// matrixErrorf wraps err with an operation tag, preserving the sentinel via %w.
// Call only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
