// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep determinism (fixed loop orders, no map iteration).
//   - Reject NaN/Inf on every write so similarity scores stay finite.
//
// Complexity quicksheet:
//   - NewSquare: O(n²) zero-init; At/Set/SetSymmetric: O(1); Clone: O(r*c).

package matrix

import (
	"fmt"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt           = "At"
	ctxSet          = "Set"
	ctxSetSymmetric = "SetSymmetric"
)

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// Format: "Dense.<method>(row,col): %w"; the sentinel survives for errors.Is.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix.
//   - r,c hold dimensions (rows, cols).
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
type Dense struct {
	r, c int       // row and column counts; always equal (NewSquare)
	data []float64 // contiguous row-major storage (len == r*c)
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix       = (*Dense)(nil)
	_ fmt.Stringer = (*Dense)(nil)
)

// NewSquare creates an n×n zero matrix. It accepts n == 0: an empty
// similarity matrix is the legal image of an empty comparison set.
//
// Implementation:
//   - Stage 1: reject n < 0 with ErrInvalidDimensions.
//   - Stage 2: allocate n*n zeros.
//
// Errors:
//   - ErrInvalidDimensions (wrapped with "NewSquare").
//
// Complexity:
//   - Time O(n²), Space O(n²).
func NewSquare(n int) (*Dense, error) {
	if n < 0 {
		return nil, matrixErrorf(opNewSquare, ErrInvalidDimensions)
	}

	return &Dense{r: n, c: n, data: make([]float64, n*n)}, nil
}

// Rows returns the number of rows in the matrix.
func (m *Dense) Rows() int { return m.r }

// Cols returns the number of columns in the matrix.
func (m *Dense) Cols() int { return m.c }

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange
// tagged with the calling method.
func (m *Dense) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}

	return row*m.c + col, nil
}

// At retrieves the element at (row, col).
// Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	idx, err := m.indexOf(ctxAt, row, col)
	if err != nil {
		return 0, err
	}

	return m.data[idx], nil
}

// Set assigns value v at (row, col).
// Stage 1 (Validate): bounds check, then reject NaN/Inf.
// Stage 2 (Execute): write into data slice.
// Complexity: O(1).
func (m *Dense) Set(row, col int, v float64) error {
	idx, err := m.indexOf(ctxSet, row, col)
	if err != nil {
		return err
	}
	if isNonFinite(v) {
		return denseErrorf(ctxSet, row, col, ErrNaNInf)
	}
	m.data[idx] = v

	return nil
}

// SetSymmetric assigns v at (i, j) and (j, i) atomically with respect to
// validation: either both cells are written or neither is.
//
// Errors:
//   - ErrOutOfRange for invalid indices; ErrNaNInf for NaN or ±Inf.
//
// Complexity: O(1).
func (m *Dense) SetSymmetric(i, j int, v float64) error {
	ij, err := m.indexOf(ctxSetSymmetric, i, j)
	if err != nil {
		return err
	}
	if isNonFinite(v) {
		return denseErrorf(ctxSetSymmetric, i, j, ErrNaNInf)
	}
	// (j,i) is in range whenever (i,j) is: Dense is always square.
	m.data[ij] = v
	m.data[j*m.c+i] = v

	return nil
}

// Clone returns a deep copy of the Dense matrix.
// Complexity: O(r*c) time and memory.
func (m *Dense) Clone() Matrix {
	cp := make([]float64, len(m.data))
	copy(cp, m.data)

	return &Dense{r: m.r, c: m.c, data: cp}
}

// String implements fmt.Stringer for debugging: one "[a, b, ...]" line per row.
// Complexity: O(r*c).
func (m *Dense) String() string {
	var sb strings.Builder
	var i, j int
	for i = 0; i < m.r; i++ {
		sb.WriteString(_fmtRowOpen)
		for j = 0; j < m.c; j++ {
			sb.WriteString(fmt.Sprintf("%g", m.data[i*m.c+j]))
			if j < m.c-1 {
				sb.WriteString(_fmtSep)
			}
		}
		sb.WriteString(_fmtRowClose)
	}

	return sb.String()
}
