// SPDX-License-Identifier: MIT

// Package matrix provides the dense similarity storage used by the clustering
// adapter and the small set of numeric kernels the bundled algorithms need.
//
// The matrix package provides:
//
//   - Matrix, a minimal interface over two-dimensional float64 arrays with
//     bounds-checked At/Set (errors, never panics, on user mistakes).
//   - Dense, a row-major implementation backed by one flat slice.
//   - NewSquare, the only constructor that accepts a 0×0 shape, because an
//     empty comparison set is a legal input to clustering.
//   - SetSymmetric, which writes (i,j) and (j,i) in one call so symmetry holds
//     exactly for every matrix built through it.
//   - Validators (ValidateNotNil, ValidateSquare, ValidateSymmetric) and
//     kernels (RowSums, ScaleSymmetric, ToSlices, Eigen).
//
// Set and SetSymmetric reject NaN and ±Inf with ErrNaNInf.
//
// Dense matrices cost O(n²) memory; they suit the few-thousand-submission
// scale that pairwise plagiarism comparison produces.
package matrix
