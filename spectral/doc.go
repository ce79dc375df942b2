// SPDX-License-Identifier: MIT

// Package spectral clusters a similarity matrix through an eigenvector
// embedding followed by k-means.
//
// Pipeline:
//
//  1. Vertices with zero degree become singleton clusters and leave the
//     computation; the rest form the active sub-matrix A.
//  2. L = D^{-1/2} A D^{-1/2} (matrix.ScaleSymmetric), decomposed with the
//     cyclic Jacobi solver matrix.Eigen. Each sweep costs O(N³) and the
//     full spectrum is computed even though only the leading MaxClusters
//     eigenvectors are used, so the stage is O(S·N³) for S sweeps. Fine for
//     the few hundred submissions of one run; much larger inputs want a
//     Lanczos-type partial solver.
//  3. For every k in [MinClusters, MaxClusters] (capped at the active count):
//     embed each vertex as its row in the k leading eigenvectors, normalise
//     rows to unit length, and run k-means with farthest-point seeding.
//  4. Every candidate partition is scored by modularity; the best wins and
//     ties keep the smaller k.
//
// Everything is deterministic: seeding starts at the lowest active vertex and
// always picks the lowest index among equally distant points.
//
// Options:
//
//	WithMinClusters(k)       k ≥ 1, default 2
//	WithMaxClusters(k)       k ≥ 1, default 8
//	WithTolerance(tol)       Jacobi convergence, default 1e-9
//	WithMaxIterations(n)     Jacobi sweep cap, default 100
//	WithKMeansIterations(n)  Lloyd iterations per k, default 100
package spectral
