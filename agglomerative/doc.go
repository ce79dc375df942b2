// SPDX-License-Identifier: MIT

// Package agglomerative implements bottom-up hierarchical clustering on a
// similarity matrix.
//
// Every vertex starts as its own cluster. At each step the two clusters with
// the highest linkage similarity merge, until that similarity drops below the
// threshold or a single cluster remains.
//
// Linkage (similarity between clusters a and b):
//
//	Average  mean of A_ij over i ∈ a, j ∈ b (default)
//	Minimum  min of A_ij, every cross pair must be similar
//	Maximum  max of A_ij, one similar pair is enough
//
// Cluster-to-cluster similarities are kept in a matrix and updated after each
// merge with the Lance–Williams recurrences, so no step re-reads the input.
//
// Determinism: ties go to the lexicographically lowest cluster pair, and
// clusters stay ordered by their smallest member.
//
// Complexity: O(N³) time, O(N²) space.
package agglomerative
