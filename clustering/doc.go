// SPDX-License-Identifier: MIT

// Package clustering bridges pairwise similarity observations between domain
// objects and index-based graph-clustering algorithms.
//
// Overview:
//
//	comparisons ──► Adapter (IntegerMapping + symmetric matrix.Dense)
//	            ──► Algorithm.Cluster(matrix) ──► Result[int]
//	            ──► Remap(Result[int], Unmap) ──► Result[T]
//
// The Adapter owns one IntegerMapping and one similarity matrix per
// clustering run. Only objects that occur in at least one comparison receive
// an index, so objects without comparisons can never show up in a cluster.
//
// Result model:
//
//   - Result[M] is generic over the member type: it is instantiated once over
//     matrix indices (what algorithms return) and once over domain objects
//     (what callers receive). Remap is the explicit transform between them.
//   - Every Cluster keeps a non-owning handle to its Result. The handle only
//     serves read-only queries such as NormalizedCommunityStrength.
//   - A Result is a partition: no member appears in two clusters and no
//     cluster is empty. Size() is the total member count.
//
// Community strength:
//
//	NewIndexResult scores a bare partition with modularity. For a cluster c
//	with internal weight in_c and total degree deg_c over a matrix of total
//	weight W = Σ_ij A_ij:
//
//	    Q_c = in_c / W − (deg_c / W)²,    Q = Σ_c Q_c.
//
//	When W is zero every strength is zero.
//
// Duplicate comparisons:
//
//	Two comparisons naming the same unordered pair are resolved by a
//	DuplicatePolicy: overwrite (default, last write wins), sum, max, or
//	reject with ErrDuplicateComparison.
//
// Errors (sentinel):
//
//	– ErrUnknownIndex        an algorithm returned an index outside [0, N).
//	– ErrOverlappingClusters a member appears in more than one cluster.
//	– ErrEmptyCluster        an algorithm returned an empty group.
//	– ErrNilAlgorithm        DoClustering was given a nil Algorithm.
//	– ErrNilResult           an Algorithm returned (nil, nil).
//	– ErrDuplicateComparison a pair was compared twice under DuplicateReject.
//	– ErrNilFunc             NewAdapter/Remap received a nil function.
//	– ErrNegativeSimilarity  Weights found a negative matrix entry.
//
// Concurrency:
//
//	An Adapter is single-run, single-goroutine state. Independent runs use
//	independent Adapters; nothing in this package is process-wide.
package clustering
