// SPDX-License-Identifier: MIT

package clustering

import (
	"errors"

	"github.com/katalvlaran/simcluster/mapping"
)

// Sentinel errors returned by the clustering adapter and result model.
var (
	// ErrUnknownIndex is the mapping sentinel, re-exported so callers of this
	// package can match it without importing mapping.
	ErrUnknownIndex = mapping.ErrUnknownIndex

	// ErrOverlappingClusters indicates that a member occurs in two clusters
	// (or twice in one), i.e. the groups do not form a partition.
	ErrOverlappingClusters = errors.New("clustering: member appears in more than one cluster")

	// ErrEmptyCluster indicates an empty group in an algorithm's output.
	ErrEmptyCluster = errors.New("clustering: empty cluster")

	// ErrNilAlgorithm indicates that DoClustering was called without an algorithm.
	ErrNilAlgorithm = errors.New("clustering: algorithm is nil")

	// ErrNilResult indicates that an algorithm returned neither a result nor an error.
	ErrNilResult = errors.New("clustering: algorithm returned nil result")

	// ErrDuplicateComparison indicates a repeated unordered pair under DuplicateReject.
	ErrDuplicateComparison = errors.New("clustering: duplicate comparison")

	// ErrNilFunc indicates a nil endpoints, metric or mapping function.
	ErrNilFunc = errors.New("clustering: function is nil")

	// ErrNegativeSimilarity indicates a negative matrix entry handed to an
	// algorithm; modularity is undefined for negative weights.
	ErrNegativeSimilarity = errors.New("clustering: negative similarity")
)
