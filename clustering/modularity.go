// SPDX-License-Identifier: MIT

package clustering

import (
	"fmt"

	"github.com/katalvlaran/simcluster/matrix"
)

// NewIndexResult scores a partition of matrix indices with modularity and
// wraps it into an index-keyed Result. Concrete algorithms call it so that
// every algorithm reports community strength the same way.
//
// Implementation:
//   - Stage 1: validate m is square; compute weighted degrees and W = Σ_ij A_ij.
//   - Stage 2: reject indices outside [0, N) with ErrUnknownIndex.
//   - Stage 3: per cluster, accumulate internal weight, degree sum and the
//     upper-triangle similarity sum; derive Q_c and the average similarity.
//   - Stage 4: NewResult enforces non-empty, disjoint groups.
//
// Determinism:
//   - Clusters and members keep the order of partition.
//
// Complexity:
//   - Time O(N² + Σ_c |c|²), Space O(N + S).
func NewIndexResult(partition [][]int, m matrix.Matrix) (*Result[int], error) {
	if err := matrix.ValidateSquare(m); err != nil {
		return nil, fmt.Errorf("NewIndexResult: %w", err)
	}
	n := m.Rows()
	degrees, err := matrix.RowSums(m)
	if err != nil {
		return nil, fmt.Errorf("NewIndexResult: %w", err)
	}
	var total float64
	for _, d := range degrees {
		total += d
	}

	groups := make([]Group[int], len(partition))
	var overall float64
	for ci, members := range partition {
		for _, idx := range members {
			if idx < 0 || idx >= n {
				return nil, fmt.Errorf("NewIndexResult: cluster %d: index %d: %w", ci, idx, ErrUnknownIndex)
			}
		}

		var internal, degreeSum, pairSum float64
		for a, i := range members {
			degreeSum += degrees[i]
			for b, j := range members {
				w, _ := m.At(i, j) // indices validated above
				internal += w
				if b > a {
					pairSum += w
				}
			}
		}

		var strength float64
		if total > 0 {
			share := degreeSum / total
			strength = internal/total - share*share
		}
		var average float64
		if k := len(members); k > 1 {
			average = pairSum / (float64(k*(k-1)) / 2)
		}

		groups[ci] = Group[int]{Members: members, CommunityStrength: strength, AverageSimilarity: average}
		overall += strength
	}

	return NewResult(groups, overall)
}
