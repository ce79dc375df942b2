// SPDX-License-Identifier: MIT

package clustering

import "fmt"

// Remap converts a Result over M into a Result over T by applying fn to
// every member.
//
// Behavior highlights:
//   - Overall strength, per-cluster strength and average similarity are copied.
//   - Cluster order and member order are preserved; Size is unchanged.
//   - Every new cluster points at the new result, never at src.
//   - The first fn error aborts the transform; no partial result is returned.
//
// Errors:
//   - ErrNilResult (src nil), ErrNilFunc (fn nil), fn's own errors (wrapped),
//     ErrOverlappingClusters when fn is not injective on src's members.
//
// Complexity: Time O(S), Space O(S) for S members.
func Remap[M comparable, T comparable](src *Result[M], fn func(M) (T, error)) (*Result[T], error) {
	if src == nil {
		return nil, fmt.Errorf("Remap: %w", ErrNilResult)
	}
	if fn == nil {
		return nil, fmt.Errorf("Remap: %w", ErrNilFunc)
	}

	groups := make([]Group[T], len(src.clusters))
	for ci, c := range src.clusters {
		members := make([]T, len(c.members))
		for mi, member := range c.members {
			mapped, err := fn(member)
			if err != nil {
				return nil, fmt.Errorf("Remap: cluster %d: %w", ci, err)
			}
			members[mi] = mapped
		}
		groups[ci] = Group[T]{
			Members:           members,
			CommunityStrength: c.communityStrength,
			AverageSimilarity: c.averageSimilarity,
		}
	}

	out, err := NewResult(groups, src.communityStrength)
	if err != nil {
		return nil, fmt.Errorf("Remap: %w", err)
	}
	out.size = src.size

	return out, nil
}
