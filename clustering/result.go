// SPDX-License-Identifier: MIT

package clustering

import "fmt"

// Group is the raw material of a Cluster: its members in algorithm order and
// the statistics computed for it.
type Group[M any] struct {
	Members           []M     // ordered members
	CommunityStrength float64 // this group's contribution to the overall strength
	AverageSimilarity float64 // mean pairwise similarity inside the group
}

// Cluster is one block of a partition.
// It holds a non-owning handle to the Result that contains it; the handle is
// used only for read-only result-level queries.
type Cluster[M comparable] struct {
	members           []M
	communityStrength float64
	averageSimilarity float64
	owner             *Result[M]
}

// Members returns a copy of the cluster members in their original order.
// Complexity: O(k).
func (c *Cluster[M]) Members() []M {
	out := make([]M, len(c.members))
	copy(out, c.members)

	return out
}

// Size returns the number of members.
func (c *Cluster[M]) Size() int { return len(c.members) }

// CommunityStrength returns this cluster's share of the overall strength.
func (c *Cluster[M]) CommunityStrength() float64 { return c.communityStrength }

// AverageSimilarity returns the mean similarity over unordered member pairs
// (0 for singletons).
func (c *Cluster[M]) AverageSimilarity() float64 { return c.averageSimilarity }

// Owner returns the Result this cluster belongs to.
func (c *Cluster[M]) Owner() *Result[M] { return c.owner }

// NormalizedCommunityStrength returns the cluster strength relative to the
// owning result's overall strength; 0 when the overall strength is 0.
func (c *Cluster[M]) NormalizedCommunityStrength() float64 {
	total := c.owner.CommunityStrength()
	if total == 0 {
		return 0
	}

	return c.communityStrength / total
}

// CommunityStrengthPerConnection spreads the normalized strength over the
// k·(k−1)/2 member pairs; clusters with fewer than two members yield 0.
func (c *Cluster[M]) CommunityStrengthPerConnection() float64 {
	k := len(c.members)
	if k < 2 {
		return 0
	}
	connections := float64(k*(k-1)) / 2

	return c.NormalizedCommunityStrength() / connections
}

// Result is a partition of members into clusters plus the overall
// community strength. It is immutable once built.
type Result[M comparable] struct {
	clusters          []*Cluster[M]
	communityStrength float64
	size              int
}

// Clusters returns the clusters in their original order. The slice is a
// copy; the clusters themselves are shared and read-only.
func (r *Result[M]) Clusters() []*Cluster[M] {
	out := make([]*Cluster[M], len(r.clusters))
	copy(out, r.clusters)

	return out
}

// CommunityStrength returns the overall quality of the partition.
func (r *Result[M]) CommunityStrength() float64 { return r.communityStrength }

// Size returns the total number of members over all clusters.
func (r *Result[M]) Size() int { return r.size }

// NewResult builds a Result from groups, copying every member slice.
//
// Implementation:
//   - Stage 1: reject empty groups (ErrEmptyCluster).
//   - Stage 2: reject members seen before in any group (ErrOverlappingClusters).
//   - Stage 3: wire each cluster's owner handle to the new result.
//
// Complexity: Time O(S), Space O(S) for S total members.
func NewResult[M comparable](groups []Group[M], communityStrength float64) (*Result[M], error) {
	res := &Result[M]{
		clusters:          make([]*Cluster[M], 0, len(groups)),
		communityStrength: communityStrength,
	}
	seen := make(map[M]int)
	for gi, g := range groups {
		if len(g.Members) == 0 {
			return nil, fmt.Errorf("NewResult: group %d: %w", gi, ErrEmptyCluster)
		}
		for _, member := range g.Members {
			if prev, dup := seen[member]; dup {
				return nil, fmt.Errorf("NewResult: member %v in groups %d and %d: %w",
					member, prev, gi, ErrOverlappingClusters)
			}
			seen[member] = gi
		}
		members := make([]M, len(g.Members))
		copy(members, g.Members)
		res.clusters = append(res.clusters, &Cluster[M]{
			members:           members,
			communityStrength: g.CommunityStrength,
			averageSimilarity: g.AverageSimilarity,
			owner:             res,
		})
		res.size += len(members)
	}

	return res, nil
}
