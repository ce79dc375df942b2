// SPDX-License-Identifier: MIT

package clustering

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/simcluster/mapping"
	"github.com/katalvlaran/simcluster/matrix"
)

// pairKey is an unordered pair of indices normalized to (min, max), used to
// detect repeated comparisons of the same two objects.
type pairKey struct {
	u int // smaller index
	v int // larger index
}

func newPairKey(i, j int) pairKey {
	if i > j {
		i, j = j, i
	}
	return pairKey{u: i, v: j}
}

// Adapter turns pairwise comparisons of domain objects into a dense symmetric
// similarity matrix and turns index partitions back into clusters of objects.
// One Adapter serves one clustering run; its mapping and matrix are never
// exposed for mutation.
type Adapter[T comparable] struct {
	similarity  *matrix.Dense
	mapping     *mapping.IntegerMapping[T]
	comparisons int
	logger      *zap.Logger
}

// NewAdapter builds the similarity matrix for comparisons.
//
// Implementation:
//   - Stage 1: map both endpoints of every comparison, so every object that
//     occurs in at least one comparison owns an index.
//   - Stage 2: allocate an N×N zero matrix (N may be 0).
//   - Stage 3: write metric(c) symmetrically for every comparison, folding
//     repeated pairs with the configured DuplicatePolicy. Self-comparisons
//     keep their object mapped but never touch the diagonal.
//
// Inputs:
//   - comparisons: pairwise observations, in the order they should be applied.
//   - endpoints: extracts the two compared objects from a comparison.
//   - metric: extracts the similarity score; must be finite.
//
// Errors:
//   - ErrNilFunc when endpoints or metric is nil.
//   - matrix.ErrNaNInf when metric yields NaN or ±Inf.
//   - ErrDuplicateComparison under DuplicateReject.
//
// Complexity:
//   - Time O(C + N²), Space O(N² + C) for C comparisons over N objects.
func NewAdapter[C any, T comparable](
	comparisons []C,
	endpoints func(C) (T, T),
	metric func(C) float64,
	opts ...Option,
) (*Adapter[T], error) {
	if endpoints == nil || metric == nil {
		return nil, fmt.Errorf("NewAdapter: %w", ErrNilFunc)
	}
	o := gatherOptions(opts...)

	// Pass 1: hand out indices.
	ids := mapping.NewIntegerMapping[T](2 * len(comparisons))
	for _, c := range comparisons {
		first, second := endpoints(c)
		ids.Map(first)
		ids.Map(second)
	}
	n := ids.Size()

	similarity, err := matrix.NewSquare(n)
	if err != nil {
		return nil, fmt.Errorf("NewAdapter: %w", err)
	}

	// Pass 2: write scores.
	seen := make(map[pairKey]struct{}, len(comparisons))
	var duplicates, selfPairs int
	for k, c := range comparisons {
		first, second := endpoints(c)
		i, _ := ids.Lookup(first)
		j, _ := ids.Lookup(second)
		if i == j {
			selfPairs++
			continue
		}
		score := metric(c)

		key := newPairKey(i, j)
		if _, dup := seen[key]; dup {
			duplicates++
			if score, err = foldDuplicate(o.Duplicates, similarity, i, j, score); err != nil {
				return nil, fmt.Errorf("NewAdapter: comparison %d: %w", k, err)
			}
		}
		seen[key] = struct{}{}

		if err = similarity.SetSymmetric(i, j, score); err != nil {
			return nil, fmt.Errorf("NewAdapter: comparison %d: %w", k, err)
		}
	}

	o.Logger.Debug("similarity matrix built",
		zap.Int("comparisons", len(comparisons)),
		zap.Int("objects", n),
		zap.Int("duplicates", duplicates),
		zap.Int("selfComparisons", selfPairs),
		zap.Stringer("duplicatePolicy", o.Duplicates),
	)

	return &Adapter[T]{
		similarity:  similarity,
		mapping:     ids,
		comparisons: len(comparisons),
		logger:      o.Logger,
	}, nil
}

// foldDuplicate combines a repeated pair's new score with the stored one.
func foldDuplicate(p DuplicatePolicy, m *matrix.Dense, i, j int, score float64) (float64, error) {
	if p == DuplicateOverwrite {
		return score, nil
	}
	if p == DuplicateReject {
		return 0, fmt.Errorf("pair (%d,%d): %w", i, j, ErrDuplicateComparison)
	}
	prev, err := m.At(i, j)
	if err != nil {
		return 0, err
	}
	if p == DuplicateSum {
		return prev + score, nil
	}
	// DuplicateMax
	if prev > score {
		return prev, nil
	}

	return score, nil
}

// Size returns the number of distinct objects represented in the matrix.
func (a *Adapter[T]) Size() int { return a.mapping.Size() }

// Comparisons returns the number of comparisons the adapter was built from.
func (a *Adapter[T]) Comparisons() int { return a.comparisons }

// Index returns the matrix index of obj, if obj occurred in any comparison.
func (a *Adapter[T]) Index(obj T) (int, bool) { return a.mapping.Lookup(obj) }

// Unmap returns the object at matrix index idx.
// Errors: ErrUnknownIndex.
func (a *Adapter[T]) Unmap(idx int) (T, error) { return a.mapping.Unmap(idx) }

// Objects returns all mapped objects in index order.
func (a *Adapter[T]) Objects() []T { return a.mapping.Objects() }

// Matrix returns a copy of the similarity matrix.
// Complexity: O(N²).
func (a *Adapter[T]) Matrix() matrix.Matrix { return a.similarity.Clone() }

// DoClustering runs alg on a copy of the similarity matrix and remaps the
// index partition to domain objects.
//
// Errors:
//   - ErrNilAlgorithm, ErrNilResult.
//   - any error of alg, wrapped.
//   - ErrUnknownIndex when alg returned an index it was never given;
//     no partial result is returned.
//
// Complexity: O(N²) for the copy plus the algorithm's own cost.
func (a *Adapter[T]) DoClustering(alg Algorithm) (*Result[T], error) {
	if alg == nil {
		return nil, fmt.Errorf("DoClustering: %w", ErrNilAlgorithm)
	}
	indexed, err := alg.Cluster(a.similarity.Clone())
	if err != nil {
		return nil, fmt.Errorf("DoClustering: %w", err)
	}
	if indexed == nil {
		return nil, fmt.Errorf("DoClustering: %w", ErrNilResult)
	}

	res, err := Remap(indexed, a.mapping.Unmap)
	if err != nil {
		a.logger.Error("remapping clustering result failed", zap.Error(err))
		return nil, fmt.Errorf("DoClustering: %w", err)
	}
	if res.Size() != a.Size() {
		a.logger.Warn("clustering does not cover every object",
			zap.Int("objects", a.Size()),
			zap.Int("clustered", res.Size()),
		)
	}
	a.logger.Debug("clustering done",
		zap.Int("clusters", len(res.clusters)),
		zap.Float64("communityStrength", res.CommunityStrength()),
	)

	return res, nil
}
