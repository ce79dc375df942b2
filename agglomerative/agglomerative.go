// SPDX-License-Identifier: MIT

package agglomerative

import (
	"fmt"
	"math"

	"github.com/katalvlaran/simcluster/clustering"
	"github.com/katalvlaran/simcluster/matrix"
)

// Agglomerative implements clustering.Algorithm.
type Agglomerative struct {
	opts Options
}

var _ clustering.Algorithm = (*Agglomerative)(nil)

// New returns an agglomerative algorithm configured by opts.
func New(opts ...Option) *Agglomerative {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Agglomerative{opts: o}
}

// Options returns the effective configuration.
func (a *Agglomerative) Options() Options { return a.opts }

// Cluster merges the vertices of m bottom-up.
//
// Implementation:
//   - Stage 1: clustering.Weights validates m; its copy becomes the
//     cluster-similarity matrix sim (diagonal unused).
//   - Stage 2: scan live pairs (p<q) in order for the maximum sim; stop if
//     it is below the threshold.
//   - Stage 3: merge q into p, update row p by Lance–Williams, drop q.
//   - Stage 4: score the surviving groups with clustering.NewIndexResult.
func (a *Agglomerative) Cluster(m matrix.Matrix) (*clustering.Result[int], error) {
	sim, err := clustering.Weights(m)
	if err != nil {
		return nil, fmt.Errorf("agglomerative: %w", err)
	}

	n := len(sim)
	groups := make([][]int, n) // groups[p] == nil once merged away
	for v := range groups {
		groups[v] = []int{v}
	}

	for live := n; live > 1; live-- {
		p, q, best := -1, -1, math.Inf(-1)
		for i := 0; i < n; i++ {
			if groups[i] == nil {
				continue
			}
			for j := i + 1; j < n; j++ {
				if groups[j] != nil && sim[i][j] > best {
					p, q, best = i, j, sim[i][j]
				}
			}
		}
		if best < a.opts.Threshold {
			break
		}

		np, nq := float64(len(groups[p])), float64(len(groups[q]))
		for r := 0; r < n; r++ {
			if r == p || r == q || groups[r] == nil {
				continue
			}
			s := a.link(sim[p][r], sim[q][r], np, nq)
			sim[p][r], sim[r][p] = s, s
		}
		groups[p] = mergeSorted(groups[p], groups[q])
		groups[q] = nil
	}

	partition := make([][]int, 0, n)
	for _, g := range groups {
		if g != nil {
			partition = append(partition, g)
		}
	}

	res, err := clustering.NewIndexResult(partition, m)
	if err != nil {
		return nil, fmt.Errorf("agglomerative: %w", err)
	}

	return res, nil
}

// link is the Lance–Williams update for the configured linkage: the
// similarity of r to p∪q from its similarities to p (sp) and q (sq).
func (a *Agglomerative) link(sp, sq, np, nq float64) float64 {
	switch a.opts.Linkage {
	case Minimum:
		return math.Min(sp, sq)
	case Maximum:
		return math.Max(sp, sq)
	default:
		return (np*sp + nq*sq) / (np + nq)
	}
}

// mergeSorted merges two ascending index lists.
func mergeSorted(x, y []int) []int {
	out := make([]int, 0, len(x)+len(y))
	i, j := 0, 0
	for i < len(x) && j < len(y) {
		if x[i] < y[j] {
			out = append(out, x[i])
			i++
		} else {
			out = append(out, y[j])
			j++
		}
	}
	out = append(out, x[i:]...)

	return append(out, y[j:]...)
}
