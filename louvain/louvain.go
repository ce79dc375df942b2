// SPDX-License-Identifier: MIT

package louvain

import (
	"fmt"

	"github.com/katalvlaran/simcluster/clustering"
	"github.com/katalvlaran/simcluster/matrix"
)

// Louvain implements clustering.Algorithm.
type Louvain struct {
	opts Options
}

var _ clustering.Algorithm = (*Louvain)(nil)

// New returns a Louvain algorithm configured by opts.
func New(opts ...Option) *Louvain {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Louvain{opts: o}
}

// Options returns the effective configuration.
func (l *Louvain) Options() Options { return l.opts }

// Cluster partitions the vertices of m.
//
// Implementation:
//   - Stage 1: clustering.Weights validates m and yields a private copy.
//   - Stage 2: repeat local moving and aggregation; node[v] tracks the
//     super-vertex of original vertex v across levels.
//   - Stage 3: group original vertices by final super-vertex, clusters ordered
//     by their smallest member, and score with clustering.NewIndexResult.
//
// Complexity: O(P · S · N²) time for P passes and S sweeps per pass on the
// dense representation, O(N²) space.
func (l *Louvain) Cluster(m matrix.Matrix) (*clustering.Result[int], error) {
	w, err := clustering.Weights(m)
	if err != nil {
		return nil, fmt.Errorf("louvain: %w", err)
	}
	n := len(w)

	node := make([]int, n)
	for v := range node {
		node[v] = v
	}

	for pass := 0; pass < l.opts.MaxPasses && len(w) > 1; pass++ {
		comm, moved := l.moveNodes(w)
		if !moved {
			break
		}
		var count int
		w, count = aggregate(w, comm)
		for v := range node {
			node[v] = comm[node[v]]
		}
		if count == len(comm) {
			break
		}
	}

	res, err := clustering.NewIndexResult(groupBy(node), m)
	if err != nil {
		return nil, fmt.Errorf("louvain: %w", err)
	}

	return res, nil
}

// moveNodes runs the local-moving phase on graph w and returns the community
// of every vertex, relabelled densely in order of first appearance.
func (l *Louvain) moveNodes(w [][]float64) ([]int, bool) {
	n := len(w)
	degree := make([]float64, n)
	var total float64
	for i, row := range w {
		for _, v := range row {
			degree[i] += v
		}
		total += degree[i]
	}

	comm := make([]int, n)
	tot := make([]float64, n) // Σ_tot per community label
	for i := range comm {
		comm[i] = i
		tot[i] = degree[i]
	}
	if total == 0 {
		return comm, false
	}

	links := make([]float64, n) // k_{i,c} scratch, indexed by community
	touched := make([]int, 0, n)
	gamma := l.opts.Resolution
	moved := false

	for sweep := 0; sweep < maxLocalSweeps; sweep++ {
		changed := false
		for i := 0; i < n; i++ {
			own := comm[i]
			tot[own] -= degree[i]

			touched = touched[:0]
			for j, v := range w[i] {
				if j == i || v <= 0 {
					continue
				}
				c := comm[j]
				if links[c] == 0 {
					touched = append(touched, c)
				}
				links[c] += v
			}

			gain := func(c int) float64 { return links[c] - gamma*tot[c]*degree[i]/total }
			best, bestGain := own, gain(own)
			for _, c := range touched {
				if g := gain(c); g > bestGain+l.opts.MinGain {
					best, bestGain = c, g
				}
			}
			for _, c := range touched {
				links[c] = 0
			}
			links[own] = 0

			tot[best] += degree[i]
			if best != own {
				comm[i] = best
				changed = true
				moved = true
			}
		}
		if !changed {
			break
		}
	}

	return relabel(comm), moved
}

// relabel renumbers community labels to 0..k-1 in order of first appearance.
func relabel(comm []int) []int {
	ids := make(map[int]int, len(comm))
	out := make([]int, len(comm))
	for i, c := range comm {
		id, ok := ids[c]
		if !ok {
			id = len(ids)
			ids[c] = id
		}
		out[i] = id
	}

	return out
}

// aggregate collapses every community of w into one super-vertex. Internal
// weight (both directions) lands on the diagonal.
func aggregate(w [][]float64, comm []int) ([][]float64, int) {
	k := 0
	for _, c := range comm {
		if c+1 > k {
			k = c + 1
		}
	}
	out := make([][]float64, k)
	for a := range out {
		out[a] = make([]float64, k)
	}
	for i, row := range w {
		for j, v := range row {
			out[comm[i]][comm[j]] += v
		}
	}

	return out, k
}

// groupBy turns a label per vertex into index groups ordered by smallest member.
func groupBy(label []int) [][]int {
	pos := make(map[int]int)
	var groups [][]int
	for v, l := range label {
		g, ok := pos[l]
		if !ok {
			g = len(groups)
			pos[l] = g
			groups = append(groups, nil)
		}
		groups[g] = append(groups[g], v)
	}

	return groups
}
