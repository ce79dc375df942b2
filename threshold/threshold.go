// Package threshold clusters a similarity matrix into the connected
// components of its threshold graph: i and j are linked when i ≠ j and
// A_ij ≥ t. Components are found breadth-first from the lowest unvisited
// vertex, so clusters come out ordered by their smallest member.
package threshold

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/simcluster/clustering"
	"github.com/katalvlaran/simcluster/matrix"
)

// Threshold implements clustering.Algorithm.
type Threshold struct {
	opts Options
}

var _ clustering.Algorithm = (*Threshold)(nil)

// New returns a Threshold algorithm. Option errors are reported by Cluster.
func New(opts ...Option) *Threshold {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Threshold{opts: o}
}

// Options returns the effective configuration.
func (t *Threshold) Options() Options { return t.opts }

// walker encapsulates mutable component-search state.
type walker struct {
	weights [][]float64
	min     float64
	queue   []int
	visited []bool
}

// Cluster returns the connected components of the threshold graph of m.
// Returns ErrOptionViolation for bad options, or the clustering.Weights
// errors for an invalid matrix.
//
// Complexity: O(N²) time, O(N²) space for the private weight copy.
func (t *Threshold) Cluster(m matrix.Matrix) (*clustering.Result[int], error) {
	if t.opts.err != nil {
		return nil, t.opts.err
	}
	weights, err := clustering.Weights(m)
	if err != nil {
		return nil, fmt.Errorf("threshold: %w", err)
	}

	n := len(weights)
	w := &walker{
		weights: weights,
		min:     t.opts.Threshold,
		queue:   make([]int, 0, n),
		visited: make([]bool, n),
	}
	var partition [][]int
	for root := 0; root < n; root++ {
		if !w.visited[root] {
			partition = append(partition, w.component(root))
		}
	}

	res, err := clustering.NewIndexResult(partition, m)
	if err != nil {
		return nil, fmt.Errorf("threshold: %w", err)
	}

	return res, nil
}

// component drains the queue from root and returns the reached vertices in
// ascending order.
func (w *walker) component(root int) []int {
	w.visited[root] = true
	w.queue = append(w.queue[:0], root)
	var members []int
	for len(w.queue) > 0 {
		v := w.queue[0]
		w.queue = w.queue[1:]
		members = append(members, v)
		for u, s := range w.weights[v] {
			if u == v || w.visited[u] || s < w.min {
				continue
			}
			w.visited[u] = true
			w.queue = append(w.queue, u)
		}
	}
	sort.Ints(members)

	return members
}
