// SPDX-License-Identifier: MIT

package spectral

import (
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/simcluster/clustering"
	"github.com/katalvlaran/simcluster/matrix"
)

// Spectral implements clustering.Algorithm.
type Spectral struct {
	opts Options
}

var _ clustering.Algorithm = (*Spectral)(nil)

// New returns a spectral algorithm. Panics if MaxClusters < MinClusters.
func New(opts ...Option) *Spectral {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.MaxClusters < o.MinClusters {
		panic(fmt.Sprintf("spectral: MaxClusters %d < MinClusters %d", o.MaxClusters, o.MinClusters))
	}

	return &Spectral{opts: o}
}

// Options returns the effective configuration.
func (s *Spectral) Options() Options { return s.opts }

// Cluster partitions the vertices of m; see the package documentation for
// the pipeline.
//
// Errors:
//   - clustering.Weights errors for an invalid matrix.
//   - matrix.ErrEigenFailed when Jacobi does not converge within the cap.
//
// Complexity: O(S·N³ + K·I·N·K) for S Jacobi sweeps, K candidate values of k
// and I Lloyd iterations; O(N²) space.
func (s *Spectral) Cluster(m matrix.Matrix) (*clustering.Result[int], error) {
	w, err := clustering.Weights(m)
	if err != nil {
		return nil, fmt.Errorf("spectral: %w", err)
	}
	n := len(w)

	// Stage 1: split off zero-degree vertices.
	active := make([]int, 0, n)
	var scale []float64
	for v, row := range w {
		var deg float64
		for _, x := range row {
			deg += x
		}
		if deg > 0 {
			active = append(active, v)
			scale = append(scale, 1/math.Sqrt(deg))
		}
	}
	na := len(active)
	if na == 0 {
		return s.score(n, active, nil, m)
	}

	// Stage 2: normalised adjacency of the active vertices and its spectrum.
	sub, err := matrix.NewSquare(na)
	if err != nil {
		return nil, fmt.Errorf("spectral: %w", err)
	}
	for a, i := range active {
		for b, j := range active {
			if err = sub.Set(a, b, w[i][j]); err != nil {
				return nil, fmt.Errorf("spectral: %w", err)
			}
		}
	}
	norm, err := matrix.ScaleSymmetric(sub, scale)
	if err != nil {
		return nil, fmt.Errorf("spectral: %w", err)
	}
	values, vectors, err := matrix.Eigen(norm, s.opts.Tolerance, s.opts.MaxIterations)
	if err != nil {
		return nil, fmt.Errorf("spectral: %w", err)
	}
	order := make([]int, na)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool { return values[order[a]] > values[order[b]] })

	// Stage 3+4: try every k and keep the best-scoring partition.
	kmin, kmax := min(s.opts.MinClusters, na), min(s.opts.MaxClusters, na)
	var best *clustering.Result[int]
	for k := kmin; k <= kmax; k++ {
		points, err := embed(vectors, order[:k])
		if err != nil {
			return nil, fmt.Errorf("spectral: %w", err)
		}
		labels := kmeans(points, k, s.opts.KMeansIterations)
		res, err := s.score(n, active, labels, m)
		if err != nil {
			return nil, err
		}
		if best == nil || res.CommunityStrength() > best.CommunityStrength() {
			best = res
		}
	}

	return best, nil
}

// score assembles the full partition (active vertices grouped by label, the
// rest as singletons), ordered by smallest member, and rates it.
func (s *Spectral) score(n int, active, labels []int, m matrix.Matrix) (*clustering.Result[int], error) {
	label := make([]int, n)
	for v := range label {
		label[v] = -1 - v // unique negative label: singleton
	}
	for a, v := range active {
		if labels != nil {
			label[v] = labels[a]
		}
	}

	pos := make(map[int]int)
	var partition [][]int
	for v, l := range label {
		g, ok := pos[l]
		if !ok {
			g = len(partition)
			pos[l] = g
			partition = append(partition, nil)
		}
		partition[g] = append(partition[g], v)
	}

	res, err := clustering.NewIndexResult(partition, m)
	if err != nil {
		return nil, fmt.Errorf("spectral: %w", err)
	}

	return res, nil
}

// embed returns one unit-length row per vertex built from the given
// eigenvector columns. All-zero rows stay zero.
func embed(vectors *matrix.Dense, cols []int) ([][]float64, error) {
	n := vectors.Rows()
	points := make([][]float64, n)
	for i := range points {
		row := make([]float64, len(cols))
		var norm float64
		for c, col := range cols {
			v, err := vectors.At(i, col)
			if err != nil {
				return nil, err
			}
			row[c] = v
			norm += v * v
		}
		if norm > 0 {
			norm = math.Sqrt(norm)
			for c := range row {
				row[c] /= norm
			}
		}
		points[i] = row
	}

	return points, nil
}

// kmeans runs Lloyd's algorithm with farthest-point seeding and returns a
// label in [0, k) per point. Ties go to the lowest index.
func kmeans(points [][]float64, k, iterations int) []int {
	n := len(points)
	centroids := make([][]float64, 0, k)
	centroids = append(centroids, clone(points[0]))
	nearest := make([]float64, n)
	for i := range nearest {
		nearest[i] = dist2(points[i], centroids[0])
	}
	for len(centroids) < k {
		far := 0
		for i := 1; i < n; i++ {
			if nearest[i] > nearest[far] {
				far = i
			}
		}
		centroids = append(centroids, clone(points[far]))
		for i := range nearest {
			nearest[i] = min(nearest[i], dist2(points[i], points[far]))
		}
	}

	labels := make([]int, n)
	for i := range labels {
		labels[i] = -1
	}
	counts := make([]int, k)
	for it := 0; it < iterations; it++ {
		changed := false
		for i, p := range points {
			bestC, bestD := 0, dist2(p, centroids[0])
			for c := 1; c < k; c++ {
				if d := dist2(p, centroids[c]); d < bestD {
					bestC, bestD = c, d
				}
			}
			if labels[i] != bestC {
				labels[i] = bestC
				changed = true
			}
		}
		if !changed {
			break
		}

		// Recompute means; an emptied centroid keeps its position.
		for c := range counts {
			counts[c] = 0
		}
		sums := make([][]float64, k)
		for c := range sums {
			sums[c] = make([]float64, len(points[0]))
		}
		for i, p := range points {
			counts[labels[i]]++
			for d, x := range p {
				sums[labels[i]][d] += x
			}
		}
		for c := range centroids {
			if counts[c] == 0 {
				continue
			}
			for d := range centroids[c] {
				centroids[c][d] = sums[c][d] / float64(counts[c])
			}
		}
	}

	return labels
}

func dist2(a, b []float64) float64 {
	var s float64
	for i := range a {
		d := a[i] - b[i]
		s += d * d
	}

	return s
}

func clone(p []float64) []float64 {
	out := make([]float64, len(p))
	copy(out, p)

	return out
}
