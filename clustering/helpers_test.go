package clustering_test

import (
	"testing"

	"github.com/katalvlaran/simcluster/clustering"
	"github.com/katalvlaran/simcluster/matrix"
	"github.com/stretchr/testify/require"
)

// submission stands in for a domain object compared by identity.
type submission struct{ name string }

// comparison is a minimal pairwise observation.
type comparison struct {
	first, second *submission
	score         float64
}

func endpoints(c comparison) (*submission, *submission) { return c.first, c.second }

func score(c comparison) float64 { return c.score }

// fixed returns an algorithm that ignores the matrix and reports groups verbatim.
func fixed(t *testing.T, groups []clustering.Group[int], strength float64) clustering.Algorithm {
	t.Helper()
	return clustering.AlgorithmFunc(func(matrix.Matrix) (*clustering.Result[int], error) {
		return clustering.NewResult(groups, strength)
	})
}

// names flattens a cluster to member names.
func names(c *clustering.Cluster[*submission]) []string {
	out := make([]string, 0, c.Size())
	for _, s := range c.Members() {
		out = append(out, s.name)
	}
	return out
}

// at reads m[i,j] and fails the test on error.
func at(t *testing.T, m matrix.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err)
	return v
}
