package louvain_test

import (
	"testing"

	"github.com/katalvlaran/simcluster/internal/simtest"
	"github.com/katalvlaran/simcluster/louvain"
)

// BenchmarkLouvain clusters 20 blocks of 10 vertices with weak cross links.
func BenchmarkLouvain(b *testing.B) {
	const blocks, size = 20, 10
	var edges []simtest.Edge
	for i := 0; i < blocks*size; i++ {
		for j := i + 1; j < blocks*size; j++ {
			w := 0.01
			if i/size == j/size {
				w = 0.8
			}
			edges = append(edges, simtest.Edge{I: i, J: j, W: w})
		}
	}
	m := simtest.Matrix(b, blocks*size, edges...)
	alg := louvain.New()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = alg.Cluster(m)
	}
}
