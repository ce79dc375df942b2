package agglomerative_test

import (
	"fmt"

	"github.com/katalvlaran/simcluster/agglomerative"
	"github.com/katalvlaran/simcluster/matrix"
)

// ExampleAgglomerative_Cluster contrasts linkages on a chain A–B–C.
func ExampleAgglomerative_Cluster() {
	m, _ := matrix.NewSquare(3)
	_ = m.SetSymmetric(0, 1, 0.8)
	_ = m.SetSymmetric(1, 2, 0.8)
	_ = m.SetSymmetric(0, 2, 0.1)

	for _, l := range []agglomerative.Linkage{agglomerative.Maximum, agglomerative.Minimum} {
		alg := agglomerative.New(agglomerative.WithLinkage(l), agglomerative.WithThreshold(0.5))
		res, err := alg.Cluster(m)
		if err != nil {
			fmt.Println("error:", err)
			return
		}
		fmt.Print(l, ":")
		for _, c := range res.Clusters() {
			fmt.Print(" ", c.Members())
		}
		fmt.Println()
	}
	// Output:
	// maximum: [0 1 2]
	// minimum: [0 1] [2]
}
