package louvain_test

import (
	"fmt"

	"github.com/katalvlaran/simcluster/louvain"
	"github.com/katalvlaran/simcluster/matrix"
)

// ExampleLouvain_Cluster splits two loosely bridged triangles.
func ExampleLouvain_Cluster() {
	m, _ := matrix.NewSquare(6)
	for _, e := range [][3]float64{
		{0, 1, 0.9}, {0, 2, 0.9}, {1, 2, 0.9},
		{3, 4, 0.9}, {3, 5, 0.9}, {4, 5, 0.9},
		{2, 3, 0.1},
	} {
		_ = m.SetSymmetric(int(e[0]), int(e[1]), e[2])
	}

	res, err := louvain.New().Cluster(m)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, c := range res.Clusters() {
		fmt.Println(c.Members())
	}
	fmt.Printf("Q=%.3f\n", res.CommunityStrength())
	// Output:
	// [0 1 2]
	// [3 4 5]
	// Q=0.482
}
