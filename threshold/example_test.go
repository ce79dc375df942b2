package threshold_test

import (
	"fmt"

	"github.com/katalvlaran/simcluster/matrix"
	"github.com/katalvlaran/simcluster/threshold"
)

// ExampleThreshold_Cluster links pairs whose similarity reaches 0.5.
func ExampleThreshold_Cluster() {
	// A–B 0.8, B–C 0.6, C–D 0.3: D falls below the threshold.
	m, _ := matrix.NewSquare(4)
	_ = m.SetSymmetric(0, 1, 0.8)
	_ = m.SetSymmetric(1, 2, 0.6)
	_ = m.SetSymmetric(2, 3, 0.3)

	res, err := threshold.New(threshold.WithThreshold(0.5)).Cluster(m)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, c := range res.Clusters() {
		fmt.Println(c.Members())
	}
	// Output:
	// [0 1 2]
	// [3]
}
