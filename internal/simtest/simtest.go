// SPDX-License-Identifier: MIT

// Package simtest holds similarity-matrix fixtures and partition assertions
// shared by the algorithm test suites.
package simtest

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/simcluster/clustering"
	"github.com/katalvlaran/simcluster/matrix"
)

// Edge is one symmetric entry A[I,J] = A[J,I] = W.
type Edge struct {
	I, J int
	W    float64
}

// Matrix builds an n×n symmetric matrix from edges.
func Matrix(tb testing.TB, n int, edges ...Edge) *matrix.Dense {
	tb.Helper()
	m, err := matrix.NewSquare(n)
	require.NoError(tb, err)
	for _, e := range edges {
		require.NoError(tb, m.SetSymmetric(e.I, e.J, e.W))
	}

	return m
}

// Rect is a read-only Rows×Cols matrix of zeros. matrix.Dense is always
// square, so shape validation is tested with this type.
type Rect struct{ R, C int }

func (r Rect) Rows() int { return r.R }
func (r Rect) Cols() int { return r.C }

func (r Rect) At(i, j int) (float64, error) {
	if i < 0 || i >= r.R || j < 0 || j >= r.C {
		return 0, matrix.ErrOutOfRange
	}

	return 0, nil
}

func (r Rect) Set(int, int, float64) error { return matrix.ErrOutOfRange }
func (r Rect) Clone() matrix.Matrix        { return r }

// TwoCliques returns two triangles {0,1,2} and {3,4,5} with internal
// similarity 0.9, joined by a single 0.1 bridge between 2 and 3.
func TwoCliques(tb testing.TB) *matrix.Dense {
	tb.Helper()

	return Matrix(tb, 6,
		Edge{0, 1, 0.9}, Edge{0, 2, 0.9}, Edge{1, 2, 0.9},
		Edge{3, 4, 0.9}, Edge{3, 5, 0.9}, Edge{4, 5, 0.9},
		Edge{2, 3, 0.1},
	)
}

// Partition returns the member lists of res in cluster order.
func Partition(res *clustering.Result[int]) [][]int {
	out := make([][]int, 0, len(res.Clusters()))
	for _, c := range res.Clusters() {
		out = append(out, c.Members())
	}

	return out
}

// RequirePartition asserts that res covers every index in [0, n) exactly once.
func RequirePartition(tb testing.TB, res *clustering.Result[int], n int) {
	tb.Helper()
	require.NotNil(tb, res)
	require.Equal(tb, n, res.Size())
	seen := make([]bool, n)
	for _, c := range res.Clusters() {
		require.NotZero(tb, c.Size())
		for _, v := range c.Members() {
			require.GreaterOrEqual(tb, v, 0)
			require.Less(tb, v, n)
			require.False(tb, seen[v], "index %d in two clusters", v)
			seen[v] = true
		}
	}
}

// Snapshot copies m so a test can later assert it was not mutated.
func Snapshot(tb testing.TB, m matrix.Matrix) [][]float64 {
	tb.Helper()
	rows, err := matrix.ToSlices(m)
	require.NoError(tb, err)

	return rows
}
