// SPDX-License-Identifier: MIT

package spectral

import (
	"fmt"
	"math"
)

// Defaults used by DefaultOptions.
const (
	DefaultMinClusters      = 2
	DefaultMaxClusters      = 8
	DefaultTolerance        = 1e-9
	DefaultMaxIterations    = 100
	DefaultKMeansIterations = 100
)

// Options configures a spectral run. MaxIterations counts Jacobi sweeps.
type Options struct {
	MinClusters      int
	MaxClusters      int
	Tolerance        float64
	MaxIterations    int
	KMeansIterations int
}

// Option mutates Options; invalid values panic.
type Option func(*Options)

// DefaultOptions returns the package defaults.
func DefaultOptions() Options {
	return Options{
		MinClusters:      DefaultMinClusters,
		MaxClusters:      DefaultMaxClusters,
		Tolerance:        DefaultTolerance,
		MaxIterations:    DefaultMaxIterations,
		KMeansIterations: DefaultKMeansIterations,
	}
}

// WithMinClusters sets the smallest k tried. Panics if k < 1.
func WithMinClusters(k int) Option {
	if k < 1 {
		panic(fmt.Sprintf("spectral: WithMinClusters(%d): need k >= 1", k))
	}

	return func(o *Options) { o.MinClusters = k }
}

// WithMaxClusters sets the largest k tried. Panics if k < 1.
func WithMaxClusters(k int) Option {
	if k < 1 {
		panic(fmt.Sprintf("spectral: WithMaxClusters(%d): need k >= 1", k))
	}

	return func(o *Options) { o.MaxClusters = k }
}

// WithTolerance sets the Jacobi convergence threshold. Panics unless finite and > 0.
func WithTolerance(tol float64) Option {
	if !(tol > 0) || math.IsInf(tol, 0) {
		panic(fmt.Sprintf("spectral: WithTolerance(%v): need finite tol > 0", tol))
	}

	return func(o *Options) { o.Tolerance = tol }
}

// WithMaxIterations caps Jacobi sweeps. Panics if n <= 0.
func WithMaxIterations(n int) Option {
	if n <= 0 {
		panic(fmt.Sprintf("spectral: WithMaxIterations(%d): need n > 0", n))
	}

	return func(o *Options) { o.MaxIterations = n }
}

// WithKMeansIterations caps Lloyd iterations per k. Panics if n <= 0.
func WithKMeansIterations(n int) Option {
	if n <= 0 {
		panic(fmt.Sprintf("spectral: WithKMeansIterations(%d): need n > 0", n))
	}

	return func(o *Options) { o.KMeansIterations = n }
}
