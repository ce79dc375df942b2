// SPDX-License-Identifier: MIT

package louvain

import (
	"fmt"
	"math"
)

// Defaults used by DefaultOptions.
const (
	DefaultResolution = 1.0
	DefaultMaxPasses  = 20
	DefaultMinGain    = 1e-9
)

// maxLocalSweeps bounds the local-moving phase of one pass.
const maxLocalSweeps = 1000

// Options configures a Louvain run.
type Options struct {
	Resolution float64 // γ in the gain formula
	MaxPasses  int     // upper bound on move+aggregate passes
	MinGain    float64 // a move must beat staying put by more than this
}

// Option mutates Options. Invalid values panic at construction time; they
// are programmer errors, not data errors.
type Option func(*Options)

// DefaultOptions returns γ = 1, 20 passes and a 1e-9 gain threshold.
func DefaultOptions() Options {
	return Options{
		Resolution: DefaultResolution,
		MaxPasses:  DefaultMaxPasses,
		MinGain:    DefaultMinGain,
	}
}

// WithResolution sets γ. Panics unless γ is finite and > 0.
func WithResolution(gamma float64) Option {
	if !(gamma > 0) || math.IsInf(gamma, 0) {
		panic(fmt.Sprintf("louvain: WithResolution(%v): need finite γ > 0", gamma))
	}

	return func(o *Options) { o.Resolution = gamma }
}

// WithMaxPasses bounds the number of passes. Panics if n <= 0.
func WithMaxPasses(n int) Option {
	if n <= 0 {
		panic(fmt.Sprintf("louvain: WithMaxPasses(%d): need n > 0", n))
	}

	return func(o *Options) { o.MaxPasses = n }
}

// WithMinGain sets the move threshold. Panics unless g is finite and >= 0.
func WithMinGain(g float64) Option {
	if !(g >= 0) || math.IsInf(g, 0) {
		panic(fmt.Sprintf("louvain: WithMinGain(%v): need finite g >= 0", g))
	}

	return func(o *Options) { o.MinGain = g }
}
