// Package threshold provides tunable options and error definitions for
// connected-component clustering of a similarity matrix.
package threshold

import (
	"errors"
	"fmt"
	"math"
)

// ErrOptionViolation is returned when an invalid Option is supplied.
var ErrOptionViolation = errors.New("threshold: invalid option supplied")

// DefaultThreshold is the minimum similarity that links two vertices.
const DefaultThreshold = 0.5

// Option configures a Threshold run via functional arguments.
// If an Option is invalid (e.g. negative threshold), it is recorded
// internally and surfaced as ErrOptionViolation when Cluster is invoked.
type Option func(*Options)

// Options holds the parameters of a Threshold run.
type Options struct {
	// Threshold is the minimum A_ij for i and j to share an edge.
	Threshold float64

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with Threshold = DefaultThreshold.
func DefaultOptions() Options {
	return Options{Threshold: DefaultThreshold}
}

// WithThreshold sets the minimum linking similarity.
//
//	t ≥ 0 and finite: edges need A_ij ≥ t
//	otherwise: invalid option → ErrOptionViolation
//
// t == 0 links every pair of vertices, so the result is a single cluster.
func WithThreshold(t float64) Option {
	return func(o *Options) {
		if math.IsNaN(t) || math.IsInf(t, 0) || t < 0 {
			o.err = fmt.Errorf("%w: threshold must be finite and >= 0 (%v)", ErrOptionViolation, t)
			return
		}
		o.Threshold = t
	}
}
