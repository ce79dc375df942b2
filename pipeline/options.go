// SPDX-License-Identifier: MIT

package pipeline

import (
	"fmt"
	"runtime"

	"go.uber.org/zap"

	"github.com/katalvlaran/simcluster/clustering"
	"github.com/katalvlaran/simcluster/comparison"
)

// Option configures a Runner.
type Option func(*Runner)

// WithMode selects sequential or parallel execution. Default ModeNormal.
// Panics on an undeclared mode.
func WithMode(m comparison.Mode) Option {
	if m != comparison.ModeNormal && m != comparison.ModeParallel {
		panic(fmt.Sprintf("pipeline: WithMode(%v): unknown mode", m))
	}

	return func(r *Runner) { r.mode = m }
}

// WithConcurrency bounds parallel jobs in flight. n == 0 restores the
// default of runtime.GOMAXPROCS(0); negative n panics.
func WithConcurrency(n int) Option {
	if n < 0 {
		panic(fmt.Sprintf("pipeline: WithConcurrency(%d): need n >= 0", n))
	}

	return func(r *Runner) {
		if n == 0 {
			n = runtime.GOMAXPROCS(0)
		}
		r.concurrency = n
	}
}

// WithLogger sets the structured logger; nil means zap.NewNop().
func WithLogger(l *zap.Logger) Option {
	return func(r *Runner) {
		if l == nil {
			l = zap.NewNop()
		}
		r.logger = l
	}
}

// WithMetrics records run statistics into m; nil disables metrics.
func WithMetrics(m *Metrics) Option {
	return func(r *Runner) { r.metrics = m }
}

// WithAdapterOptions forwards options to every clustering.NewAdapter call.
func WithAdapterOptions(opts ...clustering.Option) Option {
	return func(r *Runner) { r.adapterOpts = append(r.adapterOpts, opts...) }
}
