// SPDX-License-Identifier: MIT

package pipeline

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/simcluster/clustering"
	"github.com/katalvlaran/simcluster/comparison"
)

// ErrNilAlgorithm is returned by NewRunner without an algorithm.
var ErrNilAlgorithm = errors.New("pipeline: algorithm is nil")

// Job is one clustering run over a set of comparisons.
type Job struct {
	Name        string
	Comparisons []*comparison.Comparison
	Metric      comparison.Metric // nil means comparison.AverageSimilarity
}

// Outcome is the clustered result of one Job.
type Outcome struct {
	Name   string
	RunID  uuid.UUID
	Result *clustering.Result[*comparison.Submission]
}

// Runner executes jobs with one shared, stateless Algorithm.
type Runner struct {
	algorithm   clustering.Algorithm
	mode        comparison.Mode
	concurrency int
	logger      *zap.Logger
	metrics     *Metrics
	adapterOpts []clustering.Option
}

// NewRunner returns a Runner for alg. Algorithms passed to a parallel Runner
// must be safe for concurrent Cluster calls; the bundled ones are.
func NewRunner(alg clustering.Algorithm, opts ...Option) (*Runner, error) {
	if alg == nil {
		return nil, ErrNilAlgorithm
	}
	r := &Runner{
		algorithm:   alg,
		mode:        comparison.ModeNormal,
		concurrency: runtime.GOMAXPROCS(0),
		logger:      zap.NewNop(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(r)
		}
	}

	return r, nil
}

// Mode returns the execution mode.
func (r *Runner) Mode() comparison.Mode { return r.mode }

// Run clusters every job and returns the outcomes in job order.
// On the first error (a failing job or ctx cancellation) it returns that
// error and no outcomes.
func (r *Runner) Run(ctx context.Context, jobs []Job) ([]Outcome, error) {
	r.logger.Info("pipeline start",
		zap.Int("jobs", len(jobs)),
		zap.Stringer("mode", r.mode),
		zap.Int("concurrency", r.concurrency))

	outcomes := make([]Outcome, len(jobs))
	var err error
	if r.mode == comparison.ModeParallel {
		err = r.runParallel(ctx, jobs, outcomes)
	} else {
		err = r.runSequential(ctx, jobs, outcomes)
	}
	if err != nil {
		r.logger.Error("pipeline failed", zap.Error(err))
		return nil, err
	}
	r.logger.Info("pipeline done", zap.Int("jobs", len(jobs)))

	return outcomes, nil
}

func (r *Runner) runSequential(ctx context.Context, jobs []Job, out []Outcome) error {
	for i := range jobs {
		if err := ctx.Err(); err != nil {
			return err
		}
		o, err := r.runOne(jobs[i])
		if err != nil {
			return err
		}
		out[i] = o
	}

	return nil
}

func (r *Runner) runParallel(ctx context.Context, jobs []Job, out []Outcome) error {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.concurrency)
	for i := range jobs {
		i := i
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			o, err := r.runOne(jobs[i])
			if err != nil {
				return err
			}
			out[i] = o // each goroutine owns its slot

			return nil
		})
	}

	return g.Wait()
}

// runOne builds an Adapter for job, clusters it and records metrics.
func (r *Runner) runOne(job Job) (Outcome, error) {
	id := uuid.New()
	log := r.logger.With(zap.String("job", job.Name), zap.Stringer("run_id", id))
	metric := job.Metric
	if metric == nil {
		metric = comparison.AverageSimilarity
	}

	start := time.Now()
	res, err := r.cluster(job, metric, log)
	elapsed := time.Since(start)

	clusters := 0
	if res != nil {
		clusters = len(res.Clusters())
	}
	r.metrics.observe(elapsed, clusters, err)
	if err != nil {
		log.Warn("run failed", zap.Error(err))
		return Outcome{}, fmt.Errorf("job %q: %w", job.Name, err)
	}
	log.Info("run done",
		zap.Int("comparisons", len(job.Comparisons)),
		zap.Int("clusters", clusters),
		zap.Float64("community_strength", res.CommunityStrength()),
		zap.Duration("elapsed", elapsed))

	return Outcome{Name: job.Name, RunID: id, Result: res}, nil
}

func (r *Runner) cluster(job Job, metric comparison.Metric, log *zap.Logger) (*clustering.Result[*comparison.Submission], error) {
	opts := append(append([]clustering.Option(nil), r.adapterOpts...), clustering.WithLogger(log))
	ad, err := clustering.NewAdapter(job.Comparisons, comparison.Endpoints, (func(*comparison.Comparison) float64)(metric), opts...)
	if err != nil {
		return nil, err
	}

	return ad.DoClustering(r.algorithm)
}
