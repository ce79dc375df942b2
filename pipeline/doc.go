// SPDX-License-Identifier: MIT

// Package pipeline runs batches of clustering jobs.
//
// Every Job owns its comparisons and gets its own clustering.Adapter, so jobs
// share no mutable state and can run concurrently. The Runner executes a
// batch either sequentially (comparison.ModeNormal) or on a bounded
// errgroup (comparison.ModeParallel). In both modes:
//
//   - outcomes are returned in job order;
//   - the first failing job aborts the batch and no outcomes are returned;
//   - a cancelled context stops jobs that have not started yet.
//
// Each run gets a fresh UUID that tags its log lines and its Outcome.
// Optional Prometheus metrics count runs by status and observe run latency
// and cluster counts.
package pipeline
