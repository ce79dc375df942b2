// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/simcluster/clustering"
	"github.com/katalvlaran/simcluster/internal/config"
	"github.com/katalvlaran/simcluster/internal/ingest"
	"github.com/katalvlaran/simcluster/internal/report"
	"github.com/katalvlaran/simcluster/pipeline"
)

// clusterFlags are the command-line overrides of the config file.
type clusterFlags struct {
	configPath  string
	algorithm   string
	metric      string
	mode        string
	duplicates  string
	concurrency int
	jsonOutput  bool
	metricsPath string
}

func newClusterCmd() *cobra.Command {
	var f clusterFlags
	cmd := &cobra.Command{
		Use:   "cluster <runs-file>",
		Short: "Cluster every run of a comparison file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCluster(cmd, f, args[0])
		},
	}
	fl := cmd.Flags()
	fl.StringVarP(&f.configPath, "config", "c", "", "YAML configuration file")
	fl.StringVarP(&f.algorithm, "algorithm", "a", "", "louvain | agglomerative | spectral | threshold")
	fl.StringVarP(&f.metric, "metric", "m", "", "avg | max")
	fl.StringVar(&f.mode, "mode", "", "normal | parallel")
	fl.StringVar(&f.duplicates, "duplicates", "", "overwrite | sum | max | reject")
	fl.IntVar(&f.concurrency, "concurrency", 0, "parallel jobs in flight (0 = GOMAXPROCS)")
	fl.BoolVar(&f.jsonOutput, "json", false, "write the report as JSON")
	fl.StringVar(&f.metricsPath, "metrics-file", "", "write Prometheus metrics in text format to this file")

	return cmd
}

// applyFlags overrides cfg with every flag the user actually set.
func applyFlags(cmd *cobra.Command, f clusterFlags, cfg *config.Config) {
	fl := cmd.Flags()
	if fl.Changed("algorithm") {
		cfg.Algorithm = f.algorithm
	}
	if fl.Changed("metric") {
		cfg.Metric = f.metric
	}
	if fl.Changed("mode") {
		cfg.Mode = f.mode
	}
	if fl.Changed("duplicates") {
		cfg.Duplicates = f.duplicates
	}
	if fl.Changed("concurrency") {
		cfg.Concurrency = f.concurrency
	}
}

func runCluster(cmd *cobra.Command, f clusterFlags, input string) error {
	cfg, err := config.Load(f.configPath)
	if err != nil {
		return err
	}
	applyFlags(cmd, f, cfg)
	if err = cfg.Validate(); err != nil {
		return err
	}

	logger, err := cfg.NewLogger()
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	alg, err := cfg.NewAlgorithm()
	if err != nil {
		return err
	}
	metric, err := cfg.MetricFunc()
	if err != nil {
		return err
	}
	mode, err := cfg.RunMode()
	if err != nil {
		return err
	}
	dup, err := cfg.DuplicatePolicy()
	if err != nil {
		return err
	}

	jobs, err := ingest.Load(input)
	if err != nil {
		return err
	}
	for i := range jobs {
		jobs[i].Metric = metric
	}

	reg := prometheus.NewRegistry()
	metrics, err := pipeline.NewMetrics(reg)
	if err != nil {
		return err
	}
	runner, err := pipeline.NewRunner(alg,
		pipeline.WithMode(mode),
		pipeline.WithConcurrency(cfg.Concurrency),
		pipeline.WithLogger(logger),
		pipeline.WithMetrics(metrics),
		pipeline.WithAdapterOptions(clustering.WithDuplicatePolicy(dup)),
	)
	if err != nil {
		return err
	}
	logger.Debug("configured",
		zap.String("input", input),
		zap.String("algorithm", cfg.Algorithm),
		zap.String("metric", cfg.Metric),
		zap.Stringer("duplicates", dup))

	outcomes, err := runner.Run(cmd.Context(), jobs)
	if err != nil {
		return err
	}

	if f.metricsPath != "" {
		if err = prometheus.WriteToTextfile(f.metricsPath, reg); err != nil {
			return fmt.Errorf("write metrics: %w", err)
		}
	}

	rep := report.FromOutcomes(outcomes)
	if f.jsonOutput {
		return report.WriteJSON(cmd.OutOrStdout(), rep)
	}

	return report.WriteText(cmd.OutOrStdout(), rep)
}
