// SPDX-License-Identifier: MIT

// Package config loads the YAML run configuration of the simcluster CLI and
// turns it into algorithms, metrics and loggers.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/simcluster/agglomerative"
	"github.com/katalvlaran/simcluster/clustering"
	"github.com/katalvlaran/simcluster/comparison"
	"github.com/katalvlaran/simcluster/louvain"
	"github.com/katalvlaran/simcluster/spectral"
	"github.com/katalvlaran/simcluster/threshold"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Algorithm names accepted by the algorithm key.
const (
	AlgorithmLouvain       = "louvain"
	AlgorithmAgglomerative = "agglomerative"
	AlgorithmSpectral      = "spectral"
	AlgorithmThreshold     = "threshold"
)

// Config is the root of the YAML file.
type Config struct {
	Algorithm   string `yaml:"algorithm" validate:"oneof=louvain agglomerative spectral threshold"`
	Metric      string `yaml:"metric" validate:"oneof=avg max average maximum"`
	Mode        string `yaml:"mode" validate:"oneof=normal parallel"`
	Duplicates  string `yaml:"duplicates" validate:"oneof=overwrite sum max reject"`
	Concurrency int    `yaml:"concurrency" validate:"gte=0"`

	Louvain       LouvainConfig       `yaml:"louvain"`
	Agglomerative AgglomerativeConfig `yaml:"agglomerative"`
	Spectral      SpectralConfig      `yaml:"spectral"`
	Threshold     ThresholdConfig     `yaml:"threshold"`
	Log           LogConfig           `yaml:"log"`
}

// LouvainConfig mirrors louvain.Options.
type LouvainConfig struct {
	Resolution float64 `yaml:"resolution" validate:"finite,gt=0"`
	MaxPasses  int     `yaml:"max_passes" validate:"gt=0"`
}

// AgglomerativeConfig mirrors agglomerative.Options.
type AgglomerativeConfig struct {
	Linkage   string  `yaml:"linkage" validate:"oneof=average minimum maximum avg min max"`
	Threshold float64 `yaml:"threshold" validate:"finite"`
}

// SpectralConfig mirrors the cluster-count range of spectral.Options.
type SpectralConfig struct {
	MinClusters int `yaml:"min_clusters" validate:"gte=1"`
	MaxClusters int `yaml:"max_clusters" validate:"gte=1,gtefield=MinClusters"`
}

// ThresholdConfig mirrors threshold.Options.
type ThresholdConfig struct {
	MinSimilarity float64 `yaml:"min_similarity" validate:"finite,gte=0"`
}

// LogConfig selects the zap preset and level.
type LogConfig struct {
	Level       string `yaml:"level" validate:"oneof=debug info warn error"`
	Development bool   `yaml:"development"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Algorithm:   AlgorithmLouvain,
		Metric:      "avg",
		Mode:        "normal",
		Duplicates:  clustering.DuplicateOverwrite.String(),
		Concurrency: 0,
		Louvain: LouvainConfig{
			Resolution: louvain.DefaultResolution,
			MaxPasses:  louvain.DefaultMaxPasses,
		},
		Agglomerative: AgglomerativeConfig{
			Linkage:   agglomerative.Average.String(),
			Threshold: agglomerative.DefaultThreshold,
		},
		Spectral: SpectralConfig{
			MinClusters: spectral.DefaultMinClusters,
			MaxClusters: spectral.DefaultMaxClusters,
		},
		Threshold: ThresholdConfig{MinSimilarity: threshold.DefaultThreshold},
		Log:       LogConfig{Level: "info"},
	}
}

// Load reads path over the defaults and validates the result. An empty path
// yields Default().
func Load(path string) (*Config, error) {
	if strings.TrimSpace(path) == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("Load(%s): %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("Load(%s): %w", path, err)
	}

	return cfg, nil
}

// Parse decodes YAML over the defaults. Unknown keys are rejected.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

var validate = newValidator()

// newValidator registers "finite", which rejects NaN and ±Inf. YAML accepts
// .nan and .inf, and gt/gte alone let +Inf through.
func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("finite", func(fl validator.FieldLevel) bool {
		f := fl.Field().Float()
		return !math.IsNaN(f) && !math.IsInf(f, 0)
	})

	return v
}

// Validate checks every field against its constraints and reports all
// violations at once, wrapped in ErrInvalidConfig.
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		msgs = append(msgs, describe(fe))
	}

	return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(msgs, "; "))
}

// describe renders one field error as "Namespace: reason".
func describe(fe validator.FieldError) string {
	field := strings.TrimPrefix(fe.Namespace(), "Config.")
	switch fe.Tag() {
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s], got %q", field, fe.Param(), fe.Value())
	case "gt", "gte":
		return fmt.Sprintf("%s must be %s %s, got %v", field, fe.Tag(), fe.Param(), fe.Value())
	case "finite":
		return fmt.Sprintf("%s must be a finite number, got %v", field, fe.Value())
	case "gtefield":
		return fmt.Sprintf("%s must be >= %s", field, fe.Param())
	default:
		return fmt.Sprintf("%s failed %s", field, fe.Tag())
	}
}

// NewAlgorithm builds the configured clustering algorithm.
func (c *Config) NewAlgorithm() (clustering.Algorithm, error) {
	switch c.Algorithm {
	case AlgorithmLouvain:
		return louvain.New(
			louvain.WithResolution(c.Louvain.Resolution),
			louvain.WithMaxPasses(c.Louvain.MaxPasses),
		), nil
	case AlgorithmAgglomerative:
		linkage, err := agglomerative.ParseLinkage(c.Agglomerative.Linkage)
		if err != nil {
			return nil, err
		}
		return agglomerative.New(
			agglomerative.WithLinkage(linkage),
			agglomerative.WithThreshold(c.Agglomerative.Threshold),
		), nil
	case AlgorithmSpectral:
		return spectral.New(
			spectral.WithMinClusters(c.Spectral.MinClusters),
			spectral.WithMaxClusters(c.Spectral.MaxClusters),
		), nil
	case AlgorithmThreshold:
		return threshold.New(threshold.WithThreshold(c.Threshold.MinSimilarity)), nil
	}

	return nil, fmt.Errorf("%w: algorithm %q", ErrInvalidConfig, c.Algorithm)
}

// MetricFunc resolves the metric key.
func (c *Config) MetricFunc() (comparison.Metric, error) {
	return comparison.ParseMetric(c.Metric)
}

// RunMode resolves the mode key.
func (c *Config) RunMode() (comparison.Mode, error) {
	return comparison.ParseMode(c.Mode)
}

// DuplicatePolicy resolves the duplicates key.
func (c *Config) DuplicatePolicy() (clustering.DuplicatePolicy, error) {
	return clustering.ParseDuplicatePolicy(c.Duplicates)
}

// NewLogger builds a zap logger from the log section: the production preset
// (JSON) by default, the development preset (console) when requested.
func (c *Config) NewLogger() (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(c.Log.Level)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	var zc zap.Config
	if c.Log.Development {
		zc = zap.NewDevelopmentConfig()
		zc.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	} else {
		zc = zap.NewProductionConfig()
	}
	zc.Level = zap.NewAtomicLevelAt(level)
	zc.OutputPaths = []string{"stderr"}
	zc.ErrorOutputPaths = []string{"stderr"}

	return zc.Build()
}
