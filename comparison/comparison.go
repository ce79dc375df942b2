// SPDX-License-Identifier: MIT

package comparison

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for parsing configuration values.
var (
	// ErrUnknownMetric is returned by ParseMetric for unknown names.
	ErrUnknownMetric = errors.New("comparison: unknown metric")

	// ErrUnknownMode is returned by ParseMode for unknown names.
	ErrUnknownMode = errors.New("comparison: unknown mode")
)

// Submission is one compared artefact.
type Submission struct {
	Name string
}

// String returns the submission name.
func (s *Submission) String() string { return s.Name }

// Comparison is the result of comparing two submissions.
type Comparison struct {
	First, Second *Submission
	Similarity    float64 // average similarity in [0, 1]
	MaxSimilarity float64 // maximum similarity in [0, 1]
}

// Endpoints returns both compared submissions; it is the endpoint extractor
// handed to clustering.NewAdapter.
func Endpoints(c *Comparison) (*Submission, *Submission) { return c.First, c.Second }

// Metric extracts the clustering score from a comparison.
type Metric func(*Comparison) float64

// AverageSimilarity scores a comparison by its average similarity.
func AverageSimilarity(c *Comparison) float64 { return c.Similarity }

// MaximumSimilarity scores a comparison by its maximum similarity.
func MaximumSimilarity(c *Comparison) float64 { return c.MaxSimilarity }

// ParseMetric maps "avg"/"average" and "max"/"maximum" (case-insensitive)
// to a Metric.
func ParseMetric(name string) (Metric, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "avg", "average":
		return AverageSimilarity, nil
	case "max", "maximum":
		return MaximumSimilarity, nil
	}

	return nil, fmt.Errorf("ParseMetric(%q): %w", name, ErrUnknownMetric)
}

// Mode is how a batch of clustering runs is executed.
type Mode int

const (
	// ModeNormal runs jobs one after another.
	ModeNormal Mode = iota
	// ModeParallel runs jobs concurrently.
	ModeParallel
)

// String returns the configuration name of the mode.
func (m Mode) String() string {
	switch m {
	case ModeNormal:
		return "normal"
	case ModeParallel:
		return "parallel"
	}

	return fmt.Sprintf("Mode(%d)", int(m))
}

// ParseMode maps "normal" or "parallel" (case-insensitive) to a Mode.
func ParseMode(name string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "normal":
		return ModeNormal, nil
	case "parallel":
		return ModeParallel, nil
	}

	return 0, fmt.Errorf("ParseMode(%q): %w", name, ErrUnknownMode)
}
