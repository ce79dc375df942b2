// SPDX-License-Identifier: MIT

package agglomerative

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// ErrUnknownLinkage is returned by ParseLinkage for unknown names.
var ErrUnknownLinkage = errors.New("agglomerative: unknown linkage")

// Linkage selects how the similarity of two clusters is derived from the
// similarities of their members.
type Linkage int

const (
	// Average uses the mean cross-pair similarity (UPGMA).
	Average Linkage = iota
	// Minimum uses the least similar cross pair.
	Minimum
	// Maximum uses the most similar cross pair.
	Maximum
)

var linkageNames = [...]string{
	Average: "average",
	Minimum: "minimum",
	Maximum: "maximum",
}

// String returns the configuration name of the linkage.
func (l Linkage) String() string {
	if l < 0 || int(l) >= len(linkageNames) {
		return fmt.Sprintf("Linkage(%d)", int(l))
	}

	return linkageNames[l]
}

// ParseLinkage maps "average", "minimum" or "maximum" (case-insensitive;
// "avg", "min" and "max" also accepted) to a Linkage.
func ParseLinkage(name string) (Linkage, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "average", "avg":
		return Average, nil
	case "minimum", "min":
		return Minimum, nil
	case "maximum", "max":
		return Maximum, nil
	}

	return 0, fmt.Errorf("ParseLinkage(%q): %w", name, ErrUnknownLinkage)
}

// DefaultThreshold stops merging once the best linkage similarity is below it.
const DefaultThreshold = 0.2

// Options configures an agglomerative run.
type Options struct {
	Linkage   Linkage
	Threshold float64
}

// Option mutates Options; invalid values panic.
type Option func(*Options)

// DefaultOptions returns Average linkage with DefaultThreshold.
func DefaultOptions() Options {
	return Options{Linkage: Average, Threshold: DefaultThreshold}
}

// WithLinkage selects the linkage. Panics on an undeclared value.
func WithLinkage(l Linkage) Option {
	if l < Average || l > Maximum {
		panic(fmt.Sprintf("agglomerative: WithLinkage(%d): unknown linkage", int(l)))
	}

	return func(o *Options) { o.Linkage = l }
}

// WithThreshold sets the merge threshold. Panics on NaN or ±Inf.
func WithThreshold(t float64) Option {
	if math.IsNaN(t) || math.IsInf(t, 0) {
		panic(fmt.Sprintf("agglomerative: WithThreshold(%v): need a finite value", t))
	}

	return func(o *Options) { o.Threshold = t }
}
