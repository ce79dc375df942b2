// SPDX-License-Identifier: MIT

package clustering

import (
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
)

// DuplicatePolicy decides how a second comparison of an already-seen
// unordered pair is folded into the similarity matrix.
type DuplicatePolicy int

const (
	// DuplicateOverwrite keeps the score of the last comparison (last write wins).
	DuplicateOverwrite DuplicatePolicy = iota

	// DuplicateSum adds the scores of all comparisons of the pair.
	DuplicateSum

	// DuplicateMax keeps the highest score seen for the pair.
	DuplicateMax

	// DuplicateReject fails adapter construction with ErrDuplicateComparison.
	DuplicateReject
)

// ErrUnknownDuplicatePolicy is returned by ParseDuplicatePolicy for unknown names.
var ErrUnknownDuplicatePolicy = errors.New("clustering: unknown duplicate policy")

var duplicatePolicyNames = [...]string{
	DuplicateOverwrite: "overwrite",
	DuplicateSum:       "sum",
	DuplicateMax:       "max",
	DuplicateReject:    "reject",
}

// String returns the configuration name of the policy.
func (p DuplicatePolicy) String() string {
	if p < 0 || int(p) >= len(duplicatePolicyNames) {
		return fmt.Sprintf("DuplicatePolicy(%d)", int(p))
	}

	return duplicatePolicyNames[p]
}

// valid reports whether p is one of the declared policies.
func (p DuplicatePolicy) valid() bool {
	return p >= DuplicateOverwrite && p <= DuplicateReject
}

// ParseDuplicatePolicy maps "overwrite", "sum", "max" or "reject"
// (case-insensitive) to a DuplicatePolicy.
func ParseDuplicatePolicy(name string) (DuplicatePolicy, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	for p, n := range duplicatePolicyNames {
		if n == key {
			return DuplicatePolicy(p), nil
		}
	}

	return DuplicateOverwrite, fmt.Errorf("%q: %w", name, ErrUnknownDuplicatePolicy)
}

// Options configures an Adapter.
//
// Duplicates – how repeated unordered pairs are combined (default DuplicateOverwrite).
// Logger     – structured logger for build and clustering events (default no-op).
type Options struct {
	Duplicates DuplicatePolicy
	Logger     *zap.Logger
}

// Option represents a functional option for configuring an Adapter.
type Option func(*Options)

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{
		Duplicates: DuplicateOverwrite,
		Logger:     zap.NewNop(),
	}
}

// WithDuplicatePolicy selects the duplicate-pair policy.
// Panics on an undeclared policy value (programmer error).
func WithDuplicatePolicy(p DuplicatePolicy) Option {
	if !p.valid() {
		panic(fmt.Sprintf("clustering: WithDuplicatePolicy: %v", p))
	}

	return func(o *Options) { o.Duplicates = p }
}

// WithLogger sets the logger; nil restores the no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l == nil {
			l = zap.NewNop()
		}
		o.Logger = l
	}
}

// gatherOptions applies opts over the defaults, in order.
func gatherOptions(opts ...Option) Options {
	o := DefaultOptions()
	for _, set := range opts {
		if set != nil {
			set(&o)
		}
	}

	return o
}
