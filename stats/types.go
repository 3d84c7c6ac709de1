// SPDX-License-Identifier: MIT

package stats

import (
	"errors"
	"math"
)

// DefaultBinWidth is the stratification bin width (bin = trunc(10·v)).
const DefaultBinWidth = 0.1

// DefaultMaxConditioning disables the conditioning-set size cap.
const DefaultMaxConditioning = -1

var (
	// ErrConditioningTooLarge indicates a conditioning set above the configured cap.
	ErrConditioningTooLarge = errors.New("stats: conditioning set too large")

	// ErrNilDataset indicates a nil *dataset.Dataset passed to the engine.
	ErrNilDataset = errors.New("stats: dataset is nil")
)

const (
	panicBinWidthInvalid        = "stats: WithBinWidth: width must be finite, > 0 and have a finite inverse"
	panicMaxConditioningInvalid = "stats: WithMaxConditioning: limit must be >= -1"
)

// Option configures an Engine.
type Option func(*Options)

// Options holds the effective engine configuration.
type Options struct {
	binWidth    float64 // DefaultBinWidth
	renormalize bool    // false: weights against the parent stratum size
	maxCond     int     // DefaultMaxConditioning (-1 = unbounded)
}

// DefaultOptions returns the literal defaults: bin width 0.1, no
// renormalization, unbounded conditioning sets.
func DefaultOptions() Options {
	return Options{
		binWidth:    DefaultBinWidth,
		renormalize: false,
		maxCond:     DefaultMaxConditioning,
	}
}

// WithBinWidth sets the stratification bin width. Panics on non-finite or
// non-positive widths, and on widths so small that 1/w overflows.
func WithBinWidth(w float64) Option {
	if math.IsNaN(w) || math.IsInf(w, 0) || w <= 0 || math.IsInf(1/w, 0) {
		panic(panicBinWidthInvalid)
	}

	return func(o *Options) { o.binWidth = w }
}

// WithRenormalizedStrata divides the weighted stratum sum by the total
// weight of the retained strata.
func WithRenormalizedStrata() Option {
	return func(o *Options) { o.renormalize = true }
}

// WithMaxConditioning caps the conditioning-set size accepted by
// Engine.Correlation; -1 removes the cap.
func WithMaxConditioning(k int) Option {
	if k < -1 {
		panic(panicMaxConditioningInvalid)
	}

	return func(o *Options) { o.maxCond = k }
}

func gatherOptions(opts ...Option) Options {
	o := DefaultOptions()
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}

// ErrLengthMismatch indicates Pearson inputs of different lengths.
var ErrLengthMismatch = errors.New("stats: length mismatch")
