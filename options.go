// SPDX-License-Identifier: MIT

package causality

import (
	"math"

	"go.uber.org/zap"

	"github.com/katalvlaran/causality/config"
	"github.com/katalvlaran/causality/feasibility"
	"github.com/katalvlaran/causality/orient"
	"github.com/katalvlaran/causality/skeleton"
	"github.com/katalvlaran/causality/stats"
)

const (
	panicThresholdInvalid = "causality: WithThreshold: threshold must be finite and in [0, 1]"
	panicBinWidthInvalid  = "causality: WithBinWidth: width must be finite, > 0 and have a finite inverse"
	panicMaxCondInvalid   = "causality: WithMaxConditioningSize: limit must be >= -1"
	panicConfigInvalid    = "causality: WithConfig: "
)

// Option configures the entry points.
type Option func(*Options)

// Options holds the effective configuration shared by learning and
// feasibility checks.
type Options struct {
	threshold   float64
	binWidth    float64
	maxCond     int
	renormalize bool
	logger      *zap.Logger
}

// DefaultOptions mirrors config.Default with a no-op logger.
func DefaultOptions() Options {
	c := config.Default()

	return Options{
		threshold:   c.IndependenceThreshold,
		binWidth:    c.BinWidth,
		maxCond:     c.MaxConditioningSize,
		renormalize: c.RenormalizeStrata,
		logger:      zap.NewNop(),
	}
}

// WithThreshold sets the independence threshold. Panics unless 0 <= t <= 1.
func WithThreshold(t float64) Option {
	if math.IsNaN(t) || t < 0 || t > 1 {
		panic(panicThresholdInvalid)
	}

	return func(o *Options) { o.threshold = t }
}

// WithBinWidth sets the stratification bin width. Panics on w <= 0, non-finite
// w, or w so small that 1/w overflows.
func WithBinWidth(w float64) Option {
	if math.IsNaN(w) || math.IsInf(w, 0) || w <= 0 || math.IsInf(1/w, 0) {
		panic(panicBinWidthInvalid)
	}

	return func(o *Options) { o.binWidth = w }
}

// WithMaxConditioningSize caps the skeleton search level; -1 removes the cap.
func WithMaxConditioningSize(k int) Option {
	if k < -1 {
		panic(panicMaxCondInvalid)
	}

	return func(o *Options) { o.maxCond = k }
}

// WithRenormalizedStrata divides stratum sums by the retained weight.
func WithRenormalizedStrata() Option {
	return func(o *Options) { o.renormalize = true }
}

// WithLogger routes every stage's events to l, tagged with a "component" field.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithConfig applies every field of c. Panics if c fails validation.
func WithConfig(c config.Config) Option {
	if err := c.Validate(); err != nil {
		panic(panicConfigInvalid + err.Error())
	}

	return func(o *Options) {
		o.threshold = c.IndependenceThreshold
		o.binWidth = c.BinWidth
		o.maxCond = c.MaxConditioningSize
		o.renormalize = c.RenormalizeStrata
	}
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

func (o Options) statsOptions() []stats.Option {
	out := []stats.Option{stats.WithBinWidth(o.binWidth)}
	if o.renormalize {
		out = append(out, stats.WithRenormalizedStrata())
	}

	return out
}

func (o Options) skeletonOptions() []skeleton.Option {
	return []skeleton.Option{
		skeleton.WithThreshold(o.threshold),
		skeleton.WithMaxConditioningSize(o.maxCond),
		skeleton.WithLogger(o.logger.With(zap.String("component", "skeleton"))),
	}
}

func (o Options) orientOptions() []orient.Option {
	return []orient.Option{orient.WithLogger(o.logger.With(zap.String("component", "orient")))}
}

func (o Options) feasibilityOptions() []feasibility.Option {
	return []feasibility.Option{
		feasibility.WithThreshold(o.threshold),
		feasibility.WithLogger(o.logger.With(zap.String("component", "feasibility"))),
	}
}
