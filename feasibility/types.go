// SPDX-License-Identifier: MIT

package feasibility

import (
	"errors"
	"fmt"
	"math"

	"go.uber.org/zap"

	"github.com/katalvlaran/causality/pdag"
)

// DefaultThreshold matches the skeleton search default.
const DefaultThreshold = 0.1

var (
	// ErrNilGraph indicates a nil *pdag.Graph.
	ErrNilGraph = errors.New("feasibility: graph is nil")

	// ErrNilEngine indicates a nil *stats.Engine.
	ErrNilEngine = errors.New("feasibility: engine is nil")
)

const panicThresholdInvalid = "feasibility: WithThreshold: threshold must be finite and in [0, 1]"

// Statement is one basis-set claim: X ⊥ Y | Given.
type Statement struct {
	pdag.Pair
	Given []int // ascending
}

// String renders the claim, e.g. "0 ⊥ 2 | [1]".
func (s Statement) String() string {
	return fmt.Sprintf("%d ⊥ %d | %v", s.X, s.Y, s.Given)
}

// Result reports the outcome of Check.
type Result struct {
	Feasible    bool
	Violation   *Statement // first rejected claim; nil when Feasible
	Correlation float64    // r of the violated claim
	Checked     int        // claims evaluated, including the violated one
}

// Option configures Check.
type Option func(*Options)

// Options holds the effective configuration.
type Options struct {
	threshold float64
	logger    *zap.Logger
}

// DefaultOptions returns threshold 0.1 and a no-op logger.
func DefaultOptions() Options {
	return Options{threshold: DefaultThreshold, logger: zap.NewNop()}
}

// WithThreshold sets the independence threshold. Panics unless 0 <= t <= 1.
func WithThreshold(t float64) Option {
	if math.IsNaN(t) || t < 0 || t > 1 {
		panic(panicThresholdInvalid)
	}

	return func(o *Options) { o.threshold = t }
}

// WithLogger routes violation events and the summary to l.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.logger = l
		}
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
