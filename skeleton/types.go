// SPDX-License-Identifier: MIT

package skeleton

import (
	"errors"
	"math"
	"sort"

	"go.uber.org/zap"

	"github.com/katalvlaran/causality/pdag"
)

// DefaultThreshold is the correlation magnitude at or below which a pair is
// treated as conditionally independent.
const DefaultThreshold = 0.1

// DefaultMaxConditioningSize leaves N bounded only by V.
const DefaultMaxConditioningSize = -1

// ErrNilEngine indicates a nil *stats.Engine.
var ErrNilEngine = errors.New("skeleton: engine is nil")

const (
	panicThresholdInvalid = "skeleton: WithThreshold: threshold must be finite and in [0, 1]"
	panicMaxCondInvalid   = "skeleton: WithMaxConditioningSize: limit must be >= -1"
)

// SepSets maps each separated pair to the conditioning set that justified
// removing its edge.
type SepSets map[pdag.Pair][]int

// NewSepSets returns an empty table.
func NewSepSets() SepSets { return make(SepSets) }

// Lookup returns the separating set of x and y in either order.
func (s SepSets) Lookup(x, y int) ([]int, bool) {
	z, ok := s[pdag.NewPair(x, y)]

	return z, ok
}

// Record stores a copy of z for (x, y) unless the pair already has a set.
// It reports whether z was stored.
func (s SepSets) Record(x, y int, z []int) bool {
	p := pdag.NewPair(x, y)
	if _, ok := s[p]; ok {
		return false
	}
	s[p] = append(make([]int, 0, len(z)), z...)

	return true
}

// Contains reports whether v is in the separating set of (x, y).
func (s SepSets) Contains(x, y, v int) bool {
	z, ok := s.Lookup(x, y)
	if !ok {
		return false
	}
	for _, w := range z {
		if w == v {
			return true
		}
	}

	return false
}

// Len returns the number of separated pairs.
func (s SepSets) Len() int { return len(s) }

// Pairs lists the separated pairs in ascending order.
func (s SepSets) Pairs() []pdag.Pair {
	out := make([]pdag.Pair, 0, len(s))
	for p := range s {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].X != out[j].X {
			return out[i].X < out[j].X
		}
		return out[i].Y < out[j].Y
	})

	return out
}

// Stats summarizes one skeleton search.
type Stats struct {
	Tests    int // conditional correlations evaluated
	Removed  int // edges removed
	MaxLevel int // largest N that removed an edge (-1 if none)
}

// Option configures Build.
type Option func(*Options)

// Options holds the effective search configuration.
type Options struct {
	threshold float64
	maxCond   int
	logger    *zap.Logger
}

// DefaultOptions returns threshold 0.1, no N cap and a no-op logger.
func DefaultOptions() Options {
	return Options{
		threshold: DefaultThreshold,
		maxCond:   DefaultMaxConditioningSize,
		logger:    zap.NewNop(),
	}
}

// WithThreshold sets the independence threshold. Panics unless 0 <= t <= 1.
func WithThreshold(t float64) Option {
	if math.IsNaN(t) || t < 0 || t > 1 {
		panic(panicThresholdInvalid)
	}

	return func(o *Options) { o.threshold = t }
}

// WithMaxConditioningSize caps the conditioning-set size N; -1 removes the cap.
func WithMaxConditioningSize(k int) Option {
	if k < -1 {
		panic(panicMaxCondInvalid)
	}

	return func(o *Options) { o.maxCond = k }
}

// WithLogger routes debug events (edge removals) and the search summary to l.
// A nil logger keeps the no-op default.
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
