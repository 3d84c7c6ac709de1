// SPDX-License-Identifier: MIT

package orient

import (
	"errors"

	"go.uber.org/zap"
)

var (
	// ErrNilGraph indicates a nil *pdag.Graph.
	ErrNilGraph = errors.New("orient: graph is nil")

	// ErrNilMarks indicates a nil *pdag.Marks.
	ErrNilMarks = errors.New("orient: marks are nil")

	// ErrDimensionMismatch indicates marks sized differently from the graph.
	ErrDimensionMismatch = errors.New("orient: dimension mismatch")
)

// Option configures the orientation steps.
type Option func(*Options)

// Options holds the effective configuration.
type Options struct {
	logger *zap.Logger
}

// DefaultOptions returns a no-op logger.
func DefaultOptions() Options {
	return Options{logger: zap.NewNop()}
}

// WithLogger routes orientation events to l; nil keeps the default.
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
