// SPDX-License-Identifier: MIT

package feasibility

import (
	"fmt"
	"math"

	"go.uber.org/zap"

	"github.com/katalvlaran/causality/dataset"
	"github.com/katalvlaran/causality/pdag"
	"github.com/katalvlaran/causality/stats"
)

const opCheck = "feasibility.Check"

// BasisSet derives the independence claims implied by g, ordered by pair.
// g is not validated; Check does that.
func BasisSet(g *pdag.Graph) []Statement {
	n := g.N()
	out := make([]Statement, 0)
	var x, y, u int
	for x = 0; x < n; x++ {
		for y = x + 1; y < n; y++ {
			if g.Adjacent(x, y) {
				continue
			}
			given := make([]int, 0)
			for u = 0; u < n; u++ {
				if g.Cell(u, x) != pdag.NoEdge || g.Cell(u, y) != pdag.NoEdge {
					given = append(given, u)
				}
			}
			out = append(out, Statement{Pair: pdag.Pair{X: x, Y: y}, Given: given})
		}
	}

	return out
}

// Check evaluates the basis set of g against eng's dataset.
//
// Errors:
//   - ErrNilEngine, ErrNilGraph.
//   - dataset.ErrOutOfRange when g and the dataset disagree on V.
//   - pdag.ErrInconsistentEdge when g fails validation.
//   - any correlation error (e.g. stats.ErrConditioningTooLarge), wrapped.
func Check(eng *stats.Engine, g *pdag.Graph, opts ...Option) (Result, error) {
	if eng == nil {
		return Result{}, ErrNilEngine
	}
	if g == nil {
		return Result{}, ErrNilGraph
	}
	if v := eng.Dataset().Vars(); g.N() != v {
		return Result{}, fmt.Errorf("%s: graph has %d vertices, dataset %d variables: %w",
			opCheck, g.N(), v, dataset.ErrOutOfRange)
	}
	if err := g.Validate(); err != nil {
		return Result{}, fmt.Errorf("%s: %w", opCheck, err)
	}
	o := gatherOptions(opts...)

	res := Result{Feasible: true}
	for _, s := range BasisSet(g) {
		r, err := eng.Correlation(s.X, s.Y, s.Given)
		if err != nil {
			return Result{}, fmt.Errorf("%s: %v: %w", opCheck, s, err)
		}
		res.Checked++
		if math.Abs(r) > o.threshold {
			violated := s
			res.Feasible = false
			res.Violation = &violated
			res.Correlation = r
			o.logger.Debug("independence violated",
				zap.Stringer("claim", s),
				zap.Float64("r", r))

			break
		}
	}

	o.logger.Info("feasibility checked",
		zap.Bool("feasible", res.Feasible),
		zap.Int("checked", res.Checked))

	return res, nil
}

// IsFeasible is the boolean view of Check.
func IsFeasible(eng *stats.Engine, g *pdag.Graph, opts ...Option) (bool, error) {
	res, err := Check(eng, g, opts...)
	if err != nil {
		return false, err
	}

	return res.Feasible, nil
}
