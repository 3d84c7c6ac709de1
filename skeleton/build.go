// SPDX-License-Identifier: MIT

package skeleton

import (
	"fmt"
	"math"

	"go.uber.org/zap"

	"github.com/katalvlaran/causality/pdag"
	"github.com/katalvlaran/causality/stats"
)

const opBuild = "skeleton.Build"

// Build runs the PC skeleton search over eng's dataset and returns the
// undirected skeleton with the separating set of every removed edge.
//
// Errors:
//   - ErrNilEngine when eng is nil.
//   - any error from the correlation engine (wrapped); no partial graph is returned.
func Build(eng *stats.Engine, opts ...Option) (*pdag.Graph, SepSets, error) {
	g, seps, _, err := BuildWithStats(eng, opts...)

	return g, seps, err
}

// BuildWithStats is Build plus search counters.
//
// Complexity: O(V² · Σ_N C(pool, N) · cost(r)) where cost(r) is one
// stratified correlation; exponential in the neighborhood size.
func BuildWithStats(eng *stats.Engine, opts ...Option) (*pdag.Graph, SepSets, Stats, error) {
	st := Stats{MaxLevel: -1}
	if eng == nil {
		return nil, nil, st, ErrNilEngine
	}
	o := gatherOptions(opts...)

	// Stage 1 (Prepare): complete graph, level bound.
	v := eng.Dataset().Vars()
	g, err := pdag.NewComplete(v)
	if err != nil {
		return nil, nil, st, fmt.Errorf("%s: %w", opBuild, err)
	}
	seps := NewSepSets()

	maxN := v
	if o.maxCond >= 0 && o.maxCond < maxN {
		maxN = o.maxCond
	}
	if c := eng.MaxConditioning(); c >= 0 && c < maxN {
		maxN = c
	}

	// Stage 2 (Execute): levels ascending, pairs ascending, subsets lexicographic.
	var n, x, y int
	var testable bool
	for n = 0; n <= maxN; n++ {
		testable = false
		for x = 0; x < v; x++ {
			for y = x + 1; y < v; y++ {
				if _, done := seps.Lookup(x, y); done {
					continue
				}
				pool := candidatePool(g, x, y)
				if len(pool) < n {
					continue
				}
				testable = true
				if err = testPair(eng, g, seps, &st, o, n, x, y, pool); err != nil {
					return nil, nil, st, fmt.Errorf("%s: level %d, pair (%d,%d): %w", opBuild, n, x, y, err)
				}
			}
		}
		// Pools only shrink, so no pair can be tested at any larger N either.
		if !testable {
			break
		}
	}

	o.logger.Info("skeleton built",
		zap.Int("vars", v),
		zap.Int("edges", len(g.Edges())),
		zap.Int("removed", st.Removed),
		zap.Int("tests", st.Tests),
		zap.Int("max_level", st.MaxLevel))

	return g, seps, st, nil
}

// testPair tries every size-n subset of pool until one separates x and y.
func testPair(eng *stats.Engine, g *pdag.Graph, seps SepSets, st *Stats, o Options, n, x, y int, pool []int) error {
	var err error
	Combinations(pool, n, func(z []int) bool {
		var r float64
		r, err = eng.Correlation(x, y, z)
		if err != nil {
			return false
		}
		st.Tests++
		if math.Abs(r) > o.threshold {
			return true
		}

		if err = g.Disconnect(x, y); err != nil {
			return false
		}
		seps.Record(x, y, z)
		st.Removed++
		st.MaxLevel = n
		o.logger.Debug("edge removed",
			zap.Int("x", x),
			zap.Int("y", y),
			zap.Ints("sepset", z),
			zap.Float64("r", r),
			zap.Int("level", n))

		return false
	})

	return err
}

// candidatePool returns (Neighbors(x) ∪ Neighbors(y)) \ {x, y}, ascending.
func candidatePool(g *pdag.Graph, x, y int) []int {
	in := make([]bool, g.N())
	for _, u := range g.Neighbors(x) {
		in[u] = true
	}
	for _, u := range g.Neighbors(y) {
		in[u] = true
	}
	in[x], in[y] = false, false

	pool := make([]int, 0, len(in))
	for u, ok := range in {
		if ok {
			pool = append(pool, u)
		}
	}

	return pool
}
