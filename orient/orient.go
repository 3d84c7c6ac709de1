// SPDX-License-Identifier: MIT

package orient

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/causality/pdag"
	"github.com/katalvlaran/causality/skeleton"
)

// Orient applies collider detection and then Rule 1 / Rule 2 until neither
// changes g. g is mutated in place; the returned Marks record the arrows
// placed by Rule 1.
//
// Errors:
//   - ErrNilGraph, or pdag.ErrInconsistentEdge when g fails validation.
//     Validation happens before any mutation.
func Orient(g *pdag.Graph, seps skeleton.SepSets, opts ...Option) (*pdag.Marks, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if err := g.Validate(); err != nil {
		return nil, fmt.Errorf("orient.Orient: %w", err)
	}
	o := gatherOptions(opts...)

	marks, err := pdag.NewMarks(g.N())
	if err != nil {
		return nil, fmt.Errorf("orient.Orient: %w", err)
	}

	colliders, err := vStructures(g, seps, o)
	if err != nil {
		return nil, err
	}

	var c1, c2 bool
	passes := 0
	for {
		passes++
		if c1, err = rule1(g, marks, o); err != nil {
			return nil, err
		}
		if c2, err = rule2(g, marks, o); err != nil {
			return nil, err
		}
		if !c1 && !c2 {
			break
		}
	}

	o.logger.Info("graph oriented",
		zap.Int("colliders", colliders),
		zap.Int("passes", passes),
		zap.Stringer("graph", g))

	return marks, nil
}

// VStructures orients every detected collider x → z ← y and returns how many
// (x, y, z) triples fired. Pairs without a recorded separating set are skipped.
func VStructures(g *pdag.Graph, seps skeleton.SepSets, opts ...Option) (int, error) {
	if g == nil {
		return 0, ErrNilGraph
	}

	return vStructures(g, seps, gatherOptions(opts...))
}

func vStructures(g *pdag.Graph, seps skeleton.SepSets, o Options) (int, error) {
	count := 0
	var z, i, j, x, y int
	for z = 0; z < g.N(); z++ {
		nb := g.Neighbors(z)
		for i = 0; i < len(nb); i++ {
			for j = i + 1; j < len(nb); j++ {
				x, y = nb[i], nb[j]
				if g.Adjacent(x, y) {
					continue
				}
				if _, ok := seps.Lookup(x, y); !ok || seps.Contains(x, y, z) {
					continue
				}
				if err := g.Orient(x, z); err != nil {
					return count, fmt.Errorf("orient.VStructures: %w", err)
				}
				if err := g.Orient(y, z); err != nil {
					return count, fmt.Errorf("orient.VStructures: %w", err)
				}
				count++
				o.logger.Debug("collider", zap.Int("x", x), zap.Int("z", z), zap.Int("y", y))
			}
		}
	}

	return count, nil
}

func checkMarks(g *pdag.Graph, marks *pdag.Marks) error {
	if g == nil {
		return ErrNilGraph
	}
	if marks == nil {
		return ErrNilMarks
	}
	if marks.N() != g.N() {
		return fmt.Errorf("marks %d vs graph %d: %w", marks.N(), g.N(), ErrDimensionMismatch)
	}

	return nil
}

// Rule1 applies one pass of the "avoid new colliders" rule and reports
// whether anything changed.
func Rule1(g *pdag.Graph, marks *pdag.Marks, opts ...Option) (bool, error) {
	if err := checkMarks(g, marks); err != nil {
		return false, fmt.Errorf("orient.Rule1: %w", err)
	}

	return rule1(g, marks, gatherOptions(opts...))
}

func rule1(g *pdag.Graph, marks *pdag.Marks, o Options) (bool, error) {
	changed := false
	var c, i, j, a, b int
	for c = 0; c < g.N(); c++ {
		nb := g.Neighbors(c)
		for i = 0; i < len(nb); i++ {
			for j = i + 1; j < len(nb); j++ {
				a, b = nb[i], nb[j]
				if g.Adjacent(a, b) {
					continue
				}
				for _, pq := range [2][2]int{{a, b}, {b, a}} {
					p, q := pq[0], pq[1]
					if !g.IsArrow(p, c) || g.IsArrow(q, c) {
						continue
					}
					if g.IsArrow(c, q) && marks.IsMarked(c, q) {
						continue
					}
					if err := g.Orient(c, q); err != nil {
						return changed, fmt.Errorf("orient.Rule1: %w", err)
					}
					if err := marks.Mark(c, q); err != nil {
						return changed, fmt.Errorf("orient.Rule1: %w", err)
					}
					changed = true
					o.logger.Debug("rule 1", zap.Int("from", p), zap.Int("via", c), zap.Int("to", q))
				}
			}
		}
	}

	return changed, nil
}

// Rule2 applies one pass of the acyclicity rule and reports whether anything
// changed. Each undirected edge is tried in both directions, lower index first.
func Rule2(g *pdag.Graph, marks *pdag.Marks, opts ...Option) (bool, error) {
	if err := checkMarks(g, marks); err != nil {
		return false, fmt.Errorf("orient.Rule2: %w", err)
	}

	return rule2(g, marks, gatherOptions(opts...))
}

func rule2(g *pdag.Graph, marks *pdag.Marks, o Options) (bool, error) {
	changed := false
	for _, e := range g.Edges() {
		for _, ab := range [2][2]int{{e.X, e.Y}, {e.Y, e.X}} {
			a, b := ab[0], ab[1]
			if !g.IsUndirected(a, b) || !pdag.HasMarkedPath(g, marks, a, b) {
				continue
			}
			if err := g.Orient(a, b); err != nil {
				return changed, fmt.Errorf("orient.Rule2: %w", err)
			}
			changed = true
			o.logger.Debug("rule 2", zap.Int("from", a), zap.Int("to", b))
		}
	}

	return changed, nil
}
