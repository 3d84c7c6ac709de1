// SPDX-License-Identifier: MIT

package causality

import (
	"fmt"

	"github.com/katalvlaran/causality/dataset"
	"github.com/katalvlaran/causality/feasibility"
	"github.com/katalvlaran/causality/orient"
	"github.com/katalvlaran/causality/pdag"
	"github.com/katalvlaran/causality/skeleton"
	"github.com/katalvlaran/causality/stats"
)

// BuildCausalGraph validates records, learns the skeleton and orients it.
// Variable i is records[r][i] for every record r.
//
// Errors:
//   - dataset.ErrInvalidDataset (plus the specific sentinel) for malformed records.
func BuildCausalGraph(records [][]float64, opts ...Option) (*pdag.Graph, *pdag.Marks, error) {
	ds, err := dataset.New(records)
	if err != nil {
		return nil, nil, fmt.Errorf("causality.BuildCausalGraph: %w", err)
	}

	return Learn(ds, opts...)
}

// Learn is BuildCausalGraph over an already validated Dataset.
func Learn(ds *dataset.Dataset, opts ...Option) (*pdag.Graph, *pdag.Marks, error) {
	if ds == nil {
		return nil, nil, fmt.Errorf("causality.Learn: %w", stats.ErrNilDataset)
	}
	o := gatherOptions(opts...)

	eng, err := stats.NewEngine(ds, o.statsOptions()...)
	if err != nil {
		return nil, nil, fmt.Errorf("causality.Learn: %w", err)
	}
	g, seps, err := skeleton.Build(eng, o.skeletonOptions()...)
	if err != nil {
		return nil, nil, fmt.Errorf("causality.Learn: %w", err)
	}
	marks, err := orient.Orient(g, seps, o.orientOptions()...)
	if err != nil {
		return nil, nil, fmt.Errorf("causality.Learn: %w", err)
	}

	return g, marks, nil
}

// IsFeasibleCausalGraph reports whether every independence claim of g holds
// in records. g need not come from BuildCausalGraph.
//
// Errors:
//   - dataset.ErrInvalidDataset for malformed records.
//   - dataset.ErrOutOfRange when g's size differs from the record width.
//   - pdag.ErrInconsistentEdge for an invalid g.
func IsFeasibleCausalGraph(g *pdag.Graph, records [][]float64, opts ...Option) (bool, error) {
	ds, err := dataset.New(records)
	if err != nil {
		return false, fmt.Errorf("causality.IsFeasibleCausalGraph: %w", err)
	}

	return Feasible(g, ds, opts...)
}

// Feasible is IsFeasibleCausalGraph over an already validated Dataset.
func Feasible(g *pdag.Graph, ds *dataset.Dataset, opts ...Option) (bool, error) {
	res, err := Check(g, ds, opts...)
	if err != nil {
		return false, err
	}

	return res.Feasible, nil
}

// Check is Feasible with the full feasibility.Result, naming the first
// violated claim.
func Check(g *pdag.Graph, ds *dataset.Dataset, opts ...Option) (feasibility.Result, error) {
	o := gatherOptions(opts...)

	eng, err := stats.NewEngine(ds, o.statsOptions()...)
	if err != nil {
		return feasibility.Result{}, fmt.Errorf("causality.Check: %w", err)
	}
	res, err := feasibility.Check(eng, g, o.feasibilityOptions()...)
	if err != nil {
		return feasibility.Result{}, fmt.Errorf("causality.Check: %w", err)
	}

	return res, nil
}
