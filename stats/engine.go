// SPDX-License-Identifier: MIT

package stats

import (
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/causality/dataset"
)

const opCorrelation = "Correlation"

// Engine evaluates (conditional) correlations over one Dataset.
// It keeps scratch buffers between calls and is not safe for concurrent use;
// create one Engine per goroutine (the Dataset itself may be shared).
type Engine struct {
	ds          *dataset.Dataset
	scale       float64 // 1 / binWidth
	renormalize bool
	maxCond     int

	all    []int     // 0..rows-1, the unconditioned stratum
	xs, ys []float64 // gather buffers for the Pearson kernel
}

// NewEngine binds an Engine to ds.
//
// Errors:
//   - ErrNilDataset when ds is nil.
func NewEngine(ds *dataset.Dataset, opts ...Option) (*Engine, error) {
	if ds == nil {
		return nil, ErrNilDataset
	}
	o := gatherOptions(opts...)

	all := make([]int, ds.Rows())
	for i := range all {
		all[i] = i
	}

	return &Engine{
		ds:          ds,
		scale:       1 / o.binWidth,
		renormalize: o.renormalize,
		maxCond:     o.maxCond,
		all:         all,
		xs:          make([]float64, ds.Rows()),
		ys:          make([]float64, ds.Rows()),
	}, nil
}

// Dataset returns the table the engine reads.
func (e *Engine) Dataset() *dataset.Dataset { return e.ds }

// Bin maps a conditioning value to its stratum: trunc(v·k) with
// k = 1/binWidth. Note that bin 0 spans (-width, width).
// The key stays a float64 so every finite v keeps its own ordered bin;
// only products beyond ±MaxFloat64 saturate into the ±Inf strata.
func (e *Engine) Bin(v float64) float64 {
	return math.Trunc(v * e.scale)
}

// Correlation returns r(x, y | given) over the whole dataset.
// given is consumed in order: given[0] is stratified first.
//
// Errors:
//   - dataset.ErrOutOfRange for any index outside the table.
//   - ErrConditioningTooLarge when len(given) exceeds WithMaxConditioning.
//
// Complexity: O(|given|·rows·log(bins)) for stratification plus O(rows) for
// the Pearson leaves.
func (e *Engine) Correlation(x, y int, given []int) (float64, error) {
	if err := e.ds.CheckVars(x, y); err != nil {
		return 0, fmt.Errorf("%s: %w", opCorrelation, err)
	}
	if err := e.ds.CheckVars(given...); err != nil {
		return 0, fmt.Errorf("%s: given: %w", opCorrelation, err)
	}
	if e.maxCond >= 0 && len(given) > e.maxCond {
		return 0, fmt.Errorf("%s: |given|=%d > %d: %w", opCorrelation, len(given), e.maxCond, ErrConditioningTooLarge)
	}

	return e.conditional(e.all, x, y, given), nil
}

// conditional recurses over strata of rows; indices are pre-validated.
func (e *Engine) conditional(rows []int, x, y int, given []int) float64 {
	if len(given) == 0 {
		return e.pearsonRows(rows, x, y)
	}

	// Stage 1: partition rows by bin of the first conditioning variable,
	// preserving record order inside every stratum.
	z := given[0]
	strata := make(map[float64][]int)
	keys := make([]float64, 0)
	var b float64
	for _, r := range rows {
		b = e.Bin(e.ds.Value(r, z))
		if _, ok := strata[b]; !ok {
			keys = append(keys, b)
		}
		strata[b] = append(strata[b], r)
	}
	sort.Float64s(keys)

	// Stage 2: weighted combination of the retained strata.
	total := float64(len(rows))
	var sum, weights, w float64
	for _, k := range keys {
		s := strata[k]
		if len(s) < 2 {
			continue // correlation undefined on a singleton
		}
		w = float64(len(s)) / total
		weights += w
		sum += w * e.conditional(s, x, y, given[1:])
	}

	if weights == 0 {
		return 0
	}
	if e.renormalize {
		return sum / weights
	}

	return sum
}

// pearsonRows gathers x and y over rows into the scratch buffers and runs
// the Pearson kernel. Recursion only reaches here at the leaves, so the
// buffers are never shared between live frames.
func (e *Engine) pearsonRows(rows []int, x, y int) float64 {
	xs := e.xs[:len(rows)]
	ys := e.ys[:len(rows)]
	for i, r := range rows {
		xs[i] = e.ds.Value(r, x)
		ys[i] = e.ds.Value(r, y)
	}

	return pearson(xs, ys)
}

// Correlation is a one-shot convenience wrapper around NewEngine and
// Engine.Correlation.
func Correlation(ds *dataset.Dataset, x, y int, given []int, opts ...Option) (float64, error) {
	e, err := NewEngine(ds, opts...)
	if err != nil {
		return 0, err
	}

	return e.Correlation(x, y, given)
}

// MaxConditioning returns the configured cap on |given| (-1 when unbounded).
func (e *Engine) MaxConditioning() int { return e.maxCond }
