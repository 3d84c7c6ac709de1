// SPDX-License-Identifier: MIT

package causality_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/causality"
	"github.com/katalvlaran/causality/config"
	"github.com/katalvlaran/causality/dataset"
	"github.com/katalvlaran/causality/internal/fixture"
	"github.com/katalvlaran/causality/pdag"
)

const (
	samples = 2000
	seed    = 42
)

func TestBuildCausalGraph_ColliderSoundness(t *testing.T) {
	g, marks, err := causality.BuildCausalGraph(fixture.Collider(samples, seed))
	require.NoError(t, err)

	assert.True(t, g.IsArrow(fixture.X, fixture.Z))
	assert.True(t, g.IsArrow(fixture.Y, fixture.Z))
	assert.False(t, g.Adjacent(fixture.X, fixture.Y))
	assert.True(t, marks.Equal(mustMarks(t, 3)), "colliders are not marked")
}

func TestBuildCausalGraph_ChainNonCollider(t *testing.T) {
	g, _, err := causality.BuildCausalGraph(fixture.Chain(samples, seed))
	require.NoError(t, err)

	assert.Equal(t, []pdag.Pair{{X: fixture.X, Y: fixture.Y}, {X: fixture.Y, Y: fixture.Z}}, g.Edges())
	assert.True(t, g.IsUndirected(fixture.X, fixture.Y))
	assert.True(t, g.IsUndirected(fixture.Y, fixture.Z))
}

func TestBuildCausalGraph_Diamond(t *testing.T) {
	g, _, err := causality.BuildCausalGraph(fixture.Diamond(samples, seed))
	require.NoError(t, err)

	assert.Equal(t, "{0—2, 1→3, 2→3}", g.String())
}

func TestBuildCausalGraph_Deterministic(t *testing.T) {
	records := fixture.Diamond(samples, seed)
	g1, m1, err := causality.BuildCausalGraph(records)
	require.NoError(t, err)
	g2, m2, err := causality.BuildCausalGraph(records)
	require.NoError(t, err)

	assert.True(t, g1.Equal(g2))
	assert.True(t, m1.Equal(m2))
}

func TestIsFeasibleCausalGraph_RoundTrip(t *testing.T) {
	for name, records := range map[string][][]float64{
		"collider": fixture.Collider(samples, seed),
		"chain":    fixture.Chain(samples, seed),
		"diamond":  fixture.Diamond(samples, seed),
	} {
		t.Run(name, func(t *testing.T) {
			g, _, err := causality.BuildCausalGraph(records)
			require.NoError(t, err)
			ok, err := causality.IsFeasibleCausalGraph(g, records)
			require.NoError(t, err)
			assert.True(t, ok)
		})
	}
}

func TestIsFeasibleCausalGraph_RejectsContradiction(t *testing.T) {
	records := fixture.Chain(samples, seed)
	g, _, err := causality.BuildCausalGraph(records)
	require.NoError(t, err)
	require.NoError(t, g.Disconnect(fixture.X, fixture.Y))

	ok, err := causality.IsFeasibleCausalGraph(g, records)
	require.NoError(t, err)
	assert.False(t, ok)

	ds, err := dataset.New(records)
	require.NoError(t, err)
	res, err := causality.Check(g, ds)
	require.NoError(t, err)
	require.NotNil(t, res.Violation)
	assert.Equal(t, pdag.Pair{X: fixture.X, Y: fixture.Y}, res.Violation.Pair)
}

func TestBuildCausalGraph_ThresholdMonotone(t *testing.T) {
	records := fixture.Diamond(samples, seed)
	prev := -1
	for _, th := range []float64{0.05, 0.1, 0.3} {
		g, _, err := causality.BuildCausalGraph(records, causality.WithThreshold(th))
		require.NoError(t, err)
		n := len(g.Edges())
		if prev >= 0 {
			assert.LessOrEqual(t, n, prev, "threshold %v", th)
		}
		prev = n
	}
}

func TestBuildCausalGraph_MaxConditioningZero(t *testing.T) {
	// Without conditioning, only marginal independence removes edges:
	// the diamond keeps A—D through C.
	g, _, err := causality.BuildCausalGraph(fixture.Diamond(samples, seed),
		causality.WithMaxConditioningSize(0))
	require.NoError(t, err)
	assert.True(t, g.Adjacent(fixture.A, fixture.D))
}

func TestWithConfig(t *testing.T) {
	records := fixture.Collider(samples, seed)
	cfg := config.Default()

	g1, _, err := causality.BuildCausalGraph(records)
	require.NoError(t, err)
	g2, _, err := causality.BuildCausalGraph(records, causality.WithConfig(cfg))
	require.NoError(t, err)
	assert.True(t, g1.Equal(g2))

	cfg.IndependenceThreshold = 2
	assert.Panics(t, func() { causality.WithConfig(cfg) })
}

func TestWithConfig_InfiniteBinWidthRejectedAtLoad(t *testing.T) {
	_, err := config.Parse([]byte("bin_width: .inf\n"))
	require.ErrorIs(t, err, config.ErrInvalidConfig)

	cfg := config.Default()
	cfg.BinWidth = math.Inf(1)
	assert.Panics(t, func() { causality.WithConfig(cfg) }, "rejected before any stage runs")
	assert.Panics(t, func() { causality.WithBinWidth(math.SmallestNonzeroFloat64) })
}

func TestWithLogger_ComponentField(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	records := fixture.Chain(samples, seed)
	l := zap.New(core)

	g, _, err := causality.BuildCausalGraph(records, causality.WithLogger(l))
	require.NoError(t, err)
	_, err = causality.IsFeasibleCausalGraph(g, records, causality.WithLogger(l))
	require.NoError(t, err)

	names := make([]string, 0)
	for _, e := range logs.All() {
		names = append(names, e.ContextMap()["component"].(string))
	}
	assert.Equal(t, []string{"skeleton", "orient", "feasibility"}, names)
}

func TestMalformedInput(t *testing.T) {
	cases := map[string]struct {
		records [][]float64
		want    error
	}{
		"empty":        {nil, dataset.ErrNoRecords},
		"one record":   {[][]float64{{1, 2}}, dataset.ErrTooFewRecords},
		"one variable": {[][]float64{{1}, {2}}, dataset.ErrTooFewVariables},
		"ragged":       {[][]float64{{1, 2}, {3}}, dataset.ErrRaggedRecord},
		"non-finite":   {[][]float64{{1, 2}, {3, math.Inf(1)}}, dataset.ErrNaNInf},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			_, _, err := causality.BuildCausalGraph(tc.records)
			require.ErrorIs(t, err, dataset.ErrInvalidDataset)
			require.ErrorIs(t, err, tc.want)

			g, gerr := pdag.NewGraph(2)
			require.NoError(t, gerr)
			_, err = causality.IsFeasibleCausalGraph(g, tc.records)
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestIsFeasibleCausalGraph_SizeMismatch(t *testing.T) {
	g, err := pdag.NewGraph(4)
	require.NoError(t, err)
	_, err = causality.IsFeasibleCausalGraph(g, fixture.Chain(100, seed))
	require.ErrorIs(t, err, dataset.ErrOutOfRange)
}

func TestNilDataset(t *testing.T) {
	_, _, err := causality.Learn(nil)
	require.Error(t, err)
	g, err := pdag.NewGraph(2)
	require.NoError(t, err)
	_, err = causality.Feasible(g, nil)
	require.Error(t, err)
}

func TestOptionPanics(t *testing.T) {
	assert.Panics(t, func() { causality.WithThreshold(1.1) })
	assert.Panics(t, func() { causality.WithBinWidth(0) })
	assert.Panics(t, func() { causality.WithMaxConditioningSize(-2) })
	assert.NotPanics(t, func() { causality.WithRenormalizedStrata() })
}

func mustMarks(t *testing.T, n int) *pdag.Marks {
	t.Helper()
	m, err := pdag.NewMarks(n)
	require.NoError(t, err)

	return m
}
