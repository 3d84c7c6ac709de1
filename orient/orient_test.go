// SPDX-License-Identifier: MIT

package orient_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/causality/dataset"
	"github.com/katalvlaran/causality/internal/fixture"
	"github.com/katalvlaran/causality/orient"
	"github.com/katalvlaran/causality/pdag"
	"github.com/katalvlaran/causality/skeleton"
	"github.com/katalvlaran/causality/stats"
)

const (
	o = pdag.NoEdge
	u = pdag.Undirected
	a = pdag.Arrow
)

func graphOf(t *testing.T, m [][]pdag.EdgeState) *pdag.Graph {
	t.Helper()
	g, err := pdag.FromMatrix(m)
	require.NoError(t, err)

	return g
}

func newMarks(t *testing.T, n int, pairs ...[2]int) *pdag.Marks {
	t.Helper()
	m, err := pdag.NewMarks(n)
	require.NoError(t, err)
	for _, p := range pairs {
		require.NoError(t, m.Mark(p[0], p[1]))
	}

	return m
}

func requireCells(t *testing.T, want [][]pdag.EdgeState, g *pdag.Graph) {
	t.Helper()
	if diff := cmp.Diff(want, g.Matrix()); diff != "" {
		t.Fatalf("graph mismatch (-want +got):\n%s", diff)
	}
}

// openTriple is 0 — 2 — 1 with 0 and 1 non-adjacent.
func openTriple(t *testing.T) *pdag.Graph {
	return graphOf(t, [][]pdag.EdgeState{
		{o, o, u},
		{o, o, u},
		{u, u, o},
	})
}

func TestVStructures_Collider(t *testing.T) {
	g := openTriple(t)
	seps := skeleton.NewSepSets()
	seps.Record(0, 1, nil)

	n, err := orient.VStructures(g, seps)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	requireCells(t, [][]pdag.EdgeState{
		{o, o, a},
		{o, o, a},
		{o, o, o},
	}, g)
}

func TestVStructures_NonCollider(t *testing.T) {
	g := openTriple(t)
	seps := skeleton.NewSepSets()
	seps.Record(1, 0, []int{2})

	n, err := orient.VStructures(g, seps)
	require.NoError(t, err)
	assert.Zero(t, n)
	requireCells(t, openTriple(t).Matrix(), g)
}

func TestVStructures_RequiresRecordedSet(t *testing.T) {
	g := openTriple(t)
	n, err := orient.VStructures(g, skeleton.NewSepSets())
	require.NoError(t, err)
	assert.Zero(t, n)
	assert.True(t, g.IsUndirected(0, 2))
}

func TestRule1_OrientsAwayFromArrow(t *testing.T) {
	// 0 → 1 — 2, 0 and 2 non-adjacent.
	g := graphOf(t, [][]pdag.EdgeState{
		{o, a, o},
		{o, o, u},
		{o, u, o},
	})
	m := newMarks(t, 3)

	changed, err := orient.Rule1(g, m)
	require.NoError(t, err)
	assert.True(t, changed)
	assert.True(t, g.IsArrow(1, 2))
	assert.Equal(t, pdag.NoEdge, g.Cell(2, 1))
	assert.True(t, m.IsMarked(1, 2))
	assert.True(t, m.IsMarked(2, 1))
	assert.False(t, m.IsMarked(0, 1), "collider-free arrows stay unmarked")

	changed, err = orient.Rule1(g, m)
	require.NoError(t, err)
	assert.False(t, changed, "fixed point")
}

func TestRule1_MarksExistingArrowOnce(t *testing.T) {
	// 0 → 1 → 2 with the second arrow unmarked: Rule 1 only adds the mark.
	g := graphOf(t, [][]pdag.EdgeState{
		{o, a, o},
		{o, o, a},
		{o, o, o},
	})
	m := newMarks(t, 3)

	changed, err := orient.Rule1(g, m)
	require.NoError(t, err)
	assert.True(t, changed)
	assert.True(t, m.IsMarked(1, 2))
	assert.True(t, g.IsArrow(1, 2))

	changed, err = orient.Rule1(g, m)
	require.NoError(t, err)
	assert.False(t, changed)
}

func TestRule1_IgnoresAdjacentPair(t *testing.T) {
	// 0 → 1 — 2 with 0 — 2 present: shielded triple, nothing to do.
	g := graphOf(t, [][]pdag.EdgeState{
		{o, a, u},
		{o, o, u},
		{u, u, o},
	})
	changed, err := orient.Rule1(g, newMarks(t, 3))
	require.NoError(t, err)
	assert.False(t, changed)
	assert.True(t, g.IsUndirected(1, 2))
}

func TestRule2_MarkedPath(t *testing.T) {
	// 0 → 1 → 2 (both marked) and 0 — 2: orient 0 → 2.
	g := graphOf(t, [][]pdag.EdgeState{
		{o, a, u},
		{o, o, a},
		{u, o, o},
	})
	m := newMarks(t, 3, [2]int{0, 1}, [2]int{1, 2})

	changed, err := orient.Rule2(g, m)
	require.NoError(t, err)
	assert.True(t, changed)
	assert.True(t, g.IsArrow(0, 2))
	assert.Equal(t, pdag.NoEdge, g.Cell(2, 0))
	assert.False(t, m.IsMarked(0, 2), "Rule 2 does not mark")
	require.NoError(t, g.Validate())
}

func TestRule2_UnmarkedPath(t *testing.T) {
	g := graphOf(t, [][]pdag.EdgeState{
		{o, a, u},
		{o, o, a},
		{u, o, o},
	})
	m := newMarks(t, 3, [2]int{0, 1})

	changed, err := orient.Rule2(g, m)
	require.NoError(t, err)
	assert.False(t, changed)
	assert.True(t, g.IsUndirected(0, 2))
}

func TestRules_ArgumentErrors(t *testing.T) {
	g := openTriple(t)
	_, err := orient.Rule1(g, nil)
	require.ErrorIs(t, err, orient.ErrNilMarks)
	_, err = orient.Rule2(g, newMarks(t, 4))
	require.ErrorIs(t, err, orient.ErrDimensionMismatch)
	_, err = orient.Rule2(nil, newMarks(t, 3))
	require.ErrorIs(t, err, orient.ErrNilGraph)
	_, err = orient.VStructures(nil, nil)
	require.ErrorIs(t, err, orient.ErrNilGraph)
	_, err = orient.Orient(nil, nil)
	require.ErrorIs(t, err, orient.ErrNilGraph)
}

// propagationSkeleton: 0 — 2, 1 — 2, 2 — 3 with 2 outside sep(0,1) and
// inside sep(0,3), sep(1,3).
func propagationSkeleton(t *testing.T) (*pdag.Graph, skeleton.SepSets) {
	g := graphOf(t, [][]pdag.EdgeState{
		{o, o, u, o},
		{o, o, u, o},
		{u, u, o, u},
		{o, o, u, o},
	})
	seps := skeleton.NewSepSets()
	seps.Record(0, 1, nil)
	seps.Record(0, 3, []int{2})
	seps.Record(1, 3, []int{2})

	return g, seps
}

func TestOrient_ColliderThenRule1(t *testing.T) {
	g, seps := propagationSkeleton(t)
	core, logs := observer.New(zap.DebugLevel)

	marks, err := orient.Orient(g, seps, orient.WithLogger(zap.New(core)))
	require.NoError(t, err)
	requireCells(t, [][]pdag.EdgeState{
		{o, o, a, o},
		{o, o, a, o},
		{o, o, o, a},
		{o, o, o, o},
	}, g)
	assert.True(t, marks.IsMarked(2, 3))
	assert.True(t, marks.IsMarked(3, 2))
	assert.False(t, marks.IsMarked(0, 2))

	assert.Equal(t, 1, logs.FilterMessage("collider").Len())
	assert.Equal(t, 1, logs.FilterMessage("rule 1").Len())
	assert.Equal(t, 1, logs.FilterMessage("graph oriented").Len())
}

func TestOrient_Deterministic(t *testing.T) {
	g1, seps := propagationSkeleton(t)
	g2 := g1.Clone()
	m1, err := orient.Orient(g1, seps)
	require.NoError(t, err)
	m2, err := orient.Orient(g2, seps)
	require.NoError(t, err)
	assert.True(t, g1.Equal(g2))
	assert.True(t, m1.Equal(m2))
}

func TestOrient_ChainStaysUndirected(t *testing.T) {
	g := openTriple(t)
	seps := skeleton.NewSepSets()
	seps.Record(0, 1, []int{2})

	marks, err := orient.Orient(g, seps)
	require.NoError(t, err)
	assert.True(t, g.IsUndirected(0, 2))
	assert.True(t, g.IsUndirected(1, 2))
	assert.True(t, marks.Equal(newMarks(t, 3)))
}

func learnSkeleton(t *testing.T, records [][]float64) (*pdag.Graph, skeleton.SepSets) {
	t.Helper()
	ds, err := dataset.New(records)
	require.NoError(t, err)
	eng, err := stats.NewEngine(ds)
	require.NoError(t, err)
	g, seps, err := skeleton.Build(eng)
	require.NoError(t, err)

	return g, seps
}

func TestOrient_Fixtures(t *testing.T) {
	const samples, seed = 2000, 42

	t.Run("collider", func(t *testing.T) {
		g, seps := learnSkeleton(t, fixture.Collider(samples, seed))
		_, err := orient.Orient(g, seps)
		require.NoError(t, err)
		assert.True(t, g.IsArrow(fixture.X, fixture.Z))
		assert.True(t, g.IsArrow(fixture.Y, fixture.Z))
		assert.False(t, g.Adjacent(fixture.X, fixture.Y))
	})

	t.Run("chain", func(t *testing.T) {
		g, seps := learnSkeleton(t, fixture.Chain(samples, seed))
		_, err := orient.Orient(g, seps)
		require.NoError(t, err)
		assert.True(t, g.IsUndirected(fixture.X, fixture.Y))
		assert.True(t, g.IsUndirected(fixture.Y, fixture.Z))
	})

	t.Run("diamond", func(t *testing.T) {
		g, seps := learnSkeleton(t, fixture.Diamond(samples, seed))
		_, err := orient.Orient(g, seps)
		require.NoError(t, err)
		assert.True(t, g.IsArrow(fixture.B, fixture.D))
		assert.True(t, g.IsArrow(fixture.C, fixture.D))
		assert.True(t, g.IsUndirected(fixture.A, fixture.C))
		require.NoError(t, g.Validate())
	})
}
