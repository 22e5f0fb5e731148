package builder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvforest/builder"
	"github.com/katalvlaran/lvforest/core"
)

func TestTopologies_Counts(t *testing.T) {
	cases := []struct {
		name     string
		gopts    []core.GraphOption
		con      builder.Constructor
		vertices int
		edges    int
	}{
		{"path", nil, builder.Path(5), 5, 4},
		{"cycle", nil, builder.Cycle(5), 5, 5},
		{"star", nil, builder.Star(6), 6, 5},
		{"wheel", nil, builder.Wheel(6), 6, 10},
		{"complete", nil, builder.Complete(5), 5, 10},
		{"complete directed", []core.GraphOption{core.WithDirected(true)}, builder.Complete(4), 4, 12},
		{"grid", nil, builder.Grid(3, 4), 12, 17},
		{"sparse p=1", nil, builder.RandomSparse(6, 1), 6, 15},
		{"sparse p=0", nil, builder.RandomSparse(6, 0), 6, 0},
		{"sparse p=1 directed loops", []core.GraphOption{core.WithDirected(true), core.WithLoops()}, builder.RandomSparse(3, 1), 3, 9},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := builder.BuildGraph(tc.gopts, nil, tc.con)
			require.NoError(t, err)
			assert.Equal(t, tc.vertices, g.NodeCount())
			assert.Equal(t, tc.edges, g.EdgeCount())
		})
	}
}

func TestTopologies_TooSmall(t *testing.T) {
	for name, con := range map[string]builder.Constructor{
		"path":     builder.Path(1),
		"cycle":    builder.Cycle(2),
		"star":     builder.Star(1),
		"wheel":    builder.Wheel(3),
		"complete": builder.Complete(0),
		"grid":     builder.Grid(0, 3),
		"sparse":   builder.RandomSparse(0, 0.5),
		"tree":     builder.RandomTree(0),
	} {
		t.Run(name, func(t *testing.T) {
			_, err := builder.BuildGraph(nil, []builder.Option{builder.WithSeed(1)}, con)
			assert.ErrorIs(t, err, builder.ErrTooFewVertices)
		})
	}
}

func TestRandom_NeedsSeed(t *testing.T) {
	_, err := builder.BuildGraph(nil, nil, builder.RandomSparse(5, 0.5))
	assert.ErrorIs(t, err, builder.ErrNeedRandSource)
	_, err = builder.BuildGraph(nil, nil, builder.RandomTree(5))
	assert.ErrorIs(t, err, builder.ErrNeedRandSource)
	_, err = builder.BuildGraph(nil, []builder.Option{builder.WithSeed(1)}, builder.RandomSparse(5, 1.5))
	assert.ErrorIs(t, err, builder.ErrInvalidProbability)
}

func TestBuildGraph_NilConstructor(t *testing.T) {
	_, err := builder.BuildGraph(nil, nil, builder.Path(2), nil)
	assert.ErrorIs(t, err, builder.ErrConstructFailed)
}

func TestBuildGraph_Deterministic(t *testing.T) {
	build := func() *core.Graph {
		g, err := builder.BuildGraph(nil,
			[]builder.Option{builder.WithSeed(7), builder.WithWeightFn(builder.IntWeight(1, 100))},
			builder.RandomSparse(20, 0.3))
		require.NoError(t, err)
		return g
	}
	a, b := build(), build()
	require.Equal(t, a.EdgeCount(), b.EdgeCount())
	for u := 0; u < a.NodeCount(); u++ {
		for v := 0; v < a.NodeCount(); v++ {
			assert.Equal(t, a.WeightOf(u, v), b.WeightOf(u, v))
		}
	}
}

func TestRandomTree_Connected(t *testing.T) {
	g, err := builder.BuildGraph(nil, []builder.Option{builder.WithSeed(3)}, builder.RandomTree(50))
	require.NoError(t, err)
	assert.Equal(t, 49, g.EdgeCount())
	assert.Zero(t, g.Stats().IsolatedCount)
}

func TestIDSchemes(t *testing.T) {
	assert.Equal(t, "0", builder.DefaultIDFn(0))
	assert.Equal(t, "a", builder.LetterIDFn(0))
	assert.Equal(t, "z", builder.LetterIDFn(25))
	assert.Equal(t, "aa", builder.LetterIDFn(26))
	assert.Equal(t, "ab", builder.LetterIDFn(27))
	assert.Equal(t, "v12", builder.PrefixIDFn("v")(12))
	assert.Panics(t, func() { builder.LetterIDFn(-1) })
	assert.Panics(t, func() { builder.WithIDScheme(nil) })
	assert.Panics(t, func() { builder.WithWeightFn(nil) })
	assert.Panics(t, func() { builder.WithRand(nil) })

	g, err := builder.BuildGraph(nil, []builder.Option{builder.WithIDScheme(builder.LetterIDFn)}, builder.Path(3))
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, g.Vertices())
	assert.True(t, g.HasEdge("b", "c"))
}

func TestWeights(t *testing.T) {
	g, err := builder.BuildGraph(nil, []builder.Option{builder.WithWeightFn(builder.ConstWeight(2.5))}, builder.Star(3))
	require.NoError(t, err)
	assert.Equal(t, 2.5, g.WeightOf(0, 2))

	w := builder.UniformWeight(1, 2)
	assert.Equal(t, 1.0, w(nil))
	g, err = builder.BuildGraph(nil, []builder.Option{builder.WithSeed(5), builder.WithWeightFn(w)}, builder.Cycle(10))
	require.NoError(t, err)
	for u := 0; u < 10; u++ {
		got := g.WeightOf(u, (u+1)%10)
		assert.GreaterOrEqual(t, got, 1.0)
		assert.Less(t, got, 2.0)
	}
	assert.Equal(t, 3.0, builder.IntWeight(3, 3)(nil))
}

func TestGrid_IDs(t *testing.T) {
	g, err := builder.BuildGraph(nil, nil, builder.Grid(2, 2))
	require.NoError(t, err)
	assert.Equal(t, []string{"0,0", "0,1", "1,0", "1,1"}, g.Vertices())
	assert.True(t, g.HasEdge(builder.GridID(0, 1), builder.GridID(1, 1)))
}
