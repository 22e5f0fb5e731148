package loader_test

import (
	"bytes"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvforest/builder"
	"github.com/katalvlaran/lvforest/core"
	"github.com/katalvlaran/lvforest/loader"
)

func TestWriteEdgeList(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("a", "0,1", 2.5))
	_, err := g.AddVertex("lonely one")
	require.NoError(t, err)
	require.NoError(t, g.AddEdge("a", "7", 1e6))

	var buf bytes.Buffer
	require.NoError(t, loader.WriteEdgeList(&buf, g))
	assert.Equal(t, "a\n\"0,1\"\n\"lonely one\"\n7\na -- \"0,1\" : 2.5\na -- 7 : 1e+06\n", buf.String())
}

func TestWriteEdgeList_RoundTrip(t *testing.T) {
	for _, directed := range []bool{false, true} {
		g, err := builder.BuildGraph(
			[]core.GraphOption{core.WithDirected(directed)},
			[]builder.Option{builder.WithSeed(4), builder.WithWeightFn(builder.UniformWeight(-5, 5))},
			builder.RandomSparse(30, 0.2), builder.Grid(2, 3))
		require.NoError(t, err)

		var buf bytes.Buffer
		require.NoError(t, loader.WriteEdgeList(&buf, g))
		back, err := loader.ParseEdgeList(buf.String())
		require.NoError(t, err)

		assert.Equal(t, directed, back.Directed())
		assert.Equal(t, g.Vertices(), back.Vertices())
		assert.Equal(t, g.EdgeCount(), back.EdgeCount())
		assert.Equal(t, edgesOf(g), edgesOf(back))
	}
}

func TestWriteEdgeList_NonFinite(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("a", "b", math.Inf(1)))
	assert.Error(t, loader.WriteEdgeList(&bytes.Buffer{}, g))
}
