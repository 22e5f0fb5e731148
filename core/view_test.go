package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvforest/core"
)

func TestUnweighted(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("a", "b", 9))
	u := core.Unweighted(g)

	assert.Equal(t, g.NodeCount(), u.NodeCount())
	u.ForEachRelationship(0, core.Outgoing, func(_, _ int, w float64) bool {
		assert.Equal(t, 1.0, w)
		return true
	})
	assert.Equal(t, 1.0, u.WeightOf(0, 1))
	idx, ok := u.ToMappedNodeID("b")
	require.True(t, ok)
	assert.Equal(t, "b", u.ToOriginalNodeID(idx))
}

func TestReversed(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	require.NoError(t, g.AddEdge("a", "b", 5))
	r := core.Reversed(g)

	assert.Empty(t, neighbors(r, 0, core.Outgoing))
	assert.Equal(t, []int{0}, neighbors(r, 1, core.Outgoing))
	assert.Equal(t, 5.0, r.WeightOf(1, 0))
}
