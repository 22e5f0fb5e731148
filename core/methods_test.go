// SPDX-License-Identifier: MIT
// Package core_test verifies Graph construction and View contracts.

package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvforest/core"
)

// neighbors collects the targets of node in dir, in enumeration order.
func neighbors(v core.View, node int, dir core.Direction) []int {
	var out []int
	v.ForEachRelationship(node, dir, func(_, t int, _ float64) bool {
		out = append(out, t)
		return true
	})

	return out
}

func TestGraph_AddVertex(t *testing.T) {
	g := core.NewGraph()

	_, err := g.AddVertex("")
	assert.ErrorIs(t, err, core.ErrEmptyVertexID)

	a, err := g.AddVertex("a")
	require.NoError(t, err)
	b, err := g.AddVertex("b")
	require.NoError(t, err)
	assert.Equal(t, 0, a)
	assert.Equal(t, 1, b)

	// duplicate is a no-op
	again, err := g.AddVertex("a")
	require.NoError(t, err)
	assert.Equal(t, a, again)
	assert.Equal(t, 2, g.NodeCount())
	assert.Equal(t, []string{"a", "b"}, g.Vertices())
}

func TestGraph_AddEdge_Constraints(t *testing.T) {
	g := core.NewGraph()
	assert.ErrorIs(t, g.AddEdge("", "x", 1), core.ErrEmptyVertexID)
	assert.ErrorIs(t, g.AddEdge("x", "x", 1), core.ErrLoopNotAllowed)

	require.NoError(t, g.AddEdge("x", "y", 1))
	assert.ErrorIs(t, g.AddEdge("x", "y", 2), core.ErrMultiEdgeNotAllowed)
	// undirected mirror also counts as existing
	assert.ErrorIs(t, g.AddEdge("y", "x", 2), core.ErrMultiEdgeNotAllowed)
	assert.Equal(t, 1, g.EdgeCount())

	m := core.NewGraph(core.WithMultiEdges(), core.WithLoops())
	require.NoError(t, m.AddEdge("x", "y", 1))
	require.NoError(t, m.AddEdge("x", "y", 2))
	require.NoError(t, m.AddEdge("x", "x", 5))
	assert.Equal(t, 3, m.EdgeCount())
	x, _ := m.ToMappedNodeID("x")
	// loop stored once, both parallel edges visible
	assert.Len(t, neighbors(m, x, core.Outgoing), 3)
}

func TestGraph_UndirectedMirror(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("a", "b", 3))
	require.NoError(t, g.AddEdge("a", "c", 2))

	a, _ := g.ToMappedNodeID("a")
	b, _ := g.ToMappedNodeID("b")
	c, _ := g.ToMappedNodeID("c")

	for _, dir := range []core.Direction{core.Outgoing, core.Incoming, core.Both} {
		assert.Equal(t, []int{b, c}, neighbors(g, a, dir), dir.String())
		assert.Equal(t, []int{a}, neighbors(g, b, dir), dir.String())
	}
	assert.Equal(t, 3.0, g.WeightOf(a, b))
	assert.Equal(t, 3.0, g.WeightOf(b, a))
	assert.True(t, g.HasEdge("b", "a"))
	assert.Equal(t, 2, core.Degree(g, a, core.Both))
}

func TestGraph_DirectedLists(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true), core.WithDefaultWeight(-1))
	require.NoError(t, g.AddEdge("a", "b", 4))
	require.NoError(t, g.AddEdge("c", "a", 7))

	idx, err := core.MustMap(g, "a", "b", "c")
	require.NoError(t, err)
	a, b, c := idx[0], idx[1], idx[2]

	assert.Equal(t, []int{b}, neighbors(g, a, core.Outgoing))
	assert.Equal(t, []int{c}, neighbors(g, a, core.Incoming))
	assert.Equal(t, []int{b, c}, neighbors(g, a, core.Both))
	assert.Empty(t, neighbors(g, b, core.Outgoing))

	assert.Equal(t, 4.0, g.WeightOf(a, b))
	assert.Equal(t, -1.0, g.WeightOf(b, a), "absent edge reports default weight")
	assert.False(t, g.HasEdge("b", "a"))
	assert.Equal(t, 1, core.Degree(g, a, core.Incoming))
	assert.Equal(t, 2, core.Degree(g, a, core.Both))
}

func TestWeightAlong(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true), core.WithDefaultWeight(-1))
	require.NoError(t, g.AddEdge("a", "b", 5))
	require.NoError(t, g.AddEdge("c", "a", 2))
	require.NoError(t, g.AddEdge("b", "c", 3))
	require.NoError(t, g.AddEdge("c", "b", 9))

	idx, err := core.MustMap(g, "a", "b", "c")
	require.NoError(t, err)
	a, b, c := idx[0], idx[1], idx[2]

	cases := []struct {
		name     string
		src, dst int
		dir      core.Direction
		want     float64
	}{
		{"out", a, b, core.Outgoing, 5},
		{"in crosses the edge backwards", b, a, core.Incoming, 5},
		{"out misses falls back", b, a, core.Outgoing, -1},
		{"in misses falls back to WeightOf", a, b, core.Incoming, 5},
		{"both finds in-edge", a, c, core.Both, 2},
		{"both prefers out-edge", b, c, core.Both, 3},
		{"both from the other end", c, b, core.Both, 9},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, core.WeightAlong(g, tc.src, tc.dst, tc.dir))
		})
	}

	u := core.NewGraph()
	require.NoError(t, u.AddEdge("x", "y", 4))
	for _, dir := range []core.Direction{core.Outgoing, core.Incoming, core.Both} {
		assert.Equal(t, 4.0, core.WeightAlong(u, 1, 0, dir), dir.String())
	}
}

func TestGraph_ForEachRelationship_EarlyStop(t *testing.T) {
	g := core.NewGraph()
	for _, to := range []string{"b", "c", "d"} {
		require.NoError(t, g.AddEdge("a", to, 1))
	}
	calls := 0
	g.ForEachRelationship(0, core.Outgoing, func(_, _ int, _ float64) bool {
		calls++
		return calls < 2
	})
	assert.Equal(t, 2, calls)
}

func TestGraph_ForEachRelationship_VisitorMayReadGraph(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("a", "b", 2))
	var seen float64
	g.ForEachRelationship(0, core.Outgoing, func(s, tgt int, _ float64) bool {
		seen = g.WeightOf(s, tgt)
		return true
	})
	assert.Equal(t, 2.0, seen)
}

func TestGraph_OutOfRangePanics(t *testing.T) {
	g := core.NewGraph()
	_, _ = g.AddVertex("a")

	assert.Panics(t, func() { g.ForEachRelationship(1, core.Outgoing, nil) })
	assert.Panics(t, func() { g.ForEachRelationship(-1, core.Outgoing, nil) })
	assert.Panics(t, func() { g.ForEachRelationship(0, core.Direction(9), nil) })
	assert.Panics(t, func() { g.ToOriginalNodeID(3) })
	assert.Panics(t, func() { g.WeightOf(5, 0) })
}

func TestMustMap_Unknown(t *testing.T) {
	g := core.NewGraph()
	_, _ = g.AddVertex("a")
	_, err := core.MustMap(g, "a", "zz")
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
}

func TestParseDirection(t *testing.T) {
	cases := []struct {
		in   string
		want core.Direction
		err  bool
	}{
		{"out", core.Outgoing, false},
		{"OUTGOING", core.Outgoing, false},
		{">", core.Outgoing, false},
		{"in", core.Incoming, false},
		{" Incoming ", core.Incoming, false},
		{"<", core.Incoming, false},
		{"both", core.Both, false},
		{"<>", core.Both, false},
		{"sideways", 0, true},
		{"", 0, true},
	}
	for _, tc := range cases {
		got, err := core.ParseDirection(tc.in)
		if tc.err {
			assert.ErrorIs(t, err, core.ErrBadDirection, tc.in)
			continue
		}
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got, tc.in)
	}
	assert.False(t, core.Direction(0).Valid())
	assert.Equal(t, "direction(7)", core.Direction(7).String())
}

func TestGraph_Stats(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	require.NoError(t, g.AddEdge("a", "b", 4))
	require.NoError(t, g.AddEdge("b", "c", -2))
	_, _ = g.AddVertex("lonely")

	s := g.Stats()
	assert.True(t, s.Directed)
	assert.Equal(t, 4, s.VertexCount)
	assert.Equal(t, 2, s.EdgeCount)
	assert.Equal(t, 1, s.IsolatedCount)
	assert.Equal(t, -2.0, s.MinWeight)
	assert.Equal(t, 4.0, s.MaxWeight)
}
