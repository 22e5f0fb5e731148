package loader_test

import (
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvforest/core"
	"github.com/katalvlaran/lvforest/loader"
)

// edgesOf lists "from>to:w" for every outgoing relationship, in index order.
func edgesOf(g *core.Graph) []string {
	var out []string
	for u := 0; u < g.NodeCount(); u++ {
		g.ForEachRelationship(u, core.Outgoing, func(s, t int, w float64) bool {
			out = append(out, g.ToOriginalNodeID(s)+">"+g.ToOriginalNodeID(t)+":"+
				strconv.FormatFloat(w, 'g', -1, 64))
			return true
		})
	}

	return out
}

func TestLoadFile_FormatsAgree(t *testing.T) {
	var want []string
	for _, name := range []string{"diamond.yaml", "diamond.hcl", "diamond.txt"} {
		t.Run(name, func(t *testing.T) {
			g, err := loader.LoadFile(filepath.Join("testdata", name))
			require.NoError(t, err)
			assert.False(t, g.Directed())
			assert.Equal(t, []string{"a", "b", "c", "d"}, g.Vertices())
			assert.Equal(t, 5, g.EdgeCount())

			got := edgesOf(g)
			if want == nil {
				want = got
				return
			}
			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("edges mismatch (-yaml +%s):\n%s", name, diff)
			}
		})
	}
	a, _ := core.MustMap(mustLoad(t, "diamond.txt"), "a", "d")
	assert.Equal(t, []int{0, 3}, a)
}

func mustLoad(t *testing.T, name string) *core.Graph {
	t.Helper()
	g, err := loader.LoadFile(filepath.Join("testdata", name))
	require.NoError(t, err)

	return g
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := loader.LoadFile(filepath.Join("testdata", "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadYAML(t *testing.T) {
	g, err := loader.LoadYAML(strings.NewReader(`
directed: true
loops: true
default_weight: -1
vertices: [x]
edges:
  - {from: a, to: b}
  - {from: b, to: b, weight: 0.5}
`))
	require.NoError(t, err)
	assert.True(t, g.Directed())
	assert.True(t, g.Looped())
	assert.Equal(t, []string{"x", "a", "b"}, g.Vertices())

	ids, err := core.MustMap(g, "a", "b")
	require.NoError(t, err)
	assert.Equal(t, 1.0, g.WeightOf(ids[0], ids[1]))
	assert.Equal(t, 0.5, g.WeightOf(ids[1], ids[1]))
	assert.Equal(t, -1.0, g.WeightOf(ids[1], ids[0]))
}

func TestLoadYAML_Errors(t *testing.T) {
	cases := map[string]string{
		"unknown key":   "colour: red\n",
		"missing to":    "edges:\n  - {from: a}\n",
		"not a mapping": "- a\n- b\n",
		"loop refused":  "edges:\n  - {from: a, to: a}\n",
	}
	for name, src := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := loader.LoadYAML(strings.NewReader(src))
			assert.Error(t, err)
		})
	}
	_, err := loader.LoadYAML(strings.NewReader("edges:\n  - {from: a, to: a}\n"))
	assert.ErrorIs(t, err, core.ErrLoopNotAllowed)
}

func TestLoadHCL(t *testing.T) {
	g, err := loader.LoadHCL("inline.hcl", []byte(`
directed    = true
multi_edges = true
edge "a" "b" {}
edge "a" "b" { weight = "2.5" }
`))
	require.NoError(t, err)
	assert.True(t, g.Directed())
	assert.Equal(t, 2, g.EdgeCount())
	assert.Equal(t, []string{"a>b:1", "a>b:2.5"}, edgesOf(g))
}

func TestLoadHCL_Errors(t *testing.T) {
	for name, src := range map[string]string{
		"syntax":       `edge "a" {`,
		"bad weight":   `edge "a" "b" { weight = "heavy" }`,
		"unknown attr": `colour = "red"`,
		"unknown var":  `edge "a" "b" { weight = nope }`,
	} {
		t.Run(name, func(t *testing.T) {
			_, err := loader.LoadHCL("bad.hcl", []byte(src))
			assert.ErrorIs(t, err, loader.ErrSyntax)
		})
	}
}

func TestParseEdgeList(t *testing.T) {
	g, err := loader.ParseEdgeList(`
# directed chain with a loner
a -> b : 2.5
b -> "c d"
lonely
"c d" -> 7 : -1e1
`)
	require.NoError(t, err)
	assert.True(t, g.Directed())
	assert.Equal(t, []string{"lonely", "a", "b", "c d", "7"}, g.Vertices())
	assert.Equal(t, []string{"a>b:2.5", "b>c d:1", "c d>7:-10"}, edgesOf(g))
}

func TestParseEdgeList_Undirected(t *testing.T) {
	g, err := loader.ParseEdgeList("a -- b\n")
	require.NoError(t, err)
	assert.False(t, g.Directed())
	assert.True(t, g.HasEdge("b", "a"))
}

func TestParseEdgeList_Empty(t *testing.T) {
	g, err := loader.ParseEdgeList("# nothing here\n")
	require.NoError(t, err)
	assert.Equal(t, 0, g.NodeCount())
}

func TestParseEdgeList_Errors(t *testing.T) {
	_, err := loader.ParseEdgeList("a -> b\nb -- c\n")
	assert.ErrorIs(t, err, loader.ErrMixedEdges)

	_, err = loader.ParseEdgeList("a -> : 3\n")
	assert.ErrorIs(t, err, loader.ErrSyntax)

	_, err = loader.ParseEdgeList("a -> b : x\n")
	assert.ErrorIs(t, err, loader.ErrSyntax)
}

func TestSpecBuild_KeepsOrder(t *testing.T) {
	s := loader.Spec{
		Vertices: []string{"z"},
		Edges:    []loader.EdgeSpec{{From: "y", To: "z", Weight: 4}},
	}
	g, err := s.Build()
	require.NoError(t, err)
	assert.Equal(t, []string{"z", "y"}, g.Vertices())
}
