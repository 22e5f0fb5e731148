// Package loader reads graph files into a *core.Graph.
//
// Three formats are understood, chosen by LoadFile from the extension:
//
//	.yaml .yml   LoadYAML
//	.hcl         LoadHCL
//	anything else ParseEdgeList
package loader

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/katalvlaran/lvforest/core"
)

// Sentinel errors.
var (
	// ErrSyntax wraps parse failures of any format.
	ErrSyntax = errors.New("loader: syntax error")

	// ErrMixedEdges indicates an edge list mixing "->" and "--".
	ErrMixedEdges = errors.New("loader: mixed directed and undirected edges")
)

// Spec is the format-independent description of a graph file.
type Spec struct {
	Directed      bool
	Loops         bool
	MultiEdges    bool
	DefaultWeight float64
	Vertices      []string
	Edges         []EdgeSpec
}

// EdgeSpec is one edge of a Spec.
type EdgeSpec struct {
	From, To string
	Weight   float64
}

// Build creates the graph described by s. Vertices are added first, in
// order, then edges, so dense indices follow file order.
func (s Spec) Build() (*core.Graph, error) {
	opts := []core.GraphOption{
		core.WithDirected(s.Directed),
		core.WithDefaultWeight(s.DefaultWeight),
	}
	if s.Loops {
		opts = append(opts, core.WithLoops())
	}
	if s.MultiEdges {
		opts = append(opts, core.WithMultiEdges())
	}
	g := core.NewGraph(opts...)
	for _, v := range s.Vertices {
		if _, err := g.AddVertex(v); err != nil {
			return nil, err
		}
	}
	for _, e := range s.Edges {
		if err := g.AddEdge(e.From, e.To, e.Weight); err != nil {
			return nil, err
		}
	}

	return g, nil
}

// LoadFile reads path and dispatches on its extension.
func LoadFile(path string) (*core.Graph, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("loader: %w", err)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return LoadYAML(bytes.NewReader(src))
	case ".hcl":
		return LoadHCL(path, src)
	default:
		return parseEdgeListNamed(path, string(src))
	}
}
