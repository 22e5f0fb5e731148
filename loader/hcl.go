package loader

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"

	"github.com/katalvlaran/lvforest/core"
)

// hclFile mirrors:
//
//	directed       = true
//	default_weight = 0
//	vertex "lonely" {}
//	edge "a" "b" { weight = 3 }
//
// Expressions may reference the variable unit (1) and call no functions.
type hclFile struct {
	Directed      bool        `hcl:"directed,optional"`
	Loops         bool        `hcl:"loops,optional"`
	MultiEdges    bool        `hcl:"multi_edges,optional"`
	DefaultWeight float64     `hcl:"default_weight,optional"`
	Vertices      []hclVertex `hcl:"vertex,block"`
	Edges         []hclEdge   `hcl:"edge,block"`
}

type hclVertex struct {
	ID string `hcl:"id,label"`
}

type hclEdge struct {
	From   string    `hcl:"from,label"`
	To     string    `hcl:"to,label"`
	Weight cty.Value `hcl:"weight,optional"`
}

var hclEval = &hcl.EvalContext{
	Variables: map[string]cty.Value{"unit": cty.NumberIntVal(1)},
}

// LoadHCL decodes an HCL graph document. filename only labels diagnostics.
func LoadHCL(filename string, src []byte) (*core.Graph, error) {
	spec, err := ParseHCL(filename, src)
	if err != nil {
		return nil, err
	}

	return spec.Build()
}

// ParseHCL decodes an HCL graph document into a Spec.
func ParseHCL(filename string, src []byte) (Spec, error) {
	file, diags := hclparse.NewParser().ParseHCL(src, filename)
	if diags.HasErrors() {
		return Spec{}, fmt.Errorf("%w: hcl: %s", ErrSyntax, diags.Error())
	}
	var f hclFile
	if diags = gohcl.DecodeBody(file.Body, hclEval, &f); diags.HasErrors() {
		return Spec{}, fmt.Errorf("%w: hcl: %s", ErrSyntax, diags.Error())
	}

	s := Spec{
		Directed:      f.Directed,
		Loops:         f.Loops,
		MultiEdges:    f.MultiEdges,
		DefaultWeight: f.DefaultWeight,
	}
	for _, v := range f.Vertices {
		s.Vertices = append(s.Vertices, v.ID)
	}
	for _, e := range f.Edges {
		w, err := ctyWeight(e.Weight)
		if err != nil {
			return Spec{}, fmt.Errorf("%w: hcl: edge %q→%q: %v", ErrSyntax, e.From, e.To, err)
		}
		s.Edges = append(s.Edges, EdgeSpec{From: e.From, To: e.To, Weight: w})
	}

	return s, nil
}

// ctyWeight converts an optional attribute value to float64; null means 1.
func ctyWeight(v cty.Value) (float64, error) {
	if v.IsNull() {
		return 1, nil
	}
	n, err := convert.Convert(v, cty.Number)
	if err != nil {
		return 0, err
	}
	if !n.IsKnown() {
		return 0, fmt.Errorf("weight is unknown")
	}
	f, _ := n.AsBigFloat().Float64()

	return f, nil
}
