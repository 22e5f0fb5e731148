package loader

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvforest/core"
)

// yamlFile mirrors:
//
//	directed: false
//	loops: false
//	multi_edges: false
//	default_weight: 0
//	vertices: [a, b]
//	edges:
//	  - {from: a, to: b, weight: 3}
type yamlFile struct {
	Directed      bool       `yaml:"directed"`
	Loops         bool       `yaml:"loops"`
	MultiEdges    bool       `yaml:"multi_edges"`
	DefaultWeight float64    `yaml:"default_weight"`
	Vertices      []string   `yaml:"vertices"`
	Edges         []yamlEdge `yaml:"edges"`
}

type yamlEdge struct {
	From   string   `yaml:"from"`
	To     string   `yaml:"to"`
	Weight *float64 `yaml:"weight"` // absent means 1
}

// LoadYAML decodes a YAML graph document. Unknown keys are rejected.
func LoadYAML(r io.Reader) (*core.Graph, error) {
	spec, err := ParseYAML(r)
	if err != nil {
		return nil, err
	}

	return spec.Build()
}

// ParseYAML decodes a YAML graph document into a Spec.
func ParseYAML(r io.Reader) (Spec, error) {
	var f yamlFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		return Spec{}, fmt.Errorf("%w: yaml: %v", ErrSyntax, err)
	}
	s := Spec{
		Directed:      f.Directed,
		Loops:         f.Loops,
		MultiEdges:    f.MultiEdges,
		DefaultWeight: f.DefaultWeight,
		Vertices:      f.Vertices,
	}
	for i, e := range f.Edges {
		if e.From == "" || e.To == "" {
			return Spec{}, fmt.Errorf("%w: yaml: edge %d needs from and to", ErrSyntax, i)
		}
		w := 1.0
		if e.Weight != nil {
			w = *e.Weight
		}
		s.Edges = append(s.Edges, EdgeSpec{From: e.From, To: e.To, Weight: w})
	}

	return s, nil
}
