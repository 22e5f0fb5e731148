package loader

import (
	"fmt"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/katalvlaran/lvforest/core"
)

// Edge-list text, one statement per line:
//
//	# comment
//	a -> b : 2.5     directed edge
//	a -- b : 1       undirected edge
//	c                lone vertex
//	"x y" -- z       quoted names
//
// A missing weight means 1. One file uses either "->" or "--", not both.

type edgeListAST struct {
	Stmts []*stmtAST `parser:"@@*"`
}

type stmtAST struct {
	From string   `parser:"@(Ident | String | Number)"`
	Edge *edgeAST `parser:"@@?"`
}

type edgeAST struct {
	Op     string   `parser:"@Arrow"`
	To     string   `parser:"@(Ident | String | Number)"`
	Weight *float64 `parser:"( \":\" @Number )?"`
}

var edgeListLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Comment", Pattern: `#[^\n]*`},
	{Name: "Arrow", Pattern: `->|--`},
	{Name: "Number", Pattern: `[-+]?(\d+\.?\d*|\.\d+)([eE][-+]?\d+)?`},
	{Name: "String", Pattern: `"(\\.|[^"\\])*"`},
	{Name: "Ident", Pattern: `[A-Za-z_][\w.]*`},
	{Name: "Punct", Pattern: `:`},
	{Name: "whitespace", Pattern: `\s+`},
})

var edgeListParser = participle.MustBuild[edgeListAST](
	participle.Lexer(edgeListLexer),
	participle.Elide("Comment", "whitespace"),
	participle.Unquote("String"),
)

// ParseEdgeList parses edge-list text into a graph.
func ParseEdgeList(src string) (*core.Graph, error) {
	return parseEdgeListNamed("", src)
}

func parseEdgeListNamed(filename, src string) (*core.Graph, error) {
	spec, err := ParseEdgeListSpec(filename, src)
	if err != nil {
		return nil, err
	}

	return spec.Build()
}

// ParseEdgeListSpec parses edge-list text into a Spec. filename only labels
// error positions.
func ParseEdgeListSpec(filename, src string) (Spec, error) {
	ast, err := edgeListParser.ParseString(filename, src)
	if err != nil {
		return Spec{}, fmt.Errorf("%w: %v", ErrSyntax, err)
	}
	var s Spec
	op := ""
	for _, st := range ast.Stmts {
		if st.Edge == nil {
			s.Vertices = append(s.Vertices, st.From)
			continue
		}
		if op != "" && op != st.Edge.Op {
			return Spec{}, fmt.Errorf("%w: %s -%s- %s", ErrMixedEdges, st.From, st.Edge.Op, st.Edge.To)
		}
		op = st.Edge.Op
		w := 1.0
		if st.Edge.Weight != nil {
			w = *st.Edge.Weight
		}
		s.Edges = append(s.Edges, EdgeSpec{From: st.From, To: st.Edge.To, Weight: w})
	}
	s.Directed = op == "->"

	return s, nil
}

