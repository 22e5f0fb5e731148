// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvforest/core"
)

// Constructor adds one topology to g. Constructors validate their
// parameters before touching g and return sentinel errors, never panic.
type Constructor func(g *core.Graph, cfg config) error

// BuildGraph creates a graph with gopts and applies cons in order. The
// first constructor error is returned wrapped; the partial graph is dropped.
func BuildGraph(gopts []core.GraphOption, opts []Option, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph(gopts...)
	cfg := newConfig(opts...)
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// addVertices adds cfg.idFn(0..n-1) and returns the IDs.
func addVertices(method string, g *core.Graph, cfg config, n int) ([]string, error) {
	ids := make([]string, n)
	for i := range ids {
		ids[i] = cfg.idFn(i)
		if _, err := g.AddVertex(ids[i]); err != nil {
			return nil, fmt.Errorf("%s: AddVertex(%s): %w", method, ids[i], err)
		}
	}

	return ids, nil
}

func addEdge(method string, g *core.Graph, cfg config, u, v string) error {
	w := cfg.weight()
	if err := g.AddEdge(u, v, w); err != nil {
		return fmt.Errorf("%s: AddEdge(%s→%s, w=%g): %w", method, u, v, w, err)
	}

	return nil
}

func atLeast(method string, n, lo int) error {
	if n < lo {
		return fmt.Errorf("%s: n=%d < min=%d: %w", method, n, lo, ErrTooFewVertices)
	}

	return nil
}
