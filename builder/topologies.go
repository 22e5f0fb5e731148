// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/lvforest/core"
)

// Path builds P_n: edges i→i+1 for i in [0, n-1). n ≥ 2.
func Path(n int) Constructor {
	return func(g *core.Graph, cfg config) error {
		const method = "Path"
		if err := atLeast(method, n, 2); err != nil {
			return err
		}
		ids, err := addVertices(method, g, cfg, n)
		if err != nil {
			return err
		}
		for i := 0; i+1 < n; i++ {
			if err := addEdge(method, g, cfg, ids[i], ids[i+1]); err != nil {
				return err
			}
		}

		return nil
	}
}

// Cycle builds C_n: Path(n) plus n-1→0. n ≥ 3.
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg config) error {
		const method = "Cycle"
		if err := atLeast(method, n, 3); err != nil {
			return err
		}
		ids, err := addVertices(method, g, cfg, n)
		if err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			if err := addEdge(method, g, cfg, ids[i], ids[(i+1)%n]); err != nil {
				return err
			}
		}

		return nil
	}
}

// Star builds a center (index 0) joined to n-1 leaves. n ≥ 2.
func Star(n int) Constructor {
	return func(g *core.Graph, cfg config) error {
		const method = "Star"
		if err := atLeast(method, n, 2); err != nil {
			return err
		}
		ids, err := addVertices(method, g, cfg, n)
		if err != nil {
			return err
		}
		for i := 1; i < n; i++ {
			if err := addEdge(method, g, cfg, ids[0], ids[i]); err != nil {
				return err
			}
		}

		return nil
	}
}

// Wheel builds a hub (index 0) joined to every vertex of a ring over
// indices 1..n-1. Ring edges come first, then spokes. n ≥ 4.
func Wheel(n int) Constructor {
	return func(g *core.Graph, cfg config) error {
		const method = "Wheel"
		if err := atLeast(method, n, 4); err != nil {
			return err
		}
		ids, err := addVertices(method, g, cfg, n)
		if err != nil {
			return err
		}
		ring := n - 1
		for i := 0; i < ring; i++ {
			if err := addEdge(method, g, cfg, ids[1+i], ids[1+(i+1)%ring]); err != nil {
				return err
			}
		}
		for i := 1; i < n; i++ {
			if err := addEdge(method, g, cfg, ids[0], ids[i]); err != nil {
				return err
			}
		}

		return nil
	}
}

// Complete builds K_n. Directed graphs get both i→j and j→i; undirected
// ones one edge per pair, i<j. n ≥ 1.
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg config) error {
		const method = "Complete"
		if err := atLeast(method, n, 1); err != nil {
			return err
		}
		ids, err := addVertices(method, g, cfg, n)
		if err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err := addEdge(method, g, cfg, ids[i], ids[j]); err != nil {
					return err
				}
				if g.Directed() {
					if err := addEdge(method, g, cfg, ids[j], ids[i]); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}

// GridID names the grid vertex at row r, column c.
func GridID(r, c int) string { return strconv.Itoa(r) + "," + strconv.Itoa(c) }

// Grid builds a rows×cols 4-neighbour lattice with IDs from GridID, in
// row-major order. Each cell links right, then down. rows, cols ≥ 1.
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph, cfg config) error {
		const method = "Grid"
		if rows < 1 || cols < 1 {
			return fmt.Errorf("%s: %dx%d: %w", method, rows, cols, ErrTooFewVertices)
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if _, err := g.AddVertex(GridID(r, c)); err != nil {
					return fmt.Errorf("%s: AddVertex: %w", method, err)
				}
			}
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if c+1 < cols {
					if err := addEdge(method, g, cfg, GridID(r, c), GridID(r, c+1)); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := addEdge(method, g, cfg, GridID(r, c), GridID(r+1, c)); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}

// RandomSparse includes each admissible pair independently with
// probability p: unordered pairs i<j when undirected, ordered pairs (and
// self-loops if the graph allows them) when directed. Needs an rng unless
// p is 0 or 1. n ≥ 1.
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph, cfg config) error {
		const method = "RandomSparse"
		if err := atLeast(method, n, 1); err != nil {
			return err
		}
		if p < 0 || p > 1 {
			return fmt.Errorf("%s: p=%g not in [0,1]: %w", method, p, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > 0 && p < 1 {
			return fmt.Errorf("%s: %w", method, ErrNeedRandSource)
		}
		ids, err := addVertices(method, g, cfg, n)
		if err != nil {
			return err
		}
		take := func() bool {
			if cfg.rng == nil {
				return p == 1
			}
			return cfg.rng.Float64() < p
		}
		for i := 0; i < n; i++ {
			j0 := i + 1
			if g.Directed() {
				j0 = 0
			}
			for j := j0; j < n; j++ {
				if i == j && !g.Looped() {
					continue
				}
				if !take() {
					continue
				}
				if err := addEdge(method, g, cfg, ids[i], ids[j]); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

// RandomTree attaches each vertex i ≥ 1 to a uniformly chosen earlier
// vertex, giving a connected tree. Needs an rng. n ≥ 1.
func RandomTree(n int) Constructor {
	return func(g *core.Graph, cfg config) error {
		const method = "RandomTree"
		if err := atLeast(method, n, 1); err != nil {
			return err
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", method, ErrNeedRandSource)
		}
		ids, err := addVertices(method, g, cfg, n)
		if err != nil {
			return err
		}
		for i := 1; i < n; i++ {
			if err := addEdge(method, g, cfg, ids[cfg.rng.Intn(i)], ids[i]); err != nil {
				return err
			}
		}

		return nil
	}
}
