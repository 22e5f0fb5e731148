// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Read-only getters and diagnostics on top of Graph.
// Policy:
//   - No algorithms here.
//   - Every exported function documents complexity and locking.

package core

// Directed reports whether edges are one-way.
func (g *Graph) Directed() bool { return g.directed }

// Looped reports whether self-loops are permitted.
func (g *Graph) Looped() bool { return g.allowLoops }

// Multigraph reports whether parallel edges are permitted.
func (g *Graph) Multigraph() bool { return g.allowMulti }

// DefaultWeight returns the weight WeightOf reports for absent edges.
func (g *Graph) DefaultWeight() float64 { return g.defaultWeight }

// GraphStats is a point-in-time summary of a Graph.
type GraphStats struct {
	Directed      bool
	AllowsLoops   bool
	AllowsMulti   bool
	VertexCount   int
	EdgeCount     int
	IsolatedCount int     // vertices with no relationships in any direction
	MinWeight     float64 // zero when EdgeCount == 0
	MaxWeight     float64 // zero when EdgeCount == 0
}

// Stats returns a consistent snapshot of g's shape.
//
// Complexity: O(V+E). Concurrency: single read lock for the whole scan.
func (g *Graph) Stats() GraphStats {
	g.mu.RLock()
	defer g.mu.RUnlock()

	s := GraphStats{
		Directed:    g.directed,
		AllowsLoops: g.allowLoops,
		AllowsMulti: g.allowMulti,
		VertexCount: len(g.ids),
		EdgeCount:   g.edgeCount,
	}
	first := true
	for i := range g.ids {
		if len(g.out[i]) == 0 && len(g.in[i]) == 0 {
			s.IsolatedCount++
		}
		for _, r := range g.out[i] {
			if first {
				s.MinWeight, s.MaxWeight = r.weight, r.weight
				first = false
				continue
			}
			if r.weight < s.MinWeight {
				s.MinWeight = r.weight
			}
			if r.weight > s.MaxWeight {
				s.MaxWeight = r.weight
			}
		}
	}

	return s
}
