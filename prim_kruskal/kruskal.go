// Package prim_kruskal provides Kruskal's spanning forest, used to
// cross-check Prim and to span graphs with several components at once.
package prim_kruskal

import (
	"context"
	"sort"

	"github.com/katalvlaran/lvforest/core"
	"github.com/katalvlaran/lvforest/disjointset"
)

// Kruskal computes a minimum (or maximum) spanning forest over every node of
// g, treating each relationship as undirected.
//
// Steps:
//  1. Collect outgoing relationships of every node, skipping self-loops.
//  2. Stable-sort by weight per polarity; ties keep enumeration order.
//  3. Walk the sorted edges, keeping those that join two different sets of
//     a disjoint-set forest.
//  4. ctx is polled once per edge; on cancellation the partial forest is
//     returned with Canceled set.
//
// Only opts.Polarity is consulted.
//
// Complexity: O(E log E) time, O(V + E) memory.
func Kruskal(ctx context.Context, g core.View, opts ...Option) (*Forest, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	n := g.NodeCount()

	var edges []Edge
	for u := 0; u < n; u++ {
		g.ForEachRelationship(u, core.Outgoing, func(_, v int, w float64) bool {
			if u != v {
				edges = append(edges, Edge{From: u, To: v, Weight: w})
			}
			return true
		})
	}
	sort.SliceStable(edges, func(i, j int) bool {
		return o.Polarity.Better(edges[i].Weight, edges[j].Weight)
	})

	f := &Forest{Polarity: o.Polarity, Edges: make([]Edge, 0, max(n-1, 0))}
	sets := disjointset.New(n)
	for _, e := range edges {
		if len(f.Edges) == n-1 {
			break
		}
		if ctx.Err() != nil {
			f.Canceled = true
			break
		}
		same, err := sets.Connected(e.From, e.To)
		if err != nil {
			return nil, err
		}
		if same {
			continue
		}
		if err = sets.Union(e.From, e.To); err != nil {
			return nil, err
		}
		f.Edges = append(f.Edges, e)
		f.Sum += e.Weight
	}
	f.Trees = sets.Count()

	return f, nil
}
