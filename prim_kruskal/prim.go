// Package prim_kruskal provides Prim's single-source spanning tree in both
// polarities, driven by an indexed priority queue with decrease-key.
package prim_kruskal

import (
	"context"
	"fmt"

	"github.com/bits-and-blooms/bitset"

	"github.com/katalvlaran/lvforest/core"
	"github.com/katalvlaran/lvforest/pqueue"
)

// Prim grows a spanning tree from start over the relationships of
// opts.Direction, keeping for every frontier node the cheapest (Minimum) or
// costliest (Maximum) edge seen so far.
//
// Error Conditions:
//   - ErrStartOutOfRange : start is not in [0, g.NodeCount()).
//   - core.ErrBadDirection: opts.Direction is invalid.
//
// Steps:
//  1. Validate start and direction before allocating anything.
//  2. Seed the queue with start at cost 0.
//  3. While the queue is non-empty and ctx is live:
//     a. Pop the best frontier node; skip it if already accepted.
//     b. Accept it; fold the cost of its attaching edge into Sum/Min/Max.
//     c. For every relationship to an unaccepted neighbor other than itself,
//     if the weight beats the neighbor's recorded cost, record the edge as
//     its parent and decrease-key it in the queue.
//  4. On cancellation, drop parent links of nodes never accepted and set
//     Canceled. Cancellation is not an error.
//
// Parallel edges resolve to the best weight by polarity; self-loops are
// ignored. A start with no relationships yields a one-node tree.
//
// Complexity: O((V + E) log V) time, O(V) memory.
func Prim(ctx context.Context, g core.View, start int, opts ...Option) (*SpanningTree, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if !o.Direction.Valid() {
		return nil, fmt.Errorf("%w: %v", core.ErrBadDirection, o.Direction)
	}
	n := g.NodeCount()
	if start < 0 || start >= n {
		return nil, fmt.Errorf("%w: %d not in [0,%d)", ErrStartOutOfRange, start, n)
	}

	var (
		costs *pqueue.Costs
		queue *pqueue.Queue
	)
	if o.Polarity == Maximum {
		costs = pqueue.NewMaxCosts(n)
		queue = pqueue.NewMax(costs)
	} else {
		costs = pqueue.NewMinCosts(n)
		queue = pqueue.NewMin(costs)
	}

	t := &SpanningTree{
		Start:    start,
		Polarity: o.Polarity,
		Parent:   make([]int, n),
		Cost:     costs,
		reached:  bitset.New(uint(n)),
	}
	for i := range t.Parent {
		t.Parent[i] = NoParent
	}

	queue.Add(start, 0)
	for !queue.IsEmpty() {
		if ctx.Err() != nil {
			t.Canceled = true
			break
		}
		node, _ := queue.Pop() // non-empty checked above
		if t.reached.Test(uint(node)) {
			continue
		}
		t.reached.Set(uint(node))
		t.EffectiveNodeCount++
		if node != start {
			t.accept(costs.Get(node))
		}

		g.ForEachRelationship(node, o.Direction, func(_, other int, w float64) bool {
			if other == node || t.reached.Test(uint(other)) {
				return true
			}
			if o.Polarity.Better(w, costs.Get(other)) {
				t.Parent[other] = node
				queue.Add(other, w)
			}
			return true
		})
	}

	if t.Canceled {
		// frontier nodes relaxed but never accepted are not part of the tree
		for i, p := range t.Parent {
			if p != NoParent && !t.reached.Test(uint(i)) {
				t.Parent[i] = NoParent
			}
		}
	}

	return t, nil
}

// MinimumSpanningTree is Prim with Minimum polarity.
func MinimumSpanningTree(ctx context.Context, g core.View, start int, opts ...Option) (*SpanningTree, error) {
	return Prim(ctx, g, start, append(opts, WithPolarity(Minimum))...)
}

// MaximumSpanningTree is Prim with Maximum polarity.
func MaximumSpanningTree(ctx context.Context, g core.View, start int, opts ...Option) (*SpanningTree, error) {
	return Prim(ctx, g, start, append(opts, WithPolarity(Maximum))...)
}
