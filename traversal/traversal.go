// Package traversal implements one breadth-first/depth-first walk
// parameterised by a Predicate, an Aggregator and the end of the deque new
// nodes are inserted at.
package traversal

import (
	"context"
	"fmt"

	"github.com/bits-and-blooms/bitset"
	"github.com/emirpasic/gods/lists/doublylinkedlist"

	"github.com/katalvlaran/lvforest/core"
)

// item is one deque entry: a node, the node it was discovered from and the
// aggregated weight it was enqueued with.
type item struct {
	source int
	node   int
	weight float64
}

// walker encapsulates the mutable state of one traversal.
type walker struct {
	ctx     context.Context
	graph   core.View
	dir     core.Direction
	policy  Policy
	opts    Options
	prepend bool // DFS inserts at the front
	deque   *doublylinkedlist.List
	visited *bitset.BitSet
	res     *Result
}

// BFS walks g from source, dequeuing from the front and enqueuing at the back.
//
// Error Conditions:
//   - ErrSourceOutOfRange  : source not in [0, g.NodeCount()).
//   - core.ErrBadDirection : dir is not a valid Direction.
//   - ErrNilPredicate      : policy.Predicate is nil.
//
// Complexity: O(V + E) time, O(V) memory.
func BFS(ctx context.Context, g core.View, source int, dir core.Direction, policy Policy, opts ...Option) (*Result, error) {
	return traverse(ctx, g, source, dir, policy, false, opts)
}

// DFS is BFS with new nodes enqueued at the front, so the most recently
// discovered neighbor is explored next.
func DFS(ctx context.Context, g core.View, source int, dir core.Direction, policy Policy, opts ...Option) (*Result, error) {
	return traverse(ctx, g, source, dir, policy, true, opts)
}

func traverse(ctx context.Context, g core.View, source int, dir core.Direction, policy Policy, prepend bool, opts []Option) (*Result, error) {
	n := g.NodeCount()
	if source < 0 || source >= n {
		return nil, fmt.Errorf("%w: %d not in [0,%d)", ErrSourceOutOfRange, source, n)
	}
	if !dir.Valid() {
		return nil, fmt.Errorf("%w: %v", core.ErrBadDirection, dir)
	}
	if policy.Predicate == nil {
		return nil, ErrNilPredicate
	}
	if policy.Aggregator == nil {
		policy.Aggregator = zero
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	w := &walker{
		ctx:     ctx,
		graph:   g,
		dir:     dir,
		policy:  policy,
		opts:    o,
		prepend: prepend,
		deque:   doublylinkedlist.New(),
		visited: bitset.New(uint(n)),
		res:     &Result{},
	}
	w.enqueue(item{source: source, node: source})
	w.loop()
	w.materialise()

	return w.res, nil
}

// enqueue marks it.node visited and inserts it at the walker's end.
func (w *walker) enqueue(it item) {
	w.visited.Set(uint(it.node))
	if w.prepend {
		w.deque.Prepend(it)
	} else {
		w.deque.Add(it)
	}
}

// loop processes the deque until empty, Break, or cancellation.
func (w *walker) loop() {
	for !w.deque.Empty() {
		// cancellation check (once per dequeued node)
		if w.ctx.Err() != nil {
			w.res.Canceled = true
			return
		}
		it := w.dequeue()

		d := w.policy.Predicate(it.source, it.node, it.weight)
		switch d {
		case Continue:
			continue
		case Break:
			w.record(it, d)
			w.res.Broke = true
			return
		}
		w.record(it, d)
		w.expand(it)
	}
}

// dequeue removes the front item.
func (w *walker) dequeue() item {
	v, _ := w.deque.Get(0)
	w.deque.Remove(0)

	return v.(item)
}

func (w *walker) record(it item, d Decision) {
	w.res.Indices = append(w.res.Indices, it.node)
	w.res.Weights = append(w.res.Weights, it.weight)
	w.opts.OnVisit(it.node, it.weight, d)
}

// expand enqueues every unvisited, unfiltered neighbor of it.node with its
// aggregated weight. Enumeration stops early once ctx is done.
func (w *walker) expand(it item) {
	w.graph.ForEachRelationship(it.node, w.dir, func(s, t int, weight float64) bool {
		if !w.visited.Test(uint(t)) && w.opts.FilterNeighbor(s, t, weight) {
			w.enqueue(item{
				source: it.node,
				node:   t,
				weight: w.policy.Aggregator(s, t, it.weight),
			})
		}
		return w.ctx.Err() == nil
	})
}

// materialise translates recorded indices to original IDs.
func (w *walker) materialise() {
	w.res.Nodes = make([]string, len(w.res.Indices))
	for i, idx := range w.res.Indices {
		w.res.Nodes[i] = w.graph.ToOriginalNodeID(idx)
	}
}
