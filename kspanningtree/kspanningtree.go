// Package kspanningtree splits the component reachable from a start node
// into up to k connected parts by cutting the most extreme edges of its
// spanning tree.
//
// The tree is built by prim_kruskal.Prim in the requested polarity. Every
// tree edge is then queued in the opposite polarity: a minimum tree gives up
// its heaviest edges first, a maximum tree its lightest. The first k-1 edges
// popped are cut and the surviving parent links are folded into a
// disjointset.DisjointSet.
//
// Fewer than k components is a normal outcome when the tree has fewer than
// k-1 edges.
package kspanningtree

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/emirpasic/gods/queues/priorityqueue"

	"github.com/katalvlaran/lvforest/core"
	"github.com/katalvlaran/lvforest/disjointset"
	"github.com/katalvlaran/lvforest/prim_kruskal"
)

// ErrInvalidK indicates k < 1.
var ErrInvalidK = errors.New("kspanningtree: k must be at least 1")

// Cut is one tree edge removed from the partition.
type Cut struct {
	Parent int
	Child  int
	Weight float64
}

// Result is the outcome of Compute.
type Result struct {
	Tree     *prim_kruskal.SpanningTree // uncut tree
	Parent   []int                      // Tree.Parent with cut links set to NoParent
	Sets     *disjointset.DisjointSet
	Cuts     []Cut // in the order they were cut
	K        int
	Canceled bool
}

// Partition returns the representative of node's component.
func (r *Result) Partition(node int) (int, error) { return r.Sets.Find(node) }

// Components returns the components that contain reached nodes, each sorted,
// ordered by smallest member.
func (r *Result) Components() [][]int {
	return r.Sets.SetsOf(r.Tree.Reached)
}

// Compute builds the spanning tree of g from start and cuts it into at most
// k components. opts are passed to prim_kruskal.Prim; WithPolarity selects
// the tree polarity and, through its opposite, the cut order.
//
// Error Conditions:
//   - ErrInvalidK, before any work, when k < 1.
//   - Any error from prim_kruskal.Prim.
//
// Cancellation during the tree build yields a partition of the partial tree.
// ctx is also polled once per cut.
//
// Complexity: O((V + E) log V).
func Compute(ctx context.Context, g core.View, start, k int, opts ...prim_kruskal.Option) (*Result, error) {
	if k < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidK, k)
	}
	o := prim_kruskal.DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	tree, err := prim_kruskal.Prim(ctx, g, start, opts...)
	if err != nil {
		return nil, err
	}
	res := &Result{
		Tree:     tree,
		Parent:   slices.Clone(tree.Parent),
		K:        k,
		Canceled: tree.Canceled,
	}

	cuts := priorityqueue.NewWith(cutOrder(o.Polarity.Opposite()))
	tree.ForEach(func(p, c int, w float64) bool {
		cuts.Enqueue(Cut{Parent: p, Child: c, Weight: w})
		return true
	})
	for len(res.Cuts) < k-1 && !cuts.Empty() {
		if ctx.Err() != nil {
			res.Canceled = true
			break
		}
		v, _ := cuts.Dequeue()
		cut := v.(Cut)
		res.Parent[cut.Child] = prim_kruskal.NoParent
		res.Cuts = append(res.Cuts, cut)
	}

	res.Sets = disjointset.New(len(res.Parent))
	for child, p := range res.Parent {
		if p == prim_kruskal.NoParent {
			continue
		}
		if err = res.Sets.Union(p, child); err != nil {
			return nil, err
		}
	}

	return res, nil
}

// cutOrder returns a gods comparator that puts the best edge under p first,
// breaking ties on the lower child index.
func cutOrder(p prim_kruskal.Polarity) func(a, b interface{}) int {
	return func(a, b interface{}) int {
		x, y := a.(Cut), b.(Cut)
		switch {
		case p.Better(x.Weight, y.Weight):
			return -1
		case p.Better(y.Weight, x.Weight):
			return 1
		default:
			return cmp.Compare(x.Child, y.Child)
		}
	}
}
