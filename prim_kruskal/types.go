// Package prim_kruskal defines configuration options, result types and
// sentinel errors for spanning-tree computation.
package prim_kruskal

import (
	"errors"
	"fmt"
	"strings"

	"github.com/bits-and-blooms/bitset"

	"github.com/katalvlaran/lvforest/core"
	"github.com/katalvlaran/lvforest/pqueue"
)

// ErrStartOutOfRange indicates a start node outside [0, NodeCount()).
var ErrStartOutOfRange = errors.New("prim_kruskal: start node out of range")

// ErrBadPolarity indicates an unknown polarity name.
var ErrBadPolarity = errors.New("prim_kruskal: unknown polarity")

// NoParent marks a root or unreached node in SpanningTree.Parent.
const NoParent = -1

// Polarity selects whether edge weights are minimised or maximised.
type Polarity uint8

const (
	// Minimum builds a minimum-weight spanning tree.
	Minimum Polarity = iota
	// Maximum builds a maximum-weight spanning tree.
	Maximum
)

// String returns "min" or "max".
func (p Polarity) String() string {
	if p == Maximum {
		return "max"
	}

	return "min"
}

// Opposite returns the other polarity.
func (p Polarity) Opposite() Polarity {
	if p == Maximum {
		return Minimum
	}

	return Maximum
}

// Better reports whether a strictly beats b under p.
func (p Polarity) Better(a, b float64) bool {
	if p == Maximum {
		return a > b
	}

	return a < b
}

// ParsePolarity accepts "min"/"minimum" and "max"/"maximum", case-insensitively.
func ParsePolarity(s string) (Polarity, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "min", "minimum":
		return Minimum, nil
	case "max", "maximum":
		return Maximum, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrBadPolarity, s)
	}
}

// Options configures Prim and Kruskal.
// Use DefaultOptions() to get the default setup (Minimum, Outgoing).
//
// Fields:
//
//	Polarity  - Minimum or Maximum.
//	Direction - relationships followed from each accepted node (Prim only).
type Options struct {
	Polarity  Polarity
	Direction core.Direction
}

// Option configures Options.
type Option func(*Options)

// DefaultOptions returns Options{Polarity: Minimum, Direction: core.Outgoing}.
func DefaultOptions() Options {
	return Options{Polarity: Minimum, Direction: core.Outgoing}
}

// WithPolarity sets the polarity.
func WithPolarity(p Polarity) Option {
	return func(o *Options) { o.Polarity = p }
}

// WithDirection sets the direction Prim expands along.
func WithDirection(d core.Direction) Option {
	return func(o *Options) { o.Direction = d }
}

// SpanningTree is the parent-pointer tree produced by Prim.
//
// Parent[i] is i's tree parent, or NoParent for the root and unreached
// nodes. Cost holds, per reached node, the weight of the edge that attached
// it; the root's cost is 0. Sum, Min and Max aggregate accepted tree edges
// only; when HasEdges() is false Min and Max are zero and meaningless.
//
// A SpanningTree is owned by the caller after Prim returns and is not
// modified further.
type SpanningTree struct {
	Start              int
	Polarity           Polarity
	Parent             []int
	Cost               *pqueue.Costs
	Sum                float64
	Min                float64
	Max                float64
	EffectiveNodeCount int  // nodes accepted into the tree, root included
	Canceled           bool // ctx ended the run early; tree is partial

	reached *bitset.BitSet
}

// HasEdges reports whether at least one edge was accepted.
func (t *SpanningTree) HasEdges() bool { return t.EffectiveNodeCount > 1 }

// Root returns the start node.
func (t *SpanningTree) Root() int { return t.Start }

// Reached reports whether node was accepted into the tree.
func (t *SpanningTree) Reached(node int) bool {
	return node >= 0 && t.reached.Test(uint(node))
}

// Weight returns the weight of the edge attaching node to its parent.
func (t *SpanningTree) Weight(node int) float64 { return t.Cost.Get(node) }

// EdgeCount returns the number of non-sentinel parent entries, which equals
// EffectiveNodeCount-1.
func (t *SpanningTree) EdgeCount() int {
	n := 0
	for _, p := range t.Parent {
		if p != NoParent {
			n++
		}
	}

	return n
}

// ForEach calls fn for every tree edge in ascending child order until fn
// returns false.
func (t *SpanningTree) ForEach(fn func(parent, child int, weight float64) bool) {
	for child, p := range t.Parent {
		if p == NoParent {
			continue
		}
		if !fn(p, child, t.Cost.Get(child)) {
			return
		}
	}
}

// PathToRoot returns the nodes from node up to the root, both included, or
// nil if node was not reached.
func (t *SpanningTree) PathToRoot(node int) []int {
	if !t.Reached(node) {
		return nil
	}
	path := []int{node}
	for p := t.Parent[node]; p != NoParent; p = t.Parent[p] {
		path = append(path, p)
	}

	return path
}

// accept folds one accepted edge weight into the aggregates.
func (t *SpanningTree) accept(w float64) {
	if t.EffectiveNodeCount == 2 { // first edge
		t.Min, t.Max = w, w
	} else {
		t.Min = min(t.Min, w)
		t.Max = max(t.Max, w)
	}
	t.Sum += w
}

// Edge is one spanning-forest edge.
type Edge struct {
	From, To int
	Weight   float64
}

// Forest is the result of Kruskal: a spanning forest over every node.
type Forest struct {
	Polarity Polarity
	Edges    []Edge
	Sum      float64
	Trees    int // connected components, isolated nodes included
	Canceled bool
}
