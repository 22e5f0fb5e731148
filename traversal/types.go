// Package traversal provides decisions, policies, options and sentinel
// errors for predicate-driven BFS/DFS over a core.View.
package traversal

import (
	"errors"
	"fmt"
)

// Sentinel errors for traversal input validation.
var (
	// ErrSourceOutOfRange is returned when the source index is not in [0, NodeCount()).
	ErrSourceOutOfRange = errors.New("traversal: source node out of range")

	// ErrNilPredicate is returned when a Policy has no Predicate.
	ErrNilPredicate = errors.New("traversal: nil predicate")
)

// Decision is a predicate's verdict on a dequeued node.
type Decision uint8

const (
	// Follow records the node and expands its unvisited neighbors.
	Follow Decision = iota
	// Break records the node and ends the traversal.
	Break
	// Continue drops the node: not recorded, not expanded.
	Continue
)

// String returns "follow", "break" or "continue".
func (d Decision) String() string {
	switch d {
	case Follow:
		return "follow"
	case Break:
		return "break"
	case Continue:
		return "continue"
	default:
		return fmt.Sprintf("decision(%d)", uint8(d))
	}
}

// Predicate decides what happens to current when it is dequeued. source is
// the node current was discovered from (current itself for the traversal
// source) and weight the aggregated weight current was enqueued with.
type Predicate func(source, current int, weight float64) Decision

// Aggregator computes the weight a newly discovered node is enqueued with.
// source is the node being expanded, current the discovered neighbor and
// weight the aggregated weight of source.
type Aggregator func(source, current int, weight float64) float64

// Result is the materialised outcome of one traversal.
type Result struct {
	Indices  []int     // recorded nodes in visitation order
	Nodes    []string  // original IDs of Indices
	Weights  []float64 // aggregated weight each recorded node was enqueued with
	Broke    bool      // a Break decision ended the walk
	Canceled bool      // ctx ended the walk early
}

// Last returns the last recorded node and true, or -1 and false when nothing
// was recorded.
func (r *Result) Last() (int, bool) {
	if len(r.Indices) == 0 {
		return -1, false
	}

	return r.Indices[len(r.Indices)-1], true
}

// Options holds hooks for a traversal.
type Options struct {
	// OnVisit is called for every recorded node, after the predicate.
	OnVisit func(node int, weight float64, d Decision)

	// FilterNeighbor can skip a relationship by returning false. A skipped
	// neighbor is not marked visited and may still be reached another way.
	FilterNeighbor func(source, target int, weight float64) bool
}

// Option configures Options.
type Option func(*Options)

// DefaultOptions returns Options with no-op hooks and no filtering.
func DefaultOptions() Options {
	return Options{
		OnVisit:        func(int, float64, Decision) {},
		FilterNeighbor: func(int, int, float64) bool { return true },
	}
}

// WithOnVisit registers fn as the visit hook. A nil fn is ignored.
func WithOnVisit(fn func(node int, weight float64, d Decision)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithFilterNeighbor registers fn as the relationship filter. A nil fn is ignored.
func WithFilterNeighbor(fn func(source, target int, weight float64) bool) Option {
	return func(o *Options) {
		if fn != nil {
			o.FilterNeighbor = fn
		}
	}
}
