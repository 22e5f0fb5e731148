// File: types.go
// Role: Graph, View contract, directions and sentinel errors.

package core

import (
	"errors"
	"fmt"
	"strings"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided vertex ID is empty.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted when multi-edges are disabled.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")

	// ErrBadDirection indicates a malformed or unknown traversal direction.
	ErrBadDirection = errors.New("core: malformed direction")

	// ErrNodeOutOfRange indicates a dense node index outside [0, NodeCount()).
	ErrNodeOutOfRange = errors.New("core: node index out of range")
)

// Direction selects which relationships of a node are enumerated.
type Direction uint8

const (
	// Outgoing enumerates relationships that start at the node.
	Outgoing Direction = iota + 1
	// Incoming enumerates relationships that end at the node.
	Incoming
	// Both enumerates outgoing relationships followed by incoming ones.
	Both
)

// String returns the canonical lower-case name of d.
func (d Direction) String() string {
	switch d {
	case Outgoing:
		return "outgoing"
	case Incoming:
		return "incoming"
	case Both:
		return "both"
	default:
		return fmt.Sprintf("direction(%d)", uint8(d))
	}
}

// Valid reports whether d is one of Outgoing, Incoming or Both.
func (d Direction) Valid() bool {
	return d >= Outgoing && d <= Both
}

// ParseDirection converts a user-supplied name into a Direction.
// Accepted (case-insensitive): "out", "outgoing", ">", "in", "incoming", "<",
// "both", "<>". Anything else yields ErrBadDirection.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "out", "outgoing", ">":
		return Outgoing, nil
	case "in", "incoming", "<":
		return Incoming, nil
	case "both", "<>":
		return Both, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrBadDirection, s)
	}
}

// RelationshipVisitor receives one relationship per call. source is always
// the node being enumerated and target the node on the other end, whatever
// the direction. Returning false stops the enumeration early.
type RelationshipVisitor func(source, target int, weight float64) bool

// View is the read-only graph surface every kernel consumes.
//
// Implementations must be safe for concurrent readers. Passing a node index
// outside [0, NodeCount()) to ForEachRelationship, WeightOf or
// ToOriginalNodeID is a programming error and panics.
type View interface {
	// NodeCount returns the size of the dense index space.
	NodeCount() int

	// ForEachRelationship calls visit for every relationship of node in dir
	// until visit returns false.
	ForEachRelationship(node int, dir Direction, visit RelationshipVisitor)

	// WeightOf returns the weight of the relationship source→target, or the
	// view's default weight when no such relationship exists.
	WeightOf(source, target int) float64

	// ToMappedNodeID translates an external ID into its dense index.
	ToMappedNodeID(id string) (int, bool)

	// ToOriginalNodeID translates a dense index back to its external ID.
	ToOriginalNodeID(node int) string
}

// relationship is one adjacency entry: the node on the other end and the weight.
type relationship struct {
	other  int
	weight float64
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithDirected sets whether edges are one-way (true) or mirrored (false).
func WithDirected(directed bool) GraphOption {
	return func(g *Graph) { g.directed = directed }
}

// WithMultiEdges permits parallel edges between the same vertices.
func WithMultiEdges() GraphOption {
	return func(g *Graph) { g.allowMulti = true }
}

// WithLoops permits self-loops (edges from a vertex to itself).
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// WithDefaultWeight sets the weight WeightOf reports for absent edges.
// The default is 0.
func WithDefaultWeight(w float64) GraphOption {
	return func(g *Graph) { g.defaultWeight = w }
}

// Graph is an adjacency-list graph over a dense index space.
//
// Vertices receive indices in insertion order. Undirected graphs mirror each
// edge into both endpoints' outgoing lists and keep no separate incoming
// lists, so every direction enumerates the same neighbors. Directed graphs
// keep outgoing and incoming lists apart.
//
// mu guards all fields. Adjacency slices are append-only, which lets
// ForEachRelationship iterate a snapshot without holding the lock.
type Graph struct {
	mu sync.RWMutex

	// Configuration flags
	directed      bool    // one-way edges
	allowMulti    bool    // allow parallel edges
	allowLoops    bool    // allow self-loops
	defaultWeight float64 // WeightOf fallback

	// Storage
	ids       []string         // dense index → external ID
	index     map[string]int   // external ID → dense index
	out       [][]relationship // per-node outgoing (or all, if undirected)
	in        [][]relationship // per-node incoming; nil slices when undirected
	edgeCount int              // logical edges, mirrors not counted
}

// NewGraph creates an empty Graph with the given options.
// By default, Graph is undirected, with no loops and no multi-edges.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		index: make(map[string]int),
	}
	// Apply options
	for _, opt := range opts {
		opt(g)
	}

	return g
}
