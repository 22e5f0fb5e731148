// Package core provides the dense-index, thread-safe in-memory Graph that
// every lvforest kernel reads, together with the View interface the kernels
// are written against.
//
// Vertices are named by non-empty strings and addressed internally by a dense
// index in [0, NodeCount()) assigned in insertion order. Translation between
// the two happens only at this boundary (ToMappedNodeID / ToOriginalNodeID);
// spanning-tree, partitioning and traversal code sees indices only.
//
// Configuration Options (GraphOption):
//
//	– WithDirected(directed bool)
//	    Directed graphs keep outgoing and incoming lists apart.
//	    Undirected graphs mirror each edge; every Direction sees the same list.
//
//	– WithMultiEdges()
//	    Allows parallel edges. Otherwise a second AddEdge(from,to) → ErrMultiEdgeNotAllowed.
//
//	– WithLoops()
//	    Permits self-loops. Otherwise AddEdge(v,v) → ErrLoopNotAllowed.
//
//	– WithDefaultWeight(w float64)
//	    Weight reported by WeightOf when no edge exists.
//
// Core Methods:
//
//	AddVertex(id string) (int, error)                 // O(1) amortized
//	AddEdge(from, to string, weight float64) error    // O(deg(from))
//	HasVertex / HasEdge                               // O(1) / O(deg)
//	NodeCount / EdgeCount / Vertices / Stats          // O(1) / O(1) / O(V) / O(V+E)
//
//	// View
//	ForEachRelationship(node, dir, visit)             // O(deg(node)), early stop
//	WeightOf(source, target int) float64              // O(deg(source))
//	ToMappedNodeID / ToOriginalNodeID                 // O(1)
//
// Concurrency:
//
// A single sync.RWMutex guards the Graph. Building takes the write lock;
// every View method takes the read lock. ForEachRelationship releases the
// lock before calling the visitor, so visitors may call WeightOf.
//
// Views:
//
// Unweighted(v) presents every relationship with weight 1; Reversed(v)
// swaps Outgoing and Incoming.
package core
