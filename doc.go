// Package lvforest is an in-memory toolkit for spanning trees, K-way
// partitions and bounded traversals over weighted graphs.
//
// What is in the box?
//
//	• Core primitives: a thread-safe, dense-index Graph and the read-only
//	  View every kernel consumes
//	• Union-find with path splitting and union by size
//	• An indexed min/max priority queue with in-place decrease-key
//	• Prim (minimum and maximum) with sum/min/max aggregates, plus Kruskal
//	• K-spanning-tree partitioning: cut the k-1 most extreme tree edges
//	• BFS/DFS driven by a predicate and a weight aggregator, with target,
//	  depth, cost and CEL-expression bounds
//
// Layout:
//
//	core/          - Graph, View, Direction, id mapping
//	disjointset/   - union-find
//	pqueue/        - shared cost map + indexed priority queue
//	prim_kruskal/  - spanning trees and forests
//	kspanningtree/ - K-way partitioner
//	traversal/     - BFS/DFS engine and preset policies
//	  celpolicy/   - CEL-compiled predicates and aggregators
//	builder/       - deterministic graph fixtures
//	loader/        - YAML, HCL and edge-list graph files
//	store/         - badger-backed result store
//	runner/        - timed, traced operations over a loaded graph
//	cmd/lvforest/  - the command-line front end
//
// Quick ASCII example:
//
//	    a──3──b
//	    │╲    │
//	    1  2  1
//	    │    ╲│
//	    d──3──c
//
// The minimum spanning tree from a keeps a-d, a-c and c-b (total 4); asking
// for two partitions cuts a-c, leaving {a, d} and {b, c}.
//
//	go get github.com/katalvlaran/lvforest
package lvforest
