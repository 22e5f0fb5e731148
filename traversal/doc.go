// Package traversal walks a core.View breadth-first or depth-first under the
// control of two small functions.
//
// One routine serves both orders. Each dequeued node is shown to a
// Predicate:
//
//	Follow   → record the node, expand its unvisited neighbors
//	Break    → record the node, stop the whole traversal
//	Continue → drop the node, do not expand it
//
// Newly discovered neighbors are marked visited at once and enqueued with
// the weight an Aggregator derives from their discoverer's weight. BFS
// inserts at the back of the deque, DFS at the front. A node is enqueued at
// most once; there is no reweighing, so this is not a shortest-path search.
//
// Preset policies:
//
//	TargetReached(t)    Break on t; weights 0
//	MaxDepth(d)         Continue past d hops; weight = hop count
//	MaxCost(g, dir, c)  Continue past cost c; weight = Σ edge weights crossed along dir
//	Unbounded()         Follow everything; weights 0
//	Custom(p, a)        caller-supplied
//
// Package celpolicy compiles Policies from CEL expressions.
//
// Cancellation: ctx is polled once per dequeued node and between neighbor
// enumerations; a canceled walk returns what it recorded with Canceled set.
package traversal
