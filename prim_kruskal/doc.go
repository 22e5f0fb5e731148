// Package prim_kruskal computes weighted spanning trees over a core.View in
// both polarities: minimum-weight and maximum-weight.
//
// What & Why
//
//   - A spanning tree of the component reachable from a start node connects
//     every reachable node through exactly one path of parent pointers.
//   - Minimum trees keep the lightest links; cutting their heaviest edges
//     clusters a graph. Maximum trees keep the strongest links; cutting their
//     lightest edges isolates weakly attached groups. Package kspanningtree
//     builds on both.
//
// Algorithms Provided
//
//   - Prim(ctx, g, start, opts...) (*SpanningTree, error)
//
//   - Strategy: grow from start. Every frontier node sits once in an indexed
//     priority queue (package pqueue) keyed by the best edge weight that
//     reaches it; a better edge decreases the key in place and replaces the
//     node's parent.
//
//   - Result: parent array, per-node attaching cost, Sum/Min/Max of accepted
//     edges, EffectiveNodeCount.
//
//   - Complexity: O((V + E) log V) time, O(V) space.
//
//   - Kruskal(ctx, g, opts...) (*Forest, error)
//
//   - Strategy: stable-sort every edge by weight and keep those that join two
//     sets of a disjointset.DisjointSet.
//
//   - Complexity: O(E log E) time, O(V + E) space.
//
// Polarity & Direction
//
//	WithPolarity(Minimum | Maximum)   default Minimum
//	WithDirection(core.Outgoing | …)  default Outgoing, Prim only
//
// Aggregates are collected when a node is accepted, from the final weight of
// the edge that attached it, so Sum equals the total weight of the returned
// tree.
//
// Cancellation
//
// ctx is polled once per popped node (Prim) or per edge (Kruskal). A
// canceled run returns the partial, internally consistent tree with
// Canceled set and a nil error.
//
// Determinism
//
// Equal-weight frontier nodes pop in the order they were last improved, and
// relationships are enumerated in insertion order, so the same graph always
// yields the same tree.
package prim_kruskal
