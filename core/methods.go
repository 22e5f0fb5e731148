package core

import "fmt"

// AddVertex inserts a vertex if missing and returns its dense index.
// Adding an existing vertex is a no-op that returns the existing index.
//
// Errors: ErrEmptyVertexID if id == "".
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(id string) (int, error) {
	if id == "" {
		return -1, ErrEmptyVertexID
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.ensureVertex(id), nil
}

// ensureVertex returns the index of id, allocating it if necessary.
// Caller must hold g.mu for writing.
func (g *Graph) ensureVertex(id string) int {
	if idx, ok := g.index[id]; ok {
		return idx
	}
	idx := len(g.ids)
	g.ids = append(g.ids, id)
	g.index[id] = idx
	g.out = append(g.out, nil)
	g.in = append(g.in, nil)

	return idx
}

// AddEdge adds an edge from→to with the given weight, creating missing
// vertices on the fly. Undirected graphs mirror the edge; a self-loop is
// stored once.
//
// Errors:
//   - ErrEmptyVertexID if either endpoint is empty.
//   - ErrLoopNotAllowed if from == to and loops are disabled.
//   - ErrMultiEdgeNotAllowed if an edge from→to exists and multi-edges are disabled.
//
// Complexity: O(1) amortized with multi-edges, O(deg(from)) without.
func (g *Graph) AddEdge(from, to string, weight float64) error {
	if from == "" || to == "" {
		return ErrEmptyVertexID
	}
	if from == to && !g.allowLoops {
		return fmt.Errorf("%w: %q", ErrLoopNotAllowed, from)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	u := g.ensureVertex(from)
	v := g.ensureVertex(to)
	if !g.allowMulti && g.hasEdgeLocked(u, v) {
		return fmt.Errorf("%w: %q→%q", ErrMultiEdgeNotAllowed, from, to)
	}

	g.out[u] = append(g.out[u], relationship{other: v, weight: weight})
	switch {
	case g.directed:
		g.in[v] = append(g.in[v], relationship{other: u, weight: weight})
	case u != v:
		// mirror for undirected graphs
		g.out[v] = append(g.out[v], relationship{other: u, weight: weight})
	}
	g.edgeCount++

	return nil
}

// hasEdgeLocked reports whether u→v exists. Caller must hold g.mu.
func (g *Graph) hasEdgeLocked(u, v int) bool {
	for _, r := range g.out[u] {
		if r.other == v {
			return true
		}
	}

	return false
}

// HasVertex reports whether id exists.
func (g *Graph) HasVertex(id string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.index[id]

	return ok
}

// HasEdge reports whether an edge from→to exists (either way if undirected).
func (g *Graph) HasEdge(from, to string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	u, ok1 := g.index[from]
	v, ok2 := g.index[to]
	if !ok1 || !ok2 {
		return false
	}

	return g.hasEdgeLocked(u, v)
}

// NodeCount returns the number of vertices, which is also the size of the
// dense index space.
func (g *Graph) NodeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.ids)
}

// EdgeCount returns the number of logical edges; undirected mirrors are not
// counted twice.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgeCount
}

// Vertices returns external IDs in dense index order.
func (g *Graph) Vertices() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]string, len(g.ids))
	copy(out, g.ids)

	return out
}

// ForEachRelationship implements View. The adjacency slices are snapshotted
// under the read lock and iterated without it, so visit may call back into g.
//
// Panics with ErrNodeOutOfRange or ErrBadDirection on invalid input.
// Complexity: O(deg(node)).
func (g *Graph) ForEachRelationship(node int, dir Direction, visit RelationshipVisitor) {
	g.mu.RLock()
	if node < 0 || node >= len(g.ids) {
		n := len(g.ids)
		g.mu.RUnlock()
		panic(fmt.Errorf("%w: %d not in [0,%d)", ErrNodeOutOfRange, node, n))
	}
	var first, second []relationship
	switch {
	case !dir.Valid():
		g.mu.RUnlock()
		panic(fmt.Errorf("%w: %v", ErrBadDirection, dir))
	case !g.directed:
		first = g.out[node]
	case dir == Outgoing:
		first = g.out[node]
	case dir == Incoming:
		first = g.in[node]
	default:
		first, second = g.out[node], g.in[node]
	}
	g.mu.RUnlock()

	for _, r := range first {
		if !visit(node, r.other, r.weight) {
			return
		}
	}
	for _, r := range second {
		if !visit(node, r.other, r.weight) {
			return
		}
	}
}

// WeightOf implements View. With parallel edges the first inserted wins.
// Complexity: O(deg(source)).
func (g *Graph) WeightOf(source, target int) float64 {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if source < 0 || source >= len(g.ids) {
		panic(fmt.Errorf("%w: %d not in [0,%d)", ErrNodeOutOfRange, source, len(g.ids)))
	}
	for _, r := range g.out[source] {
		if r.other == target {
			return r.weight
		}
	}

	return g.defaultWeight
}

// WeightAlong returns the weight of the first relationship source→target
// that ForEachRelationship(source, dir) enumerates, so an Incoming lookup
// finds the edge target→source. Without such a relationship it falls back
// to v.WeightOf(source, target).
//
// Complexity: O(deg(source)).
func WeightAlong(v View, source, target int, dir Direction) float64 {
	w, found := 0.0, false
	v.ForEachRelationship(source, dir, func(_, other int, weight float64) bool {
		if other != target {
			return true
		}
		w, found = weight, true
		return false
	})
	if !found {
		return v.WeightOf(source, target)
	}

	return w
}

// ToMappedNodeID implements View.
func (g *Graph) ToMappedNodeID(id string) (int, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	idx, ok := g.index[id]

	return idx, ok
}

// ToOriginalNodeID implements View. Panics with ErrNodeOutOfRange.
func (g *Graph) ToOriginalNodeID(node int) string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if node < 0 || node >= len(g.ids) {
		panic(fmt.Errorf("%w: %d not in [0,%d)", ErrNodeOutOfRange, node, len(g.ids)))
	}

	return g.ids[node]
}

// MustMap translates ids into dense indices, failing with ErrVertexNotFound
// on the first unknown ID.
func MustMap(v View, ids ...string) ([]int, error) {
	out := make([]int, len(ids))
	for i, id := range ids {
		idx, ok := v.ToMappedNodeID(id)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrVertexNotFound, id)
		}
		out[i] = idx
	}

	return out, nil
}

// Degree counts the relationships of node in dir.
// Complexity: O(1) for a Graph; O(deg) for other views.
func Degree(v View, node int, dir Direction) int {
	if g, ok := v.(*Graph); ok {
		return g.degree(node, dir)
	}
	n := 0
	v.ForEachRelationship(node, dir, func(_, _ int, _ float64) bool {
		n++
		return true
	})

	return n
}

func (g *Graph) degree(node int, dir Direction) int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if node < 0 || node >= len(g.ids) {
		panic(fmt.Errorf("%w: %d not in [0,%d)", ErrNodeOutOfRange, node, len(g.ids)))
	}
	if !g.directed {
		return len(g.out[node])
	}
	switch dir {
	case Outgoing:
		return len(g.out[node])
	case Incoming:
		return len(g.in[node])
	default:
		return len(g.out[node]) + len(g.in[node])
	}
}
