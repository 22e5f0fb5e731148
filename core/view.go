// File: view.go
// Role: Non-mutating View wrappers.
// Concurrency:
//   - Wrappers hold no state of their own; safety follows the wrapped View.

package core

// unitWeight is the weight every relationship carries under Unweighted.
const unitWeight float64 = 1

// Unweighted returns a View with the same topology and id mapping as v in
// which every relationship, and every WeightOf lookup, has weight 1.
// Cost-bounded traversals over it count hops.
//
// Complexity: O(1) to build; per-call cost equals the wrapped View's.
func Unweighted(v View) View {
	return unweightedView{inner: v}
}

type unweightedView struct {
	inner View
}

func (u unweightedView) NodeCount() int { return u.inner.NodeCount() }

func (u unweightedView) ForEachRelationship(node int, dir Direction, visit RelationshipVisitor) {
	u.inner.ForEachRelationship(node, dir, func(s, t int, _ float64) bool {
		return visit(s, t, unitWeight)
	})
}

func (u unweightedView) WeightOf(_, _ int) float64 { return unitWeight }

func (u unweightedView) ToMappedNodeID(id string) (int, bool) { return u.inner.ToMappedNodeID(id) }

func (u unweightedView) ToOriginalNodeID(node int) string { return u.inner.ToOriginalNodeID(node) }

// Reversed returns a View whose Outgoing relationships are v's Incoming ones
// and vice versa. WeightOf(s, t) reports v.WeightOf(t, s). On an undirected
// graph Reversed is observationally identical to v.
func Reversed(v View) View {
	return reversedView{inner: v}
}

type reversedView struct {
	inner View
}

func (r reversedView) NodeCount() int { return r.inner.NodeCount() }

func (r reversedView) ForEachRelationship(node int, dir Direction, visit RelationshipVisitor) {
	switch dir {
	case Outgoing:
		dir = Incoming
	case Incoming:
		dir = Outgoing
	}
	r.inner.ForEachRelationship(node, dir, visit)
}

func (r reversedView) WeightOf(source, target int) float64 { return r.inner.WeightOf(target, source) }

func (r reversedView) ToMappedNodeID(id string) (int, bool) { return r.inner.ToMappedNodeID(id) }

func (r reversedView) ToOriginalNodeID(node int) string { return r.inner.ToOriginalNodeID(node) }
