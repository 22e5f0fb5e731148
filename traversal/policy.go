package traversal

import "github.com/katalvlaran/lvforest/core"

// Policy pairs a Predicate with an Aggregator. Name labels it in logs.
type Policy struct {
	Name       string
	Predicate  Predicate
	Aggregator Aggregator
}

func zero(int, int, float64) float64 { return 0 }

func followAll(int, int, float64) Decision { return Follow }

// TargetReached stops at target: Break when current == target, Follow
// otherwise. Weights stay zero.
func TargetReached(target int) Policy {
	return Policy{
		Name: "target",
		Predicate: func(_, current int, _ float64) Decision {
			if current == target {
				return Break
			}
			return Follow
		},
		Aggregator: zero,
	}
}

// MaxDepth records nodes at most d hops from the source. The weight is the
// hop count; a node deeper than d is dropped without expansion. MaxDepth(0)
// records the source only.
func MaxDepth(d int) Policy {
	bound := float64(d)
	return Policy{
		Name: "maxDepth",
		Predicate: func(_, _ int, w float64) Decision {
			if w > bound {
				return Continue
			}
			return Follow
		},
		Aggregator: func(_, _ int, w float64) float64 { return w + 1 },
	}
}

// MaxCost records nodes whose accumulated edge weight along the discovery
// path is at most c. Each hop adds the weight of the relationship crossed,
// looked up along dir, which must match the walk's direction.
func MaxCost(g core.View, dir core.Direction, c float64) Policy {
	return Policy{
		Name: "maxCost",
		Predicate: func(_, _ int, w float64) Decision {
			if w > c {
				return Continue
			}
			return Follow
		},
		Aggregator: func(s, t int, w float64) float64 { return w + core.WeightAlong(g, s, t, dir) },
	}
}

// Unbounded records everything reachable. Weights stay zero.
func Unbounded() Policy {
	return Policy{Name: "unbounded", Predicate: followAll, Aggregator: zero}
}

// Custom wraps caller-supplied functions. A nil aggregator keeps weights at
// zero; a nil predicate is rejected when the traversal starts.
func Custom(p Predicate, a Aggregator) Policy {
	if a == nil {
		a = zero
	}

	return Policy{Name: "custom", Predicate: p, Aggregator: a}
}
