package pqueue

import "math"

// Costs is a dense node → cost map over [0, n) with a default value for
// nodes never written. One Costs is shared between a Queue and the
// algorithm driving it, so both observe the same best cost per node.
type Costs struct {
	vals []float64
	def  float64
}

// NewCosts returns a Costs of n entries, each initialised to def.
func NewCosts(n int, def float64) *Costs {
	c := &Costs{vals: make([]float64, n), def: def}
	for i := range c.vals {
		c.vals[i] = def
	}

	return c
}

// NewMinCosts returns Costs defaulting to +Inf, the neutral value for a
// minimising search.
func NewMinCosts(n int) *Costs { return NewCosts(n, math.Inf(1)) }

// NewMaxCosts returns Costs defaulting to -Inf.
func NewMaxCosts(n int) *Costs { return NewCosts(n, math.Inf(-1)) }

// Len returns the size of the index space.
func (c *Costs) Len() int { return len(c.vals) }

// Default returns the value reported for unwritten nodes.
func (c *Costs) Default() float64 { return c.def }

// Get returns the recorded cost of node, or Default() if none.
// Panics if node is out of range.
func (c *Costs) Get(node int) float64 { return c.vals[c.index(node)] }

// Set records cost for node. Panics if node is out of range.
//
// Nodes currently queued must only be updated through Queue.Add, otherwise
// the heap order goes stale.
func (c *Costs) Set(node int, cost float64) { c.vals[c.index(node)] = cost }

// Recorded reports whether node holds a value other than Default().
func (c *Costs) Recorded(node int) bool { return c.vals[c.index(node)] != c.def }

// Snapshot returns a copy of all costs in index order.
func (c *Costs) Snapshot() []float64 {
	out := make([]float64, len(c.vals))
	copy(out, c.vals)

	return out
}

func (c *Costs) index(node int) int {
	if node < 0 || node >= len(c.vals) {
		panic(indexPanic(node, len(c.vals)))
	}

	return node
}
