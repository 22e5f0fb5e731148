// SPDX-License-Identifier: MIT

// Package disjointset provides a fixed-size union-find structure over the
// dense index space [0, n).
//
// Every element starts in its own singleton set. Union is the only mutation;
// Reset restores the all-singleton state in O(n). Find uses path splitting
// and Union attaches the smaller set under the larger, which keeps both
// operations near O(1) amortized.
//
// A DisjointSet is not safe for concurrent mutation. Each computation is
// expected to own its instance.
package disjointset

import (
	"errors"
	"fmt"
	"slices"
	"sort"
)

// ErrOutOfRange indicates an element index outside [0, Len()).
var ErrOutOfRange = errors.New("disjointset: index out of range")

// DisjointSet is a partition of [0, n) into disjoint sets.
type DisjointSet struct {
	parent []int // parent[i] == i for roots
	size   []int // meaningful only at roots
	count  int   // number of disjoint sets
}

// New returns a DisjointSet of n singletons. A negative n is treated as 0.
// Complexity: O(n).
func New(n int) *DisjointSet {
	if n < 0 {
		n = 0
	}
	d := &DisjointSet{
		parent: make([]int, n),
		size:   make([]int, n),
	}
	d.Reset()

	return d
}

// Reset makes every element a singleton again.
// Complexity: O(n).
func (d *DisjointSet) Reset() {
	for i := range d.parent {
		d.parent[i] = i
		d.size[i] = 1
	}
	d.count = len(d.parent)
}

// Len returns the number of elements.
func (d *DisjointSet) Len() int { return len(d.parent) }

// Count returns the number of disjoint sets.
func (d *DisjointSet) Count() int { return d.count }

func (d *DisjointSet) check(i int) error {
	if i < 0 || i >= len(d.parent) {
		return fmt.Errorf("%w: %d not in [0,%d)", ErrOutOfRange, i, len(d.parent))
	}

	return nil
}

// root walks to the representative of i, pointing each visited element at
// its grandparent on the way. i must be in range.
func (d *DisjointSet) root(i int) int {
	for d.parent[i] != i {
		i, d.parent[i] = d.parent[i], d.parent[d.parent[i]]
	}

	return i
}

// Find returns the representative of the set containing i.
func (d *DisjointSet) Find(i int) (int, error) {
	if err := d.check(i); err != nil {
		return -1, err
	}

	return d.root(i), nil
}

// Union merges the sets containing a and b. It is a no-op when they already
// share a set.
func (d *DisjointSet) Union(a, b int) error {
	if err := d.check(a); err != nil {
		return err
	}
	if err := d.check(b); err != nil {
		return err
	}
	ra, rb := d.root(a), d.root(b)
	if ra == rb {
		return nil
	}
	if d.size[ra] < d.size[rb] {
		ra, rb = rb, ra
	}
	d.parent[rb] = ra
	d.size[ra] += d.size[rb]
	d.count--

	return nil
}

// Connected reports whether a and b share a set.
func (d *DisjointSet) Connected(a, b int) (bool, error) {
	if err := d.check(a); err != nil {
		return false, err
	}
	if err := d.check(b); err != nil {
		return false, err
	}

	return d.root(a) == d.root(b), nil
}

// SizeOf returns the size of the set containing i.
func (d *DisjointSet) SizeOf(i int) (int, error) {
	if err := d.check(i); err != nil {
		return 0, err
	}

	return d.size[d.root(i)], nil
}

// Sets returns every set as a sorted slice of members. Sets are ordered by
// their smallest member.
// Complexity: O(n log n).
func (d *DisjointSet) Sets() [][]int {
	byRoot := make(map[int][]int, d.count)
	for i := range d.parent {
		r := d.root(i)
		byRoot[r] = append(byRoot[r], i)
	}
	out := make([][]int, 0, len(byRoot))
	for _, set := range byRoot {
		// members are appended in ascending order already
		out = append(out, set)
	}
	sort.Slice(out, func(i, j int) bool { return out[i][0] < out[j][0] })

	return out
}

// SetsOf is like Sets but keeps only sets containing at least one element
// for which keep returns true.
func (d *DisjointSet) SetsOf(keep func(i int) bool) [][]int {
	return slices.DeleteFunc(d.Sets(), func(set []int) bool {
		return !slices.ContainsFunc(set, keep)
	})
}
