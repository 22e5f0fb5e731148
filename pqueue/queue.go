// SPDX-License-Identifier: MIT

// Package pqueue implements an indexed binary-heap priority queue over dense
// node indices with in-place decrease-key, in minimum and maximum order.
//
// Priorities live in a Costs map owned by the caller and shared with the
// queue. Add writes the improved cost into Costs and fixes the node's heap
// position in O(log n); there are no stale duplicates.
//
// Ties are broken by the sequence number of each node's last successful Add:
// of two equal priorities, the one touched earlier pops first. Identical
// input therefore yields identical pop order.
//
// Complexity:
//
//	Add      O(log n)
//	Pop      O(log n)
//	IsEmpty  O(1)
//	Contains O(1)
package pqueue

import (
	"container/heap"
	"errors"
	"fmt"
)

// ErrEmpty is returned by Pop on an empty queue.
var ErrEmpty = errors.New("pqueue: queue is empty")

const absent = -1

func indexPanic(node, n int) error {
	return fmt.Errorf("pqueue: node %d out of range [0,%d)", node, n)
}

// Queue is an indexed priority queue over [0, costs.Len()).
// It is not safe for concurrent use.
type Queue struct {
	h indexedHeap
}

// NewMin returns a queue that pops the lowest cost first.
func NewMin(costs *Costs) *Queue { return newQueue(costs, false) }

// NewMax returns a queue that pops the highest cost first.
func NewMax(costs *Costs) *Queue { return newQueue(costs, true) }

func newQueue(costs *Costs, desc bool) *Queue {
	pos := make([]int, costs.Len())
	for i := range pos {
		pos[i] = absent
	}

	return &Queue{h: indexedHeap{costs: costs, desc: desc, pos: pos}}
}

// Costs returns the shared cost map.
func (q *Queue) Costs() *Costs { return q.h.costs }

// Max reports whether q pops the highest cost first.
func (q *Queue) Max() bool { return q.h.desc }

// Add inserts node with cost, or improves its cost if already queued.
// A queued node whose recorded cost is already at least as good is left
// unchanged. Add reports whether the queue changed.
//
// Panics if node is outside [0, Costs().Len()).
func (q *Queue) Add(node int, cost float64) bool {
	h := &q.h
	if node < 0 || node >= len(h.pos) {
		panic(indexPanic(node, len(h.pos)))
	}
	h.seq++
	if i := h.pos[node]; i != absent {
		if !h.better(cost, h.costs.Get(node)) {
			return false
		}
		h.costs.Set(node, cost)
		h.items[i].seq = h.seq
		heap.Fix(h, i)

		return true
	}
	h.costs.Set(node, cost)
	heap.Push(h, entry{node: node, seq: h.seq})

	return true
}

// Pop removes and returns the node with the best cost.
func (q *Queue) Pop() (int, error) {
	if q.IsEmpty() {
		return absent, ErrEmpty
	}
	e := heap.Pop(&q.h).(entry)

	return e.node, nil
}

// Peek returns the node Pop would return without removing it.
func (q *Queue) Peek() (int, error) {
	if q.IsEmpty() {
		return absent, ErrEmpty
	}

	return q.h.items[0].node, nil
}

// IsEmpty reports whether no node is queued.
func (q *Queue) IsEmpty() bool { return len(q.h.items) == 0 }

// Len returns the number of queued nodes.
func (q *Queue) Len() int { return len(q.h.items) }

// Contains reports whether node is currently queued.
func (q *Queue) Contains(node int) bool {
	return node >= 0 && node < len(q.h.pos) && q.h.pos[node] != absent
}

// entry is one heap slot. Its priority is read from the shared Costs.
type entry struct {
	node int
	seq  uint64
}

// indexedHeap implements heap.Interface and keeps pos in sync with items.
type indexedHeap struct {
	costs *Costs
	desc  bool // highest cost first
	items []entry
	pos   []int // node → index in items, or absent
	seq   uint64
}

// better reports whether a strictly beats b under the heap's polarity.
func (h *indexedHeap) better(a, b float64) bool {
	if h.desc {
		return a > b
	}

	return a < b
}

func (h *indexedHeap) Len() int { return len(h.items) }

func (h *indexedHeap) Less(i, j int) bool {
	ci, cj := h.costs.Get(h.items[i].node), h.costs.Get(h.items[j].node)
	if ci != cj {
		return h.better(ci, cj)
	}

	return h.items[i].seq < h.items[j].seq
}

func (h *indexedHeap) Swap(i, j int) {
	h.items[i], h.items[j] = h.items[j], h.items[i]
	h.pos[h.items[i].node] = i
	h.pos[h.items[j].node] = j
}

func (h *indexedHeap) Push(x any) {
	e := x.(entry)
	h.pos[e.node] = len(h.items)
	h.items = append(h.items, e)
}

func (h *indexedHeap) Pop() any {
	old := h.items
	n := len(old)
	e := old[n-1]
	h.items = old[:n-1]
	h.pos[e.node] = absent

	return e
}
