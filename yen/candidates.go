package yen

import (
	"container/heap"

	"github.com/katalvlaran/kpaths/path"
)

// Candidates is a min-priority pool of paths ordered by cost, ties broken by
// insertion order. Membership is structural: a path whose vertex sequence is
// already pooled is not inserted twice.
type Candidates struct {
	h    candidateHeap
	keys map[string]struct{}
	seq  uint64
}

// NewCandidates returns an empty pool.
func NewCandidates() *Candidates {
	return &Candidates{keys: make(map[string]struct{})}
}

// Offer inserts p unless an equal vertex sequence is already pooled.
// It reports whether p was inserted. O(log n).
func (c *Candidates) Offer(p path.Path) bool {
	key := p.Key()
	if _, dup := c.keys[key]; dup {
		return false
	}
	c.keys[key] = struct{}{}
	heap.Push(&c.h, candidate{path: p, key: key, seq: c.seq})
	c.seq++

	return true
}

// Contains reports whether an equal vertex sequence is pooled.
func (c *Candidates) Contains(p path.Path) bool {
	_, ok := c.keys[p.Key()]

	return ok
}

// PeekMin returns the cheapest path without removing it.
func (c *Candidates) PeekMin() (path.Path, bool) {
	if len(c.h) == 0 {
		return path.Path{}, false
	}

	return c.h[0].path, true
}

// TakeMin removes and returns the cheapest path. O(log n).
func (c *Candidates) TakeMin() (path.Path, bool) {
	if len(c.h) == 0 {
		return path.Path{}, false
	}
	top := heap.Pop(&c.h).(candidate)
	delete(c.keys, top.key)

	return top.path, true
}

// Len returns the number of pooled paths.
func (c *Candidates) Len() int { return len(c.h) }

// IsEmpty reports whether the pool is empty.
func (c *Candidates) IsEmpty() bool { return len(c.h) == 0 }

type candidate struct {
	path path.Path
	key  string
	seq  uint64
}

// candidateHeap orders by cost, then by insertion sequence.
type candidateHeap []candidate

func (h candidateHeap) Len() int { return len(h) }

func (h candidateHeap) Less(i, j int) bool {
	if ci, cj := h[i].path.Cost(), h[j].path.Cost(); ci != cj {
		return ci < cj
	}

	return h[i].seq < h[j].seq
}

func (h candidateHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *candidateHeap) Push(x any) { *h = append(*h, x.(candidate)) }

func (h *candidateHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	old[n-1] = candidate{}
	*h = old[:n-1]

	return item
}
