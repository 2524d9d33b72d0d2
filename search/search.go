package search

import (
	"container/heap"
	"math"

	"github.com/katalvlaran/kpaths/core"
	"github.com/katalvlaran/kpaths/path"
)

// unsettled marks a vertex without any settled label in the current search.
const unsettled = math.MaxInt

// Searcher runs hop-bounded shortest-path searches over one graph. Its buffers
// are reused between calls, so a Searcher must be used sequentially.
type Searcher struct {
	g    core.Accessor
	opts Options

	bestHops []int   // per vertex: fewest hops among settled labels
	touched  []int   // vertices whose bestHops must be reset
	labels   []label // arena of every label pushed in the current search
	pq       labelPQ
}

// label is one (vertex, hops) state with a back-pointer for path recovery.
type label struct {
	node   int
	hops   int
	parent int     // index into labels, -1 for the source
	dist   float64 // cost from the source
	weight float64 // weight of the arc into node
}

// New returns a Searcher over g.
func New(g core.Accessor, opts ...Option) *Searcher {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	s := &Searcher{
		g:        g,
		opts:     cfg,
		bestHops: make([]int, g.NodeCount()),
	}
	for i := range s.bestHops {
		s.bestHops[i] = unsettled
	}
	s.pq.labels = &s.labels

	return s
}

// ShortestPath returns the cheapest simple path from source to target using at
// most maxEdges edges and no vertex or edge excluded by ex. The boolean is
// false when no such path exists, when an index is out of range, or when the
// termination flag stopped the search.
//
// Steps:
//  1. Reset per-search state touched by the previous call.
//  2. Push the source label; pop labels in (distance, insertion) order.
//  3. Skip labels dominated by a settled label of the same vertex with ≤ hops.
//  4. Settle; stop at the target; otherwise relax allowed arcs while hops remain.
func (s *Searcher) ShortestPath(source, target, maxEdges int, ex *Exclusion) (path.Path, bool) {
	n := s.g.NodeCount()
	if source < 0 || source >= n || target < 0 || target >= n || maxEdges < 0 {
		return path.Path{}, false
	}
	if ex.VertexExcluded(source) || ex.VertexExcluded(target) {
		return path.Path{}, false
	}

	// 1) Reset.
	s.reset()

	// 2) Seed.
	s.push(label{node: source, parent: -1})

	for s.pq.Len() > 0 {
		if !s.opts.Termination.Running() {
			return path.Path{}, false
		}
		idx := heap.Pop(&s.pq).(int)
		cur := s.labels[idx]

		// 3) Dominated: an earlier, no more expensive label reached this vertex in fewer hops.
		if cur.hops >= s.bestHops[cur.node] {
			continue
		}

		// 4) Settle.
		if s.bestHops[cur.node] == unsettled {
			s.touched = append(s.touched, cur.node)
		}
		s.bestHops[cur.node] = cur.hops
		if cur.node == target {
			return s.build(idx), true
		}
		if cur.hops >= maxEdges {
			continue
		}
		next := cur.hops + 1
		s.g.ForEachRelationship(cur.node, func(to int, w float64) bool {
			if !ex.Allows(cur.node, to) || s.bestHops[to] <= next {
				return true
			}
			s.push(label{node: to, hops: next, parent: idx, dist: cur.dist + w, weight: w})

			return true
		})
	}

	return path.Path{}, false
}

// Release drops the reusable buffers. The Searcher must not be used afterwards.
func (s *Searcher) Release() {
	s.g = nil
	s.bestHops = nil
	s.touched = nil
	s.labels = nil
	s.pq.items = nil
}

func (s *Searcher) reset() {
	for _, v := range s.touched {
		s.bestHops[v] = unsettled
	}
	s.touched = s.touched[:0]
	s.labels = s.labels[:0]
	s.pq.items = s.pq.items[:0]
}

func (s *Searcher) push(l label) {
	s.labels = append(s.labels, l)
	heap.Push(&s.pq, len(s.labels)-1)
}

// build walks parent pointers from the target label back to the source.
func (s *Searcher) build(idx int) path.Path {
	var chain []int
	for i := idx; i >= 0; i = s.labels[i].parent {
		chain = append(chain, i)
	}
	p := path.New(s.labels[chain[len(chain)-1]].node)
	for j := len(chain) - 2; j >= 0; j-- {
		l := s.labels[chain[j]]
		p = p.Append(l.node, l.weight)
	}

	return p
}

// labelPQ is a min-heap of label indices ordered by distance, then by
// insertion order (label index) so equal-cost ties resolve deterministically.
type labelPQ struct {
	items  []int
	labels *[]label
}

// Len returns the number of items in the heap.
func (pq labelPQ) Len() int { return len(pq.items) }

// Less orders by distance, then by label index.
func (pq labelPQ) Less(i, j int) bool {
	a, b := (*pq.labels)[pq.items[i]], (*pq.labels)[pq.items[j]]
	if a.dist != b.dist {
		return a.dist < b.dist
	}

	return pq.items[i] < pq.items[j]
}

// Swap swaps two elements in the heap.
func (pq labelPQ) Swap(i, j int) { pq.items[i], pq.items[j] = pq.items[j], pq.items[i] }

// Push adds a label index; called by heap.Push.
func (pq *labelPQ) Push(x any) { pq.items = append(pq.items, x.(int)) }

// Pop removes the last element; called by heap.Pop.
func (pq *labelPQ) Pop() any {
	n := len(pq.items)
	item := pq.items[n-1]
	pq.items = pq.items[:n-1]

	return item
}
