// File: view.go
// Role: Immutable, direction-fixed snapshot of a Graph in compact index space.
// Determinism:
//   - Index i is the i-th vertex of Vertices(); successor lists are sorted by index.
// Concurrency:
//   - Built under one Graph read lock; the resulting View is read-only and
//     safe for concurrent readers.

package core

import "sort"

// View is a compressed adjacency snapshot of a Graph for one Direction.
// Parallel edges collapse to the lightest one and self-loops are dropped.
type View struct {
	direction Direction
	ids       []string       // index → external ID
	index     map[string]int // external ID → index
	offsets   []int          // successors of v live in [offsets[v], offsets[v+1])
	targets   []int
	weights   []float64
}

// NewView snapshots g for traversal in direction dir.
//
// Errors: ErrUnsupportedDirection for Both or unknown directions.
// Complexity: O((V + E) log V) time, O(V + E) space.
func NewView(g *Graph, dir Direction) (*View, error) {
	if dir != Outgoing && dir != Incoming {
		return nil, ErrUnsupportedDirection
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	ids := make([]string, 0, len(g.vertices))
	for id := range g.vertices {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	v := &View{
		direction: dir,
		ids:       ids,
		index:     make(map[string]int, len(ids)),
		offsets:   make([]int, len(ids)+1),
	}
	for i, id := range ids {
		v.index[id] = i
	}

	// 1) Collect the lightest arc per (u,t) pair in traversal orientation.
	arcs := make([]map[int]float64, len(ids))
	add := func(from, to string, w float64) {
		u, t := v.index[from], v.index[to]
		if u == t {
			return
		}
		if arcs[u] == nil {
			arcs[u] = make(map[int]float64)
		}
		if cur, ok := arcs[u][t]; !ok || w < cur {
			arcs[u][t] = w
		}
	}
	for _, e := range g.edges {
		from, to := e.From, e.To
		if dir == Incoming {
			from, to = to, from
		}
		add(from, to, e.Weight)
		if !e.Directed {
			add(to, from, e.Weight)
		}
	}

	// 2) Flatten into sorted CSR arrays.
	var sorted []int
	for u := range ids {
		v.offsets[u] = len(v.targets)
		sorted = sorted[:0]
		for t := range arcs[u] {
			sorted = append(sorted, t)
		}
		sort.Ints(sorted)
		for _, t := range sorted {
			v.targets = append(v.targets, t)
			v.weights = append(v.weights, arcs[u][t])
		}
	}
	v.offsets[len(ids)] = len(v.targets)

	return v, nil
}

// Direction returns the traversal direction the view was built for.
func (v *View) Direction() Direction { return v.direction }

// NodeCount returns the number of vertices.
func (v *View) NodeCount() int { return len(v.ids) }

// RelationshipCount returns the number of traversable arcs.
func (v *View) RelationshipCount() int { return len(v.targets) }

// ToMapped resolves an external vertex ID to its compact index.
func (v *View) ToMapped(id string) (int, bool) {
	i, ok := v.index[id]

	return i, ok
}

// ToOriginal returns the external ID of index i. It panics when i is out of range.
func (v *View) ToOriginal(i int) string { return v.ids[i] }

// Degree returns the number of traversable arcs leaving u.
func (v *View) Degree(u int) int { return v.offsets[u+1] - v.offsets[u] }

// ForEachRelationship visits the neighbours of u in ascending index order.
func (v *View) ForEachRelationship(u int, fn func(to int, weight float64) bool) {
	for i := v.offsets[u]; i < v.offsets[u+1]; i++ {
		if !fn(v.targets[i], v.weights[i]) {
			return
		}
	}
}

// Weight returns the weight of the arc from→to in O(log deg(from)).
func (v *View) Weight(from, to int) (float64, bool) {
	if from < 0 || from >= len(v.ids) {
		return 0, false
	}
	lo, hi := v.offsets[from], v.offsets[from+1]
	i := lo + sort.SearchInts(v.targets[lo:hi], to)
	if i < hi && v.targets[i] == to {
		return v.weights[i], true
	}

	return 0, false
}

var _ Accessor = (*View)(nil)
