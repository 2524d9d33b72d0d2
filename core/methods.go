// File: methods.go
// Role: Vertex and edge lifecycle plus read-only catalog queries.
// Determinism:
//   - Vertices() sorted by ID asc, Edges() sorted by numeric edge ID asc.
// Concurrency:
//   - Mutations under the write lock, queries under the read lock.

package core

import (
	"fmt"
	"math"
	"sort"
	"strconv"
)

// edgeIDPrefix is the textual prefix for edge identifiers ("e1", "e2", …).
const edgeIDPrefix = 'e'

// AddVertex inserts a vertex with the given ID. Adding an existing vertex is a no-op.
// Complexity: O(1).
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	g.addVertexLocked(id)

	return nil
}

func (g *Graph) addVertexLocked(id string) {
	if _, ok := g.vertices[id]; ok {
		return
	}
	g.vertices[id] = struct{}{}
	g.adjacency[id] = make(map[string]map[string]struct{})
}

// HasVertex reports whether the vertex exists.
func (g *Graph) HasVertex(id string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.vertices[id]

	return ok
}

// AddEdge creates a new edge from→to and returns its ID. Missing endpoints are
// created on the fly.
//
// Steps:
//  1. Validate IDs, weight and loops.
//  2. Lock, ensure endpoints, check the multi-edge constraint.
//  3. Generate the edge ID, store the edge, link adjacency (mirrored if undirected).
//
// Errors: ErrEmptyVertexID, ErrNegativeWeight, ErrBadWeight, ErrLoopNotAllowed,
// ErrMultiEdgeNotAllowed.
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string, weight float64) (string, error) {
	// 1) Input validation
	if from == "" || to == "" {
		return "", ErrEmptyVertexID
	}
	if math.IsNaN(weight) || math.IsInf(weight, 0) {
		return "", fmt.Errorf("%w: edge %s→%s weight=%v", ErrBadWeight, from, to, weight)
	}
	if weight < 0 {
		return "", fmt.Errorf("%w: edge %s→%s weight=%v", ErrNegativeWeight, from, to, weight)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if from == to && !g.allowLoops {
		return "", ErrLoopNotAllowed
	}

	// 2) Ensure endpoints, then enforce multi-edge policy.
	g.addVertexLocked(from)
	g.addVertexLocked(to)
	if !g.allowMulti {
		if len(g.adjacency[from][to]) > 0 {
			return "", ErrMultiEdgeNotAllowed
		}
	}

	// 3) Store and link.
	g.nextEdgeID++
	eid := string(strconv.AppendUint([]byte{edgeIDPrefix}, g.nextEdgeID, 10))
	e := &Edge{ID: eid, From: from, To: to, Weight: weight, Directed: g.directed}
	g.edges[eid] = e
	g.link(from, to, eid)
	if !e.Directed && from != to {
		g.link(to, from, eid)
	}

	return eid, nil
}

func (g *Graph) link(from, to, eid string) {
	inner, ok := g.adjacency[from][to]
	if !ok {
		inner = make(map[string]struct{})
		g.adjacency[from][to] = inner
	}
	inner[eid] = struct{}{}
}

func (g *Graph) unlink(from, to, eid string) {
	inner := g.adjacency[from][to]
	delete(inner, eid)
	if len(inner) == 0 {
		delete(g.adjacency[from], to)
	}
}

// RemoveEdge deletes one edge (and its mirror for undirected graphs).
// Complexity: O(1).
func (g *Graph) RemoveEdge(eid string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	e, ok := g.edges[eid]
	if !ok {
		return ErrEdgeNotFound
	}
	delete(g.edges, eid)
	g.unlink(e.From, e.To, eid)
	if !e.Directed && e.From != e.To {
		g.unlink(e.To, e.From, eid)
	}

	return nil
}

// RemoveVertex deletes a vertex together with every incident edge.
// Complexity: O(E).
func (g *Graph) RemoveVertex(id string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.vertices[id]; !ok {
		return ErrVertexNotFound
	}
	for eid, e := range g.edges {
		if e.From != id && e.To != id {
			continue
		}
		delete(g.edges, eid)
		g.unlink(e.From, e.To, eid)
		if !e.Directed && e.From != e.To {
			g.unlink(e.To, e.From, eid)
		}
	}
	delete(g.adjacency, id)
	delete(g.vertices, id)

	return nil
}

// HasEdge reports whether at least one edge from→to exists. For undirected
// graphs the order of the endpoints does not matter.
func (g *Graph) HasEdge(from, to string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.adjacency[from][to]) > 0
}

// EdgeBetween returns the ID of the lightest edge from→to.
func (g *Graph) EdgeBetween(from, to string) (string, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	best := ""
	for eid := range g.adjacency[from][to] {
		if best == "" || g.edges[eid].Weight < g.edges[best].Weight ||
			(g.edges[eid].Weight == g.edges[best].Weight && edgeIDLess(eid, best)) {
			best = eid
		}
	}
	if best == "" {
		return "", ErrEdgeNotFound
	}

	return best, nil
}

// Vertices returns all vertex IDs sorted ascending.
// Complexity: O(V log V).
func (g *Graph) Vertices() []string {
	g.mu.RLock()
	out := make([]string, 0, len(g.vertices))
	for id := range g.vertices {
		out = append(out, id)
	}
	g.mu.RUnlock()
	sort.Strings(out)

	return out
}

// Edges returns copies of all edges sorted by edge ID ("e2" before "e10").
// Complexity: O(E log E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	out := make([]Edge, 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, *e)
	}
	g.mu.RUnlock()
	sort.Slice(out, func(i, j int) bool { return edgeIDLess(out[i].ID, out[j].ID) })

	return out
}

// VertexCount returns |V|.
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.vertices)
}

// EdgeCount returns |E| (undirected edges count once).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}

// edgeIDLess orders "e<n>" IDs numerically.
func edgeIDLess(a, b string) bool {
	if len(a) != len(b) {
		return len(a) < len(b)
	}

	return a < b
}
