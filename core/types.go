package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided vertex ID is empty.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrNegativeWeight indicates a negative edge weight.
	ErrNegativeWeight = errors.New("core: negative edge weight")

	// ErrBadWeight indicates a NaN or infinite edge weight.
	ErrBadWeight = errors.New("core: edge weight must be finite")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted when multi-edges are disabled.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")

	// ErrUnsupportedDirection indicates a View was requested for Direction Both
	// or for an unknown Direction value.
	ErrUnsupportedDirection = errors.New("core: unsupported traversal direction")
)

// Edge represents a weighted connection between two vertices.
type Edge struct {
	// ID uniquely identifies this edge in the Graph.
	ID string

	// From is the source vertex ID.
	From string

	// To is the destination vertex ID.
	To string

	// Weight is the traversal cost of the edge (finite, ≥ 0).
	Weight float64

	// Directed reports whether the edge is one-way.
	Directed bool
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithDirected sets the directedness for all edges
// (true = directed, false = undirected).
func WithDirected(directed bool) GraphOption {
	return func(g *Graph) { g.directed = directed }
}

// WithMultiEdges permits parallel edges between the same vertices.
func WithMultiEdges() GraphOption {
	return func(g *Graph) { g.allowMulti = true }
}

// WithLoops permits self-loops (edges from a vertex to itself).
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// Graph is a thread-safe, weighted, in-memory graph keyed by string vertex IDs.
//
// mu guards every field below it; nextEdgeID is only advanced under the write lock.
type Graph struct {
	mu sync.RWMutex

	// Configuration flags
	directed   bool // edge orientation
	allowMulti bool // allow parallel edges
	allowLoops bool // allow self-loops

	// Storage
	nextEdgeID uint64              // edge ID generator
	vertices   map[string]struct{} // vertex ID set
	edges      map[string]*Edge    // edge ID → Edge

	// adjacency[from][to][edgeID] = struct{}{}; undirected edges are mirrored.
	adjacency map[string]map[string]map[string]struct{}
}

// NewGraph creates an empty Graph with the given options.
// By default, Graph is undirected with no loops and no multi-edges.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		vertices:  make(map[string]struct{}),
		edges:     make(map[string]*Edge),
		adjacency: make(map[string]map[string]map[string]struct{}),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Directed reports whether edges are one-way.
func (g *Graph) Directed() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.directed
}

// Direction selects which side of an edge a traversal follows.
type Direction int

const (
	// Outgoing follows edges from→to.
	Outgoing Direction = iota

	// Incoming follows edges to→from (predecessor iteration).
	Incoming

	// Both follows edges in either orientation at once. Unsupported.
	Both
)

// String returns the lower-case name of the direction.
func (d Direction) String() string {
	switch d {
	case Outgoing:
		return "outgoing"
	case Incoming:
		return "incoming"
	case Both:
		return "both"
	default:
		return "unknown"
	}
}

// ParseDirection maps "outgoing", "incoming" and "both" (case-sensitive) to a
// Direction. An empty string yields Outgoing.
func ParseDirection(s string) (Direction, error) {
	switch s {
	case "", "outgoing":
		return Outgoing, nil
	case "incoming":
		return Incoming, nil
	case "both":
		return Both, nil
	default:
		return Outgoing, ErrUnsupportedDirection
	}
}

// Accessor is the read-only graph contract consumed by path searches.
// Vertices are addressed by compact indices in [0, NodeCount()).
type Accessor interface {
	// NodeCount returns the number of vertices.
	NodeCount() int

	// ToMapped resolves an external vertex ID to its index.
	ToMapped(id string) (int, bool)

	// ToOriginal returns the external vertex ID of index v.
	ToOriginal(v int) string

	// ForEachRelationship calls fn for every traversable neighbour of v with
	// the edge weight, stopping early when fn returns false.
	ForEachRelationship(v int, fn func(to int, weight float64) bool)

	// Weight returns the weight of the traversable edge from→to.
	Weight(from, to int) (float64, bool)
}
