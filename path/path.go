package path

import (
	"fmt"
	"strconv"
	"strings"
)

// EdgeKey identifies a directed arc by its ordered endpoint indices.
type EdgeKey struct {
	From, To int
}

// Weigher looks up the current weight of the arc from→to.
// core.Accessor satisfies it.
type Weigher interface {
	Weight(from, to int) (float64, bool)
}

// Path is an ordered sequence of vertex indices with the weights of the edges
// between consecutive vertices. The zero value is an empty path.
type Path struct {
	nodes   []int
	weights []float64 // weights[i] is the weight of nodes[i]→nodes[i+1]
	cost    float64
}

// New returns the single-vertex path [start] with cost 0.
func New(start int) Path {
	return Path{nodes: []int{start}}
}

// Append returns p extended by the edge Last()→to of weight w.
// It panics on open paths.
func (p Path) Append(to int, w float64) Path {
	if p.open() {
		panic("path: Append on open path")
	}
	nodes := make([]int, len(p.nodes), len(p.nodes)+1)
	copy(nodes, p.nodes)
	weights := make([]float64, len(p.weights), len(p.weights)+1)
	copy(weights, p.weights)

	return Path{
		nodes:   append(nodes, to),
		weights: append(weights, w),
		cost:    p.cost + w,
	}
}

// Len returns the number of vertices.
func (p Path) Len() int { return len(p.nodes) }

// Hops returns the number of edges of a closed path (Len()-1, or 0 when empty).
func (p Path) Hops() int {
	if len(p.nodes) == 0 {
		return 0
	}

	return len(p.nodes) - 1
}

// Cost returns the cached sum of edge weights.
func (p Path) Cost() float64 { return p.cost }

// IsEmpty reports whether the path has no vertices.
func (p Path) IsEmpty() bool { return len(p.nodes) == 0 }

// Node returns the i-th vertex.
func (p Path) Node(i int) int { return p.nodes[i] }

// First returns the first vertex.
func (p Path) First() int { return p.nodes[0] }

// Last returns the last vertex.
func (p Path) Last() int { return p.nodes[len(p.nodes)-1] }

// Nodes returns a copy of the vertex sequence.
func (p Path) Nodes() []int {
	out := make([]int, len(p.nodes))
	copy(out, p.nodes)

	return out
}

// Weights returns a copy of the edge weights.
func (p Path) Weights() []float64 {
	out := make([]float64, len(p.weights))
	copy(out, p.weights)

	return out
}

// Edge returns the arc leaving the i-th vertex. It panics unless 0 ≤ i < Len()-1.
func (p Path) Edge(i int) EdgeKey {
	if i < 0 || i+1 >= len(p.nodes) {
		panic(fmt.Sprintf("path: edge index %d out of range for %d vertices", i, len(p.nodes)))
	}

	return EdgeKey{From: p.nodes[i], To: p.nodes[i+1]}
}

// Prefix returns the sub-path made of the first i+1 vertices, with weights
// looked up in w. An arc w does not know keeps its cached weight; a nil w
// reuses all cached weights.
//
// Prefix panics when i is outside [0, Len()).
func (p Path) Prefix(i int, w Weigher) Path {
	if i < 0 || i >= len(p.nodes) {
		panic(fmt.Sprintf("path: prefix index %d out of range for %d vertices", i, len(p.nodes)))
	}
	out := Path{
		nodes:   make([]int, i+1),
		weights: make([]float64, i),
	}
	copy(out.nodes, p.nodes[:i+1])
	for j := 0; j < i; j++ {
		weight := p.weights[j]
		if w != nil {
			if live, ok := w.Weight(p.nodes[j], p.nodes[j+1]); ok {
				weight = live
			}
		}
		out.weights[j] = weight
		out.cost += weight
	}

	return out
}

// DropLast removes the last vertex. The weight of the edge that led into it is
// kept as a dangling tail, which makes the result an open path whose cost is
// unchanged. A single-vertex path becomes the empty path. DropLast panics on
// empty or open paths.
func (p Path) DropLast() Path {
	if len(p.nodes) == 0 || p.open() {
		panic("path: DropLast needs a closed, non-empty path")
	}
	if len(p.nodes) == 1 {
		return Path{}
	}
	out := Path{
		nodes:   make([]int, len(p.nodes)-1),
		weights: make([]float64, len(p.weights)),
		cost:    p.cost,
	}
	copy(out.nodes, p.nodes)
	copy(out.weights, p.weights)

	return out
}

// Concat appends other to p.
//
//   - Empty p: the result equals other.
//   - Open p (after DropLast): other's vertices follow the dangling edge.
//   - Closed p with p.Last() == other.First(): the shared vertex appears once.
//
// Any other combination panics.
func (p Path) Concat(other Path) Path {
	switch {
	case other.IsEmpty() || other.open():
		panic("path: Concat needs a closed, non-empty path to append")
	case p.IsEmpty(), p.open():
		return p.join(other.nodes, other.weights, other.cost)
	case !p.IsEmpty() && p.Last() == other.First():
		return p.join(other.nodes[1:], other.weights, other.cost)
	default:
		panic(fmt.Sprintf("path: cannot concat %v onto %v", other, p))
	}
}

func (p Path) join(nodes []int, weights []float64, cost float64) Path {
	out := Path{
		nodes:   make([]int, 0, len(p.nodes)+len(nodes)),
		weights: make([]float64, 0, len(p.weights)+len(weights)),
		cost:    p.cost + cost,
	}
	out.nodes = append(append(out.nodes, p.nodes...), nodes...)
	out.weights = append(append(out.weights, p.weights...), weights...)

	return out
}

// open reports whether p carries a dangling tail weight.
func (p Path) open() bool {
	return len(p.nodes) > 0 && len(p.weights) == len(p.nodes)
}

// EqualsUpTo reports whether p and other agree on vertices 0..i.
// Paths shorter than i+1 vertices never agree.
func (p Path) EqualsUpTo(other Path, i int) bool {
	if i < 0 || len(p.nodes) <= i || len(other.nodes) <= i {
		return false
	}
	for j := 0; j <= i; j++ {
		if p.nodes[j] != other.nodes[j] {
			return false
		}
	}

	return true
}

// Equal reports structural equality of the vertex sequences.
func (p Path) Equal(other Path) bool {
	if len(p.nodes) != len(other.nodes) {
		return false
	}
	if len(p.nodes) == 0 {
		return true
	}

	return p.EqualsUpTo(other, len(p.nodes)-1)
}

// Key returns a canonical string of the vertex sequence, usable as a map key.
func (p Path) Key() string {
	var b strings.Builder
	b.Grow(len(p.nodes) * 4)
	for i, n := range p.nodes {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(n))
	}

	return b.String()
}

// IsSimple reports whether no vertex repeats.
func (p Path) IsSimple() bool {
	seen := make(map[int]struct{}, len(p.nodes))
	for _, n := range p.nodes {
		if _, dup := seen[n]; dup {
			return false
		}
		seen[n] = struct{}{}
	}

	return true
}

// Recompute returns the sum of the stored weights. It equals Cost() up to
// floating-point reassociation.
func (p Path) Recompute() float64 {
	var sum float64
	for _, w := range p.weights {
		sum += w
	}

	return sum
}

// String renders the path as "[0 1 2] (cost 3)".
func (p Path) String() string {
	return fmt.Sprintf("%v (cost %g)", p.nodes, p.cost)
}
