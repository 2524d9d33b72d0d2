package search

import (
	"context"

	"github.com/katalvlaran/kpaths/path"
)

// TerminationFlag is the cooperative cancellation signal polled during a search.
type TerminationFlag interface {
	// Running reports whether work may continue.
	Running() bool
}

// TerminationFunc adapts a plain function to TerminationFlag.
type TerminationFunc func() bool

// Running calls f.
func (f TerminationFunc) Running() bool { return f() }

// AlwaysRunning never requests termination.
var AlwaysRunning TerminationFlag = TerminationFunc(func() bool { return true })

// FromContext reports Running until ctx is cancelled or its deadline passes.
func FromContext(ctx context.Context) TerminationFlag {
	return TerminationFunc(func() bool { return ctx.Err() == nil })
}

// Exclusion is a vertex blacklist plus an edge blacklist keyed by ordered
// (from,to) pairs. The zero value is not usable; call NewExclusion.
// A nil *Exclusion excludes nothing.
type Exclusion struct {
	vertices map[int]struct{}
	edges    map[path.EdgeKey]struct{}
}

// NewExclusion returns an empty Exclusion.
func NewExclusion() *Exclusion {
	return &Exclusion{
		vertices: make(map[int]struct{}),
		edges:    make(map[path.EdgeKey]struct{}),
	}
}

// ExcludeVertex forbids entering v.
func (e *Exclusion) ExcludeVertex(v int) { e.vertices[v] = struct{}{} }

// ExcludeEdge forbids traversing k.From→k.To.
func (e *Exclusion) ExcludeEdge(k path.EdgeKey) { e.edges[k] = struct{}{} }

// VertexExcluded reports whether v is blacklisted.
func (e *Exclusion) VertexExcluded(v int) bool {
	if e == nil {
		return false
	}
	_, ok := e.vertices[v]

	return ok
}

// EdgeExcluded reports whether from→to is blacklisted.
func (e *Exclusion) EdgeExcluded(from, to int) bool {
	if e == nil {
		return false
	}
	_, ok := e.edges[path.EdgeKey{From: from, To: to}]

	return ok
}

// Allows reports whether the arc from→to may be traversed: neither the target
// vertex nor the arc itself is excluded.
func (e *Exclusion) Allows(from, to int) bool {
	return !e.VertexExcluded(to) && !e.EdgeExcluded(from, to)
}

// Clear empties both sets in place, keeping their allocations.
func (e *Exclusion) Clear() {
	clear(e.vertices)
	clear(e.edges)
}

// Len returns the number of excluded vertices and edges.
func (e *Exclusion) Len() (vertices, edges int) {
	if e == nil {
		return 0, 0
	}

	return len(e.vertices), len(e.edges)
}

// Options configures a Searcher.
type Options struct {
	// Termination is polled once per frontier pop.
	Termination TerminationFlag
}

// Option represents a functional option for configuring a Searcher.
type Option func(*Options)

// WithTerminationFlag sets the cancellation signal. A nil flag is ignored.
func WithTerminationFlag(flag TerminationFlag) Option {
	return func(o *Options) {
		if flag != nil {
			o.Termination = flag
		}
	}
}

// DefaultOptions returns Options that never terminate early.
func DefaultOptions() Options {
	return Options{Termination: AlwaysRunning}
}
