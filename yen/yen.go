package yen

import (
	"github.com/katalvlaran/kpaths/core"
	"github.com/katalvlaran/kpaths/path"
	"github.com/katalvlaran/kpaths/progress"
	"github.com/katalvlaran/kpaths/search"
)

// Yen holds the configuration and working state of one k-shortest-paths
// computation. Build it with New, run Compute, read Paths or Routes, then
// Release the working buffers.
type Yen struct {
	g           core.Accessor
	searcher    *search.Searcher
	start, goal int
	k           int
	opts        Options

	// exclusion is cleared and refilled at the start of every spur iteration.
	exclusion  *search.Exclusion
	candidates *Candidates
	paths      []path.Path
	state      State
}

// New validates the arguments and prepares a computation of at most k paths
// from start to goal over g.
//
// Validation order: ErrNilGraph, ErrBadK, ErrBadMaxDepth, ErrStartNotFound,
// ErrGoalNotFound. No search work happens before validation succeeds.
func New(g core.Accessor, start, goal string, k int, opts ...Option) (*Yen, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if g == nil {
		return nil, ErrNilGraph
	}
	if k <= 0 {
		return nil, ErrBadK
	}
	if cfg.MaxDepth < 1 {
		return nil, ErrBadMaxDepth
	}
	s, ok := g.ToMapped(start)
	if !ok {
		return nil, ErrStartNotFound
	}
	t, ok := g.ToMapped(goal)
	if !ok {
		return nil, ErrGoalNotFound
	}

	return &Yen{
		g:          g,
		searcher:   search.New(g, search.WithTerminationFlag(cfg.Termination)),
		start:      s,
		goal:       t,
		k:          k,
		opts:       cfg,
		exclusion:  search.NewExclusion(),
		candidates: NewCandidates(),
		paths:      make([]path.Path, 0, k),
	}, nil
}

// Compute runs Yen's algorithm and returns the accepted paths in
// non-decreasing cost order (0..k entries). Calling it again recomputes from
// scratch. After Release it does no work and returns the paths kept from the
// last run.
func (y *Yen) Compute() []path.Path {
	if y.released() {
		return y.Paths()
	}
	y.paths = y.paths[:0]
	y.candidates = NewCandidates()
	y.state = Exhausted
	defer func() {
		y.observe(progress.Event{Kind: progress.Done, Found: len(y.paths), Requested: y.k})
	}()

	// Initial best path, no exclusions.
	y.exclusion.Clear()
	first, ok := y.searcher.ShortestPath(y.start, y.goal, y.opts.MaxDepth, y.exclusion)
	if !ok {
		return y.Paths()
	}
	y.accept(first, progress.ShortestPathFound)

	for len(y.paths) < y.k {
		y.spur(y.paths[len(y.paths)-1])

		// A cancelled round may have skipped spur nodes, so its pool minimum is
		// not trustworthy.
		if !y.opts.Termination.Running() {
			return y.Paths()
		}
		next, ok := y.candidates.TakeMin()
		if !ok {
			return y.Paths()
		}
		y.accept(next, progress.PathAccepted)
	}
	y.state = Done

	return y.Paths()
}

// spur generates one candidate per spur node of base, from the node before the
// goal back to the start.
func (y *Yen) spur(base path.Path) {
	for i := base.Len() - 2; i >= 0; i-- {
		y.exclusion.Clear()

		spurNode := base.Node(i)
		root := base.Prefix(i, y.g)

		// Forbid the next edge of every accepted path that shares this root.
		for _, p := range y.paths {
			if p.Len() > i+1 && root.EqualsUpTo(p, i) {
				y.exclusion.ExcludeEdge(p.Edge(i))
			}
		}
		// Forbid re-entering the root.
		for j := 0; j < root.Len(); j++ {
			if n := root.Node(j); n != spurNode {
				y.exclusion.ExcludeVertex(n)
			}
		}

		// +1: the root's last vertex is the spur path's first.
		budget := y.opts.MaxDepth - root.Len() + 1
		spurPath, ok := y.searcher.ShortestPath(spurNode, y.goal, budget, y.exclusion)
		if !ok {
			continue
		}
		candidate := root.DropLast().Concat(spurPath)
		if y.candidates.Offer(candidate) {
			y.observe(progress.Event{Kind: progress.CandidateFound, Nodes: candidate.Len(), Cost: candidate.Cost()})
		}
	}
}

func (y *Yen) accept(p path.Path, kind progress.Kind) {
	y.paths = append(y.paths, p)
	y.observe(progress.Event{Kind: kind, Nodes: p.Len(), Cost: p.Cost()})
}

func (y *Yen) observe(e progress.Event) {
	y.opts.Observer.Observe(e)
}

// Paths returns a copy of the accepted paths.
func (y *Yen) Paths() []path.Path {
	out := make([]path.Path, len(y.paths))
	copy(out, y.paths)

	return out
}

// State reports how the last Compute ended.
func (y *Yen) State() State { return y.state }

// CandidateCount returns the number of generated but not accepted paths left
// in the pool.
func (y *Yen) CandidateCount() int {
	if y.candidates == nil {
		return 0
	}

	return y.candidates.Len()
}

// Routes maps the accepted paths back to external vertex IDs. After Release
// the vertex mapping is gone and Routes returns nil.
func (y *Yen) Routes() []Route {
	if y.released() {
		return nil
	}
	out := make([]Route, 0, len(y.paths))
	for _, p := range y.paths {
		r := Route{
			Vertices: make([]string, p.Len()),
			Weights:  p.Weights(),
			Cost:     p.Cost(),
		}
		for i := range r.Vertices {
			r.Vertices[i] = y.g.ToOriginal(p.Node(i))
		}
		out = append(out, r)
	}

	return out
}

// Release drops the graph, the searcher and the candidate pool. Accepted
// paths stay readable through Paths; Compute and Routes become no-ops.
func (y *Yen) Release() {
	if y.searcher != nil {
		y.searcher.Release()
	}
	y.g = nil
	y.searcher = nil
	y.candidates = nil
	y.exclusion = nil
}

func (y *Yen) released() bool { return y.searcher == nil }

// KShortestPaths computes up to k routes from start to goal over g in one call.
func KShortestPaths(g core.Accessor, start, goal string, k int, opts ...Option) ([]Route, error) {
	y, err := New(g, start, goal, k, opts...)
	if err != nil {
		return nil, err
	}
	defer y.Release()
	y.Compute()

	return y.Routes(), nil
}
