package yen

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/kpaths/progress"
	"github.com/katalvlaran/kpaths/search"
)

// Sentinel errors. All of them wrap ErrInvalidArgument.
var (
	// ErrInvalidArgument is the umbrella for every rejected input.
	ErrInvalidArgument = errors.New("yen: invalid argument")

	// ErrNilGraph indicates a nil graph accessor.
	ErrNilGraph = fmt.Errorf("%w: graph is nil", ErrInvalidArgument)

	// ErrBadK indicates k ≤ 0.
	ErrBadK = fmt.Errorf("%w: k must be positive", ErrInvalidArgument)

	// ErrBadMaxDepth indicates maxDepth < 1.
	ErrBadMaxDepth = fmt.Errorf("%w: maxDepth must be at least 1", ErrInvalidArgument)

	// ErrStartNotFound indicates the start ID does not resolve in the graph.
	ErrStartNotFound = fmt.Errorf("%w: start vertex not found", ErrInvalidArgument)

	// ErrGoalNotFound indicates the goal ID does not resolve in the graph.
	ErrGoalNotFound = fmt.Errorf("%w: goal vertex not found", ErrInvalidArgument)
)

// Unbounded is the default maxDepth: no limit on edges per path.
const Unbounded = math.MaxInt32

// State is the lifecycle state of a computation.
type State int

const (
	// Pending means Compute has not run yet.
	Pending State = iota

	// Done means k paths were accepted.
	Done

	// Exhausted means no further path could be found before reaching k.
	Exhausted
)

// String returns the lower-case state name.
func (s State) String() string {
	switch s {
	case Pending:
		return "pending"
	case Done:
		return "done"
	case Exhausted:
		return "exhausted"
	default:
		return "unknown"
	}
}

// Options configures a computation.
//
// MaxDepth    – maximum number of edges per path (≥ 1). Default Unbounded.
// Observer    – receives progress events. Default progress.Nop.
// Termination – cooperative cancellation polled by every search.
type Options struct {
	MaxDepth    int
	Observer    progress.Observer
	Termination search.TerminationFlag
}

// Option represents a functional option for configuring a computation.
type Option func(*Options)

// WithMaxDepth bounds the number of edges per path. Values below 1 are
// rejected by New with ErrBadMaxDepth.
func WithMaxDepth(d int) Option {
	return func(o *Options) { o.MaxDepth = d }
}

// WithObserver sets the progress observer. A nil observer is ignored.
func WithObserver(obs progress.Observer) Option {
	return func(o *Options) {
		if obs != nil {
			o.Observer = obs
		}
	}
}

// WithTerminationFlag sets the cancellation signal. A nil flag is ignored.
//
// Every search polls the flag. Once it stops, the remaining spur searches of
// the current round find nothing and no further candidate is accepted, even
// if the pool is not empty: Compute returns the paths accepted so far with
// state Exhausted.
func WithTerminationFlag(flag search.TerminationFlag) Option {
	return func(o *Options) {
		if flag != nil {
			o.Termination = flag
		}
	}
}

// WithContext stops the computation once ctx is done, with the same
// semantics as WithTerminationFlag.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Termination = search.FromContext(ctx)
		}
	}
}

// DefaultOptions returns unbounded depth, no observer and no cancellation.
func DefaultOptions() Options {
	return Options{
		MaxDepth:    Unbounded,
		Observer:    progress.Nop,
		Termination: search.AlwaysRunning,
	}
}

// Route is an accepted path expressed in external vertex IDs.
type Route struct {
	Vertices []string  `json:"vertices"`
	Weights  []float64 `json:"weights"`
	Cost     float64   `json:"cost"`
}

// Hops returns the number of edges of the route.
func (r Route) Hops() int {
	if len(r.Vertices) == 0 {
		return 0
	}

	return len(r.Vertices) - 1
}
