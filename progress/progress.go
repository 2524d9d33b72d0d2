// Package progress carries human-readable status notifications out of a
// k-shortest-paths computation. Observers are informational only: nothing they
// do feeds back into the algorithm.
package progress

import "fmt"

// Kind classifies an Event.
type Kind int

const (
	// ShortestPathFound is emitted once for the initial best path.
	ShortestPathFound Kind = iota

	// CandidateFound is emitted when a new candidate enters the pool.
	CandidateFound

	// PathAccepted is emitted when a candidate is promoted to the result list.
	PathAccepted

	// Done is emitted once when the computation finishes.
	Done
)

var kindNames = [...]string{"shortest_path", "candidate", "accepted", "done"}

// String returns a snake_case name usable as a log field or metric label.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}

	return kindNames[k]
}

// Event is one progress notification. Nodes and Cost describe a path for the
// path-related kinds; Found and Requested are set for Done.
type Event struct {
	Kind      Kind
	Nodes     int
	Cost      float64
	Found     int
	Requested int
}

// String renders the event as a status line, e.g.
// "found candidate: 5 nodes / 3.00 weight".
func (e Event) String() string {
	switch e.Kind {
	case ShortestPathFound:
		return fmt.Sprintf("found shortest path: %d nodes / %.2f weight", e.Nodes, e.Cost)
	case CandidateFound:
		return fmt.Sprintf("found candidate: %d nodes / %.2f weight", e.Nodes, e.Cost)
	case PathAccepted:
		return fmt.Sprintf("found path: %d nodes / %.2f weight", e.Nodes, e.Cost)
	case Done:
		return fmt.Sprintf("done.. found %d/%d paths", e.Found, e.Requested)
	default:
		return fmt.Sprintf("unknown event %d", int(e.Kind))
	}
}

// Observer receives progress events.
type Observer interface {
	Observe(Event)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(Event)

// Observe calls f(e).
func (f ObserverFunc) Observe(e Event) { f(e) }

// Nop discards every event.
var Nop Observer = ObserverFunc(func(Event) {})

// Multi fans events out to every non-nil observer, in order.
func Multi(observers ...Observer) Observer {
	out := make(multi, 0, len(observers))
	for _, o := range observers {
		if o != nil {
			out = append(out, o)
		}
	}

	return out
}

type multi []Observer

func (m multi) Observe(e Event) {
	for _, o := range m {
		o.Observe(e)
	}
}
