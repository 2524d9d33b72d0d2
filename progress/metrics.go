package progress

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics counts events and records the cost distribution of accepted paths.
type Metrics struct {
	events *prometheus.CounterVec
	cost   prometheus.Histogram
}

// NewMetrics registers the collectors with reg. Registering twice on the same
// registry reuses the collectors already there.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		events: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "kpaths_events_total",
			Help: "Progress events emitted by k-shortest-paths computations, by kind.",
		}, []string{"kind"}),
		cost: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "kpaths_accepted_path_cost",
			Help:    "Total cost of every path accepted into a result list.",
			Buckets: prometheus.ExponentialBuckets(1, 2, 16),
		}),
	}

	var are prometheus.AlreadyRegisteredError
	if err := reg.Register(m.events); err != nil {
		if !errors.As(err, &are) {
			return nil, err
		}
		m.events = are.ExistingCollector.(*prometheus.CounterVec)
	}
	if err := reg.Register(m.cost); err != nil {
		if !errors.As(err, &are) {
			return nil, err
		}
		m.cost = are.ExistingCollector.(prometheus.Histogram)
	}

	return m, nil
}

// Observe records e.
func (m *Metrics) Observe(e Event) {
	m.events.WithLabelValues(e.Kind.String()).Inc()
	if e.Kind == ShortestPathFound || e.Kind == PathAccepted {
		m.cost.Observe(e.Cost)
	}
}

// EventsCounter returns the counter for one event kind label.
func (m *Metrics) EventsCounter(kind string) prometheus.Counter {
	return m.events.WithLabelValues(kind)
}
