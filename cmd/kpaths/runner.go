package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/kpaths/config"
	"github.com/katalvlaran/kpaths/core"
	"github.com/katalvlaran/kpaths/progress"
	"github.com/katalvlaran/kpaths/yen"
)

// runOptions configures runQueries.
//
// Parallel – maximum number of queries in flight; values below 1 mean 1.
// Logger   – receives progress and per-query logs. Nil uses the standard logger.
// Metrics  – optional progress metrics shared by all queries.
type runOptions struct {
	Parallel int
	Logger   *log.Logger
	Metrics  *progress.Metrics
}

// queryResult is the outcome of one query.
type queryResult struct {
	Query     string      `json:"query"`
	RunID     string      `json:"run_id"`
	Start     string      `json:"start"`
	Goal      string      `json:"goal"`
	K         int         `json:"k"`
	State     string      `json:"state"`
	Cancelled bool        `json:"cancelled,omitempty"`
	Routes    []yen.Route `json:"routes"`
	Error     string      `json:"error,omitempty"`
}

// runQueries builds the graph of f and runs its queries concurrently. Results
// keep the order of f.Queries. Per-query failures are recorded in the result;
// only graph construction errors are returned.
func runQueries(ctx context.Context, f *config.File, opts runOptions) ([]queryResult, error) {
	if opts.Logger == nil {
		opts.Logger = log.StandardLogger()
	}
	if opts.Parallel < 1 {
		opts.Parallel = 1
	}
	d, err := f.TimeoutDuration()
	if err != nil {
		return nil, err
	}
	if d > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, d)
		defer cancel()
	}

	g, err := f.BuildGraph()
	if err != nil {
		return nil, err
	}

	// One immutable view per direction, shared by every query that needs it.
	views := make(map[core.Direction]*core.View, 2)
	for _, q := range f.Queries {
		dir, err := q.ParsedDirection()
		if err != nil {
			return nil, fmt.Errorf("query %s: %w", q.Name, err)
		}
		if _, ok := views[dir]; ok {
			continue
		}
		if views[dir], err = core.NewView(g, dir); err != nil {
			return nil, fmt.Errorf("query %s: %w", q.Name, err)
		}
	}
	opts.Logger.WithFields(log.Fields{
		"vertices": g.VertexCount(),
		"edges":    g.EdgeCount(),
		"queries":  len(f.Queries),
	}).Info("graph loaded")

	results := make([]queryResult, len(f.Queries))
	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(opts.Parallel)
	for i, q := range f.Queries {
		dir, _ := q.ParsedDirection()
		view := views[dir]
		eg.Go(func() error {
			results[i] = runQuery(egCtx, view, q, opts)
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}

func runQuery(ctx context.Context, view *core.View, q config.Query, opts runOptions) queryResult {
	res := queryResult{
		Query:  q.Name,
		RunID:  uuid.NewString(),
		Start:  q.Start,
		Goal:   q.Goal,
		K:      q.K,
		Routes: []yen.Route{},
	}
	entry := opts.Logger.WithFields(log.Fields{"run_id": res.RunID, "query": q.Name})

	observers := []progress.Observer{progress.NewLogger(entry)}
	if opts.Metrics != nil {
		observers = append(observers, opts.Metrics)
	}
	maxDepth := yen.Unbounded
	if q.MaxDepth > 0 {
		maxDepth = q.MaxDepth
	}

	y, err := yen.New(view, q.Start, q.Goal, q.K,
		yen.WithMaxDepth(maxDepth),
		yen.WithObserver(progress.Multi(observers...)),
		yen.WithContext(ctx),
	)
	if err != nil {
		entry.WithError(err).Warn("query rejected")
		res.State = yen.Pending.String()
		res.Error = err.Error()
		return res
	}
	defer y.Release()

	y.Compute()
	res.Routes = y.Routes()
	res.State = y.State().String()
	if ctx.Err() != nil {
		res.Cancelled = true
		entry.WithError(ctx.Err()).Warn("query stopped early")
	}

	return res
}

// writeText prints one block per query.
func writeText(w io.Writer, results []queryResult) error {
	var b strings.Builder
	for _, r := range results {
		fmt.Fprintf(&b, "%s (%s -> %s, k=%d): ", r.Query, r.Start, r.Goal, r.K)
		switch {
		case r.Error != "":
			fmt.Fprintf(&b, "error: %s\n", r.Error)
			continue
		case r.Cancelled:
			fmt.Fprintf(&b, "%s, cancelled, %d found\n", r.State, len(r.Routes))
		default:
			fmt.Fprintf(&b, "%s, %d found\n", r.State, len(r.Routes))
		}
		for j, route := range r.Routes {
			fmt.Fprintf(&b, "  %d. %s  cost=%g\n", j+1, strings.Join(route.Vertices, " -> "), route.Cost)
		}
	}
	_, err := io.WriteString(w, b.String())

	return err
}

// writeJSON prints results as an indented JSON array.
func writeJSON(w io.Writer, results []queryResult) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(results)
}

// writeMetrics dumps every family of g in the prometheus text format.
func writeMetrics(w io.Writer, g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return err
		}
	}

	return nil
}
