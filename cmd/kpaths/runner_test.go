package main

import (
	"bytes"
	"context"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	log "github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/kpaths/config"
	"github.com/katalvlaran/kpaths/progress"
)

func roadsFile(t *testing.T) *config.File {
	t.Helper()
	f, err := config.Load(filepath.Join("..", "..", "config", "testdata", "roads.yaml"))
	require.NoError(t, err)

	return f
}

func TestRunQueries(t *testing.T) {
	logger, hook := test.NewNullLogger()
	logger.SetLevel(log.DebugLevel)
	reg := prometheus.NewRegistry()
	metrics, err := progress.NewMetrics(reg)
	require.NoError(t, err)

	results, err := runQueries(context.Background(), roadsFile(t), runOptions{
		Parallel: 2,
		Logger:   logger,
		Metrics:  metrics,
	})
	require.NoError(t, err)
	require.Len(t, results, 2)

	first := results[0]
	assert.Equal(t, "c-to-h", first.Query)
	assert.Equal(t, "done", first.State)
	require.Len(t, first.Routes, 3)
	assert.Equal(t, []string{"C", "E", "F", "H"}, first.Routes[0].Vertices)
	assert.Equal(t, 5.0, first.Routes[0].Cost)
	_, err = uuid.Parse(first.RunID)
	assert.NoError(t, err)

	// Incoming, at most 3 edges: H back to C over predecessors.
	second := results[1]
	assert.Equal(t, "exhausted", second.State)
	require.NotEmpty(t, second.Routes)
	assert.Equal(t, []string{"H", "F", "E", "C"}, second.Routes[0].Vertices)
	for _, r := range second.Routes {
		assert.LessOrEqual(t, r.Hops(), 3)
	}
	assert.NotEqual(t, first.RunID, second.RunID)

	// Every query logs its own done event tagged with its run ID.
	done := 0
	for _, e := range hook.AllEntries() {
		if e.Data["kind"] == progress.Done.String() {
			done++
			assert.Contains(t, []string{first.RunID, second.RunID}, e.Data["run_id"])
		}
	}
	assert.Equal(t, 2, done)
	assert.Equal(t, 2.0, testutil.ToFloat64(metrics.EventsCounter(progress.Done.String())))
}

func TestRunQueries_RejectedQueryDoesNotStopOthers(t *testing.T) {
	f := roadsFile(t)
	f.Queries[0].Start = "Z"
	logger, _ := test.NewNullLogger()

	results, err := runQueries(context.Background(), f, runOptions{Logger: logger})
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Contains(t, results[0].Error, "start vertex not found")
	assert.Equal(t, "pending", results[0].State)
	assert.Empty(t, results[0].Routes)
	assert.Empty(t, results[1].Error)
	assert.NotEmpty(t, results[1].Routes)
}

func TestRunQueries_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	logger, _ := test.NewNullLogger()

	results, err := runQueries(ctx, roadsFile(t), runOptions{Logger: logger})
	require.NoError(t, err)
	for _, r := range results {
		assert.True(t, r.Cancelled, r.Query)
		assert.Empty(t, r.Routes, r.Query)
	}
}

func TestRunQueries_GraphError(t *testing.T) {
	f := roadsFile(t)
	f.Graph.Edges = append(f.Graph.Edges, config.Edge{From: "C", To: "D", Weight: 9})

	_, err := runQueries(context.Background(), f, runOptions{})
	assert.Error(t, err)
}

func TestRunQueries_BadTimeout(t *testing.T) {
	f := roadsFile(t)
	f.Timeout = "later"

	_, err := runQueries(context.Background(), f, runOptions{})
	assert.ErrorIs(t, err, config.ErrInvalid)
}

func TestWriteText(t *testing.T) {
	var buf bytes.Buffer
	logger, _ := test.NewNullLogger()
	results, err := runQueries(context.Background(), roadsFile(t), runOptions{Logger: logger})
	require.NoError(t, err)
	results = append(results, queryResult{Query: "bad", Start: "X", Goal: "Y", K: 1, Error: "boom"})

	require.NoError(t, writeText(&buf, results))
	out := buf.String()
	assert.Contains(t, out, "c-to-h (C -> H, k=3): done, 3 found\n")
	assert.Contains(t, out, "  1. C -> E -> F -> H  cost=5\n")
	// Three routes cost 8; C-E-F-G-H is generated first and wins the tie.
	assert.Contains(t, out, "  1. C -> E -> F -> H  cost=5\n  2. C -> E -> G -> H  cost=7\n  3. C -> E -> F -> G -> H  cost=8\n")
	assert.NotContains(t, out, "C -> D -> F -> H")
	assert.Contains(t, out, "bad (X -> Y, k=1): error: boom\n")
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	in := []queryResult{{Query: "q", RunID: "id", Start: "A", Goal: "B", K: 1, State: "exhausted"}}
	require.NoError(t, writeJSON(&buf, in))

	var out []queryResult
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))
	assert.Equal(t, in, out)
	assert.NotContains(t, buf.String(), "cancelled")
}

func TestWriteMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics, err := progress.NewMetrics(reg)
	require.NoError(t, err)
	metrics.Observe(progress.Event{Kind: progress.PathAccepted, Nodes: 3, Cost: 4})

	var buf bytes.Buffer
	require.NoError(t, writeMetrics(&buf, reg))
	assert.Contains(t, buf.String(), `kpaths_events_total{kind="accepted"} 1`)
	assert.Contains(t, buf.String(), "kpaths_accepted_path_cost_count 1")
}

func TestSetupLogging(t *testing.T) {
	defer log.SetOutput(log.StandardLogger().Out)

	var buf bytes.Buffer
	require.Error(t, setupLogging("loud", "", &buf))

	file := filepath.Join(t.TempDir(), "logs", "kpaths.log")
	require.NoError(t, setupLogging("debug", file, &buf))
	assert.Equal(t, log.DebugLevel, log.GetLevel())
	log.Debug("hello")
	assert.Contains(t, buf.String(), "hello")
	assert.FileExists(t, file)

	log.SetLevel(log.InfoLevel)
}
