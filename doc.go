// Package kpaths computes the k shortest loopless paths between two vertices
// of a weighted graph, using Yen's algorithm over a hop-bounded Dijkstra.
//
// Packages:
//
//	core/     – thread-safe mutable Graph and immutable CSR View (Accessor)
//	path/     – vertex sequences with per-edge weights and cached cost
//	search/   – hop-bounded shortest path with vertex/edge exclusions
//	yen/      – Yen's k-shortest loopless paths, candidate pool, lifecycle
//	progress/ – progress events, logrus and prometheus observers
//	config/   – YAML/TOML workload files with validation
//	cmd/      – kpaths command-line tool
//
// Quick start:
//
//	g := core.NewGraph(core.WithDirected(true))
//	g.AddEdge("A", "B", 1)
//	g.AddEdge("B", "C", 1)
//	g.AddEdge("A", "C", 3)
//	v, _ := core.NewView(g, core.Outgoing)
//	routes, _ := yen.KShortestPaths(v, "A", "C", 2)
//	// routes[0]: A→B→C (2), routes[1]: A→C (3)
//
// Paths are loopless and never exceed the configured maximum number of edges.
// Results come in non-decreasing order of total weight, ties in generation
// order. Negative weights are rejected when the graph is built.
package kpaths
