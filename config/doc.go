// Package config loads k-shortest-paths workloads from YAML or TOML files.
//
// A file describes one graph and any number of queries against it:
//
//	timeout: 5s
//	graph:
//	  directed: true
//	  edges:
//	    - {from: C, to: D, weight: 3}
//	    - {from: C, to: E, weight: 2}
//	queries:
//	  - {name: c-to-d, start: C, goal: D, k: 3, max_depth: 4}
//
// Load picks the decoder from the file extension (.yaml, .yml or .toml),
// applies struct-tag validation and returns a File. File.Graph builds the
// core.Graph the queries run over.
package config
