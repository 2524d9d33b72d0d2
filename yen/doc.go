// Package yen computes the K lowest-cost simple paths between two vertices with
// Yen's algorithm.
//
// Overview:
//
//   - The first path is the constrained shortest path from start to goal.
//   - Every further path deviates from the most recently accepted one at a
//     spur node: the root (prefix up to the spur node) is kept, and a spur path
//     from the spur node to the goal is searched with
//     • every vertex of the root except the spur node excluded (no cycles);
//     • the next edge of every accepted path sharing the root excluded
//     (no regenerated results).
//   - Root+spur splices go into a deduplicating min-cost pool; the pool's
//     cheapest entry becomes the next accepted path.
//
// Direction:
//
//	The graph view passed in decides the direction. Build it with
//	core.Outgoing or core.Incoming on a directed graph, or use an undirected
//	graph. core.Both is not supported (core.NewView rejects it).
//
// Termination states:
//
//   - Done: k paths were accepted.
//   - Exhausted: the pool ran dry first (fewer than k simple paths exist within
//     maxDepth, or the termination flag fired). The two causes are not told
//     apart; inspect the termination flag after Compute if it matters.
//
// Complexity:
//
//	K · L spur searches, where L ≤ maxDepth+1 is the accepted path length, each
//	costing one search.ShortestPath.
//
// Thread safety:
//
//	A Yen value owns mutable exclusion sets and must not be shared between
//	concurrent computations. Independent Yen values may share one core.View.
//
// Example:
//
//	routes, err := yen.KShortestPaths(view, "A", "H", 3, yen.WithMaxDepth(4))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, r := range routes {
//	    fmt.Println(r.Vertices, r.Cost)
//	}
package yen
