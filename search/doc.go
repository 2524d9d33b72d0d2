// Package search implements the constrained single-pair shortest-path search
// that Yen's algorithm runs once per spur node.
//
// Overview:
//
//   - ShortestPath returns the lowest-cost simple path source→target that uses
//     at most maxEdges edges and touches no excluded vertex or edge.
//   - Exclusion bundles the vertex and edge blacklists. It is a plain value the
//     caller owns, clears and refills; the Searcher only reads it.
//   - TerminationFlag is polled once per frontier pop. A stopped flag makes the
//     search report "no path" instead of a partial result.
//
// Why not plain Dijkstra:
//
//	The hop bound is a second resource. The cheapest way to reach v may use too
//	many hops to finish within the bound, while a dearer way with fewer hops
//	still can. The search therefore settles (vertex, hops) labels: a label for v
//	is discarded only if an earlier (cheaper or equal) label of v used no more
//	hops. Each vertex is settled at most maxEdges+1 times.
//
// Complexity:
//
//   - Time:  O(H · (V + E) log(H · E)) worst case with H = min(maxEdges, V),
//     O((V + E) log E) when the hop bound is slack.
//   - Space: O(H · E) labels in the worst case.
//
// Preconditions:
//
//   - Edge weights are finite and non-negative (core.Graph enforces this).
//   - A Searcher is not safe for concurrent use; reuse it sequentially.
package search
