// Package core provides the in-memory weighted graph that path searches run on,
// and the immutable View that search algorithms actually traverse.
//
// The Graph G = (V,E) is a thread-safe, mutable store keyed by string IDs:
//
//   - Directed vs. undirected edges (WithDirected)
//   - Parallel edges / multi-graphs (WithMultiEdges)
//   - Self-loops (WithLoops)
//   - Non-negative, finite float64 weights; anything else is rejected by AddEdge
//   - Stable edge IDs ("e1", "e2", …) from a counter advanced under the write lock
//
// A View is a read-only snapshot of a Graph for a single traversal Direction.
// It maps every vertex ID to a compact index in [0, NodeCount()) and stores
// successors (Outgoing) or predecessors (Incoming) in flat arrays, so that hot
// loops never touch maps or locks. Views satisfy the Accessor interface which
// is the only graph contract the search and yen packages depend on.
//
// Direction policy:
//
//	– Outgoing: follow directed edges from→to; undirected edges both ways.
//	– Incoming: follow directed edges to→from; undirected edges both ways.
//	– Both:     not supported, NewView returns ErrUnsupportedDirection.
//
// Traversing "both at once" on a directed graph silently turns it into an
// undirected one, which makes path costs inconsistent with the caller's
// intent. Load the graph as undirected instead.
//
// Determinism:
//
//   - Vertices() and Edges() return sorted results.
//   - View indices follow the sorted vertex order, and successor lists follow
//     the sorted target order.
//
// Complexity:
//
//   - AddVertex / AddEdge / HasEdge: O(1) amortized.
//   - NewView: O((V + E) log V).
//   - View.ForEachRelationship: O(deg(v)); View.Weight: O(log deg(v)).
package core
