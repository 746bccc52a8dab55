// SPDX-License-Identifier: MIT

// Package dijkstra answers single-source, single-target shortest-path queries
// over a weighted, directed graph with non-negative edge weights.
//
// It is a read-only query layer: the graph is any Store (core.Graph, the
// SQLite-backed sqlitestore.Store, or a caller's own type) and is consulted
// only through ContainsNode and OutgoingEdges.
//
// Overview:
//
//   - Search runs Dijkstra's greedy frontier expansion from start and stops as
//     soon as end is popped, returning the terminal SearchRecord for end.
//   - Reconstruct walks the terminal record's predecessor chain and returns the
//     node values from start to end.
//   - ShortestPathCost and ShortestPathData are the two query entry points and
//     simply combine the above.
//   - Distances runs the same engine without a target and returns the final
//     cost of every reachable node.
//
// Implementation:
//
//   - The frontier is a container/heap min-heap ordered by cost.
//   - Lazy decrease-key: every strict improvement pushes a new record; older,
//     costlier records for the same node stay in the heap and are skipped when
//     popped (their cost exceeds the node's best-known cost).
//   - Search records live in a per-query arena and link to their predecessor by
//     index, so nothing outlives the query or is shared between queries.
//   - Ties between equal-cost records are broken by heap order and are not part
//     of the contract; only the cost of the returned path is.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E), O(E) worst case for frontier entries.
//
// Non-negative weights:
//
// Correctness depends on every edge weight being ≥ 0; this is the caller's
// obligation. By default weights are not validated and a negative weight
// silently produces a wrong answer. WithNegativeWeightCheck turns the check on
// and reports ErrNegativeWeight instead.
//
// Errors (sentinel, match with errors.Is):
//
//   - ErrNilGraph:        the Store is nil.
//   - ErrNodeNotFound:    start or end does not exist (checked before searching).
//   - ErrPathNotFound:    both exist but end is unreachable from start.
//   - ErrNegativeWeight:  a negative edge was relaxed (WithNegativeWeightCheck).
//   - ErrBadMaxCost:      WithMaxCost got a negative or NaN value.
//   - ErrBadInfThreshold: WithInfEdgeThreshold got a value ≤ 0 or NaN.
//
// Example usage:
//
//	g := core.NewGraph[string, float64]()
//	g.AddEdge("a", "b", 3)
//	g.AddEdge("b", "c", 1)
//
//	cost, err := dijkstra.ShortestPathCost(g, "a", "c")   // 4
//	path, err := dijkstra.ShortestPathData(g, "a", "c")   // [a b c]
//
// Concurrency:
//
// A query is single-threaded and synchronous and owns all its state. Any
// number of queries may run in parallel against a Store that is not being
// mutated; against a mutating store the result is undefined.
package dijkstra
