// SPDX-License-Identifier: MIT

// Package lvlpath answers single-source, single-target shortest-path queries
// over directed graphs with non-negative edge weights.
//
// Layout:
//
//	core/        thread-safe, generic, directed weighted Graph
//	dijkstra/    the search engine, path extraction and the query facade
//	gridgraph/   2D terrain grids served as a read-only graph store
//	sqlitestore/ SQLite-backed graph store (modernc.org/sqlite, no cgo)
//	graphfile/   YAML, JSON and HCL graph definition files
//	query/       instrumented query service (slog, OpenTelemetry, Prometheus)
//	cmd/lvlpath  command-line front end
//
// Quick example:
//
//	g := core.NewGraph[string, float64]()
//	g.AddEdge("A", "B", 1)
//	g.AddEdge("B", "C", 2)
//	g.AddEdge("A", "C", 5)
//
//	path, _ := dijkstra.ShortestPathData(g, "A", "C") // [A B C]
//	cost, _ := dijkstra.ShortestPathCost(g, "A", "C") // 3
//
// The search engine reads any store that implements dijkstra.Store: two
// methods, ContainsNode and OutgoingEdges. It never mutates the store.
package lvlpath
