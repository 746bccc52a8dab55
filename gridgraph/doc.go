// SPDX-License-Identifier: MIT

// Package gridgraph exposes a 2D grid of cell values as a read-only graph
// store for shortest-path queries over terrain.
//
// What:
//
//   - GridGraph wraps a rectangular [][]int grid with a tunable LandThreshold.
//   - Cells with value < LandThreshold are walls; the rest are nodes keyed by Cell.
//   - Moving onto a cell costs that cell's value.
//   - GridGraph satisfies the dijkstra Store contract directly, without
//     building adjacency lists; ToCoreGraph materializes it when needed.
//
// Options:
//
//   - GridOptions.LandThreshold: minimum passable value (≥ 0).
//   - GridOptions.Conn: Conn4 (4-neighbors) or Conn8 (8-neighbors).
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrBadThreshold: negative LandThreshold.
package gridgraph
