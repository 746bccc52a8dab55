// SPDX-License-Identifier: MIT

package gridgraph

import (
	"fmt"

	"github.com/katalvlaran/lvlpath/core"
)

// NewGridGraph constructs a GridGraph from a non-empty, rectangular 2D slice
// indexed as values[y][x]. It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if grid has no rows or no columns,
// ErrNonRectangular if any row length differs and ErrBadThreshold for a
// negative LandThreshold.
// Complexity: O(W×H) time and memory.
func NewGridGraph(values [][]int, opts GridOptions) (*GridGraph, error) {
	if opts.LandThreshold < 0 {
		return nil, ErrBadThreshold
	}
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	for _, row := range values {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	// Deep copy to prevent external mutation
	cells := make([][]int, h)
	for y := 0; y < h; y++ {
		cells[y] = make([]int, w)
		copy(cells[y], values[y])
	}
	// Neighbor order is the relaxation order of a search: N, (NE,) E, ...
	var offsets [][2]int
	if opts.Conn == Conn8 {
		offsets = [][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
	} else {
		offsets = [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	}

	return &GridGraph{
		Width:           w,
		Height:          h,
		LandThreshold:   opts.LandThreshold,
		Conn:            opts.Conn,
		cells:           cells,
		neighborOffsets: offsets,
	}, nil
}

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (gg *GridGraph) InBounds(x, y int) bool {
	return x >= 0 && x < gg.Width && y >= 0 && y < gg.Height
}

// Value returns the stored value of c, or false when c is out of bounds.
func (gg *GridGraph) Value(c Cell) (int, bool) {
	if !gg.InBounds(c.X, c.Y) {
		return 0, false
	}

	return gg.cells[c.Y][c.X], true
}

// ContainsNode reports whether c is an in-bounds, passable cell.
// Complexity: O(1).
func (gg *GridGraph) ContainsNode(c Cell) bool {
	v, ok := gg.Value(c)

	return ok && v >= gg.LandThreshold
}

// OutgoingEdges returns one edge per passable neighbor of c, weighted by the
// neighbor's value. Returns core.ErrNodeNotFound if c is not a node.
// Complexity: O(d), d = 4 or 8.
func (gg *GridGraph) OutgoingEdges(c Cell) ([]core.Edge[Cell, int], error) {
	if !gg.ContainsNode(c) {
		return nil, fmt.Errorf("%w: cell %v", core.ErrNodeNotFound, c)
	}
	out := make([]core.Edge[Cell, int], 0, len(gg.neighborOffsets))
	for _, d := range gg.neighborOffsets {
		n := Cell{X: c.X + d[0], Y: c.Y + d[1]}
		if !gg.ContainsNode(n) {
			continue
		}
		out = append(out, core.Edge[Cell, int]{
			ID:     c.String() + ">" + n.String(),
			From:   c,
			To:     n,
			Weight: gg.cells[n.Y][n.X],
		})
	}

	return out, nil
}

// ToCoreGraph materializes the GridGraph as a *core.Graph. Passable cells are
// added row-major, then their outgoing edges in neighbor order.
// Complexity: O(W×H×d) time and memory.
func (gg *GridGraph) ToCoreGraph() *core.Graph[Cell, int] {
	g := core.NewGraph[Cell, int](core.WithCapacity(gg.Width * gg.Height))
	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			if c := (Cell{X: x, Y: y}); gg.ContainsNode(c) {
				g.AddNode(c)
			}
		}
	}
	for _, c := range g.Nodes() {
		edges, _ := gg.OutgoingEdges(c)
		for _, e := range edges {
			// Neighbor pairs are distinct and unique per cell, so AddEdge cannot fail.
			_, _ = g.AddEdge(e.From, e.To, e.Weight)
		}
	}

	return g
}
