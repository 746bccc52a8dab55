// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Graph, Edge, Weight constraint, options, sentinel errors and NewGraph.
// Concurrency:
//   - A single sync.RWMutex (mu) guards the node catalog, the edge catalog and
//     every per-node outgoing list.
//   - edgeSeq is only advanced while mu is held for writing.

package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrBadWeight indicates an edge weight that cannot be used as a cost (NaN).
	ErrBadWeight = errors.New("core: bad edge weight")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted when multi-edges are disabled.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")
)

// Weight is the set of numeric types usable as edge weights.
// Every Weight converts losslessly enough to a float64 cost for path arithmetic.
type Weight interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Edge is a directed, weighted connection From → To.
//
// Edges returned by Graph methods are copies; mutating them does not
// affect the stored topology.
type Edge[K comparable, W Weight] struct {
	// ID uniquely identifies this edge in its Graph ("e1", "e2", ...).
	ID string

	// From is the source node value.
	From K

	// To is the destination node value.
	To K

	// Weight is the traversal cost of the edge.
	Weight W
}

// Cost returns the edge weight converted to a float64 path cost.
func (e Edge[K, W]) Cost() float64 { return float64(e.Weight) }

// node is the catalog record of one graph node: its value plus the
// outgoing edges in insertion order.
type node[K comparable, W Weight] struct {
	value K
	out   []*Edge[K, W]
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(o *graphOptions)

type graphOptions struct {
	allowMulti bool
	allowLoops bool
	capacity   int
}

// WithMultiEdges permits parallel edges between the same ordered pair of nodes.
func WithMultiEdges() GraphOption {
	return func(o *graphOptions) { o.allowMulti = true }
}

// WithLoops permits self-loops (edges from a node to itself).
func WithLoops() GraphOption {
	return func(o *graphOptions) { o.allowLoops = true }
}

// WithCapacity presizes the node catalog for roughly n nodes.
// Non-positive values are ignored.
func WithCapacity(n int) GraphOption {
	return func(o *graphOptions) {
		if n > 0 {
			o.capacity = n
		}
	}
}

// Graph is an in-memory, directed, weighted graph keyed by comparable node values.
//
// It supports parallel edges (WithMultiEdges) and self-loops (WithLoops).
// Node enumeration follows insertion order and per-node outgoing edges
// follow edge insertion order, so every query over a Graph is reproducible.
type Graph[K comparable, W Weight] struct {
	mu sync.RWMutex

	// Configuration flags
	allowMulti bool
	allowLoops bool

	// Storage
	edgeSeq uint64                 // edge ID generator, advanced under mu
	order   []K                    // node values in insertion order
	nodes   map[K]*node[K, W]      // node value → catalog record
	edges   map[string]*Edge[K, W] // edge ID → Edge
}

// NewGraph creates an empty directed Graph.
// By default it forbids self-loops and parallel edges.
// Complexity: O(1) (O(n) with WithCapacity(n)).
func NewGraph[K comparable, W Weight](opts ...GraphOption) *Graph[K, W] {
	var cfg graphOptions
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Graph[K, W]{
		allowMulti: cfg.allowMulti,
		allowLoops: cfg.allowLoops,
		order:      make([]K, 0, cfg.capacity),
		nodes:      make(map[K]*node[K, W], cfg.capacity),
		edges:      make(map[string]*Edge[K, W]),
	}
}

// Multigraph reports whether parallel edges are permitted.
func (g *Graph[K, W]) Multigraph() bool { return g.allowMulti }

// Looped reports whether self-loops are permitted.
func (g *Graph[K, W]) Looped() bool { return g.allowLoops }
