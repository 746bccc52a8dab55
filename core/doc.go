// SPDX-License-Identifier: MIT

// Package core provides a thread-safe, in-memory, directed and weighted Graph
// keyed by arbitrary comparable node values.
//
// core.Graph is the reference graph store for lvlpath's query layer: the
// dijkstra package reads it through two calls only, ContainsNode and
// OutgoingEdges, and never mutates it.
//
// Type parameters:
//
//   - K comparable – the node identity (string, int, a struct of IDs, ...).
//   - W Weight     – any integer or floating-point type; converted to a float64
//     cost by Edge.Cost.
//
// Configuration Options (GraphOption):
//
//	– WithMultiEdges()
//	    Allows multiple parallel edges between the same ordered pair.
//	    Otherwise a second AddEdge(from,to) → ErrMultiEdgeNotAllowed.
//
//	– WithLoops()
//	    Permits self-loops (from == to); otherwise AddEdge(v,v) → ErrLoopNotAllowed.
//
//	– WithCapacity(n)
//	    Presizes the node catalog.
//
// Core Methods:
//
//	// Node lifecycle
//	AddNode(v K)                        // O(1), idempotent
//	ContainsNode(v K) bool              // O(1)
//	RemoveNode(v K) error               // O(V+E), drops incident edges
//
//	// Edge lifecycle
//	AddEdge(from, to K, w W) (id string, err error) // O(1)†
//	RemoveEdge(id string) error                      // O(deg(from))
//	HasEdge(from, to K) bool                         // O(deg(from))
//
//	// Queries
//	OutgoingEdges(v K) ([]Edge[K,W], error) // O(deg(v)), insertion order
//	Nodes() []K                             // O(V), insertion order
//	Edges() []Edge[K,W]                     // O(V+E)
//	NodeCount(), EdgeCount()                // O(1)
//
//	// Copies
//	Clone() *Graph[K,W]                     // O(V+E)
//	Clear()
//
// † O(deg(from)) when the multi-edge check runs.
//
// Weights:
//
// NaN weights are rejected with ErrBadWeight. Negative weights are stored as
// given; shortest-path queries assume non-negative weights and it is the
// caller's obligation to respect that.
//
// Concurrency:
//
// A single sync.RWMutex guards all catalogs. Queries take the read lock, so
// any number of shortest-path searches may read a Graph concurrently. A search
// running while another goroutine mutates the graph sees a consistent view per
// call, not per search; hand such searches a Clone().
package core
