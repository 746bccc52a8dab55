// SPDX-License-Identifier: MIT
//
// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/RemoveEdge/HasEdge/OutgoingEdges/Edges/EdgeCount,
//       plus nextEdgeID().
// Determinism:
//   - OutgoingEdges() preserves edge insertion order.
//   - Edges() walks nodes in insertion order, then each node's outgoing list.
//   - nextEdgeID() is monotonic and stable ("e" + decimal).

package core

import (
	"fmt"
	"strconv"
)

// edgeIDPrefix is a private textual prefix for edge identifiers.
// Ensures stable human-readable IDs like "e1", "e2", ...
const edgeIDPrefix = 'e'

// AddEdge creates a directed edge from → to with the given weight and returns its ID.
//
// Steps:
//  1. Reject NaN weights (ErrBadWeight) and disallowed self-loops (ErrLoopNotAllowed).
//  2. Lock mu; ensure both endpoints exist (missing nodes are created).
//  3. Reject a parallel edge unless multi-edges are enabled (ErrMultiEdgeNotAllowed).
//  4. Generate the edge ID, store the edge and append it to from's outgoing list.
//
// Weights are not checked for sign: negative weights are storable, and it is
// the caller's obligation not to run shortest-path queries over them.
//
// Complexity: O(1) amortized, O(deg(from)) when the multi-edge check runs.
func (g *Graph[K, W]) AddEdge(from, to K, weight W) (string, error) {
	// 1) Input validation
	if weight != weight { // NaN is the only value unequal to itself
		return "", fmt.Errorf("%w: %v→%v is NaN", ErrBadWeight, from, to)
	}
	if from == to && !g.allowLoops {
		return "", ErrLoopNotAllowed
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	// 2) Ensure nodes exist
	src := g.addNodeLocked(from)
	g.addNodeLocked(to)

	// 3) Multi-edge existence check
	if !g.allowMulti {
		for _, e := range src.out {
			if e.To == to {
				return "", ErrMultiEdgeNotAllowed
			}
		}
	}

	// 4) Store and link
	e := &Edge[K, W]{ID: g.nextEdgeID(), From: from, To: to, Weight: weight}
	g.edges[e.ID] = e
	src.out = append(src.out, e)

	return e.ID, nil
}

// RemoveEdge deletes the edge with the given ID.
// Complexity: O(deg(from)).
func (g *Graph[K, W]) RemoveEdge(eid string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	e, ok := g.edges[eid]
	if !ok {
		return ErrEdgeNotFound
	}
	g.unlinkLocked(e)
	delete(g.edges, eid)

	return nil
}

// unlinkLocked removes e from its source node's outgoing list,
// preserving the order of the remaining edges. Caller holds mu for writing.
func (g *Graph[K, W]) unlinkLocked(e *Edge[K, W]) {
	src, ok := g.nodes[e.From]
	if !ok {
		return
	}
	for i, cur := range src.out {
		if cur == e {
			src.out = append(src.out[:i], src.out[i+1:]...)
			return
		}
	}
}

// HasEdge reports whether at least one edge from → to exists.
// Complexity: O(deg(from)).
func (g *Graph[K, W]) HasEdge(from, to K) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	src, ok := g.nodes[from]
	if !ok {
		return false
	}
	for _, e := range src.out {
		if e.To == to {
			return true
		}
	}

	return false
}

// OutgoingEdges returns copies of the edges leaving v, in insertion order.
// Returns ErrNodeNotFound if v does not exist.
// Complexity: O(deg(v)).
func (g *Graph[K, W]) OutgoingEdges(v K) ([]Edge[K, W], error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	n, ok := g.nodes[v]
	if !ok {
		return nil, ErrNodeNotFound
	}
	out := make([]Edge[K, W], len(n.out))
	for i, e := range n.out {
		out[i] = *e
	}

	return out, nil
}

// Edges returns copies of all edges: nodes in insertion order, then each
// node's outgoing edges in insertion order.
// Complexity: O(V + E).
func (g *Graph[K, W]) Edges() []Edge[K, W] {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Edge[K, W], 0, len(g.edges))
	for _, v := range g.order {
		for _, e := range g.nodes[v].out {
			out = append(out, *e)
		}
	}

	return out
}

// EdgeCount returns total number of edges.
// Complexity: O(1).
func (g *Graph[K, W]) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}

// nextEdgeID returns a new unique textual edge ID ("e1", "e2", ...).
// Caller holds mu for writing.
func (g *Graph[K, W]) nextEdgeID() string {
	g.edgeSeq++
	buf := make([]byte, 0, 1+20)                 // "e" + up to 20 digits for uint64
	buf = append(buf, edgeIDPrefix)              // textual prefix
	buf = strconv.AppendUint(buf, g.edgeSeq, 10) // base-10 digits

	return string(buf)
}
