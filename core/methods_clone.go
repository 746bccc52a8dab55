// SPDX-License-Identifier: MIT
//
// File: methods_clone.go
// Role: Cloning and clearing graph instances.
// Determinism:
//   - Clone carries over the edge ID sequence so AddEdge on the clone never
//     reuses an ID already present in it.

package core

// Clone returns a deep copy of the Graph: configuration, nodes (in insertion
// order), edges (with their IDs) and the edge ID sequence.
//
// Clone is the way to hand a query layer a quiescent copy of a graph that
// other goroutines keep mutating.
//
// Complexity: O(V + E).
func (g *Graph[K, W]) Clone() *Graph[K, W] {
	g.mu.RLock()
	defer g.mu.RUnlock()

	opts := []GraphOption{WithCapacity(len(g.order))}
	if g.allowMulti {
		opts = append(opts, WithMultiEdges())
	}
	if g.allowLoops {
		opts = append(opts, WithLoops())
	}
	clone := NewGraph[K, W](opts...)
	clone.edgeSeq = g.edgeSeq

	// Nodes first so insertion order survives, then edges per source node.
	for _, v := range g.order {
		clone.addNodeLocked(v)
	}
	var dst *node[K, W]
	for _, v := range g.order {
		dst = clone.nodes[v]
		for _, e := range g.nodes[v].out {
			ce := *e
			clone.edges[ce.ID] = &ce
			dst.out = append(dst.out, &ce)
		}
	}

	return clone
}

// Clear removes all nodes and edges and restarts edge IDs from "e1".
// Configuration flags are kept.
// Complexity: O(1) (old catalogs are left to the garbage collector).
func (g *Graph[K, W]) Clear() {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.order = nil
	g.nodes = make(map[K]*node[K, W])
	g.edges = make(map[string]*Edge[K, W])
	g.edgeSeq = 0
}
