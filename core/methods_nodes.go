// SPDX-License-Identifier: MIT
//
// File: methods_nodes.go
// Role: Node lifecycle & queries.
// Determinism:
//   - Nodes() returns values in insertion order.

package core

// AddNode inserts a node if missing. Adding an existing node is a no-op.
// Complexity: O(1) amortized.
func (g *Graph[K, W]) AddNode(v K) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.addNodeLocked(v)
}

// addNodeLocked registers v in the catalog. Caller holds mu for writing.
func (g *Graph[K, W]) addNodeLocked(v K) *node[K, W] {
	if n, ok := g.nodes[v]; ok {
		return n
	}
	n := &node[K, W]{value: v}
	g.nodes[v] = n
	g.order = append(g.order, v)

	return n
}

// ContainsNode reports whether a node with value v exists.
// Complexity: O(1).
func (g *Graph[K, W]) ContainsNode(v K) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.nodes[v]

	return ok
}

// RemoveNode deletes the node v together with every edge entering or leaving it.
//
// Steps:
//  1. Lock mu, fail with ErrNodeNotFound if v is absent.
//  2. Drop v's outgoing edges from the edge catalog.
//  3. Scan the remaining edge catalog once and unlink every edge ending at v.
//  4. Delete v from the catalog and from the insertion order.
//
// Complexity: O(V + E).
func (g *Graph[K, W]) RemoveNode(v K) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	n, ok := g.nodes[v]
	if !ok {
		return ErrNodeNotFound
	}

	// 2) Outgoing edges disappear with their owner.
	for _, e := range n.out {
		delete(g.edges, e.ID)
	}

	// 3) Incoming edges live in other nodes' outgoing lists.
	var e *Edge[K, W]
	for eid, stored := range g.edges {
		e = stored
		if e.To != v {
			continue
		}
		g.unlinkLocked(e)
		delete(g.edges, eid)
	}

	// 4) Catalog cleanup keeps insertion order for the survivors.
	delete(g.nodes, v)
	for i, value := range g.order {
		if value == v {
			g.order = append(g.order[:i], g.order[i+1:]...)
			break
		}
	}

	return nil
}

// Nodes returns all node values in insertion order.
// Complexity: O(V).
func (g *Graph[K, W]) Nodes() []K {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]K, len(g.order))
	copy(out, g.order)

	return out
}

// NodeCount returns the number of nodes.
func (g *Graph[K, W]) NodeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.nodes)
}
