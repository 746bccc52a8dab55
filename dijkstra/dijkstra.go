// SPDX-License-Identifier: MIT

package dijkstra

import (
	"container/heap"
	"fmt"
	"time"

	"github.com/katalvlaran/lvlpath/core"
)

// Search runs Dijkstra's algorithm from start and stops as soon as end is
// popped from the frontier. The returned Result holds the terminal search
// record for end and its predecessor chain.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. Options must be valid (ErrBadMaxCost, ErrBadInfThreshold).
//  3. g must contain start and end (ErrNodeNotFound).
//
// Failure modes of the search itself:
//
//   - ErrPathNotFound:   the frontier emptied without reaching end.
//   - ErrNegativeWeight: a negative edge was relaxed (WithNegativeWeightCheck only).
//   - any error returned by g.OutgoingEdges, wrapped with the node it was reading.
//
// Edge weights must be non-negative. This is the caller's obligation and is
// not validated unless WithNegativeWeightCheck is given.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
func Search[K comparable, W core.Weight](g Store[K, W], start, end K, opts ...Option) (*Result[K], error) {
	// 1) Validate graph is non-nil
	if g == nil {
		return nil, ErrNilGraph
	}

	// 2) Build and validate Options
	cfg, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}

	// 3) Both endpoints must exist before any work is done
	if !g.ContainsNode(start) {
		return nil, fmt.Errorf("%w: start %v", ErrNodeNotFound, start)
	}
	if !g.ContainsNode(end) {
		return nil, fmt.Errorf("%w: end %v", ErrNodeNotFound, end)
	}

	// 4) Run the frontier loop with early termination on end
	began := time.Now()
	r := newRunner(g, cfg, start)
	terminal, found, err := r.process(end, true)
	cfg.Logger.Debug("dijkstra search finished",
		"start", start,
		"end", end,
		"found", found,
		"popped", r.stats.Popped,
		"stale", r.stats.Stale,
		"pushed", r.stats.Pushed,
		"duration", time.Since(began),
	)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, fmt.Errorf("%w: %v → %v", ErrPathNotFound, start, end)
	}

	return &Result[K]{records: r.records, terminal: terminal, stats: r.stats}, nil
}

// Distances computes the shortest cost from source to every node reachable
// from it (within MaxCost). Unreachable nodes are absent from the map.
//
// It shares validation and failure modes with Search, minus ErrPathNotFound.
//
// Complexity: O((V + E) log V) time, O(V + E) space.
func Distances[K comparable, W core.Weight](g Store[K, W], source K, opts ...Option) (map[K]float64, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	cfg, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	if !g.ContainsNode(source) {
		return nil, fmt.Errorf("%w: source %v", ErrNodeNotFound, source)
	}

	r := newRunner(g, cfg, source)
	var zero K
	if _, _, err = r.process(zero, false); err != nil {
		return nil, err
	}
	cfg.Logger.Debug("dijkstra distances finished",
		"source", source,
		"reached", len(r.best),
		"popped", r.stats.Popped,
		"stale", r.stats.Stale,
	)

	// Without a target the loop drains the frontier, so every recorded
	// best cost is final.
	return r.best, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner[K comparable, W core.Weight] struct {
	g       Store[K, W]       // The input graph; read-only within a query.
	options Options           // Validated configuration.
	records []SearchRecord[K] // Arena of every record pushed so far.
	best    map[K]float64     // Node → lowest cost seen so far.
	pq      frontier          // Min-heap of arena indices.
	stats   Stats
}

// newRunner seeds the best-cost map and the frontier with the start record.
func newRunner[K comparable, W core.Weight](g Store[K, W], cfg Options, start K) *runner[K, W] {
	r := &runner[K, W]{
		g:       g,
		options: cfg,
		best:    make(map[K]float64),
	}
	r.best[start] = 0
	heap.Init(&r.pq)
	r.push(SearchRecord[K]{Node: start, Cost: 0, pred: noPred})

	return r
}

// process is the core loop of Dijkstra's algorithm. It repeatedly pops the
// cheapest record, skips it if stale, returns it if it is the target, and
// otherwise relaxes its outgoing edges.
//
// Returns the arena index of the target record and true when hasTarget is set
// and the target was reached; (noPred, false, nil) once the frontier is empty.
func (r *runner[K, W]) process(target K, hasTarget bool) (int, bool, error) {
	var item frontierItem
	var cur SearchRecord[K]
	for r.pq.Len() > 0 {
		// 1) Pop the cheapest record.
		item = heap.Pop(&r.pq).(frontierItem)
		r.stats.Popped++
		cur = r.records[item.rec]

		// 2) A cheaper record for this node was pushed after this one:
		//    this entry is stale and its node is already handled.
		if cur.Cost > r.best[cur.Node] {
			r.stats.Stale++
			continue
		}

		// 3) Single-target early termination.
		if hasTarget && cur.Node == target {
			return item.rec, true, nil
		}

		// 4) cur.Cost is final; relax outgoing edges.
		if err := r.relax(item.rec); err != nil {
			return noPred, false, err
		}
	}

	return noPred, false, nil
}

// relax examines each edge leaving the record at arena index idx and pushes a
// new record for every neighbor whose best-known cost strictly improves.
// Records already in the frontier are never touched (lazy decrease-key).
func (r *runner[K, W]) relax(idx int) error {
	cur := r.records[idx] // copy: push may grow the arena
	edges, err := r.g.OutgoingEdges(cur.Node)
	if err != nil {
		return fmt.Errorf("dijkstra: failed to get outgoing edges of %v: %w", cur.Node, err)
	}

	var w, candidate float64
	for _, e := range edges {
		r.stats.Relaxed++
		w = e.Cost()

		// Impassable edge.
		if w >= r.options.InfEdgeThreshold {
			continue
		}
		if w < 0 && r.options.NegativeWeightCheck {
			return fmt.Errorf("%w: edge %v→%v weight=%v", ErrNegativeWeight, cur.Node, e.To, e.Weight)
		}

		candidate = cur.Cost + w
		if candidate > r.options.MaxCost {
			continue
		}
		// Strictly better only; equal costs never push a duplicate.
		if known, ok := r.best[e.To]; ok && candidate >= known {
			continue
		}

		r.best[e.To] = candidate
		r.push(SearchRecord[K]{Node: e.To, Cost: candidate, pred: idx})
	}

	return nil
}

// push appends rec to the arena and schedules it on the frontier.
func (r *runner[K, W]) push(rec SearchRecord[K]) {
	r.records = append(r.records, rec)
	heap.Push(&r.pq, frontierItem{rec: len(r.records) - 1, cost: rec.Cost})
	r.stats.Pushed++
}

// frontierItem is a frontier entry: an arena index and the record's cost,
// duplicated here so heap comparisons stay inside the heap slice.
type frontierItem struct {
	rec  int
	cost float64
}

// frontier is a min-heap of frontierItem ordered by cost ascending.
// Multiple items for the same node may coexist; stale ones are skipped on pop.
type frontier []frontierItem

// Len returns the number of items in the heap.
func (pq frontier) Len() int { return len(pq) }

// Less defines the comparison: smaller cost → higher priority.
func (pq frontier) Less(i, j int) bool { return pq[i].cost < pq[j].cost }

// Swap swaps two elements in the heap.
func (pq frontier) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap. Called by heap.Push.
func (pq *frontier) Push(x any) { *pq = append(*pq, x.(frontierItem)) }

// Pop removes and returns the last element. Called by heap.Pop.
func (pq *frontier) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
