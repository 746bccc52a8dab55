// SPDX-License-Identifier: MIT

package dijkstra

import (
	"errors"
	"io"
	"log/slog"
	"math"

	"github.com/katalvlaran/lvlpath/core"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNilGraph indicates that a nil Store was passed to a query.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrNodeNotFound indicates that the start or end value does not identify
	// a node of the graph. It is checked before the search begins.
	ErrNodeNotFound = errors.New("dijkstra: node not found")

	// ErrPathNotFound indicates that both nodes exist but no directed path of
	// finite cost connects start to end (under the active options).
	ErrPathNotFound = errors.New("dijkstra: path not found")

	// ErrNegativeWeight indicates that a negative edge weight was met while
	// relaxing edges. Only reported with WithNegativeWeightCheck.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrBadMaxCost indicates that MaxCost was set to a negative or NaN value.
	ErrBadMaxCost = errors.New("dijkstra: MaxCost must be non-negative")

	// ErrBadInfThreshold indicates that InfEdgeThreshold was set to zero,
	// a negative value or NaN, which would make every edge impassable.
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")
)

// Store is the read-only graph contract consumed by the search engine.
//
// ContainsNode reports whether v identifies an existing node.
// OutgoingEdges returns the edges leaving v (destination + weight); their
// order is the order in which neighbors are relaxed.
//
// Implementations must not be mutated for the duration of one query; the
// engine performs no locking or versioning of its own.
type Store[K comparable, W core.Weight] interface {
	ContainsNode(v K) bool
	OutgoingEdges(v K) ([]core.Edge[K, W], error)
}

// SearchRecord is the best path found so far ending at Node: its cumulative
// Cost and a link to the record it was relaxed from. Records live in the
// arena of a single Result and are never shared across queries.
type SearchRecord[K comparable] struct {
	Node K
	Cost float64
	pred int // arena index of the predecessor record; noPred at the start
}

// noPred marks the start record, which has no predecessor.
const noPred = -1

// HasPredecessor reports whether the record was reached through another record.
// It is false exactly for the start record.
func (r SearchRecord[K]) HasPredecessor() bool { return r.pred != noPred }

// Stats counts the work one search performed.
type Stats struct {
	Popped  int // frontier records removed, stale ones included
	Stale   int // popped records skipped because a cheaper one was already final
	Relaxed int // edges examined from finalized nodes
	Pushed  int // records pushed onto the frontier, the start record included
}

// Result is the outcome of a successful Search: the terminal SearchRecord for
// the target plus the arena holding its predecessor chain.
type Result[K comparable] struct {
	records  []SearchRecord[K]
	terminal int
	stats    Stats
}

// Terminal returns the search record of the target node.
func (r *Result[K]) Terminal() SearchRecord[K] { return r.records[r.terminal] }

// Cost returns the total cost of the shortest path.
func (r *Result[K]) Cost() float64 { return r.records[r.terminal].Cost }

// Predecessor returns the record rec was relaxed from, or false for the start record.
func (r *Result[K]) Predecessor(rec SearchRecord[K]) (SearchRecord[K], bool) {
	if rec.pred == noPred {
		return SearchRecord[K]{}, false
	}

	return r.records[rec.pred], true
}

// Stats reports the work the search performed.
func (r *Result[K]) Stats() Stats { return r.stats }

// Options configures the behavior of a query.
//
//   - NegativeWeightCheck: fail with ErrNegativeWeight on a negative edge instead of
//     silently computing a wrong answer. Off by default.
//   - MaxCost: records whose cost would exceed this value are never pushed.
//     Must be ≥ 0. Default is +Inf (no cap).
//   - InfEdgeThreshold: edges with weight ≥ this threshold are impassable.
//     Must be > 0. Default is +Inf (no obstacles).
//   - Logger: receives one debug line per search. Default discards output.
type Options struct {
	NegativeWeightCheck bool
	MaxCost             float64
	InfEdgeThreshold    float64
	Logger              *slog.Logger
}

// Option represents a functional option for configuring a query.
type Option func(*Options)

// WithNegativeWeightCheck makes a query fail with ErrNegativeWeight as soon as
// it relaxes an edge with a negative weight. Without it, negative weights are
// not validated and results over them are undefined.
func WithNegativeWeightCheck() Option {
	return func(o *Options) {
		o.NegativeWeightCheck = true
	}
}

// WithMaxCost caps the explored cost: paths costlier than max are never
// considered, so a target beyond the cap yields ErrPathNotFound.
// A negative or NaN value makes the query fail with ErrBadMaxCost.
func WithMaxCost(max float64) Option {
	return func(o *Options) {
		o.MaxCost = max
	}
}

// WithInfEdgeThreshold defines a weight threshold at or above which edges are
// considered non-traversable. A zero, negative or NaN threshold makes the
// query fail with ErrBadInfThreshold.
func WithInfEdgeThreshold(threshold float64) Option {
	return func(o *Options) {
		o.InfEdgeThreshold = threshold
	}
}

// WithLogger sets the logger receiving the per-search debug summary.
// A nil logger restores the discarding default.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

// DefaultOptions returns an Options struct initialized with defaults:
// no weight validation, no cost cap, no impassable edges, no logging.
func DefaultOptions() Options {
	return Options{
		NegativeWeightCheck: false,
		MaxCost:             math.Inf(1),
		InfEdgeThreshold:    math.Inf(1),
		Logger:              discardLogger,
	}
}

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

// buildOptions applies opts over DefaultOptions and validates the result.
func buildOptions(opts []Option) (Options, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Logger == nil {
		cfg.Logger = discardLogger
	}
	if math.IsNaN(cfg.MaxCost) || cfg.MaxCost < 0 {
		return cfg, ErrBadMaxCost
	}
	if math.IsNaN(cfg.InfEdgeThreshold) || cfg.InfEdgeThreshold <= 0 {
		return cfg, ErrBadInfThreshold
	}

	return cfg, nil
}
