// SPDX-License-Identifier: MIT

package query

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/lvlpath/core"
	"github.com/katalvlaran/lvlpath/dijkstra"
)

// Kind names the operation a query performed.
type Kind string

// Query kinds.
const (
	KindCost Kind = "cost"
	KindPath Kind = "path"
)

// Outcome classifies how a query ended.
type Outcome string

// Query outcomes.
const (
	OutcomeOK           Outcome = "ok"
	OutcomeNodeNotFound Outcome = "node_not_found"
	OutcomePathNotFound Outcome = "path_not_found"
	OutcomeError        Outcome = "error"
)

// Classify maps an error returned by a query to its Outcome.
func Classify(err error) Outcome {
	switch {
	case err == nil:
		return OutcomeOK
	case errors.Is(err, dijkstra.ErrNodeNotFound):
		return OutcomeNodeNotFound
	case errors.Is(err, dijkstra.ErrPathNotFound):
		return OutcomePathNotFound
	default:
		return OutcomeError
	}
}

// Service answers shortest-path queries over one Store.
// It is safe for concurrent use when the Store is.
type Service[K comparable, W core.Weight] struct {
	store   dijkstra.Store[K, W]
	cfg     config
	metrics *metrics
}

// New creates a Service over store.
func New[K comparable, W core.Weight](store dijkstra.Store[K, W], opts ...Option) *Service[K, W] {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.tracer == nil {
		cfg.tracer = otel.Tracer(tracerName)
	}
	if cfg.registerer == nil {
		cfg.registerer = prometheus.NewRegistry()
	}

	return &Service[K, W]{store: store, cfg: cfg, metrics: newMetrics(cfg.registerer)}
}

// Cost returns the total cost of the shortest path from start to end.
// On failure the cost is 0 and the error wraps a dijkstra sentinel.
func (s *Service[K, W]) Cost(ctx context.Context, start, end K) (float64, error) {
	res, err := s.run(ctx, KindCost, start, end)
	if err != nil {
		return 0, err
	}

	return res.Cost(), nil
}

// Path returns the node values of the shortest path, start and end included.
func (s *Service[K, W]) Path(ctx context.Context, start, end K) ([]K, error) {
	res, err := s.run(ctx, KindPath, start, end)
	if err != nil {
		return nil, err
	}

	return dijkstra.Reconstruct(res), nil
}

// Search returns the raw search result, for callers that need both the cost
// and the path from a single query. It is counted as a path query.
func (s *Service[K, W]) Search(ctx context.Context, start, end K) (*dijkstra.Result[K], error) {
	return s.run(ctx, KindPath, start, end)
}

func (s *Service[K, W]) run(ctx context.Context, kind Kind, start, end K) (*dijkstra.Result[K], error) {
	id := uuid.NewString()
	from, to := s.cfg.format(start), s.cfg.format(end)
	logger := s.cfg.logger.With(
		slog.String("query_id", id),
		slog.String("kind", string(kind)),
		slog.String("start", from),
		slog.String("end", to),
	)

	ctx, span := s.cfg.tracer.Start(ctx, "lvlpath.query."+string(kind),
		trace.WithAttributes(
			attribute.String("query.id", id),
			attribute.String("query.start", from),
			attribute.String("query.end", to),
		),
		trace.WithSpanKind(trace.SpanKindInternal),
	)
	defer span.End()

	opts := make([]dijkstra.Option, 0, len(s.cfg.search)+1)
	opts = append(opts, dijkstra.WithLogger(logger))
	opts = append(opts, s.cfg.search...)

	began := time.Now()
	res, err := dijkstra.Search(s.store, start, end, opts...)
	elapsed := time.Since(began)

	outcome := Classify(err)
	popped := 0
	if res != nil {
		popped = res.Stats().Popped
	}
	s.metrics.observe(kind, outcome, elapsed.Seconds(), popped)
	span.SetAttributes(attribute.String("query.outcome", string(outcome)))

	switch outcome {
	case OutcomeOK:
		span.SetAttributes(
			attribute.Float64("query.cost", res.Cost()),
			attribute.Int("query.nodes_expanded", popped),
		)
		span.SetStatus(codes.Ok, "")
		logger.InfoContext(ctx, "query finished",
			"cost", res.Cost(),
			"nodes_expanded", popped,
			"duration_ms", elapsed.Milliseconds(),
		)
	case OutcomeNodeNotFound, OutcomePathNotFound:
		// Span status stays Unset for not-found outcomes.
		span.AddEvent(string(outcome))
		logger.InfoContext(ctx, "query found no path",
			"outcome", string(outcome),
			"error", err,
			"duration_ms", elapsed.Milliseconds(),
		)
	default:
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		logger.ErrorContext(ctx, "query failed",
			"error", err,
			"duration_ms", elapsed.Milliseconds(),
		)
	}

	return res, err
}
