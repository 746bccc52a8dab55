// SPDX-License-Identifier: MIT

package query

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/lvlpath/dijkstra"
)

// tracerName is the instrumentation scope of spans started by a Service.
const tracerName = "github.com/katalvlaran/lvlpath/query"

type config struct {
	logger     *slog.Logger
	tracer     trace.Tracer
	registerer prometheus.Registerer
	search     []dijkstra.Option
	format     func(any) string
}

// Option configures a Service.
type Option func(*config)

// WithLogger sets the logger for query lines. Nil is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithTracer sets the tracer for query spans.
// Default is the global provider's tracer, looked up when New runs.
func WithTracer(t trace.Tracer) Option {
	return func(c *config) {
		if t != nil {
			c.tracer = t
		}
	}
}

// WithRegisterer registers the query metrics with reg.
// Default is a private registry, so metrics are collected but not exported.
func WithRegisterer(reg prometheus.Registerer) Option {
	return func(c *config) {
		if reg != nil {
			c.registerer = reg
		}
	}
}

// WithSearchOptions appends dijkstra options applied to every query.
// They are applied after the service's own logger option, so a
// dijkstra.WithLogger here takes precedence.
func WithSearchOptions(opts ...dijkstra.Option) Option {
	return func(c *config) { c.search = append(c.search, opts...) }
}

// WithNodeFormatter sets how node values are rendered in logs and span
// attributes. Default is fmt.Sprint.
func WithNodeFormatter(f func(any) string) Option {
	return func(c *config) {
		if f != nil {
			c.format = f
		}
	}
}

func defaultConfig() config {
	return config{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		format: func(v any) string { return fmt.Sprint(v) },
	}
}
