// SPDX-License-Identifier: MIT

package query

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const metricsNamespace = "lvlpath"

// metrics holds the collectors of one Service.
type metrics struct {
	queries  *prometheus.CounterVec
	duration *prometheus.HistogramVec
	expanded prometheus.Histogram
}

// newMetrics creates and registers the query collectors with reg.
// Registering two Services on the same registerer panics, as promauto does.
func newMetrics(reg prometheus.Registerer) *metrics {
	factory := promauto.With(reg)

	return &metrics{
		queries: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "queries_total",
			Help:      "Shortest-path queries by kind and outcome.",
		}, []string{"kind", "outcome"}),
		duration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Name:      "query_duration_seconds",
			Help:      "Wall time of shortest-path queries.",
			Buckets:   []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
		}, []string{"kind"}),
		expanded: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Name:      "nodes_expanded",
			Help:      "Frontier records popped by successful queries.",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 10),
		}),
	}
}

func (m *metrics) observe(kind Kind, outcome Outcome, seconds float64, popped int) {
	m.queries.WithLabelValues(string(kind), string(outcome)).Inc()
	m.duration.WithLabelValues(string(kind)).Observe(seconds)
	if outcome == OutcomeOK {
		m.expanded.Observe(float64(popped))
	}
}
