// SPDX-License-Identifier: MIT

// Package query wraps the dijkstra facade in an observable service.
//
// Every Cost or Path call is assigned a query ID, logged through slog, traced
// as one OpenTelemetry span and counted in Prometheus metrics:
//
//	lvlpath_queries_total{kind,outcome}       counter
//	lvlpath_query_duration_seconds{kind}      histogram
//	lvlpath_nodes_expanded                    histogram (successful queries)
//
// Outcomes are "ok", "node_not_found", "path_not_found" and "error".
//
// The context passed to a query carries trace and log correlation only.
// Searches are not cancellable.
package query
