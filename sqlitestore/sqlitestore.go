// SPDX-License-Identifier: MIT

// Package sqlitestore is a SQLite-backed graph store that the dijkstra query
// layer can read directly.
//
// Designed for:
//   - Graphs that outlive the process and are produced by another tool
//   - Running queries straight against the database (Store satisfies
//     dijkstra.Store[string, float64])
//   - Loading a quiescent in-memory copy for query bursts (Snapshot)
//
// Schema:
//   - nodes: node identity (TEXT) plus insertion sequence
//   - edges: directed edges (src, dst, weight REAL), ordered by their row ID
//
// The store uses WAL mode and a single connection; it is safe for concurrent
// use but queries served from it see writes made between two reads.
package sqlitestore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"sync"
	"time"

	_ "modernc.org/sqlite"

	"github.com/katalvlaran/lvlpath/core"
)

// ErrClosed indicates an operation on a Store after Close.
var ErrClosed = errors.New("sqlitestore: store is closed")

// Edge is the edge type served by the store.
type Edge = core.Edge[string, float64]

// Store is a SQLite implementation of the graph store contract.
type Store struct {
	db      *sql.DB
	mu      sync.RWMutex
	closed  bool
	path    string
	logger  *slog.Logger
	timeout time.Duration
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger used to report read failures that the
// boolean ContainsNode contract cannot return.
func WithLogger(l *slog.Logger) Option {
	return func(s *Store) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithQueryTimeout bounds every read issued through the query contract
// (ContainsNode, OutgoingEdges). Default 5s.
func WithQueryTimeout(d time.Duration) Option {
	return func(s *Store) {
		if d > 0 {
			s.timeout = d
		}
	}
}

// Open opens (creating if needed) the database at path and migrates the schema.
//
// The path parameter specifies the database file location:
//   - "./graph.db" - file in current directory
//   - ":memory:"   - in-memory database (data lost on close)
func Open(path string, opts ...Option) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open SQLite connection: %w", err)
	}

	// SQLite supports one writer at a time; a single connection also keeps
	// ":memory:" databases alive for the life of the store.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	ctx := context.Background()
	for _, pragma := range []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA foreign_keys=ON",
		"PRAGMA busy_timeout=5000",
	} {
		if _, err := db.ExecContext(ctx, pragma); err != nil {
			_ = db.Close() // Ignore close error when returning pragma error
			return nil, fmt.Errorf("failed to apply %q: %w", pragma, err)
		}
	}

	s := &Store{
		db:      db,
		path:    path,
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
		timeout: 5 * time.Second,
	}
	for _, opt := range opts {
		opt(s)
	}

	if err := s.createTables(ctx); err != nil {
		_ = db.Close() // Ignore close error when returning table creation error
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}

	return s, nil
}

// createTables creates the required database schema if it doesn't exist.
func (s *Store) createTables(ctx context.Context) error {
	nodesTable := `
		CREATE TABLE IF NOT EXISTS nodes (
			id TEXT PRIMARY KEY,
			seq INTEGER NOT NULL
		)
	`
	if _, err := s.db.ExecContext(ctx, nodesTable); err != nil {
		return fmt.Errorf("failed to create nodes table: %w", err)
	}

	edgesTable := `
		CREATE TABLE IF NOT EXISTS edges (
			seq INTEGER PRIMARY KEY AUTOINCREMENT,
			src TEXT NOT NULL REFERENCES nodes(id) ON DELETE CASCADE,
			dst TEXT NOT NULL REFERENCES nodes(id) ON DELETE CASCADE,
			weight REAL NOT NULL
		)
	`
	if _, err := s.db.ExecContext(ctx, edgesTable); err != nil {
		return fmt.Errorf("failed to create edges table: %w", err)
	}

	if _, err := s.db.ExecContext(ctx, "CREATE INDEX IF NOT EXISTS idx_edges_src ON edges(src, seq)"); err != nil {
		return fmt.Errorf("failed to create idx_edges_src: %w", err)
	}

	return nil
}

// Path returns the database location the store was opened with.
func (s *Store) Path() string { return s.path }

// ContainsNode reports whether a node with the given id exists.
// Read failures are logged and reported as absence.
func (s *Store) ContainsNode(id string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		s.logger.Error("contains node on closed store", "node", id)
		return false
	}

	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	ok, err := s.containsNode(ctx, id)
	if err != nil {
		s.logger.Error("contains node failed", "node", id, "error", err)
		return false
	}

	return ok
}

func (s *Store) containsNode(ctx context.Context, id string) (bool, error) {
	var one int
	err := s.db.QueryRowContext(ctx, "SELECT 1 FROM nodes WHERE id = ?", id).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	return true, nil
}

// OutgoingEdges returns the edges leaving id in insertion order.
// Returns core.ErrNodeNotFound (wrapped) if id does not exist.
func (s *Store) OutgoingEdges(id string) ([]Edge, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return nil, ErrClosed
	}

	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	rows, err := s.db.QueryContext(ctx,
		"SELECT seq, src, dst, weight FROM edges WHERE src = ? ORDER BY seq", id)
	if err != nil {
		return nil, fmt.Errorf("failed to query edges of %q: %w", id, err)
	}
	out, err := scanEdges(rows)
	if err != nil {
		return nil, fmt.Errorf("failed to read edges of %q: %w", id, err)
	}

	// An empty result is either a sink or a missing node.
	if len(out) == 0 {
		ok, err := s.containsNode(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("failed to look up node %q: %w", id, err)
		}
		if !ok {
			return nil, fmt.Errorf("%w: %q", core.ErrNodeNotFound, id)
		}
	}

	return out, nil
}

// scanEdges drains rows of (seq, src, dst, weight) and closes them.
func scanEdges(rows *sql.Rows) ([]Edge, error) {
	defer func() { _ = rows.Close() }()

	var out []Edge
	var seq int64
	var e Edge
	for rows.Next() {
		if err := rows.Scan(&seq, &e.From, &e.To, &e.Weight); err != nil {
			return nil, err
		}
		e.ID = "e" + strconv.FormatInt(seq, 10)
		out = append(out, e)
	}

	return out, rows.Err()
}

// Import writes every node and edge of g in one transaction. Nodes already
// present are kept; edges are always appended.
func (s *Store) Import(ctx context.Context, g *core.Graph[string, float64]) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrClosed
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }() // no-op after commit

	for _, id := range g.Nodes() {
		if _, err := tx.ExecContext(ctx,
			"INSERT OR IGNORE INTO nodes (id, seq) VALUES (?, (SELECT COALESCE(MAX(seq), 0) + 1 FROM nodes))",
			id); err != nil {
			return fmt.Errorf("failed to insert node %q: %w", id, err)
		}
	}
	for _, e := range g.Edges() {
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO edges (src, dst, weight) VALUES (?, ?, ?)",
			e.From, e.To, e.Weight); err != nil {
			return fmt.Errorf("failed to insert edge %s→%s: %w", e.From, e.To, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit import: %w", err)
	}
	s.logger.Debug("graph imported", "nodes", g.NodeCount(), "edges", g.EdgeCount())

	return nil
}

// Snapshot loads the whole store into a new in-memory graph. The snapshot
// permits parallel edges and self-loops, since the table enforces neither.
func (s *Store) Snapshot(ctx context.Context) (*core.Graph[string, float64], error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return nil, ErrClosed
	}

	g := core.NewGraph[string, float64](core.WithMultiEdges(), core.WithLoops())

	rows, err := s.db.QueryContext(ctx, "SELECT id FROM nodes ORDER BY seq")
	if err != nil {
		return nil, fmt.Errorf("failed to query nodes: %w", err)
	}
	var id string
	for rows.Next() {
		if err := rows.Scan(&id); err != nil {
			_ = rows.Close()
			return nil, fmt.Errorf("failed to scan node: %w", err)
		}
		g.AddNode(id)
	}
	if err := rows.Err(); err != nil {
		_ = rows.Close()
		return nil, fmt.Errorf("failed to read nodes: %w", err)
	}
	_ = rows.Close()

	rows, err = s.db.QueryContext(ctx, "SELECT seq, src, dst, weight FROM edges ORDER BY seq")
	if err != nil {
		return nil, fmt.Errorf("failed to query edges: %w", err)
	}
	edges, err := scanEdges(rows)
	if err != nil {
		return nil, fmt.Errorf("failed to read edges: %w", err)
	}
	for _, e := range edges {
		if _, err := g.AddEdge(e.From, e.To, e.Weight); err != nil {
			return nil, fmt.Errorf("failed to load edge %s: %w", e.ID, err)
		}
	}

	return g, nil
}

// Close closes the database connection. Subsequent calls are no-ops.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true

	return s.db.Close()
}
