// SPDX-License-Identifier: MIT

// Command lvlpath answers one shortest-path query over a graph loaded from a
// definition file or a SQLite database.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvlpath/core"
	"github.com/katalvlaran/lvlpath/dijkstra"
	"github.com/katalvlaran/lvlpath/graphfile"
	"github.com/katalvlaran/lvlpath/internal/cli"
	"github.com/katalvlaran/lvlpath/query"
	"github.com/katalvlaran/lvlpath/sqlitestore"
)

func main() {
	if err := run(os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(cli.ExitFailure)
	}
}

// run encapsulates the command logic; results go to outW and logs to logW.
func run(outW, logW io.Writer, args []string) error {
	cfg, shouldExit, err := cli.Parse(args, outW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	logger := cli.NewLogger(cfg.LogLevel, cfg.LogFormat, logW)
	ctx := context.Background()

	store, closeStore, err := openStore(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer closeStore()

	searchOpts := []dijkstra.Option{dijkstra.WithMaxCost(cfg.MaxCost)}
	if cfg.CheckWeights {
		searchOpts = append(searchOpts, dijkstra.WithNegativeWeightCheck())
	}
	svc := query.New[string, float64](store,
		query.WithLogger(logger),
		query.WithSearchOptions(searchOpts...),
	)

	switch cfg.Mode {
	case cli.ModeCost:
		cost, err := svc.Cost(ctx, cfg.From, cfg.To)
		if err != nil {
			return queryError(err)
		}
		fmt.Fprintf(outW, "cost: %s\n", formatCost(cost))
	case cli.ModePath:
		path, err := svc.Path(ctx, cfg.From, cfg.To)
		if err != nil {
			return queryError(err)
		}
		fmt.Fprintf(outW, "path: %s\n", strings.Join(path, " -> "))
	default:
		res, err := svc.Search(ctx, cfg.From, cfg.To)
		if err != nil {
			return queryError(err)
		}
		fmt.Fprintf(outW, "cost: %s\n", formatCost(res.Cost()))
		fmt.Fprintf(outW, "path: %s\n", strings.Join(dijkstra.Reconstruct(res), " -> "))
	}

	return nil
}

// openStore returns the store selected by cfg and a function releasing it.
func openStore(ctx context.Context, cfg *cli.Config, logger *slog.Logger) (dijkstra.Store[string, float64], func(), error) {
	if cfg.GraphPath != "" {
		g, err := loadGraph(cfg.GraphPath)
		if err != nil {
			return nil, nil, err
		}
		logger.Info("graph loaded", "path", cfg.GraphPath, "nodes", g.NodeCount(), "edges", g.EdgeCount())

		return g, func() {}, nil
	}

	db, err := sqlitestore.Open(cfg.DBPath, sqlitestore.WithLogger(logger))
	if err != nil {
		return nil, nil, err
	}
	closeDB := func() {
		if err := db.Close(); err != nil {
			logger.Error("closing database", "path", cfg.DBPath, "error", err)
		}
	}
	if cfg.ImportPath != "" {
		g, err := loadGraph(cfg.ImportPath)
		if err == nil {
			err = db.Import(ctx, g)
		}
		if err != nil {
			closeDB()
			return nil, nil, err
		}
		logger.Info("graph imported", "path", cfg.ImportPath, "db", cfg.DBPath, "edges", g.EdgeCount())
	}

	return db, closeDB, nil
}

// loadGraph reads a graph definition file. Parallel edges and self-loops are
// accepted; the search only ever follows the cheapest of them.
func loadGraph(path string) (*core.Graph[string, float64], error) {
	doc, err := graphfile.Load(path)
	if err != nil {
		return nil, err
	}

	return doc.Graph(core.WithMultiEdges(), core.WithLoops())
}

// queryError maps a failed query to the exit code it reports.
func queryError(err error) error {
	switch query.Classify(err) {
	case query.OutcomeNodeNotFound, query.OutcomePathNotFound:
		return &cli.ExitError{Code: cli.ExitNotFound, Message: err.Error()}
	default:
		return &cli.ExitError{Code: cli.ExitFailure, Message: err.Error()}
	}
}

func formatCost(c float64) string {
	return strconv.FormatFloat(c, 'g', -1, 64)
}
