// SPDX-License-Identifier: MIT

package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"math"
	"strings"
)

// Process exit codes.
const (
	ExitFailure  = 1 // I/O, storage or search failure
	ExitUsage    = 2 // bad flags or configuration
	ExitNotFound = 3 // unknown node or no path
)

// Query modes.
const (
	ModeCost = "cost"
	ModePath = "path"
	ModeBoth = "both"
)

// ExitError is an error that carries the process exit code to report.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Config is the validated command line.
type Config struct {
	GraphPath    string  // graph definition file to query in memory
	DBPath       string  // SQLite database to query
	ImportPath   string  // graph definition file imported into DBPath first
	From         string
	To           string
	Mode         string
	CheckWeights bool
	MaxCost      float64
	LogLevel     string
	LogFormat    string
}

// NewConfig validates cfg and returns a normalized copy.
func NewConfig(cfg Config) (*Config, error) {
	switch {
	case cfg.GraphPath == "" && cfg.DBPath == "":
		return nil, errors.New("one of -graph or -db is required")
	case cfg.GraphPath != "" && cfg.DBPath != "":
		return nil, errors.New("-graph and -db are mutually exclusive")
	case cfg.ImportPath != "" && cfg.DBPath == "":
		return nil, errors.New("-import requires -db")
	case cfg.From == "" || cfg.To == "":
		return nil, errors.New("both -from and -to are required")
	case math.IsNaN(cfg.MaxCost) || cfg.MaxCost < 0:
		return nil, fmt.Errorf("invalid max-cost %v: must be non-negative", cfg.MaxCost)
	}

	cfg.Mode = strings.ToLower(cfg.Mode)
	switch cfg.Mode {
	case ModeCost, ModePath, ModeBoth:
	default:
		return nil, fmt.Errorf("invalid mode %q: must be 'cost', 'path' or 'both'", cfg.Mode)
	}

	cfg.LogFormat = strings.ToLower(cfg.LogFormat)
	if cfg.LogFormat != "text" && cfg.LogFormat != "json" {
		return nil, errors.New("invalid log-format: must be 'text' or 'json'")
	}

	cfg.LogLevel = strings.ToLower(cfg.LogLevel)
	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return nil, errors.New("invalid log-level: must be 'debug', 'info', 'warn', or 'error'")
	}

	return &cfg, nil
}

// Parse processes command-line arguments. It returns a populated Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*Config, bool, error) {
	flagSet := flag.NewFlagSet("lvlpath", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
lvlpath - shortest paths over directed, weighted graphs.

Usage:
  lvlpath -graph FILE -from NODE -to NODE [options]
  lvlpath -db FILE [-import FILE] -from NODE -to NODE [options]

Graph files may be .yaml, .yml, .json or .hcl.

Exit codes:
  0 success, 1 failure, 2 usage error, 3 node or path not found.

Options:
`)
		flagSet.PrintDefaults()
	}

	graphFlag := flagSet.String("graph", "", "Graph definition file to load into memory.")
	dbFlag := flagSet.String("db", "", "SQLite database holding the graph.")
	importFlag := flagSet.String("import", "", "Graph definition file to import into -db before querying.")
	fromFlag := flagSet.String("from", "", "Start node.")
	toFlag := flagSet.String("to", "", "End node.")
	modeFlag := flagSet.String("mode", ModeBoth, "What to print. Options: 'cost', 'path' or 'both'.")
	checkFlag := flagSet.Bool("check-weights", false, "Fail on negative edge weights instead of searching them.")
	maxCostFlag := flagSet.Float64("max-cost", math.Inf(1), "Ignore paths costing more than this.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "warn", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: ExitUsage, Message: err.Error()}
	}
	if flagSet.NArg() > 0 {
		return nil, false, &ExitError{Code: ExitUsage, Message: fmt.Sprintf("unexpected argument %q", flagSet.Arg(0))}
	}
	if len(args) == 0 {
		flagSet.Usage()
		return nil, true, nil
	}

	config, err := NewConfig(Config{
		GraphPath:    *graphFlag,
		DBPath:       *dbFlag,
		ImportPath:   *importFlag,
		From:         *fromFlag,
		To:           *toFlag,
		Mode:         *modeFlag,
		CheckWeights: *checkFlag,
		MaxCost:      *maxCostFlag,
		LogLevel:     *logLevelFlag,
		LogFormat:    *logFormatFlag,
	})
	if err != nil {
		return nil, false, &ExitError{Code: ExitUsage, Message: err.Error()}
	}

	return config, false, nil
}
