// SPDX-License-Identifier: MIT

// Package cli parses and validates the lvlpath command line, builds the
// process logger and defines the exit codes the command reports.
package cli
