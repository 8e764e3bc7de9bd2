// Package clilog builds the single slog.Logger every cmd/ entry point
// shares, so CLI verbosity and output format are configured identically
// everywhere instead of each command wiring its own handler (spec.md §6:
// the commands are otherwise pure wrappers around one engine call each).
package clilog

import (
	"log/slog"
	"os"
)

// New returns a text-handler logger writing to stderr, with debug-level
// output gated by verbose. All logging goes to stderr, keeping stdout for
// each command's primary output (FIMI results for the tfi-* commands, which
// also write their CSV diagnostics line to stderr).
func New(verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	h := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	return slog.New(h)
}
