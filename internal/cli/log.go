// Package cli implements the gridbench command-line interface.
//
// The CLI is a thin presentation layer over the trial orchestrator: it reads
// a configuration, runs trials and renders grids, paths and metrics with
// lipgloss. Commands are built with cobra; logging uses charmbracelet/log.
//
// # Commands
//
//   - run: execute N trials and print per-algorithm averages and per-run series
//   - show: execute one trial and draw the grid with the selected path
//   - explore: interactive session (regenerate, select, adjust walls, reset)
//   - config: print the effective configuration as YAML or TOML
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging, which includes
// one line per search with its instrumentation.
package cli

import (
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// newLogger creates a logger writing to w with "HH:MM:SS.ms" timestamps.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress logs completion of an operation with its elapsed time.
type progress struct {
	logger *log.Logger
	start  time.Time
}

func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg with the elapsed time rounded to the millisecond,
// e.g. "Completed 10 trials (12ms)".
func (p *progress) done(msg string) {
	p.logger.Infof("%s (%s)", msg, time.Since(p.start).Round(time.Millisecond))
}
