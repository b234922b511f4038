// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package ggplot

import (
	"log/slog"

	"github.com/gogpu/gg"

	"github.com/gogpu/ggplot/internal/logging"
)

// SetLogger configures the logger for ggplot, all its sub-packages and the
// gg canvas. By default nothing is logged. Pass nil to restore the silent
// default.
//
// Log levels used by ggplot:
//   - [slog.LevelDebug]: frame timings, tool activation
//   - [slog.LevelWarn]: layout overflow, degenerate ranges, renderer errors
//
// Example:
//
//	ggplot.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	logging.Set(l)
	gg.SetLogger(l)
}

// Logger returns the current logger. It is safe for concurrent use.
func Logger() *slog.Logger {
	return logging.Logger()
}
