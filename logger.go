// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ggterm

import (
	"log/slog"

	"github.com/gogpu/gg"

	"github.com/gogpu/ggterm/internal/logging"
)

// SetLogger configures the logger for ggterm, the grid package and gg,
// which logs canvas uploads and GPU diagnostics for CanvasPresenter.
// By default, ggterm produces no log output.
//
// SetLogger is safe for concurrent use. Pass nil to restore the default
// silent behavior.
//
// Log levels used by ggterm:
//   - [slog.LevelDebug]: frame presents (damage rectangles, cells painted), resizes
//   - [slog.LevelInfo]: grid creation (cell metrics)
//   - [slog.LevelWarn]: presenter failures, gg GPU fallbacks
//
// Example:
//
//	ggterm.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	logging.Set(l)
	gg.SetLogger(l)
}

// Logger returns the current logger used by ggterm.
func Logger() *slog.Logger {
	return logging.Logger()
}
