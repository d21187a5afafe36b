// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package pitch

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler is a slog.Handler that silently discards all log records.
// The Enabled method returns false so the caller skips message formatting
// entirely, making disabled logging effectively zero-cost.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// loggerPtr stores the active logger. Accessed atomically so that
// SetLogger can be called concurrently with logging from any goroutine.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger configures the logger for pitch and all its sub-packages.
// By default, pitch produces no log output. Pass nil to restore the silent
// default.
//
// Log levels used by pitch:
//   - [slog.LevelDebug]: renderer lifecycle and layer bookkeeping
//   - [slog.LevelInfo]: backend selection
//   - [slog.LevelWarn]: backend fallback, degenerate geometry, unknown easings
//
// Example:
//
//	pitch.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
}

// Logger returns the current logger used by pitch.
// Sub-packages (render, svg, engine) call this to share the same logger
// configuration.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
