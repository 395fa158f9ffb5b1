// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package renderloop

import (
	"context"
	"log/slog"
	"sync/atomic"

	"github.com/gogpu/renderloop/egl"
)

// nopHandler is a slog.Handler that silently discards all log records.
// Enabled returns false so callers skip message formatting entirely.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// loggerPtr stores the active logger. Render workers log from their own
// goroutines, so it is read and replaced atomically.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger configures the logger for renderloop and the egl package.
// By default nothing is logged. Pass nil to restore the silent default.
//
// Log levels used:
//   - [slog.LevelDebug]: per-stage diagnostics (driver opened, EGL version)
//   - [slog.LevelInfo]: lifecycle (loop started and terminated, surface events)
//   - [slog.LevelWarn]: non-fatal issues (swap or sleep failures, teardown errors)
//   - [slog.LevelError]: context initialization failures, recovered frame panics
//
// Example:
//
//	renderloop.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
	egl.SetLogger(l)
}

// Logger returns the current logger. Sub-packages (scene, host) call it so
// they share one configuration. Safe for concurrent use.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
