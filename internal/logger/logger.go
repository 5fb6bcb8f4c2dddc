// Package logger holds the structured logger shared by the shaderstructs
// packages. By default nothing is logged.
package logger

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler is a slog.Handler that silently discards all log records.
// Enabled returns false so callers skip message formatting entirely.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

func newNop() *slog.Logger { return slog.New(nopHandler{}) }

var current atomic.Pointer[slog.Logger]

func init() {
	current.Store(newNop())
}

// Set configures the logger used by the loader, aggregator and emitter.
// Pass nil to restore the silent default.
//
// Levels:
//   - [slog.LevelDebug]: per-shader progress and filter decisions
//   - [slog.LevelInfo]: batch summary
//   - [slog.LevelWarn]: skipped shaders, collisions, artifact write failures
func Set(l *slog.Logger) {
	if l == nil {
		l = newNop()
	}
	current.Store(l)
}

// L returns the current logger. Safe for concurrent use.
func L() *slog.Logger {
	return current.Load()
}
