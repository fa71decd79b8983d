package smooth

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler drops every record. Enabled reports false, so the per-pass
// Debug calls in Parallel and Harness never build their attributes.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

// newNopLogger returns the silent default logger.
func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// loggerPtr holds the package logger. Engines and harnesses built without
// WithLogger load it on every pass, so swapping it mid-run is safe.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger installs the logger used by engines and harnesses created
// without WithLogger. Nothing is logged until it is called; nil restores
// the silent default.
//
// Log levels used by smooth:
//   - [slog.LevelDebug]: per-pass and per-scale diagnostics
//   - [slog.LevelInfo]: checkpoints written, runs finished (CLI)
//
// Example:
//
//	smooth.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
}

// Logger returns the package logger. It may be called from any goroutine.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
