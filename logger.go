package mandelbrot

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler is a slog.Handler that silently discards all log records.
// Enabled returns false so callers skip formatting entirely.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger configures the logger for mandelbrot and its sub-packages.
// By default nothing is logged. Pass nil to restore the silent default.
// SetLogger is safe for concurrent use.
//
// Log levels used:
//   - [slog.LevelDebug]: per-event state changes, frame timings
//   - [slog.LevelInfo]: lifecycle (window opened, kernel compiled, session started)
//   - [slog.LevelWarn]: ignored input such as zero-size resizes
//
// Example:
//
//	mandelbrot.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
}

// Logger returns the current logger. Sub-packages (explorer, kernel,
// internal/remote) call this to share one configuration.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
