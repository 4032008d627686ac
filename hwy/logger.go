package hwy

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

var nopLogger = slog.New(nopHandler{})

// loggerPtr stores the active logger. A nil value means logging is off.
var loggerPtr atomic.Pointer[slog.Logger]

// SetLogger configures the logger for hwy and its sub-packages.
// By default nothing is logged. Pass nil to restore the silent default.
//
// Log levels used:
//   - [slog.LevelDebug]: kernel registration and fallback resolution
//   - [slog.LevelInfo]: the active dispatch target, logged once on install
//
// Example:
//
//	hwy.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		loggerPtr.Store(nil)
		return
	}
	loggerPtr.Store(l)
	l.Info("hwy: dispatch target",
		"level", currentLevel.String(),
		"detected", detectedLevel.String(),
		"width", currentWidth,
		"fma", hasFMA,
		"round", hasRound)
}

// Logger returns the logger installed with SetLogger, or a logger that
// discards everything.
func Logger() *slog.Logger {
	if l := loggerPtr.Load(); l != nil {
		return l
	}
	return nopLogger
}
