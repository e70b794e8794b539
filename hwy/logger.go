package hwy

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler is a slog.Handler that discards all records. Enabled returns
// false so callers skip formatting entirely.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// loggerPtr stores the active logger. Accessed atomically so that SetLogger
// can be called concurrently with logging from any goroutine.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger configures the logger for hwy and its contrib packages. By
// default nothing is logged. Pass nil to restore the silent default.
//
// Installing a logger reports the detected dispatch level and features at
// [slog.LevelDebug]; kernel construction is logged at the same level.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
	l.Debug("hwy: dispatch",
		"target", CurrentName(),
		"features", currentFeatures.String(),
		"no_simd", NoSimdEnv())
}

// Logger returns the current logger. Contrib packages call this to share the
// same configuration.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
