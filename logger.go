package vbtext

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler drops every record. Enabled reports false, so slog never builds
// the attributes of a disabled call.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

// newNopLogger creates the logger vbtext uses until SetLogger is called.
func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// loggerPtr holds the shared logger. Polling retries log from timer
// goroutines while the host may call SetLogger, hence the atomic.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger routes the diagnostics of vbtext, canvas and vector to l.
// A nil logger silences them again, which is also the initial state: a
// missing glyph or a late host never produces output unless asked for.
//
// Records emitted:
//   - [slog.LevelDebug]: each polling retry, each switch to native text,
//     unknown font families in canvas
//   - [slog.LevelInfo]: the fallback being installed
//   - [slog.LevelWarn]: polling abandoned after WithMaxAttempts, unparsable
//     glyph outlines, fonts that fail to load
//
// Example:
//
//	vbtext.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
}

// Logger returns the logger set by SetLogger.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
