package gpures

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler drops every record. Enabled reports false, so callers never
// build the attributes of a lifecycle message nobody reads.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// loggerPtr is shared by every backend and wrapper; swapped atomically.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger routes the messages of gpures, its backends, the factory
// registry and the props, table, archive and binding packages to l.
// Nothing is logged until it is called; nil silences logging again.
//
// Messages are emitted at two levels:
//   - [slog.LevelDebug]: sets and objects created, adopted or destroyed,
//     backends opened or selected, binding points assigned, tables saved
//   - [slog.LevelWarn]: objects leaked at backend Close, duplicate
//     registrations, backends that cannot start, caches that are missing
//     or stale
//
// Example:
//
//	gpures.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
}

// Logger returns the logger installed by SetLogger. Backends and helper
// packages log through it rather than holding their own.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
