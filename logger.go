package mandel

import (
	"log/slog"
	"sync/atomic"
)

var (
	discard = slog.New(slog.DiscardHandler)
	current atomic.Pointer[slog.Logger]
)

// SetLogger routes the log output of this module's packages to l. Until it
// is called nothing is written; nil silences output again.
//
// Debug carries pans, zooms and frame timings. Info marks session and
// connection lifecycle. Warn reports dropped input and failed frame
// deliveries.
func SetLogger(l *slog.Logger) {
	current.Store(l)
}

// Logger returns the logger installed by SetLogger, or a discarding one.
func Logger() *slog.Logger {
	if l := current.Load(); l != nil {
		return l
	}
	return discard
}
