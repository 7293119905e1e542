package pixfilter

import (
	"log/slog"
	"sync/atomic"
	"time"
)

// silent is the logger in effect until SetLogger installs another one.
// Its handler reports every level as disabled, so filters never build
// attributes for it.
var silent = slog.New(slog.DiscardHandler)

var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(silent)
}

// SetLogger routes pixfilter's diagnostics to l. Pass nil to silence them
// again, which is also the initial state.
//
// Records pixfilter emits:
//   - [slog.LevelDebug] "pixfilter: filter applied" after every filter call,
//     with operation, width, height, bands and elapsed
//   - [slog.LevelWarn] "pixfilter: filter aborted" when a call is cancelled
//   - [slog.LevelWarn] "pixfilter: input rejected" when Process refuses an
//     array or an operation name
//
// SetLogger may be called while filters run on other goroutines.
//
// Example:
//
//	pixfilter.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = silent
	}
	loggerPtr.Store(l)
}

// Logger returns the logger pixfilter currently writes to.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}

func logRejected(op string, err error) {
	Logger().Warn("pixfilter: input rejected", "operation", op, "error", err)
}

func logAborted(op Operation, err error) {
	Logger().Warn("pixfilter: filter aborted", "operation", string(op), "error", err)
}

func logApplied(op Operation, img *PixelBuffer, bands int, elapsed time.Duration) {
	Logger().Debug("pixfilter: filter applied",
		"operation", string(op),
		"width", img.width,
		"height", img.height,
		"bands", bands,
		"elapsed", elapsed)
}
