package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// newLogger creates a new logger with timestamp formatting.
// The logger writes to w and filters messages at the specified level.
// Timestamps are formatted as "HH:MM:SS.ms" (e.g., "14:32:01.45").
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress tracks the start time of an operation and logs completion with elapsed duration.
// It is safe for sequential use by a single goroutine; concurrent calls to done will race.
type progress struct {
	logger *log.Logger
	start  time.Time
}

// newProgress creates a progress tracker that captures the current time as start.
func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg along with the elapsed time since progress was created.
// Example output: "Exported tree.svg (12ms)"
func (p *progress) done(msg string) {
	p.logger.Infof("%s (%s)", msg, time.Since(p.start).Round(time.Millisecond))
}

// ctxKey is the type for context keys used in this package.
type ctxKey int

// loggerKey is the context key for storing a logger.
const loggerKey ctxKey = 0

// withLogger returns a new context with the given logger attached.
func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext retrieves the logger from ctx.
// If no logger is attached, it returns log.Default().
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}

// =============================================================================
// Observability Hooks
// =============================================================================

// logHooks reports sort and render lifecycle events at debug level.
type logHooks struct {
	logger *log.Logger
}

func (h *logHooks) OnSortStart(_ context.Context, algo string, size int) {
	h.logger.Debug("hook: sort start", "algo", algo, "size", size)
}

func (h *logHooks) OnFrame(context.Context, string, int) {}

func (h *logHooks) OnSortComplete(_ context.Context, algo string, frames int, d time.Duration, cancelled bool) {
	h.logger.Debug("hook: sort end", "algo", algo, "frames", frames, "elapsed", d.Round(time.Millisecond), "cancelled", cancelled)
}

func (h *logHooks) OnRenderStart(_ context.Context, format string, nodes int) {
	h.logger.Debug("hook: render start", "format", format, "nodes", nodes)
}

func (h *logHooks) OnRenderComplete(_ context.Context, format string, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("hook: render failed", "format", format, "err", err)
		return
	}
	h.logger.Debug("hook: render end", "format", format, "elapsed", d.Round(time.Millisecond))
}
