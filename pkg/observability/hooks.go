// Package observability provides hooks for metrics, tracing, and logging.
//
// Library packages emit events through the registered hooks without
// depending on any observability backend. The binary registers concrete
// hooks at startup; until then every hook is a no-op.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetSortHooks(&mySortHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Sort().OnSortStart(ctx, "merge", len(values))
//	// ... animate ...
//	observability.Sort().OnSortComplete(ctx, "merge", frames, elapsed, cancelled)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Sort Hooks
// =============================================================================

// SortHooks receives events from animated sort runs.
type SortHooks interface {
	// OnSortStart records the start of a run over size values.
	OnSortStart(ctx context.Context, algo string, size int)

	// OnFrame records one presented frame; n is 1-based within the run.
	OnFrame(ctx context.Context, algo string, n int)

	// OnSortComplete records the end of a run. Cancelled runs report the
	// frames presented before the cancel.
	OnSortComplete(ctx context.Context, algo string, frames int, duration time.Duration, cancelled bool)
}

// =============================================================================
// Render Hooks
// =============================================================================

// RenderHooks receives events from static exports of a call tree.
type RenderHooks interface {
	OnRenderStart(ctx context.Context, format string, nodes int)
	OnRenderComplete(ctx context.Context, format string, duration time.Duration, err error)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopSortHooks is a no-op implementation of SortHooks.
type NoopSortHooks struct{}

func (NoopSortHooks) OnSortStart(context.Context, string, int)                           {}
func (NoopSortHooks) OnFrame(context.Context, string, int)                               {}
func (NoopSortHooks) OnSortComplete(context.Context, string, int, time.Duration, bool) {}

// NoopRenderHooks is a no-op implementation of RenderHooks.
type NoopRenderHooks struct{}

func (NoopRenderHooks) OnRenderStart(context.Context, string, int)                    {}
func (NoopRenderHooks) OnRenderComplete(context.Context, string, time.Duration, error) {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	sortHooks   SortHooks   = NoopSortHooks{}
	renderHooks RenderHooks = NoopRenderHooks{}
	hooksMu     sync.RWMutex
)

// SetSortHooks registers custom sort hooks. Nil is ignored.
func SetSortHooks(h SortHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		sortHooks = h
	}
}

// SetRenderHooks registers custom render hooks. Nil is ignored.
func SetRenderHooks(h RenderHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		renderHooks = h
	}
}

// Sort returns the registered sort hooks.
func Sort() SortHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return sortHooks
}

// Render returns the registered render hooks.
func Render() RenderHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return renderHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	sortHooks = NoopSortHooks{}
	renderHooks = NoopRenderHooks{}
}
