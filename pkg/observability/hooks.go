// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard dependencies
// on specific observability backends. Consumers can register hooks at startup
// to receive events about layout and render progress.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// This approach:
//   - Avoids import cycles (hooks are registered by main, not by libraries)
//   - Keeps the core library dependency-free from observability frameworks
//   - Allows different backends (progress UIs, OpenTelemetry, plain logs)
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetRenderHooks(&myProgressHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Render().OnRenderStart(ctx, totalInstances)
//	// ... render tokens ...
//	observability.Render().OnRenderComplete(ctx, pages, duration, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Layout Hooks
// =============================================================================

// LayoutHooks receives events from the page layout engine.
type LayoutHooks interface {
	// OnArrangeStart fires before specs are packed onto pages.
	OnArrangeStart(ctx context.Context, specCount, instanceCount int)

	// OnArrangeComplete fires once packing finishes or fails.
	OnArrangeComplete(ctx context.Context, pages, placed, dropped int, duration time.Duration, err error)
}

// =============================================================================
// Render Hooks
// =============================================================================

// RenderHooks receives events while composites are rendered onto pages.
type RenderHooks interface {
	// OnRenderStart fires before the first composite is rendered.
	OnRenderStart(ctx context.Context, totalInstances int)

	// OnPageStart fires when a new page begins, one-based.
	OnPageStart(ctx context.Context, page, totalPages int)

	// OnTokenRendered fires after each composite lands on its page. done
	// counts completed instances including this one.
	OnTokenRendered(ctx context.Context, done, total int, label string, duration time.Duration)

	// OnRenderComplete fires once every page is finished or rendering
	// fails.
	OnRenderComplete(ctx context.Context, pages int, duration time.Duration, err error)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopLayoutHooks is a no-op implementation of LayoutHooks.
type NoopLayoutHooks struct{}

func (NoopLayoutHooks) OnArrangeStart(context.Context, int, int) {}
func (NoopLayoutHooks) OnArrangeComplete(context.Context, int, int, int, time.Duration, error) {
}

// NoopRenderHooks is a no-op implementation of RenderHooks.
type NoopRenderHooks struct{}

func (NoopRenderHooks) OnRenderStart(context.Context, int)                              {}
func (NoopRenderHooks) OnPageStart(context.Context, int, int)                           {}
func (NoopRenderHooks) OnTokenRendered(context.Context, int, int, string, time.Duration) {}
func (NoopRenderHooks) OnRenderComplete(context.Context, int, time.Duration, error)     {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	layoutHooks LayoutHooks = NoopLayoutHooks{}
	renderHooks RenderHooks = NoopRenderHooks{}
	hooksMu     sync.RWMutex
)

// SetLayoutHooks registers custom layout hooks.
// This should be called once at application startup before any layout operations.
func SetLayoutHooks(h LayoutHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		layoutHooks = h
	}
}

// SetRenderHooks registers custom render hooks.
// This should be called once at application startup before any render operations.
func SetRenderHooks(h RenderHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		renderHooks = h
	}
}

// Layout returns the registered layout hooks.
func Layout() LayoutHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return layoutHooks
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
	layoutHooks = NoopLayoutHooks{}
	renderHooks = NoopRenderHooks{}
}
