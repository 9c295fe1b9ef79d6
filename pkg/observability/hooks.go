// Package observability provides hooks for progress reporting and metrics.
//
// Library packages emit events through the registered hooks; the CLI
// registers implementations at startup (for example to drive the progress
// spinner). Hooks default to no-ops, so libraries never depend on a
// particular backend.
//
// # Usage
//
// Register hooks at application startup:
//
//	observability.SetAnimationHooks(&progressHooks{})
//
// Libraries call hooks to emit events:
//
//	observability.Animation().OnFrameRendered(ctx, i, frames, path)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Animation Hooks
// =============================================================================

// AnimationHooks receives events from an animation run.
type AnimationHooks interface {
	// Layout events
	OnLayoutStart(ctx context.Context, vertices int)
	OnLayoutComplete(ctx context.Context, cached bool, duration time.Duration)

	// OnFrameRendered is called after frame i of frames has been written.
	OnFrameRendered(ctx context.Context, i, frames int, path string)

	// Encode events
	OnEncodeStart(ctx context.Context, output string)
	OnEncodeComplete(ctx context.Context, output string, duration time.Duration, err error)
}

// =============================================================================
// Cache Hooks
// =============================================================================

// CacheHooks receives events from cache operations.
type CacheHooks interface {
	OnCacheHit(ctx context.Context, keyType string)
	OnCacheMiss(ctx context.Context, keyType string)
	OnCacheSet(ctx context.Context, keyType string, size int)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopAnimationHooks is a no-op implementation of AnimationHooks.
type NoopAnimationHooks struct{}

func (NoopAnimationHooks) OnLayoutStart(context.Context, int)                             {}
func (NoopAnimationHooks) OnLayoutComplete(context.Context, bool, time.Duration)          {}
func (NoopAnimationHooks) OnFrameRendered(context.Context, int, int, string)              {}
func (NoopAnimationHooks) OnEncodeStart(context.Context, string)                          {}
func (NoopAnimationHooks) OnEncodeComplete(context.Context, string, time.Duration, error) {}

// NoopCacheHooks is a no-op implementation of CacheHooks.
type NoopCacheHooks struct{}

func (NoopCacheHooks) OnCacheHit(context.Context, string)      {}
func (NoopCacheHooks) OnCacheMiss(context.Context, string)     {}
func (NoopCacheHooks) OnCacheSet(context.Context, string, int) {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	animationHooks AnimationHooks = NoopAnimationHooks{}
	cacheHooks     CacheHooks     = NoopCacheHooks{}
	hooksMu        sync.RWMutex
)

// SetAnimationHooks registers custom animation hooks. A nil value is
// ignored.
func SetAnimationHooks(h AnimationHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		animationHooks = h
	}
}

// SetCacheHooks registers custom cache hooks. A nil value is ignored.
func SetCacheHooks(h CacheHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		cacheHooks = h
	}
}

// Animation returns the registered animation hooks.
func Animation() AnimationHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return animationHooks
}

// Cache returns the registered cache hooks.
func Cache() CacheHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return cacheHooks
}

// Reset restores all hooks to their no-op defaults.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	animationHooks = NoopAnimationHooks{}
	cacheHooks = NoopCacheHooks{}
}
