// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard
// dependencies on specific observability backends. Consumers register hooks
// at startup to receive events about pipeline execution and cache
// operations.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// This approach avoids import cycles (hooks are registered by main, not by
// libraries), keeps the core library free of observability frameworks, and
// allows different backends (OpenTelemetry, Prometheus, ...).
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetPipelineHooks(&myPipelineHooks{})
//	    // ... run application
//	}
//
// The pipeline calls hooks to emit events:
//
//	observability.Pipeline().OnRenderStart(ctx, format)
//	// ... render ...
//	observability.Pipeline().OnRenderComplete(ctx, format, len(data), duration, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// PipelineHooks receives events from the render pipeline.
type PipelineHooks interface {
	// Build events: constructing the diagram model from its source.
	OnBuildStart(ctx context.Context, source string)
	OnBuildComplete(ctx context.Context, source string, nodeCount, edgeCount int, duration time.Duration, err error)

	// Render events: layout-engine invocation and format conversion.
	OnRenderStart(ctx context.Context, format string)
	OnRenderComplete(ctx context.Context, format string, artifactBytes int, duration time.Duration, err error)
}

// CacheHooks receives events from artifact-cache operations.
type CacheHooks interface {
	OnCacheHit(ctx context.Context, key string)
	OnCacheMiss(ctx context.Context, key string)
	OnCacheError(ctx context.Context, key string, err error)
}

// noopPipelineHooks is the default no-op implementation.
type noopPipelineHooks struct{}

func (noopPipelineHooks) OnBuildStart(context.Context, string) {}
func (noopPipelineHooks) OnBuildComplete(context.Context, string, int, int, time.Duration, error) {
}
func (noopPipelineHooks) OnRenderStart(context.Context, string) {}
func (noopPipelineHooks) OnRenderComplete(context.Context, string, int, time.Duration, error) {}

// noopCacheHooks is the default no-op implementation.
type noopCacheHooks struct{}

func (noopCacheHooks) OnCacheHit(context.Context, string)          {}
func (noopCacheHooks) OnCacheMiss(context.Context, string)         {}
func (noopCacheHooks) OnCacheError(context.Context, string, error) {}

var (
	mu            sync.RWMutex
	pipelineHooks PipelineHooks = noopPipelineHooks{}
	cacheHooks    CacheHooks    = noopCacheHooks{}
)

// SetPipelineHooks registers pipeline hooks. Pass nil to restore the no-op
// default. Call at startup, before the pipeline runs.
func SetPipelineHooks(h PipelineHooks) {
	mu.Lock()
	defer mu.Unlock()
	if h == nil {
		pipelineHooks = noopPipelineHooks{}
		return
	}
	pipelineHooks = h
}

// SetCacheHooks registers cache hooks. Pass nil to restore the no-op default.
func SetCacheHooks(h CacheHooks) {
	mu.Lock()
	defer mu.Unlock()
	if h == nil {
		cacheHooks = noopCacheHooks{}
		return
	}
	cacheHooks = h
}

// Pipeline returns the registered pipeline hooks (never nil).
func Pipeline() PipelineHooks {
	mu.RLock()
	defer mu.RUnlock()
	return pipelineHooks
}

// Cache returns the registered cache hooks (never nil).
func Cache() CacheHooks {
	mu.RLock()
	defer mu.RUnlock()
	return cacheHooks
}
