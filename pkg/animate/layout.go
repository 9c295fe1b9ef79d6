package animate

import (
	"context"
	"time"

	"github.com/matzehuels/graphspin/pkg/cache"
	"github.com/matzehuels/graphspin/pkg/errors"
	"github.com/matzehuels/graphspin/pkg/graph"
	"github.com/matzehuels/graphspin/pkg/layout"
	"github.com/matzehuels/graphspin/pkg/observability"
)

const layoutKeyType = "layout"

// LayoutWithCacheInfo returns a force-directed layout of g, served from the
// cache when possible, and reports whether it was a cache hit.
func (r *Runner) LayoutWithCacheInfo(ctx context.Context, g *graph.Graph, opts Options) (*layout.Layout, bool, error) {
	if opts.Seed == 0 {
		opts.Seed = layout.DefaultSeed
	}
	if opts.Iterations == 0 {
		opts.Iterations = layout.DefaultIterations
	}
	logger := opts.Logger
	if logger == nil {
		logger = r.Logger
	}
	hooks := observability.Animation()
	cacheHooks := observability.Cache()

	key := r.Keyer.LayoutKey(graph.Hash(g), cache.LayoutKeyOpts{
		Seed:       opts.Seed,
		Iterations: opts.Iterations,
	})

	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
			l, err := layout.Unmarshal(data)
			if err == nil && l.Validate(g.RealCount()) == nil {
				cacheHooks.OnCacheHit(ctx, layoutKeyType)
				hooks.OnLayoutComplete(ctx, true, 0)
				logger.Debug("layout cache hit", "vertices", g.RealCount())
				return l, true, nil
			}
			// Unreadable entries fall through to recompute.
		}
		cacheHooks.OnCacheMiss(ctx, layoutKeyType)
	}

	hooks.OnLayoutStart(ctx, g.RealCount())
	start := time.Now()
	l := layout.ForceDirected(g, opts.LayoutOptions()...)
	elapsed := time.Since(start)
	hooks.OnLayoutComplete(ctx, false, elapsed)
	logger.Info("computed layout", "vertices", g.RealCount(), "edges", g.EdgeCount(), "duration", elapsed)

	if err := l.Validate(g.RealCount()); err != nil {
		return nil, false, errors.Wrap(errors.ErrCodeInternal, err, "force-directed layout")
	}

	if data, err := layout.Marshal(l); err == nil {
		if err := r.Cache.Set(ctx, key, data, cache.TTLLayout); err != nil {
			logger.Warn("could not cache layout", "err", err)
		} else {
			cacheHooks.OnCacheSet(ctx, layoutKeyType, len(data))
		}
	}
	return l, false, nil
}

// Layout is a convenience wrapper around LayoutWithCacheInfo.
func (r *Runner) Layout(ctx context.Context, g *graph.Graph, opts Options) (*layout.Layout, error) {
	l, _, err := r.LayoutWithCacheInfo(ctx, g, opts)
	return l, err
}
