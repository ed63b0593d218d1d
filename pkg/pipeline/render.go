package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/matzehuels/tokenpress/pkg/layout"
	"github.com/matzehuels/tokenpress/pkg/observability"
)

// renderPages composites every placement and draws it on the sink, firing
// render hooks around the work.
func (r *Runner) renderPages(ctx context.Context, arr *layout.Arrangement, dpi int, sink Sink) error {
	hooks := observability.Render()
	hooks.OnRenderStart(ctx, arr.PlacementCount())

	start := time.Now()
	pages, err := r.drawPages(ctx, arr, dpi, sink, hooks)
	hooks.OnRenderComplete(ctx, pages, time.Since(start), err)
	return err
}

// drawPages walks the arrangement strictly in page and placement order so
// sink output is deterministic. It returns the number of completed pages.
func (r *Runner) drawPages(ctx context.Context, arr *layout.Arrangement, dpi int, sink Sink, hooks observability.RenderHooks) (int, error) {
	total := arr.PlacementCount()
	done := 0

	for i, page := range arr.Pages {
		if err := ctx.Err(); err != nil {
			return i, err
		}
		hooks.OnPageStart(ctx, i+1, len(arr.Pages))
		if err := sink.BeginPage(); err != nil {
			return i, fmt.Errorf("begin page %d: %w", i+1, err)
		}

		for _, pl := range page.Placements {
			if err := ctx.Err(); err != nil {
				return i, err
			}

			tokenStart := time.Now()
			img, err := r.Renderer.Render(pl.Spec, dpi, pl.Ordinal)
			if err != nil {
				return i, fmt.Errorf("render token %s: %w", pl.Spec.Label(), err)
			}
			if err := sink.DrawImage(img, pl.X, pl.Y, pl.Spec.ImageWidth(), pl.Spec.ImageHeight()); err != nil {
				return i, fmt.Errorf("draw token %s on page %d: %w", pl.Spec.Label(), i+1, err)
			}

			done++
			hooks.OnTokenRendered(ctx, done, total, pl.Spec.Label(), time.Since(tokenStart))
		}
	}

	return len(arr.Pages), nil
}
