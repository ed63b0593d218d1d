package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/tokenpress/pkg/layout"
	"github.com/matzehuels/tokenpress/pkg/token"
)

// Runner encapsulates pipeline execution.
//
// The Runner is stateless except for the renderer's asset cache and the
// logger - it doesn't store pipeline results. Reusing one Runner across
// runs reuses loaded source images.
type Runner struct {
	Renderer *token.Renderer
	Logger   *log.Logger
}

// NewRunner creates a runner.
// If renderer is nil, a default renderer is used.
// If logger is nil, the package default logger is used.
func NewRunner(renderer *token.Renderer, logger *log.Logger) *Runner {
	if renderer == nil {
		renderer = token.NewRenderer()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Renderer: renderer,
		Logger:   logger,
	}
}

// Execute runs the complete arrange → render pipeline.
//
// A nil error with Result.Dropped > 0 means the page cap truncated the
// arrangement; the pages that fit were still rendered. Rendering stops at
// the first error, including context cancellation.
func (r *Runner) Execute(ctx context.Context, specs []*token.Spec, geom layout.Geometry, sink Sink) (*Result, error) {
	result := &Result{}

	// Stage 1: Arrange
	arrangeStart := time.Now()
	arr, err := r.Arrange(ctx, specs, geom)
	if err != nil {
		return nil, fmt.Errorf("arrange: %w", err)
	}
	result.Arrangement = arr
	result.Dropped = arr.Dropped
	result.Stats.ArrangeTime = time.Since(arrangeStart)

	r.Logger.Info("arranged tokens",
		"pages", len(arr.Pages),
		"placed", arr.PlacementCount(),
		"duration", result.Stats.ArrangeTime)
	if arr.Truncated() {
		r.Logger.Warn("page cap reached, dropping instances",
			"maxPages", geom.MaxPages,
			"dropped", arr.Dropped)
	}

	// Stage 2: Render
	renderStart := time.Now()
	if err := r.renderPages(ctx, arr, geom.DPI, sink); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.Pages = len(arr.Pages)
	result.Placed = arr.PlacementCount()
	result.Stats.RenderTime = time.Since(renderStart)

	r.Logger.Info("rendered pages",
		"pages", result.Pages,
		"tokens", result.Placed,
		"dpi", geom.DPI,
		"duration", result.Stats.RenderTime)

	return result, nil
}
