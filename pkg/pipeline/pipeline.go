// Package pipeline provides the core arrange → render pipeline for Tokenpress.
//
// This package implements the complete pipeline that turns token specs into
// drawn output pages. By centralizing this logic, the CLI commands share
// consistent behavior instead of duplicating the stage wiring.
//
// # Architecture
//
// The pipeline consists of two stages:
//
//  1. Arrange: pack token instances onto pages with the row-wrapping packer
//  2. Render: composite every placed token at page resolution and draw it
//     on an output sink
//
// Each stage fires observability hooks so callers can attach progress
// reporting without coupling the pipeline to a UI.
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(nil, logger)
//	out := sink.NewPDF(geom.PageWidth, geom.PageHeight)
//	result, err := runner.Execute(ctx, specs, geom, out)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	err = out.WriteFile("tokens.pdf")
package pipeline

import (
	"image"
	"time"

	"github.com/matzehuels/tokenpress/pkg/layout"
)

// Sink receives the pages and composited token images a pipeline run
// produces. Coordinates passed to DrawImage are in points with the origin
// at the bottom-left corner of the page and y growing upward.
//
// Implementations decide what a page is: a PDF page, a PNG sheet, or a
// recording for tests.
type Sink interface {
	// BeginPage starts a new output page. DrawImage calls that follow
	// draw onto this page until the next BeginPage.
	BeginPage() error

	// DrawImage places img with its bottom-left corner at (x, y), scaled
	// to w x h points.
	DrawImage(img image.Image, x, y, w, h float64) error
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Arrangement is the page layout the run produced.
	Arrangement *layout.Arrangement

	// Pages is the number of pages drawn on the sink.
	Pages int

	// Placed is the number of token instances drawn.
	Placed int

	// Dropped is the number of token instances discarded because the
	// page cap was reached.
	Dropped int

	// Stats contains timing information.
	Stats Stats
}

// Truncated reports whether the page cap forced instances to be dropped.
func (r *Result) Truncated() bool {
	return r.Dropped > 0
}

// Stats contains pipeline execution statistics.
type Stats struct {
	ArrangeTime time.Duration
	RenderTime  time.Duration
}
