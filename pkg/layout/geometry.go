// Package layout places token instances onto printable pages using a
// greedy row-wrapping packer: specs are sorted by quantized size, copies
// are placed left to right, rows wrap, and full pages spill onto new ones
// up to an optional page cap.
package layout

import (
	"github.com/matzehuels/tokenpress/pkg/errors"
	"github.com/matzehuels/tokenpress/pkg/token"
	"github.com/matzehuels/tokenpress/pkg/units"
)

// Geometry describes the printable page: physical size and margin in
// points, the render resolution, and an optional page-count cap.
type Geometry struct {
	// PageWidth and PageHeight are the full page size in points.
	PageWidth  float64
	PageHeight float64

	// Margin is the uniform unprintable border on all four sides, in
	// points.
	Margin float64

	// DPI is the resolution composite images are rendered at.
	DPI int

	// MaxPages caps how many pages the arrangement may produce. Zero
	// means unlimited.
	MaxPages int
}

// DefaultGeometry returns US letter at 400 DPI with a quarter inch margin.
func DefaultGeometry() Geometry {
	return Geometry{
		PageWidth:  612,
		PageHeight: 792,
		Margin:     0.25 * units.PointsPerInch,
		DPI:        400,
	}
}

// RenderableWidth returns the horizontal space available for placements.
func (g Geometry) RenderableWidth() float64 {
	return g.PageWidth - 2*g.Margin
}

// RenderableHeight returns the vertical space available for placements.
func (g Geometry) RenderableHeight() float64 {
	return g.PageHeight - 2*g.Margin
}

// Fits reports whether a single composite of the given spec fits within
// the renderable area.
func (g Geometry) Fits(s *token.Spec) bool {
	return s.ImageWidth() <= g.RenderableWidth() && s.ImageHeight() <= g.RenderableHeight()
}

// Validate checks that the geometry describes a usable page.
func (g Geometry) Validate() error {
	if g.PageWidth <= 0 || g.PageHeight <= 0 {
		return errors.New(errors.ErrCodeInvalidPageSize, "page size must be positive, got %v x %v", g.PageWidth, g.PageHeight)
	}
	if g.Margin < 0 {
		return errors.New(errors.ErrCodeInvalidPageSize, "page margin cannot be negative, got %v", g.Margin)
	}
	if g.RenderableWidth() <= 0 || g.RenderableHeight() <= 0 {
		return errors.New(errors.ErrCodeInvalidPageSize, "page margin %v leaves no renderable area on a %v x %v page", g.Margin, g.PageWidth, g.PageHeight)
	}
	if g.DPI <= 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "dpi must be positive, got %d", g.DPI)
	}
	if g.MaxPages < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "max pages cannot be negative, got %d", g.MaxPages)
	}
	return nil
}
