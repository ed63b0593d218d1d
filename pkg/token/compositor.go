package token

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"

	"github.com/matzehuels/tokenpress/pkg/units"
)

// DefaultMarkRadius is the length in pixels of the corner cut guides.
const DefaultMarkRadius = 10

// Renderer composites token specs into printable raster images. The zero
// value renders with nearest-neighbor scaling and no corner marks; use
// NewRenderer for the standard settings.
type Renderer struct {
	// Filter is the resampling kernel used when scaling faces and
	// background images to their target pixel size.
	Filter imaging.ResampleFilter

	// MarkRadius is the length in pixels of the black corner marks drawn
	// as cut guides. Zero disables the marks.
	MarkRadius int

	// Loader caches decoded source images across instances. When nil each
	// render reads its sources from disk.
	Loader *Loader
}

// NewRenderer creates a Renderer with Lanczos resampling, default corner
// marks, and a shared image cache.
func NewRenderer() *Renderer {
	return &Renderer{
		Filter:     imaging.Lanczos,
		MarkRadius: DefaultMarkRadius,
		Loader:     NewLoader(),
	}
}

// Render produces the composite image for one instance of a token spec at
// the given resolution. The zero-based index selects this instance's
// cyclic colors and background image, so successive copies can vary.
//
// The output dimensions are exactly the spec's ImageWidth by ImageHeight
// converted to pixels at dpi, and the result depends only on the spec,
// dpi, index, and source file contents.
func (r *Renderer) Render(spec *Spec, dpi int, index int) (image.Image, error) {
	faceW := units.Pixels(spec.Width, dpi)
	faceH := units.Pixels(spec.Height, dpi)

	front, err := r.load(spec.FrontImagePath)
	if err != nil {
		return nil, err
	}
	back := front
	if spec.BackPath() != spec.FrontImagePath {
		back, err = r.load(spec.BackPath())
		if err != nil {
			return nil, err
		}
	}

	frontFace := imaging.Resize(front, faceW, faceH, r.Filter)
	backFace := imaging.Resize(back, faceW, faceH, r.Filter)

	background, err := r.background(spec, index, faceW, faceH)
	if err != nil {
		return nil, err
	}
	frontFace = imaging.Overlay(background, frontFace, image.Pt(0, 0), 1.0)
	backFace = imaging.Overlay(background, backFace, image.Pt(0, 0), 1.0)

	// The back face prints upside down so it reads correctly once the
	// sheet is folded along the crease.
	backFace = imaging.FlipV(backFace)
	if spec.MirrorBack {
		backFace = imaging.FlipH(backFace)
	}

	border := units.Pixels(spec.BorderThickness, dpi)
	bottom := units.Pixels(spec.BottomMargin, dpi)
	canvas := imaging.New(
		units.Pixels(spec.ImageWidth(), dpi),
		units.Pixels(spec.ImageHeight(), dpi),
		spec.BorderColorAt(index),
	)

	// Back face sits above the crease, front face below it, leaving a
	// two-border gap between them for the fold.
	canvas = imaging.Overlay(canvas, backFace, image.Pt(border, border+bottom), 1.0)
	frontY := 3*border + bottom + faceH
	canvas = imaging.Overlay(canvas, frontFace, image.Pt(border, frontY), 1.0)

	return r.markCorners(canvas), nil
}

// background builds the face-sized backing layer for one instance: a
// resized background image when one is configured, otherwise a solid
// color fill.
func (r *Renderer) background(spec *Spec, index, w, h int) (*image.NRGBA, error) {
	if !spec.BackgroundImagePaths.IsZero() {
		img, err := r.load(spec.BackgroundImagePaths.At(index))
		if err != nil {
			return nil, err
		}
		return imaging.Resize(img, w, h, r.Filter), nil
	}
	return imaging.New(w, h, spec.BackgroundColorAt(index)), nil
}

func (r *Renderer) load(path string) (image.Image, error) {
	if r.Loader != nil {
		return r.Loader.Load(path)
	}
	return readImage(path)
}

// markCorners draws short black runs along both edges meeting at each
// canvas corner, as alignment guides for cutting. Drawn last so nothing
// overwrites them.
func (r *Renderer) markCorners(canvas *image.NRGBA) image.Image {
	radius := float64(r.MarkRadius)
	if radius <= 0 {
		return canvas
	}
	w := float64(canvas.Bounds().Dx())
	h := float64(canvas.Bounds().Dy())

	dc := gg.NewContextForImage(canvas)
	dc.SetColor(color.Black)
	dc.DrawRectangle(0, 0, radius, 1)
	dc.DrawRectangle(0, 0, 1, radius)
	dc.DrawRectangle(w-radius, 0, radius, 1)
	dc.DrawRectangle(w-1, 0, 1, radius)
	dc.DrawRectangle(0, h-1, radius, 1)
	dc.DrawRectangle(0, h-radius, 1, radius)
	dc.DrawRectangle(w-radius, h-1, radius, 1)
	dc.DrawRectangle(w-1, h-radius, 1, radius)
	dc.Fill()

	return imaging.Clone(dc.Image())
}
