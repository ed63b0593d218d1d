package sink

import (
	"fmt"
	"image"
	"image/color"

	"github.com/disintegration/imaging"

	"github.com/matzehuels/tokenpress/pkg/errors"
	"github.com/matzehuels/tokenpress/pkg/units"
)

// PNG rasterizes each page onto a white sheet, one numbered image file
// per page. Useful for previewing a layout without opening a PDF viewer.
type PNG struct {
	pageWidth  float64
	pageHeight float64
	dpi        int
	sheets     []*image.NRGBA
}

// NewPNG creates a PNG sink for pages of the given size in points,
// rasterized at dpi.
func NewPNG(pageWidth, pageHeight float64, dpi int) *PNG {
	return &PNG{pageWidth: pageWidth, pageHeight: pageHeight, dpi: dpi}
}

// BeginPage opens a fresh white sheet. Subsequent draws land on it.
func (p *PNG) BeginPage() error {
	sheet := imaging.New(
		units.Pixels(p.pageWidth, p.dpi),
		units.Pixels(p.pageHeight, p.dpi),
		color.White,
	)
	p.sheets = append(p.sheets, sheet)
	return nil
}

// DrawImage places img with its bottom-left corner at (x, y) points from
// the page's bottom-left corner, scaled to w x h points. Sheets address
// pixels from the top-left, so y is converted here.
func (p *PNG) DrawImage(img image.Image, x, y, w, h float64) error {
	if len(p.sheets) == 0 {
		return errors.New(errors.ErrCodeInternal, "DrawImage called before BeginPage")
	}

	sheet := p.sheets[len(p.sheets)-1]
	pw := units.Pixels(w, p.dpi)
	ph := units.Pixels(h, p.dpi)
	if img.Bounds().Dx() != pw || img.Bounds().Dy() != ph {
		img = imaging.Resize(img, pw, ph, imaging.Lanczos)
	}

	top := sheet.Bounds().Dy() - units.Pixels(y, p.dpi) - ph
	p.sheets[len(p.sheets)-1] = imaging.Paste(sheet, img, image.Pt(units.Pixels(x, p.dpi), top))
	return nil
}

// Pages returns the number of pages begun so far.
func (p *PNG) Pages() int {
	return len(p.sheets)
}

// Sheet returns the rasterized page at the given zero-based index.
func (p *PNG) Sheet(index int) *image.NRGBA {
	return p.sheets[index]
}

// WriteFiles writes one PNG per page. The pattern must contain a single
// integer verb for the one-based page number, e.g. "out/sheet-%03d.png".
// It returns the written paths.
func (p *PNG) WriteFiles(pattern string) ([]string, error) {
	paths := make([]string, 0, len(p.sheets))
	for i, sheet := range p.sheets {
		path := fmt.Sprintf(pattern, i+1)
		if err := imaging.Save(sheet, path); err != nil {
			return nil, errors.Wrap(errors.ErrCodeWriteFailed, err, "failed to write sheet %s", path)
		}
		paths = append(paths, path)
	}
	return paths, nil
}
