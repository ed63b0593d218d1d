// Package sink turns finished page layouts into output documents. Sinks
// receive pages in order: BeginPage opens a sheet, DrawImage places
// composites on it, and a final write call produces the document.
package sink

import (
	"image"
	"io"

	"github.com/signintech/gopdf"

	"github.com/matzehuels/tokenpress/pkg/errors"
)

// PDF accumulates pages into a single PDF document.
type PDF struct {
	doc        gopdf.GoPdf
	pageWidth  float64
	pageHeight float64
	pages      int
}

// NewPDF creates a PDF sink for pages of the given size in points.
func NewPDF(pageWidth, pageHeight float64) *PDF {
	p := &PDF{pageWidth: pageWidth, pageHeight: pageHeight}
	p.doc.Start(gopdf.Config{PageSize: gopdf.Rect{W: pageWidth, H: pageHeight}})
	return p
}

// BeginPage opens a new blank page. Subsequent draws land on it.
func (p *PDF) BeginPage() error {
	p.doc.AddPage()
	p.pages++
	return nil
}

// DrawImage places img with its bottom-left corner at (x, y) points from
// the page's bottom-left corner, scaled to w x h points. The PDF canvas
// itself addresses pages from the top-left, so y is converted here.
func (p *PDF) DrawImage(img image.Image, x, y, w, h float64) error {
	if p.pages == 0 {
		return errors.New(errors.ErrCodeInternal, "DrawImage called before BeginPage")
	}
	top := p.pageHeight - y - h
	if err := p.doc.ImageFrom(img, x, top, &gopdf.Rect{W: w, H: h}); err != nil {
		return errors.Wrap(errors.ErrCodeWriteFailed, err, "failed to draw image on page %d", p.pages)
	}
	return nil
}

// Pages returns the number of pages begun so far.
func (p *PDF) Pages() int {
	return p.pages
}

// WriteFile writes the finished document to path.
func (p *PDF) WriteFile(path string) error {
	if err := p.doc.WritePdf(path); err != nil {
		return errors.Wrap(errors.ErrCodeWriteFailed, err, "failed to write PDF %s", path)
	}
	return nil
}

// WriteTo writes the finished document to w.
func (p *PDF) WriteTo(w io.Writer) (int64, error) {
	return p.doc.WriteTo(w)
}
