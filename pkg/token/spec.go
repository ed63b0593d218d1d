// Package token builds printable composite images for double-sided paper
// tokens: front and back artwork stacked around a fold crease, framed by a
// border, and marked with corner cut guides.
package token

import (
	"image/color"
	"path/filepath"

	"github.com/matzehuels/tokenpress/pkg/errors"
	"github.com/matzehuels/tokenpress/pkg/units"
)

// Default styling applied when a spec leaves the corresponding field unset.
var (
	// DefaultBorderColor is an off-white that hides cut lines on white
	// paper.
	DefaultBorderColor = color.NRGBA{R: 254, G: 254, B: 254, A: 255}

	// DefaultBackgroundColor is the backing color behind transparent
	// artwork.
	DefaultBackgroundColor = color.NRGBA{R: 0, G: 0, B: 0, A: 255}
)

// DefaultBorderThickness is the border width in points (0.1 inch).
const DefaultBorderThickness = 0.1 * units.PointsPerInch

// Spec is an immutable description of one kind of token. All physical
// lengths are in printer's points.
type Spec struct {
	// FrontImagePath is the artwork shown on the token's front face.
	FrontImagePath string

	// BackImagePath is the artwork shown on the back face. When empty the
	// front artwork is used for both faces.
	BackImagePath string

	// Width and Height are the physical size of one face.
	Width  float64
	Height float64

	// BorderThickness is the width of the border framing the composite.
	BorderThickness float64

	// BottomMargin is extra padding reserved at the base of each face for
	// mounting in a stand.
	BottomMargin float64

	// BorderColors and BackgroundColors cycle per instance, selected by
	// the instance's render-order index.
	BorderColors     ColorCycle
	BackgroundColors ColorCycle

	// BackgroundImagePaths, when set, overrides BackgroundColors and
	// cycles per instance.
	BackgroundImagePaths PathCycle

	// MirrorBack mirrors the back face horizontally in addition to the
	// mandatory vertical flip, so back text reads correctly after folding.
	MirrorBack bool

	// Copies is the number of physical instances to place.
	Copies int
}

// ImageWidth returns the physical width in points of the full composite,
// one face plus the border on both sides.
func (s *Spec) ImageWidth() float64 {
	return s.Width + 2*s.BorderThickness
}

// ImageHeight returns the physical height in points of the full composite:
// both faces stacked with the fold crease between them, plus borders and
// bottom margins.
func (s *Spec) ImageHeight() float64 {
	return 2*s.Height + 4*s.BorderThickness + 2*s.BottomMargin
}

// BackPath returns the back face's source path, falling back to the front
// artwork when no back is configured.
func (s *Spec) BackPath() string {
	if s.BackImagePath != "" {
		return s.BackImagePath
	}
	return s.FrontImagePath
}

// BorderColorAt returns the border color for the given instance index.
func (s *Spec) BorderColorAt(index int) color.NRGBA {
	if s.BorderColors.IsZero() {
		return DefaultBorderColor
	}
	return s.BorderColors.At(index)
}

// BackgroundColorAt returns the background color for the given instance
// index.
func (s *Spec) BackgroundColorAt(index int) color.NRGBA {
	if s.BackgroundColors.IsZero() {
		return DefaultBackgroundColor
	}
	return s.BackgroundColors.At(index)
}

// Label returns a short human-readable name for the spec, derived from the
// front artwork's file name.
func (s *Spec) Label() string {
	return filepath.Base(s.FrontImagePath)
}

// AssetPaths returns every source image path the spec references, for
// preflight checks.
func (s *Spec) AssetPaths() []string {
	paths := []string{s.FrontImagePath}
	if s.BackImagePath != "" {
		paths = append(paths, s.BackImagePath)
	}
	paths = append(paths, s.BackgroundImagePaths.All()...)
	return paths
}

// Validate checks that the spec describes a renderable token.
func (s *Spec) Validate() error {
	if err := errors.ValidateAssetPath(s.FrontImagePath); err != nil {
		return err
	}
	if s.BackImagePath != "" {
		if err := errors.ValidateAssetPath(s.BackImagePath); err != nil {
			return err
		}
	}
	for _, p := range s.BackgroundImagePaths.All() {
		if err := errors.ValidateAssetPath(p); err != nil {
			return err
		}
	}
	if s.Width <= 0 {
		return errors.New(errors.ErrCodeInvalidToken, "token %s: width must be positive, got %v", s.Label(), s.Width)
	}
	if s.Height <= 0 {
		return errors.New(errors.ErrCodeInvalidToken, "token %s: height must be positive, got %v", s.Label(), s.Height)
	}
	if s.BorderThickness < 0 {
		return errors.New(errors.ErrCodeInvalidToken, "token %s: border thickness cannot be negative", s.Label())
	}
	if s.BottomMargin < 0 {
		return errors.New(errors.ErrCodeInvalidToken, "token %s: bottom margin cannot be negative", s.Label())
	}
	if s.Copies < 1 {
		return errors.New(errors.ErrCodeInvalidToken, "token %s: copies must be positive, got %d", s.Label(), s.Copies)
	}
	return nil
}
