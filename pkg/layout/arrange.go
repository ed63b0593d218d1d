package layout

import (
	"sort"

	"github.com/matzehuels/tokenpress/pkg/errors"
	"github.com/matzehuels/tokenpress/pkg/token"
	"github.com/matzehuels/tokenpress/pkg/units"
)

// Placement locates one rendered token instance on a page. Coordinates are
// in points from the page's bottom-left corner with y increasing upward,
// matching PDF page space.
type Placement struct {
	// Spec is the token this instance renders.
	Spec *token.Spec

	// Ordinal is the zero-based instance index within the spec, used to
	// select cyclic colors and background images.
	Ordinal int

	// X and Y are the bottom-left corner of the composite on the page.
	X float64
	Y float64
}

// Page is an ordered list of placements that share one sheet.
type Page struct {
	Placements []Placement
}

// Arrangement is the result of laying out token specs across pages.
type Arrangement struct {
	Pages []Page

	// Dropped counts instances that did not fit within the page cap.
	Dropped int
}

// Truncated reports whether the page cap cut the arrangement short.
func (a *Arrangement) Truncated() bool {
	return a.Dropped > 0
}

// PlacementCount returns the total number of placed instances.
func (a *Arrangement) PlacementCount() int {
	n := 0
	for _, p := range a.Pages {
		n += len(p.Placements)
	}
	return n
}

// sizeBucket is the quantization step for grouping near-identical sizes,
// in points (one hundredth of an inch).
const sizeBucket = 0.01 * units.PointsPerInch

// sizeOrdinal is a quantized (height, width) key. Two specs in the same
// hundredth-of-an-inch bucket sort as equals and keep their input order.
type sizeOrdinal struct {
	height int
	width  int
}

func ordinalOf(s *token.Spec) sizeOrdinal {
	return sizeOrdinal{
		height: int(s.ImageHeight() / sizeBucket),
		width:  int(s.ImageWidth() / sizeBucket),
	}
}

func (o sizeOrdinal) less(other sizeOrdinal) bool {
	if o.height != other.height {
		return o.height < other.height
	}
	return o.width < other.width
}

// cursor tracks the row-filling position while placing instances on a
// page.
type cursor struct {
	x, y      float64
	rowHeight float64
}

// Arrange places every copy of every spec onto as few pages as row packing
// allows. Specs are placed smallest first, by quantized height then width;
// copies of one spec stay consecutive and are never interleaved with other
// specs. The ordering is deterministic given the input order.
//
// A spec whose composite cannot fit the renderable area at all is a fatal
// error, reported before any page is produced. When geom.MaxPages is set
// and reached, the remaining instances are dropped and counted in the
// result instead of being treated as an error.
func Arrange(specs []*token.Spec, geom Geometry) (*Arrangement, error) {
	if err := geom.Validate(); err != nil {
		return nil, err
	}
	for _, s := range specs {
		if !geom.Fits(s) {
			return nil, errors.New(errors.ErrCodeTokenTooLarge,
				"token %s is %.2f x %.2f in but the page fits only %.2f x %.2f in (excluding margins)",
				s.Label(),
				units.ToInches(s.ImageWidth()), units.ToInches(s.ImageHeight()),
				units.ToInches(geom.RenderableWidth()), units.ToInches(geom.RenderableHeight()))
		}
	}

	ordered := make([]*token.Spec, len(specs))
	copy(ordered, specs)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordinalOf(ordered[i]).less(ordinalOf(ordered[j]))
	})

	arr := &Arrangement{}
	cur := cursor{x: geom.Margin, y: geom.Margin}
	var open []Placement

	rightEdge := geom.PageWidth - geom.Margin
	topEdge := geom.PageHeight - geom.Margin

	for si, s := range ordered {
		w := s.ImageWidth()
		h := s.ImageHeight()
		for i := 0; i < s.Copies; i++ {
			if cur.x+w > rightEdge {
				cur.y += cur.rowHeight
				cur.x = geom.Margin
				cur.rowHeight = 0
			}
			if cur.y+h > topEdge {
				arr.Pages = append(arr.Pages, Page{Placements: open})
				if geom.MaxPages > 0 && len(arr.Pages) >= geom.MaxPages {
					arr.Dropped = remaining(ordered, si, i)
					return arr, nil
				}
				open = nil
				cur = cursor{x: geom.Margin, y: geom.Margin}
			}
			open = append(open, Placement{Spec: s, Ordinal: i, X: cur.x, Y: cur.y})
			cur.x += w
			if h > cur.rowHeight {
				cur.rowHeight = h
			}
		}
	}

	if len(open) > 0 {
		arr.Pages = append(arr.Pages, Page{Placements: open})
	}
	return arr, nil
}

// remaining counts the instances not yet placed, starting from copy ci of
// spec si.
func remaining(specs []*token.Spec, si, ci int) int {
	n := specs[si].Copies - ci
	for _, s := range specs[si+1:] {
		n += s.Copies
	}
	return n
}
