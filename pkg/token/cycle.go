package token

import "image/color"

// ColorCycle is a single color or a repeating sequence of colors selected
// by a token instance's render-order index. The zero value is empty and
// callers fall back to a default color.
type ColorCycle struct {
	colors []color.NRGBA
}

// Colors builds a ColorCycle from one or more colors.
func Colors(cs ...color.NRGBA) ColorCycle {
	return ColorCycle{colors: cs}
}

// At returns the color for the given zero-based instance index, cycling
// through the sequence. On an empty cycle it returns the zero color.
func (c ColorCycle) At(index int) color.NRGBA {
	if len(c.colors) == 0 {
		return color.NRGBA{}
	}
	return c.colors[index%len(c.colors)]
}

// Len returns the number of colors in the cycle.
func (c ColorCycle) Len() int {
	return len(c.colors)
}

// IsZero reports whether the cycle holds no colors.
func (c ColorCycle) IsZero() bool {
	return len(c.colors) == 0
}

// PathCycle is a single file path or a repeating sequence of file paths
// selected by a token instance's render-order index. The zero value is
// empty, meaning no background image is configured.
type PathCycle struct {
	paths []string
}

// Paths builds a PathCycle from one or more file paths.
func Paths(ps ...string) PathCycle {
	return PathCycle{paths: ps}
}

// At returns the path for the given zero-based instance index, cycling
// through the sequence. On an empty cycle it returns the empty string.
func (p PathCycle) At(index int) string {
	if len(p.paths) == 0 {
		return ""
	}
	return p.paths[index%len(p.paths)]
}

// Len returns the number of paths in the cycle.
func (p PathCycle) Len() int {
	return len(p.paths)
}

// IsZero reports whether the cycle holds no paths.
func (p PathCycle) IsZero() bool {
	return len(p.paths) == 0
}

// All returns the paths in cycle order, for validation and preflight
// checks.
func (p PathCycle) All() []string {
	return p.paths
}
