package config

import (
	"image/color"

	"gopkg.in/yaml.v3"

	"github.com/matzehuels/tokenpress/pkg/errors"
	"github.com/matzehuels/tokenpress/pkg/token"
)

// ColorList is a config field holding either one RGB color or a sequence
// of RGB colors, e.g. [254, 254, 254] or [[20, 20, 20], [200, 0, 0]].
type ColorList struct {
	colors []color.NRGBA
}

// Cycle converts the parsed colors into a token color cycle.
func (l ColorList) Cycle() token.ColorCycle {
	return token.Colors(l.colors...)
}

// Len returns the number of parsed colors.
func (l ColorList) Len() int {
	return len(l.colors)
}

// UnmarshalYAML accepts a single [r, g, b] triple or a list of triples.
func (l *ColorList) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.SequenceNode {
		return errors.New(errors.ErrCodeInvalidColor, "colors must be [r, g, b] or a list of [r, g, b] triples")
	}
	if len(value.Content) == 0 {
		l.colors = nil
		return nil
	}

	if value.Content[0].Kind == yaml.SequenceNode {
		var triples [][]int
		if err := value.Decode(&triples); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidColor, err, "malformed color list")
		}
		colors := make([]color.NRGBA, 0, len(triples))
		for _, rgb := range triples {
			c, err := rgbColor(rgb)
			if err != nil {
				return err
			}
			colors = append(colors, c)
		}
		l.colors = colors
		return nil
	}

	var rgb []int
	if err := value.Decode(&rgb); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidColor, err, "malformed color")
	}
	c, err := rgbColor(rgb)
	if err != nil {
		return err
	}
	l.colors = []color.NRGBA{c}
	return nil
}

// UnmarshalTOML accepts the same shapes as UnmarshalYAML.
func (l *ColorList) UnmarshalTOML(data any) error {
	items, ok := data.([]any)
	if !ok {
		return errors.New(errors.ErrCodeInvalidColor, "colors must be [r, g, b] or a list of [r, g, b] triples")
	}
	if len(items) == 0 {
		l.colors = nil
		return nil
	}

	if _, nested := items[0].([]any); nested {
		colors := make([]color.NRGBA, 0, len(items))
		for _, item := range items {
			triple, ok := item.([]any)
			if !ok {
				return errors.New(errors.ErrCodeInvalidColor, "color list mixes triples and scalars")
			}
			rgb, err := intComponents(triple)
			if err != nil {
				return err
			}
			c, err := rgbColor(rgb)
			if err != nil {
				return err
			}
			colors = append(colors, c)
		}
		l.colors = colors
		return nil
	}

	rgb, err := intComponents(items)
	if err != nil {
		return err
	}
	c, err := rgbColor(rgb)
	if err != nil {
		return err
	}
	l.colors = []color.NRGBA{c}
	return nil
}

// rgbColor validates one [r, g, b] triple.
func rgbColor(rgb []int) (color.NRGBA, error) {
	if len(rgb) != 3 {
		return color.NRGBA{}, errors.New(errors.ErrCodeInvalidColor, "color needs exactly 3 components, got %d", len(rgb))
	}
	for _, v := range rgb {
		if v < 0 || v > 255 {
			return color.NRGBA{}, errors.New(errors.ErrCodeInvalidColor, "color component %d out of range 0..255", v)
		}
	}
	return color.NRGBA{R: uint8(rgb[0]), G: uint8(rgb[1]), B: uint8(rgb[2]), A: 255}, nil
}

// intComponents converts decoded TOML array values into ints.
func intComponents(items []any) ([]int, error) {
	out := make([]int, 0, len(items))
	for _, item := range items {
		v, ok := item.(int64)
		if !ok {
			return nil, errors.New(errors.ErrCodeInvalidColor, "color component must be an integer, got %T", item)
		}
		out = append(out, int(v))
	}
	return out, nil
}

// PathList is a config field holding either one file path or a sequence
// of file paths.
type PathList struct {
	paths []string
}

// Cycle converts the parsed paths into a token path cycle.
func (l PathList) Cycle() token.PathCycle {
	return token.Paths(l.paths...)
}

// Len returns the number of parsed paths.
func (l PathList) Len() int {
	return len(l.paths)
}

// UnmarshalYAML accepts a single string or a list of strings.
func (l *PathList) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		var path string
		if err := value.Decode(&path); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidPath, err, "malformed path")
		}
		l.paths = []string{path}
		return nil
	case yaml.SequenceNode:
		var paths []string
		if err := value.Decode(&paths); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidPath, err, "malformed path list")
		}
		l.paths = paths
		return nil
	}
	return errors.New(errors.ErrCodeInvalidPath, "paths must be a string or a list of strings")
}

// UnmarshalTOML accepts the same shapes as UnmarshalYAML.
func (l *PathList) UnmarshalTOML(data any) error {
	switch v := data.(type) {
	case string:
		l.paths = []string{v}
		return nil
	case []any:
		paths := make([]string, 0, len(v))
		for _, item := range v {
			s, ok := item.(string)
			if !ok {
				return errors.New(errors.ErrCodeInvalidPath, "path must be a string, got %T", item)
			}
			paths = append(paths, s)
		}
		l.paths = paths
		return nil
	}
	return errors.New(errors.ErrCodeInvalidPath, "paths must be a string or a list of strings")
}
