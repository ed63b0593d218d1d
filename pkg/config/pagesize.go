package config

import (
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/matzehuels/tokenpress/pkg/errors"
)

// PageSize is a config field holding page dimensions in points. It
// accepts a named paper size ("letter", "a4", ...) or an explicit
// [width, height] pair.
type PageSize struct {
	Width  float64
	Height float64
}

// Named paper sizes in points.
var pageSizes = map[string]PageSize{
	"letter":  {Width: 612, Height: 792},
	"legal":   {Width: 612, Height: 1008},
	"tabloid": {Width: 792, Height: 1224},
	"a3":      {Width: 841.89, Height: 1190.55},
	"a4":      {Width: 595.28, Height: 841.89},
	"a5":      {Width: 419.53, Height: 595.28},
}

// Letter is the page size used when none is configured.
var Letter = pageSizes["letter"]

// IsZero reports whether the size was left unset.
func (p PageSize) IsZero() bool {
	return p.Width == 0 && p.Height == 0
}

// UnmarshalYAML accepts a size name or a [width, height] pair.
func (p *PageSize) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		var name string
		if err := value.Decode(&name); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidPageSize, err, "malformed page size")
		}
		return p.setNamed(name)
	case yaml.SequenceNode:
		var dims []float64
		if err := value.Decode(&dims); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidPageSize, err, "malformed page size")
		}
		return p.setDims(dims)
	}
	return errors.New(errors.ErrCodeInvalidPageSize, "page size must be a name or [width, height] in points")
}

// UnmarshalTOML accepts the same shapes as UnmarshalYAML.
func (p *PageSize) UnmarshalTOML(data any) error {
	switch v := data.(type) {
	case string:
		return p.setNamed(v)
	case []any:
		dims := make([]float64, 0, len(v))
		for _, item := range v {
			switch n := item.(type) {
			case int64:
				dims = append(dims, float64(n))
			case float64:
				dims = append(dims, n)
			default:
				return errors.New(errors.ErrCodeInvalidPageSize, "page dimension must be a number, got %T", item)
			}
		}
		return p.setDims(dims)
	}
	return errors.New(errors.ErrCodeInvalidPageSize, "page size must be a name or [width, height] in points")
}

func (p *PageSize) setNamed(name string) error {
	size, ok := pageSizes[strings.ToLower(name)]
	if !ok {
		names := make([]string, 0, len(pageSizes))
		for n := range pageSizes {
			names = append(names, n)
		}
		sort.Strings(names)
		return errors.New(errors.ErrCodeInvalidPageSize, "unknown page size %q (known sizes: %s)", name, strings.Join(names, ", "))
	}
	*p = size
	return nil
}

func (p *PageSize) setDims(dims []float64) error {
	if len(dims) != 2 {
		return errors.New(errors.ErrCodeInvalidPageSize, "page size needs exactly [width, height], got %d values", len(dims))
	}
	if dims[0] <= 0 || dims[1] <= 0 {
		return errors.New(errors.ErrCodeInvalidPageSize, "page dimensions must be positive, got [%v, %v]", dims[0], dims[1])
	}
	p.Width, p.Height = dims[0], dims[1]
	return nil
}
