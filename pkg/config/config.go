// Package config loads and validates token sheet configuration files.
//
// A configuration file has one optional page table and a required, ordered
// list of token records. All lengths in the file are inches; conversion to
// points happens when the document is turned into renderer specs and page
// geometry. YAML is the primary format, TOML is accepted for files with a
// .toml extension.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/matzehuels/tokenpress/pkg/errors"
	"github.com/matzehuels/tokenpress/pkg/layout"
	"github.com/matzehuels/tokenpress/pkg/token"
	"github.com/matzehuels/tokenpress/pkg/units"
)

// Defaults applied when optional fields are omitted.
const (
	DefaultDPI        = 400
	DefaultPageMargin = 0.25 // inches
	DefaultCopies     = 1
)

// Config is the top-level configuration document.
type Config struct {
	Page   PageConfig    `yaml:"page" toml:"page"`
	Tokens []TokenConfig `yaml:"tokens" toml:"tokens"`
}

// PageConfig describes the sheet tokens are arranged on. Zero values mean
// "use the default": letter size, 400 DPI, a quarter-inch margin and no
// page cap.
type PageConfig struct {
	DPI        int      `yaml:"dpi" toml:"dpi"`
	PageSize   PageSize `yaml:"pageSize" toml:"pageSize"`
	PageMargin *float64 `yaml:"pageMargin" toml:"pageMargin"` // inches
	MaxPages   int      `yaml:"maxPages" toml:"maxPages"`
}

// TokenConfig describes one kind of token. Width and height are the face
// dimensions in inches. BorderThickness and Copies are pointers so that an
// explicit zero can be told apart from an omitted field.
type TokenConfig struct {
	FrontImagePath       string    `yaml:"frontImagePath" toml:"frontImagePath"`
	BackImagePath        string    `yaml:"backImagePath" toml:"backImagePath"`
	Width                float64   `yaml:"width" toml:"width"`
	Height               float64   `yaml:"height" toml:"height"`
	BorderThickness      *float64  `yaml:"borderThickness" toml:"borderThickness"` // inches
	BottomMargin         float64   `yaml:"bottomMargin" toml:"bottomMargin"`       // inches
	BorderColors         ColorList `yaml:"borderColors" toml:"borderColors"`
	BackgroundColors     ColorList `yaml:"backgroundColors" toml:"backgroundColors"`
	BackgroundImagePaths PathList  `yaml:"backgroundImagePaths" toml:"backgroundImagePaths"`
	MirrorBack           bool      `yaml:"mirrorBack" toml:"mirrorBack"`
	Copies               *int      `yaml:"copies" toml:"copies"`
}

// Load reads and validates a configuration file. The format is chosen by
// extension: .toml parses as TOML, .yaml, .yml and extensionless paths as
// YAML.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "config file not found: %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "failed to read config %s", path)
	}
	return Parse(data, strings.ToLower(filepath.Ext(path)))
}

// Parse decodes and validates a configuration document. ext selects the
// format as in Load.
func Parse(data []byte, ext string) (*Config, error) {
	var cfg Config
	switch ext {
	case ".toml":
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "malformed TOML config")
		}
	case ".yaml", ".yml", "":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "malformed YAML config")
		}
	default:
		return nil, errors.New(errors.ErrCodeUnsupported, "unsupported config format %q (use .yaml or .toml)", ext)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the document by converting it into page geometry and
// renderer specs and validating those. Token errors carry the 1-based
// position of the offending record.
func (c *Config) Validate() error {
	if len(c.Tokens) == 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "config defines no tokens")
	}
	if err := c.Geometry().Validate(); err != nil {
		return err
	}
	for i := range c.Tokens {
		if err := c.Tokens[i].Spec().Validate(); err != nil {
			return fmt.Errorf("token %d: %w", i+1, err)
		}
	}
	return nil
}

// Geometry converts the page table into layout geometry in points.
func (c *Config) Geometry() layout.Geometry {
	geom := layout.Geometry{
		PageWidth:  Letter.Width,
		PageHeight: Letter.Height,
		Margin:     units.FromInches(DefaultPageMargin),
		DPI:        DefaultDPI,
		MaxPages:   c.Page.MaxPages,
	}
	if c.Page.DPI != 0 {
		geom.DPI = c.Page.DPI
	}
	if !c.Page.PageSize.IsZero() {
		geom.PageWidth = c.Page.PageSize.Width
		geom.PageHeight = c.Page.PageSize.Height
	}
	if c.Page.PageMargin != nil {
		geom.Margin = units.FromInches(*c.Page.PageMargin)
	}
	return geom
}

// Specs converts the token records into renderer specs in points, in file
// order.
func (c *Config) Specs() []*token.Spec {
	specs := make([]*token.Spec, 0, len(c.Tokens))
	for i := range c.Tokens {
		specs = append(specs, c.Tokens[i].Spec())
	}
	return specs
}

// Spec converts one token record into a renderer spec in points.
func (t *TokenConfig) Spec() *token.Spec {
	return &token.Spec{
		FrontImagePath:       t.FrontImagePath,
		BackImagePath:        t.BackImagePath,
		Width:                units.FromInches(t.Width),
		Height:               units.FromInches(t.Height),
		BorderThickness:      t.borderThickness(),
		BottomMargin:         units.FromInches(t.BottomMargin),
		BorderColors:         t.BorderColors.Cycle(),
		BackgroundColors:     t.BackgroundColors.Cycle(),
		BackgroundImagePaths: t.BackgroundImagePaths.Cycle(),
		MirrorBack:           t.MirrorBack,
		Copies:               t.copies(),
	}
}

func (t *TokenConfig) borderThickness() float64 {
	if t.BorderThickness == nil {
		return token.DefaultBorderThickness
	}
	return units.FromInches(*t.BorderThickness)
}

func (t *TokenConfig) copies() int {
	if t.Copies == nil {
		return DefaultCopies
	}
	return *t.Copies
}
