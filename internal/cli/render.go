package cli

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/matzehuels/tokenpress/pkg/config"
	"github.com/matzehuels/tokenpress/pkg/layout"
	"github.com/matzehuels/tokenpress/pkg/pipeline"
	"github.com/matzehuels/tokenpress/pkg/sink"
	"github.com/matzehuels/tokenpress/pkg/token"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output      string // output PDF path (default: config path with .pdf)
	plain       bool   // disable the live progress display
	dpi         int    // raster resolution override (0 = use config)
	maxPages    int    // page cap override (-1 = use config, 0 = unlimited)
	marksRadius int    // corner cut guide length in pixels (0 disables)
}

// renderCommand creates the render command for producing print-ready PDFs.
//
// The command reads a token config, composites every token at the configured
// resolution, packs the composites onto pages, and writes a single PDF. On a
// terminal it shows a live progress display unless --plain is set.
func (c *CLI) renderCommand() *cobra.Command {
	opts := renderOpts{maxPages: -1, marksRadius: token.DefaultMarkRadius}

	cmd := &cobra.Command{
		Use:   "render <config> [output]",
		Short: "Composite tokens and produce a print-ready PDF",
		Long: `Render composites every token defined in the config file and packs the
results onto printable pages, writing a single PDF.

Each token becomes a front/back pair joined at a fold line, so a page can be
printed single-sided, cut, and folded into double-sided pieces. The output
path defaults to the config file name with a .pdf extension.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 1 {
				opts.output = args[1]
			}
			return c.runRender(cmd, args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output PDF path (default: config name with .pdf)")
	cmd.Flags().BoolVar(&opts.plain, "plain", false, "disable the live progress display")
	cmd.Flags().IntVar(&opts.dpi, "dpi", 0, "override the raster resolution")
	cmd.Flags().IntVar(&opts.maxPages, "max-pages", opts.maxPages, "override the page cap (0 = unlimited)")
	cmd.Flags().IntVar(&opts.marksRadius, "marks-radius", opts.marksRadius, "corner cut guide length in pixels (0 disables)")

	return cmd
}

// runRender loads the config, runs the pipeline, and writes the PDF.
func (c *CLI) runRender(cmd *cobra.Command, configPath string, opts *renderOpts) error {
	ctx := cmd.Context()

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	specs := cfg.Specs()
	geom := cfg.Geometry()
	applyGeometryOverrides(&geom, opts.dpi, opts.maxPages)
	if err := geom.Validate(); err != nil {
		return err
	}

	pdf := sink.NewPDF(geom.PageWidth, geom.PageHeight)
	runner := c.newRunner(opts.marksRadius)

	var result *pipeline.Result
	if opts.plain || !isatty.IsTerminal(os.Stderr.Fd()) {
		result, err = runner.Execute(ctx, specs, geom, pdf)
	} else {
		result, err = c.executeWithProgress(ctx, runner, specs, geom, pdf)
	}
	if err != nil {
		return err
	}

	output := opts.output
	if output == "" {
		output = replaceExt(configPath, ".pdf")
	}
	if err := pdf.WriteFile(output); err != nil {
		return err
	}

	printSuccess("Rendered %d tokens across %d pages", result.Placed, result.Pages)
	if result.Truncated() {
		printWarning("dropped %d tokens: page cap of %d reached", result.Dropped, geom.MaxPages)
	}
	printFile(output)
	printDetail("arrange %s · render %s",
		result.Stats.ArrangeTime.Round(time.Millisecond),
		result.Stats.RenderTime.Round(time.Millisecond))

	return nil
}

// applyGeometryOverrides applies flag overrides onto geom. Flags left at
// their defaults (dpi 0, maxPages -1) leave geom untouched.
func applyGeometryOverrides(geom *layout.Geometry, dpi, maxPages int) {
	if dpi > 0 {
		geom.DPI = dpi
	}
	if maxPages >= 0 {
		geom.MaxPages = maxPages
	}
}

// replaceExt swaps the extension of path for ext.
func replaceExt(path, ext string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + ext
}
