package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/tokenpress/pkg/config"
	"github.com/matzehuels/tokenpress/pkg/errors"
	"github.com/matzehuels/tokenpress/pkg/sink"
	"github.com/matzehuels/tokenpress/pkg/token"
)

// previewOpts holds the command-line flags for the preview command.
type previewOpts struct {
	output      string // output pattern with a %d page placeholder
	dpi         int    // raster resolution override (0 = use config)
	marksRadius int    // corner cut guide length in pixels (0 disables)
}

// previewCommand creates the preview command for rasterizing pages to PNG.
//
// Preview shares the full pipeline with render but writes one PNG per page,
// which is the fastest way to inspect borders, fold lines, and page usage
// on screen before printing.
func (c *CLI) previewCommand() *cobra.Command {
	opts := previewOpts{marksRadius: token.DefaultMarkRadius}

	cmd := &cobra.Command{
		Use:   "preview <config>",
		Short: "Rasterize pages to PNG files for on-screen inspection",
		Long: `Preview runs the same compositing and packing as render but writes each
page as a PNG image instead of a PDF.

The output flag takes a pattern with a %d placeholder for the page number
and defaults to the config name with a -page-%d.png suffix.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runPreview(cmd, args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output pattern with a %d page placeholder")
	cmd.Flags().IntVar(&opts.dpi, "dpi", 0, "override the raster resolution")
	cmd.Flags().IntVar(&opts.marksRadius, "marks-radius", opts.marksRadius, "corner cut guide length in pixels (0 disables)")

	return cmd
}

// runPreview loads the config, runs the pipeline into a PNG sink, and writes
// one image per page.
func (c *CLI) runPreview(cmd *cobra.Command, configPath string, opts *previewOpts) error {
	ctx := cmd.Context()

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	geom := cfg.Geometry()
	applyGeometryOverrides(&geom, opts.dpi, -1)
	if err := geom.Validate(); err != nil {
		return err
	}

	pattern := opts.output
	if pattern == "" {
		pattern = replaceExt(configPath, "") + "-page-%d.png"
	}
	if !strings.Contains(pattern, "%") {
		return errors.New(errors.ErrCodeInvalidPath, "output pattern %q needs a %%d page placeholder", pattern)
	}

	png := sink.NewPNG(geom.PageWidth, geom.PageHeight, geom.DPI)
	runner := c.newRunner(opts.marksRadius)

	sp := newSpinnerWithContext(ctx, "Rendering pages...")
	sp.Start()

	result, err := runner.Execute(ctx, cfg.Specs(), geom, png)
	if err != nil {
		sp.StopWithError("Render failed")
		return err
	}

	paths, err := png.WriteFiles(pattern)
	if err != nil {
		sp.StopWithError("Write failed")
		return err
	}

	sp.StopWithSuccess(fmt.Sprintf("Previewed %d tokens across %d pages", result.Placed, result.Pages))
	if result.Truncated() {
		printWarning("dropped %d tokens: page cap of %d reached", result.Dropped, geom.MaxPages)
	}
	for _, p := range paths {
		printFile(p)
	}

	return nil
}
