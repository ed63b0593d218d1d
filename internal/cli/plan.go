package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/tokenpress/pkg/config"
	"github.com/matzehuels/tokenpress/pkg/pipeline"
	"github.com/matzehuels/tokenpress/pkg/units"
)

// planCommand creates the plan command for inspecting page layouts.
func (c *CLI) planCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plan <config>",
		Short: "Arrange tokens and report page usage without rendering",
		Long: `Plan packs every token instance onto pages exactly as render would, but
skips compositing and reports how the pages fill up instead. Use it to
check page counts and spot truncation before a full render.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runPlan(cmd, args[0])
		},
	}

	return cmd
}

// runPlan arranges the config's tokens and prints a page usage summary.
func (c *CLI) runPlan(cmd *cobra.Command, configPath string) error {
	ctx := cmd.Context()

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	geom := cfg.Geometry()

	// Arranging never composites, so the runner needs no renderer.
	runner := pipeline.NewRunner(nil, c.Logger)

	sp := newSpinnerWithContext(ctx, "Arranging tokens...")
	sp.Start()

	arr, err := runner.Arrange(ctx, cfg.Specs(), geom)
	if err != nil {
		sp.StopWithError("Arrangement failed")
		return err
	}

	sp.StopWithSuccess(fmt.Sprintf("Planned %d tokens across %d pages", arr.PlacementCount(), len(arr.Pages)))
	if arr.Truncated() {
		printWarning("dropped %d tokens: page cap of %d reached", arr.Dropped, geom.MaxPages)
	}

	printNewline()
	printKeyValue("page", fmt.Sprintf("%.0f x %.0f pt", geom.PageWidth, geom.PageHeight))
	printKeyValue("margin", fmt.Sprintf("%.2f in", units.ToInches(geom.Margin)))
	printKeyValue("dpi", fmt.Sprintf("%d", geom.DPI))

	printNewline()
	for i, page := range arr.Pages {
		printDetail("page %d: %d tokens", i+1, len(page.Placements))
	}

	printNewline()
	printNextStep("Render", appName+" render "+configPath)

	return nil
}
