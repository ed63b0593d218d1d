package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/tokenpress/pkg/config"
	"github.com/matzehuels/tokenpress/pkg/errors"
	"github.com/matzehuels/tokenpress/pkg/token"
	"github.com/matzehuels/tokenpress/pkg/units"
)

// validateCommand creates the validate command for checking configs.
func (c *CLI) validateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <config>",
		Short: "Check a config file and its image assets",
		Long: `Validate parses the config file, loads every referenced image asset, and
checks that each token fits within the printable page area. It reports
every problem it finds and exits non-zero if any turn up.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runValidate(args[0])
		},
	}

	return cmd
}

// runValidate checks the config and reports all problems found.
func (c *CLI) runValidate(configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	specs := cfg.Specs()
	geom := cfg.Geometry()
	loader := token.NewLoader()

	problems := 0
	checked := map[string]bool{}

	for _, spec := range specs {
		if !geom.Fits(spec) {
			printError("token %s: composite %.2f x %.2f in exceeds printable area %.2f x %.2f in",
				spec.Label(),
				units.ToInches(spec.ImageWidth()), units.ToInches(spec.ImageHeight()),
				units.ToInches(geom.RenderableWidth()), units.ToInches(geom.RenderableHeight()))
			problems++
		}

		for _, path := range spec.AssetPaths() {
			if checked[path] {
				continue
			}
			checked[path] = true
			if _, err := loader.Load(path); err != nil {
				printError("asset %s: %s", path, errors.UserMessage(err))
				problems++
			}
		}
	}

	if problems > 0 {
		printNewline()
		return errors.New(errors.ErrCodeInvalidConfig, "%d problem(s) found in %s", problems, configPath)
	}

	printSuccess("Config valid: %d token kinds, %d assets checked", len(specs), len(checked))
	printNextStep("Render", appName+" render "+configPath)
	return nil
}
