// Package cli implements the tokenpress command-line interface.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/tokenpress/pkg/buildinfo"
	"github.com/matzehuels/tokenpress/pkg/pipeline"
	"github.com/matzehuels/tokenpress/pkg/token"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for display and suggested commands.
const appName = "tokenpress"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Tokenpress turns token art into print-and-fold pages",
		Long:         `Tokenpress composites double-sided paper game tokens from front and back artwork and packs them onto printable pages, producing a fold-ready PDF or PNG previews.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())

	// Register all subcommands
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.previewCommand())
	root.AddCommand(c.planCommand())
	root.AddCommand(c.validateCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner whose renderer draws corner cut guides
// with the given radius.
func (c *CLI) newRunner(markRadius int) *pipeline.Runner {
	renderer := token.NewRenderer()
	renderer.MarkRadius = markRadius
	return pipeline.NewRunner(renderer, c.Logger)
}
