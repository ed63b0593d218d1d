// Package cli implements the tokenpress command-line interface.
//
// This package provides commands for rendering token sheets from config
// files, previewing pages as PNG images, and inspecting page layouts before
// committing to paper. The CLI is built using cobra and supports verbose
// logging via the charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - render: Composite tokens and produce a print-ready PDF
//   - preview: Rasterize pages to PNG files for on-screen inspection
//   - plan: Arrange tokens and report page usage without rendering
//   - validate: Check a config file and its image assets
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. The logger
// lives on the CLI struct and is shared by every command.
//
// # Example
//
//	import "github.com/matzehuels/tokenpress/internal/cli"
//
//	func main() {
//	    c := cli.New(os.Stderr, cli.LogInfo)
//	    if err := c.RootCommand().Execute(); err != nil {
//	        os.Exit(1)
//	    }
//	}
package cli

import (
	"io"

	"github.com/charmbracelet/log"
)

// newLogger creates a new logger with timestamp formatting.
// The logger writes to w and filters messages at the specified level.
// Timestamps are formatted as "HH:MM:SS.ms" (e.g., "14:32:01.45").
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}
