// Package cli implements the treemosaic command-line interface.
//
// This package provides commands for preparing weighted item lists, laying
// them out as squarified treemaps, rendering them to SVG or JSON, and
// previewing them in the terminal. The CLI is built using cobra and
// supports verbose logging via the charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - prepare: Rank and clamp items from an item file
//   - layout: Compute tile geometry and print it
//   - render: Generate SVG or JSON visualizations
//   - preview: Explore the treemap interactively in the terminal
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging.
package cli

import (
	"io"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/treemosaic/treemosaic/pkg/buildinfo"
	"github.com/treemosaic/treemosaic/pkg/input"
	"github.com/treemosaic/treemosaic/pkg/pipeline"
)

// appName is the application name used for display.
const appName = "treemosaic"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: log.NewWithOptions(w, log.Options{
			ReportTimestamp: true,
			TimeFormat:      "15:04:05.00",
			Level:           level,
		}),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Treemosaic lays out weighted items as squarified treemaps",
		Long:         `Treemosaic is a CLI tool for turning weighted item lists into treemap visualizations, where each item's rectangle area is proportional to its magnitude.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())

	// Register all subcommands
	root.AddCommand(c.prepareCommand())
	root.AddCommand(c.layoutCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.previewCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// newRunner creates a pipeline runner for CLI use.
func (c *CLI) newRunner() *pipeline.Runner {
	return pipeline.NewRunner(c.Logger)
}

// fileOptions converts a loaded item file into pipeline options. Flag
// overrides are applied on top by the individual commands.
func fileOptions(f *input.File) pipeline.Options {
	compress := f.LayoutOptions.CompressRange
	return pipeline.Options{
		Inverse:       f.PrepareOptions.Inverse,
		Ascending:     f.PrepareOptions.Ascending,
		Limit:         f.PrepareOptions.Limit,
		SizeMin:       f.PrepareOptions.SizeMin,
		SizeMax:       f.PrepareOptions.SizeMax,
		Width:         f.Width,
		Height:        f.Height,
		SortBy:        string(f.LayoutOptions.SortBy),
		CompressRange: &compress,
		EqualSize:     f.LayoutOptions.EqualSize,
	}
}

// parseFormats parses a comma-separated format string into a slice.
func parseFormats(s string) []string {
	if s == "" {
		return []string{pipeline.FormatSVG}
	}
	return strings.Split(s, ",")
}
