package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/treemosaic/treemosaic/pkg/input"
	"github.com/treemosaic/treemosaic/pkg/pipeline"
)

// renderFlags holds the command-line flags for the render command.
type renderFlags struct {
	output     string  // output file path (or base path for multiple formats)
	formats    string  // comma-separated output formats: "svg", "json"
	width      float64 // container width
	height     float64 // container height
	limit      int     // keep only the first n ranked items
	inverse    bool    // give small values large rectangles
	ascending  bool    // reverse the layout direction
	equalSize  bool    // force the uniform grid layout
	sortBy     string  // tile order: value, entity_id, label, default
	noCompress bool    // disable range compression
	labels     bool    // draw entity labels in the SVG
	gradients  bool    // fill SVG tiles with gradients
}

// renderCommand creates the render command for generating visualizations
// from an item file.
func (c *CLI) renderCommand() *cobra.Command {
	var fl renderFlags

	cmd := &cobra.Command{
		Use:   "render <items-file>",
		Short: "Render an item file to SVG or JSON",
		Long: `Render an item file to SVG or JSON.

The item file may be TOML or JSON and can carry its own defaults; flags
override them.

Examples:
  treemosaic render energy.toml
  treemosaic render energy.toml -f svg,json -o out/energy
  treemosaic render energy.json --inverse --limit 12 --labels`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runRender(cmd, args[0], &fl)
		},
	}

	cmd.Flags().StringVarP(&fl.output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVarP(&fl.formats, "format", "f", "", "output format(s): svg (default), json (comma-separated)")
	cmd.Flags().Float64Var(&fl.width, "width", pipeline.DefaultWidth, "container width")
	cmd.Flags().Float64Var(&fl.height, "height", pipeline.DefaultHeight, "container height")
	cmd.Flags().IntVar(&fl.limit, "limit", 0, "keep only the first n ranked items")
	cmd.Flags().BoolVar(&fl.inverse, "inverse", false, "give small values large rectangles")
	cmd.Flags().BoolVar(&fl.ascending, "ascending", false, "reverse the layout direction")
	cmd.Flags().BoolVar(&fl.equalSize, "equal-size", false, "force the uniform grid layout")
	cmd.Flags().StringVar(&fl.sortBy, "sort-by", "", "tile order: value, entity_id, label, default")
	cmd.Flags().BoolVar(&fl.noCompress, "no-compress", false, "disable range compression")
	cmd.Flags().BoolVar(&fl.labels, "labels", false, "draw entity labels in the SVG")
	cmd.Flags().BoolVar(&fl.gradients, "gradients", false, "fill SVG tiles with gradients")

	return cmd
}

// runRender loads the item file, applies flag overrides, runs the pipeline,
// and writes one artifact per requested format.
func (c *CLI) runRender(cmd *cobra.Command, inputPath string, fl *renderFlags) error {
	f, err := input.Load(inputPath)
	if err != nil {
		return err
	}
	c.Logger.Debugf("loaded %d items from %s", len(f.Items), inputPath)

	opts := fileOptions(f)
	opts.Logger = c.Logger
	applyRenderFlags(cmd, &opts, fl)

	result, err := c.newRunner().Execute(cmd.Context(), f.Items, opts)
	if err != nil {
		return err
	}

	base := basePath(fl.output, inputPath)
	for _, format := range opts.Formats {
		path := fl.output
		if path == "" || len(opts.Formats) > 1 {
			path = base + "." + format
		}

		out, err := openOutput(path)
		if err != nil {
			return err
		}
		if _, err := out.Write(result.Artifacts[format]); err != nil {
			out.Close()
			return err
		}
		if err := out.Close(); err != nil {
			return err
		}
		printFile(path)
	}

	printSuccess("rendered %d tiles in %d rows", len(result.Rects), result.RowCount)
	return nil
}

// applyRenderFlags overrides file-level defaults with explicitly set flags.
func applyRenderFlags(cmd *cobra.Command, opts *pipeline.Options, fl *renderFlags) {
	if cmd.Flags().Changed("width") {
		opts.Width = fl.width
	}
	if cmd.Flags().Changed("height") {
		opts.Height = fl.height
	}
	if cmd.Flags().Changed("limit") {
		opts.Limit = fl.limit
	}
	if cmd.Flags().Changed("inverse") {
		opts.Inverse = fl.inverse
	}
	if cmd.Flags().Changed("ascending") {
		opts.Ascending = fl.ascending
	}
	if cmd.Flags().Changed("equal-size") {
		opts.EqualSize = fl.equalSize
	}
	if cmd.Flags().Changed("sort-by") {
		opts.SortBy = fl.sortBy
	}
	if cmd.Flags().Changed("no-compress") {
		compress := !fl.noCompress
		opts.CompressRange = &compress
	}
	opts.Formats = parseFormats(fl.formats)
	opts.Labels = fl.labels
	opts.Gradients = fl.gradients
}

// basePath derives the base output path from the output and input file
// paths. If output is empty, it strips the extension from input. If output
// has a format extension (.svg, .json), it strips that extension. This is
// used when generating multiple files (e.g., energy.svg, energy.json).
func basePath(output, input string) string {
	if output == "" {
		return strings.TrimSuffix(input, filepath.Ext(input))
	}
	ext := filepath.Ext(output)
	if pipeline.ValidFormats[strings.TrimPrefix(ext, ".")] {
		return strings.TrimSuffix(output, ext)
	}
	return output
}

// openOutput returns a WriteCloser for the given path.
// If path is empty, it returns os.Stdout wrapped in nopCloser.
// Otherwise, it creates the file at path, overwriting if it exists.
func openOutput(path string) (io.WriteCloser, error) {
	if path == "" {
		return nopCloser{os.Stdout}, nil
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create output directory: %w", err)
		}
	}
	return os.Create(path)
}

// nopCloser wraps a writer with a no-op Close, used for stdout.
type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }
