package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/treemosaic/treemosaic/pkg/input"
	"github.com/treemosaic/treemosaic/pkg/pipeline"
	"github.com/treemosaic/treemosaic/pkg/treemap"
)

// layoutCommand creates the layout command. It runs preparation and layout
// but no renderer, printing the computed tile geometry.
func (c *CLI) layoutCommand() *cobra.Command {
	var (
		width, height float64
		equalSize     bool
		sortBy        string
	)

	cmd := &cobra.Command{
		Use:   "layout <items-file>",
		Short: "Compute tile geometry and print it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := input.Load(args[0])
			if err != nil {
				return err
			}

			opts := fileOptions(f)
			opts.Logger = c.Logger
			if cmd.Flags().Changed("width") {
				opts.Width = width
			}
			if cmd.Flags().Changed("height") {
				opts.Height = height
			}
			if cmd.Flags().Changed("equal-size") {
				opts.EqualSize = equalSize
			}
			if cmd.Flags().Changed("sort-by") {
				opts.SortBy = sortBy
			}
			if err := opts.ValidateAndSetDefaults(); err != nil {
				return err
			}

			ranked, _, _ := treemap.Prepare(f.Items, opts.PrepareOptions())
			rects, rowCount := treemap.Layout(ranked, opts.Width, opts.Height, opts.LayoutOptions())
			c.Logger.Debugf("laid out %d tiles in %d rows", len(rects), rowCount)

			printTiles(rects)
			printDetail("%d tiles in %d rows, %gx%g", len(rects), rowCount, opts.Width, opts.Height)
			return nil
		},
	}

	cmd.Flags().Float64Var(&width, "width", pipeline.DefaultWidth, "container width")
	cmd.Flags().Float64Var(&height, "height", pipeline.DefaultHeight, "container height")
	cmd.Flags().BoolVar(&equalSize, "equal-size", false, "force the uniform grid layout")
	cmd.Flags().StringVar(&sortBy, "sort-by", "", "tile order: value, entity_id, label, default")

	return cmd
}

// printTiles prints the computed rectangles as a table.
func printTiles(rects []treemap.Rect) {
	rows := make([][]string, 0, len(rects))
	for _, r := range rects {
		rows = append(rows, []string{
			r.EntityID,
			fmt.Sprintf("%.1f, %.1f", r.X, r.Y),
			fmt.Sprintf("%.1f × %.1f", r.Width, r.Height),
			fmt.Sprintf("%.0f", r.Area()),
			signedValue(r.Value),
		})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Entity", "Position", "Size", "Area", "Value").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return styleHeader
			}
			if col == 3 {
				return StyleNumber
			}
			return StyleValue
		})

	fmt.Println(t.Render())
}
