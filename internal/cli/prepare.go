package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/treemosaic/treemosaic/pkg/input"
	"github.com/treemosaic/treemosaic/pkg/treemap"
)

// prepareCommand creates the prepare command. It runs only the preparation
// stage and prints the ranked items, which is useful for checking how
// limits, inversion, and clamping reshape an item list before rendering.
func (c *CLI) prepareCommand() *cobra.Command {
	var (
		limit            int
		inverse          bool
		ascending        bool
		sizeMin, sizeMax float64
	)

	cmd := &cobra.Command{
		Use:   "prepare <items-file>",
		Short: "Rank and clamp items from an item file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := input.Load(args[0])
			if err != nil {
				return err
			}

			opts := f.PrepareOptions
			if cmd.Flags().Changed("limit") {
				opts.Limit = limit
			}
			if cmd.Flags().Changed("inverse") {
				opts.Inverse = inverse
			}
			if cmd.Flags().Changed("ascending") {
				opts.Ascending = ascending
			}
			if cmd.Flags().Changed("size-min") {
				opts.SizeMin = sizeMin
			}
			if cmd.Flags().Changed("size-max") {
				opts.SizeMax = sizeMax
			}

			ranked, colorMin, colorMax := treemap.Prepare(f.Items, opts)
			c.Logger.Debugf("prepared %d of %d items", len(ranked), len(f.Items))

			printRanked(ranked)
			printDetail("color range: %.2f .. %.2f", colorMin, colorMax)
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 0, "keep only the first n ranked items")
	cmd.Flags().BoolVar(&inverse, "inverse", false, "give small values large rectangles")
	cmd.Flags().BoolVar(&ascending, "ascending", false, "rank smallest first")
	cmd.Flags().Float64Var(&sizeMin, "size-min", 0, "floor for size magnitudes")
	cmd.Flags().Float64Var(&sizeMax, "size-max", 0, "cap for size magnitudes")

	return cmd
}

// printRanked prints the ranked items as a table.
func printRanked(ranked []treemap.Item) {
	rows := make([][]string, 0, len(ranked))
	for i, it := range ranked {
		label := it.Label
		if label == "" {
			label = "—"
		}
		rows = append(rows, []string{
			fmt.Sprintf("%d", i+1),
			it.EntityID,
			label,
			signedValue(it.Value),
			fmt.Sprintf("%.2f", it.SizeValue),
			signedValue(it.ColorValue),
		})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("#", "Entity", "Label", "Value", "Size", "Color").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return styleHeader
			}
			if col == 0 {
				return StyleDim
			}
			return StyleValue
		})

	fmt.Println(t.Render())
}
