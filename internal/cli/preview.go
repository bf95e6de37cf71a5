package cli

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/treemosaic/treemosaic/internal/tui"
	"github.com/treemosaic/treemosaic/pkg/input"
)

// previewCommand creates the preview command, which opens the interactive
// terminal treemap.
func (c *CLI) previewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "preview <items-file>",
		Short: "Explore the treemap interactively in the terminal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := input.Load(args[0])
			if err != nil {
				return err
			}
			c.Logger.Debugf("previewing %d items", len(f.Items))

			m := tui.New(f.Items, f.PrepareOptions, f.LayoutOptions)
			p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(cmd.Context()))
			if _, err := p.Run(); err != nil {
				printError("preview failed: %v", err)
				return err
			}
			return nil
		},
	}

	return cmd
}
