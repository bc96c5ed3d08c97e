package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/samogon/internal/app"
)

func (c *CLI) newCleanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clean",
		Short: "Remove downloaded bottles and the formula index snapshot",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			downloads, _ := cmd.Flags().GetBool("downloads")
			index, _ := cmd.Flags().GetBool("index")

			opts := app.CleanOptions{
				Downloads: downloads,
				Index:     index,
			}

			// Default behavior: clean everything
			if !downloads && !index {
				opts.Downloads = true
				opts.Index = true
			}

			return c.app.Clean(cmd.Context(), opts)
		},
	}

	cmd.Flags().BoolP("downloads", "d", false, "Remove downloaded bottles")
	cmd.Flags().BoolP("index", "i", false, "Remove the formula index snapshot")

	return cmd
}
