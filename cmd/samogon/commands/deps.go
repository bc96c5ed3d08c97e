package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *CLI) newDepsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "deps [formulae...]",
		Short: "Print formulae and their dependencies in install order",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				_ = cmd.Help()
				return nil
			}

			plan, err := c.app.Deps(cmd.Context(), args)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for i := range plan {
				_, _ = fmt.Fprintf(out, "%s %s\n", plan[i].Name, plan[i].VersionString())
			}
			return nil
		},
	}
}
