package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.trai.ch/samogon/internal/app"
)

func (c *CLI) newInstallCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "install [formulae...]",
		Short: "Fetch, verify and stage bottles for formulae and their dependencies",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				// Display command usage help without returning an error
				_ = cmd.Help()
				return nil
			}
			yes, _ := cmd.Flags().GetBool("yes")
			jobs, _ := cmd.Flags().GetInt("jobs")

			outcomes, err := c.app.Install(cmd.Context(), args, app.InstallOptions{
				Yes:  yes,
				Jobs: jobs,
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, outcome := range outcomes {
				_, _ = fmt.Fprintf(out, "%s staged in %s\n", outcome.Name, outcome.StagingDir)
			}
			return nil
		},
	}
	cmd.Flags().BoolP("yes", "y", false, "Do not ask for confirmation")
	cmd.Flags().IntP("jobs", "j", 0, "Number of concurrent fetches (default from configuration)")
	return cmd
}
