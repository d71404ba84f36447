package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newVersionCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if a.jsonOut {
				return outputJSON(cmd, a.build)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "pac %s (commit %s, built %s)\n", a.build.Version, a.build.Commit,
				a.build.Date)
			return nil
		},
	}
}
