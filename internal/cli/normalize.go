package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/andreiashu/pac"
)

type normalizeOutput struct {
	Input      string `json:"input"`
	Normalized string `json:"normalized"`
}

func newNormalizeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "normalize <code>",
		Short: "Reformat a PAC code into canonical form",
		Long: `Reformats a PAC code into canonical, hyphen-grouped form.
The checksum is not verified; use validate for that.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := strings.Join(args, " ")
			normalized := pac.Normalize(input)
			if a.jsonOut {
				return outputJSON(cmd, normalizeOutput{Input: input, Normalized: normalized})
			}
			fmt.Fprintln(cmd.OutOrStdout(), normalized)
			return nil
		},
	}
}
