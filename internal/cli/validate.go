package cli

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/andreiashu/pac"
)

func newValidateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "validate <code>",
		Short: "Check a PAC code without decoding it",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := strings.Join(args, " ")
			res := pac.Validate(input)
			a.log.Debug("validated code", slog.String("input", input), slog.Bool("valid", res.Valid))

			switch {
			case a.jsonOut:
				if err := outputJSON(cmd, res); err != nil {
					return err
				}
			case res.Valid:
				printOK(cmd, fmt.Sprintf("%s is valid (precision %d)", pac.Normalize(input), res.Precision))
			default:
				printFailure(cmd, res.Reason)
			}
			if !res.Valid {
				return fmt.Errorf("%w: %s", ErrInvalidInput, res.Reason)
			}
			return nil
		},
	}
}
