package cli

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/andreiashu/pac"
)

type distanceOutput struct {
	From   string  `json:"from"`
	To     string  `json:"to"`
	Meters float64 `json:"meters"`
}

type failureOutput struct {
	Valid  bool   `json:"valid"`
	Reason string `json:"reason"`
}

func newDistanceCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "distance <code> <code>",
		Short:   "Great-circle distance between two PAC codes",
		Example: `  pac distance STT3-EWM9-U "GCPV-J0DU-W / F1-A4"`,
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			from, to := pac.Decode(args[0]), pac.Decode(args[1])
			d, err := pac.Distance(from, to)
			if err != nil {
				if !errors.Is(err, pac.ErrInvalidCode) {
					return err
				}
				if a.jsonOut {
					if jsonErr := outputJSON(cmd, failureOutput{Valid: false, Reason: err.Error()}); jsonErr != nil {
						return jsonErr
					}
				} else {
					printFailure(cmd, err.Error())
				}
				return fmt.Errorf("%w: %w", ErrInvalidInput, err)
			}
			a.log.Debug("measured distance", slog.String("from", args[0]), slog.String("to", args[1]),
				slog.Float64("meters", d))

			if a.jsonOut {
				return outputJSON(cmd, distanceOutput{
					From:   pac.Normalize(args[0]),
					To:     pac.Normalize(args[1]),
					Meters: d,
				})
			}
			fmt.Fprintln(cmd.OutOrStdout(), meters(d))
			return nil
		},
	}
}
