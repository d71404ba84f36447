package cli

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/andreiashu/pac"
)

// decodeOutput is the --json form of a decode, with a map link for valid codes.
type decodeOutput struct {
	pac.DecodeResult
	MapsURL string `json:"maps_url,omitempty"`
}

func newDecodeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "decode <code>",
		Short: "Decode a PAC code into a coordinate",
		Long: `Decodes a PAC code into the center of the cell it names.
Spacing, hyphens and case are ignored, so "stt3 ewm9 u" and "STT3-EWM9-U" are the same code.`,
		Example: `  pac decode STT3-EWM9-U
  pac decode "stt3 ewm9 u / f3-a02"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := strings.Join(args, " ")
			res := pac.Decode(input)
			a.log.Debug("decoded code", slog.String("input", input), slog.Bool("valid", res.Valid),
				slog.String("failure", res.Failure.String()))

			if a.jsonOut {
				out := decodeOutput{DecodeResult: res}
				if res.Valid {
					out.MapsURL = mapsURL(res.Latitude, res.Longitude)
				}
				if err := outputJSON(cmd, out); err != nil {
					return err
				}
			} else {
				renderDecode(cmd, input, res)
			}
			if !res.Valid {
				return fmt.Errorf("%w: %s", ErrInvalidInput, res.Reason)
			}
			return nil
		},
	}
}

func renderDecode(cmd *cobra.Command, input string, res pac.DecodeResult) {
	if !res.Valid {
		printFailure(cmd, res.Reason)
		if res.Failure.Corrupted() {
			printField(cmd, "Hint:", "ask the sender to share the code again")
		}
		return
	}

	printOK(cmd, pac.Normalize(input))
	printField(cmd, "Latitude:", strconv.FormatFloat(res.Latitude, 'f', 6, 64))
	printField(cmd, "Longitude:", strconv.FormatFloat(res.Longitude, 'f', 6, 64))
	printField(cmd, "Precision:", fmt.Sprintf("%d (cell %s)", res.Precision, describeCell(res.Precision, res.Latitude)))
	printField(cmd, "Map:", mapsURL(res.Latitude, res.Longitude))
	switch {
	case res.HasUnit():
		printField(cmd, "Floor:", strconv.Itoa(res.Unit.Floor))
		printField(cmd, "Apartment:", res.Unit.Apartment)
	case res.Suffix != "":
		printField(cmd, "Ignored:", res.Suffix)
	}
}
