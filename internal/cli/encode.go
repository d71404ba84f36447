package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/andreiashu/pac"
	"github.com/andreiashu/pac/internal/logger"
)

type encodeOutput struct {
	Code      string  `json:"code"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Precision int     `json:"precision"`
}

func newEncodeCmd(a *app) *cobra.Command {
	var (
		lat, lon  float64
		precision int
		floor     int
		apartment string
	)

	cmd := &cobra.Command{
		Use:   "encode --lat <latitude> --lon <longitude>",
		Short: "Encode a coordinate into a PAC code",
		Long: `Encodes a latitude/longitude pair into a PAC code.
Precision 8 (the default) resolves to roughly 19 m, precision 9 to a few metres.
A floor/apartment suffix is added only when both --floor and --apartment are given.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !cmd.Flags().Changed("precision") {
				precision = a.conf.Precision
			}
			opts := []pac.Option{pac.WithPrecision(precision)}
			if cmd.Flags().Changed("floor") {
				opts = append(opts, pac.WithFloor(floor))
			}
			if apartment != "" {
				opts = append(opts, pac.WithApartment(apartment))
			}

			code, err := pac.Encode(lat, lon, opts...)
			if err != nil {
				a.log.Debug("encode rejected", slog.Float64("lat", lat), slog.Float64("lon", lon),
					logger.Err(err))
				return fmt.Errorf("failed to encode coordinate: %w", err)
			}
			a.log.Debug("encoded coordinate", slog.String("code", code), slog.Int("precision", precision),
				slog.String("cell", describeCell(precision, lat)))

			if a.jsonOut {
				return outputJSON(cmd, encodeOutput{Code: code, Latitude: lat, Longitude: lon, Precision: precision})
			}
			fmt.Fprintln(cmd.OutOrStdout(), code)
			return nil
		},
	}

	cmd.Flags().Float64Var(&lat, "lat", 0, "latitude in degrees, -90 to 90")
	cmd.Flags().Float64Var(&lon, "lon", 0, "longitude in degrees, -180 to 180")
	cmd.Flags().IntVarP(&precision, "precision", "p", pac.DefaultPrecision,
		fmt.Sprintf("geohash length, %d to %d", pac.MinPrecision, pac.MaxPrecision))
	cmd.Flags().IntVar(&floor, "floor", 0, "floor number for the unit suffix")
	cmd.Flags().StringVar(&apartment, "apartment", "", "apartment identifier for the unit suffix")
	_ = cmd.MarkFlagRequired("lat")
	_ = cmd.MarkFlagRequired("lon")
	return cmd
}
