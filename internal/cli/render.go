package cli

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/andreiashu/pac"
)

// metersPerDegree is the length of one degree of arc on the mean Earth sphere.
const metersPerDegree = 6371008.8 * math.Pi / 180

var (
	okStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true)
	failStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
	labelStyle = lipgloss.NewStyle().Faint(true).Width(11)
)

func outputJSON(cmd *cobra.Command, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal result: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}

func printOK(cmd *cobra.Command, text string) {
	fmt.Fprintln(cmd.OutOrStdout(), okStyle.Render("✓")+" "+text)
}

func printFailure(cmd *cobra.Command, reason string) {
	fmt.Fprintln(cmd.OutOrStdout(), failStyle.Render("✗")+" "+reason)
}

func printField(cmd *cobra.Command, label, value string) {
	fmt.Fprintln(cmd.OutOrStdout(), "  "+labelStyle.Render(label)+value)
}

// meters renders a length with an SI prefix rounded to one decimal,
// e.g. "19.1 m" or "343.6 km".
func meters(m float64) string {
	value, prefix := humanize.ComputeSI(m)
	value = math.Round(value*10) / 10
	return humanize.FtoaWithDigits(value, 1) + " " + prefix + "m"
}

// mapsURL links to the coordinate on Google Maps.
func mapsURL(lat, lon float64) string {
	return "https://www.google.com/maps?q=" + strconv.FormatFloat(lat, 'f', -1, 64) + "," +
		strconv.FormatFloat(lon, 'f', -1, 64)
}

// cellExtent returns the north-south and east-west size in metres of a cell at
// the given precision, centered on latitude lat.
func cellExtent(precision int, lat float64) (float64, float64, error) {
	latSpan, lonSpan, err := pac.CellSize(precision)
	if err != nil {
		return 0, 0, err
	}
	northSouth := latSpan * metersPerDegree
	eastWest := lonSpan * metersPerDegree * math.Cos(lat*math.Pi/180)
	return northSouth, eastWest, nil
}

func describeCell(precision int, lat float64) string {
	ns, ew, err := cellExtent(precision, lat)
	if err != nil {
		return "unknown"
	}
	return meters(ns) + " × " + meters(ew)
}
