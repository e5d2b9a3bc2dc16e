package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var nearCount int

var nearCmd = &cobra.Command{
	Use:   "near LAT LON",
	Short: "Find the catalog cities closest to a coordinate",
	Example: `  alltz near 48.85 2.35
  alltz near -- -33.87 151.21`,
	Args: cobra.ExactArgs(2),
	RunE: runNear,
}

func init() {
	nearCmd.Flags().IntVarP(&nearCount, "count", "n", 5, "number of cities to show")
	rootCmd.AddCommand(nearCmd)
}

func runNear(cmd *cobra.Command, args []string) error {
	lat, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return fmt.Errorf("invalid latitude %q: %w", args[0], err)
	}
	lon, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return fmt.Errorf("invalid longitude %q: %w", args[1], err)
	}
	if lat < -90 || lat > 90 || lon < -180 || lon > 180 {
		return fmt.Errorf("coordinate out of range: %g, %g", lat, lon)
	}

	cat, err := defaultCatalog()
	if err != nil {
		return err
	}

	neighbors := cat.Nearest(lat, lon, nearCount)
	cliLogger(cmd).Debug("nearest cities", "lat", lat, "lon", lon, "found", len(neighbors))

	out := cmd.OutOrStdout()
	tbl := listTable(nameStyle, valueStyle, dimStyle)
	for _, n := range neighbors {
		tbl.Row(cat.Label(n.City), fmt.Sprintf("%.0f km", n.DistanceKm), n.City.Timezone)
	}
	return writeTable(out, tbl)
}
