package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alltz-dev/alltz/internal/tz"
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List all known cities",
	Args:    cobra.NoArgs,
	RunE:    runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	cat, err := defaultCatalog()
	if err != nil {
		return err
	}
	cliLogger(cmd).Debug("listing catalog", "cities", cat.Len())

	out := cmd.OutOrStdout()
	t := now()
	headerColor.Fprintf(out, "%d cities\n\n", cat.Len())

	tbl := listTable(nameStyle, plainStyle, valueStyle, plainStyle, dimStyle).
		Headers("CITY", "CODE", "OFFSET", "TIMEZONE", "COORDINATES")
	for _, city := range cat.Cities() {
		coords := "-"
		if c := city.Coordinates; c != nil {
			coords = fmt.Sprintf("%.4f, %.4f", c.Lat, c.Lon)
		}
		tbl.Row(cat.Label(city), city.Code,
			tz.FormatOffset(tz.OffsetAt(city.Location, t)),
			city.Timezone, coords)
	}
	return writeTable(out, tbl)
}
