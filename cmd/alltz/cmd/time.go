package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/alltz-dev/alltz/internal/tz"
)

var timeCmd = &cobra.Command{
	Use:     "time CITY",
	Aliases: []string{"show"},
	Short:   "Show the current time in a city",
	Example: `  alltz time Tokyo
  alltz show "London, Canada"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runTime,
}

func init() {
	timeCmd.Flags().BoolVar(&twelveHour, "twelve-hour", false, "use the 12-hour clock")
	rootCmd.AddCommand(timeCmd)
}

func runTime(cmd *cobra.Command, args []string) error {
	cat, err := defaultCatalog()
	if err != nil {
		return err
	}
	city, err := findCity(cat, strings.Join(args, " "))
	if err != nil {
		return err
	}

	t := now()
	there := t.In(city.Location)
	here := t.Local()
	layout := "Mon 02 Jan 15:04:05"
	if twelveHour {
		layout = "Mon 02 Jan 03:04:05 PM"
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s  %s %s\n",
		nameColor.Sprintf("%-20s", cat.Label(city)),
		valueColor.Sprint(there.Format(layout)),
		dimColor.Sprintf("%s %s", tz.Abbreviation(city.Location, t), tz.FormatOffset(tz.OffsetAt(city.Location, t))))
	fmt.Fprintf(out, "%s  %s %s\n",
		nameColor.Sprintf("%-20s", "Local"),
		valueColor.Sprint(here.Format(layout)),
		dimColor.Sprintf("%s %s", here.Format("MST"), tz.FormatOffset(tz.OffsetAt(time.Local, t))))

	diff := tz.OffsetAt(city.Location, t) - tz.OffsetAt(time.Local, t)
	fmt.Fprintf(out, "%s\n", dimColor.Sprint(describeDifference(diff)))
	return nil
}

// describeDifference renders an offset delta in seconds as prose
func describeDifference(seconds int) string {
	if seconds == 0 {
		return "same time as local"
	}
	dir := "ahead of"
	if seconds < 0 {
		dir = "behind"
		seconds = -seconds
	}
	h, m := seconds/3600, seconds%3600/60
	if m == 0 {
		return fmt.Sprintf("%dh %s local", h, dir)
	}
	return fmt.Sprintf("%dh%02dm %s local", h, m, dir)
}
