package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/alltz-dev/alltz/internal/catalog"
	"github.com/alltz-dev/alltz/internal/solar"
	"github.com/alltz-dev/alltz/internal/timeline"
	"github.com/alltz-dev/alltz/internal/tz"
)

var zoneCmd = &cobra.Command{
	Use:     "zone CITY",
	Aliases: []string{"info"},
	Short:   "Show timezone details for a city",
	Args:    cobra.MinimumNArgs(1),
	RunE:    runZone,
}

func init() {
	rootCmd.AddCommand(zoneCmd)
}

func runZone(cmd *cobra.Command, args []string) error {
	cat, err := defaultCatalog()
	if err != nil {
		return err
	}
	city, err := findCity(cat, strings.Join(args, " "))
	if err != nil {
		return err
	}
	cliLogger(cmd).Debug("zone info", "city", city.Name, "timezone", city.Timezone)

	info := describeZone(city, now())

	out := cmd.OutOrStdout()
	nameColor.Fprintln(out, cat.Label(city))
	tbl := listTable(dimStyle.PaddingLeft(2), plainStyle)
	for _, row := range info {
		tbl.Row(row[0], row[1])
	}
	return writeTable(out, tbl)
}

// describeZone returns label/value pairs for the zone command
func describeZone(city catalog.City, t time.Time) [][2]string {
	loc := city.Location
	offset := tz.OffsetAt(loc, t)

	rows := [][2]string{
		{"Code", city.Code},
		{"Country", city.Country},
		{"Timezone", city.Timezone},
		{"Offset", fmt.Sprintf("%s (%s)", tz.FormatOffset(offset), tz.Abbreviation(loc, t))},
		{"Local time", t.In(loc).Format("Mon 02 Jan 2006 15:04")},
	}

	if c := city.Coordinates; c != nil {
		rows = append(rows, [2]string{"Coordinates", fmt.Sprintf("%.4f, %.4f", c.Lat, c.Lon)})
		if sun, ok := solar.ForCity(solar.NewCalculator(), city, t); ok {
			rows = append(rows, [2]string{"Sun", sun.Format(false)})
		}
	}

	jan := tz.OffsetAt(loc, time.Date(t.Year(), time.January, 1, 12, 0, 0, 0, time.UTC))
	jul := tz.OffsetAt(loc, time.Date(t.Year(), time.July, 1, 12, 0, 0, 0, time.UTC))
	if jan == jul {
		rows = append(rows, [2]string{"DST", "not observed"})
		return rows
	}

	state := "inactive"
	if offset > min(jan, jul) {
		state = "active"
	}
	rows = append(rows, [2]string{"DST", state})

	if e, ok := nextTransition(loc, t); ok {
		rows = append(rows, [2]string{"Next change", fmt.Sprintf("%s %s",
			e.Kind, e.At.Add(time.Hour).In(loc).Format("Mon 02 Jan 2006"))})
	}
	return rows
}

// nextTransition scans up to a year ahead for the next offset change
func nextTransition(loc *time.Location, t time.Time) (timeline.Event, bool) {
	start := t.Truncate(time.Hour)
	w := timeline.Window{Start: start, End: start.AddDate(1, 0, 1)}
	events := timeline.DSTTransitions(w, loc)
	if len(events) == 0 {
		return timeline.Event{}, false
	}
	return events[0], true
}
