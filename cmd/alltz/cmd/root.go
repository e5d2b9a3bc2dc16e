package cmd

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/alltz-dev/alltz/internal/catalog"
	"github.com/alltz-dev/alltz/pkg/core/logging"
)

var (
	cfgFile string
	verbose bool

	// now is the clock used by the one-shot commands
	now = time.Now
)

var (
	headerColor = color.New(color.FgCyan, color.Bold)
	nameColor   = color.New(color.FgGreen, color.Bold)
	dimColor    = color.New(color.FgHiBlack)
	valueColor  = color.New(color.FgYellow)
	errorColor  = color.New(color.FgRed, color.Bold)
)

var rootCmd = &cobra.Command{
	Use:   "alltz",
	Short: "alltz - Terminal timezone dashboard",
	Long: `alltz shows the time across several world cities side by side.

Every zone gets a horizontal timeline shaded by activity (night, awake,
work). Scrub the shared timeline to compare any moment across zones; DST
transitions and local midnights are marked on each row.

Without a subcommand the interactive dashboard starts.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runTUI,
}

// Execute runs the root command and prints any error to stderr
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		printError(rootCmd.ErrOrStderr(), err)
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ~/.config/alltz/config.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	addTUIFlags(rootCmd)
}

func printError(w io.Writer, err error) {
	fmt.Fprintf(w, "%s %v\n", errorColor.Sprint("Error:"), err)
}

// cliLogger logs to stderr with -v and discards otherwise
func cliLogger(cmd *cobra.Command) *logging.Logger {
	if !verbose {
		return logging.Nop()
	}
	return logging.NewWithConfig(logging.LoggerConfig{
		ServiceName: "alltz",
		Level:       "debug",
		Format:      "text",
		Output:      cmd.ErrOrStderr(),
	})
}

// findCity looks a city up and adds a suggestion to the not-found error
func findCity(cat *catalog.Catalog, name string) (catalog.City, error) {
	city, err := cat.Find(name)
	if err == nil {
		return city, nil
	}
	if errors.Is(err, catalog.ErrCityNotFound) {
		if s, ok := cat.Suggest(name); ok {
			return catalog.City{}, fmt.Errorf("%w (did you mean %q?)", err, s)
		}
	}
	return catalog.City{}, err
}

func defaultCatalog() (*catalog.Catalog, error) {
	cat, err := catalog.Default()
	if err != nil {
		return nil, fmt.Errorf("failed to load city catalog: %w", err)
	}
	return cat, nil
}
