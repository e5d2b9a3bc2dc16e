package cmd

import (
	"fmt"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/alltz-dev/alltz/internal/solar"
	"github.com/alltz-dev/alltz/internal/tui"
	"github.com/alltz-dev/alltz/pkg/core/config"
	"github.com/alltz-dev/alltz/pkg/core/logging"
)

var (
	initialCity string
	twelveHour  bool
	themeName   string
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Start the interactive dashboard",
	Long: `Start the interactive timezone dashboard.

Navigation:
  ←/→ h/l   previous/next hour
  H/L       -/+ 1 minute
  [ ] { }   -/+ 15 and 60 minutes
  t         back to now
  j/k       select zone
  a r e     add, remove, rename zone
  ?         all shortcuts
  q         quit`,
	RunE: runTUI,
}

func init() {
	addTUIFlags(tuiCmd)
	rootCmd.AddCommand(tuiCmd)
}

func addTUIFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&initialCity, "timezone", "t", "", "add and select a city on startup")
	cmd.Flags().BoolVar(&twelveHour, "twelve-hour", false, "use the 12-hour clock")
	cmd.Flags().StringVar(&themeName, "theme", "", "color theme ("+strings.Join(config.Themes, ", ")+")")
}

func runTUI(cmd *cobra.Command, args []string) error {
	path, err := config.ResolvePath(cfgFile)
	if err != nil {
		return err
	}

	cat, err := defaultCatalog()
	if err != nil {
		return err
	}

	cfg, created, cfgErr := config.LoadOrCreate(path)

	log, closeLog, err := tuiLogger(cfg, path)
	if err != nil {
		return err
	}
	defer closeLog()

	savePath := path
	if cfgErr != nil {
		// keep the broken file untouched and run on defaults
		log.Warn("config unusable, using defaults", "path", path, "error", cfgErr)
		fmt.Fprintf(cmd.ErrOrStderr(), "%s %v\n", dimColor.Sprint("warning:"), cfgErr)
		savePath = ""
	}

	if twelveHour {
		cfg.DisplayFormat = config.Format12h
	}
	if themeName != "" {
		idx := tui.ThemeIndex(strings.ToLower(themeName))
		if tui.Themes[idx].Name != strings.ToLower(themeName) {
			return fmt.Errorf("unknown theme %q (available: %s)", themeName, strings.Join(config.Themes, ", "))
		}
		cfg.ColorTheme = tui.Themes[idx].Name
	}

	if initialCity != "" {
		if _, err := findCity(cat, initialCity); err != nil {
			return err
		}
	}

	log.Info("starting dashboard", "config", path, "created", created)

	m := tui.New(tui.Options{
		Config:      cfg,
		ConfigPath:  savePath,
		Catalog:     cat,
		Sun:         solar.NewDefault(),
		Logger:      log,
		InitialCity: initialCity,
		SelectLocal: created,
	})

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		log.Error("dashboard failed", "error", err)
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}

// tuiLogger opens the file logger. The alt screen owns the terminal, so
// without a log file (or -v) nothing is logged.
func tuiLogger(cfg *config.Config, configPath string) (*logging.Logger, func(), error) {
	logFile := cfg.General.LogFile
	level := cfg.General.LogLevel
	if logFile == "" && verbose {
		logFile = filepath.Join(filepath.Dir(configPath), "alltz.log")
	}
	if verbose {
		level = "debug"
	}
	if logFile == "" {
		return logging.Nop(), func() {}, nil
	}

	log, closer, err := logging.NewFileLogger("alltz", level, logFile)
	if err != nil {
		return nil, nil, err
	}
	return log, func() { _ = closer.Close() }, nil
}
