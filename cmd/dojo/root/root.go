package root

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/talgya/dojo-idle/internal/config"
	"github.com/talgya/dojo-idle/internal/ui"
)

const Version = "0.1.0"

var (
	flagConfig   string
	flagDB       string
	flagSave     string
	flagLogLevel string
)

var rootCmd = &cobra.Command{
	Use:           "dojo",
	Short:         "Idle dojo: train and fight, then reset",
	Long:          "dojo simulates an idle martial-arts RPG: passive training, procedural caves, tournaments and master resets.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("{{.Name}} v{{.Version}}\n")

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flagConfig, "config", "", "YAML config file")
	pf.StringVar(&flagDB, "db", "", "SQLite save database (overrides config)")
	pf.StringVar(&flagSave, "save", "main", "save slot name")
	pf.StringVar(&flagLogLevel, "log-level", "", "debug, info, warn or error")

	rootCmd.AddCommand(
		newRunCmd(),
		newSimulateCmd(),
		newDungeonCmd(),
		newResetCmd(),
		newStatusCmd(),
		newSavesCmd(),
		newFightCmd(),
		newHireCmd(),
		newPrestigeCmd(),
		newEquipCmd(),
		newTileCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.Bad.Render(ui.IconError+" "+err.Error()))
		os.Exit(1)
	}
}

// loadConfig resolves config from file, environment and flags, and installs
// the default logger.
func loadConfig() (*config.Config, error) {
	cfg, err := config.LoadOrDefault(flagConfig)
	if err != nil {
		return nil, err
	}
	if flagDB != "" {
		cfg.DBPath = flagDB
	}
	if flagLogLevel != "" {
		cfg.LogLevel = flagLogLevel
	}
	slog.SetDefault(newLogger(cfg.SlogLevel()))
	return cfg, nil
}

// newLogger writes text to terminals and JSON everywhere else.
func newLogger(level slog.Level) *slog.Logger {
	opts := &slog.HandlerOptions{Level: level}
	fd := os.Stderr.Fd()
	if isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd) {
		return slog.New(slog.NewTextHandler(os.Stderr, opts))
	}
	return slog.New(slog.NewJSONHandler(os.Stderr, opts))
}
