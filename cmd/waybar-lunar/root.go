package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/hyprv/waybar-widgets/internal/widget"
)

// Build-time variables (set via ldflags)
var (
	version   = "dev"
	commit    = "unknown"
	buildTime = "unknown"
)

var (
	globalOpts struct {
		verbose bool
	}
	logger *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "waybar-lunar",
	Short: "Waybar moon phase widget",
	Long: `waybar-lunar renders the current moon phase as a Waybar custom
module payload, with the next full and new moon dates in the tooltip.

Waybar configuration:

  "custom/lunar": {
    "exec": "waybar-lunar",
    "interval": 3600,
    "return-type": "json"
  }

Phases come from mean lunation arithmetic; no external daemon is
involved and the widget never exits non-zero.`,
	Version:       fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, buildTime),
	Args:          cobra.ArbitraryArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		setupLogger()
	},
	RunE: runLunar,
}

// Execute runs the root command, always exiting 0.
func Execute() {
	if err := rootCmd.Execute(); err != nil && logger != nil {
		logger.Debug("command failed", "error", err)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&globalOpts.verbose, "verbose", "v", false,
		"Enable verbose logging")
}

func runLunar(cmd *cobra.Command, args []string) error {
	w := &widget.LunarWidget{
		Out:    os.Stdout,
		Logger: logger,
	}
	return w.Status(context.Background())
}

// setupLogger configures the global slog logger.
// Logs go to stderr so stdout stays clean for the waybar payload.
func setupLogger() {
	level := slog.LevelWarn
	if globalOpts.verbose {
		level = slog.LevelDebug
	}

	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	logger = slog.New(handler)
	slog.SetDefault(logger)
}
