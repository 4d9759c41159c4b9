package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/hyprv/waybar-widgets/internal/bar"
	"github.com/hyprv/waybar-widgets/internal/config"
	"github.com/hyprv/waybar-widgets/internal/notify"
	"github.com/hyprv/waybar-widgets/internal/profile"
	"github.com/hyprv/waybar-widgets/internal/widget"
)

// Build-time variables (set via ldflags)
var (
	version   = "dev"
	commit    = "unknown"
	buildTime = "unknown"
)

// Global configuration and state
var (
	cfg        *config.Config
	globalOpts struct {
		verbose    bool
		configPath string
	}
	logger *slog.Logger
)

// rootCmd emits the power profile status; with the literal argument
// "next" it also cycles the profile afterwards.
var rootCmd = &cobra.Command{
	Use:   "waybar-power [next]",
	Short: "Waybar power profile widget backed by asusctl",
	Long: `waybar-power renders the active asusctl power profile as a Waybar
custom module payload. Invoked with the argument "next" it additionally
cycles to the next profile, signals Waybar to refresh, and announces
the new profile with a desktop notification.

Waybar configuration:

  "custom/power-profile": {
    "exec": "waybar-power",
    "interval": 30,
    "return-type": "json",
    "signal": 8,
    "on-click": "waybar-power next"
  }

The widget never exits non-zero; any asusctl failure renders as an
empty module.`,
	Version:       fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, buildTime),
	Args:          cobra.ArbitraryArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		setupLogger()

		var err error
		cfg, err = config.LoadConfig(globalOpts.configPath)
		if err != nil {
			// Bad config must not blank the bar; fall back to defaults.
			logger.Warn("failed to load config, using defaults", "error", err)
			cfg = config.DefaultConfig()
		}
	},
	RunE: runPower,
}

// Execute runs the root command. The widget contract is exit code 0
// regardless of what the external tools did.
func Execute() {
	if err := rootCmd.Execute(); err != nil && logger != nil {
		logger.Debug("command failed", "error", err)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&globalOpts.verbose, "verbose", "v", false,
		"Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&globalOpts.configPath, "config", "",
		"Path to config file (default: ~/.config/waybar-widgets/config.toml)")
}

func runPower(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	w := &widget.PowerWidget{
		Store:  profile.NewAsusctlStore(cfg.Power.AsusctlCommand),
		Glyphs: cfg.Power.Glyphs,
		Out:    os.Stdout,
		Logger: logger,
	}

	if len(args) > 0 && args[0] == "next" {
		w.Bar = bar.NewSignalRefresher(cfg.Power.RefreshSignal)
		if notifier, err := notify.NewDBusNotifier(); err != nil {
			logger.Debug("session bus unavailable", "error", err)
		} else {
			w.Notifier = notifier
		}
		return w.Next(ctx)
	}

	return w.Status(ctx)
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
