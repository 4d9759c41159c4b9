package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/hyprv/waybar-widgets/internal/config"
	"github.com/hyprv/waybar-widgets/internal/history"
	"github.com/hyprv/waybar-widgets/internal/notify"
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

var rootCmd = &cobra.Command{
	Use:   "waybar-mako {count|tooltip|show}",
	Short: "Waybar notification history widget backed by mako",
	Long: `waybar-mako summarizes mako's notification history for a Waybar
custom module.

  count    Emit the history size as a Waybar JSON payload.
  tooltip  Emit recent summaries for embedding in a tooltip.
  show     Open a wofi picker and re-surface the chosen notification.

Waybar configuration:

  "custom/notifications": {
    "exec": "waybar-mako count",
    "interval": 5,
    "return-type": "json",
    "on-click": "waybar-mako show"
  }

The widget never exits non-zero; an unreachable daemon renders as an
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
			logger.Warn("failed to load config, using defaults", "error", err)
			cfg = config.DefaultConfig()
		}
	},
	// Unrecognized sub-commands (and none at all) are a silent no-op.
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) > 0 {
			logger.Debug("ignoring unrecognized sub-command", "arg", args[0])
		}
		return nil
	},
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
	rootCmd.PersistentFlags().StringVar(&globalOpts.configPath, "config", "",
		"Path to config file (default: ~/.config/waybar-widgets/config.toml)")
}

// newHistoryWidget wires the widget against the real mako store.
func newHistoryWidget() *widget.HistoryWidget {
	return &widget.HistoryWidget{
		Store:        history.NewMakoStore(cfg.History.MakoctlCommand),
		TooltipLimit: cfg.History.TooltipLimit,
		Out:          os.Stdout,
		Logger:       logger,
	}
}

// newNotifier returns a session-bus notifier, or nil when the bus is
// unavailable. A nil notifier downgrades Show to a silent no-op at
// the notification step, which is all a widget can do.
func newNotifier() notify.Notifier {
	notifier, err := notify.NewDBusNotifier()
	if err != nil {
		logger.Debug("session bus unavailable", "error", err)
		return nil
	}
	return notifier
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
