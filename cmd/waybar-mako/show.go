package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/hyprv/waybar-widgets/internal/history"
	"github.com/hyprv/waybar-widgets/internal/picker"
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Pick a notification from history and re-surface it",
	Long: `Open a wofi picker over mako's full history. Selecting an entry
shows its body as a desktop notification; dismissing the picker does
nothing. With an empty history a "No History" notification is shown
instead.

The raw history JSON and the constructed picker input are traced to
stderr.`,
	RunE: runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	// No timeout here: the picker legitimately blocks until the user
	// chooses or dismisses.
	ctx := context.Background()

	store := history.NewMakoStore(cfg.History.MakoctlCommand)
	store.Trace = os.Stderr

	w := newHistoryWidget()
	w.Store = store
	w.Trace = os.Stderr
	w.Notifier = newNotifier()
	w.Picker = picker.NewWofiPicker(
		cfg.Picker.Command,
		cfg.Picker.Prompt,
		cfg.Picker.Width,
		cfg.Picker.Height,
	)

	return w.Show(ctx)
}
