package widget

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/hyprv/waybar-widgets/internal/history"
	"github.com/hyprv/waybar-widgets/internal/notify"
	"github.com/hyprv/waybar-widgets/internal/picker"
	"github.com/hyprv/waybar-widgets/internal/waybar"
)

const noDetailsPlaceholder = "No additional details available"

// HistoryWidget renders the notification history module and drives
// the interactive picker.
type HistoryWidget struct {
	Store    history.Store
	Picker   picker.Picker
	Notifier notify.Notifier

	// TooltipLimit caps how many summaries Tooltip emits.
	TooltipLimit int

	Out io.Writer

	// Trace receives the constructed picker input during Show.
	Trace io.Writer

	Logger *slog.Logger
}

func (w *HistoryWidget) logger() *slog.Logger {
	if w.Logger != nil {
		return w.Logger
	}
	return slog.Default()
}

// emptyStatus is the payload for an unreachable daemon or an empty
// history. Both cases render identically.
func emptyStatus() waybar.Status {
	return waybar.Status{
		Text:    "",
		Tooltip: "No notification history",
		Alt:     "none",
	}
}

// Count emits the history size as a waybar payload.
func (w *HistoryWidget) Count(ctx context.Context) error {
	records, err := w.Store.List(ctx)
	if err != nil {
		w.logger().Debug("history unreachable", "error", err)
		return waybar.Encode(w.Out, emptyStatus())
	}
	if len(records) == 0 {
		return waybar.Encode(w.Out, emptyStatus())
	}

	n := len(records)
	return waybar.Encode(w.Out, waybar.Status{
		Text:    fmt.Sprintf("%d", n),
		Tooltip: fmt.Sprintf("%d notifications in history", n),
		Alt:     "notification",
	})
}

// Tooltip emits the most recent summaries joined with literal \n
// escapes, ready for embedding in a waybar tooltip field.
func (w *HistoryWidget) Tooltip(ctx context.Context) error {
	records, err := w.Store.List(ctx)
	if err != nil {
		w.logger().Debug("history unreachable", "error", err)
	}

	_, err = fmt.Fprintln(w.Out, history.Summaries(records, w.TooltipLimit))
	return err
}

// Show opens the picker over the full history and re-surfaces the
// chosen notification's body as a desktop notification.
func (w *HistoryWidget) Show(ctx context.Context) error {
	records, err := w.Store.List(ctx)
	if err != nil {
		w.logger().Debug("history unreachable", "error", err)
	}
	if len(records) == 0 {
		w.sendNotification(ctx, notify.Notification{
			AppName:       "waybar-mako",
			Summary:       "No History",
			Body:          "Your notification history is empty",
			Urgency:       notify.UrgencyNormal,
			ExpireTimeout: -1,
		})
		return nil
	}

	input := picker.Input(records)
	if w.Trace != nil {
		fmt.Fprintln(w.Trace, input)
	}

	selection, err := w.Picker.Pick(ctx, input)
	if err != nil {
		w.logger().Debug("picker failed", "error", err)
		return nil
	}
	if selection == "" {
		// Dismissed without choosing.
		return nil
	}

	summary := picker.StripIcon(selection)
	body := noDetailsPlaceholder
	if r, ok := history.FindBySummary(records, summary); ok && r.Body != "" {
		body = r.Body
	}

	w.sendNotification(ctx, notify.Notification{
		AppName:       "waybar-mako",
		Summary:       "History Notification",
		Body:          body,
		Urgency:       notify.UrgencyNormal,
		ExpireTimeout: -1,
	})
	return nil
}

func (w *HistoryWidget) sendNotification(ctx context.Context, n notify.Notification) {
	if w.Notifier == nil {
		return
	}
	if err := w.Notifier.Send(ctx, n); err != nil {
		w.logger().Debug("notification failed", "error", err)
	}
}
