// Package widget implements the waybar widget behaviors on top of
// injectable stores, pickers, and notifiers.
package widget

import (
	"context"
	"io"
	"log/slog"

	"github.com/hyprv/waybar-widgets/internal/bar"
	"github.com/hyprv/waybar-widgets/internal/notify"
	"github.com/hyprv/waybar-widgets/internal/profile"
	"github.com/hyprv/waybar-widgets/internal/waybar"
)

// powerSyncKey makes rapid profile-change notifications replace each
// other instead of stacking.
const powerSyncKey = "waybar-power-profile"

// PowerWidget renders the power profile module and cycles profiles.
type PowerWidget struct {
	Store    profile.Store
	Bar      bar.Refresher
	Notifier notify.Notifier

	// Glyphs overrides the bar icon per profile label.
	Glyphs map[string]string

	Out    io.Writer
	Logger *slog.Logger
}

func (w *PowerWidget) logger() *slog.Logger {
	if w.Logger != nil {
		return w.Logger
	}
	return slog.Default()
}

// display resolves the (glyph, label) pair for a profile, applying
// any configured glyph overrides. Unknown stays blank on both fields.
func (w *PowerWidget) display(p profile.Profile) (string, string) {
	glyph, label := p.Glyph(), p.Label()
	if label != "" {
		if override, ok := w.Glyphs[label]; ok {
			glyph = override
		}
	}
	return glyph, label
}

// Status queries the active profile and emits the waybar payload.
// Any failure degrades to empty text/tooltip; the bar never sees an
// error.
func (w *PowerWidget) Status(ctx context.Context) error {
	current, err := w.Store.Current(ctx)
	if err != nil {
		w.logger().Debug("profile query failed", "error", err)
		current = profile.Unknown
	}

	glyph, label := w.display(current)
	return waybar.Encode(w.Out, waybar.Status{Text: glyph, Tooltip: label})
}

// Next handles a click: emit the (pre-change) status, cycle the
// profile, nudge the bar to refresh, then announce the new profile.
// Every step is best-effort.
func (w *PowerWidget) Next(ctx context.Context) error {
	// The stale payload goes out first so the bar always has
	// something to render, even if the cycle fails.
	if err := w.Status(ctx); err != nil {
		w.logger().Debug("status output failed", "error", err)
	}

	if err := w.Store.Cycle(ctx); err != nil {
		w.logger().Debug("profile cycle failed", "error", err)
	}

	if w.Bar != nil {
		if err := w.Bar.Refresh(ctx); err != nil {
			w.logger().Debug("bar refresh failed", "error", err)
		}
	}

	current, err := w.Store.Current(ctx)
	if err != nil {
		w.logger().Debug("profile re-query failed", "error", err)
		current = profile.Unknown
	}

	if w.Notifier != nil {
		_, label := w.display(current)
		n := notify.Notification{
			AppName:       "waybar-power",
			Summary:       label + " Power Profile",
			Urgency:       notify.UrgencyLow,
			SyncKey:       powerSyncKey,
			ExpireTimeout: -1,
		}
		if err := w.Notifier.Send(ctx, n); err != nil {
			w.logger().Debug("profile notification failed", "error", err)
		}
	}

	return nil
}
