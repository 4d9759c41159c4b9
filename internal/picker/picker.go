// Package picker presents an interactive selection list via wofi.
package picker

import (
	"context"
	"strings"

	"github.com/hyprv/waybar-widgets/internal/history"
)

// Picker presents lines to the user and returns the chosen one.
type Picker interface {
	// Pick shows the input (one entry per line) and returns the
	// selected line. An empty string means the user dismissed the
	// picker without choosing.
	Pick(ctx context.Context, input string) (string, error)
}

// Line formats a history record as a picker entry.
// Format: "<app_icon>\t<summary>". The icon may be empty.
func Line(r history.Record) string {
	return r.AppIcon + "\t" + r.Summary
}

// Input builds the full picker input for a set of records.
func Input(records []history.Record) string {
	lines := make([]string, 0, len(records))
	for _, r := range records {
		lines = append(lines, Line(r))
	}
	return strings.Join(lines, "\n")
}

// StripIcon recovers the summary from a selected line by dropping
// everything up to and including the first tab. Lines without a tab
// are returned unchanged.
func StripIcon(selection string) string {
	if _, summary, ok := strings.Cut(selection, "\t"); ok {
		return summary
	}
	return selection
}
