package widget

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/hyprv/waybar-widgets/internal/lunar"
	"github.com/hyprv/waybar-widgets/internal/waybar"
)

// LunarWidget renders the current moon phase with upcoming full and
// new moon dates in the tooltip.
type LunarWidget struct {
	// Now overrides the clock, for tests.
	Now func() time.Time

	Out    io.Writer
	Logger *slog.Logger
}

func (w *LunarWidget) now() time.Time {
	if w.Now != nil {
		return w.Now()
	}
	return time.Now()
}

// Status emits the moon phase payload. Unlike the daemon-backed
// widgets there is no external collaborator to fail, so this only
// errors when stdout does.
func (w *LunarWidget) Status(ctx context.Context) error {
	now := w.now()

	tooltip := fmt.Sprintf("🌕 <b>Moon Phases</b>\nNext Full Moon: %s\nNext New Moon: %s",
		lunar.NextFull(now).Format("2006-01-02"),
		lunar.NextNew(now).Format("2006-01-02"))

	return waybar.Encode(w.Out, waybar.Status{
		Text:    lunar.Glyph(lunar.Lunation(now)),
		Tooltip: tooltip,
	})
}
