// Package bar signals the status bar host process to refresh.
package bar

import (
	"context"
	"fmt"
	"os/exec"
)

// Refresher asks the status bar to re-run its modules.
type Refresher interface {
	Refresh(ctx context.Context) error
}

// SignalRefresher sends SIGRTMIN+Signal to every process named
// Process. Waybar maps realtime signals to module refreshes through
// its "signal" module option.
type SignalRefresher struct {
	// Command is the pkill executable, "pkill" if empty.
	Command string

	// Process is the target process name, "waybar" if empty.
	Process string

	// Signal is the realtime signal offset.
	Signal int
}

// NewSignalRefresher creates a refresher for the given signal offset.
func NewSignalRefresher(signal int) *SignalRefresher {
	return &SignalRefresher{Signal: signal}
}

func (r *SignalRefresher) command() string {
	if r.Command == "" {
		return "pkill"
	}
	return r.Command
}

func (r *SignalRefresher) process() string {
	if r.Process == "" {
		return "waybar"
	}
	return r.Process
}

// Refresh sends the signal. A missing waybar process is not an error
// worth surfacing; the caller logs and moves on either way.
func (r *SignalRefresher) Refresh(ctx context.Context) error {
	sig := fmt.Sprintf("-RTMIN+%d", r.Signal)
	cmd := exec.CommandContext(ctx, r.command(), sig, r.process())
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to signal %s: %w", r.process(), err)
	}
	return nil
}
