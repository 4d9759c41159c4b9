package picker

import (
	"context"
	"errors"
	"os/exec"
	"strconv"
	"strings"
)

// WofiPicker runs wofi in dmenu mode.
type WofiPicker struct {
	// Command is the wofi executable, "wofi" if empty.
	Command string

	Prompt string
	Width  int
	Height int
}

// NewWofiPicker creates a picker with the given geometry.
func NewWofiPicker(command, prompt string, width, height int) *WofiPicker {
	return &WofiPicker{
		Command: command,
		Prompt:  prompt,
		Width:   width,
		Height:  height,
	}
}

func (p *WofiPicker) command() string {
	if p.Command == "" {
		return "wofi"
	}
	return p.Command
}

// Pick runs wofi with the input on stdin and returns the selection.
// Caching is disabled so stale entries never reappear, and image
// display is enabled for the icon column.
func (p *WofiPicker) Pick(ctx context.Context, input string) (string, error) {
	args := []string{
		"--dmenu",
		"--prompt", p.Prompt,
		"--width", strconv.Itoa(p.Width),
		"--height", strconv.Itoa(p.Height),
		"--allow-images",
		"--cache-file", "/dev/null",
	}

	cmd := exec.CommandContext(ctx, p.command(), args...)
	cmd.Stdin = strings.NewReader(input)

	output, err := cmd.Output()
	if err != nil {
		// wofi exits non-zero when the user dismisses the picker;
		// treat that the same as an empty selection.
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return "", nil
		}
		return "", err
	}

	return strings.TrimRight(string(output), "\n"), nil
}
