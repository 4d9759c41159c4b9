// Package waybar encodes payloads for Waybar custom modules.
package waybar

import (
	"encoding/json"
	"io"
)

// Status represents the Waybar custom module JSON format.
// Text and Tooltip are always emitted, even when empty, so a widget
// that lost its backing daemon still renders as a blank module rather
// than breaking the bar.
type Status struct {
	Text    string `json:"text"`
	Tooltip string `json:"tooltip"`
	Alt     string `json:"alt,omitempty"`
	Class   string `json:"class,omitempty"`
}

// Encode writes the status as a single JSON line.
func Encode(w io.Writer, status Status) error {
	return json.NewEncoder(w).Encode(status)
}
