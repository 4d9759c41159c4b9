// Package profile reads and cycles the platform power profile via asusctl.
package profile

import (
	"strings"
)

// Profile is an enumerated power profile as reported by asusctl.
type Profile int

const (
	// Unknown covers anything asusctl reports that we don't recognize.
	// It renders as an empty widget rather than an error.
	Unknown Profile = iota
	Balanced
	Performance
	Quiet
)

// activePrefix is the fixed prefix on the line asusctl uses to
// announce the active profile.
const activePrefix = "Active profile is "

// Parse maps a profile name to its Profile value.
func Parse(name string) Profile {
	switch name {
	case "Balanced":
		return Balanced
	case "Performance":
		return Performance
	case "Quiet":
		return Quiet
	default:
		return Unknown
	}
}

// ParseActive extracts the active profile from `asusctl profile -p` output.
// Returns Unknown when no announcement line is present.
func ParseActive(output []byte) Profile {
	for _, line := range strings.Split(string(output), "\n") {
		line = strings.TrimSpace(line)
		if name, ok := strings.CutPrefix(line, activePrefix); ok {
			return Parse(strings.TrimSpace(name))
		}
	}
	return Unknown
}

// Label returns the human-readable profile name, empty for Unknown.
func (p Profile) Label() string {
	switch p {
	case Balanced:
		return "Balanced"
	case Performance:
		return "Performance"
	case Quiet:
		return "Quiet"
	default:
		return ""
	}
}

// Glyph returns the default bar icon for the profile, empty for Unknown.
func (p Profile) Glyph() string {
	switch p {
	case Balanced:
		return "" // scales
	case Performance:
		return "" // bolt
	case Quiet:
		return "" // moon
	default:
		return ""
	}
}

func (p Profile) String() string {
	if p == Unknown {
		return "unknown"
	}
	return p.Label()
}
