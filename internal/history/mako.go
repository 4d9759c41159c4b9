package history

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os/exec"
	"strconv"
	"strings"
)

// Store fetches notification history from a daemon.
type Store interface {
	// List returns history records in daemon order (most recent first
	// for mako). An error means the history feature is unreachable.
	List(ctx context.Context) ([]Record, error)
}

// MakoStore fetches history through `makoctl history`.
type MakoStore struct {
	// Command is the makoctl executable, "makoctl" if empty.
	Command string

	// Trace, when set, receives the raw history JSON as fetched.
	Trace io.Writer
}

// NewMakoStore creates a store using the given makoctl command.
func NewMakoStore(command string) *MakoStore {
	return &MakoStore{Command: command}
}

func (s *MakoStore) command() string {
	if s.Command == "" {
		return "makoctl"
	}
	return s.Command
}

// List runs `makoctl history` and parses its typed-value JSON.
func (s *MakoStore) List(ctx context.Context) ([]Record, error) {
	cmd := exec.CommandContext(ctx, s.command(), "history")
	output, err := cmd.Output()
	if err != nil {
		return nil, &StoreError{
			Source:  "mako",
			Message: "failed to execute makoctl history",
			Err:     err,
		}
	}

	if s.Trace != nil {
		fmt.Fprintln(s.Trace, strings.TrimRight(string(output), "\n"))
	}

	return ParseHistory(output)
}

// makoHistory represents the top-level makoctl history JSON structure.
type makoHistory struct {
	Type string        `json:"type"`
	Data [][]makoEntry `json:"data"`
}

// makoEntry represents a single notification in makoctl history.
type makoEntry struct {
	Summary makoValue `json:"summary"`
	Body    makoValue `json:"body"`
	AppIcon makoValue `json:"app-icon"`
}

// makoValue represents a typed value in mako JSON.
// mako uses {"type": "STRING", "data": "..."} format.
type makoValue struct {
	Type string      `json:"type"`
	Data interface{} `json:"data"`
}

// String returns the value as a string, empty for null data.
func (v makoValue) String() string {
	switch d := v.Data.(type) {
	case string:
		return d
	case float64:
		return strconv.FormatFloat(d, 'f', -1, 64)
	case nil:
		return ""
	default:
		return fmt.Sprintf("%v", d)
	}
}

// ParseHistory parses makoctl history JSON output.
func ParseHistory(data []byte) ([]Record, error) {
	var hist makoHistory
	if err := json.Unmarshal(data, &hist); err != nil {
		return nil, &StoreError{
			Source:  "mako",
			Message: "failed to parse makoctl history JSON",
			Err:     err,
		}
	}

	var records []Record

	// mako uses nested arrays: data is [[entry1, entry2, ...]]
	for _, group := range hist.Data {
		for _, entry := range group {
			records = append(records, Record{
				Summary: entry.Summary.String(),
				Body:    entry.Body.String(),
				AppIcon: entry.AppIcon.String(),
			})
		}
	}

	return records, nil
}

// StoreError represents a history store failure.
type StoreError struct {
	Source  string
	Message string
	Err     error
}

func (e *StoreError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *StoreError) Unwrap() error {
	return e.Err
}
