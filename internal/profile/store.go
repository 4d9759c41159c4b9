package profile

import (
	"context"
	"os/exec"
)

// Store provides access to the daemon-held power profile.
type Store interface {
	// Current returns the active profile.
	Current(ctx context.Context) (Profile, error)

	// Cycle advances the daemon to the next profile.
	Cycle(ctx context.Context) error
}

// AsusctlStore talks to the asusd daemon through the asusctl CLI.
type AsusctlStore struct {
	// Command is the asusctl executable, "asusctl" if empty.
	Command string
}

// NewAsusctlStore creates a store using the given asusctl command.
func NewAsusctlStore(command string) *AsusctlStore {
	return &AsusctlStore{Command: command}
}

func (s *AsusctlStore) command() string {
	if s.Command == "" {
		return "asusctl"
	}
	return s.Command
}

// Current runs `asusctl profile -p` and parses the announcement line.
func (s *AsusctlStore) Current(ctx context.Context) (Profile, error) {
	cmd := exec.CommandContext(ctx, s.command(), "profile", "-p")
	output, err := cmd.Output()
	if err != nil {
		return Unknown, &StoreError{Op: "query profile", Err: err}
	}
	return ParseActive(output), nil
}

// Cycle runs `asusctl profile -n`. No output contract is relied upon.
func (s *AsusctlStore) Cycle(ctx context.Context) error {
	cmd := exec.CommandContext(ctx, s.command(), "profile", "-n")
	if err := cmd.Run(); err != nil {
		return &StoreError{Op: "cycle profile", Err: err}
	}
	return nil
}

// StoreError represents a failed asusctl invocation.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	if e.Err != nil {
		return e.Op + ": " + e.Err.Error()
	}
	return e.Op
}

func (e *StoreError) Unwrap() error {
	return e.Err
}
