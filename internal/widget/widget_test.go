package widget

import (
	"context"
	"errors"

	"github.com/hyprv/waybar-widgets/internal/history"
	"github.com/hyprv/waybar-widgets/internal/notify"
	"github.com/hyprv/waybar-widgets/internal/profile"
)

// fakeProfileStore is an in-memory profile.Store.
type fakeProfileStore struct {
	current    profile.Profile
	currentErr error
	cycleErr   error

	cycles int
	// onCycle runs inside Cycle, letting tests observe ordering.
	onCycle func()
}

func (f *fakeProfileStore) Current(ctx context.Context) (profile.Profile, error) {
	if f.currentErr != nil {
		return profile.Unknown, f.currentErr
	}
	return f.current, nil
}

func (f *fakeProfileStore) Cycle(ctx context.Context) error {
	f.cycles++
	if f.onCycle != nil {
		f.onCycle()
	}
	if f.cycleErr != nil {
		return f.cycleErr
	}
	// Mirror asusctl's Quiet -> Balanced -> Performance rotation.
	switch f.current {
	case profile.Quiet:
		f.current = profile.Balanced
	case profile.Balanced:
		f.current = profile.Performance
	case profile.Performance:
		f.current = profile.Quiet
	}
	return nil
}

// fakeRefresher records refresh requests.
type fakeRefresher struct {
	calls int
	err   error
}

func (f *fakeRefresher) Refresh(ctx context.Context) error {
	f.calls++
	return f.err
}

// fakeNotifier records sent notifications.
type fakeNotifier struct {
	sent []notify.Notification
	err  error
}

func (f *fakeNotifier) Send(ctx context.Context, n notify.Notification) error {
	f.sent = append(f.sent, n)
	return f.err
}

// fakeHistoryStore is an in-memory history.Store.
type fakeHistoryStore struct {
	records []history.Record
	err     error
}

func (f *fakeHistoryStore) List(ctx context.Context) ([]history.Record, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.records, nil
}

// fakePicker returns a canned selection and records its input.
type fakePicker struct {
	selection string
	err       error

	called bool
	input  string
}

func (f *fakePicker) Pick(ctx context.Context, input string) (string, error) {
	f.called = true
	f.input = input
	return f.selection, f.err
}

var errUnreachable = errors.New("daemon unreachable")
