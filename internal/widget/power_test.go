package widget

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hyprv/waybar-widgets/internal/notify"
	"github.com/hyprv/waybar-widgets/internal/profile"
)

func TestPowerStatus_RecognizedProfiles(t *testing.T) {
	tests := []struct {
		name    string
		current profile.Profile
	}{
		{"balanced", profile.Balanced},
		{"performance", profile.Performance},
		{"quiet", profile.Quiet},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			w := &PowerWidget{
				Store: &fakeProfileStore{current: tt.current},
				Out:   &out,
			}

			require.NoError(t, w.Status(context.Background()))

			expected := `{"text":"` + tt.current.Glyph() +
				`","tooltip":"` + tt.current.Label() + `"}`
			assert.JSONEq(t, expected, out.String())
		})
	}
}

func TestPowerStatus_GlyphOverride(t *testing.T) {
	var out bytes.Buffer
	w := &PowerWidget{
		Store:  &fakeProfileStore{current: profile.Quiet},
		Glyphs: map[string]string{"Quiet": "zZ"},
		Out:    &out,
	}

	require.NoError(t, w.Status(context.Background()))
	assert.JSONEq(t, `{"text":"zZ","tooltip":"Quiet"}`, out.String())
}

func TestPowerStatus_FailSoft(t *testing.T) {
	tests := []struct {
		name  string
		store *fakeProfileStore
	}{
		{"query error", &fakeProfileStore{currentErr: errUnreachable}},
		{"unrecognized profile", &fakeProfileStore{current: profile.Unknown}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			w := &PowerWidget{Store: tt.store, Out: &out}

			// Never an error, always a valid payload with blank fields.
			require.NoError(t, w.Status(context.Background()))
			assert.JSONEq(t, `{"text":"","tooltip":""}`, out.String())
		})
	}
}

func TestPowerNext_StatusPrintedBeforeCycle(t *testing.T) {
	var out bytes.Buffer
	store := &fakeProfileStore{current: profile.Balanced}
	var outLenAtCycle int
	store.onCycle = func() { outLenAtCycle = out.Len() }

	w := &PowerWidget{Store: store, Out: &out}
	require.NoError(t, w.Next(context.Background()))

	assert.Equal(t, 1, store.cycles)
	// The stale status payload must be on the wire before the cycle.
	assert.Greater(t, outLenAtCycle, 0)
	assert.JSONEq(t, `{"text":"`+profile.Balanced.Glyph()+`","tooltip":"Balanced"}`,
		out.String())
}

func TestPowerNext_RefreshesBarAndNotifies(t *testing.T) {
	var out bytes.Buffer
	refresher := &fakeRefresher{}
	notifier := &fakeNotifier{}
	w := &PowerWidget{
		Store:    &fakeProfileStore{current: profile.Quiet},
		Bar:      refresher,
		Notifier: notifier,
		Out:      &out,
	}

	require.NoError(t, w.Next(context.Background()))

	assert.Equal(t, 1, refresher.calls)
	require.Len(t, notifier.sent, 1)

	n := notifier.sent[0]
	// Quiet cycles to Balanced; the notification names the new profile.
	assert.Equal(t, "Balanced Power Profile", n.Summary)
	assert.Equal(t, notify.UrgencyLow, n.Urgency)
	assert.Equal(t, powerSyncKey, n.SyncKey)
}

func TestPowerNext_FailSoft(t *testing.T) {
	var out bytes.Buffer
	w := &PowerWidget{
		Store: &fakeProfileStore{
			currentErr: errUnreachable,
			cycleErr:   errUnreachable,
		},
		Bar:      &fakeRefresher{err: errUnreachable},
		Notifier: &fakeNotifier{err: errUnreachable},
		Out:      &out,
	}

	// Every collaborator failing still exits cleanly with a payload.
	require.NoError(t, w.Next(context.Background()))
	assert.JSONEq(t, `{"text":"","tooltip":""}`, out.String())
}
