package widget

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLunarStatus(t *testing.T) {
	// A reference new moon: the glyph is 🌑, the next full moon falls
	// half a synodic month out (Jan 21) and the next new moon a whole
	// one out (Feb 5).
	newMoon := time.Date(2000, time.January, 6, 18, 14, 0, 0, time.UTC)

	var out bytes.Buffer
	w := &LunarWidget{
		Now: func() time.Time { return newMoon },
		Out: &out,
	}

	require.NoError(t, w.Status(context.Background()))
	assert.JSONEq(t,
		`{"text":"🌑","tooltip":"🌕 <b>Moon Phases</b>\nNext Full Moon: 2000-01-21\nNext New Moon: 2000-02-05"}`,
		out.String())
}

func TestLunarStatus_WaxingCrescent(t *testing.T) {
	// A quarter lunation (~7.4 days) past the reference new moon.
	newMoon := time.Date(2000, time.January, 6, 18, 14, 0, 0, time.UTC)
	crescent := newMoon.Add(7*24*time.Hour + 9*time.Hour)

	var out bytes.Buffer
	w := &LunarWidget{
		Now: func() time.Time { return crescent },
		Out: &out,
	}

	require.NoError(t, w.Status(context.Background()))
	assert.Contains(t, out.String(), "🌒")
}
