package lunar

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// quarter is a quarter of a synodic month.
const quarter = synodicMonth / 4 * 24 * float64(time.Hour)

func TestLunation(t *testing.T) {
	tests := []struct {
		name     string
		t        time.Time
		expected float64
	}{
		{"reference new moon", epoch, 0},
		{"first quarter", epoch.Add(time.Duration(quarter)), 0.25},
		{"full moon", epoch.Add(time.Duration(2 * quarter)), 0.5},
		{"one full cycle later", epoch.Add(time.Duration(4 * quarter)), 0},
		{"quarter before the epoch", epoch.Add(-time.Duration(quarter)), 0.75},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Compare on the phase circle so 0.9999... and 0 agree.
			diff := math.Abs(Lunation(tt.t) - tt.expected)
			if diff > 0.5 {
				diff = 1 - diff
			}
			assert.InDelta(t, 0, diff, 1e-6)
		})
	}
}

func TestGlyph(t *testing.T) {
	tests := []struct {
		frac     float64
		expected string
	}{
		{0, "🌑"},
		{0.124, "🌑"},
		{0.125, "🌒"},
		{0.374, "🌒"},
		{0.375, "🌓"},
		{0.5, "🌓"},
		{0.624, "🌓"},
		{0.625, "🌔"},
		{0.874, "🌔"},
		{0.875, "🌕"},
		{0.999, "🌕"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, Glyph(tt.frac), "frac %v", tt.frac)
	}
}

func TestNextNew(t *testing.T) {
	oneCycle := time.Duration(4 * quarter)

	// Just after the reference new moon, the next one is a full cycle out.
	next := NextNew(epoch.Add(time.Hour))
	assert.WithinDuration(t, epoch.Add(oneCycle), next, time.Second)

	// Always strictly in the future.
	now := time.Date(2026, time.August, 28, 12, 0, 0, 0, time.UTC)
	assert.True(t, NextNew(now).After(now))
	assert.True(t, NextNew(now).Sub(now) <= oneCycle)
}

func TestNextFull(t *testing.T) {
	halfCycle := time.Duration(2 * quarter)

	// At the reference new moon, the next full moon is half a cycle out.
	next := NextFull(epoch)
	assert.WithinDuration(t, epoch.Add(halfCycle), next, time.Second)

	// Just past a full moon, the next one is a whole cycle away.
	justPastFull := epoch.Add(halfCycle + 24*time.Hour)
	next = NextFull(justPastFull)
	assert.WithinDuration(t, epoch.Add(halfCycle+2*halfCycle), next, time.Second)

	now := time.Date(2026, time.August, 28, 12, 0, 0, 0, time.UTC)
	assert.True(t, NextFull(now).After(now))
}
