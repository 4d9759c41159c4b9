// Package lunar computes moon phases from mean lunation arithmetic.
package lunar

import (
	"math"
	"time"
)

// synodicMonth is the mean length of a lunation in days.
const synodicMonth = 29.530588853

// epoch is a reference new moon (2000-01-06 18:14 UTC).
var epoch = time.Date(2000, time.January, 6, 18, 14, 0, 0, time.UTC)

// lunations returns the (fractional) number of synodic months elapsed
// since the reference new moon.
func lunations(t time.Time) float64 {
	days := t.Sub(epoch).Hours() / 24
	return days / synodicMonth
}

func fromLunations(l float64) time.Time {
	days := l * synodicMonth
	return epoch.Add(time.Duration(days * 24 * float64(time.Hour)))
}

// Lunation returns the current phase as a fraction in [0, 1):
// 0 = new moon, 0.5 = full moon.
func Lunation(t time.Time) float64 {
	frac := math.Mod(lunations(t), 1)
	if frac < 0 {
		frac++
	}
	return frac
}

// NextNew returns the first new moon strictly after t.
func NextNew(t time.Time) time.Time {
	return fromLunations(math.Floor(lunations(t)) + 1)
}

// NextFull returns the first full moon strictly after t.
func NextFull(t time.Time) time.Time {
	return fromLunations(math.Floor(lunations(t)-0.5) + 1.5)
}

// Glyph maps a lunation fraction to a phase glyph.
// The buckets are deliberately coarse: anything near a boundary snaps
// to the neighboring quarter.
func Glyph(frac float64) string {
	switch {
	case frac < 0.125:
		return "🌑" // New Moon
	case frac < 0.375:
		return "🌒" // Waxing Crescent
	case frac < 0.625:
		return "🌓" // First Quarter
	case frac < 0.875:
		return "🌔" // Waxing Gibbous
	default:
		return "🌕" // Full Moon
	}
}
