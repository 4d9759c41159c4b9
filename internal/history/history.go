// Package history reads notification history from the mako daemon.
package history

import (
	"strings"
)

// Record is the slice of a mako history entry the widgets care about.
type Record struct {
	Summary string
	Body    string
	AppIcon string
}

// Summaries joins the first limit record summaries with the literal
// two-character sequence `\n`. Waybar renders the escape inside a
// tooltip string, so the output must stay on one line.
func Summaries(records []Record, limit int) string {
	if limit > 0 && len(records) > limit {
		records = records[:limit]
	}

	summaries := make([]string, 0, len(records))
	for _, r := range records {
		summaries = append(summaries, r.Summary)
	}
	return strings.Join(summaries, `\n`)
}

// FindBySummary returns the first record whose summary exactly matches.
// When two records share a summary the earliest one wins.
func FindBySummary(records []Record, summary string) (Record, bool) {
	for _, r := range records {
		if r.Summary == summary {
			return r, true
		}
	}
	return Record{}, false
}
