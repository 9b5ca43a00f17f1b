package submissions

import (
	"strings"
	"time"
)

// FilterAll bypasses status filtering.
const FilterAll = "all"

// FilterByStatus returns the submissions matching the requested filter.
// "all" (case-insensitive) returns every submission unchanged; a canonical
// status returns the matching subset; anything else returns an empty set,
// not an error.
func FilterByStatus(subs []Submission, requested string) []Submission {
	filter := strings.ToLower(strings.TrimSpace(requested))
	if filter == FilterAll {
		return subs
	}

	out := []Submission{}
	for _, s := range subs {
		if strings.EqualFold(string(s.Status), filter) {
			out = append(out, s)
		}
	}
	return out
}

// Summarize computes the dashboard counters in a single pass. An item
// counts toward total, exactly one of pending/accepted, and independently
// toward last7 when created within the trailing 7x24 hours of now,
// boundary inclusive.
func Summarize(subs []Submission, now time.Time) Stats {
	cutoff := now.Add(-7 * 24 * time.Hour)

	var stats Stats
	for _, s := range subs {
		stats.Total++
		switch s.Status {
		case StatusAccepted:
			stats.Accepted++
		default:
			stats.Pending++
		}
		if !s.CreatedAt.Before(cutoff) {
			stats.Last7++
		}
	}
	return stats
}
