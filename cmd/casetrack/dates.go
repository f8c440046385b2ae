// Date rendering for casetrack CLI output.
package main

import (
	"fmt"
	"time"
)

// formatDate renders a date as "Jan 02, 2006".
func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("Jan 02, 2006")
}

// formatDateTime renders a timestamp as "Jan 02, 2006 3:04 PM".
func formatDateTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("Jan 02, 2006 3:04 PM")
}

// formatRelativeTime renders a timestamp relative to now: "Today at 3:04 PM",
// "Yesterday at 3:04 PM", a weekday within the last week, or a rough
// distance ("3 days ago", "2 months ago") beyond that.
func formatRelativeTime(t, now time.Time) string {
	if t.IsZero() {
		return ""
	}
	t = t.In(now.Location())

	switch {
	case sameDay(t, now):
		return "Today at " + t.Format("3:04 PM")
	case sameDay(t, now.AddDate(0, 0, -1)):
		return "Yesterday at " + t.Format("3:04 PM")
	case now.Sub(t) > 0 && now.Sub(t) < 7*24*time.Hour:
		return t.Format("Monday 3:04 PM")
	}
	return formatDistance(t, now)
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// formatDistance renders the gap between two instants as a rough phrase,
// suffixed with "ago" or prefixed with "in" depending on direction.
func formatDistance(t, now time.Time) string {
	d := now.Sub(t)
	future := d < 0
	if future {
		d = -d
	}

	var phrase string
	switch {
	case d < time.Minute:
		phrase = "less than a minute"
	case d < 2*time.Minute:
		phrase = "a minute"
	case d < time.Hour:
		phrase = fmt.Sprintf("%d minutes", int(d.Minutes()))
	case d < 2*time.Hour:
		phrase = "an hour"
	case d < 24*time.Hour:
		phrase = fmt.Sprintf("%d hours", int(d.Hours()))
	case d < 48*time.Hour:
		phrase = "a day"
	case d < 30*24*time.Hour:
		phrase = fmt.Sprintf("%d days", int(d.Hours()/24))
	case d < 60*24*time.Hour:
		phrase = "a month"
	case d < 365*24*time.Hour:
		phrase = fmt.Sprintf("%d months", int(d.Hours()/(24*30)))
	case d < 2*365*24*time.Hour:
		phrase = "a year"
	default:
		phrase = fmt.Sprintf("%d years", int(d.Hours()/(24*365)))
	}

	if future {
		return "in " + phrase
	}
	return phrase + " ago"
}

// formatFileSize renders a byte count in human-readable units.
func formatFileSize(size int64) string {
	switch {
	case size >= 1<<20:
		return fmt.Sprintf("%.1f MB", float64(size)/(1<<20))
	case size >= 1<<10:
		return fmt.Sprintf("%.1f KB", float64(size)/(1<<10))
	default:
		return fmt.Sprintf("%d B", size)
	}
}
