// Package scheduling holds the clinic's booking rules: canonical date/time
// forms, slot availability, duration resolution, patient-name reconciliation
// and risk scoring. Every function here is pure — plain data in, plain data
// out, no I/O — so callers inject the current appointment/patient snapshot
// on each call.
package scheduling

import (
	"fmt"
	"strings"
	"time"
)

// DateString returns the canonical YYYY-MM-DD form of t using t's own
// calendar components. The package is timezone-naive: callers must not mix
// UTC-constructed and local-constructed values for the same calendar day.
func DateString(t time.Time) string {
	return fmt.Sprintf("%04d-%02d-%02d", t.Year(), int(t.Month()), t.Day())
}

// NormalizeDate brings a date-like string to canonical YYYY-MM-DD form.
// Accepts canonical input (returned as-is), RFC3339 timestamps and a couple
// of ISO-ish variants. Empty input yields an empty string. Unparseable input
// is returned unchanged so a broken value surfaces in comparisons instead of
// silently matching everything.
func NormalizeDate(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}

	for _, layout := range []string{"2006-01-02", time.RFC3339, "2006-01-02T15:04:05", "2006-01-02 15:04:05", "2006-1-2"} {
		if t, err := time.Parse(layout, s); err == nil {
			return DateString(t)
		}
	}
	return s
}

// NormalizeTime brings a time-of-day string to canonical HH:MM form.
// A missing minute segment defaults to "00", seconds are dropped, and both
// segments are zero-padded. Empty input yields an empty string.
func NormalizeTime(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}

	parts := strings.Split(s, ":")
	h, m := parts[0], "00"
	if len(parts) > 1 && parts[1] != "" {
		m = parts[1]
	}
	return pad2(h) + ":" + pad2(m)
}

func pad2(s string) string {
	if len(s) < 2 {
		return strings.Repeat("0", 2-len(s)) + s
	}
	return s
}

// TimeToMinutes converts an HH:MM string to minutes since midnight.
// The input is normalized first; an empty string maps to 0.
func TimeToMinutes(s string) int {
	norm := NormalizeTime(s)
	if norm == "" {
		return 0
	}
	var h, m int
	fmt.Sscanf(norm, "%d:%d", &h, &m)
	return h*60 + m
}

// MinutesToTime converts minutes since midnight to an HH:MM string.
func MinutesToTime(mins int) string {
	return fmt.Sprintf("%02d:%02d", mins/60, mins%60)
}

// WeekDates returns the seven days of the week containing base, starting on
// Monday.
func WeekDates(base time.Time) [7]time.Time {
	var week [7]time.Time

	diff := int(time.Monday - base.Weekday())
	if base.Weekday() == time.Sunday {
		diff = -6
	}
	start := base.AddDate(0, 0, diff)

	for i := 0; i < 7; i++ {
		week[i] = start.AddDate(0, 0, i)
	}
	return week
}
