package calendar

import (
	"fmt"
	"time"
)

// DaysPerWeek is the number of days in every generated week, weekends
// included.
const DaysPerWeek = 7

// Window length bounds, in weeks.
const (
	MinWeeks = 1
	MaxWeeks = 4
)

// ViewMode selects the grid orientation.
type ViewMode string

const (
	// ViewColumns renders weeks as columns and weekdays as rows.
	ViewColumns ViewMode = "columns"
	// ViewRows renders weeks as rows and weekdays as columns.
	ViewRows ViewMode = "rows"
)

// ParseViewMode validates a view mode name.
func ParseViewMode(s string) (ViewMode, error) {
	switch ViewMode(s) {
	case ViewColumns, ViewRows:
		return ViewMode(s), nil
	}
	return "", fmt.Errorf("unknown view mode %q (want columns or rows)", s)
}

// ClampWeeks bounds a window length to MinWeeks..MaxWeeks.
func ClampWeeks(n int) int {
	if n < MinWeeks {
		return MinWeeks
	}
	if n > MaxWeeks {
		return MaxWeeks
	}
	return n
}

// StartOfWeek returns Monday 00:00 of the week containing t, in t's location.
func StartOfWeek(t time.Time) time.Time {
	offset := (int(t.Weekday()) + 6) % 7 // days since Monday
	y, m, d := t.Date()
	return time.Date(y, m, d-offset, 0, 0, 0, 0, t.Location())
}

// WeekDates returns n consecutive Monday-aligned weeks starting at the week
// containing anchor. Every week has all seven days.
func WeekDates(anchor time.Time, n int) [][DaysPerWeek]time.Time {
	start := StartOfWeek(anchor)
	y, m, d := start.Date()
	weeks := make([][DaysPerWeek]time.Time, n)
	for w := range weeks {
		for i := 0; i < DaysPerWeek; i++ {
			weeks[w][i] = time.Date(y, m, d+w*DaysPerWeek+i, 0, 0, 0, 0, start.Location())
		}
	}
	return weeks
}

// WeekNumber returns the ISO-8601 week number of t.
func WeekNumber(t time.Time) int {
	_, week := t.ISOWeek()
	return week
}

// MondayOfISOWeek returns Monday 00:00 of the given ISO week in loc.
// Week 1 is the week containing January 4th.
func MondayOfISOWeek(year, week int, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	jan4 := time.Date(year, time.January, 4, 0, 0, 0, 0, loc)
	first := StartOfWeek(jan4)
	y, m, d := first.Date()
	return time.Date(y, m, d+(week-1)*DaysPerWeek, 0, 0, 0, 0, loc)
}

// ShiftWeeks moves an anchor by steps weeks (negative steps go back).
func ShiftWeeks(anchor time.Time, steps int) time.Time {
	y, m, d := anchor.Date()
	h, mi, s := anchor.Clock()
	return time.Date(y, m, d+steps*DaysPerWeek, h, mi, s, anchor.Nanosecond(), anchor.Location())
}

// TodayAnchor returns the anchor for the "today" action: the Monday of the
// week containing now.
func TodayAnchor(now time.Time) time.Time {
	return StartOfWeek(now)
}
